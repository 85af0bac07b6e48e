package nowplaying

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying a failed fetch. Use errors.Is against a
// *FetchError.
var (
	ErrTransport = errors.New("transport error")
	ErrParse     = errors.New("parse error")
)

// FetchErrorKind tells transport failures from malformed payloads.
type FetchErrorKind int

const (
	KindTransport FetchErrorKind = iota
	KindParse
)

func (k FetchErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("FetchErrorKind(%d)", int(k))
	}
}

// FetchError is returned by Fetcher and StreamResolver implementations.
type FetchError struct {
	Kind    FetchErrorKind
	Station StationID
	Op      string
	Err     error
}

// TransportError wraps err as a transport failure for station.
func TransportError(station StationID, op string, err error) *FetchError {
	return &FetchError{Kind: KindTransport, Station: station, Op: op, Err: err}
}

// ParseError wraps err as a malformed-payload failure for station.
func ParseError(station StationID, op string, err error) *FetchError {
	return &FetchError{Kind: KindParse, Station: station, Op: op, Err: err}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s (station %s): %v", e.Op, e.Kind, e.Station, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches ErrTransport and ErrParse by kind.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}
