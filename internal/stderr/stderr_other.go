//go:build !linux

// Package stderr provides a no-op implementation outside Linux.
// Other platforms' audio backends don't produce the same stderr noise as ALSA.
package stderr

import (
	"os"

	"github.com/rs/zerolog"
)

// Start is a no-op outside Linux.
func Start(_ zerolog.Logger) error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op outside Linux.
func Stop() {}
