package notify

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/banabyte/airwaves/internal/nowplaying"
)

const (
	trackTimeout = 5000
	queueSize    = 8
)

// TrackNotifier announces track changes as desktop notifications. Each new
// track replaces the previous notification. Repeated descriptors for the
// same track are ignored.
type TrackNotifier struct {
	notifier Notifier
	log      zerolog.Logger
	icon     string

	mu      sync.Mutex
	lastKey string
	queue   chan Notification
	done    chan struct{}
	once    sync.Once
}

// NewTrackNotifier starts a notifier that sends through n. icon is an icon
// name or path shown with each notification.
func NewTrackNotifier(n Notifier, icon string, logger zerolog.Logger) *TrackNotifier {
	t := &TrackNotifier{
		notifier: n,
		log:      logger,
		icon:     icon,
		queue:    make(chan Notification, queueSize),
		done:     make(chan struct{}),
	}
	go t.run()
	return t
}

// SetMetadata queues a notification when d describes a different track than
// the last one announced. It never blocks; notifications are dropped when the
// queue is full.
func (t *TrackNotifier) SetMetadata(d *nowplaying.MediaDescriptor) {
	t.mu.Lock()
	if d == nil {
		t.lastKey = ""
		t.mu.Unlock()
		return
	}
	key := d.Title + "\x00" + d.Artist + "\x00" + d.Album
	if key == t.lastKey {
		t.mu.Unlock()
		return
	}
	t.lastKey = key
	t.mu.Unlock()

	select {
	case t.queue <- trackNotification(d, t.icon):
	case <-t.done:
	default:
		t.log.Debug().Str("title", d.Title).Msg("notification queue full")
	}
}

// Close stops the sender. Queued notifications are discarded.
func (t *TrackNotifier) Close() {
	t.once.Do(func() { close(t.done) })
}

func (t *TrackNotifier) run() {
	var lastID uint32
	for {
		select {
		case <-t.done:
			return
		case n := <-t.queue:
			n.ReplacesID = lastID
			id, err := t.notifier.Notify(n)
			if err != nil {
				t.log.Warn().Err(err).Msg("send notification")
				continue
			}
			lastID = id
		}
	}
}

func trackNotification(d *nowplaying.MediaDescriptor, icon string) Notification {
	body := d.Artist
	if d.Album != "" {
		if body != "" {
			body += " - "
		}
		body += d.Album
	}
	return Notification{
		Title:     d.Title,
		Body:      body,
		Icon:      icon,
		Timeout:   trackTimeout,
		Urgency:   UrgencyLow,
		Transient: true,
	}
}

// Verify TrackNotifier can mirror the engine's media descriptor.
var _ nowplaying.MediaSession = (*TrackNotifier)(nil)
