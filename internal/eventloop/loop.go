// Package eventloop runs posted callbacks one at a time on a single
// goroutine, giving their shared state a single writer.
package eventloop

import (
	"context"
	"sync"
)

const defaultBuffer = 64

// Loop is a FIFO of callbacks drained by Run.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// New creates a loop whose queue holds buffer pending callbacks before Post
// blocks. A non-positive buffer selects the default.
func New(buffer int) *Loop {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Loop{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Post queues fn. It reports false if the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run executes callbacks until ctx is cancelled or Close is called. Callbacks
// still queued at that point are discarded.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.queue:
			fn()
		}
	}
}

// Close stops the loop. It is safe to call more than once.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// Done is closed once the loop stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
