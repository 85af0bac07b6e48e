package eventloop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_RunsInPostOrder(t *testing.T) {
	l := New(0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = l.Run(ctx) }()

	var (
		mu  sync.Mutex
		got []int
	)
	done := make(chan struct{})
	for i := range 10 {
		require.True(t, l.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			if i == 9 {
				close(done)
			}
		}))
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callbacks did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestLoop_RunStopsOnContext(t *testing.T) {
	l := New(1)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}

	assert.False(t, l.Post(func() {}))
}

func TestLoop_Close(t *testing.T) {
	l := New(1)

	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(context.Background()) }()

	l.Close()
	l.Close()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}

	select {
	case <-l.Done():
	default:
		t.Fatal("Done not closed")
	}
	assert.False(t, l.Post(func() {}))
}

func TestLoop_PostUnblocksOnClose(t *testing.T) {
	l := New(1)
	require.True(t, l.Post(func() {}))

	result := make(chan bool, 1)
	go func() { result <- l.Post(func() {}) }()

	l.Close()

	select {
	case ok := <-result:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Post stayed blocked")
	}
}
