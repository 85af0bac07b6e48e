//go:build linux

// Package stderr captures stderr output from C libraries (ALSA, oto)
// that write directly to file descriptor 2, bypassing Go's os.Stderr.
// Captured lines go to the log so they cannot corrupt the TUI layout.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start begins forwarding stderr output to logger.
// Must be called early in main(), before any C library initialization.
// Returns an error if capture cannot be set up, but the program can continue
// without stderr capture (errors will just go to the original stderr).
func Start(logger zerolog.Logger) error {
	if started {
		return nil
	}

	// Create a pipe
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	// Save original stderr file descriptor
	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Redirect stderr (fd 2) to the pipe's write end
	err = dup2(int(w.Fd()), int(os.Stderr.Fd()))
	if err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go forward(pipeRead, logger)

	return nil
}

func forward(r *os.File, logger zerolog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Warn().Str("source", "stderr").Msg(line)
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Useful for fatal errors that must be visible even if TUI is running.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr. Should be called on program exit.
func Stop() {
	if !started {
		return
	}

	// Restore original stderr
	_ = dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = 0

	// Close pipe
	pipeWrite.Close()
	pipeRead.Close()

	started = false
}

func dup2(oldfd, newfd int) error {
	return syscall.Dup3(oldfd, newfd, 0)
}
