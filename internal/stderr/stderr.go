//go:build !windows

// Package stderr redirects file descriptor 2 into a pipe so that C audio
// libraries (ALSA through oto) cannot scribble over the TUI. Captured lines
// are handed to the UI instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// bufferedLines is how many captured lines may wait for a reader before
// new ones are dropped.
const bufferedLines = 100

// Capture owns the redirection started by Start.
type Capture struct {
	lines chan string
	done  chan struct{}

	orig   int
	reader *os.File
	writer *os.File
}

// Start points fd 2 at a pipe. It must run before the audio device is
// opened. On failure stderr is left untouched and the program can go on
// without capture.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		lines:  make(chan string, bufferedLines),
		done:   make(chan struct{}),
		orig:   orig,
		reader: r,
		writer: w,
	}
	go c.read()
	return c, nil
}

func (c *Capture) read() {
	defer close(c.done)
	defer close(c.lines)
	scanner := bufio.NewScanner(c.reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// full, drop
		}
	}
}

// Lines yields captured non-blank lines until Stop. A nil Capture yields
// nothing.
func (c *Capture) Lines() <-chan string {
	if c == nil {
		return nil
	}
	return c.lines
}

// WriteOriginal bypasses the capture.
func (c *Capture) WriteOriginal(msg string) {
	if c == nil {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Stop restores fd 2 and closes Lines once pending output is read.
func (c *Capture) Stop() {
	if c == nil {
		return
	}
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)
	c.writer.Close()
	<-c.done
	c.reader.Close()
}
