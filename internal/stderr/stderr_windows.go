//go:build windows

// Package stderr is a no-op on Windows, whose audio backends do not write
// to the console.
package stderr

import "os"

type Capture struct{}

// Start returns a nil Capture; its methods are no-ops.
func Start() (*Capture, error) {
	return nil, nil
}

func (c *Capture) Lines() <-chan string {
	return nil
}

func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

func (c *Capture) Stop() {}
