//go:build windows

// Package stderr provides a no-op capture on Windows, where the audio
// backend does not write to the console.
package stderr

import "os"

// Capture is a no-op on Windows.
type Capture struct{}

// Start is a no-op on Windows.
func Start() (*Capture, error) {
	return &Capture{}, nil
}

// Lines returns nil; nothing is captured.
func (c *Capture) Lines() <-chan string {
	return nil
}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Close is a no-op on Windows.
func (c *Capture) Close() error {
	return nil
}
