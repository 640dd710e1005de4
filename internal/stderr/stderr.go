//go:build !windows

// Package stderr captures output that the audio backend's C libraries write
// straight to file descriptor 2, so it cannot corrupt the terminal client.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

const bufferedLines = 100

// Capture redirects fd 2 into a pipe and delivers its lines on a channel.
type Capture struct {
	orig  int
	read  *os.File
	write *os.File
	lines chan string
	once  sync.Once
	done  chan struct{}
}

// Start begins capturing. Call it before the audio backend initializes. On
// error the program can continue with stderr untouched.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		orig:  orig,
		read:  r,
		write: w,
		lines: make(chan string, bufferedLines),
		done:  make(chan struct{}),
	}
	go c.pump()
	return c, nil
}

func (c *Capture) pump() {
	defer close(c.done)
	defer close(c.lines)
	scanner := bufio.NewScanner(c.read)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// Reader is behind; drop rather than block the writer.
		}
	}
}

// Lines returns captured lines. The channel closes after Close.
func (c *Capture) Lines() <-chan string {
	if c == nil {
		return nil
	}
	return c.lines
}

// WriteOriginal writes to the terminal's stderr, bypassing the capture.
func (c *Capture) WriteOriginal(msg string) {
	if c == nil {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = unix.Write(c.orig, []byte(msg))
}

// Close restores the original stderr.
func (c *Capture) Close() error {
	if c == nil {
		return nil
	}
	var err error
	c.once.Do(func() {
		err = unix.Dup2(c.orig, int(os.Stderr.Fd()))
		_ = unix.Close(c.orig)
		c.write.Close()
		<-c.done
		c.read.Close()
	})
	return err
}
