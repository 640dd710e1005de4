//go:build !windows

package stderr

import (
	"os"
	"testing"
	"time"
)

func TestCapture_DeliversLines(t *testing.T) {
	c, err := Start()
	if err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}

	if _, err := os.Stderr.WriteString("ALSA lib pcm.c: underrun\n\n"); err != nil {
		t.Fatal(err)
	}

	select {
	case line := <-c.Lines():
		if line != "ALSA lib pcm.c: underrun" {
			t.Errorf("line = %q", line)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no line captured")
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := <-c.Lines(); ok {
		t.Error("Lines() should be closed after Close")
	}
}

func TestCapture_NilSafe(t *testing.T) {
	var c *Capture
	if c.Lines() != nil {
		t.Error("nil capture should have no lines")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}
