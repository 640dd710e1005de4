package store

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events an editor produces on save.
const reloadDelay = 100 * time.Millisecond

type watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup
}

// Watch starts reloading the catalog when the file is changed by another
// process. The parent directory is watched so atomic replacements are seen.
func (s *FileStore) Watch() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &watcher{fsw: fsw, done: make(chan struct{})}
	s.mu.Lock()
	s.watch = w
	s.mu.Unlock()

	w.wg.Add(1)
	go s.watchLoop(w)
	return nil
}

func (s *FileStore) watchLoop(w *watcher) {
	defer w.wg.Done()

	target := filepath.Clean(s.path)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target || !isContentChange(event.Op) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			changed, err := s.reload()
			if err != nil {
				s.log.Error().Err(err).Msg("catalog reload failed")
				continue
			}
			if changed {
				s.log.Info().Msg("catalog reloaded from disk")
				s.notify("")
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			s.log.Warn().Err(err).Msg("fs watcher error")
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func isContentChange(op fsnotify.Op) bool {
	return op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *watcher) close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
