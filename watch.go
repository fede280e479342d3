package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 150 * time.Millisecond

// configWatcher reloads the config file whenever it changes on disk. The
// parent directory is watched so editors that save by rename still trigger.
type configWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	onLoad  func(*Config, error)
	cancel  context.CancelFunc
	done    chan struct{}
}

func watchConfig(path string, onLoad func(*Config, error)) (*configWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cw := &configWatcher{
		path:    filepath.Clean(path),
		watcher: watcher,
		onLoad:  onLoad,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go cw.processEvents(ctx)
	return cw, nil
}

func (cw *configWatcher) processEvents(ctx context.Context) {
	defer close(cw.done)

	var (
		timer  *time.Timer
		reload <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			reload = timer.C

		case <-reload:
			reload = nil
			cw.onLoad(loadConfig(cw.path))

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config watcher: %v", err)
		}
	}
}

// Close stops watching and waits for the event goroutine to exit.
func (cw *configWatcher) Close() error {
	cw.cancel()
	err := cw.watcher.Close()
	<-cw.done
	return err
}
