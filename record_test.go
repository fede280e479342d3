package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepwn/glitchscreen/internal/glitch"
)

// feedFrames delivers frames as fast as the loop takes them.
type feedFrames struct {
	ch   chan time.Time
	stop chan struct{}
	once sync.Once
}

func newFeedFrames() *feedFrames {
	f := &feedFrames{ch: make(chan time.Time), stop: make(chan struct{})}
	go func() {
		at := time.Now()
		for {
			select {
			case f.ch <- at:
				at = at.Add(16 * time.Millisecond)
			case <-f.stop:
				return
			}
		}
	}()
	return f
}

func (f *feedFrames) Frames() <-chan time.Time { return f.ch }
func (f *feedFrames) Stop()                    { f.once.Do(func() { close(f.stop) }) }

func TestRecordWritesFrames(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames")
	rs := recordSettings{width: 40, height: 40, frames: 3, fps: 60, scale: 1, out: out}

	written, err := record(context.Background(), glitch.DefaultOptions(), rs, newFeedFrames())
	require.NoError(t, err)
	assert.Equal(t, 3, written)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, fmt.Sprintf("frame-%04d.png", i), entry.Name())
	}
}

func TestRecordCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rs := recordSettings{width: 40, height: 40, frames: 3, fps: 60, scale: 1, out: t.TempDir()}

	written, err := record(ctx, glitch.DefaultOptions(), rs, newFeedFrames())
	assert.NoError(t, err)
	assert.Zero(t, written)
}

func TestRecordRejectsEmptyCanvas(t *testing.T) {
	rs := recordSettings{width: 0, height: 40, frames: 3, scale: 1, out: t.TempDir()}
	_, err := record(context.Background(), glitch.DefaultOptions(), rs, newFeedFrames())
	assert.Error(t, err)
}
