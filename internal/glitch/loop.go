package glitch

import (
	"context"
	"sync"
	"time"
)

// FrameSource delivers paint opportunities to a Loop.
type FrameSource interface {
	Frames() <-chan time.Time
	Stop()
}

type tickerFrames struct {
	ticker *time.Ticker
}

// NewTickerFrames paces frames at fps using a time.Ticker.
func NewTickerFrames(fps int) FrameSource {
	if fps <= 0 {
		fps = 60
	}
	return &tickerFrames{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

func (t *tickerFrames) Frames() <-chan time.Time { return t.ticker.C }
func (t *tickerFrames) Stop()                    { t.ticker.Stop() }

// Loop runs an Engine on its own goroutine, ticking once per frame and
// forwarding layout sizes from a resize channel.
type Loop struct {
	engine  *Engine
	frames  FrameSource
	resizes <-chan Size

	// AfterTick, if set, runs on the loop goroutine after every tick.
	// Returning false stops the loop.
	AfterTick func(now time.Duration, redrawn bool) bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoop wires an engine to a frame source and an optional resize channel.
func NewLoop(engine *Engine, frames FrameSource, resizes <-chan Size) *Loop {
	return &Loop{
		engine:  engine,
		frames:  frames,
		resizes: resizes,
	}
}

// Start launches the loop. Calling Start on a running loop does nothing.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done != nil {
		return
	}
	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})
	go l.run(ctx, time.Now(), l.done)
}

// Stop cancels the pending frame, detaches the resize channel and waits for
// the loop goroutine to exit. No tick runs after Stop returns. It is safe to
// call more than once, but not from AfterTick.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Done is closed when the loop goroutine exits. It is nil before Start.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

func (l *Loop) run(ctx context.Context, start time.Time, done chan struct{}) {
	defer close(done)
	defer l.frames.Stop()

	frames := l.frames.Frames()
	resizes := l.resizes
	for {
		select {
		case <-ctx.Done():
			return
		case sz, ok := <-resizes:
			if !ok {
				resizes = nil
				continue
			}
			l.engine.Resize(sz.Width, sz.Height)
		case t, ok := <-frames:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				return
			}
			now := t.Sub(start)
			redrawn := l.engine.Tick(now)
			if l.AfterTick != nil && !l.AfterTick(now, redrawn) {
				return
			}
		}
	}
}
