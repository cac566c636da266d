// Package clock reports the elapsed time of the active workout session
package clock

import (
	"context"
	"sync"
	"time"

	"github.com/ayoisaiah/sculpt/internal/timeutil"
)

// DefaultInterval is how often the elapsed time is reported.
const DefaultInterval = time.Second

// TickFunc receives the formatted elapsed time on every tick.
type TickFunc func(elapsed string)

// Clock runs at most one ticker at a time. Starting a clock that is already
// running replaces the previous ticker.
type Clock struct {
	now      func() time.Time
	cancel   context.CancelFunc
	done     chan struct{}
	start    time.Time
	interval time.Duration
	mu       sync.Mutex
}

// Option configures a Clock.
type Option func(*Clock)

// WithInterval sets the tick interval.
func WithInterval(d time.Duration) Option {
	return func(c *Clock) {
		c.interval = d
	}
}

// WithNow sets the time source.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// New creates a stopped clock.
func New(opts ...Option) *Clock {
	c := &Clock{
		interval: DefaultInterval,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start stops any running ticker and starts a new one measuring from start.
// onTick is called immediately and then once per interval from a separate
// goroutine until the clock is stopped. It must not block or call back into
// the clock.
func (c *Clock) Start(start time.Time, onTick TickFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c.start = start
	c.cancel = cancel
	c.done = done

	go c.run(ctx, done, start, onTick)
}

func (c *Clock) run(
	ctx context.Context,
	done chan struct{},
	start time.Time,
	onTick TickFunc,
) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	emit := func() {
		if onTick != nil {
			onTick(timeutil.FormatElapsed(c.now().Sub(start)))
		}
	}

	emit()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// a tick may race with Stop
			if ctx.Err() != nil {
				return
			}

			emit()
		}
	}
}

// Stop cancels the running ticker and waits for it to exit. Stopping a
// stopped clock is a no-op.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
}

func (c *Clock) stopLocked() {
	if c.cancel == nil {
		return
	}

	c.cancel()
	<-c.done

	c.cancel = nil
	c.done = nil
}

// Running reports whether a ticker is active.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cancel != nil
}

// Elapsed returns the time since the clock was last started, or zero if it
// is stopped.
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel == nil {
		return 0
	}

	return c.now().Sub(c.start)
}
