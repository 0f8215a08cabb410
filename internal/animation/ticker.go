package animation

import (
	"context"
	"time"

	"github.com/rshade/carbonmeter/internal/logging"
)

// DefaultFPS is the frame rate used when a Ticker is created with fps <= 0.
const DefaultFPS = 60

// Ticker produces frames for a FrameQueue from a wall-clock ticker. It is
// the headless stand-in for a display's refresh loop.
type Ticker struct {
	queue    *FrameQueue
	interval time.Duration
}

// NewTicker creates a Ticker that flushes queue fps times per second.
func NewTicker(queue *FrameQueue, fps int) *Ticker {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Ticker{
		queue:    queue,
		interval: time.Second / time.Duration(fps),
	}
}

// Interval returns the time between frames.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Run flushes the queue on every tick until ctx is done. All callbacks run
// on the calling goroutine.
func (t *Ticker) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx).With().
		Str("component", "animation").
		Str("operation", "Ticker.Run").
		Logger()

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	frames := 0
	for {
		select {
		case <-ctx.Done():
			logger.Debug().Int("frames", frames).Msg("frame ticker stopped")
			return ctx.Err()
		case now := <-tick.C:
			if t.queue.Flush(now) > 0 {
				frames++
			}
		}
	}
}

// RunUntilIdle flushes frames until no callback is pending, or ctx is done.
// It returns the number of frames that ran at least one callback.
func (t *Ticker) RunUntilIdle(ctx context.Context) (int, error) {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	frames := 0
	for t.queue.Pending() > 0 {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		case now := <-tick.C:
			if t.queue.Flush(now) > 0 {
				frames++
			}
		}
	}
	return frames, nil
}
