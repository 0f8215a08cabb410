// Package gauge renders the carbon meter: a semicircular dial whose needle
// points at an emissions total and eases toward new values frame by frame.
//
// Geometry is computed by the pure BuildGeometry function and materialized
// onto a surface.Document. An Instance owns the state of one dial.
package gauge

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/rshade/carbonmeter/internal/animation"
	"github.com/rshade/carbonmeter/internal/greenops"
	"github.com/rshade/carbonmeter/internal/logging"
	"github.com/rshade/carbonmeter/internal/surface"
)

// ErrContainerNotFound is returned by Init when the document has no
// container with the configured id.
var ErrContainerNotFound = errors.New("gauge container not found")

// Unit is appended to the value label.
const Unit = "kg CO₂e"

// State is a snapshot of a gauge.
type State struct {
	Current   float64
	Target    float64
	Angle     float64
	Tier      Tier
	Animating bool
}

// Instance is one gauge bound to one container of a document.
type Instance struct {
	doc         *surface.Document
	containerID string
	cfg         Config
	sched       animation.Scheduler
	format      *greenops.Formatter

	mu      sync.Mutex
	built   bool
	current float64
	target  float64
	task    *animation.Task
}

// Option customizes an Instance.
type Option func(*Instance)

// WithFormatter sets the formatter used for the value label.
func WithFormatter(f *greenops.Formatter) Option {
	return func(g *Instance) {
		if f != nil {
			g.format = f
		}
	}
}

// New creates a gauge for containerID. Nothing is drawn until Init.
func New(doc *surface.Document, containerID string, cfg Config, sched animation.Scheduler, opts ...Option) (*Instance, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Instance{
		doc:         doc,
		containerID: containerID,
		cfg:         cfg,
		sched:       sched,
		format:      greenops.MustFormatter(greenops.DefaultLocale),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the gauge configuration.
func (g *Instance) Config() Config {
	return g.cfg
}

// Init draws the gauge. It is idempotent. When the container is missing the
// failure is logged, ErrContainerNotFound is returned and the document is
// not modified.
func (g *Instance) Init(ctx context.Context) error {
	logger := logging.FromContext(ctx).With().
		Str("component", "gauge").
		Str("operation", "Init").
		Str("container", g.containerID).
		Logger()

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.built {
		return nil
	}
	if g.doc == nil || !g.doc.HasContainer(g.containerID) {
		logger.Error().Msg("gauge container not found")
		return fmt.Errorf("%w: %q", ErrContainerNotFound, g.containerID)
	}

	nodes := Materialize(g.containerID, BuildGeometry(g.cfg))
	if err := g.doc.Mount(g.containerID, nodes); err != nil {
		logger.Error().Err(err).Msg("failed to mount gauge")
		return fmt.Errorf("mount gauge: %w", err)
	}
	g.built = true
	g.renderLocked(ctx)

	logger.Debug().Int("elements", len(nodes)).Msg("gauge initialized")
	return nil
}

// Update moves the gauge to value. Any animation in flight is cancelled
// first. With animate false the needle jumps to value; otherwise it eases
// toward it on the scheduler's frames.
//
// Non-finite and negative values are logged and treated as zero.
func (g *Instance) Update(ctx context.Context, value float64, animate bool) {
	logger := logging.FromContext(ctx).With().
		Str("component", "gauge").
		Str("operation", "Update").
		Str("container", g.containerID).
		Logger()

	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		logger.Warn().Float64("value", value).Msg("invalid gauge value, using 0")
		value = 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.task != nil {
		g.task.Cancel()
		g.task = nil
	}
	g.target = value

	if !g.built {
		logger.Warn().Msg("gauge not initialized, state updated without drawing")
	}

	if !animate || g.sched == nil {
		g.current = value
		g.renderLocked(ctx)
		return
	}

	var task *animation.Task
	task = animation.Start(g.sched, func(time.Time) bool {
		g.mu.Lock()
		defer g.mu.Unlock()
		if task.Token().Cancelled() || g.task != task {
			return false
		}
		next, done := advance(g.current, g.target, g.cfg.Damping, g.cfg.Epsilon)
		g.current = next
		g.renderLocked(ctx)
		if done {
			g.task = nil
		}
		return !done
	})
	g.task = task

	logger.Debug().Float64("from", g.current).Float64("to", value).Msg("gauge animation started")
}

// Wait blocks until no animation is running or ctx is done. An animation
// that supersedes the awaited one is waited for as well.
func (g *Instance) Wait(ctx context.Context) error {
	for {
		g.mu.Lock()
		task := g.task
		g.mu.Unlock()
		if task == nil {
			return nil
		}
		select {
		case <-task.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// State returns a snapshot of the gauge.
func (g *Instance) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	angle := Angle(g.current, g.cfg.Max)
	return State{
		Current:   g.current,
		Target:    g.target,
		Angle:     angle,
		Tier:      TierForAngle(angle),
		Animating: g.task != nil,
	}
}

// Label formats value the way the gauge's value label shows it.
func (g *Instance) Label(value float64) string {
	return FormatValue(g.format, value)
}

// FormatValue formats a gauge value with its unit. Values beyond the int64
// range use scientific notation.
func FormatValue(f *greenops.Formatter, value float64) string {
	if math.Abs(value) >= math.MaxInt64 {
		return strconv.FormatFloat(value, 'e', 3, 64) + " " + Unit
	}
	return f.Number(int64(math.Round(value))) + " " + Unit
}

// advance moves current by damping of the remaining distance to target. Once
// the remaining distance is below epsilon, or the step no longer changes
// current at float64 precision, it returns target and done.
func advance(current, target, damping, epsilon float64) (float64, bool) {
	diff := target - current
	if math.Abs(diff) < epsilon {
		return target, true
	}
	next := current + diff*damping
	if next == current {
		return target, true
	}
	return next, false
}

// renderLocked writes the needle rotation, color and value label. Must be
// called with g.mu held.
func (g *Instance) renderLocked(ctx context.Context) {
	if !g.built {
		return
	}
	angle := Angle(g.current, g.cfg.Max)
	color := TierForAngle(angle).Color()

	id := func(part string) string { return ElementID(g.containerID, part) }
	errs := errors.Join(
		g.doc.SetAttr(id(IDNeedle), "transform", NeedleTransform(g.cfg, angle)),
		g.doc.SetAttr(id(IDNeedleLine), "stroke", color),
		g.doc.SetAttr(id(IDPivot), "fill", color),
		g.doc.SetText(id(IDValue), g.Label(g.current)),
	)
	if errs != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "gauge").
			Str("container", g.containerID).
			Err(errs).
			Msg("gauge elements missing from document")
	}
}
