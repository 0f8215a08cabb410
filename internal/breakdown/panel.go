package breakdown

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/rshade/carbonmeter/internal/greenops"
	"github.com/rshade/carbonmeter/internal/logging"
	"github.com/rshade/carbonmeter/internal/surface"
)

// Panel defaults.
const (
	DefaultBarWidth   = 200.0
	DefaultTransition = 0.6 // seconds

	rowHeight    = 36.0
	barHeight    = 12.0
	labelWidth   = 110.0
	valueGap     = 10.0
	percentWidth = 150.0
	trackColor   = "#eeeeee"
	textColor    = "#333333"
	fontSize     = 12.0
)

// Panel draws a breakdown into one container of a document.
type Panel struct {
	doc         *surface.Document
	containerID string
	registry    *Registry
	policy      TotalPolicy
	barWidth    float64
	transition  float64
	format      *greenops.Formatter

	mu   sync.Mutex
	last Result
}

// PanelOption customizes a Panel.
type PanelOption func(*Panel)

// WithPolicy sets the total policy. The default is TotalAllKeys.
func WithPolicy(p TotalPolicy) PanelOption {
	return func(pn *Panel) { pn.policy = p }
}

// WithBarWidth sets the width of a 100% bar. Non-positive widths are ignored.
func WithBarWidth(w float64) PanelOption {
	return func(pn *Panel) {
		if w > 0 {
			pn.barWidth = w
		}
	}
}

// WithTransition sets the bar grow duration in seconds; 0 disables it.
func WithTransition(seconds float64) PanelOption {
	return func(pn *Panel) {
		if seconds >= 0 {
			pn.transition = seconds
		}
	}
}

// WithFormatter sets the formatter for the value column.
func WithFormatter(f *greenops.Formatter) PanelOption {
	return func(pn *Panel) {
		if f != nil {
			pn.format = f
		}
	}
}

// NewPanel creates a panel. A nil registry means DefaultRegistry.
func NewPanel(doc *surface.Document, containerID string, registry *Registry, opts ...PanelOption) *Panel {
	if registry == nil {
		registry = DefaultRegistry()
	}
	p := &Panel{
		doc:         doc,
		containerID: containerID,
		registry:    registry,
		barWidth:    DefaultBarWidth,
		transition:  DefaultTransition,
		format:      greenops.MustFormatter(greenops.DefaultLocale),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Width returns the panel width needed to show every column.
func (p *Panel) Width() int {
	return PanelWidth(p.barWidth)
}

// PanelWidth returns the width of a panel whose 100% bar is barWidth wide.
func PanelWidth(barWidth float64) int {
	return int(labelWidth + barWidth + 2*valueGap + percentWidth)
}

// Height returns the panel height for n rows.
func Height(n int) int {
	return int(float64(n) * rowHeight)
}

// Update clears the container and draws one row per category present in
// details. When the container is missing the failure is logged,
// ErrContainerNotFound is returned and nothing is drawn.
func (p *Panel) Update(ctx context.Context, details map[string]float64) error {
	logger := logging.FromContext(ctx).With().
		Str("component", "breakdown").
		Str("operation", "Update").
		Str("container", p.containerID).
		Logger()

	if p.doc == nil || !p.doc.HasContainer(p.containerID) {
		logger.Error().Msg("breakdown container not found")
		return fmt.Errorf("%w: %q", ErrContainerNotFound, p.containerID)
	}

	res := Compute(details, p.registry, p.policy)
	for _, key := range res.Skipped {
		logger.Warn().Str("category", key).Msg("invalid category value, using 0")
	}
	if len(res.Unknown) > 0 {
		logger.Debug().Strs("keys", res.Unknown).Msg("skipping unknown categories")
	}

	nodes := make([]*surface.Node, 0, len(res.Rows))
	for i, row := range res.Rows {
		nodes = append(nodes, p.rowNode(i, row))
	}
	if err := p.doc.Mount(p.containerID, nodes); err != nil {
		logger.Error().Err(err).Msg("failed to mount breakdown")
		return fmt.Errorf("mount breakdown: %w", err)
	}

	p.mu.Lock()
	p.last = res
	p.mu.Unlock()

	logger.Debug().
		Float64("total", res.Total).
		Int("rows", len(res.Rows)).
		Msg("breakdown updated")
	return nil
}

// Last returns the result of the most recent successful Update.
func (p *Panel) Last() Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// ElementID returns the document id of a row part, for example
// ElementID("breakdown", "bar", "pecuaria") → "breakdown-bar-pecuaria".
func ElementID(containerID, part, key string) string {
	return containerID + "-" + part + "-" + key
}

func (p *Panel) rowNode(i int, row Row) *surface.Node {
	id := func(part string) string { return ElementID(p.containerID, part, row.Key) }
	filled := row.Percent * p.barWidth / 100
	barY := (rowHeight - barHeight) / 2
	textY := barY + barHeight/2 + 4

	bar := &surface.Node{
		ID:   id("bar"),
		Kind: surface.KindRect,
		Attrs: map[string]string{
			"x":      num(labelWidth),
			"y":      num(barY),
			"width":  num(filled),
			"height": num(barHeight),
			"fill":   row.Color,
		},
	}
	if p.transition > 0 {
		bar.Transition = &surface.Transition{Attr: "width", From: 0, To: filled, Duration: p.transition}
	}

	return &surface.Node{
		ID:    id("row"),
		Kind:  surface.KindGroup,
		Attrs: map[string]string{"transform": "translate(0 " + num(float64(i)*rowHeight) + ")"},
		Children: []*surface.Node{
			text(id("label"), 0, textY, row.Label, "start"),
			{
				ID:   id("track"),
				Kind: surface.KindRect,
				Attrs: map[string]string{
					"x":      num(labelWidth),
					"y":      num(barY),
					"width":  num(p.barWidth),
					"height": num(barHeight),
					"fill":   trackColor,
				},
			},
			bar,
			text(id("value"), labelWidth+p.barWidth+valueGap, textY, p.format.Float(row.Value, 0)+" kg", "start"),
			text(id("percent"), float64(p.Width()), textY, PercentLabel(row.Percent), "end"),
		},
	}
}

func text(id string, x, y float64, content, anchor string) *surface.Node {
	return &surface.Node{
		ID:   id,
		Kind: surface.KindText,
		Attrs: map[string]string{
			"x":           num(x),
			"y":           num(y),
			"fill":        textColor,
			"font-size":   num(fontSize),
			"text-anchor": anchor,
		},
		Text: content,
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
