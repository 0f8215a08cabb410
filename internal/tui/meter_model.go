package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carbonmeter/internal/animation"
	"github.com/rshade/carbonmeter/internal/breakdown"
	"github.com/rshade/carbonmeter/internal/gauge"
	"github.com/rshade/carbonmeter/internal/greenops"
	"github.com/rshade/carbonmeter/internal/logging"
	"github.com/rshade/carbonmeter/internal/report"
	"github.com/rshade/carbonmeter/internal/surface"
)

// MeterContainerID is the document container the interactive gauge draws to.
const MeterContainerID = "carbon-meter"

// Default dimensions for the meter model.
const (
	meterDefaultWidth  = 80
	meterDefaultHeight = 24
	meterTableHeight   = 5
)

// frameMsg is delivered once per animation frame.
type frameMsg time.Time

// MeterOptions configures a MeterModel.
type MeterOptions struct {
	Gauge     gauge.Config
	FPS       int
	Registry  *breakdown.Registry
	Policy    breakdown.TotalPolicy
	Formatter *greenops.Formatter
}

// MeterModel is the Bubble Tea model showing the animated gauge and the
// category table for one emissions summary.
type MeterModel struct {
	ctx     context.Context
	summary *report.Summary
	format  *greenops.Formatter
	cfg     gauge.Config

	queue    *animation.FrameQueue
	gauge    *gauge.Instance
	interval time.Duration
	ticking  bool

	result  breakdown.Result
	table   table.Model
	spinner spinner.Model

	width    int
	height   int
	quitting bool
}

// NewMeterModel builds the model and draws the gauge at zero. The needle
// animation toward the summary total starts with Init.
func NewMeterModel(ctx context.Context, summary *report.Summary, opts MeterOptions) (*MeterModel, error) {
	if summary == nil {
		return nil, fmt.Errorf("%w: nil summary", report.ErrInvalidSummary)
	}
	if opts.Formatter == nil {
		opts.Formatter = greenops.MustFormatter(greenops.DefaultLocale)
	}
	if opts.Registry == nil {
		opts.Registry = breakdown.DefaultRegistry()
	}

	doc := surface.NewDocument(surface.Container{
		ID:     MeterContainerID,
		Width:  opts.Gauge.Width,
		Height: opts.Gauge.Height,
	})
	queue := animation.NewFrameQueue()
	g, err := gauge.New(doc, MeterContainerID, opts.Gauge, queue, gauge.WithFormatter(opts.Formatter))
	if err != nil {
		return nil, err
	}
	if err = g.Init(ctx); err != nil {
		return nil, err
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = InfoStyle

	res := breakdown.Compute(summary.Details, opts.Registry, opts.Policy)
	m := &MeterModel{
		ctx:      ctx,
		summary:  summary,
		format:   opts.Formatter,
		cfg:      opts.Gauge,
		queue:    queue,
		gauge:    g,
		interval: animation.NewTicker(queue, opts.FPS).Interval(),
		result:   res,
		spinner:  sp,
		width:    meterDefaultWidth,
		height:   meterDefaultHeight,
	}
	m.table = newBreakdownTable(res, opts.Formatter)
	return m, nil
}

func newBreakdownTable(res breakdown.Result, f *greenops.Formatter) table.Model {
	columns := []table.Column{
		{Title: "Categoria", Width: 16},          //nolint:mnd // Column width.
		{Title: "Emissões (kg CO₂e)", Width: 20}, //nolint:mnd // Column width.
		{Title: "Participação", Width: 14},       //nolint:mnd // Column width.
	}
	rows := make([]table.Row, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, table.Row{r.Label, f.Float(r.Value, 0), breakdown.PercentLabel(r.Percent)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, meterTableHeight)),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	return t
}

// Init starts the needle animation and the frame clock.
func (m *MeterModel) Init() tea.Cmd {
	return m.play()
}

// play animates the needle from its current position to the summary total.
func (m *MeterModel) play() tea.Cmd {
	m.gauge.Update(m.ctx, m.summary.Total, true)
	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Str("operation", "play").
		Float64("target", m.summary.Total).
		Msg("meter animation started")

	if m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Batch(m.tick(), m.spinner.Tick)
}

func (m *MeterModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update handles messages and updates the model state.
func (m *MeterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		m.queue.Flush(time.Time(msg))
		if m.gauge.State().Animating {
			return m, m.tick()
		}
		m.ticking = false
		return m, nil

	case spinner.TickMsg:
		if !m.ticking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for meter navigation.
func (m *MeterModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.gauge.Update(m.ctx, 0, false)
			return m, m.play()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the model.
func (m *MeterModel) View() string {
	if m.quitting {
		return ""
	}
	state := m.gauge.State()

	var b strings.Builder
	b.WriteString(RenderMeter(state, m.cfg, m.format, m.width))
	b.WriteString("\n")
	if state.Animating {
		b.WriteString(" " + m.spinner.View() + " " + LabelStyle.Render("moving needle..."))
	}
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("r: replay • ↑/↓: select • q: quit"))
	return b.String()
}

// State returns the gauge state shown by the model.
func (m *MeterModel) State() gauge.State {
	return m.gauge.State()
}
