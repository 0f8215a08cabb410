package tui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbonmeter/internal/gauge"
	"github.com/rshade/carbonmeter/internal/greenops"
)

// Meter rendering constants.
const (
	meterFilledChar = "█"
	meterMarker     = "▼"
	minScaleWidth   = 20
	borderPadding   = 2
	boxPadding      = 4
)

// scaleWidth is the usable bar width inside a box of the given width.
func scaleWidth(width int) int {
	return max(width-borderPadding-boxPadding, minScaleWidth)
}

// markerPosition maps a needle angle to a column of a scale of n cells:
// 180° is the leftmost cell and 0° the rightmost.
func markerPosition(angle float64, n int) int {
	frac := (180 - angle) / 180
	frac = math.Max(0, math.Min(1, frac))
	return int(math.Round(frac * float64(n-1)))
}

// RenderMeter draws the gauge as a horizontal scale colored by tier, with a
// marker at the current value, the tier label and the value label.
func RenderMeter(state gauge.State, cfg gauge.Config, f *greenops.Formatter, width int) string {
	if f == nil {
		f = greenops.MustFormatter(greenops.DefaultLocale)
	}
	n := scaleWidth(width)

	var scale strings.Builder
	for i := range n {
		angle := 180 - float64(i)/float64(max(n-1, 1))*180
		tier := gauge.TierForAngle(angle)
		scale.WriteString(lipgloss.NewStyle().Foreground(HexColor(tier.Color())).Render(meterFilledChar))
	}

	pos := markerPosition(state.Angle, n)
	marker := strings.Repeat(" ", pos) + lipgloss.NewStyle().Bold(true).Render(meterMarker)

	minLabel := "0"
	maxLabel := f.Number(int64(math.Round(cfg.Max)))
	axis := minLabel + strings.Repeat(" ", max(n-len(minLabel)-lipgloss.Width(maxLabel), 1)) + maxLabel

	tierStyle := lipgloss.NewStyle().Bold(true).Foreground(HexColor(state.Tier.Color()))
	valueLine := tierStyle.Render(state.Tier.Label()) + LabelStyle.Render("  ·  ") +
		ValueStyle.Render(valueLabel(f, state.Current))

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("CARBON FOOTPRINT"))
	content.WriteString("\n")
	content.WriteString(marker)
	content.WriteString("\n")
	content.WriteString(scale.String())
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render(axis))
	content.WriteString("\n")
	content.WriteString(valueLine)

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// WriteMeterPlain writes the meter reading as a single line.
func WriteMeterPlain(w io.Writer, state gauge.State, cfg gauge.Config, f *greenops.Formatter) error {
	if f == nil {
		f = greenops.MustFormatter(greenops.DefaultLocale)
	}
	scale := 0.0
	if cfg.Max > 0 {
		scale = math.Min(state.Current/cfg.Max, 1) * 100
	}
	_, err := fmt.Fprintf(w, "Total: %s (%s, %.1f%% of %s)\n",
		valueLabel(f, state.Current), state.Tier.Label(), scale, valueLabel(f, cfg.Max))
	return err
}

func valueLabel(f *greenops.Formatter, v float64) string {
	return gauge.FormatValue(f, v)
}
