package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbonmeter/internal/breakdown"
	"github.com/rshade/carbonmeter/internal/greenops"
)

// Breakdown rendering constants.
const (
	barFilledChar   = "█"
	barEmptyChar    = "░"
	labelColumn     = 14
	numberColumns   = 28 // value and percentage columns
	minBarWidth     = 10
	maxActionLength = 40
)

// RenderBreakdown draws one colored proportional bar per category row.
func RenderBreakdown(res breakdown.Result, f *greenops.Formatter, width int) string {
	if f == nil {
		f = greenops.MustFormatter(greenops.DefaultLocale)
	}
	var content strings.Builder
	content.WriteString(HeaderStyle.Render("BREAKDOWN"))
	content.WriteString("\n")

	if len(res.Rows) == 0 {
		content.WriteString(InfoStyle.Render("No category data."))
		return BoxStyle.Width(width - borderPadding).Render(content.String())
	}

	barWidth := max(width-borderPadding-boxPadding-labelColumn-numberColumns, minBarWidth)
	for i, row := range res.Rows {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(LabelStyle.Render(padRight(row.Label, labelColumn)))
		content.WriteString(renderBar(row.Percent, barWidth, HexColor(row.Color)))
		content.WriteString(ValueStyle.Render(fmt.Sprintf(" %14s", f.Float(row.Value, 0)+" kg")))
		content.WriteString(fmt.Sprintf(" %7s", breakdown.PercentLabel(row.Percent)))
	}
	if len(res.Unknown) > 0 {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render("Not shown: " + strings.Join(res.Unknown, ", ")))
	}
	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// renderBar draws a bar filled to percent of width.
func renderBar(percent float64, width int, color lipgloss.Color) string {
	filled := int(min(max(percent, 0), 100) / 100 * float64(width))
	filledStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	return filledStyle.Render(strings.Repeat(barFilledChar, filled)) +
		emptyStyle.Render(strings.Repeat(barEmptyChar, width-filled))
}

// WriteBreakdownPlain writes the breakdown as an aligned table.
func WriteBreakdownPlain(w io.Writer, res breakdown.Result, f *greenops.Formatter) error {
	if f == nil {
		f = greenops.MustFormatter(greenops.DefaultLocale)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CATEGORY\tKG CO2E\tSHARE\t")
	for _, row := range res.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", row.Label, f.Float(row.Value, 0), breakdown.PercentLabel(row.Percent))
	}
	fmt.Fprintf(tw, "%s\t%s\t\t\n", "Total", f.Float(res.Total, 0))
	return tw.Flush()
}

// RenderReductions draws the reduction potential of each recommendation as
// a bar scaled to the largest one.
func RenderReductions(bars []breakdown.ReductionBar, f *greenops.Formatter, width int) string {
	if f == nil {
		f = greenops.MustFormatter(greenops.DefaultLocale)
	}
	var content strings.Builder
	content.WriteString(HeaderStyle.Render("REDUCTION POTENTIAL"))

	barWidth := max(width-borderPadding-boxPadding-maxActionLength-16, minBarWidth)
	for _, b := range bars {
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render(padRight(truncate(b.Action, maxActionLength), maxActionLength)))
		content.WriteString(" ")
		content.WriteString(renderBar(b.Fraction*100, barWidth, HexColor(b.Color)))
		content.WriteString(ValueStyle.Render(fmt.Sprintf(" %s kg", f.Float(b.Potential, 0))))
	}
	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// WriteReductionsPlain writes one line per recommendation.
func WriteReductionsPlain(w io.Writer, bars []breakdown.ReductionBar, f *greenops.Formatter) error {
	if f == nil {
		f = greenops.MustFormatter(greenops.DefaultLocale)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tREDUCTION (KG CO2E)")
	for _, b := range bars {
		fmt.Fprintf(tw, "%s\t%s\n", b.Action, f.Float(b.Potential, 2))
	}
	return tw.Flush()
}

// RenderImpact draws the impact equivalents grouped by category.
func RenderImpact(out greenops.ImpactOutput, width int) string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render("IMPACT"))
	content.WriteString("\n")
	if out.IsEmpty {
		content.WriteString(InfoStyle.Render("Footprint too small for meaningful equivalents."))
		return BoxStyle.Width(width - borderPadding).Render(content.String())
	}
	for i, cat := range out.Categories {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(ValueStyle.Render(cat.Title))
		for _, item := range cat.Items {
			content.WriteString("\n  ")
			content.WriteString(LabelStyle.Render(item.Name + ": "))
			content.WriteString(item.FormattedValue + " " + item.Unit)
		}
	}
	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// WriteImpactPlain writes the impact equivalents, one per line.
func WriteImpactPlain(w io.Writer, out greenops.ImpactOutput) error {
	if out.IsEmpty {
		_, err := fmt.Fprintln(w, "Footprint too small for meaningful equivalents.")
		return err
	}
	for _, cat := range out.Categories {
		if _, err := fmt.Fprintf(w, "%s\n", cat.Title); err != nil {
			return err
		}
		for _, item := range cat.Items {
			if _, err := fmt.Fprintf(w, "  %s: %s %s\n", item.Name, item.FormattedValue, item.Unit); err != nil {
				return err
			}
		}
	}
	return nil
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
