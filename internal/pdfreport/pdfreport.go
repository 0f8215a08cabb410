// Package pdfreport lays out an emissions summary as a printable PDF: the
// meter reading, the category breakdown, the reduction potential of each
// recommendation and the impact equivalents.
package pdfreport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/rshade/carbonmeter/internal/breakdown"
	"github.com/rshade/carbonmeter/internal/gauge"
	"github.com/rshade/carbonmeter/internal/greenops"
	"github.com/rshade/carbonmeter/internal/logging"
	"github.com/rshade/carbonmeter/internal/report"
)

// ErrNilSummary is returned by Write when no summary is given.
var ErrNilSummary = errors.New("pdf report: nil summary")

// Page layout in millimetres.
const (
	margin      = 15.0
	pageWidth   = 210.0
	bodyWidth   = pageWidth - 2*margin
	lineHeight  = 7.0
	scaleHeight = 6.0
	swatchSize  = 4.0
	headerGray  = 240
)

// Options configures a report.
type Options struct {
	Gauge     gauge.Config
	Registry  *breakdown.Registry
	Policy    breakdown.TotalPolicy
	Formatter *greenops.Formatter
	// GeneratedAt is printed under the title. Zero means now.
	GeneratedAt time.Time
	// Uncompressed writes plain page streams.
	Uncompressed bool
}

// Write renders summary as a one-document PDF to w.
func Write(ctx context.Context, w io.Writer, summary *report.Summary, opts Options) error {
	logger := logging.FromContext(ctx).With().
		Str("component", "pdfreport").
		Str("operation", "Write").
		Logger()

	if summary == nil {
		return ErrNilSummary
	}
	if opts.Registry == nil {
		opts.Registry = breakdown.DefaultRegistry()
	}
	if opts.Formatter == nil {
		opts.Formatter = greenops.MustFormatter(greenops.DefaultLocale)
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetCompression(!opts.Uncompressed)
	pdf.SetTitle("Carbon Footprint Report", true)
	pdf.SetCreator("carbonmeter", true)
	pdf.AddPage()

	l := &layout{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		format: opts.Formatter,
	}

	res := breakdown.Compute(summary.Details, opts.Registry, opts.Policy)
	impact, err := greenops.ImpactWith(ctx, opts.Formatter, greenops.CarbonInput{Value: summary.Total, Unit: "kg"})
	if err != nil {
		return fmt.Errorf("computing impact: %w", err)
	}

	l.title(opts.GeneratedAt)
	l.meter(summary.Total, opts.Gauge)
	l.breakdown(res)
	l.reductions(breakdown.Reductions(summary.Recommendations))
	l.impact(impact)

	if err = pdf.Error(); err != nil {
		logger.Error().Err(err).Msg("failed to lay out pdf report")
		return fmt.Errorf("laying out pdf report: %w", err)
	}
	if err = pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf report: %w", err)
	}

	logger.Debug().
		Int("rows", len(res.Rows)).
		Int("recommendations", len(summary.Recommendations)).
		Msg("pdf report written")
	return nil
}

type layout struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	format *greenops.Formatter
}

func (l *layout) text(s string) string {
	return l.tr(strings.ReplaceAll(s, "₂", "2"))
}

func (l *layout) section(title string) {
	l.pdf.Ln(4)
	l.pdf.SetFont("Arial", "B", 13)
	l.pdf.SetTextColor(44, 62, 80)
	l.pdf.CellFormat(bodyWidth, 9, l.text(title), "B", 1, "L", false, 0, "")
	l.pdf.Ln(2)
	l.pdf.SetTextColor(51, 51, 51)
}

func (l *layout) title(at time.Time) {
	l.pdf.SetFont("Arial", "B", 18)
	l.pdf.SetTextColor(44, 62, 80)
	l.pdf.CellFormat(bodyWidth, 10, "Carbon Footprint Report", "", 1, "L", false, 0, "")
	l.pdf.SetFont("Arial", "", 9)
	l.pdf.SetTextColor(119, 119, 119)
	l.pdf.CellFormat(bodyWidth, 5, "Generated "+at.Format("02/01/2006 15:04"), "", 1, "R", false, 0, "")
}

// meter draws the reading as a tier-colored scale with a marker.
func (l *layout) meter(total float64, cfg gauge.Config) {
	l.section("Carbon Footprint")

	angle := gauge.Angle(total, cfg.Max)
	tier := gauge.TierForAngle(angle)

	l.pdf.SetFont("Arial", "B", 12)
	l.pdf.CellFormat(bodyWidth/2, lineHeight, l.text("Total: "+gauge.FormatValue(l.format, total)), "", 0, "L", false, 0, "")
	r, g, b := hexRGB(tier.Color())
	l.pdf.SetTextColor(r, g, b)
	l.pdf.CellFormat(bodyWidth/2, lineHeight, l.text(tier.Label()), "", 1, "R", false, 0, "")
	l.pdf.SetTextColor(51, 51, 51)

	x, y := l.pdf.GetX(), l.pdf.GetY()+2
	tiers := gauge.Tiers()
	segment := bodyWidth / float64(len(tiers))
	for i, t := range tiers {
		r, g, b := hexRGB(t.Color())
		l.pdf.SetFillColor(r, g, b)
		l.pdf.Rect(x+float64(i)*segment, y, segment, scaleHeight, "F")
	}

	// 180° is the left end of the scale, 0° the right end.
	markX := x + (180-angle)/180*bodyWidth
	l.pdf.SetDrawColor(0, 0, 0)
	l.pdf.SetLineWidth(0.8)
	l.pdf.Line(markX, y-1.5, markX, y+scaleHeight+1.5)
	l.pdf.SetLineWidth(0.2)

	l.pdf.SetY(y + scaleHeight + 2)
	l.pdf.SetFont("Arial", "", 9)
	l.pdf.CellFormat(bodyWidth/2, 5, "0", "", 0, "L", false, 0, "")
	l.pdf.CellFormat(bodyWidth/2, 5, l.text(gauge.FormatValue(l.format, cfg.Max)), "", 1, "R", false, 0, "")
}

func (l *layout) tableHeader(cols []string, widths []float64) {
	l.pdf.SetFont("Arial", "B", 10)
	l.pdf.SetFillColor(headerGray, headerGray, headerGray)
	for i, c := range cols {
		align := "R"
		if i == 0 {
			align = "L"
		}
		l.pdf.CellFormat(widths[i], lineHeight, l.text(c), "1", 0, align, true, 0, "")
	}
	l.pdf.Ln(-1)
	l.pdf.SetFont("Arial", "", 10)
}

func (l *layout) breakdown(res breakdown.Result) {
	l.section("Breakdown")
	if len(res.Rows) == 0 {
		l.pdf.SetFont("Arial", "I", 10)
		l.pdf.CellFormat(bodyWidth, lineHeight, "No category data.", "", 1, "L", false, 0, "")
		return
	}

	widths := []float64{90, 50, 40}
	l.tableHeader([]string{"Category", "kg CO2e", "Share"}, widths)
	for _, row := range res.Rows {
		x, y := l.pdf.GetX(), l.pdf.GetY()
		r, g, b := hexRGB(row.Color)
		l.pdf.SetFillColor(r, g, b)
		l.pdf.Rect(x+2, y+(lineHeight-swatchSize)/2, swatchSize, swatchSize, "F")
		l.pdf.CellFormat(widths[0], lineHeight, "      "+l.text(row.Label), "1", 0, "L", false, 0, "")
		l.pdf.CellFormat(widths[1], lineHeight, l.text(l.format.Float(row.Value, 0)), "1", 0, "R", false, 0, "")
		l.pdf.CellFormat(widths[2], lineHeight, breakdown.PercentLabel(row.Percent), "1", 1, "R", false, 0, "")
	}
	l.pdf.SetFont("Arial", "B", 10)
	l.pdf.CellFormat(widths[0], lineHeight, "Total", "1", 0, "L", false, 0, "")
	l.pdf.CellFormat(widths[1], lineHeight, l.text(l.format.Float(res.Total, 0)), "1", 0, "R", false, 0, "")
	l.pdf.CellFormat(widths[2], lineHeight, "", "1", 1, "R", false, 0, "")

	if len(res.Unknown) > 0 {
		l.pdf.SetFont("Arial", "I", 9)
		l.pdf.CellFormat(bodyWidth, 6, l.text("Not shown: "+strings.Join(res.Unknown, ", ")), "", 1, "L", false, 0, "")
	}
}

func (l *layout) reductions(bars []breakdown.ReductionBar) {
	if len(bars) == 0 {
		return
	}
	l.section("Reduction Potential")

	widths := []float64{80, 45, 55}
	l.tableHeader([]string{"Action", "kg CO2e / year", ""}, widths)
	for _, bar := range bars {
		l.pdf.CellFormat(widths[0], lineHeight, l.text(bar.Action), "1", 0, "L", false, 0, "")
		l.pdf.CellFormat(widths[1], lineHeight, l.text(l.format.Float(bar.Potential, 2)), "1", 0, "R", false, 0, "")
		x, y := l.pdf.GetX(), l.pdf.GetY()
		l.pdf.CellFormat(widths[2], lineHeight, "", "1", 1, "L", false, 0, "")
		if w := (widths[2] - 4) * bar.Fraction; w > 0 {
			r, g, b := hexRGB(bar.Color)
			l.pdf.SetFillColor(r, g, b)
			l.pdf.Rect(x+2, y+(lineHeight-swatchSize)/2, w, swatchSize, "F")
		}
	}
}

func (l *layout) impact(out greenops.ImpactOutput) {
	l.section("Impact")
	if out.IsEmpty {
		l.pdf.SetFont("Arial", "I", 10)
		l.pdf.CellFormat(bodyWidth, lineHeight, "Footprint too small for meaningful equivalents.", "", 1, "L", false, 0, "")
		return
	}
	for _, cat := range out.Categories {
		l.pdf.SetFont("Arial", "B", 11)
		l.pdf.CellFormat(bodyWidth, lineHeight, l.text(cat.Title), "", 1, "L", false, 0, "")
		l.pdf.SetFont("Arial", "", 10)
		for _, item := range cat.Items {
			l.pdf.CellFormat(110, 6, "    "+l.text(item.Name), "", 0, "L", false, 0, "")
			l.pdf.CellFormat(bodyWidth-110, 6, l.text(item.FormattedValue+" "+item.Unit), "", 1, "R", false, 0, "")
		}
	}
}

// hexRGB parses "#rrggbb". Malformed colors are gray.
func hexRGB(hex string) (int, int, int) {
	const gray = 153
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 { //nolint:mnd // rrggbb
		return gray, gray, gray
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return gray, gray, gray
	}
	return int(v >> 16 & math.MaxUint8), int(v >> 8 & math.MaxUint8), int(v & math.MaxUint8)
}
