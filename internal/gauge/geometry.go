package gauge

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Op is the primitive an Instruction draws.
type Op int

// Draw operations.
const (
	OpArc Op = iota
	OpLine
	OpCircle
	OpText
	OpGroup
)

// Point is a position on the drawing surface. Y grows downward.
type Point struct {
	X, Y float64
}

// Instruction is one draw step of the gauge. Fields not used by Op are zero.
type Instruction struct {
	ID string
	Op Op

	Path     string // OpArc
	From, To Point  // OpLine
	At       Point  // OpCircle centre, OpText anchor
	Radius   float64
	Text     string

	Stroke      string
	StrokeWidth float64
	Fill        string
	FontSize    float64
	Anchor      string // start, middle, end

	Transform string        // OpGroup
	Children  []Instruction // OpGroup
}

// Element ids emitted by BuildGeometry.
const (
	IDBackground = "background"
	IDNeedle     = "needle"
	IDNeedleLine = "needle-line"
	IDPivot      = "pivot"
	IDValue      = "value"
)

// BandID returns the id of a tier's band arc.
func BandID(t Tier) string { return "band-" + strconv.Itoa(int(t)) }

// TickID returns the id of the i-th tick mark, counted from the left.
func TickID(i int) string { return "tick-" + strconv.Itoa(i) }

// TierLabelID returns the id of a tier's text label.
func TierLabelID(t Tier) string { return "label-" + strconv.Itoa(int(t)) }

const (
	backgroundColor = "#e6e6e6"
	tickColor       = "#555555"
	textColor       = "#333333"
	tickLength      = 6.0
	labelInset      = 16.0
	labelFontSize   = 10.0
	valueFontSize   = 14.0
	valueOffset     = 24.0
	needleWidth     = 4.0
	pivotRadius     = 8.0
	tickCount       = 5
)

// PointAt returns the point at angle degrees on a circle of radius r around
// (cx, cy). Angles follow the gauge convention: 0° points right, 90° up,
// 180° left; the screen angle is negated because y grows downward.
func PointAt(cx, cy, r, angle float64) Point {
	theta := -angle * math.Pi / fullSweep
	return Point{
		X: cx + r*math.Cos(theta),
		Y: cy + r*math.Sin(theta),
	}
}

// ArcPath returns an SVG path drawing the arc of radius r around (cx, cy)
// from angle from to angle to. The large-arc flag is set when the swept
// angle exceeds 180°; decreasing angles sweep clockwise on screen.
func ArcPath(cx, cy, r, from, to float64) string {
	start := PointAt(cx, cy, r, from)
	end := PointAt(cx, cy, r, to)

	largeArc := 0
	if math.Abs(from-to) > fullSweep {
		largeArc = 1
	}
	sweep := 0
	if from > to {
		sweep = 1
	}

	return fmt.Sprintf("M %s %s A %s %s 0 %d %d %s %s",
		num(start.X), num(start.Y), num(r), num(r), largeArc, sweep, num(end.X), num(end.Y))
}

// NeedleTransform returns the rotation placing the needle at angle. The
// needle is drawn pointing at 0°.
func NeedleTransform(cfg Config, angle float64) string {
	return fmt.Sprintf("rotate(%s %s %s)", num(-angle), num(cfg.CenterX), num(cfg.CenterY))
}

// BuildGeometry computes the static gauge drawing for cfg. It has no side
// effects; the needle is placed at the zero position (180°) and the value
// label is empty.
//
// Order: background arc, tier bands from low to severe, tick marks left to
// right, tier labels, needle group, pivot, value label.
func BuildGeometry(cfg Config) []Instruction {
	cx, cy, r := cfg.CenterX, cfg.CenterY, cfg.Radius
	out := make([]Instruction, 0, 2*len(Tiers())+tickCount+4)

	out = append(out, Instruction{
		ID:          IDBackground,
		Op:          OpArc,
		Path:        ArcPath(cx, cy, r, fullSweep, 0),
		Stroke:      backgroundColor,
		StrokeWidth: cfg.Thickness + 2,
		Fill:        "none",
	})

	for _, t := range Tiers() {
		from, to := t.Span()
		out = append(out, Instruction{
			ID:          BandID(t),
			Op:          OpArc,
			Path:        ArcPath(cx, cy, r, from, to),
			Stroke:      t.Color(),
			StrokeWidth: cfg.Thickness,
			Fill:        "none",
		})
	}

	outer := r + cfg.Thickness/2
	for i := range tickCount {
		angle := fullSweep - float64(i)*fullSweep/(tickCount-1)
		out = append(out, Instruction{
			ID:          TickID(i),
			Op:          OpLine,
			From:        PointAt(cx, cy, outer, angle),
			To:          PointAt(cx, cy, outer+tickLength, angle),
			Stroke:      tickColor,
			StrokeWidth: 1,
		})
	}

	inner := r - cfg.Thickness/2 - labelInset
	for _, t := range Tiers() {
		from, to := t.Span()
		out = append(out, Instruction{
			ID:       TierLabelID(t),
			Op:       OpText,
			At:       PointAt(cx, cy, inner, (from+to)/2),
			Text:     t.Label(),
			Fill:     textColor,
			FontSize: labelFontSize,
			Anchor:   "middle",
		})
	}

	out = append(out,
		Instruction{
			ID:        IDNeedle,
			Op:        OpGroup,
			Transform: NeedleTransform(cfg, fullSweep),
			Children: []Instruction{{
				ID:          IDNeedleLine,
				Op:          OpLine,
				From:        Point{X: cx, Y: cy},
				To:          Point{X: cx + cfg.NeedleLength, Y: cy},
				Stroke:      TierLow.Color(),
				StrokeWidth: needleWidth,
			}},
		},
		Instruction{
			ID:     IDPivot,
			Op:     OpCircle,
			At:     Point{X: cx, Y: cy},
			Radius: pivotRadius,
			Fill:   TierLow.Color(),
		},
		Instruction{
			ID:       IDValue,
			Op:       OpText,
			At:       Point{X: cx, Y: cy + valueOffset},
			Fill:     textColor,
			FontSize: valueFontSize,
			Anchor:   "middle",
		},
	)
	return out
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
