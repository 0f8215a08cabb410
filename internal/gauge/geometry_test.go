package gauge

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointAt(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)
	tests := []struct {
		angle float64
		want  Point
	}{
		{180, Point{X: 30, Y: 150}},
		{90, Point{X: 150, Y: 30}},
		{0, Point{X: 270, Y: 150}},
	}
	for _, tt := range tests {
		got := PointAt(150, 150, 120, tt.angle)
		if diff := cmp.Diff(tt.want, got, opt); diff != "" {
			t.Errorf("PointAt(%v) mismatch (-want +got):\n%s", tt.angle, diff)
		}
	}
}

func TestArcPath(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     string
	}{
		{"full semicircle", 180, 0, "M 30 150 A 120 120 0 0 1 270 150"},
		{"low band", 180, 135, "M 30 150 A 120 120 0 0 1 65.15 65.15"},
		{"counterclockwise", 0, 90, "M 270 150 A 120 120 0 0 0 150 30"},
		{"more than half", 270, 0, "M 150 270 A 120 120 0 1 1 270 150"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArcPath(150, 150, 120, tt.from, tt.to))
		})
	}
}

func TestNeedleTransform(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "rotate(-180 150 150)", NeedleTransform(cfg, 180))
	assert.Equal(t, "rotate(0 150 150)", NeedleTransform(cfg, 0))
	assert.Equal(t, "rotate(-67.5 150 150)", NeedleTransform(cfg, 67.5))
}

func TestBuildGeometry_Layout(t *testing.T) {
	ins := BuildGeometry(DefaultConfig())

	var ids []string
	for _, i := range ins {
		ids = append(ids, i.ID)
	}
	want := []string{
		IDBackground,
		"band-0", "band-1", "band-2", "band-3",
		"tick-0", "tick-1", "tick-2", "tick-3", "tick-4",
		"label-0", "label-1", "label-2", "label-3",
		IDNeedle, IDPivot, IDValue,
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("instruction order mismatch (-want +got):\n%s", diff)
	}

	for i, tier := range Tiers() {
		band := ins[1+i]
		assert.Equal(t, OpArc, band.Op)
		assert.Equal(t, tier.Color(), band.Stroke)
	}

	needle := ins[len(ins)-3]
	require.Len(t, needle.Children, 1)
	assert.Equal(t, IDNeedleLine, needle.Children[0].ID)
	assert.Equal(t, "rotate(-180 150 150)", needle.Transform)
}

func TestBuildGeometry_IsPure(t *testing.T) {
	cfg := DefaultConfig()
	if diff := cmp.Diff(BuildGeometry(cfg), BuildGeometry(cfg)); diff != "" {
		t.Fatalf("BuildGeometry is not deterministic:\n%s", diff)
	}
}

func TestBuildGeometry_FitsSurfaceAndHasNoNaN(t *testing.T) {
	cfg := DefaultConfig()
	check := func(p Point) {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, float64(cfg.Width))
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, float64(cfg.Height))
	}
	for _, i := range BuildGeometry(cfg) {
		assert.NotContains(t, strings.ToLower(i.Path), "nan")
		switch i.Op {
		case OpLine:
			check(i.From)
			check(i.To)
		case OpCircle, OpText:
			check(i.At)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max", func(c *Config) { c.Max = 0 }},
		{"damping above one", func(c *Config) { c.Damping = 1.5 }},
		{"zero damping", func(c *Config) { c.Damping = 0 }},
		{"zero epsilon", func(c *Config) { c.Epsilon = 0 }},
		{"radius too large", func(c *Config) { c.Radius = 200 }},
		{"center below surface", func(c *Config) { c.CenterY = 400 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
