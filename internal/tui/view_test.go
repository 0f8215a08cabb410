package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonmeter/internal/breakdown"
	"github.com/rshade/carbonmeter/internal/gauge"
	"github.com/rshade/carbonmeter/internal/greenops"
	"github.com/rshade/carbonmeter/internal/report"
)

func stateFor(v float64) gauge.State {
	cfg := gauge.DefaultConfig()
	angle := gauge.Angle(v, cfg.Max)
	return gauge.State{Current: v, Target: v, Angle: angle, Tier: gauge.TierForAngle(angle)}
}

func TestMarkerPosition(t *testing.T) {
	assert.Equal(t, 0, markerPosition(180, 21))
	assert.Equal(t, 10, markerPosition(90, 21))
	assert.Equal(t, 20, markerPosition(0, 21))
	assert.Equal(t, 20, markerPosition(-30, 21))
}

func TestRenderMeter(t *testing.T) {
	out := RenderMeter(stateFor(5000), gauge.DefaultConfig(), nil, 60)

	assert.Contains(t, out, "CARBON FOOTPRINT")
	assert.Contains(t, out, "5.000 kg CO₂e")
	assert.Contains(t, out, "Moderado")
	assert.Contains(t, out, "10.000")
	assert.Contains(t, out, meterMarker)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestRenderMeter_AboveMax(t *testing.T) {
	out := RenderMeter(stateFor(15000), gauge.DefaultConfig(), greenops.MustFormatter("en"), 80)
	assert.Contains(t, out, "15,000 kg CO₂e")
	assert.Contains(t, out, "Crítico")
}

func TestWriteMeterPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMeterPlain(&buf, stateFor(2500), gauge.DefaultConfig(), nil))
	assert.Equal(t, "Total: 2.500 kg CO₂e (Baixo, 25.0% of 10.000 kg CO₂e)\n", buf.String())
}

func sampleResult() breakdown.Result {
	return breakdown.Compute(map[string]float64{
		breakdown.KeyAgriculture: 300,
		breakdown.KeyLivestock:   100,
		breakdown.KeyFuel:        100,
		"florestas":              0,
	}, breakdown.DefaultRegistry(), breakdown.TotalAllKeys)
}

func TestRenderBreakdown(t *testing.T) {
	out := RenderBreakdown(sampleResult(), nil, 80)

	assert.Contains(t, out, "BREAKDOWN")
	assert.Contains(t, out, "Agricultura")
	assert.Contains(t, out, "60.0%")
	assert.Contains(t, out, "Combustível")
	assert.Contains(t, out, "florestas")
	assert.Less(t, strings.Index(out, "Agricultura"), strings.Index(out, "Pecuária"))
	assert.Less(t, strings.Index(out, "Pecuária"), strings.Index(out, "Combustível"))

	empty := RenderBreakdown(breakdown.Result{}, nil, 80)
	assert.Contains(t, empty, "No category data.")
}

func TestWriteBreakdownPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBreakdownPlain(&buf, sampleResult(), greenops.MustFormatter("en")))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "CATEGORY")
	assert.Contains(t, lines[1], "Agricultura")
	assert.Contains(t, lines[1], "60.0%")
	assert.Contains(t, lines[2], "Pecuária")
	assert.Contains(t, lines[3], "20.0%")
	assert.Contains(t, lines[4], "500")
}

func TestRenderReductions(t *testing.T) {
	bars := breakdown.Reductions([]report.Recommendation{
		{Action: "Manejo eficiente de fertilizantes", Potential: 500},
		{Action: "Suplementação alimentar para bovinos com aditivos redutores de metano", Potential: 800},
	})
	out := RenderReductions(bars, nil, 100)
	assert.Contains(t, out, "REDUCTION POTENTIAL")
	assert.Contains(t, out, "Manejo eficiente de fertilizantes")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "800 kg")

	var buf bytes.Buffer
	require.NoError(t, WriteReductionsPlain(&buf, bars, nil))
	assert.Contains(t, buf.String(), "500,00")
}

func TestRenderImpact(t *testing.T) {
	out, err := greenops.Impact(context.Background(), greenops.CarbonInput{Value: 10, Unit: "t"})
	require.NoError(t, err)

	styled := RenderImpact(out, 80)
	assert.Contains(t, styled, "Transporte")
	assert.Contains(t, styled, "150 árvores")

	var buf bytes.Buffer
	require.NoError(t, WriteImpactPlain(&buf, out))
	assert.Contains(t, buf.String(), "  Carros retirados por 1 ano: 2,2 carros\n")

	buf.Reset()
	require.NoError(t, WriteImpactPlain(&buf, greenops.ImpactOutput{IsEmpty: true}))
	assert.Contains(t, buf.String(), "too small")
	assert.Contains(t, RenderImpact(greenops.ImpactOutput{IsEmpty: true}, 80), "too small")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "Pecuá...", truncate("Pecuária total", 8))
}
