package pdfreport

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonmeter/internal/breakdown"
	"github.com/rshade/carbonmeter/internal/gauge"
	"github.com/rshade/carbonmeter/internal/report"
)

func testSummary() *report.Summary {
	return &report.Summary{
		Total: 5000,
		Details: map[string]float64{
			breakdown.KeyAgriculture: 3000,
			breakdown.KeyLivestock:   1000,
			breakdown.KeyFuel:        1000,
			"energia":                10,
		},
		Recommendations: []report.Recommendation{
			{Action: "Plantio direto", Description: "Menos revolvimento do solo", Potential: 800},
			{Action: "Biodigestor", Potential: 400},
		},
	}
}

func writeReport(t *testing.T, s *report.Summary) string {
	t.Helper()
	var buf bytes.Buffer
	err := Write(context.Background(), &buf, s, Options{
		Gauge:        gauge.DefaultConfig(),
		GeneratedAt:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Uncompressed: true,
	})
	require.NoError(t, err)
	return buf.String()
}

func TestWrite_LaysOutEverySection(t *testing.T) {
	out := writeReport(t, testSummary())

	assert.True(t, bytes.HasPrefix([]byte(out), []byte("%PDF-")))
	assert.Contains(t, out, "%%EOF")

	for _, want := range []string{
		"Carbon Footprint Report",
		"Generated 14/03/2026 09:30",
		"Total: 5.000 kg CO2e",
		"Moderado",
		"Agricultura",
		"60.0%",
		"Not shown: energia",
		"Plantio direto",
		"800,00",
		"Transporte",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWrite_EmptySummary(t *testing.T) {
	out := writeReport(t, &report.Summary{Details: map[string]float64{}})

	assert.Contains(t, out, "No category data.")
	assert.Contains(t, out, "Footprint too small for meaningful equivalents.")
	assert.NotContains(t, out, "Reduction Potential")
}

func TestWrite_Compressed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, testSummary(), Options{Gauge: gauge.DefaultConfig()}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.NotContains(t, buf.String(), "Plantio direto")
}

func TestWrite_NilSummary(t *testing.T) {
	var buf bytes.Buffer
	err := Write(context.Background(), &buf, nil, Options{Gauge: gauge.DefaultConfig()})
	require.ErrorIs(t, err, ErrNilSummary)
	assert.Zero(t, buf.Len())
}

func TestHexRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#4bc0c0", 0x4b, 0xc0, 0xc0},
		{"ff9f40", 0xff, 0x9f, 0x40},
		{"#fff", 153, 153, 153},
		{"#zzzzzz", 153, 153, 153},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, g, b := hexRGB(tt.in)
			assert.Equal(t, []int{tt.r, tt.g, tt.b}, []int{r, g, b})
		})
	}
}
