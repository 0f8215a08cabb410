package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToKg(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    string
		wantKg  float64
		wantErr error
	}{
		{name: "grams", value: 1000, unit: "g", wantKg: 1},
		{name: "kilograms", value: 150, unit: "kg", wantKg: 150},
		{name: "empty unit means kg", value: 42, unit: "", wantKg: 42},
		{name: "tonnes", value: 1.5, unit: "t", wantKg: 1500},
		{name: "pounds", value: 100, unit: "lb", wantKg: 45.3592},
		{name: "tCO2e mixed case", value: 0.15, unit: "TCO2E", wantKg: 150},
		{name: "padded unit", value: 2, unit: " kgCO2e ", wantKg: 2},
		{name: "zero", value: 0, unit: "kg", wantKg: 0},
		{name: "negative", value: -1, unit: "kg", wantErr: ErrNegativeValue},
		{name: "unknown unit", value: 1, unit: "oz", wantErr: ErrInvalidUnit},
		{name: "NaN", value: math.NaN(), unit: "kg", wantErr: ErrCalculationOverflow},
		{name: "infinite", value: math.Inf(1), unit: "kg", wantErr: ErrCalculationOverflow},
		{name: "overflow after conversion", value: math.MaxFloat64, unit: "t", wantErr: ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToKg(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantKg, got, 1e-9)
		})
	}
}

func TestIsRecognizedUnit(t *testing.T) {
	for _, unit := range []string{"g", "kg", "t", "lb", "gCO2e", "kgco2e", ""} {
		assert.True(t, IsRecognizedUnit(unit), unit)
	}
	for _, unit := range []string{"oz", "ton", "kgCO2"} {
		assert.False(t, IsRecognizedUnit(unit), unit)
	}
}
