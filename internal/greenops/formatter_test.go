package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "small number no separators", n: 123, want: "123"},
		{name: "four digits", n: 1234, want: "1.234"},
		{name: "gauge ceiling", n: 10000, want: "10.000"},
		{name: "millions", n: 1234567, want: "1.234.567"},
		{name: "zero", n: 0, want: "0"},
		{name: "negative number", n: -1234, want: "-1.234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.n))
		})
	}
}

func TestFormatter_English(t *testing.T) {
	f, err := NewFormatter("en")
	require.NoError(t, err)

	assert.Equal(t, "en", f.Locale())
	assert.Equal(t, "18,248", f.Number(18248))
	assert.Equal(t, "1,234.57", f.Float(1234.567, 2))
	assert.Equal(t, "781.3", f.Float(781.25, 1))
	assert.Equal(t, "~1.5 mi", f.Large(1_500_000))
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		f         float64
		precision int
		want      string
	}{
		{name: "round to integer", f: 18248.56, precision: 0, want: "18.249"},
		{name: "one decimal", f: 60, precision: 1, want: "60,0"},
		{name: "two decimals with grouping", f: 1234.567, precision: 2, want: "1.234,57"},
		{name: "negative", f: -1234.5, precision: 1, want: "-1.234,5"},
		{name: "small fraction", f: 0.05, precision: 2, want: "0,05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.f, tt.precision))
		})
	}
}

func TestFormatLarge(t *testing.T) {
	assert.Equal(t, "999.999", FormatLarge(999_999))
	assert.Equal(t, "~1,5 mi", FormatLarge(1_500_000))
	assert.Equal(t, "~2,3 bi", FormatLarge(2_300_000_000))
}

func TestNewFormatter_InvalidLocale(t *testing.T) {
	_, err := NewFormatter("not a locale!")
	assert.ErrorIs(t, err, ErrInvalidLocale)
}
