package greenops

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders numbers with the grouping and decimal separators of a
// locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	decimal string
}

// commaDecimalLanguages use "," as decimal separator.
var commaDecimalLanguages = map[string]bool{ //nolint:gochecknoglobals // Constant lookup table
	"pt": true, "es": true, "fr": true, "de": true, "it": true,
	"nl": true, "ru": true, "pl": true, "tr": true, "id": true,
}

// NewFormatter creates a Formatter for a BCP 47 locale such as "pt-BR".
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, locale, err)
	}
	base, _ := tag.Base()
	decimal := "."
	if commaDecimalLanguages[base.String()] {
		decimal = ","
	}
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		decimal: decimal,
	}, nil
}

// MustFormatter is NewFormatter for locales known to be valid.
func MustFormatter(locale string) *Formatter {
	f, err := NewFormatter(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the formatter's locale tag.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Number formats n with thousand separators: 18248 → "18.248" in pt-BR.
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Float formats v with precision decimals and thousand separators:
// 1234.567 at precision 2 → "1.234,57" in pt-BR.
func (f *Formatter) Float(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(v*multiplier) / multiplier

	if precision <= 0 {
		return f.Number(int64(rounded))
	}

	formatted := fmt.Sprintf("%.*f", precision, math.Abs(rounded))
	intPart, fracPart, _ := strings.Cut(formatted, ".")

	var whole int64
	for _, c := range intPart {
		whole = whole*base + int64(c-'0')
	}

	sign := ""
	if rounded < 0 {
		sign = "-"
	}
	return sign + f.Number(whole) + f.decimal + fracPart
}

// Large abbreviates values of a million or more ("~1,5 mi", "~2,0 bi") and
// formats smaller ones as rounded integers.
func (f *Formatter) Large(v float64) string {
	switch {
	case v >= BillionThreshold:
		return "~" + f.Float(v/BillionThreshold, 1) + " bi"
	case v >= LargeNumberThreshold:
		return "~" + f.Float(v/LargeNumberThreshold, 1) + " mi"
	default:
		return f.Number(int64(math.Round(v)))
	}
}

// defaultFormatter backs the package-level helpers.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var defaultFormatter = MustFormatter(DefaultLocale)

// FormatNumber formats n with the default locale.
func FormatNumber(n int64) string {
	return defaultFormatter.Number(n)
}

// FormatFloat formats f with the default locale.
func FormatFloat(f float64, precision int) string {
	return defaultFormatter.Float(f, precision)
}

// FormatLarge formats n with the default locale.
func FormatLarge(n float64) string {
	return defaultFormatter.Large(n)
}
