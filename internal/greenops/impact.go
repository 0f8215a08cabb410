package greenops

import (
	"context"
	"math"

	"github.com/rshade/carbonmeter/internal/logging"
)

// impactSpec describes how one equivalent is derived from tonnes CO2e.
type impactSpec struct {
	name      string
	unit      string
	factor    float64
	divide    bool // value = t / factor when true, t * factor otherwise
	precision int
}

//nolint:gochecknoglobals // Constant lookup table
var impactTable = []struct {
	group ImpactGroup
	specs []impactSpec
}{
	{ImpactTransport, []impactSpec{
		{"Carros retirados por 1 ano", "carros", CarYearTonnes, true, 1},
		{"Km não dirigidos", "km", KmPerTonne, false, 0},
		{"Voos SP-RJ evitados", "voos", FlightTonnes, true, 1},
	}},
	{ImpactEnergy, []impactSpec{
		{"Casas abastecidas por 1 ano", "residências", HomeYearTonnes, true, 1},
		{"Cargas de celular", "cargas", PhoneChargesPerTonne, false, 0},
		{"Lâmpadas LED substituídas", "lâmpadas", LEDBulbsPerTonne, false, 0},
	}},
	{ImpactNature, []impactSpec{
		{"Árvores crescendo por 10 anos", "árvores", TreesPerTonne, false, 0},
		{"Hectares de floresta preservada", "hectares", ForestHectareTonnes, true, 2},
		{"Área de vegetação preservada", "m²", VegetationM2PerTonne, false, 0},
	}},
	{ImpactConsumption, []impactSpec{
		{"Refeições vegetarianas", "refeições", MeatMealsPerTonne, false, 0},
		{"Garrafas plásticas evitadas", "garrafas", WaterBottlesPerTonne, false, 0},
		{"Camisetas não produzidas", "camisetas", TShirtsPerTonne, false, 0},
	}},
}

// Impact expresses input as real-world equivalents using the default locale.
func Impact(ctx context.Context, input CarbonInput) (ImpactOutput, error) {
	return ImpactWith(ctx, defaultFormatter, input)
}

// ImpactWith expresses input as real-world equivalents, formatting values
// with f.
//
// Inputs below MinImpactThresholdKg yield an empty output without error.
// Normalization errors are returned with an empty output.
func ImpactWith(ctx context.Context, f *Formatter, input CarbonInput) (ImpactOutput, error) {
	logger := logging.FromContext(ctx).With().
		Str("component", "greenops").
		Str("operation", "Impact").
		Logger()

	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		logger.Warn().Err(err).Float64("value", input.Value).Str("unit", input.Unit).
			Msg("cannot normalize carbon input")
		return ImpactOutput{IsEmpty: true}, err
	}
	if kg < MinImpactThresholdKg {
		return ImpactOutput{InputKg: kg, IsEmpty: true}, nil
	}

	tonnes := kg / TonsToKg
	out := ImpactOutput{InputKg: kg, Categories: make([]ImpactCategory, 0, len(impactTable))}

	for _, row := range impactTable {
		cat := ImpactCategory{
			Group: row.group,
			Key:   row.group.String(),
			Title: row.group.Title(),
			Items: make([]ImpactItem, 0, len(row.specs)),
		}
		for _, spec := range row.specs {
			v := tonnes * spec.factor
			if spec.divide {
				v = tonnes / spec.factor
			}
			v = roundTo(v, spec.precision)
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return ImpactOutput{IsEmpty: true}, ErrCalculationOverflow
			}
			cat.Items = append(cat.Items, ImpactItem{
				Name:           spec.name,
				Value:          v,
				FormattedValue: f.Float(v, spec.precision),
				Unit:           spec.unit,
			})
		}
		out.Categories = append(out.Categories, cat)
	}

	logger.Debug().Float64("kg", kg).Int("categories", len(out.Categories)).Msg("computed impact equivalents")
	return out, nil
}

func roundTo(v float64, precision int) float64 {
	const base = 10
	m := math.Pow(base, float64(precision))
	return math.Round(v*m) / m
}
