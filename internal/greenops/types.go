// Package greenops converts carbon quantities between units, formats them for
// display and expresses them as real-world impact equivalents.
//
// Equivalents follow the factors used by the farm calculator's impact page:
// they take tonnes of CO2e and describe the same amount as cars off the road,
// homes powered, trees grown, meals swapped and so on.
package greenops

import "fmt"

// ImpactGroup is a display group of related impact equivalents.
type ImpactGroup int

const (
	// ImpactTransport groups transport equivalents (cars, km, flights).
	ImpactTransport ImpactGroup = iota

	// ImpactEnergy groups household energy equivalents.
	ImpactEnergy

	// ImpactNature groups sequestration equivalents (trees, forest area).
	ImpactNature

	// ImpactConsumption groups consumer goods equivalents.
	ImpactConsumption
)

// String returns the machine key of the group.
func (g ImpactGroup) String() string {
	switch g {
	case ImpactTransport:
		return "transporte"
	case ImpactEnergy:
		return "energia"
	case ImpactNature:
		return "natureza"
	case ImpactConsumption:
		return "consumo"
	default:
		return fmt.Sprintf("ImpactGroup(%d)", int(g))
	}
}

// Title returns the display title of the group.
func (g ImpactGroup) Title() string {
	switch g {
	case ImpactTransport:
		return "Transporte"
	case ImpactEnergy:
		return "Energia"
	case ImpactNature:
		return "Natureza"
	case ImpactConsumption:
		return "Consumo"
	default:
		return g.String()
	}
}

// CarbonInput is a carbon quantity with its unit.
type CarbonInput struct {
	// Value is the numeric amount.
	Value float64 `json:"value"`

	// Unit is one of g, kg, t, lb, optionally suffixed with CO2e.
	Unit string `json:"unit"`
}

// ImpactItem is one equivalent within a group.
type ImpactItem struct {
	Name           string  `json:"nome"`
	Value          float64 `json:"valor"`
	FormattedValue string  `json:"valor_formatado"`
	Unit           string  `json:"unidade"`
}

// ImpactCategory is a titled group of equivalents.
type ImpactCategory struct {
	Group ImpactGroup  `json:"-"`
	Key   string       `json:"chave"`
	Title string       `json:"titulo"`
	Items []ImpactItem `json:"impactos"`
}

// ImpactOutput is the full set of equivalents for one quantity.
type ImpactOutput struct {
	// InputKg is the normalized input in kg CO2e.
	InputKg float64 `json:"input_kg"`

	// Categories are ordered transport, energy, nature, consumption.
	Categories []ImpactCategory `json:"categorias"`

	// IsEmpty is true when the input was below MinImpactThresholdKg.
	IsEmpty bool `json:"is_empty"`
}
