package greenops

// Impact factors, applied to tonnes CO2e. Divisors describe how many tonnes
// one unit of the equivalent emits; multipliers describe how many units one
// tonne corresponds to.
const (
	// CarYearTonnes is tCO2e emitted by one car in one year.
	CarYearTonnes = 4.6
	// KmPerTonne is km of car travel per tCO2e (about 260 g/km).
	KmPerTonne = 3863.0
	// FlightTonnes is tCO2e of one São Paulo–Rio flight.
	FlightTonnes = 0.6

	// HomeYearTonnes is tCO2e of one Brazilian home's electricity for a year.
	HomeYearTonnes = 1.5
	// PhoneChargesPerTonne is smartphone charges per tCO2e (5.5 g each).
	PhoneChargesPerTonne = 183000.0
	// LEDBulbsPerTonne is incandescent bulbs replaced by LED per tCO2e.
	LEDBulbsPerTonne = 35.0

	// TreesPerTonne is trees grown for 10 years per tCO2e (~67 kg each).
	TreesPerTonne = 15.0
	// ForestHectareTonnes is tCO2e kept by one hectare of forest in a year.
	ForestHectareTonnes = 6.0
	// VegetationM2PerTonne is m² of native vegetation preserved per tCO2e.
	VegetationM2PerTonne = 250.0

	// MeatMealsPerTonne is meat meals replaced by vegetarian ones per tCO2e.
	MeatMealsPerTonne = 600.0
	// WaterBottlesPerTonne is 1 L plastic bottles not produced per tCO2e.
	WaterBottlesPerTonne = 8500.0
	// TShirtsPerTonne is cotton t-shirts not produced per tCO2e.
	TShirtsPerTonne = 30.0
)

// Unit conversion constants for normalizing carbon values to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Display thresholds.
const (
	// MinImpactThresholdKg is the smallest amount for which equivalents are
	// computed. Below it every equivalent rounds to nothing meaningful.
	MinImpactThresholdKg = 1.0

	// LargeNumberThreshold switches FormatLarge to "~X,X mi" notation.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches FormatLarge to "~X,X bi" notation.
	BillionThreshold = 1_000_000_000
)

// DefaultLocale is the locale used by the package-level format helpers.
const DefaultLocale = "pt-BR"
