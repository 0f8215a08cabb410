package gauge

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid gauge config")

// Config fixes the geometry and animation parameters of a gauge.
type Config struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	CenterX      float64 `yaml:"center_x"`
	CenterY      float64 `yaml:"center_y"`
	Radius       float64 `yaml:"radius"`
	Thickness    float64 `yaml:"thickness"`
	NeedleLength float64 `yaml:"needle_length"`

	// Max is the value that maps to 0°; larger values are clamped.
	Max float64 `yaml:"max"`
	// Damping is the fraction of the remaining distance covered per frame.
	Damping float64 `yaml:"damping"`
	// Epsilon is the remaining distance below which the needle snaps.
	Epsilon float64 `yaml:"epsilon"`
}

// Default geometry and animation parameters.
const (
	DefaultWidth        = 300
	DefaultHeight       = 180
	DefaultRadius       = 120.0
	DefaultThickness    = 20.0
	DefaultNeedleLength = 80.0
	DefaultMax          = 10000.0
	DefaultDamping      = 0.1
	DefaultEpsilon      = 1.0
)

// DefaultConfig returns a 300x180 gauge centred at (150,150) with a 120px
// radius, a 10 000 kg ceiling, 10% damping and a 1 kg snap threshold.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		CenterX:      DefaultWidth / 2,
		CenterY:      150,
		Radius:       DefaultRadius,
		Thickness:    DefaultThickness,
		NeedleLength: DefaultNeedleLength,
		Max:          DefaultMax,
		Damping:      DefaultDamping,
		Epsilon:      DefaultEpsilon,
	}
}

// Validate checks the animation parameters and that the semicircle, bands
// included, fits the drawing surface.
func (c Config) Validate() error {
	var errs []error
	if c.Max <= 0 {
		errs = append(errs, fmt.Errorf("max must be > 0, got %g", c.Max))
	}
	if c.Damping <= 0 || c.Damping > 1 {
		errs = append(errs, fmt.Errorf("damping must be in (0, 1], got %g", c.Damping))
	}
	if c.Epsilon <= 0 {
		errs = append(errs, fmt.Errorf("epsilon must be > 0, got %g", c.Epsilon))
	}
	if c.Radius <= 0 || c.Thickness < 0 {
		errs = append(errs, fmt.Errorf("radius must be > 0 and thickness >= 0, got %g/%g", c.Radius, c.Thickness))
	}

	outer := c.Radius + c.Thickness/2
	if c.CenterX-outer < 0 || c.CenterX+outer > float64(c.Width) ||
		c.CenterY-outer < 0 || c.CenterY > float64(c.Height) {
		errs = append(errs, fmt.Errorf("semicircle of radius %g at (%g,%g) does not fit %dx%d",
			outer, c.CenterX, c.CenterY, c.Width, c.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
