// Package report reads the emissions summary produced by the calculation
// backend.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
)

// ErrInvalidSummary is returned when a summary cannot be decoded or holds
// values that cannot be displayed.
var ErrInvalidSummary = errors.New("invalid emissions summary")

// Recommendation is a mitigation action with its estimated reduction.
type Recommendation struct {
	Action      string  `json:"acao"`
	Description string  `json:"descricao"`
	Potential   float64 `json:"potencial_reducao"` // kg CO₂e per year
}

// Summary is an emissions total with its split per category.
type Summary struct {
	Total           float64            `json:"pegada_total_kg_co2e"`
	Details         map[string]float64 `json:"detalhes"`
	Recommendations []Recommendation   `json:"recomendacoes,omitempty"`
}

// Decode reads a JSON summary from r and validates it.
func Decode(r io.Reader) (*Summary, error) {
	var s Summary
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidSummary, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a summary from path. "-" reads standard input.
func Load(path string) (*Summary, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening summary: %w", err)
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that every value is finite and non-negative.
func (s *Summary) Validate() error {
	var errs []error
	if !valid(s.Total) {
		errs = append(errs, fmt.Errorf("total %v", s.Total))
	}
	for _, key := range s.CategoryKeys() {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, errors.New("empty category key"))
			continue
		}
		if v := s.Details[key]; !valid(v) {
			errs = append(errs, fmt.Errorf("category %s: %v", key, v))
		}
	}
	for i, r := range s.Recommendations {
		if !valid(r.Potential) {
			errs = append(errs, fmt.Errorf("recommendation %d (%s): potential %v", i, r.Action, r.Potential))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSummary, errors.Join(errs...))
	}
	return nil
}

// CategoryKeys returns the detail keys in sorted order.
func (s *Summary) CategoryKeys() []string {
	keys := make([]string, 0, len(s.Details))
	for k := range s.Details {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// DetailsTotal returns the sum of the detail values.
func (s *Summary) DetailsTotal() float64 {
	var sum float64
	for _, v := range s.Details {
		sum += v
	}
	return sum
}

// ParseCategory parses a "key=value" pair as given on the command line.
func ParseCategory(pair string) (string, float64, error) {
	key, raw, ok := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", 0, fmt.Errorf("%w: category %q: want key=value", ErrInvalidSummary, pair)
	}
	var v float64
	if _, err := fmt.Sscan(strings.TrimSpace(raw), &v); err != nil {
		return "", 0, fmt.Errorf("%w: category %q: %w", ErrInvalidSummary, pair, err)
	}
	if !valid(v) {
		return "", 0, fmt.Errorf("%w: category %q: value must be finite and non-negative", ErrInvalidSummary, pair)
	}
	return key, v, nil
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
