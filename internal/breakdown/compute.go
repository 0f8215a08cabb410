package breakdown

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// TotalPolicy selects which values contribute to the breakdown total.
type TotalPolicy int

const (
	// TotalAllKeys sums every provided value, including keys that have no
	// registered category. Unknown keys then dilute the percentages.
	TotalAllKeys TotalPolicy = iota
	// TotalRegisteredOnly sums registered categories only, so the rendered
	// percentages always add up to 100.
	TotalRegisteredOnly
)

// String returns the policy name used in configuration files.
func (p TotalPolicy) String() string {
	switch p {
	case TotalAllKeys:
		return "all"
	case TotalRegisteredOnly:
		return "registered"
	default:
		return fmt.Sprintf("TotalPolicy(%d)", int(p))
	}
}

// ParseTotalPolicy parses "all" or "registered". An empty string is "all".
func ParseTotalPolicy(s string) (TotalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return TotalAllKeys, nil
	case "registered":
		return TotalRegisteredOnly, nil
	default:
		return TotalAllKeys, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Row is one rendered category.
type Row struct {
	Category
	Value   float64
	Percent float64
}

// Result is the computed breakdown.
type Result struct {
	Total float64
	Rows  []Row
	// Unknown lists provided keys without a registered category, sorted.
	Unknown []string
	// Skipped lists keys whose value was negative or not finite and was
	// treated as 0, sorted.
	Skipped []string
}

// Compute splits details across the registry. Each registered category
// present in details yields a row, in registry order. Percentages are 0 when
// the total is 0. Total is +Inf when the sum overflows; percentages still
// add up to 100.
func Compute(details map[string]float64, registry *Registry, policy TotalPolicy) Result {
	var (
		res     Result
		largest float64
	)
	clean := make(map[string]float64, len(details))
	for key, v := range details {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			res.Skipped = append(res.Skipped, key)
			v = 0
		}
		clean[key] = v
		_, known := registry.Lookup(key)
		if !known {
			res.Unknown = append(res.Unknown, key)
		}
		if known || policy == TotalAllKeys {
			res.Total += v
			largest = max(largest, v)
		}
	}
	slices.Sort(res.Skipped)
	slices.Sort(res.Unknown)

	// Finite values can still overflow the sum; shares are then computed
	// relative to the largest counted value.
	var scaledTotal float64
	if math.IsInf(res.Total, 1) {
		for key, v := range clean {
			if _, known := registry.Lookup(key); known || policy == TotalAllKeys {
				scaledTotal += v / largest
			}
		}
	}

	res.Rows = make([]Row, 0, registry.Len())
	for _, c := range registry.categories {
		v, ok := clean[c.Key]
		if !ok {
			continue
		}
		row := Row{Category: c, Value: v}
		switch {
		case math.IsInf(res.Total, 1):
			row.Percent = v / largest / scaledTotal * 100
		case res.Total > 0:
			row.Percent = v / res.Total * 100
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}

// PercentLabel formats a percentage with one decimal: 60 → "60.0%".
func PercentLabel(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
