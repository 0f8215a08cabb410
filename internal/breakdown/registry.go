// Package breakdown splits an emissions total across the fixed source
// categories and draws the proportional bar panel.
package breakdown

import "slices"

// Category keys understood by the default registry.
const (
	KeyAgriculture = "agricultura"
	KeyLivestock   = "pecuaria"
	KeyFuel        = "combustivel"
)

// Category is one emissions source shown in the breakdown.
type Category struct {
	Key   string
	Label string
	Color string
}

// Registry is an ordered, immutable set of categories. Rows are rendered in
// registry order.
type Registry struct {
	categories []Category
	byKey      map[string]int
}

// NewRegistry builds a registry. A repeated key keeps its first position
// and is otherwise ignored.
func NewRegistry(categories ...Category) *Registry {
	r := &Registry{byKey: make(map[string]int, len(categories))}
	for _, c := range categories {
		if _, dup := r.byKey[c.Key]; dup {
			continue
		}
		r.byKey[c.Key] = len(r.categories)
		r.categories = append(r.categories, c)
	}
	return r
}

// DefaultRegistry returns the agriculture, livestock and fuel categories.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Category{Key: KeyAgriculture, Label: "Agricultura", Color: "#4bc0c0"},
		Category{Key: KeyLivestock, Label: "Pecuária", Color: "#ff9f40"},
		Category{Key: KeyFuel, Label: "Combustível", Color: "#9966ff"},
	)
}

// Categories returns the categories in order.
func (r *Registry) Categories() []Category {
	return slices.Clone(r.categories)
}

// Lookup returns the category registered under key.
func (r *Registry) Lookup(key string) (Category, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return Category{}, false
	}
	return r.categories[i], true
}

// Len returns the number of categories.
func (r *Registry) Len() int {
	return len(r.categories)
}
