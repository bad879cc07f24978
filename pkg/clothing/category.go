package clothing

import (
	"fmt"
	"strings"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

// Category is the closed set of clothing categories.
type Category string

const (
	Shirts      Category = "shirts"
	Pants       Category = "pants"
	Dresses     Category = "dresses"
	Outerwear   Category = "outerwear"
	Accessories Category = "accessories"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Shirts, Pants, Dresses, Outerwear, Accessories}
}

// Title returns the editor-facing label.
func (c Category) Title() string {
	switch c {
	case Shirts:
		return "Shirts"
	case Pants:
		return "Pants"
	case Dresses:
		return "Dresses"
	case Outerwear:
		return "Outerwear"
	case Accessories:
		return "Accessories"
	default:
		return ""
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c.Title() != ""
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a stored value into a Category. Matching is exact:
// stored values are lowercase.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.Valid() {
		return "", fmt.Errorf("clothing: unknown category %q", raw)
	}
	return c, nil
}

func categoryOptions() []schema.ListOption {
	all := Categories()
	out := make([]schema.ListOption, len(all))
	for i, c := range all {
		out[i] = schema.ListOption{Title: c.Title(), Value: string(c)}
	}
	return out
}

func categoryList() string {
	all := Categories()
	values := make([]string, len(all))
	for i, c := range all {
		values[i] = string(c)
	}
	return strings.Join(values, ", ")
}
