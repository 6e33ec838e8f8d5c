package itinerary

import "github.com/shopspring/decimal"

// Place is a candidate or selected point of interest. Category is empty for
// raw catalog entries and holds the display label once selected.
type Place struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
}

// NewPlace builds a catalog candidate from a float price.
func NewPlace(name, description string, price float64) Place {
	return Place{
		Name:        name,
		Description: description,
		Price:       decimal.NewFromFloat(price),
	}
}

func (p Place) withCategory(label string) Place {
	p.Category = label
	return p
}

// Catalog holds the candidate places of a location, per category.
type Catalog map[Category][]Place

// Empty reports whether no category has any candidate.
func (c Catalog) Empty() bool {
	for _, places := range c {
		if len(places) > 0 {
			return false
		}
	}
	return true
}

// Size is the number of candidates across all categories.
func (c Catalog) Size() int {
	n := 0
	for _, places := range c {
		n += len(places)
	}
	return n
}
