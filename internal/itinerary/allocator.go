package itinerary

import (
	"slices"

	"github.com/shopspring/decimal"
)

var marginRatio = decimal.RequireFromString("0.9")

// Allocation is the outcome of Allocate: the selected places keyed by
// category display label, and their rounded total.
type Allocation struct {
	TotalCost decimal.Decimal
	Places    map[string][]Place
}

// Allocate greedily selects places per category under budget.
//
// Categories are visited in the order of Categories and share one running
// total. Within a category the cheapest candidates are taken first, at most
// max(1, days) of them, while the running total stays within 90% of the
// budget. A category left empty by that pass still gets its single cheapest
// candidate if it fits within the full budget.
//
// TotalCost is rounded to 2 places, halves to even.
//
// Callers must reject days <= 0 and budget <= 0 beforehand.
func Allocate(catalog Catalog, days int, budget decimal.Decimal) Allocation {
	maxPerCategory := max(1, days)
	softCap := budget.Mul(marginRatio)

	total := decimal.Zero
	places := make(map[string][]Place, len(Categories))

	for _, category := range Categories {
		var selected []Place
		selected, total = selectCategory(catalog[category], category.Label(), maxPerCategory, softCap, budget, total)
		places[category.Label()] = selected
	}

	// Half-to-even, the same as Python's round().
	return Allocation{
		TotalCost: total.RoundBank(2),
		Places:    places,
	}
}

func selectCategory(candidates []Place, label string, limit int, softCap, budget, total decimal.Decimal) ([]Place, decimal.Decimal) {
	selected := make([]Place, 0, min(limit, len(candidates)))
	if len(candidates) == 0 {
		return selected, total
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Place) int {
		return a.Price.Cmp(b.Price)
	})

	for _, candidate := range sorted {
		if len(selected) >= limit {
			break
		}
		if total.Add(candidate.Price).LessThanOrEqual(softCap) {
			selected = append(selected, candidate.withCategory(label))
			total = total.Add(candidate.Price)
		}
	}

	if len(selected) == 0 {
		cheapest := sorted[0]
		if total.Add(cheapest.Price).LessThanOrEqual(budget) {
			selected = append(selected, cheapest.withCategory(label))
			total = total.Add(cheapest.Price)
		}
	}

	return selected, total
}
