package itinerary

// Category is one of the four fixed grouping keys for places.
type Category string

const (
	Historical Category = "historical"
	Food       Category = "food"
	Scenic     Category = "scenic"
	Nightlife  Category = "nightlife"
)

// Categories lists every category in processing order. Earlier categories
// get first claim on the budget.
var Categories = []Category{Historical, Food, Scenic, Nightlife}

var labels = map[Category]string{
	Historical: "Historical Museums & Art Galleries",
	Food:       "Food Places",
	Scenic:     "Scenic & Natural Places",
	Nightlife:  "Partying & Adult Entertainment",
}

// Label returns the human-readable display label of the category.
func (c Category) Label() string {
	return labels[c]
}

func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// ParseCategory accepts an internal key such as "food".
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}
