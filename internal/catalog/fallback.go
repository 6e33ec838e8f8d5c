package catalog

import (
	"trippin/internal/itinerary"
)

// FallbackCatalog is the generic catalog served for locations no source
// knows about. It depends only on the location string.
func FallbackCatalog(location string) itinerary.Catalog {
	return itinerary.Catalog{
		itinerary.Historical: {
			itinerary.NewPlace(location+" History Museum", "Local history and culture", 15.0),
			itinerary.NewPlace(location+" Art Gallery", "Regional art collection", 12.0),
			itinerary.NewPlace("Historic Downtown", "Walking tour of historic district", 8.0),
			itinerary.NewPlace("Cultural Center", "Local cultural exhibitions", 10.0),
		},
		itinerary.Food: {
			itinerary.NewPlace("Local Cuisine Restaurant", "Traditional regional dishes", 35.0),
			itinerary.NewPlace("Street Food Market", "Local street food vendors", 12.0),
			itinerary.NewPlace("Fine Dining Experience", "Upscale local restaurant", 85.0),
			itinerary.NewPlace("Café & Bakery", "Local coffee and pastries", 8.0),
		},
		itinerary.Scenic: {
			itinerary.NewPlace(location+" Viewpoint", "Best city/landscape views", 5.0),
			itinerary.NewPlace("City Park", "Main public park and gardens", 0.0),
			itinerary.NewPlace("Scenic Walking Trail", "Nature walk with views", 0.0),
			itinerary.NewPlace("Observation Deck", "Panoramic city views", 18.0),
		},
		itinerary.Nightlife: {
			itinerary.NewPlace("Local Pub", "Traditional local bar", 25.0),
			itinerary.NewPlace("Night Market", "Evening food and shopping", 15.0),
			itinerary.NewPlace("Live Music Venue", "Local bands and performances", 30.0),
			itinerary.NewPlace("Cocktail Lounge", "Upscale drinks and atmosphere", 40.0),
		},
	}
}
