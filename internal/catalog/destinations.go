package catalog

import (
	"trippin/internal/itinerary"
	"trippin/pkg/utils"
)

// Destination is a location with a curated catalog.
type Destination struct {
	Name    string
	Aliases []string
	Catalog itinerary.Catalog
}

// Key is the normalized lookup key of the destination.
func (d Destination) Key() string {
	return utils.NormalizeLocation(d.Name)
}

// Matches reports whether a normalized location refers to this destination.
func (d Destination) Matches(key string) bool {
	if d.Key() == key {
		return true
	}
	for _, alias := range d.Aliases {
		if utils.NormalizeLocation(alias) == key {
			return true
		}
	}
	return false
}

// BuiltinDestinations returns the curated destinations shipped with the
// service. It is used directly when no database is configured and seeds the
// database otherwise.
//
// Destinations match on the normalized form of their name and aliases, so
// "New York" resolves here instead of falling back to the generated catalog.
// Normalization also strips tabs and other Unicode whitespace, not only ASCII
// spaces.
func BuiltinDestinations() []Destination {
	return []Destination{
		{
			Name:    "Paris",
			Aliases: []string{"paris, france"},
			Catalog: itinerary.Catalog{
				itinerary.Historical: {
					itinerary.NewPlace("Louvre Museum", "World's largest art museum", 17.0),
					itinerary.NewPlace("Musée d'Orsay", "Impressionist masterpieces", 16.0),
					itinerary.NewPlace("Palace of Versailles", "Opulent royal palace", 20.0),
					itinerary.NewPlace("Arc de Triomphe", "Iconic triumphal arch", 13.0),
					itinerary.NewPlace("Sainte-Chapelle", "Gothic chapel with stunning stained glass", 11.5),
				},
				itinerary.Food: {
					itinerary.NewPlace("Le Comptoir du Relais", "Traditional French bistro", 45.0),
					itinerary.NewPlace("L'As du Fallafel", "Famous falafel in the Marais", 8.0),
					itinerary.NewPlace("Pierre Hermé", "Luxury macarons and pastries", 15.0),
					itinerary.NewPlace("Breizh Café", "Modern crêperie", 25.0),
					itinerary.NewPlace("Du Pain et des Idées", "Artisanal bakery", 12.0),
				},
				itinerary.Scenic: {
					itinerary.NewPlace("Eiffel Tower", "Iconic iron lattice tower", 29.4),
					itinerary.NewPlace("Seine River Cruise", "Scenic boat tour", 15.0),
					itinerary.NewPlace("Montmartre & Sacré-Cœur", "Historic hilltop district", 0.0),
					itinerary.NewPlace("Luxembourg Gardens", "Beautiful palace gardens", 0.0),
					itinerary.NewPlace("Trocadéro Gardens", "Best Eiffel Tower views", 0.0),
				},
				itinerary.Nightlife: {
					itinerary.NewPlace("Moulin Rouge", "Famous cabaret show", 87.0),
					itinerary.NewPlace("Buddha-Bar", "Upscale cocktail lounge", 35.0),
					itinerary.NewPlace("Le Marais Bars", "Trendy bar district", 25.0),
					itinerary.NewPlace("Lido de Paris", "Glamorous cabaret", 75.0),
					itinerary.NewPlace("Hemingway Bar", "Classic cocktail bar at The Ritz", 40.0),
				},
			},
		},
		{
			Name: "Tokyo",
			Catalog: itinerary.Catalog{
				itinerary.Historical: {
					itinerary.NewPlace("Tokyo National Museum", "Japan's oldest and largest museum", 12.0),
					itinerary.NewPlace("Senso-ji Temple", "Ancient Buddhist temple", 0.0),
					itinerary.NewPlace("Imperial Palace", "Emperor's primary residence", 0.0),
					itinerary.NewPlace("Meiji Shrine", "Shinto shrine in forest setting", 0.0),
					itinerary.NewPlace("Tokyo National Museum of Modern Art", "Premier modern art collection", 5.0),
				},
				itinerary.Food: {
					itinerary.NewPlace("Tsukiji Outer Market", "Fresh sushi and street food", 20.0),
					itinerary.NewPlace("Ramen Yokocho", "Famous ramen alley", 12.0),
					itinerary.NewPlace("Sukiyabashi Jiro", "World-renowned sushi restaurant", 300.0),
					itinerary.NewPlace("Izakaya Torikizoku", "Popular yakitori chain", 15.0),
					itinerary.NewPlace("Gonpachi", "Traditional Japanese dining", 45.0),
				},
				itinerary.Scenic: {
					itinerary.NewPlace("Tokyo Skytree", "Tallest structure in Japan", 25.0),
					itinerary.NewPlace("Shibuya Crossing", "World's busiest pedestrian crossing", 0.0),
					itinerary.NewPlace("Cherry Blossom Viewing", "Seasonal sakura experience", 0.0),
					itinerary.NewPlace("Tokyo Bay Cruise", "Scenic harbor tour", 18.0),
					itinerary.NewPlace("Roppongi Hills Observatory", "City skyline views", 20.0),
				},
				itinerary.Nightlife: {
					itinerary.NewPlace("Golden Gai", "Tiny bars in Shinjuku", 30.0),
					itinerary.NewPlace("Robot Restaurant", "Quirky robot show", 65.0),
					itinerary.NewPlace("Karaoke Box", "Private karaoke rooms", 25.0),
					itinerary.NewPlace("Roppongi Clubs", "International nightlife district", 40.0),
					itinerary.NewPlace("Sake Tasting Bar", "Traditional sake experience", 35.0),
				},
			},
		},
		{
			Name:    "New York",
			Aliases: []string{"NYC", "New York City"},
			Catalog: itinerary.Catalog{
				itinerary.Historical: {
					itinerary.NewPlace("Metropolitan Museum of Art", "World-class art collection", 30.0),
					itinerary.NewPlace("9/11 Memorial & Museum", "Moving tribute to victims", 26.0),
					itinerary.NewPlace("Statue of Liberty", "Symbol of freedom", 23.5),
					itinerary.NewPlace("Ellis Island", "Immigration history museum", 23.5),
					itinerary.NewPlace("Museum of Natural History", "Dinosaurs and planetarium", 28.0),
				},
				itinerary.Food: {
					itinerary.NewPlace("Katz's Delicatessen", "Famous pastrami sandwiches", 25.0),
					itinerary.NewPlace("Joe's Pizza", "Classic New York slice", 8.0),
					itinerary.NewPlace("Peter Luger Steak House", "Legendary steakhouse", 120.0),
					itinerary.NewPlace("Russ & Daughters", "Appetizing shop since 1914", 35.0),
					itinerary.NewPlace("Xi'an Famous Foods", "Hand-pulled noodles", 15.0),
				},
				itinerary.Scenic: {
					itinerary.NewPlace("Central Park", "Urban oasis in Manhattan", 0.0),
					itinerary.NewPlace("Brooklyn Bridge", "Iconic suspension bridge", 0.0),
					itinerary.NewPlace("High Line", "Elevated park on old railway", 0.0),
					itinerary.NewPlace("Top of the Rock", "Empire State Building views", 39.0),
					itinerary.NewPlace("Staten Island Ferry", "Free harbor views", 0.0),
				},
				itinerary.Nightlife: {
					itinerary.NewPlace("Broadway Show", "World-class theater", 150.0),
					itinerary.NewPlace("Rooftop Bar 230 Fifth", "Empire State Building views", 45.0),
					itinerary.NewPlace("Comedy Cellar", "Famous comedy club", 35.0),
					itinerary.NewPlace("Jazz at Lincoln Center", "Premier jazz venue", 75.0),
					itinerary.NewPlace("Speakeasy PDT", "Hidden cocktail bar", 40.0),
				},
			},
		},
	}
}
