package response_models

type Place struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type ItineraryResponse struct {
	Location  string             `json:"location"`
	Days      int                `json:"days"`
	Budget    float64            `json:"budget"`
	TotalCost float64            `json:"total_cost"`
	Places    map[string][]Place `json:"places"`
}

type CatalogResponse struct {
	Location string             `json:"location"`
	Source   string             `json:"source"`
	Places   map[string][]Place `json:"places"`
}

type DestinationResponse struct {
	Name string `json:"name"`
}
