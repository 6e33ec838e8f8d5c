package request_models

import "trippin/pkg/utils"

type TripRequest struct {
	Location string  `json:"location"`
	Days     int     `json:"days"`
	Budget   float64 `json:"budget"`
}

// Validate checks days, then budget, before any catalog or allocation work.
// A blank location is valid and resolves to the fallback catalog.
func (r TripRequest) Validate() error {
	if r.Days <= 0 {
		return utils.ErrInvalidDays
	}
	if r.Budget <= 0 {
		return utils.ErrInvalidBudget
	}
	return nil
}
