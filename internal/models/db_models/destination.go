package db_models

import "github.com/lib/pq"

// Destination is a location with a curated catalog.
type Destination struct {
	BaseModel
	Name    string         `gorm:"not null"`
	Slug    string         `gorm:"uniqueIndex;not null"`
	Aliases pq.StringArray `gorm:"type:text"` // stored as a postgres array literal
	Places  []Place        `gorm:"foreignKey:DestinationID"`
}
