package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Place is one candidate of a destination's catalog. Position keeps the
// curated order, which decides ties between equally priced places.
type Place struct {
	BaseModel
	DestinationID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Category      string          `gorm:"index;not null"`
	Name          string          `gorm:"not null"`
	Description   string
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Position      int             `gorm:"not null"`
}
