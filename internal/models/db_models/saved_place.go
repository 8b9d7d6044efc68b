package db_models

import "github.com/google/uuid"

type SavedPlace struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"not null"`
	Type      string
	Location  string
	Image     string
	Rating    float64
	Price     float64
}
