package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TravelPreference is one submitted onboarding form. Travelers and Budget keep
// the raw form strings ("3-4", "500+"); readers parse them.
type TravelPreference struct {
	BaseModel
	AccountID *uuid.UUID `gorm:"type:uuid;index"`

	Origin      string `gorm:"not null"`
	Destination string `gorm:"not null"`
	StartDate   string `gorm:"not null"`
	EndDate     string `gorm:"not null"`
	Travelers   string
	Budget      string

	AccommodationType   string
	TransportPreference string
	TravelStyle         string

	Interests           pq.StringArray `gorm:"type:text[]"`
	Activities          pq.StringArray `gorm:"type:text[]"`
	FoodPreferences     pq.StringArray `gorm:"type:text[]"`
	Accessibility       pq.StringArray `gorm:"type:text[]"`
	DietaryRestrictions pq.StringArray `gorm:"type:text[]"`

	SpecialOccasions   string
	Pace               string
	GroupType          string
	WeatherPreference  string
	LanguagePreference string
}
