package db_models

const RoleUser = "user"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	TravelStyle  string
	Role         string `gorm:"default:user"`

	Preferences []TravelPreference `gorm:"foreignKey:AccountID"`
	SavedPlaces []SavedPlace       `gorm:"foreignKey:AccountID"`
}
