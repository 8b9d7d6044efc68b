package db_models

type CalendarEvent struct {
	BaseModel
	Title       string `gorm:"not null"`
	Date        string `gorm:"size:10;index;not null"`
	Time        string `gorm:"not null"`
	Type        string `gorm:"default:activity"`
	Location    string
	Description string
	Reminder    bool
}
