package repositories

import (
	"context"

	"gorm.io/gorm"
	"wanderlens/internal/models/db_models"
)

type CalendarRepository interface {
	Create(ctx context.Context, event *db_models.CalendarEvent) error
	ListBetween(ctx context.Context, fromDate, toDate string) ([]db_models.CalendarEvent, error)
	ListByDate(ctx context.Context, date string) ([]db_models.CalendarEvent, error)
	ListUpcoming(ctx context.Context, fromDate string, limit int) ([]db_models.CalendarEvent, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type calendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) Create(ctx context.Context, event *db_models.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// Dates are stored as YYYY-MM-DD so lexical comparison orders them.
func (r *calendarRepository) ListBetween(ctx context.Context, fromDate, toDate string) ([]db_models.CalendarEvent, error) {
	var events []db_models.CalendarEvent
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", fromDate, toDate).
		Order("date ASC, time ASC").
		Find(&events).Error
	return events, err
}

func (r *calendarRepository) ListByDate(ctx context.Context, date string) ([]db_models.CalendarEvent, error) {
	var events []db_models.CalendarEvent
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&events).Error
	return events, err
}

func (r *calendarRepository) ListUpcoming(ctx context.Context, fromDate string, limit int) ([]db_models.CalendarEvent, error) {
	var events []db_models.CalendarEvent
	err := r.db.WithContext(ctx).
		Where("date >= ?", fromDate).
		Order("date ASC, time ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *calendarRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.CalendarEvent{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
