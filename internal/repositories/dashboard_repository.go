package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "wanderlens/internal/models/db_models"
)

// DashboardRepository backs the admin overview: sign-up and planning volume.
type DashboardRepository interface {
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error)
	CountPreferences(ctx context.Context, start, end time.Time) (int64, error)
	CountEvents(ctx context.Context) (int64, error)

	NewUsersSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error)
	TopDestinations(ctx context.Context, start, end time.Time, limit int) ([]DestinationRow, error)
	TravelStyleMix(ctx context.Context, start, end time.Time) ([]StyleRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type BucketSum struct {
	Bucket time.Time `gorm:"column:bucket"`
	Sum    int64     `gorm:"column:sum"`
}

type DestinationRow struct {
	Destination string `gorm:"column:destination"`
	Count       int64  `gorm:"column:count"`
}

type StyleRow struct {
	TravelStyle string `gorm:"column:travel_style"`
	Count       int64  `gorm:"column:count"`
}

// dateTrunc buckets a column of UNIX seconds. The returned expression takes
// the interval and, when tz is set, the zone as bind parameters.
func dateTrunc(tz string, unixColumn string) string {
	if tz == "" {
		return "date_trunc(?, to_timestamp(" + unixColumn + "))"
	}
	return "date_trunc(?, timezone(?, to_timestamp(" + unixColumn + ")))"
}

// ---------- Counts ----------
func (r *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountPreferences(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.TravelPreference{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountEvents(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.CalendarEvent{}).Count(&n).Error
	return n, err
}

// ---------- Series ----------
func (r *dashboardRepository) NewUsersSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	var rows []BucketSum
	args := []interface{}{interval}
	if tz != "" {
		args = append(args, tz)
	}
	err := r.db.WithContext(ctx).
		Table("accounts").
		Select(dateTrunc(tz, "created_at")+" AS bucket, COUNT(*) AS sum", args...).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Where("deleted_at IS NULL").
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) TopDestinations(ctx context.Context, start, end time.Time, limit int) ([]DestinationRow, error) {
	var rows []DestinationRow
	err := r.db.WithContext(ctx).
		Table("travel_preferences").
		Select("destination, COUNT(*) AS count").
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Where("destination <> '' AND deleted_at IS NULL").
		Group("destination").
		Order("count DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) TravelStyleMix(ctx context.Context, start, end time.Time) ([]StyleRow, error) {
	var rows []StyleRow
	err := r.db.WithContext(ctx).
		Table("travel_preferences").
		Select("travel_style, COUNT(*) AS count").
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Where("deleted_at IS NULL").
		Group("travel_style").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}
