package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wanderlens/internal/models/db_models"
)

type PreferenceRepository interface {
	Create(ctx context.Context, pref *db_models.TravelPreference) error
	FindById(ctx context.Context, id string) (*db_models.TravelPreference, error)
	ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.TravelPreference, error)
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (p *preferenceRepository) Create(ctx context.Context, pref *db_models.TravelPreference) error {
	return p.db.WithContext(ctx).Create(pref).Error
}

func (p *preferenceRepository) FindById(ctx context.Context, id string) (*db_models.TravelPreference, error) {
	var pref db_models.TravelPreference
	err := p.db.WithContext(ctx).First(&pref, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (p *preferenceRepository) ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.TravelPreference, error) {
	var prefs []db_models.TravelPreference
	offset := (page - 1) * pageSize
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}
