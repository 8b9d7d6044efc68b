package repositories

import (
	"context"

	"gorm.io/gorm"
	"wanderlens/internal/models/db_models"
)

type SavedPlaceRepository interface {
	Create(ctx context.Context, place *db_models.SavedPlace) error
	ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.SavedPlace, error)
	DeleteForAccount(ctx context.Context, accountID, id string) (bool, error)
}

type savedPlaceRepository struct {
	db *gorm.DB
}

func NewSavedPlaceRepository(db *gorm.DB) SavedPlaceRepository {
	return &savedPlaceRepository{db: db}
}

func (s *savedPlaceRepository) Create(ctx context.Context, place *db_models.SavedPlace) error {
	return s.db.WithContext(ctx).Create(place).Error
}

// ListByAccount returns one page of the account's places, newest first.
// A pageSize of zero returns every row.
func (s *savedPlaceRepository) ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.SavedPlace, error) {
	var places []db_models.SavedPlace
	query := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}
	err := query.Find(&places).Error
	return places, err
}

func (s *savedPlaceRepository) DeleteForAccount(ctx context.Context, accountID, id string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&db_models.SavedPlace{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
