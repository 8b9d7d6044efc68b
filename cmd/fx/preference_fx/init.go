package preference_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wanderlens/internal/repositories"
	"wanderlens/internal/services"
)

var Module = fx.Provide(
	providePreferenceRepo, providePreferenceService)

func providePreferenceRepo(db *gorm.DB) repositories.PreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}

func providePreferenceService(repo repositories.PreferenceRepository, logger *zap.Logger) services.PreferenceServiceInterface {
	return services.NewPreferenceService(repo, logger)
}
