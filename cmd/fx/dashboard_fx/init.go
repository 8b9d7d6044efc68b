package dashboard_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wanderlens/internal/repositories"
	"wanderlens/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideSavedPlaceRepo, provideDashboardService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideSavedPlaceRepo(db *gorm.DB) repositories.SavedPlaceRepository {
	return repositories.NewSavedPlaceRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	accounts services.AccountServiceInterface,
	preferences services.PreferenceServiceInterface,
	places repositories.SavedPlaceRepository,
	calendar services.CalendarServiceInterface,
	logger *zap.Logger,
) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, accounts, preferences, places, calendar, logger)
}
