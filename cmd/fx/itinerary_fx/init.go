package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderlens/internal/catalog"
	"wanderlens/internal/config"
	"wanderlens/internal/models/response_models"
	"wanderlens/internal/services"
	mem "wanderlens/pkg/memcache"
)

var Module = fx.Provide(
	services.NewPlanner, provideItineraryService)

func provideItineraryService(
	planner *services.Planner,
	c *catalog.Catalog,
	preferences services.PreferenceServiceInterface,
	store *mem.TTLStore[response_models.Itinerary],
	cfg config.Config,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(planner, c, preferences, store, cfg.ItineraryTTL, cfg.AppBaseURL, logger)
}
