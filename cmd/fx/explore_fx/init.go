package explore_fx

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderlens/internal/catalog"
	"wanderlens/internal/config"
	"wanderlens/internal/services"
)

var Module = fx.Provide(
	services.NewDiscoverService,
	provideMapsService,
	services.NewLicenseService,
	services.NewSurpriseService,
)

func provideMapsService(c *catalog.Catalog, client *http.Client, cfg config.Config, logger *zap.Logger) services.MapsServiceInterface {
	var distances services.RouteDistanceProvider
	if cfg.UsesLiveRoutes() {
		distances = services.NewMapboxMatrixClient(client, cfg.MapboxToken, cfg.MapboxBaseURL)
	}
	return services.NewMapsService(c, distances, logger.Named("maps"))
}
