package utilities_fx

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wanderlens/internal/catalog"
	"wanderlens/internal/config"
	"wanderlens/internal/repositories"
	"wanderlens/internal/services"
)

var Module = fx.Provide(
	provideHTTPClient,
	provideCurrencyService,
	provideWeatherService,
	services.NewBillService,
	services.NewPackingService,
	services.NewPlaylistService,
	services.NewSpotsService,
	provideCalendarRepo,
	services.NewCalendarService,
)

func provideHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTPClientTimeout}
}

func provideCurrencyService(c *catalog.Catalog, client *http.Client, cfg config.Config, logger *zap.Logger) services.CurrencyServiceInterface {
	return services.NewCurrencyService(c, client, cfg.CurrencyAPIKey, cfg.CurrencyBaseURL, cfg.UsesLiveCurrency(), logger.Named("currency"))
}

func provideWeatherService(client *http.Client, cfg config.Config, logger *zap.Logger) services.WeatherServiceInterface {
	return services.NewWeatherService(client, cfg.WeatherAPIKey, cfg.WeatherBaseURL, cfg.UsesLiveWeather(), logger.Named("weather"))
}

func provideCalendarRepo(db *gorm.DB) repositories.CalendarRepository {
	return repositories.NewCalendarRepository(db)
}
