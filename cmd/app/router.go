package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderlens/internal/api/controllers"
	"wanderlens/internal/config"
	"wanderlens/pkg/middleware"
	"wanderlens/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config  config.Config
	Logger  *zap.Logger
	Tokens  *utils.TokenIssuer
	Limiter *middleware.IPRateLimiter

	Health     *controllers.HealthController
	Account    *controllers.AccountController
	Onboarding *controllers.OnboardingController
	Itinerary  *controllers.ItineraryController
	Explore    *controllers.ExploreController
	Dashboard  *controllers.DashboardController
	Utilities  *controllers.UtilitiesController
}

func ProvideRouter(p RouterParams) (*gin.Engine, error) {
	if p.Config.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(p.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.CORSMiddleware(p.Config.CORSAllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(p.Limiter))

	RegisterRoutes(r, p)

	return r, nil
}

// ProvideRateLimiter builds the per-IP limiter and forgets idle clients on a
// ticker for the life of the app.
func ProvideRateLimiter(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) *middleware.IPRateLimiter {
	limiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(middleware.IdleTimeout)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case now := <-ticker.C:
						if n := limiter.Sweep(now); n > 0 {
							logger.Debug("swept idle rate limit clients", zap.Int("count", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.Tokens)

	r.GET("/healthz", p.Health.Health)

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", p.Account.Signup)
	authGroup.POST("/login", p.Account.Login)

	onboardingGroup := r.Group("/onboarding")
	onboardingGroup.POST("", middleware.OptionalJWTMiddleware(p.Tokens), p.Onboarding.SubmitPreferences)
	onboardingGroup.GET("/:id", p.Onboarding.GetPreferences)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/generate", p.Itinerary.Generate)
	itineraryGroup.GET("/generate/:preferenceId", p.Itinerary.GenerateFromStored)
	itineraryGroup.GET("/default", p.Itinerary.Default)
	itineraryGroup.GET("/:id", p.Itinerary.Get)
	itineraryGroup.PATCH("/:id/days/:dayId/activities/:activityId/toggle", p.Itinerary.ToggleActivity)
	itineraryGroup.POST("/:id/days/:dayId/activities", p.Itinerary.AddActivity)
	itineraryGroup.DELETE("/:id/days/:dayId/activities/:activityId", p.Itinerary.RemoveActivity)
	itineraryGroup.GET("/:id/export.pdf", p.Itinerary.ExportPDF)
	itineraryGroup.GET("/:id/share.png", p.Itinerary.ShareQRCode)

	r.GET("/discover", p.Explore.Discover)
	r.GET("/license", p.Explore.License)
	r.POST("/surprise", p.Explore.Surprise)

	mapsGroup := r.Group("/maps")
	mapsGroup.GET("/locations", p.Explore.Locations)
	mapsGroup.GET("/route", p.Explore.Route)

	dashboardGroup := r.Group("/dashboard", auth)
	dashboardGroup.GET("", p.Dashboard.GetDashboard)
	dashboardGroup.GET("/saved-places", p.Dashboard.ListSavedPlaces)
	dashboardGroup.POST("/saved-places", p.Dashboard.SavePlace)
	dashboardGroup.DELETE("/saved-places/:id", p.Dashboard.DeleteSavedPlace)

	adminGroup := r.Group("/admin", auth, middleware.RoleMiddleware("admin"))
	adminGroup.GET("/overview", p.Dashboard.GetAdminOverview)

	utilitiesGroup := r.Group("/utilities")
	utilitiesGroup.GET("/currency/convert", p.Utilities.ConvertCurrency)
	utilitiesGroup.GET("/currency/rates", p.Utilities.CurrencyRates)
	utilitiesGroup.GET("/currency/popular", p.Utilities.PopularCurrencies)
	utilitiesGroup.GET("/weather", p.Utilities.Weather)
	utilitiesGroup.GET("/weather/current", p.Utilities.CurrentWeather)
	utilitiesGroup.GET("/weather/forecast", p.Utilities.Forecast)
	utilitiesGroup.GET("/bills/people", p.Utilities.DefaultBillPeople)
	utilitiesGroup.POST("/bills/split", p.Utilities.SplitBill)
	utilitiesGroup.POST("/packing/generate", p.Utilities.GeneratePackingList)
	utilitiesGroup.POST("/packing/generate-detailed", p.Utilities.GenerateDetailedPackingList)
	utilitiesGroup.POST("/playlist/generate", p.Utilities.GeneratePlaylist)
	utilitiesGroup.GET("/parking/search", p.Utilities.SearchParking)
	utilitiesGroup.GET("/hidden-spots/search", p.Utilities.SearchHiddenSpots)
	utilitiesGroup.GET("/calendar/month", p.Utilities.CalendarMonth)
	utilitiesGroup.GET("/calendar/events", p.Utilities.CalendarEvents)
	utilitiesGroup.POST("/calendar/events", p.Utilities.CreateCalendarEvent)
	utilitiesGroup.DELETE("/calendar/events/:id", p.Utilities.DeleteCalendarEvent)
	utilitiesGroup.GET("/calendar/upcoming", p.Utilities.UpcomingEvents)
}
