package controllers_fx

import (
	"go.uber.org/fx"

	"wanderlens/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewOnboardingController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewExploreController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewUtilitiesController))
