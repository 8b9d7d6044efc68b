package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlens/internal/models/request_models"
	"wanderlens/internal/services"
	"wanderlens/pkg/utils"
)

// ExploreController serves the browse-style pages: discover, maps, travel
// documents and the surprise trip.
type ExploreController struct {
	discoverService services.DiscoverServiceInterface
	mapsService     services.MapsServiceInterface
	licenseService  services.LicenseServiceInterface
	surpriseService services.SurpriseServiceInterface
}

func NewExploreController(
	discoverService services.DiscoverServiceInterface,
	mapsService services.MapsServiceInterface,
	licenseService services.LicenseServiceInterface,
	surpriseService services.SurpriseServiceInterface,
) *ExploreController {
	return &ExploreController{
		discoverService: discoverService,
		mapsService:     mapsService,
		licenseService:  licenseService,
		surpriseService: surpriseService,
	}
}

// Discover godoc
// @Summary Recommended hotels, restaurants or activities
// @Tags Discover
// @Produce json
// @Param place query string false "Destination (default Delhi)"
// @Param start query string false "Trip start date"
// @Param end query string false "Trip end date"
// @Param tab query string false "hotels | restaurants | activities"
// @Param sort query string false "aiMatch | rating | price | distance"
// @Param max_price query number false "Upper price bound"
// @Param min_rating query number false "Lower rating bound"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /discover [get]
func (e *ExploreController) Discover(c *gin.Context) {
	var q request_models.DiscoverQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := e.discoverService.Discover(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Recommendations fetched successfully")
}

// Locations godoc
// @Summary Map locations around the current position
// @Tags Maps
// @Produce json
// @Param q query string false "Name or address filter"
// @Param type query string false "Place type filter"
// @Success 200 {object} utils.APIResponse
// @Router /maps/locations [get]
func (e *ExploreController) Locations(c *gin.Context) {
	utils.RespondSuccess(c, e.mapsService.Locations(c.Query("q"), c.Query("type")), "Locations fetched successfully")
}

// Route godoc
// @Summary Route between two map locations
// @Tags Maps
// @Produce json
// @Param from query string true "Origin location ID"
// @Param to query string true "Destination location ID"
// @Param mode query string false "walking | driving | transit | cycling"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /maps/route [get]
func (e *ExploreController) Route(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		utils.RespondError(c, http.StatusBadRequest, "from and to are required")
		return
	}

	route, err := e.mapsService.Route(c.Request.Context(), from, to, c.Query("mode"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route fetched successfully")
}

// License godoc
// @Summary Travel documents and app permissions
// @Tags License
// @Produce json
// @Param country query string false "Only documents for this country"
// @Success 200 {object} utils.APIResponse
// @Router /license [get]
func (e *ExploreController) License(c *gin.Context) {
	utils.RespondSuccess(c, e.licenseService.Overview(c.Query("country")), "Documents fetched successfully")
}

// Surprise godoc
// @Summary Random surprise trip
// @Tags Surprise
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /surprise [post]
func (e *ExploreController) Surprise(c *gin.Context) {
	utils.RespondSuccess(c, e.surpriseService.Generate(), "Surprise itinerary generated")
}
