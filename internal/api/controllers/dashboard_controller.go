package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/internal/services"
	"wanderlens/pkg/middleware"
	"wanderlens/pkg/utils"
)

const savedPlacesPageSize = 20

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Traveller dashboard
// @Description Profile, trips from stored preferences, saved places, upcoming events and totals
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	report, err := p.dashboardService.BuildUserDashboard(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard fetched successfully")
}

// ListSavedPlaces godoc
// @Summary Saved places of the caller
// @Tags Dashboard
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/saved-places [get]
func (p *DashboardController) ListSavedPlaces(c *gin.Context) {
	page, pageSize, err := utils.ParsePageParams(c, savedPlacesPageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	places, err := p.dashboardService.ListSavedPlaces(c.Request.Context(), c.GetString(middleware.ContextUserID), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Saved places fetched successfully")
}

// SavePlace godoc
// @Summary Save a place
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body request_models.SavedPlaceRequest true "Place"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/saved-places [post]
func (p *DashboardController) SavePlace(c *gin.Context) {
	var req request_models.SavedPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	place, err := p.dashboardService.SavePlace(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, place, "Place saved successfully")
}

// DeleteSavedPlace godoc
// @Summary Remove a saved place
// @Tags Dashboard
// @Produce json
// @Param id path string true "Saved place ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/saved-places/{id} [delete]
func (p *DashboardController) DeleteSavedPlace(c *gin.Context) {
	if err := p.dashboardService.DeleteSavedPlace(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place removed successfully")
}

// GetAdminOverview godoc
// @Summary Admin overview
// @Description Account, plan and event counts, new-user series, top destinations and travel-style mix
// @Tags Admin
// @Produce json
// @Param start    query string false "RFC3339 start (e.g. 2025-10-01T00:00:00Z)"
// @Param end      query string false "RFC3339 end   (e.g. 2025-10-19T23:59:59Z)"
// @Param last_days query int   false "Relative lookback in days (mutually exclusive with start/end). Default 30"
// @Param interval query string false "Bucket size: day | week | month (default: day)"
// @Param tz       query string false "IANA timezone for bucketing (default: UTC)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/overview [get]
func (p *DashboardController) GetAdminOverview(c *gin.Context) {
	interval := c.DefaultQuery("interval", "day")
	tz := c.DefaultQuery("tz", "UTC")

	if !validInterval(interval) {
		utils.RespondError(c, http.StatusBadRequest, "interval must be one of: day, week, month")
		return
	}
	if _, err := time.LoadLocation(tz); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "tz must be an IANA timezone")
		return
	}

	var (
		start, end time.Time
		err        error
	)

	startStr := c.Query("start")
	endStr := c.Query("end")
	lastDaysStr := c.Query("last_days")

	if lastDaysStr != "" && (startStr != "" || endStr != "") {
		utils.RespondError(c, http.StatusBadRequest, "provide either last_days or start/end (not both)")
		return
	}

	switch {
	case lastDaysStr != "":
		d, convErr := strconv.Atoi(lastDaysStr)
		if convErr != nil || d <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "last_days must be a positive integer")
			return
		}
		end = time.Now().UTC()
		start = end.AddDate(0, 0, -d)

	default:
		if startStr != "" {
			start, err = time.Parse(time.RFC3339, startStr)
			if err != nil {
				utils.RespondError(c, http.StatusBadRequest, "start must be RFC3339 (e.g. 2025-10-01T00:00:00Z)")
				return
			}
		}
		if endStr != "" {
			end, err = time.Parse(time.RFC3339, endStr)
			if err != nil {
				utils.RespondError(c, http.StatusBadRequest, "end must be RFC3339 (e.g. 2025-10-19T23:59:59Z)")
				return
			}
		}
		// Zero bounds are filled in by the service.
	}

	tr := response_models.TimeRange{
		Start:    start,
		End:      end,
		Interval: interval,
		Timezone: tz,
	}

	report, svcErr := p.dashboardService.BuildAdminOverview(c.Request.Context(), tr)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, report, "Overview fetched successfully")
}

func validInterval(s string) bool {
	switch s {
	case "day", "week", "month":
		return true
	default:
		return false
	}
}
