package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderlens/internal/models/request_models"
	"wanderlens/internal/services"
	"wanderlens/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// Generate godoc
// @Summary Build an itinerary from preferences
// @Description Maps the questionnaire answers onto a day-by-day plan
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.PreferencesRequest true "Travel preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/generate [post]
func (i *ItineraryController) Generate(c *gin.Context) {
	var req request_models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.GenerateFromPreferences(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// GenerateFromStored godoc
// @Summary Build an itinerary from stored preferences
// @Description Falls back to the sample itinerary when the preferences cannot be loaded
// @Tags Itinerary
// @Produce json
// @Param preferenceId path string true "Preference ID"
// @Success 200 {object} utils.APIResponse
// @Router /itinerary/generate/{preferenceId} [get]
func (i *ItineraryController) GenerateFromStored(c *gin.Context) {
	itinerary, err := i.itineraryService.GenerateFromStored(c.Request.Context(), c.Param("preferenceId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// Default godoc
// @Summary Sample itinerary
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /itinerary/default [get]
func (i *ItineraryController) Default(c *gin.Context) {
	itinerary, err := i.itineraryService.DefaultItinerary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// Get godoc
// @Summary Get a generated itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id} [get]
func (i *ItineraryController) Get(c *gin.Context) {
	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// ToggleActivity godoc
// @Summary Flip an activity's completed flag
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param dayId path string true "Day ID"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id}/days/{dayId}/activities/{activityId}/toggle [patch]
func (i *ItineraryController) ToggleActivity(c *gin.Context) {
	itinerary, err := i.itineraryService.ToggleActivity(c.Request.Context(), c.Param("id"), c.Param("dayId"), c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Activity updated successfully")
}

// AddActivity godoc
// @Summary Add a custom activity to a day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param dayId path string true "Day ID"
// @Param request body request_models.AddActivityRequest true "Activity"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id}/days/{dayId}/activities [post]
func (i *ItineraryController) AddActivity(c *gin.Context) {
	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.AddActivity(c.Request.Context(), c.Param("id"), c.Param("dayId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, itinerary, "Activity added successfully")
}

// RemoveActivity godoc
// @Summary Remove an activity from a day
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param dayId path string true "Day ID"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id}/days/{dayId}/activities/{activityId} [delete]
func (i *ItineraryController) RemoveActivity(c *gin.Context) {
	itinerary, err := i.itineraryService.RemoveActivity(c.Request.Context(), c.Param("id"), c.Param("dayId"), c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Activity removed successfully")
}

// ExportPDF godoc
// @Summary Download the itinerary as PDF
// @Tags Itinerary
// @Produce application/pdf
// @Param id path string true "Itinerary ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id}/export.pdf [get]
func (i *ItineraryController) ExportPDF(c *gin.Context) {
	id := c.Param("id")
	doc, err := i.itineraryService.ExportPDF(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="itinerary-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// ShareQRCode godoc
// @Summary QR code linking to the itinerary
// @Tags Itinerary
// @Produce image/png
// @Param id path string true "Itinerary ID"
// @Param size query int false "Edge length in pixels (128-1024, default 256)"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id}/share.png [get]
func (i *ItineraryController) ShareQRCode(c *gin.Context) {
	id := c.Param("id")
	size, _ := strconv.Atoi(c.Query("size"))

	png, err := i.itineraryService.ShareQRCode(c.Request.Context(), id, size)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("X-Share-Link", i.itineraryService.ShareLink(id))
	c.Data(http.StatusOK, "image/png", png)
}
