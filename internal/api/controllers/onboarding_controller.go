package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlens/internal/models/request_models"
	"wanderlens/internal/services"
	"wanderlens/pkg/middleware"
	"wanderlens/pkg/utils"
)

type OnboardingController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewOnboardingController(preferenceService services.PreferenceServiceInterface) *OnboardingController {
	return &OnboardingController{preferenceService: preferenceService}
}

// SubmitPreferences godoc
// @Summary Store onboarding answers
// @Description Validates the travel questionnaire and stores it. Signed-in callers own the stored row.
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body request_models.PreferencesRequest true "Travel preferences"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /onboarding [post]
func (o *OnboardingController) SubmitPreferences(c *gin.Context) {
	var req request_models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pref, err := o.preferenceService.SavePreferences(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, pref, "Preferences saved successfully")
}

// GetPreferences godoc
// @Summary Get stored preferences
// @Tags Onboarding
// @Produce json
// @Param id path string true "Preference ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /onboarding/{id} [get]
func (o *OnboardingController) GetPreferences(c *gin.Context) {
	pref, err := o.preferenceService.GetPreferences(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pref, "Preferences fetched successfully")
}
