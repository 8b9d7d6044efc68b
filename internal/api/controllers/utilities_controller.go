package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderlens/internal/models/request_models"
	"wanderlens/internal/services"
	"wanderlens/pkg/utils"
)

// UtilitiesController groups the standalone travel tools.
type UtilitiesController struct {
	currencyService services.CurrencyServiceInterface
	weatherService  services.WeatherServiceInterface
	billService     services.BillServiceInterface
	packingService  services.PackingServiceInterface
	playlistService services.PlaylistServiceInterface
	spotsService    services.SpotsServiceInterface
	calendarService services.CalendarServiceInterface
}

func NewUtilitiesController(
	currencyService services.CurrencyServiceInterface,
	weatherService services.WeatherServiceInterface,
	billService services.BillServiceInterface,
	packingService services.PackingServiceInterface,
	playlistService services.PlaylistServiceInterface,
	spotsService services.SpotsServiceInterface,
	calendarService services.CalendarServiceInterface,
) *UtilitiesController {
	return &UtilitiesController{
		currencyService: currencyService,
		weatherService:  weatherService,
		billService:     billService,
		packingService:  packingService,
		playlistService: playlistService,
		spotsService:    spotsService,
		calendarService: calendarService,
	}
}

// ConvertCurrency godoc
// @Summary Convert an amount between currencies
// @Tags Utilities
// @Produce json
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Param amount query number false "Amount (default 1)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /utilities/currency/convert [get]
func (u *UtilitiesController) ConvertCurrency(c *gin.Context) {
	var q request_models.ConvertCurrencyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "from and to are required")
		return
	}
	if c.Query("amount") == "" {
		q.Amount = 1
	}

	result, err := u.currencyService.Convert(c.Request.Context(), q.From, q.To, q.Amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Conversion successful")
}

// CurrencyRates godoc
// @Summary Exchange rates against a base currency
// @Tags Utilities
// @Produce json
// @Param base query string false "Base currency (default USD)"
// @Success 200 {object} utils.APIResponse
// @Router /utilities/currency/rates [get]
func (u *UtilitiesController) CurrencyRates(c *gin.Context) {
	rates, err := u.currencyService.Rates(c.Request.Context(), c.Query("base"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rates, "Rates fetched successfully")
}

// PopularCurrencies godoc
// @Summary Popular currencies with symbols and flags
// @Tags Utilities
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /utilities/currency/popular [get]
func (u *UtilitiesController) PopularCurrencies(c *gin.Context) {
	utils.RespondSuccess(c, u.currencyService.Popular(), "Currencies fetched successfully")
}

// Weather godoc
// @Summary Current weather and forecast together
// @Tags Utilities
// @Produce json
// @Param city query string true "City"
// @Success 200 {object} utils.APIResponse
// @Router /utilities/weather [get]
func (u *UtilitiesController) Weather(c *gin.Context) {
	overview, err := u.weatherService.Overview(c.Request.Context(), c.Query("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, overview, "Weather fetched successfully")
}

// CurrentWeather godoc
// @Summary Current weather for a city
// @Tags Utilities
// @Produce json
// @Param city query string true "City"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /utilities/weather/current [get]
func (u *UtilitiesController) CurrentWeather(c *gin.Context) {
	weather, err := u.weatherService.Current(c.Request.Context(), c.Query("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, weather, "Weather fetched successfully")
}

// Forecast godoc
// @Summary Five-day forecast for a city
// @Tags Utilities
// @Produce json
// @Param city query string true "City"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /utilities/weather/forecast [get]
func (u *UtilitiesController) Forecast(c *gin.Context) {
	forecast, err := u.weatherService.Forecast(c.Request.Context(), c.Query("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, forecast, "Forecast fetched successfully")
}

// DefaultBillPeople godoc
// @Summary Starting participants for a bill split
// @Tags Utilities
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /utilities/bills/people [get]
func (u *UtilitiesController) DefaultBillPeople(c *gin.Context) {
	utils.RespondSuccess(c, u.billService.DefaultPeople(), "People fetched successfully")
}

// SplitBill godoc
// @Summary Split shared expenses
// @Tags Utilities
// @Accept json
// @Produce json
// @Param request body request_models.SplitBillRequest true "People and items"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /utilities/bills/split [post]
func (u *UtilitiesController) SplitBill(c *gin.Context) {
	var req request_models.SplitBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	split, err := u.billService.Split(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, split, "Bill split successfully")
}

// GeneratePackingList godoc
// @Summary Packing list for a trip
// @Tags Utilities
// @Accept json
// @Produce json
// @Param request body request_models.PackingRequest true "Trip details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /utilities/packing/generate [post]
func (u *UtilitiesController) GeneratePackingList(c *gin.Context) {
	var req request_models.PackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	list, err := u.packingService.Generate(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Packing list generated successfully")
}

// GenerateDetailedPackingList godoc
// @Summary Detailed packing list with quantities
// @Tags Utilities
// @Accept json
// @Produce json
// @Param request body request_models.DetailedPackingRequest true "Trip details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /utilities/packing/generate-detailed [post]
func (u *UtilitiesController) GenerateDetailedPackingList(c *gin.Context) {
	var req request_models.DetailedPackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	list, err := u.packingService.GenerateDetailed(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Packing list generated successfully")
}

// GeneratePlaylist godoc
// @Summary Travel playlist by mood or genre
// @Tags Utilities
// @Accept json
// @Produce json
// @Param request body request_models.PlaylistRequest true "Mood, genre and duration"
// @Success 200 {object} utils.APIResponse
// @Router /utilities/playlist/generate [post]
func (u *UtilitiesController) GeneratePlaylist(c *gin.Context) {
	var req request_models.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	utils.RespondSuccess(c, u.playlistService.Generate(req), "Playlist generated successfully")
}

// SearchParking godoc
// @Summary Parking near a location
// @Tags Utilities
// @Produce json
// @Param location query string true "Area or address"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /utilities/parking/search [get]
func (u *UtilitiesController) SearchParking(c *gin.Context) {
	result, err := u.spotsService.SearchParking(c.Query("location"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Parking fetched successfully")
}

// SearchHiddenSpots godoc
// @Summary Off-the-beaten-path spots
// @Tags Utilities
// @Produce json
// @Param category query string false "Category or all"
// @Param difficulty query string false "Difficulty or all"
// @Param cost query string false "Cost band or all"
// @Param crowdLevel query string false "Crowd level or all"
// @Param location query string false "Location or name filter"
// @Success 200 {object} utils.APIResponse
// @Router /utilities/hidden-spots/search [get]
func (u *UtilitiesController) SearchHiddenSpots(c *gin.Context) {
	var q request_models.HiddenSpotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	utils.RespondSuccess(c, u.spotsService.SearchHiddenSpots(q), "Hidden spots fetched successfully")
}

// CalendarMonth godoc
// @Summary Month grid with its events
// @Tags Calendar
// @Produce json
// @Param year query int false "Year (default current)"
// @Param month query int false "Month 1-12 (default current)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /utilities/calendar/month [get]
func (u *UtilitiesController) CalendarMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", "0"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "year must be a number")
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", "0"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "month must be a number")
		return
	}

	grid, err := u.calendarService.Month(c.Request.Context(), year, month)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, grid, "Calendar fetched successfully")
}

// CalendarEvents godoc
// @Summary Events on a date
// @Tags Calendar
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /utilities/calendar/events [get]
func (u *UtilitiesController) CalendarEvents(c *gin.Context) {
	events, err := u.calendarService.EventsOn(c.Request.Context(), c.Query("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

// CreateCalendarEvent godoc
// @Summary Add a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body request_models.CalendarEventRequest true "Event"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /utilities/calendar/events [post]
func (u *UtilitiesController) CreateCalendarEvent(c *gin.Context) {
	var req request_models.CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := u.calendarService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, event, "Event created successfully")
}

// DeleteCalendarEvent godoc
// @Summary Delete a calendar event
// @Tags Calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /utilities/calendar/events/{id} [delete]
func (u *UtilitiesController) DeleteCalendarEvent(c *gin.Context) {
	if err := u.calendarService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}

// UpcomingEvents godoc
// @Summary Next calendar events
// @Tags Calendar
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /utilities/calendar/upcoming [get]
func (u *UtilitiesController) UpcomingEvents(c *gin.Context) {
	events, err := u.calendarService.Upcoming(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}
