package response_models

import "time"

type TripSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Destination  string `json:"destination"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Status       string `json:"status"`
	Budget       int    `json:"budget"`
	PreferenceID string `json:"preferenceId"`
}

type SavedPlaceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
	Image    string  `json:"image"`
	Rating   float64 `json:"rating"`
	Price    float64 `json:"price"`
	SavedAt  string  `json:"savedAt"`
}

type DashboardStats struct {
	Trips       int `json:"trips"`
	SavedPlaces int `json:"savedPlaces"`
	TotalBudget int `json:"totalBudget"`
	Events      int `json:"events"`
}

type DashboardResponse struct {
	Account        AccountResponse         `json:"account"`
	Trips          []TripSummary           `json:"trips"`
	SavedPlaces    []SavedPlaceResponse    `json:"savedPlaces"`
	UpcomingEvents []CalendarEventResponse `json:"upcomingEvents"`
	Stats          DashboardStats          `json:"stats"`
}

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
	Timezone string `json:"timezone,omitempty"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type CountByLabel struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// AdminOverview summarises sign-ups and planning activity over a window.
type AdminOverview struct {
	Range           TimeRange      `json:"range"`
	TotalAccounts   int64          `json:"total_accounts"`
	NewAccounts     int64          `json:"new_accounts"`
	PlansSubmitted  int64          `json:"plans_submitted"`
	CalendarEvents  int64          `json:"calendar_events"`
	NewUsers        []SeriesPoint  `json:"new_users"`
	TopDestinations []CountByLabel `json:"top_destinations"`
	TravelStyles    []CountByLabel `json:"travel_styles"`
}
