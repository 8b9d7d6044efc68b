package request_models

// PreferencesRequest is the onboarding form as submitted.
type PreferencesRequest struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Travelers   FormValue `json:"travelers"`

	Budget              FormValue `json:"budget"`
	AccommodationType   string    `json:"accommodationType"`
	TransportPreference string    `json:"transportPreference"`
	TravelStyle         string    `json:"travelStyle"`

	Interests       []string `json:"interests"`
	Activities      []string `json:"activities"`
	FoodPreferences []string `json:"foodPreferences"`

	Accessibility       []string `json:"accessibility"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	SpecialOccasions    string   `json:"specialOccasions"`

	Pace               string `json:"pace"`
	GroupType          string `json:"groupType"`
	WeatherPreference  string `json:"weatherPreference"`
	LanguagePreference string `json:"languagePreference"`
}
