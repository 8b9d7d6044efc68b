package response_models

import "wanderlens/internal/catalog"

type DiscoverItem struct {
	ID         string   `json:"id"`
	Kind       string   `json:"kind"`
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	Price      float64  `json:"price"`
	PriceLabel string   `json:"priceLabel"`
	Cuisine    string   `json:"cuisine,omitempty"`
	Image      string   `json:"image"`
	Location   string   `json:"location"`
	Distance   string   `json:"distance"`
	Duration   string   `json:"duration,omitempty"`
	Category   string   `json:"category,omitempty"`
	AIMatch    int      `json:"aiMatch"`
	Highlights []string `json:"highlights"`
	Features   []string `json:"features,omitempty"`
	Reason     string   `json:"reason"`
}

type DiscoverResponse struct {
	Place   string          `json:"place"`
	Start   string          `json:"start,omitempty"`
	End     string          `json:"end,omitempty"`
	Tab     string          `json:"tab"`
	Sort    string          `json:"sort"`
	Items   []DiscoverItem  `json:"items"`
	Alerts  []string        `json:"alerts"`
	Weather WeatherResponse `json:"weather"`
}

type SurpriseActivity struct {
	Time     string  `json:"time"`
	Activity string  `json:"activity"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
	Cost     float64 `json:"cost"`
	Duration string  `json:"duration"`
}

type SurpriseDay struct {
	Day        int                `json:"day"`
	Activities []SurpriseActivity `json:"activities"`
}

type SurpriseItinerary struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Destination string        `json:"destination"`
	Duration    int           `json:"duration"`
	Budget      string        `json:"budget"`
	Theme       string        `json:"theme"`
	Description string        `json:"description"`
	Days        []SurpriseDay `json:"days"`
	TotalCost   float64       `json:"totalCost"`
	Highlights  []string      `json:"highlights"`
}

type ParkingSearchResponse struct {
	Query   string                `json:"query"`
	Matched bool                  `json:"matched"`
	Spots   []catalog.ParkingSpot `json:"spots"`
}

type HiddenSpotsResponse struct {
	Count int                  `json:"count"`
	Spots []catalog.HiddenSpot `json:"spots"`
}

type MapLocation struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Address     string              `json:"address"`
	Coordinates catalog.Coordinates `json:"coordinates"`
	Type        string              `json:"type"`
	Rating      float64             `json:"rating"`
	Price       float64             `json:"price,omitempty"`
	DistanceKm  float64             `json:"distanceKm"`
	Distance    string              `json:"distance"`
}

type MapLocationsResponse struct {
	CurrentPosition catalog.Coordinates `json:"currentPosition"`
	Locations       []MapLocation       `json:"locations"`
}

type RouteResponse struct {
	From       string   `json:"from"`
	To         string   `json:"to"`
	Mode       string   `json:"mode"`
	Transport  string   `json:"transport"`
	DistanceKm float64  `json:"distanceKm"`
	Distance   string   `json:"distance"`
	Duration   string   `json:"duration"`
	Cost       string   `json:"cost"`
	Steps      []string `json:"steps"`
}

type TravelDocumentResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Country         string   `json:"country"`
	IssueDate       string   `json:"issueDate"`
	ExpiryDate      string   `json:"expiryDate"`
	Status          string   `json:"status"`
	DaysUntilExpiry int      `json:"daysUntilExpiry"`
	DocumentURL     string   `json:"documentUrl"`
	Requirements    []string `json:"requirements"`
}

type LicenseResponse struct {
	Country     string                   `json:"country,omitempty"`
	Documents   []TravelDocumentResponse `json:"documents"`
	Permissions []catalog.Permission     `json:"permissions"`
	Countries   []catalog.Country        `json:"countries"`
}
