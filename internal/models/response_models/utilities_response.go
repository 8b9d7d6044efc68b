package response_models

import "wanderlens/internal/catalog"

type ConversionResponse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
	Result float64 `json:"result"`
}

type RatesResponse struct {
	Base        string             `json:"base"`
	Rates       map[string]float64 `json:"rates"`
	LastUpdated string             `json:"lastUpdated"`
}

type WeatherResponse struct {
	Temperature int     `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Icon        string  `json:"icon"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
}

type TemperatureRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type ForecastDay struct {
	Date        string           `json:"date"`
	Temperature TemperatureRange `json:"temperature"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Humidity    int              `json:"humidity"`
	WindSpeed   float64          `json:"windSpeed"`
}

type WeatherOverview struct {
	Current  WeatherResponse `json:"current"`
	Forecast []ForecastDay   `json:"forecast"`
}

type BillItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	SharedBy []string `json:"sharedBy"`
	Category string   `json:"category"`
}

type PersonShare struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []BillItem `json:"items"`
	Total float64    `json:"total"`
}

type SplitBillResponse struct {
	People    []PersonShare `json:"people"`
	Items     []BillItem    `json:"items"`
	TotalBill float64       `json:"totalBill"`
}

type PackingItem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Quantity         int    `json:"quantity"`
	Packed           bool   `json:"packed"`
	Essential        bool   `json:"essential"`
	WeatherDependent bool   `json:"weatherDependent,omitempty"`
}

type PackingSummary struct {
	Total             int     `json:"total"`
	Packed            int     `json:"packed"`
	EssentialUnpacked int     `json:"essentialUnpacked"`
	Progress          float64 `json:"progress"`
}

type PackingListResponse struct {
	Destination string                   `json:"destination"`
	Items       []PackingItem            `json:"items"`
	ByCategory  map[string][]PackingItem `json:"byCategory"`
	Summary     PackingSummary           `json:"summary"`
}

type PlaylistResponse struct {
	Mood     string         `json:"mood"`
	Genre    string         `json:"genre"`
	Duration string         `json:"duration"`
	Limit    int            `json:"limit"`
	Widened  bool           `json:"widened"`
	Songs    []catalog.Song `json:"songs"`
	// TotalDuration is the running time of Songs, e.g. "1h 10m".
	TotalDuration string `json:"totalDuration"`
}

type CalendarMonthResponse struct {
	Year   int                     `json:"year"`
	Month  int                     `json:"month"`
	Name   string                  `json:"name"`
	Cells  []*int                  `json:"cells"`
	Events []CalendarEventResponse `json:"events"`
}

type CalendarEventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Reminder    bool   `json:"reminder"`
}
