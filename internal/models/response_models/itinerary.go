package response_models

import "wanderlens/pkg/utils"

type Activity struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Duration    int     `json:"duration"`
	Location    string  `json:"location"`
	Cost        float64 `json:"cost"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	Notes       string  `json:"notes"`
	Completed   bool    `json:"completed"`
	Essential   bool    `json:"essential"`
}

type Day struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"`
	Activities    []Activity `json:"activities"`
	TotalCost     float64    `json:"totalCost"`
	TotalDuration int        `json:"totalDuration"`
	DurationLabel string     `json:"durationLabel"`
}

// Recalculate refreshes the derived totals after any change to Activities.
func (d *Day) Recalculate() {
	d.TotalCost = 0
	d.TotalDuration = 0
	for _, a := range d.Activities {
		d.TotalCost += a.Cost
		d.TotalDuration += a.Duration
	}
	d.DurationLabel = utils.FormatDuration(d.TotalDuration)
}

type Itinerary struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Destination   string   `json:"destination"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Days          []Day    `json:"days"`
	TotalCost     float64  `json:"totalCost"`
	TotalDuration int      `json:"totalDuration"`
	Travelers     int      `json:"travelers"`
	Budget        int      `json:"budget"`
	Preferences   []string `json:"preferences"`
	Personalized  bool     `json:"personalized"`
}

func (it *Itinerary) Recalculate() {
	it.TotalCost = 0
	it.TotalDuration = 0
	for i := range it.Days {
		it.Days[i].Recalculate()
		it.TotalCost += it.Days[i].TotalCost
		it.TotalDuration += it.Days[i].TotalDuration
	}
}

// Clone deep-copies the slices so a stored itinerary never aliases one
// handed to a caller.
func (it Itinerary) Clone() Itinerary {
	out := it
	out.Preferences = append([]string(nil), it.Preferences...)
	out.Days = make([]Day, len(it.Days))
	for i, d := range it.Days {
		d.Activities = append([]Activity(nil), d.Activities...)
		out.Days[i] = d
	}
	return out
}
