package request_models

type AddActivityRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Duration    int     `json:"duration"`
	Location    string  `json:"location"`
	Cost        float64 `json:"cost"`
	Rating      float64 `json:"rating"`
	Notes       string  `json:"notes"`
	Essential   bool    `json:"essential"`
}
