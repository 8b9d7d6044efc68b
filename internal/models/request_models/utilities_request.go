package request_models

type ConvertCurrencyQuery struct {
	From   string  `form:"from" binding:"required"`
	To     string  `form:"to" binding:"required"`
	Amount float64 `form:"amount"`
}

type PersonInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BillItemInput leaves SharedBy nil to mean "everyone"; an explicit empty
// list means nobody shares the item.
type BillItemInput struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	SharedBy []string `json:"sharedBy"`
	Category string   `json:"category"`
}

type SplitBillRequest struct {
	People        []PersonInput   `json:"people"`
	Items         []BillItemInput `json:"items"`
	RemovePersons []string        `json:"removePersons"`
}

type PackingRequest struct {
	Destination string    `json:"destination"`
	Duration    FormValue `json:"duration"`
	Season      string    `json:"season"`
	Transport   string    `json:"transport"`
	Travelers   int       `json:"travelers"`
	Activities  []string  `json:"activities"`
	Packed      []string  `json:"packed"`
}

type DetailedPackingRequest struct {
	Destination   string   `json:"destination"`
	Duration      int      `json:"duration"`
	Season        string   `json:"season"`
	Weather       string   `json:"weather"`
	Activities    []string `json:"activities"`
	Accommodation string   `json:"accommodation"`
	Transport     string   `json:"transport"`
	Packed        []string `json:"packed"`
}

type PlaylistRequest struct {
	Mood        string `json:"mood"`
	Genre       string `json:"genre"`
	Duration    string `json:"duration"`
	Activity    string `json:"activity"`
	Destination string `json:"destination"`
	Season      string `json:"season"`
}

type HiddenSpotsQuery struct {
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
	Cost       string `form:"cost"`
	CrowdLevel string `form:"crowdLevel"`
	Location   string `form:"location"`
}

type CalendarEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Reminder    bool   `json:"reminder"`
}

type DiscoverQuery struct {
	Place     string  `form:"place"`
	Start     string  `form:"start"`
	End       string  `form:"end"`
	Tab       string  `form:"tab"`
	Sort      string  `form:"sort"`
	MaxPrice  float64 `form:"max_price"`
	MinRating float64 `form:"min_rating"`
}

type SavedPlaceRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
	Image    string  `json:"image"`
	Rating   float64 `json:"rating"`
	Price    float64 `json:"price"`
}
