package services

import (
	"strconv"
	"strings"

	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

type PackingServiceInterface interface {
	Generate(req request_models.PackingRequest) (*response_models.PackingListResponse, error)
	GenerateDetailed(req request_models.DetailedPackingRequest) (*response_models.PackingListResponse, error)
}

type PackingService struct{}

func NewPackingService() PackingServiceInterface {
	return &PackingService{}
}

func item(id int, name, category string, qty int, essential bool) response_models.PackingItem {
	return response_models.PackingItem{
		ID:        strconv.Itoa(id),
		Name:      name,
		Category:  category,
		Quantity:  qty,
		Essential: essential,
	}
}

func weatherItem(id int, name, category string, qty int, essential bool) response_models.PackingItem {
	it := item(id, name, category, qty, essential)
	it.WeatherDependent = true
	return it
}

func (p *PackingService) Generate(req request_models.PackingRequest) (*response_models.PackingListResponse, error) {
	v := utils.NewValidationError()
	if strings.TrimSpace(req.Destination) == "" {
		v.Add("destination", "Destination is required")
	}
	if req.Duration.IsBlank() {
		v.Add("duration", "Duration is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	var items []response_models.PackingItem
	switch req.Season {
	case "summer":
		items = append(items,
			item(1, "T-shirts", "clothing", 3, true),
			item(2, "Shorts", "clothing", 2, true),
			item(3, "Sunglasses", "accessories", 1, true),
			item(4, "Sunscreen", "toiletries", 1, true),
		)
	case "winter":
		items = append(items,
			item(1, "Warm jacket", "clothing", 1, true),
			item(2, "Sweaters", "clothing", 2, true),
			item(3, "Gloves", "accessories", 1, true),
			item(4, "Thermal underwear", "clothing", 1, false),
		)
	}

	items = append(items,
		item(5, "Passport", "documents", 1, true),
		item(6, "Phone charger", "electronics", 1, true),
		item(7, "Toothbrush", "toiletries", 1, true),
		item(8, "Underwear", "clothing", 5, true),
		item(9, "Socks", "clothing", 5, true),
		item(10, "Comfortable shoes", "accessories", 1, true),
	)

	if containsString(req.Activities, "Beach") {
		items = append(items,
			item(11, "Swimsuit", "clothing", 1, true),
			item(12, "Beach towel", "accessories", 1, true),
		)
	}
	if containsString(req.Activities, "Hiking") {
		items = append(items,
			item(13, "Hiking boots", "accessories", 1, true),
			item(14, "Backpack", "accessories", 1, true),
		)
	}

	return buildPackingList(req.Destination, items, req.Packed), nil
}

func (p *PackingService) GenerateDetailed(req request_models.DetailedPackingRequest) (*response_models.PackingListResponse, error) {
	v := utils.NewValidationError()
	if strings.TrimSpace(req.Destination) == "" {
		v.Add("destination", "Destination is required")
	}
	if req.Duration < 1 {
		v.Add("duration", "Duration must be at least one day")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	d := req.Duration
	items := []response_models.PackingItem{
		weatherItem(1, "T-shirts", "clothing", d, true),
		weatherItem(2, "Pants/Jeans", "clothing", (d+1)/2, true),
		item(3, "Underwear", "clothing", d+2, true),
		item(4, "Socks", "clothing", d+2, true),
		item(5, "Walking shoes", "shoes", 1, true),
		item(6, "Dress shoes", "shoes", 1, false),
		item(7, "Phone charger", "electronics", 1, true),
		item(8, "Power bank", "electronics", 1, true),
		item(9, "Camera", "electronics", 1, false),
		item(10, "Toothbrush", "toiletries", 1, true),
		item(11, "Toothpaste", "toiletries", 1, true),
		item(12, "Shampoo", "toiletries", 1, true),
		item(13, "Passport", "documents", 1, true),
		item(14, "Travel insurance", "documents", 1, true),
		item(15, "Flight tickets", "documents", 1, true),
	}

	if req.Weather == "cold" || req.Season == "winter" {
		items = append(items,
			weatherItem(16, "Winter jacket", "clothing", 1, true),
			weatherItem(17, "Warm hat", "accessories", 1, true),
			weatherItem(18, "Gloves", "accessories", 1, true),
		)
	}
	if req.Weather == "hot" || req.Season == "summer" {
		items = append(items,
			weatherItem(19, "Sunglasses", "accessories", 1, true),
			weatherItem(20, "Sunscreen", "toiletries", 1, true),
			weatherItem(21, "Hat", "accessories", 1, true),
		)
	}
	if containsString(req.Activities, "hiking") {
		items = append(items,
			item(22, "Hiking boots", "shoes", 1, true),
			item(23, "Backpack", "accessories", 1, true),
		)
	}
	if containsString(req.Activities, "swimming") {
		items = append(items,
			item(24, "Swimsuit", "clothing", 1, true),
			item(25, "Towel", "accessories", 1, true),
		)
	}

	return buildPackingList(req.Destination, items, req.Packed), nil
}

// buildPackingList marks packed items by ID and fills the category index and
// progress summary.
func buildPackingList(destination string, items []response_models.PackingItem, packed []string) *response_models.PackingListResponse {
	resp := &response_models.PackingListResponse{
		Destination: strings.TrimSpace(destination),
		Items:       items,
		ByCategory:  make(map[string][]response_models.PackingItem),
	}
	for i := range resp.Items {
		if containsString(packed, resp.Items[i].ID) {
			resp.Items[i].Packed = true
		}
		it := resp.Items[i]
		resp.ByCategory[it.Category] = append(resp.ByCategory[it.Category], it)

		resp.Summary.Total++
		if it.Packed {
			resp.Summary.Packed++
		} else if it.Essential {
			resp.Summary.EssentialUnpacked++
		}
	}
	if resp.Summary.Total > 0 {
		resp.Summary.Progress = utils.RoundTo2(float64(resp.Summary.Packed) / float64(resp.Summary.Total) * 100)
	}
	return resp
}
