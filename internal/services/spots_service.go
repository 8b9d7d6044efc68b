package services

import (
	"strings"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

type SpotsServiceInterface interface {
	SearchParking(location string) (*response_models.ParkingSearchResponse, error)
	SearchHiddenSpots(q request_models.HiddenSpotsQuery) *response_models.HiddenSpotsResponse
}

type SpotsService struct {
	catalog *catalog.Catalog
}

func NewSpotsService(c *catalog.Catalog) SpotsServiceInterface {
	return &SpotsService{catalog: c}
}

func containsFoldSubstr(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// SearchParking returns spots whose name or address mention the location.
// With no match the whole list comes back and Matched is false.
func (s *SpotsService) SearchParking(location string) (*response_models.ParkingSearchResponse, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		v := utils.NewValidationError()
		v.Add("location", "Location is required")
		return nil, v
	}

	var matched []catalog.ParkingSpot
	for _, spot := range s.catalog.ParkingSpots {
		if containsFoldSubstr(spot.Name, location) || containsFoldSubstr(spot.Address, location) {
			matched = append(matched, spot)
		}
	}

	resp := &response_models.ParkingSearchResponse{Query: location, Matched: len(matched) > 0, Spots: matched}
	if !resp.Matched {
		resp.Spots = append([]catalog.ParkingSpot{}, s.catalog.ParkingSpots...)
	}
	return resp, nil
}

func (s *SpotsService) SearchHiddenSpots(q request_models.HiddenSpotsQuery) *response_models.HiddenSpotsResponse {
	location := strings.TrimSpace(q.Location)
	spots := []catalog.HiddenSpot{}
	for _, spot := range s.catalog.HiddenSpots {
		if !filterMatches(q.Category, spot.Category) ||
			!filterMatches(q.Difficulty, spot.Difficulty) ||
			!filterMatches(q.Cost, spot.Cost) ||
			!filterMatches(q.CrowdLevel, spot.CrowdLevel) {
			continue
		}
		if location != "" && !containsFoldSubstr(spot.Location, location) && !containsFoldSubstr(spot.Name, location) {
			continue
		}
		spots = append(spots, spot)
	}
	return &response_models.HiddenSpotsResponse{Count: len(spots), Spots: spots}
}

// filterMatches treats "" and "all" as no filter.
func filterMatches(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}
