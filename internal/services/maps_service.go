package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

const (
	earthRadiusKm    = 6371.0
	defaultRouteMode = "walking"
)

type MapsServiceInterface interface {
	Locations(query, placeType string) *response_models.MapLocationsResponse
	Route(ctx context.Context, fromID, toID, mode string) (*response_models.RouteResponse, error)
}

type MapsService struct {
	catalog   *catalog.Catalog
	distances RouteDistanceProvider
	logger    *zap.Logger
}

// NewMapsService measures routes with distances when it is non-nil and
// falls back to great-circle distance otherwise.
func NewMapsService(c *catalog.Catalog, distances RouteDistanceProvider, logger *zap.Logger) MapsServiceInterface {
	return &MapsService{catalog: c, distances: distances, logger: logger}
}

// HaversineKm is the great-circle distance between two points.
func HaversineKm(a, b catalog.Coordinates) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func (s *MapsService) Locations(query, placeType string) *response_models.MapLocationsResponse {
	query = strings.TrimSpace(query)
	placeType = strings.TrimSpace(placeType)

	resp := &response_models.MapLocationsResponse{
		CurrentPosition: s.catalog.CurrentPosition,
		Locations:       []response_models.MapLocation{},
	}
	for _, p := range s.catalog.Places {
		if placeType != "" && placeType != "all" && p.Type != placeType {
			continue
		}
		if query != "" && !containsFoldSubstr(p.Name, query) && !containsFoldSubstr(p.Address, query) {
			continue
		}
		km := utils.RoundTo2(HaversineKm(s.catalog.CurrentPosition, p.Coordinates))
		resp.Locations = append(resp.Locations, response_models.MapLocation{
			ID:          p.ID,
			Name:        p.Name,
			Address:     p.Address,
			Coordinates: p.Coordinates,
			Type:        p.Type,
			Rating:      p.Rating,
			Price:       p.Price,
			DistanceKm:  km,
			Distance:    fmt.Sprintf("%.1f km", km),
		})
	}
	return resp
}

func (s *MapsService) Route(ctx context.Context, fromID, toID, mode string) (*response_models.RouteResponse, error) {
	if mode == "" {
		mode = defaultRouteMode
	}
	profile, ok := s.catalog.Routes[mode]
	if !ok {
		return nil, utils.ErrInvalidInput
	}
	from, ok := s.catalog.PlaceByID(fromID)
	if !ok {
		return nil, utils.ErrNotFound
	}
	to, ok := s.catalog.PlaceByID(toID)
	if !ok {
		return nil, utils.ErrNotFound
	}

	km := s.routeKm(ctx, mode, from.Coordinates, to.Coordinates)
	minutes := int(math.Ceil(km * profile.MinutesPerKm))
	cost := "Free"
	if c := km * profile.CostPerKm; c > 0 {
		cost = fmt.Sprintf("$%.2f", c)
	}

	return &response_models.RouteResponse{
		From:       from.Name,
		To:         to.Name,
		Mode:       mode,
		Transport:  profile.Label,
		DistanceKm: utils.RoundTo2(km),
		Distance:   fmt.Sprintf("%.1f km", km),
		Duration:   fmt.Sprintf("%d min", minutes),
		Cost:       cost,
		Steps:      append([]string{}, profile.Steps...),
	}, nil
}

func (s *MapsService) routeKm(ctx context.Context, mode string, from, to catalog.Coordinates) float64 {
	if s.distances != nil {
		if _, routable := mapboxProfiles[mode]; routable {
			meters, err := s.distances.DistanceMeters(ctx, mode, from, to)
			if err == nil {
				return meters / 1000
			}
			s.logger.Warn("route distance lookup failed, using great-circle distance", zap.String("mode", mode), zap.Error(err))
		}
	}
	return HaversineKm(from, to)
}
