package services

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

const (
	TabHotels      = "hotels"
	TabRestaurants = "restaurants"
	TabActivities  = "activities"

	defaultDiscoverPlace = "Delhi"
	maxHighlights        = 3
)

// DiscoverProfile is the traveller profile used to explain recommendations.
type DiscoverProfile struct {
	Budget      string
	TravelStyle string
	Interests   []string
	Personality string
}

var DefaultDiscoverProfile = DiscoverProfile{
	Budget:      "mid",
	TravelStyle: "cultural",
	Interests:   []string{"history", "food", "nature"},
	Personality: "adventurous",
}

type DiscoverServiceInterface interface {
	Discover(ctx context.Context, q request_models.DiscoverQuery) (*response_models.DiscoverResponse, error)
}

type DiscoverService struct {
	catalog *catalog.Catalog
	weather WeatherServiceInterface
	profile DiscoverProfile
	logger  *zap.Logger
}

func NewDiscoverService(c *catalog.Catalog, weather WeatherServiceInterface, logger *zap.Logger) DiscoverServiceInterface {
	return &DiscoverService{catalog: c, weather: weather, profile: DefaultDiscoverProfile, logger: logger}
}

func (s *DiscoverService) Discover(ctx context.Context, q request_models.DiscoverQuery) (*response_models.DiscoverResponse, error) {
	if q.Tab == "" {
		q.Tab = TabHotels
	}
	if q.Sort == "" {
		q.Sort = "aiMatch"
	}
	if q.Place = strings.TrimSpace(q.Place); q.Place == "" {
		q.Place = defaultDiscoverPlace
	}

	var listings []catalog.Listing
	switch q.Tab {
	case TabHotels:
		listings = s.catalog.Hotels
	case TabRestaurants:
		listings = s.catalog.Restaurants
	case TabActivities:
		listings = s.catalog.Activities
	default:
		return nil, utils.ErrInvalidInput
	}
	if q.MaxPrice < 0 || q.MinRating < 0 {
		return nil, utils.ErrInvalidInput
	}

	items := make([]response_models.DiscoverItem, 0, len(listings))
	for _, l := range listings {
		if q.MaxPrice > 0 && l.Price > q.MaxPrice {
			continue
		}
		if l.Rating < q.MinRating {
			continue
		}
		items = append(items, s.toItem(l, q.Tab))
	}

	if err := sortDiscoverItems(items, q.Sort); err != nil {
		return nil, err
	}

	weather, err := s.weather.Current(ctx, q.Place)
	if err != nil {
		return nil, err
	}

	return &response_models.DiscoverResponse{
		Place:   q.Place,
		Start:   q.Start,
		End:     q.End,
		Tab:     q.Tab,
		Sort:    q.Sort,
		Items:   items,
		Alerts:  append([]string{}, s.catalog.Alerts...),
		Weather: *weather,
	}, nil
}

func (s *DiscoverService) toItem(l catalog.Listing, tab string) response_models.DiscoverItem {
	item := response_models.DiscoverItem{
		ID:       l.ID,
		Kind:     strings.TrimSuffix(tab, "s"),
		Name:     l.Name,
		Rating:   l.Rating,
		Price:    l.Price,
		Cuisine:  l.Cuisine,
		Image:    l.Image,
		Location: l.Location,
		Distance: l.Distance,
		Duration: l.Duration,
		Category: l.Category,
		AIMatch:  l.AIMatch,
		Features: l.Features,
		Reason:   RecommendationReason(s.profile, l, tab),
	}
	if tab == TabRestaurants && l.PriceRange != "" {
		item.PriceLabel = l.PriceRange
	} else {
		item.PriceLabel = "$" + strconv.FormatFloat(l.Price, 'f', -1, 64)
	}

	highlights := l.Tags
	if len(highlights) == 0 {
		highlights = l.Features
	}
	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	item.Highlights = append([]string{}, highlights...)
	return item
}

// RecommendationReason returns the first rule that fits the listing.
func RecommendationReason(p DiscoverProfile, l catalog.Listing, tab string) string {
	switch {
	case p.Budget == "budget" && l.Price < 50:
		return "Perfect for your budget"
	case p.TravelStyle == "cultural" && containsString(l.Features, "Cultural"):
		return "Matches your cultural interests"
	case containsString(p.Interests, "food") && tab == TabRestaurants:
		return "Great for food lovers"
	case p.Personality == "adventurous" && containsString(l.Features, "Adventure"):
		return "Perfect for adventurous travelers"
	default:
		return "AI recommended based on your profile"
	}
}

func sortDiscoverItems(items []response_models.DiscoverItem, by string) error {
	var less func(a, b response_models.DiscoverItem) bool
	switch by {
	case "aiMatch":
		less = func(a, b response_models.DiscoverItem) bool { return a.AIMatch > b.AIMatch }
	case "rating":
		less = func(a, b response_models.DiscoverItem) bool { return a.Rating > b.Rating }
	case "price":
		less = func(a, b response_models.DiscoverItem) bool { return a.Price < b.Price }
	case "distance":
		less = func(a, b response_models.DiscoverItem) bool {
			return distanceKm(a.Distance) < distanceKm(b.Distance)
		}
	default:
		return utils.ErrInvalidInput
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	return nil
}

// distanceKm reads the leading number of labels like "1.2 km from center".
// Items without a distance sort last.
func distanceKm(label string) float64 {
	field, _, _ := strings.Cut(strings.TrimSpace(label), " ")
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}
