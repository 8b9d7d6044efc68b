package services

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/response_models"
)

var surpriseBudgets = []string{"Budget", "Mid-range", "Luxury"}

type SurpriseServiceInterface interface {
	Generate() *response_models.SurpriseItinerary
}

type SurpriseService struct {
	catalog *catalog.Catalog
	intn    func(n int) int
}

func NewSurpriseService(c *catalog.Catalog) SurpriseServiceInterface {
	return &SurpriseService{catalog: c, intn: rand.IntN}
}

// Generate draws a theme, destination and a three to seven day length, then
// fills four fixed slots per day with randomly priced activities.
func (s *SurpriseService) Generate() *response_models.SurpriseItinerary {
	theme := s.catalog.Themes[s.intn(len(s.catalog.Themes))]
	destination := s.catalog.Destinations[s.intn(len(s.catalog.Destinations))]
	duration := s.intn(5) + 3
	budget := surpriseBudgets[s.intn(len(surpriseBudgets))]

	city, _, _ := strings.Cut(destination, ",")
	lowerTheme := strings.ToLower(theme)

	it := &response_models.SurpriseItinerary{
		ID:          "surprise-" + uuid.NewString(),
		Title:       fmt.Sprintf("%s Adventure in %s", theme, city),
		Destination: destination,
		Duration:    duration,
		Budget:      budget,
		Theme:       theme,
		Description: fmt.Sprintf("An exciting %s journey through %s with carefully curated experiences that will surprise and delight you.", lowerTheme, destination),
		Days:        make([]response_models.SurpriseDay, 0, duration),
		Highlights: []string{
			fmt.Sprintf("Discover hidden %s gems", lowerTheme),
			"Meet local artisans and creators",
			"Taste authentic regional cuisine",
			"Capture stunning photo opportunities",
			"Experience local traditions",
		},
	}

	for d := 1; d <= duration; d++ {
		day := response_models.SurpriseDay{
			Day: d,
			Activities: []response_models.SurpriseActivity{
				{Time: "09:00", Activity: fmt.Sprintf("Morning %s experience", lowerTheme), Type: "activity", Location: city + " City Center", Cost: float64(s.intn(50) + 20), Duration: "2-3 hours"},
				{Time: "12:00", Activity: "Local cuisine discovery", Type: "restaurant", Location: "Historic District", Cost: float64(s.intn(30) + 15), Duration: "1 hour"},
				{Time: "14:00", Activity: "Cultural exploration", Type: "activity", Location: "Museum Quarter", Cost: float64(s.intn(25) + 10), Duration: "2 hours"},
				{Time: "18:00", Activity: "Evening relaxation", Type: "restaurant", Location: "Riverside", Cost: float64(s.intn(40) + 20), Duration: "1.5 hours"},
			},
		}
		for _, a := range day.Activities {
			it.TotalCost += a.Cost
		}
		it.Days = append(it.Days, day)
	}
	return it
}
