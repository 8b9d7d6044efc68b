package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/request_models"
)

func testPlanner(t *testing.T) *Planner {
	t.Helper()
	return NewPlanner(catalog.MustLoad())
}

func TestNormalizePreferences(t *testing.T) {
	tests := []struct {
		name      string
		in        request_models.PreferencesRequest
		energy    string
		dining    string
		social    string
		traits    []string
		travelers int
		budget    int
	}{
		{
			name:      "defaults",
			in:        request_models.PreferencesRequest{},
			energy:    EnergyMedium,
			dining:    DiningCasual,
			social:    SocialModerate,
			traits:    []string{},
			travelers: 2,
			budget:    2000,
		},
		{
			name: "adventure with friends and street food",
			in: request_models.PreferencesRequest{
				TravelStyle:     "adventure",
				GroupType:       "friends",
				Travelers:       "3-4",
				Budget:          "100-200",
				FoodPreferences: []string{"street food"},
			},
			energy:    EnergyHigh,
			dining:    DiningStreet,
			social:    SocialSocial,
			traits:    []string{"adventurous"},
			travelers: 3,
			budget:    100,
		},
		{
			name:      "relaxed with a numeric budget",
			in:        request_models.PreferencesRequest{TravelStyle: "relaxed", Budget: "350", FoodPreferences: []string{"Street Food"}},
			energy:    EnergyLow,
			dining:    DiningFine,
			social:    SocialModerate,
			traits:    []string{},
			travelers: 2,
			budget:    350,
		},
		{
			name:      "luxury range label is not fine dining",
			in:        request_models.PreferencesRequest{TravelStyle: "luxury", Budget: "500+", Travelers: "0"},
			energy:    EnergyMedium,
			dining:    DiningCasual,
			social:    SocialModerate,
			traits:    []string{"relaxed"},
			travelers: 2,
			budget:    500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NormalizePreferences(tt.in)
			assert.Equal(t, tt.energy, p.EnergyLevel)
			assert.Equal(t, tt.dining, p.DiningStyle)
			assert.Equal(t, tt.social, p.SocialStyle)
			assert.Equal(t, tt.traits, p.Personality)
			assert.Equal(t, tt.travelers, p.Travelers)
			assert.Equal(t, tt.budget, p.Budget)
		})
	}
}

func TestGenerateDays_ParisWeekend(t *testing.T) {
	pl := testPlanner(t)
	profile := NormalizePreferences(request_models.PreferencesRequest{
		Destination: "Paris",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-03",
	})

	days := pl.GenerateDays(profile)
	require.Len(t, days, 2)

	assert.Equal(t, "day-1", days[0].ID)
	assert.Equal(t, "2024-03-01", days[0].Date)
	assert.Equal(t, "2024-03-02", days[1].Date)

	for _, d := range days {
		assert.LessOrEqual(t, len(d.Activities), 4)
		require.NotEmpty(t, d.Activities)
		var cost float64
		var minutes int
		for _, a := range d.Activities {
			assert.Equal(t, "Paris", a.Location)
			assert.False(t, a.Completed)
			cost += a.Cost
			minutes += a.Duration
		}
		assert.InDelta(t, cost, d.TotalCost, 1e-9)
		assert.Equal(t, minutes, d.TotalDuration)
	}

	// No interests and medium energy: the morning slot has no pool.
	titles := []string{}
	for _, a := range days[0].Activities {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"Rooftop Dining Experience", "Live Music & Performance", "Rooftop Bar & Skyline Views"}, titles)
	assert.Equal(t, "lunch-1-6", days[0].Activities[0].ID)
	assert.Equal(t, "Cooking Class & Lunch", days[1].Activities[0].Title)
}

func TestGenerateDays_AdventureMorning(t *testing.T) {
	pl := testPlanner(t)
	profile := NormalizePreferences(request_models.PreferencesRequest{
		Destination: "Lisbon",
		StartDate:   "2024-05-10",
		EndDate:     "2024-05-11",
		TravelStyle: "adventure",
	})

	days := pl.GenerateDays(profile)
	require.Len(t, days, 1)
	require.Len(t, days[0].Activities, 4)
	assert.Equal(t, "Water Sports Experience", days[0].Activities[0].Title)
}

func TestGenerateDays_EmptyRanges(t *testing.T) {
	pl := testPlanner(t)

	cases := map[string][2]string{
		"end before start": {"2024-03-05", "2024-03-01"},
		"same day":         {"2024-03-05", "2024-03-05"},
		"bad start":        {"soon", "2024-03-05"},
		"bad end":          {"2024-03-05", ""},
	}
	for name, dates := range cases {
		t.Run(name, func(t *testing.T) {
			days := pl.GenerateDays(PlannerProfile{Destination: "Rome", StartDate: dates[0], EndDate: dates[1]})
			assert.NotNil(t, days)
			assert.Empty(t, days)
		})
	}
}

func TestActivitiesForDay_Pure(t *testing.T) {
	pl := testPlanner(t)
	profile := NormalizePreferences(request_models.PreferencesRequest{
		Destination: "Kyoto",
		TravelStyle: "relaxed",
		Interests:   []string{"History", "nature"},
		GroupType:   "friends",
	})

	for day := 1; day <= 7; day++ {
		first := pl.ActivitiesForDay(day, profile)
		second := pl.ActivitiesForDay(day, profile)
		assert.Equal(t, first, second, "day %d", day)
		assert.Len(t, first, 4)
	}
}

func TestActivitiesForDay_InterestsWidenPools(t *testing.T) {
	pl := testPlanner(t)
	base := NormalizePreferences(request_models.PreferencesRequest{})
	withCulture := NormalizePreferences(request_models.PreferencesRequest{Interests: []string{"culture"}})

	assert.Len(t, pl.slotPool("morning", base), 0)
	assert.Len(t, pl.slotPool("morning", withCulture), 3)
	assert.Len(t, pl.slotPool("afternoon", base), 3)
	assert.Len(t, pl.slotPool("afternoon", withCulture), 6)
}
