package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/request_models"
	"wanderlens/pkg/utils"
)

func TestPlaylist_MoodOrGenre(t *testing.T) {
	svc := NewPlaylistService(catalog.MustLoad()).(*PlaylistService)
	svc.shuffle = func(int, func(i, j int)) {}

	resp := svc.Generate(request_models.PlaylistRequest{Mood: "chill", Genre: "rock", Duration: "30 minutes"})
	assert.False(t, resp.Widened)
	assert.Equal(t, 8, resp.Limit)
	assert.Len(t, resp.Songs, 8)
	for _, s := range resp.Songs {
		assert.True(t, s.Mood == "chill" || s.Genre == "rock")
	}
}

func TestPlaylist_WidensToSimilarMoods(t *testing.T) {
	svc := NewPlaylistService(catalog.MustLoad()).(*PlaylistService)
	svc.shuffle = func(int, func(i, j int)) {}

	resp := svc.Generate(request_models.PlaylistRequest{Mood: "upbeat", Genre: "jazz", Duration: "1 hour"})
	assert.True(t, resp.Widened)
	moods := map[string]bool{}
	for _, s := range resp.Songs {
		moods[s.Mood] = true
	}
	assert.Equal(t, map[string]bool{"upbeat": true, "energetic": true, "adventurous": true}, moods)
	assert.Len(t, resp.Songs, 6)
}

func TestPlaylist_TotalDuration(t *testing.T) {
	svc := &PlaylistService{
		catalog: &catalog.Catalog{Songs: []catalog.Song{
			{ID: "a", Genre: "rock", Duration: "2:35", Mood: "chill"},
			{ID: "b", Genre: "rock", Duration: "9:08", Mood: "chill"},
			{ID: "c", Genre: "rock", Duration: "59:00", Mood: "chill"},
			{ID: "d", Genre: "rock", Duration: "live", Mood: "chill"},
		}},
		shuffle: func(int, func(i, j int)) {},
	}

	resp := svc.Generate(request_models.PlaylistRequest{Mood: "chill", Duration: "all day"})
	require.Len(t, resp.Songs, 4)
	assert.Equal(t, "1h 10m", resp.TotalDuration)

	resp = svc.Generate(request_models.PlaylistRequest{Mood: "upbeat", Genre: "jazz", Duration: "all day"})
	assert.Empty(t, resp.Songs)
	assert.Equal(t, "0m", resp.TotalDuration)
}

func TestSongSeconds(t *testing.T) {
	assert.Equal(t, 155, songSeconds("2:35"))
	assert.Equal(t, 548, songSeconds(" 9:08 "))
	assert.Zero(t, songSeconds("9"))
	assert.Zero(t, songSeconds("3:75"))
	assert.Zero(t, songSeconds("x:10"))
}

func TestPlaylistLimit(t *testing.T) {
	assert.Equal(t, 15, PlaylistLimit("1 hour"))
	assert.Equal(t, 30, PlaylistLimit("2 hours"))
	assert.Equal(t, 60, PlaylistLimit("4 hours"))
	assert.Equal(t, 120, PlaylistLimit("all day"))
}

func TestSearchParking(t *testing.T) {
	svc := NewSpotsService(catalog.MustLoad())

	resp, err := svc.SearchParking("airport")
	require.NoError(t, err)
	assert.True(t, resp.Matched)
	require.Len(t, resp.Spots, 1)
	assert.Equal(t, "Airport Express Parking", resp.Spots[0].Name)

	resp, err = svc.SearchParking("historic district")
	require.NoError(t, err)
	assert.Len(t, resp.Spots, 1)

	resp, err = svc.SearchParking("Atlantis")
	require.NoError(t, err)
	assert.False(t, resp.Matched)
	assert.Len(t, resp.Spots, 4)

	_, err = svc.SearchParking("   ")
	var verr *utils.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSearchHiddenSpots(t *testing.T) {
	svc := NewSpotsService(catalog.MustLoad())

	assert.Equal(t, 6, svc.SearchHiddenSpots(request_models.HiddenSpotsQuery{Category: "all"}).Count)
	assert.Equal(t, 2, svc.SearchHiddenSpots(request_models.HiddenSpotsQuery{Category: "cultural"}).Count)
	assert.Equal(t, 3, svc.SearchHiddenSpots(request_models.HiddenSpotsQuery{Cost: "free", CrowdLevel: "quiet"}).Count)

	byLocation := svc.SearchHiddenSpots(request_models.HiddenSpotsQuery{Location: "underground"})
	assert.Equal(t, 2, byLocation.Count)

	none := svc.SearchHiddenSpots(request_models.HiddenSpotsQuery{Difficulty: "hard", Cost: "low"})
	assert.Equal(t, 0, none.Count)
	assert.NotNil(t, none.Spots)
}

func TestDiscover(t *testing.T) {
	weather := NewWeatherService(http.DefaultClient, "demo_key", "", false, zap.NewNop())
	svc := NewDiscoverService(catalog.MustLoad(), weather, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Discover(ctx, request_models.DiscoverQuery{})
	require.NoError(t, err)
	assert.Equal(t, "hotels", resp.Tab)
	assert.Equal(t, "Delhi", resp.Place)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "The Grand Palace Hotel", resp.Items[0].Name)
	assert.Equal(t, "Matches your cultural interests", resp.Items[1].Reason)
	assert.Equal(t, "AI recommended based on your profile", resp.Items[0].Reason)
	assert.Equal(t, "$250", resp.Items[0].PriceLabel)
	assert.Len(t, resp.Items[0].Highlights, 3)
	assert.Len(t, resp.Alerts, 4)
	assert.Equal(t, "Delhi", resp.Weather.City)

	resp, err = svc.Discover(ctx, request_models.DiscoverQuery{Tab: "restaurants", Sort: "price"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "$$", resp.Items[0].PriceLabel)
	assert.Equal(t, "Great for food lovers", resp.Items[0].Reason)

	resp, err = svc.Discover(ctx, request_models.DiscoverQuery{Tab: "hotels", Sort: "distance", MaxPrice: 200, MinRating: 4.5})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Heritage Boutique Hotel", resp.Items[0].Name)

	_, err = svc.Discover(ctx, request_models.DiscoverQuery{Tab: "cars"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.Discover(ctx, request_models.DiscoverQuery{Sort: "vibes"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestRecommendationReason(t *testing.T) {
	cheap := catalog.Listing{Price: 20, Features: []string{"Cultural", "Adventure"}}
	budget := DiscoverProfile{Budget: "budget", TravelStyle: "cultural", Personality: "adventurous"}
	assert.Equal(t, "Perfect for your budget", RecommendationReason(budget, cheap, TabActivities))

	adventurer := DiscoverProfile{Personality: "adventurous"}
	assert.Equal(t, "Perfect for adventurous travelers", RecommendationReason(adventurer, cheap, TabActivities))
}

func TestSurprise(t *testing.T) {
	svc := NewSurpriseService(catalog.MustLoad()).(*SurpriseService)
	svc.intn = func(n int) int { return 0 }

	it := svc.Generate()
	assert.Equal(t, "Adventure", it.Theme)
	assert.Equal(t, "New Delhi, India", it.Destination)
	assert.Equal(t, "Adventure Adventure in New Delhi", it.Title)
	assert.Equal(t, "Budget", it.Budget)
	assert.Equal(t, 3, it.Duration)
	require.Len(t, it.Days, 3)
	assert.Equal(t, "Morning adventure experience", it.Days[0].Activities[0].Activity)
	assert.Equal(t, "New Delhi City Center", it.Days[0].Activities[0].Location)
	assert.InDelta(t, 3*(20+15+10+20), it.TotalCost, 1e-9)
	assert.Equal(t, "Discover hidden adventure gems", it.Highlights[0])
}

func TestSurprise_RandomBounds(t *testing.T) {
	svc := NewSurpriseService(catalog.MustLoad())
	for i := 0; i < 30; i++ {
		it := svc.Generate()
		assert.GreaterOrEqual(t, it.Duration, 3)
		assert.LessOrEqual(t, it.Duration, 7)
		assert.Len(t, it.Days, it.Duration)

		var total float64
		for _, d := range it.Days {
			require.Len(t, d.Activities, 4)
			for _, a := range d.Activities {
				total += a.Cost
			}
		}
		assert.InDelta(t, total, it.TotalCost, 1e-9)
	}
}

func TestLicenseOverview(t *testing.T) {
	svc := NewLicenseService(catalog.MustLoad()).(*LicenseService)
	svc.now = func() time.Time { return time.Date(2024, 11, 20, 15, 0, 0, 0, time.UTC) }

	resp := svc.Overview("")
	require.Len(t, resp.Documents, 3)
	assert.Equal(t, DocumentExpired, resp.Documents[0].Status)
	assert.Equal(t, 11, resp.Documents[1].DaysUntilExpiry)
	assert.Equal(t, DocumentExpiring, resp.Documents[1].Status)
	assert.Equal(t, 41, resp.Documents[2].DaysUntilExpiry)
	assert.Equal(t, DocumentValid, resp.Documents[2].Status)
	assert.Len(t, resp.Permissions, 5)

	assert.Empty(t, svc.Overview("Japan").Documents)
	assert.Len(t, svc.Overview("india").Documents, 3)
}

func TestDocumentStatus(t *testing.T) {
	assert.Equal(t, DocumentExpired, DocumentStatus(-1))
	assert.Equal(t, DocumentExpiring, DocumentStatus(0))
	assert.Equal(t, DocumentExpiring, DocumentStatus(30))
	assert.Equal(t, DocumentValid, DocumentStatus(31))
}

func TestMapsLocations(t *testing.T) {
	svc := NewMapsService(catalog.MustLoad(), nil, zap.NewNop())

	all := svc.Locations("", "")
	require.Len(t, all.Locations, 4)
	assert.InDelta(t, 2.1, all.Locations[0].DistanceKm, 0.2)
	assert.Equal(t, 28.6139, all.CurrentPosition.Lat)

	assert.Len(t, svc.Locations("old delhi", "").Locations, 2)
	restaurants := svc.Locations("", "restaurant")
	require.Len(t, restaurants.Locations, 1)
	assert.Equal(t, "Karim's Restaurant", restaurants.Locations[0].Name)
}

func TestMapsRoute(t *testing.T) {
	svc := NewMapsService(catalog.MustLoad(), nil, zap.NewNop())
	ctx := context.Background()

	route, err := svc.Route(ctx, "1", "3", "")
	require.NoError(t, err)
	assert.Equal(t, "walking", route.Mode)
	assert.Equal(t, "Free", route.Cost)
	assert.Greater(t, route.DistanceKm, 0.0)

	taxi, err := svc.Route(ctx, "1", "3", "driving")
	require.NoError(t, err)
	assert.Equal(t, "Taxi", taxi.Transport)
	assert.NotEqual(t, "Free", taxi.Cost)

	_, err = svc.Route(ctx, "1", "99", "walking")
	assert.ErrorIs(t, err, utils.ErrNotFound)
	_, err = svc.Route(ctx, "1", "3", "teleport")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestHaversineKm(t *testing.T) {
	delhi := catalog.Coordinates{Lat: 28.6139, Lng: 77.2090}
	mumbai := catalog.Coordinates{Lat: 19.0760, Lng: 72.8777}
	assert.InDelta(t, 1148, HaversineKm(delhi, mumbai), 5)
	assert.Equal(t, 0.0, HaversineKm(delhi, delhi))
}
