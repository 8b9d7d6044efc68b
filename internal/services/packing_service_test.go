package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

func itemNames(items []response_models.PackingItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func findItem(t *testing.T, items []response_models.PackingItem, name string) response_models.PackingItem {
	t.Helper()
	for _, it := range items {
		if it.Name == name {
			return it
		}
	}
	t.Fatalf("item %q not found", name)
	return response_models.PackingItem{}
}

var commonBaseline = []string{"Passport", "Phone charger", "Toothbrush", "Underwear", "Socks", "Comfortable shoes"}

func TestGenerate_AlwaysHasBaseline(t *testing.T) {
	svc := NewPackingService()
	for _, season := range []string{"", "summer", "winter", "monsoon"} {
		resp, err := svc.Generate(request_models.PackingRequest{Destination: "Goa", Duration: "5", Season: season})
		require.NoError(t, err)
		names := itemNames(resp.Items)
		for _, want := range commonBaseline {
			assert.Contains(t, names, want, "season %q", season)
		}
	}
}

func TestGenerate_SeasonAndActivities(t *testing.T) {
	svc := NewPackingService()
	resp, err := svc.Generate(request_models.PackingRequest{
		Destination: "Manali",
		Duration:    "4",
		Season:      "winter",
		Activities:  []string{"Hiking", "Beach"},
		Packed:      []string{"5"},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Items, 14)
	assert.False(t, findItem(t, resp.Items, "Thermal underwear").Essential)
	assert.Equal(t, 2, findItem(t, resp.Items, "Sweaters").Quantity)
	assert.Contains(t, itemNames(resp.Items), "Beach towel")
	assert.True(t, findItem(t, resp.Items, "Passport").Packed)

	assert.Equal(t, 14, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Packed)
	assert.Equal(t, 12, resp.Summary.EssentialUnpacked)
	assert.Len(t, resp.ByCategory["documents"], 1)
}

func TestGenerate_Validation(t *testing.T) {
	_, err := NewPackingService().Generate(request_models.PackingRequest{})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "destination")
	assert.Contains(t, verr.Fields, "duration")
}

func TestGenerateDetailed(t *testing.T) {
	svc := NewPackingService()
	resp, err := svc.GenerateDetailed(request_models.DetailedPackingRequest{
		Destination: "Reykjavik",
		Duration:    5,
		Weather:     "cold",
		Season:      "summer",
		Activities:  []string{"swimming"},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, findItem(t, resp.Items, "T-shirts").Quantity)
	assert.Equal(t, 3, findItem(t, resp.Items, "Pants/Jeans").Quantity)
	assert.Equal(t, 7, findItem(t, resp.Items, "Underwear").Quantity)
	assert.True(t, findItem(t, resp.Items, "Winter jacket").WeatherDependent)
	names := itemNames(resp.Items)
	assert.Contains(t, names, "Sunscreen")
	assert.Contains(t, names, "Towel")
	assert.NotContains(t, names, "Hiking boots")
	assert.Len(t, resp.Items, 15+3+3+2)
	assert.Equal(t, 0.0, resp.Summary.Progress)

	_, err = svc.GenerateDetailed(request_models.DetailedPackingRequest{Destination: "x"})
	assert.Error(t, err)
}
