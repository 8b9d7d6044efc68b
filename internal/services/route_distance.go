package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wanderlens/internal/catalog"
	mem "wanderlens/pkg/memcache"
)

// mapboxProfiles maps route modes onto Mapbox routing profiles. Modes not
// listed here (transit) have no road network and stay on great-circle
// distance.
var mapboxProfiles = map[string]string{
	"walking": "walking",
	"driving": "driving",
	"cycling": "cycling",
}

// RouteDistanceProvider returns the travel distance in meters between two
// points for a route mode.
type RouteDistanceProvider interface {
	DistanceMeters(ctx context.Context, mode string, from, to catalog.Coordinates) (float64, error)
}

type MapboxMatrixClient struct {
	HTTP        *http.Client
	AccessToken string
	BaseURL     string
	Cache       *mem.TTLStore[float64]
	DefaultTTL  time.Duration
}

func NewMapboxMatrixClient(client *http.Client, token, baseURL string) *MapboxMatrixClient {
	return &MapboxMatrixClient{
		HTTP:        client,
		AccessToken: token,
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Cache:       mem.NewTTLStore[float64](),
		DefaultTTL:  7 * 24 * time.Hour,
	}
}

func pairKey(profile string, a, b catalog.Coordinates) string {
	return fmt.Sprintf("%s|%f,%f|%f,%f", profile, a.Lat, a.Lng, b.Lat, b.Lng)
}

func (c *MapboxMatrixClient) DistanceMeters(ctx context.Context, mode string, from, to catalog.Coordinates) (float64, error) {
	profile, ok := mapboxProfiles[mode]
	if !ok {
		return 0, fmt.Errorf("mapbox: no profile for mode %q", mode)
	}
	key := pairKey(profile, from, to)
	if d, ok := c.Cache.Get(key); ok {
		return d, nil
	}

	coords := fmt.Sprintf("%f,%f;%f,%f", from.Lng, from.Lat, to.Lng, to.Lat)
	q := url.Values{}
	q.Set("annotations", "distance")
	q.Set("sources", "0")
	q.Set("destinations", "1")
	q.Set("access_token", c.AccessToken)
	endpoint := fmt.Sprintf("%s/directions-matrix/v1/mapbox/%s/%s?%s", c.BaseURL, profile, coords, q.Encode())

	var payload struct {
		Code      string       `json:"code"`
		Distances [][]*float64 `json:"distances"`
	}
	if err := fetchJSON(ctx, c.HTTP, endpoint, &payload); err != nil {
		return 0, fmt.Errorf("mapbox matrix: %w", err)
	}
	if len(payload.Distances) == 0 || len(payload.Distances[0]) == 0 || payload.Distances[0][0] == nil {
		return 0, fmt.Errorf("mapbox matrix: no route (code %s)", payload.Code)
	}

	d := *payload.Distances[0][0]
	c.Cache.Set(key, d, c.DefaultTTL)
	return d, nil
}
