package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wanderlens/pkg/utils"
)

func TestWeather_Mock(t *testing.T) {
	svc := NewWeatherService(http.DefaultClient, "demo_key", "http://unused", false, zap.NewNop()).(*WeatherService)
	svc.intn = func(n int) int { return n - 1 }
	svc.now = func() time.Time { return time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC) }

	cur, err := svc.Current(context.Background(), "Delhi")
	require.NoError(t, err)
	assert.Equal(t, 29, cur.Temperature)
	assert.Equal(t, 79, cur.Humidity)
	assert.Equal(t, 19.0, cur.WindSpeed)
	assert.Equal(t, "Clear", cur.Description)
	assert.Equal(t, "11d", cur.Icon)
	assert.Equal(t, "Demo", cur.Country)

	forecast, err := svc.Forecast(context.Background(), "Delhi")
	require.NoError(t, err)
	require.Len(t, forecast, 5)
	assert.Equal(t, "2024-03-30", forecast[0].Date)
	assert.Equal(t, "2024-04-03", forecast[4].Date)
	assert.Equal(t, 19, forecast[0].Temperature.Min)
	assert.Equal(t, 34, forecast[0].Temperature.Max)

	_, err = svc.Current(context.Background(), "  ")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestWeather_MockRanges(t *testing.T) {
	svc := NewWeatherService(http.DefaultClient, "demo_key", "", false, zap.NewNop())
	for i := 0; i < 50; i++ {
		cur, err := svc.Current(context.Background(), "Oslo")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cur.Temperature, 15)
		assert.LessOrEqual(t, cur.Temperature, 29)
		assert.GreaterOrEqual(t, cur.Humidity, 40)
		assert.LessOrEqual(t, cur.Humidity, 79)
	}
}

const forecastFixture = `{"list":[
 {"dt_txt":"2024-03-01 09:00:00","main":{"temp":10.4,"humidity":70},"weather":[{"description":"mist","icon":"50d"}],"wind":{"speed":2.5}},
 {"dt_txt":"2024-03-01 12:00:00","main":{"temp":14.6,"humidity":60},"weather":[{"description":"few clouds","icon":"02d"}],"wind":{"speed":3.1}},
 {"dt_txt":"2024-03-01 15:00:00","main":{"temp":12.0,"humidity":65},"weather":[{"description":"clear sky","icon":"01d"}],"wind":{"speed":3.3}},
 {"dt_txt":"2024-03-02 00:00:00","main":{"temp":-2.5,"humidity":80},"weather":[{"description":"snow","icon":"13n"}],"wind":{"speed":1.0}},
 {"dt_txt":"2024-03-03 00:00:00","main":{"temp":5,"humidity":80},"weather":[{"description":"rain","icon":"10n"}],"wind":{"speed":1.0}},
 {"dt_txt":"2024-03-04 00:00:00","main":{"temp":5,"humidity":80},"weather":[{"description":"rain","icon":"10n"}],"wind":{"speed":1.0}},
 {"dt_txt":"2024-03-05 00:00:00","main":{"temp":5,"humidity":80},"weather":[{"description":"rain","icon":"10n"}],"wind":{"speed":1.0}},
 {"dt_txt":"2024-03-06 00:00:00","main":{"temp":5,"humidity":80},"weather":[{"description":"rain","icon":"10n"}],"wind":{"speed":1.0}}
]}`

func TestWeather_LiveProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "k", r.URL.Query().Get("appid"))
		switch r.URL.Path {
		case "/weather":
			_, _ = w.Write([]byte(`{"name":"Paris","main":{"temp":12.5,"humidity":71},"weather":[{"description":"light rain","icon":"10d"}],"wind":{"speed":4.2},"sys":{"country":"FR"}}`))
		case "/forecast":
			_, _ = w.Write([]byte(forecastFixture))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	svc := NewWeatherService(srv.Client(), "k", srv.URL, true, zap.NewNop())

	overview, err := svc.Overview(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, 13, overview.Current.Temperature)
	assert.Equal(t, "FR", overview.Current.Country)

	require.Len(t, overview.Forecast, 5)
	first := overview.Forecast[0]
	assert.Equal(t, "2024-03-01", first.Date)
	assert.Equal(t, 10, first.Temperature.Min)
	assert.Equal(t, 15, first.Temperature.Max)
	assert.Equal(t, "few clouds", first.Description)
	assert.Equal(t, "02d", first.Icon)
	assert.Equal(t, 70, first.Humidity)
	assert.Equal(t, 2.5, first.WindSpeed)
	assert.Equal(t, -2, overview.Forecast[1].Temperature.Min)
	assert.Equal(t, "2024-03-05", overview.Forecast[4].Date)
}

func TestWeather_LiveFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := NewWeatherService(srv.Client(), "bad", srv.URL, true, zap.NewNop())
	cur, err := svc.Current(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, "Demo", cur.Country)

	forecast, err := svc.Forecast(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Len(t, forecast, 5)
}
