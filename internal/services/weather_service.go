package services

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

var (
	mockWeatherDescriptions = []string{"Sunny", "Cloudy", "Partly Cloudy", "Rainy", "Clear"}
	mockWeatherIcons        = []string{"01d", "02d", "03d", "04d", "09d", "10d", "11d"}
)

const forecastDays = 5

type WeatherServiceInterface interface {
	Current(ctx context.Context, city string) (*response_models.WeatherResponse, error)
	Forecast(ctx context.Context, city string) ([]response_models.ForecastDay, error)
	Overview(ctx context.Context, city string) (*response_models.WeatherOverview, error)
}

type WeatherService struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	live    bool
	logger  *zap.Logger

	intn func(n int) int
	now  func() time.Time
}

func NewWeatherService(client *http.Client, apiKey, baseURL string, live bool, logger *zap.Logger) WeatherServiceInterface {
	return &WeatherService{
		HTTP:    client,
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		live:    live,
		logger:  logger,
		intn:    rand.IntN,
		now:     time.Now,
	}
}

func (s *WeatherService) Current(ctx context.Context, city string) (*response_models.WeatherResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, utils.ErrInvalidInput
	}
	if s.live {
		w, err := s.fetchCurrent(ctx, city)
		if err == nil {
			return w, nil
		}
		s.logger.Warn("weather provider failed, using mock data", zap.String("city", city), zap.Error(err))
	}
	return s.mockCurrent(city), nil
}

func (s *WeatherService) Forecast(ctx context.Context, city string) ([]response_models.ForecastDay, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, utils.ErrInvalidInput
	}
	if s.live {
		f, err := s.fetchForecast(ctx, city)
		if err == nil {
			return f, nil
		}
		s.logger.Warn("weather forecast provider failed, using mock data", zap.String("city", city), zap.Error(err))
	}
	return s.mockForecast(), nil
}

// Overview loads the current conditions and the forecast concurrently.
func (s *WeatherService) Overview(ctx context.Context, city string) (*response_models.WeatherOverview, error) {
	var (
		current  *response_models.WeatherResponse
		forecast []response_models.ForecastDay
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.Current(gctx, city)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = s.Forecast(gctx, city)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &response_models.WeatherOverview{Current: *current, Forecast: forecast}, nil
}

func (s *WeatherService) mockCurrent(city string) *response_models.WeatherResponse {
	return &response_models.WeatherResponse{
		Temperature: s.intn(15) + 15,
		Description: mockWeatherDescriptions[s.intn(len(mockWeatherDescriptions))],
		Humidity:    s.intn(40) + 40,
		WindSpeed:   float64(s.intn(15) + 5),
		Icon:        mockWeatherIcons[s.intn(len(mockWeatherIcons))],
		City:        city,
		Country:     "Demo",
	}
}

func (s *WeatherService) mockForecast() []response_models.ForecastDay {
	today := s.now().UTC()
	out := make([]response_models.ForecastDay, 0, forecastDays)
	for i := 0; i < forecastDays; i++ {
		out = append(out, response_models.ForecastDay{
			Date: today.AddDate(0, 0, i).Format(utils.DateLayout),
			Temperature: response_models.TemperatureRange{
				Min: s.intn(10) + 10,
				Max: s.intn(15) + 20,
			},
			Description: mockWeatherDescriptions[s.intn(len(mockWeatherDescriptions))],
			Icon:        mockWeatherIcons[s.intn(len(mockWeatherIcons))],
			Humidity:    s.intn(40) + 40,
			WindSpeed:   float64(s.intn(15) + 5),
		})
	}
	return out
}

type owmCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmMain struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

type owmWind struct {
	Speed float64 `json:"speed"`
}

type owmCurrent struct {
	Name    string         `json:"name"`
	Main    owmMain        `json:"main"`
	Weather []owmCondition `json:"weather"`
	Wind    owmWind        `json:"wind"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type owmForecastItem struct {
	DtTxt   string         `json:"dt_txt"`
	Main    owmMain        `json:"main"`
	Weather []owmCondition `json:"weather"`
	Wind    owmWind        `json:"wind"`
}

type owmForecast struct {
	List []owmForecastItem `json:"list"`
}

func (s *WeatherService) endpoint(path, city string) string {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", s.APIKey)
	q.Set("units", "metric")
	return fmt.Sprintf("%s/%s?%s", s.BaseURL, path, q.Encode())
}

func (s *WeatherService) fetchCurrent(ctx context.Context, city string) (*response_models.WeatherResponse, error) {
	var payload owmCurrent
	if err := fetchJSON(ctx, s.HTTP, s.endpoint("weather", city), &payload); err != nil {
		return nil, err
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("weather payload has no conditions")
	}
	return &response_models.WeatherResponse{
		Temperature: roundHalfUp(payload.Main.Temp),
		Description: payload.Weather[0].Description,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Icon:        payload.Weather[0].Icon,
		City:        payload.Name,
		Country:     payload.Sys.Country,
	}, nil
}

func (s *WeatherService) fetchForecast(ctx context.Context, city string) ([]response_models.ForecastDay, error) {
	var payload owmForecast
	if err := fetchJSON(ctx, s.HTTP, s.endpoint("forecast", city), &payload); err != nil {
		return nil, err
	}
	return summarizeForecast(payload.List)
}

// summarizeForecast groups 3-hourly items by calendar date in arrival order
// and keeps the first five dates.
func summarizeForecast(items []owmForecastItem) ([]response_models.ForecastDay, error) {
	var order []string
	byDate := make(map[string][]owmForecastItem)
	for _, item := range items {
		date, _, _ := strings.Cut(item.DtTxt, " ")
		if _, seen := byDate[date]; !seen {
			order = append(order, date)
		}
		byDate[date] = append(byDate[date], item)
	}
	if len(order) > forecastDays {
		order = order[:forecastDays]
	}

	out := make([]response_models.ForecastDay, 0, len(order))
	for _, date := range order {
		day := byDate[date]
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, item := range day {
			lo = math.Min(lo, item.Main.Temp)
			hi = math.Max(hi, item.Main.Temp)
		}
		mid := day[len(day)/2]
		if len(mid.Weather) == 0 {
			return nil, fmt.Errorf("forecast item %s has no conditions", mid.DtTxt)
		}
		out = append(out, response_models.ForecastDay{
			Date:        date,
			Temperature: response_models.TemperatureRange{Min: roundHalfUp(lo), Max: roundHalfUp(hi)},
			Description: mid.Weather[0].Description,
			Icon:        mid.Weather[0].Icon,
			Humidity:    day[0].Main.Humidity,
			WindSpeed:   day[0].Wind.Speed,
		})
	}
	return out, nil
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
