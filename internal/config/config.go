package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DemoKey is the placeholder provider key. Clients configured with it serve
// synthesized data instead of calling out.
const DemoKey = "demo_key"

// DefaultJWTSecret is only accepted when LOG_LEVEL is debug.
const DefaultJWTSecret = "change-me"

type Config struct {
	Port        string `env:"PORT"         envDefault:"8080"`
	PostgresURL string `env:"POSTGRES_URL"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me"`
	JWTTTL    time.Duration `env:"JWT_TTL"    envDefault:"60m"`

	CurrencyAPIKey  string `env:"CURRENCY_API_KEY"  envDefault:"demo_key"`
	CurrencyBaseURL string `env:"CURRENCY_BASE_URL" envDefault:"https://v6.exchangerate-api.com/v6"`
	WeatherAPIKey   string `env:"WEATHER_API_KEY"   envDefault:"demo_key"`
	WeatherBaseURL  string `env:"WEATHER_BASE_URL"  envDefault:"https://api.openweathermap.org/data/2.5"`
	MapboxToken     string `env:"MAPBOX_ACCESS_TOKEN"`
	MapboxBaseURL   string `env:"MAPBOX_BASE_URL"   envDefault:"https://api.mapbox.com"`

	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`

	CORSAllowedOrigins string  `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	RateLimitRPS       float64 `env:"RATE_LIMIT_RPS"       envDefault:"20"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST"     envDefault:"40"`
	// Empty trusts no proxy, so the client IP is always the peer address.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	LogLevel     string        `env:"LOG_LEVEL"     envDefault:"info"`
	AppBaseURL   string        `env:"APP_BASE_URL"  envDefault:"http://localhost:3000"`
	ItineraryTTL time.Duration `env:"ITINERARY_TTL" envDefault:"24h"`
	// ItineraryMaxEntries caps the in-memory itinerary store.
	ItineraryMaxEntries int `env:"ITINERARY_MAX_ENTRIES" envDefault:"10000"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !isMissingFile(err) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: PORT must not be empty")
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must not be empty")
	}
	if c.JWTSecret == DefaultJWTSecret && c.LogLevel != "debug" {
		return errors.New("config: JWT_SECRET must be set outside debug mode")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("config: RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.ItineraryTTL <= 0 {
		return fmt.Errorf("config: ITINERARY_TTL must be positive, got %v", c.ItineraryTTL)
	}
	if c.ItineraryMaxEntries <= 0 {
		return fmt.Errorf("config: ITINERARY_MAX_ENTRIES must be positive, got %d", c.ItineraryMaxEntries)
	}
	return nil
}

func (c Config) UsesLiveCurrency() bool {
	return c.CurrencyAPIKey != "" && c.CurrencyAPIKey != DemoKey
}

func (c Config) UsesLiveWeather() bool {
	return c.WeatherAPIKey != "" && c.WeatherAPIKey != DemoKey
}

func (c Config) UsesLiveRoutes() bool {
	return c.MapboxToken != ""
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
