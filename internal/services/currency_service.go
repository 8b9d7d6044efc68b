package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

type CurrencyServiceInterface interface {
	Convert(ctx context.Context, from, to string, amount float64) (*response_models.ConversionResponse, error)
	Rates(ctx context.Context, base string) (*response_models.RatesResponse, error)
	Popular() []catalog.Currency
}

// CurrencyService talks to exchangerate-api when a key is configured and
// answers from the embedded rate table otherwise. Provider failures are
// logged and answered from the table as well.
type CurrencyService struct {
	catalog *catalog.Catalog
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	live    bool
	logger  *zap.Logger
	now     func() time.Time
}

func NewCurrencyService(c *catalog.Catalog, client *http.Client, apiKey, baseURL string, live bool, logger *zap.Logger) CurrencyServiceInterface {
	return &CurrencyService{
		catalog: c,
		HTTP:    client,
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		live:    live,
		logger:  logger,
		now:     time.Now,
	}
}

func normalizeCurrencyCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", utils.ErrUnsupportedCurrency
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", utils.ErrUnsupportedCurrency
		}
	}
	return code, nil
}

func (s *CurrencyService) Convert(ctx context.Context, from, to string, amount float64) (*response_models.ConversionResponse, error) {
	from, err := normalizeCurrencyCode(from)
	if err != nil {
		return nil, err
	}
	to, err = normalizeCurrencyCode(to)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, utils.ErrInvalidInput
	}

	if s.live {
		resp, err := s.fetchPair(ctx, from, to, amount)
		if err == nil {
			return resp, nil
		}
		s.logger.Warn("currency provider failed, using mock rates",
			zap.String("from", from), zap.String("to", to), zap.Error(err))
	}
	return s.mockConversion(from, to, amount), nil
}

func (s *CurrencyService) Rates(ctx context.Context, base string) (*response_models.RatesResponse, error) {
	if strings.TrimSpace(base) == "" {
		base = "USD"
	}
	base, err := normalizeCurrencyCode(base)
	if err != nil {
		return nil, err
	}

	if s.live {
		resp, err := s.fetchLatest(ctx, base)
		if err == nil {
			return resp, nil
		}
		s.logger.Warn("currency provider failed, using mock rates",
			zap.String("base", base), zap.Error(err))
	}
	return s.mockRates(base), nil
}

func (s *CurrencyService) Popular() []catalog.Currency {
	return append([]catalog.Currency{}, s.catalog.Currencies...)
}

func (s *CurrencyService) mockRate(code string) float64 {
	if r, ok := s.catalog.MockRates[code]; ok && r > 0 {
		return r
	}
	return 1
}

func (s *CurrencyService) mockConversion(from, to string, amount float64) *response_models.ConversionResponse {
	rate := s.mockRate(to) / s.mockRate(from)
	return &response_models.ConversionResponse{
		From:   from,
		To:     to,
		Rate:   rate,
		Amount: amount,
		Result: utils.RoundTo2(amount * rate),
	}
}

func (s *CurrencyService) mockRates(base string) *response_models.RatesResponse {
	baseRate := s.mockRate(base)
	rates := make(map[string]float64, len(s.catalog.MockRates))
	codes := make([]string, 0, len(s.catalog.MockRates))
	for code := range s.catalog.MockRates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		rates[code] = s.catalog.MockRates[code] / baseRate
	}
	return &response_models.RatesResponse{
		Base:        base,
		Rates:       rates,
		LastUpdated: s.now().UTC().Format(time.RFC3339),
	}
}

type pairPayload struct {
	Result           string  `json:"result"`
	BaseCode         string  `json:"base_code"`
	TargetCode       string  `json:"target_code"`
	ConversionRate   float64 `json:"conversion_rate"`
	ConversionResult float64 `json:"conversion_result"`
}

type latestPayload struct {
	Result            string             `json:"result"`
	BaseCode          string             `json:"base_code"`
	ConversionRates   map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
}

func (s *CurrencyService) fetchPair(ctx context.Context, from, to string, amount float64) (*response_models.ConversionResponse, error) {
	endpoint := fmt.Sprintf("%s/%s/pair/%s/%s/%s",
		s.BaseURL, url.PathEscape(s.APIKey), from, to, strconv.FormatFloat(amount, 'f', -1, 64))

	var payload pairPayload
	if err := s.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if payload.Result != "" && payload.Result != "success" {
		return nil, fmt.Errorf("exchangerate result %q", payload.Result)
	}
	return &response_models.ConversionResponse{
		From:   payload.BaseCode,
		To:     payload.TargetCode,
		Rate:   payload.ConversionRate,
		Amount: amount,
		Result: payload.ConversionResult,
	}, nil
}

func (s *CurrencyService) fetchLatest(ctx context.Context, base string) (*response_models.RatesResponse, error) {
	endpoint := fmt.Sprintf("%s/%s/latest/%s", s.BaseURL, url.PathEscape(s.APIKey), base)

	var payload latestPayload
	if err := s.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if payload.Result != "" && payload.Result != "success" {
		return nil, fmt.Errorf("exchangerate result %q", payload.Result)
	}
	return &response_models.RatesResponse{
		Base:        payload.BaseCode,
		Rates:       payload.ConversionRates,
		LastUpdated: payload.TimeLastUpdateUTC,
	}, nil
}

func (s *CurrencyService) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	return fetchJSON(ctx, s.HTTP, endpoint, out)
}

// fetchJSON issues a GET and decodes a 2xx JSON body into out.
func fetchJSON(ctx context.Context, client *http.Client, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("provider http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("provider bad status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("provider decode: %w", err)
	}
	return nil
}
