package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wanderlens/internal/models/db_models"
	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/internal/repositories"
	"wanderlens/pkg/utils"
)

type PreferenceServiceInterface interface {
	SavePreferences(ctx context.Context, accountID string, req request_models.PreferencesRequest) (*response_models.PreferenceResponse, error)
	GetPreferences(ctx context.Context, id string) (*response_models.PreferenceResponse, error)
	ListForAccount(ctx context.Context, accountID string, page, pageSize int) ([]response_models.PreferenceResponse, error)
	LoadForPlanning(ctx context.Context, id string) (*request_models.PreferencesRequest, error)
}

type PreferenceService struct {
	prefRepo repositories.PreferenceRepository
	logger   *zap.Logger
}

func NewPreferenceService(prefRepo repositories.PreferenceRepository, logger *zap.Logger) PreferenceServiceInterface {
	return &PreferenceService{prefRepo: prefRepo, logger: logger}
}

// ValidatePreferences checks that the required onboarding fields are present.
// Dates are stored as given; a reversed range plans zero days.
func ValidatePreferences(req request_models.PreferencesRequest) error {
	v := utils.NewValidationError()
	required := []struct {
		field, value, message string
	}{
		{"origin", req.Origin, "Origin is required"},
		{"destination", req.Destination, "Destination is required"},
		{"startDate", req.StartDate, "Start date is required"},
		{"endDate", req.EndDate, "End date is required"},
		{"travelers", req.Travelers.String(), "Number of travelers is required"},
		{"budget", req.Budget.String(), "Budget is required"},
		{"accommodationType", req.AccommodationType, "Accommodation type is required"},
		{"transportPreference", req.TransportPreference, "Transport preference is required"},
		{"travelStyle", req.TravelStyle, "Travel style is required"},
		{"pace", req.Pace, "Travel pace is required"},
		{"groupType", req.GroupType, "Group type is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			v.Add(r.field, r.message)
		}
	}
	return v.OrNil()
}

func (p *PreferenceService) SavePreferences(ctx context.Context, accountID string, req request_models.PreferencesRequest) (*response_models.PreferenceResponse, error) {
	if err := ValidatePreferences(req); err != nil {
		return nil, err
	}

	pref := toPreferenceModel(req)
	if accountID != "" {
		id, err := uuid.Parse(accountID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		pref.AccountID = &id
	}

	if err := p.prefRepo.Create(ctx, pref); err != nil {
		p.logger.Error("failed to store preferences", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	p.logger.Info("preferences stored",
		zap.String("preference_id", pref.ID.String()),
		zap.String("destination", pref.Destination))
	resp := toPreferenceResponse(pref)
	return &resp, nil
}

func (p *PreferenceService) GetPreferences(ctx context.Context, id string) (*response_models.PreferenceResponse, error) {
	pref, err := p.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toPreferenceResponse(pref)
	return &resp, nil
}

func (p *PreferenceService) ListForAccount(ctx context.Context, accountID string, page, pageSize int) ([]response_models.PreferenceResponse, error) {
	prefs, err := p.prefRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.PreferenceResponse, 0, len(prefs))
	for i := range prefs {
		out = append(out, toPreferenceResponse(&prefs[i]))
	}
	return out, nil
}

func (p *PreferenceService) LoadForPlanning(ctx context.Context, id string) (*request_models.PreferencesRequest, error) {
	pref, err := p.find(ctx, id)
	if err != nil {
		return nil, err
	}
	req := toPreferencesRequest(pref)
	return &req, nil
}

func (p *PreferenceService) find(ctx context.Context, id string) (*db_models.TravelPreference, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrPreferenceNotFound
	}
	pref, err := p.prefRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pref == nil {
		return nil, utils.ErrPreferenceNotFound
	}
	return pref, nil
}

func toPreferenceModel(req request_models.PreferencesRequest) *db_models.TravelPreference {
	return &db_models.TravelPreference{
		Origin:              strings.TrimSpace(req.Origin),
		Destination:         strings.TrimSpace(req.Destination),
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Travelers:           req.Travelers.String(),
		Budget:              req.Budget.String(),
		AccommodationType:   req.AccommodationType,
		TransportPreference: req.TransportPreference,
		TravelStyle:         req.TravelStyle,
		Interests:           req.Interests,
		Activities:          req.Activities,
		FoodPreferences:     req.FoodPreferences,
		Accessibility:       req.Accessibility,
		DietaryRestrictions: req.DietaryRestrictions,
		SpecialOccasions:    req.SpecialOccasions,
		Pace:                req.Pace,
		GroupType:           req.GroupType,
		WeatherPreference:   req.WeatherPreference,
		LanguagePreference:  req.LanguagePreference,
	}
}

func toPreferencesRequest(p *db_models.TravelPreference) request_models.PreferencesRequest {
	return request_models.PreferencesRequest{
		Origin:              p.Origin,
		Destination:         p.Destination,
		StartDate:           p.StartDate,
		EndDate:             p.EndDate,
		Travelers:           request_models.FormValue(p.Travelers),
		Budget:              request_models.FormValue(p.Budget),
		AccommodationType:   p.AccommodationType,
		TransportPreference: p.TransportPreference,
		TravelStyle:         p.TravelStyle,
		Interests:           nonNil(p.Interests),
		Activities:          nonNil(p.Activities),
		FoodPreferences:     nonNil(p.FoodPreferences),
		Accessibility:       nonNil(p.Accessibility),
		DietaryRestrictions: nonNil(p.DietaryRestrictions),
		SpecialOccasions:    p.SpecialOccasions,
		Pace:                p.Pace,
		GroupType:           p.GroupType,
		WeatherPreference:   p.WeatherPreference,
		LanguagePreference:  p.LanguagePreference,
	}
}

func toPreferenceResponse(p *db_models.TravelPreference) response_models.PreferenceResponse {
	return response_models.PreferenceResponse{
		ID:                  p.ID.String(),
		Origin:              p.Origin,
		Destination:         p.Destination,
		StartDate:           p.StartDate,
		EndDate:             p.EndDate,
		Travelers:           p.Travelers,
		Budget:              p.Budget,
		AccommodationType:   p.AccommodationType,
		TransportPreference: p.TransportPreference,
		TravelStyle:         p.TravelStyle,
		Interests:           nonNil(p.Interests),
		Activities:          nonNil(p.Activities),
		FoodPreferences:     nonNil(p.FoodPreferences),
		Accessibility:       nonNil(p.Accessibility),
		DietaryRestrictions: nonNil(p.DietaryRestrictions),
		SpecialOccasions:    p.SpecialOccasions,
		Pace:                p.Pace,
		GroupType:           p.GroupType,
		WeatherPreference:   p.WeatherPreference,
		LanguagePreference:  p.LanguagePreference,
		CreatedAt:           p.CreatedTime().Format(utils.DateLayout),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return append([]string{}, values...)
}
