package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dbm "wanderlens/internal/models/db_models"
	"wanderlens/internal/models/request_models"
	resp "wanderlens/internal/models/response_models"
	"wanderlens/internal/repositories"
	"wanderlens/pkg/utils"
)

const (
	TripUpcoming  = "upcoming"
	TripCurrent   = "current"
	TripCompleted = "completed"

	dashboardTripLimit   = 50
	topDestinationsLimit = 10
	// zero page size lists every saved place
	allSavedPlaces = 0
)

type DashboardService interface {
	BuildUserDashboard(ctx context.Context, accountID string) (*resp.DashboardResponse, error)
	ListSavedPlaces(ctx context.Context, accountID string, page, pageSize int) ([]resp.SavedPlaceResponse, error)
	SavePlace(ctx context.Context, accountID string, req request_models.SavedPlaceRequest) (*resp.SavedPlaceResponse, error)
	DeleteSavedPlace(ctx context.Context, accountID, placeID string) error
	BuildAdminOverview(ctx context.Context, rng resp.TimeRange) (*resp.AdminOverview, error)
}

type dashboardService struct {
	repo        repositories.DashboardRepository
	accounts    AccountServiceInterface
	preferences PreferenceServiceInterface
	places      repositories.SavedPlaceRepository
	calendar    CalendarServiceInterface
	logger      *zap.Logger
	now         func() time.Time
}

func NewDashboardService(
	repo repositories.DashboardRepository,
	accounts AccountServiceInterface,
	preferences PreferenceServiceInterface,
	places repositories.SavedPlaceRepository,
	calendar CalendarServiceInterface,
	logger *zap.Logger,
) DashboardService {
	return &dashboardService{
		repo:        repo,
		accounts:    accounts,
		preferences: preferences,
		places:      places,
		calendar:    calendar,
		logger:      logger,
		now:         time.Now,
	}
}

// tripStatus classifies a trip against today's date.
func tripStatus(startDate, endDate string, now time.Time) string {
	start, err := utils.ParseTripDate(startDate)
	if err != nil {
		return TripUpcoming
	}
	end, err := utils.ParseTripDate(endDate)
	if err != nil {
		end = start
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case today.Before(start):
		return TripUpcoming
	case today.After(end):
		return TripCompleted
	default:
		return TripCurrent
	}
}

func (s *dashboardService) BuildUserDashboard(ctx context.Context, accountID string) (*resp.DashboardResponse, error) {
	account, err := s.accounts.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.preferences.ListForAccount(ctx, accountID, 1, dashboardTripLimit)
	if err != nil {
		return nil, err
	}

	places, err := s.ListSavedPlaces(ctx, accountID, 1, allSavedPlaces)
	if err != nil {
		return nil, err
	}

	events, err := s.calendar.Upcoming(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := &resp.DashboardResponse{
		Account:        *account,
		Trips:          make([]resp.TripSummary, 0, len(prefs)),
		SavedPlaces:    places,
		UpcomingEvents: events,
	}
	for _, p := range prefs {
		budget := 0
		if n, ok := utils.ParseLeadingInt(p.Budget); ok {
			budget = n
		}
		out.Trips = append(out.Trips, resp.TripSummary{
			ID:           "trip-" + p.ID,
			Title:        "Trip to " + p.Destination,
			Destination:  p.Destination,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Status:       tripStatus(p.StartDate, p.EndDate, now),
			Budget:       budget,
			PreferenceID: p.ID,
		})
		out.Stats.TotalBudget += budget
	}
	out.Stats.Trips = len(out.Trips)
	out.Stats.SavedPlaces = len(places)
	out.Stats.Events = len(events)
	return out, nil
}

func (s *dashboardService) ListSavedPlaces(ctx context.Context, accountID string, page, pageSize int) ([]resp.SavedPlaceResponse, error) {
	rows, err := s.places.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		s.logger.Error("failed to list saved places", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	out := make([]resp.SavedPlaceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toSavedPlaceResponse(r))
	}
	return out, nil
}

func (s *dashboardService) SavePlace(ctx context.Context, accountID string, req request_models.SavedPlaceRequest) (*resp.SavedPlaceResponse, error) {
	owner, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if strings.TrimSpace(req.Name) == "" {
		v := utils.NewValidationError()
		v.Add("name", "Name is required")
		return nil, v
	}

	place := &dbm.SavedPlace{
		AccountID: owner,
		Name:      strings.TrimSpace(req.Name),
		Type:      req.Type,
		Location:  req.Location,
		Image:     req.Image,
		Rating:    req.Rating,
		Price:     req.Price,
	}
	if err := s.places.Create(ctx, place); err != nil {
		s.logger.Error("failed to save place", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	out := toSavedPlaceResponse(*place)
	return &out, nil
}

func (s *dashboardService) DeleteSavedPlace(ctx context.Context, accountID, placeID string) error {
	if _, err := uuid.Parse(placeID); err != nil {
		return utils.ErrNotFound
	}
	deleted, err := s.places.DeleteForAccount(ctx, accountID, placeID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrNotFound
	}
	return nil
}

func toSavedPlaceResponse(p dbm.SavedPlace) resp.SavedPlaceResponse {
	return resp.SavedPlaceResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Type:     p.Type,
		Location: p.Location,
		Image:    p.Image,
		Rating:   p.Rating,
		Price:    p.Price,
		SavedAt:  p.CreatedTime().Format(time.RFC3339),
	}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange, now time.Time) resp.TimeRange {
	out := r
	if out.Interval == "" {
		out.Interval = "day"
	}
	if out.End.IsZero() {
		out.End = now.UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *dashboardService) BuildAdminOverview(ctx context.Context, rng resp.TimeRange) (*resp.AdminOverview, error) {
	rng = normalizeRange(rng, s.now())

	// ---------- Core counts ----------
	totalAccounts, err := s.repo.CountTotalAccounts(ctx)
	if err != nil {
		return nil, err
	}

	newAccounts, err := s.repo.CountNewAccounts(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	plans, err := s.repo.CountPreferences(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.CountEvents(ctx)
	if err != nil {
		return nil, err
	}

	// ---------- Series ----------
	newUsersRows, err := s.repo.NewUsersSeries(ctx, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, err
	}
	newUsersPoints := make([]resp.SeriesPoint, 0, len(newUsersRows))
	for _, r := range newUsersRows {
		newUsersPoints = append(newUsersPoints, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
	}

	// ---------- Top destinations ----------
	destRows, err := s.repo.TopDestinations(ctx, rng.Start, rng.End, topDestinationsLimit)
	if err != nil {
		return nil, err
	}
	topDestinations := make([]resp.CountByLabel, 0, len(destRows))
	for _, r := range destRows {
		topDestinations = append(topDestinations, resp.CountByLabel{Label: r.Destination, Count: r.Count})
	}

	// ---------- Travel style mix ----------
	styleRows, err := s.repo.TravelStyleMix(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	styles := make([]resp.CountByLabel, 0, len(styleRows))
	for _, r := range styleRows {
		label := r.TravelStyle
		if label == "" {
			label = "unspecified"
		}
		styles = append(styles, resp.CountByLabel{Label: label, Count: r.Count})
	}

	return &resp.AdminOverview{
		Range:           rng,
		TotalAccounts:   totalAccounts,
		NewAccounts:     newAccounts,
		PlansSubmitted:  plans,
		CalendarEvents:  events,
		NewUsers:        newUsersPoints,
		TopDestinations: topDestinations,
		TravelStyles:    styles,
	}, nil
}
