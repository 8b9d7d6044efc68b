package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wanderlens/internal/models/db_models"
	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/internal/repositories"
	"wanderlens/pkg/utils"
)

const upcomingEventLimit = 5

var (
	eventTypes  = map[string]bool{"flight": true, "hotel": true, "restaurant": true, "activity": true, "reminder": true}
	clockFormat = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

type CalendarServiceInterface interface {
	Month(ctx context.Context, year, month int) (*response_models.CalendarMonthResponse, error)
	CreateEvent(ctx context.Context, req request_models.CalendarEventRequest) (*response_models.CalendarEventResponse, error)
	EventsOn(ctx context.Context, date string) ([]response_models.CalendarEventResponse, error)
	DeleteEvent(ctx context.Context, id string) error
	Upcoming(ctx context.Context) ([]response_models.CalendarEventResponse, error)
}

type CalendarService struct {
	repo   repositories.CalendarRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewCalendarService(repo repositories.CalendarRepository, logger *zap.Logger) CalendarServiceInterface {
	return &CalendarService{repo: repo, logger: logger, now: time.Now}
}

// MonthGrid returns a Sunday-first grid: one nil per weekday before the 1st,
// then the day numbers.
func MonthGrid(year int, month time.Month) []*int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())

	cells := make([]*int, 0, offset+daysIn)
	for i := 0; i < offset; i++ {
		cells = append(cells, nil)
	}
	for d := 1; d <= daysIn; d++ {
		day := d
		cells = append(cells, &day)
	}
	return cells
}

func (s *CalendarService) Month(ctx context.Context, year, month int) (*response_models.CalendarMonthResponse, error) {
	if year == 0 || month == 0 {
		now := s.now()
		year, month = now.Year(), int(now.Month())
	}
	if month < 1 || month > 12 || year < 1 {
		return nil, utils.ErrInvalidInput
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	events, err := s.repo.ListBetween(ctx, utils.FormatDate(first), utils.FormatDate(last))
	if err != nil {
		s.logger.Error("failed to list month events", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CalendarMonthResponse{
		Year:   year,
		Month:  month,
		Name:   fmt.Sprintf("%s %d", first.Month(), year),
		Cells:  MonthGrid(year, time.Month(month)),
		Events: toEventResponses(events),
	}, nil
}

func (s *CalendarService) CreateEvent(ctx context.Context, req request_models.CalendarEventRequest) (*response_models.CalendarEventResponse, error) {
	v := utils.NewValidationError()
	if strings.TrimSpace(req.Title) == "" {
		v.Add("title", "Title is required")
	}
	if req.Date == "" {
		v.Add("date", "Date is required")
	} else if _, err := time.Parse(utils.DateLayout, req.Date); err != nil {
		v.Add("date", "Date must be YYYY-MM-DD")
	}
	if req.Time == "" {
		v.Add("time", "Time is required")
	} else if !clockFormat.MatchString(req.Time) {
		v.Add("time", "Time must be HH:MM")
	}
	if req.Type == "" {
		req.Type = "activity"
	}
	if !eventTypes[req.Type] {
		v.Add("type", "Unknown event type")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	event := &db_models.CalendarEvent{
		Title:       strings.TrimSpace(req.Title),
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Location:    req.Location,
		Description: req.Description,
		Reminder:    req.Reminder,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		s.logger.Error("failed to create calendar event", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	resp := toEventResponse(*event)
	return &resp, nil
}

func (s *CalendarService) EventsOn(ctx context.Context, date string) ([]response_models.CalendarEventResponse, error) {
	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		return nil, utils.ErrInvalidInput
	}
	events, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toEventResponses(events), nil
}

func (s *CalendarService) DeleteEvent(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrEventNotFound
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrEventNotFound
	}
	return nil
}

// Upcoming lists events dated today or later, earliest first.
func (s *CalendarService) Upcoming(ctx context.Context) ([]response_models.CalendarEventResponse, error) {
	events, err := s.repo.ListUpcoming(ctx, utils.FormatDate(s.now()), upcomingEventLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toEventResponses(events), nil
}

func toEventResponse(e db_models.CalendarEvent) response_models.CalendarEventResponse {
	return response_models.CalendarEventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Type:        e.Type,
		Location:    e.Location,
		Description: e.Description,
		Reminder:    e.Reminder,
	}
}

func toEventResponses(events []db_models.CalendarEvent) []response_models.CalendarEventResponse {
	out := make([]response_models.CalendarEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}
