package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	mem "wanderlens/pkg/memcache"
	"wanderlens/pkg/utils"
)

var validActivityTypes = map[string]bool{
	"hotel":      true,
	"restaurant": true,
	"activity":   true,
	"transport":  true,
}

type ItineraryServiceInterface interface {
	GenerateFromPreferences(ctx context.Context, prefs request_models.PreferencesRequest) (*response_models.Itinerary, error)
	GenerateFromStored(ctx context.Context, preferenceID string) (*response_models.Itinerary, error)
	DefaultItinerary(ctx context.Context) (*response_models.Itinerary, error)
	GetItinerary(ctx context.Context, id string) (*response_models.Itinerary, error)
	ToggleActivity(ctx context.Context, id, dayID, activityID string) (*response_models.Itinerary, error)
	AddActivity(ctx context.Context, id, dayID string, req request_models.AddActivityRequest) (*response_models.Itinerary, error)
	RemoveActivity(ctx context.Context, id, dayID, activityID string) (*response_models.Itinerary, error)
	ExportPDF(ctx context.Context, id string) ([]byte, error)
	ShareQRCode(ctx context.Context, id string, size int) ([]byte, error)
	ShareLink(id string) string
}

type ItineraryService struct {
	planner     *Planner
	catalog     *catalog.Catalog
	preferences PreferenceServiceInterface
	store       *mem.TTLStore[response_models.Itinerary]
	ttl         time.Duration
	baseURL     string
	logger      *zap.Logger
}

func NewItineraryService(
	planner *Planner,
	c *catalog.Catalog,
	preferences PreferenceServiceInterface,
	store *mem.TTLStore[response_models.Itinerary],
	ttl time.Duration,
	baseURL string,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		planner:     planner,
		catalog:     c,
		preferences: preferences,
		store:       store,
		ttl:         ttl,
		baseURL:     strings.TrimRight(baseURL, "/"),
		logger:      logger,
	}
}

func (s *ItineraryService) GenerateFromPreferences(ctx context.Context, prefs request_models.PreferencesRequest) (*response_models.Itinerary, error) {
	v := utils.NewValidationError()
	if strings.TrimSpace(prefs.Destination) == "" {
		v.Add("destination", "Destination is required")
	}
	if strings.TrimSpace(prefs.StartDate) == "" {
		v.Add("startDate", "Start date is required")
	}
	if strings.TrimSpace(prefs.EndDate) == "" {
		v.Add("endDate", "End date is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	it := s.build(NormalizePreferences(prefs))
	s.save(it)
	s.logger.Info("itinerary generated",
		zap.String("itinerary_id", it.ID),
		zap.String("destination", it.Destination),
		zap.Int("days", len(it.Days)))
	return s.copyOf(it), nil
}

// GenerateFromStored falls back to the default itinerary whenever the stored
// preferences cannot be read.
func (s *ItineraryService) GenerateFromStored(ctx context.Context, preferenceID string) (*response_models.Itinerary, error) {
	prefs, err := s.preferences.LoadForPlanning(ctx, preferenceID)
	if err != nil {
		s.logger.Warn("stored preferences unavailable, serving default itinerary",
			zap.String("preference_id", preferenceID),
			zap.Error(err))
		return s.DefaultItinerary(ctx)
	}

	it := s.build(NormalizePreferences(*prefs))
	s.save(it)
	return s.copyOf(it), nil
}

func (s *ItineraryService) DefaultItinerary(ctx context.Context) (*response_models.Itinerary, error) {
	seed := s.catalog.DefaultItinerary
	it := response_models.Itinerary{
		ID:          "default-" + uuid.NewString(),
		Title:       seed.Title,
		Destination: seed.Destination,
		StartDate:   seed.StartDate,
		EndDate:     seed.EndDate,
		Travelers:   seed.Travelers,
		Budget:      int(seed.Budget),
		Preferences: append([]string{}, seed.Preferences...),
		Days:        make([]response_models.Day, 0, len(seed.Days)),
	}
	for _, d := range seed.Days {
		day := response_models.Day{ID: d.ID, Date: d.Date, Activities: make([]response_models.Activity, 0, len(d.Activities))}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, response_models.Activity{
				ID:          a.ID,
				Title:       a.Title,
				Description: a.Description,
				Type:        a.Type,
				StartTime:   a.StartTime,
				EndTime:     a.EndTime,
				Duration:    a.Duration,
				Location:    a.Location,
				Cost:        a.Cost,
				Rating:      a.Rating,
				Image:       a.Image,
				Notes:       a.Notes,
				Essential:   a.Essential,
			})
		}
		it.Days = append(it.Days, day)
	}
	it.Recalculate()

	s.save(it)
	return s.copyOf(it), nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (*response_models.Itinerary, error) {
	it, ok := s.store.Get(id)
	if !ok {
		return nil, utils.ErrItineraryNotFound
	}
	return s.copyOf(it), nil
}

func (s *ItineraryService) ToggleActivity(ctx context.Context, id, dayID, activityID string) (*response_models.Itinerary, error) {
	return s.mutateDay(id, dayID, func(day *response_models.Day) error {
		for i := range day.Activities {
			if day.Activities[i].ID == activityID {
				day.Activities[i].Completed = !day.Activities[i].Completed
				return nil
			}
		}
		return utils.ErrActivityNotFound
	})
}

func (s *ItineraryService) AddActivity(ctx context.Context, id, dayID string, req request_models.AddActivityRequest) (*response_models.Itinerary, error) {
	v := utils.NewValidationError()
	if strings.TrimSpace(req.Title) == "" {
		v.Add("title", "Title is required")
	}
	if req.Type == "" {
		req.Type = "activity"
	}
	if !validActivityTypes[req.Type] {
		v.Add("type", "Type must be hotel, restaurant, activity or transport")
	}
	if req.Duration < 0 {
		v.Add("duration", "Duration cannot be negative")
	}
	if req.Cost < 0 {
		v.Add("cost", "Cost cannot be negative")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	return s.mutateDay(id, dayID, func(day *response_models.Day) error {
		day.Activities = append(day.Activities, response_models.Activity{
			ID:          "custom-" + uuid.NewString(),
			Title:       strings.TrimSpace(req.Title),
			Description: req.Description,
			Type:        req.Type,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Duration:    req.Duration,
			Location:    req.Location,
			Cost:        req.Cost,
			Rating:      req.Rating,
			Image:       placeholderImage,
			Notes:       req.Notes,
			Essential:   req.Essential,
		})
		return nil
	})
}

func (s *ItineraryService) RemoveActivity(ctx context.Context, id, dayID, activityID string) (*response_models.Itinerary, error) {
	return s.mutateDay(id, dayID, func(day *response_models.Day) error {
		for i := range day.Activities {
			if day.Activities[i].ID == activityID {
				day.Activities = append(day.Activities[:i], day.Activities[i+1:]...)
				return nil
			}
		}
		return utils.ErrActivityNotFound
	})
}

// mutateDay applies fn to a copy of the itinerary under the store's lock and
// recomputes totals before writing it back.
func (s *ItineraryService) mutateDay(id, dayID string, fn func(day *response_models.Day) error) (*response_models.Itinerary, error) {
	updated, err := s.store.Update(id, func(current response_models.Itinerary) (response_models.Itinerary, error) {
		it := current.Clone()
		for i := range it.Days {
			if it.Days[i].ID != dayID {
				continue
			}
			if err := fn(&it.Days[i]); err != nil {
				return current, err
			}
			it.Recalculate()
			return it, nil
		}
		return current, utils.ErrDayNotFound
	})
	if err != nil {
		if errors.Is(err, mem.ErrMissing) {
			return nil, utils.ErrItineraryNotFound
		}
		return nil, err
	}
	return s.copyOf(updated), nil
}

func (s *ItineraryService) ShareLink(id string) string {
	return fmt.Sprintf("%s/itinerary/%s", s.baseURL, id)
}

func (s *ItineraryService) ShareQRCode(ctx context.Context, id string, size int) ([]byte, error) {
	if _, ok := s.store.Get(id); !ok {
		return nil, utils.ErrItineraryNotFound
	}
	if size < 128 || size > 1024 {
		size = 256
	}
	png, err := qrcode.Encode(s.ShareLink(id), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode share qr: %w", err)
	}
	return png, nil
}

func (s *ItineraryService) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	it, ok := s.store.Get(id)
	if !ok {
		return nil, utils.ErrItineraryNotFound
	}

	qrPNG, err := qrcode.Encode(s.ShareLink(id), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode share qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(it.Title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(it.Title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("%s  |  %s to %s", it.Destination, it.StartDate, it.EndDate)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Travelers: %d   Budget: $%d   Planned spend: $%.2f   Time: %s",
		it.Travelers, it.Budget, it.TotalCost, utils.FormatDuration(it.TotalDuration)))
	pdf.Ln(10)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("share-qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("share-qr", 165, 10, 30, 30, false, imageOpts, 0, "")

	for i, day := range it.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.SetFillColor(235, 235, 250)
		pdf.CellFormat(0, 8, fmt.Sprintf("Day %d  -  %s", i+1, day.Date), "", 1, "L", true, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Arial", "", 10)
		for _, a := range day.Activities {
			mark := "[ ]"
			if a.Completed {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s-%s  %s  (%s, $%.2f)", mark, a.StartTime, a.EndTime, a.Title, utils.FormatDuration(a.Duration), a.Cost)
			pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
			if a.Notes != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.CellFormat(0, 5, tr("    "+a.Notes), "", 1, "L", false, 0, "")
				pdf.SetFont("Arial", "", 10)
			}
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Day total: $%.2f, %s", day.TotalCost, day.DurationLabel), "", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ItineraryService) build(profile PlannerProfile) response_models.Itinerary {
	it := response_models.Itinerary{
		ID:           "personalized-" + uuid.NewString(),
		Title:        fmt.Sprintf("Perfect %s Adventure", profile.Destination),
		Destination:  profile.Destination,
		StartDate:    profile.StartDate,
		EndDate:      profile.EndDate,
		Travelers:    profile.Travelers,
		Budget:       profile.Budget,
		Preferences:  append([]string{}, profile.Interests...),
		Days:         s.planner.GenerateDays(profile),
		Personalized: true,
	}
	it.Recalculate()
	return it
}

func (s *ItineraryService) save(it response_models.Itinerary) {
	s.store.Set(it.ID, it.Clone(), s.ttl)
}

func (s *ItineraryService) copyOf(it response_models.Itinerary) *response_models.Itinerary {
	c := it.Clone()
	return &c
}
