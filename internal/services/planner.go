package services

import (
	"fmt"
	"strings"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

const (
	EnergyHigh   = "high"
	EnergyMedium = "medium"
	EnergyLow    = "low"

	DiningFine   = "fine-dining"
	DiningStreet = "street-food"
	DiningCasual = "casual"

	SocialSocial   = "social"
	SocialModerate = "moderate"

	defaultTravelers = 2
	defaultBudget    = 2000

	fineDiningBudgetFloor = 200
	placeholderImage      = "/api/placeholder/300/200"
)

var daySlots = []string{"morning", "lunch", "afternoon", "evening"}

// PlannerProfile is the normalised view of a traveller's preferences that
// drives activity selection. It is computed once per request.
type PlannerProfile struct {
	Destination        string
	StartDate          string
	EndDate            string
	Travelers          int
	Budget             int
	Interests          []string
	EnergyLevel        string
	Personality        []string
	DiningStyle        string
	CuisinePreferences []string
	SocialStyle        string
}

func NormalizePreferences(p request_models.PreferencesRequest) PlannerProfile {
	profile := PlannerProfile{
		Destination:        strings.TrimSpace(p.Destination),
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		Travelers:          defaultTravelers,
		Budget:             defaultBudget,
		Interests:          append([]string{}, p.Interests...),
		CuisinePreferences: append([]string{}, p.FoodPreferences...),
		Personality:        []string{},
	}

	// parseInt semantics: "0" and unparsable values both fall back.
	if n, ok := utils.ParseLeadingInt(p.Travelers.String()); ok && n != 0 {
		profile.Travelers = n
	}
	if n, ok := utils.ParseLeadingInt(p.Budget.String()); ok && n != 0 {
		profile.Budget = n
	}

	switch p.TravelStyle {
	case "adventure":
		profile.EnergyLevel = EnergyHigh
		profile.Personality = []string{"adventurous"}
	case "relaxed":
		profile.EnergyLevel = EnergyLow
	case "luxury":
		profile.EnergyLevel = EnergyMedium
		profile.Personality = []string{"relaxed"}
	default:
		profile.EnergyLevel = EnergyMedium
	}

	switch {
	case isFineDiningBudget(p.Budget.String()):
		profile.DiningStyle = DiningFine
	case containsFold(p.FoodPreferences, "Street Food"):
		profile.DiningStyle = DiningStreet
	default:
		profile.DiningStyle = DiningCasual
	}

	if p.GroupType == "friends" {
		profile.SocialStyle = SocialSocial
	} else {
		profile.SocialStyle = SocialModerate
	}

	return profile
}

// isFineDiningBudget needs the whole budget value to be numeric; range
// labels such as "500+" never qualify.
func isFineDiningBudget(budget string) bool {
	n, ok := utils.ParseStrictNumber(budget)
	return ok && n > fineDiningBudgetFloor
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), want) {
			return true
		}
	}
	return false
}

func (p PlannerProfile) hasInterest(names ...string) bool {
	for _, n := range names {
		if containsFold(p.Interests, n) {
			return true
		}
	}
	return false
}

func (p PlannerProfile) hasTrait(trait string) bool {
	return containsFold(p.Personality, trait)
}

// Planner picks one activity per day slot from the catalog pools. Selection
// is a pure function of the profile and the day number.
type Planner struct {
	catalog *catalog.Catalog
}

func NewPlanner(c *catalog.Catalog) *Planner {
	return &Planner{catalog: c}
}

// GenerateDays yields ceil((end-start)/24h) days. Unparsable dates or an end
// that does not come after the start yield no days.
func (pl *Planner) GenerateDays(profile PlannerProfile) []response_models.Day {
	days := make([]response_models.Day, 0)

	start, err := utils.ParseTripDate(profile.StartDate)
	if err != nil {
		return days
	}
	end, err := utils.ParseTripDate(profile.EndDate)
	if err != nil {
		return days
	}

	count := utils.DayCount(start, end)
	for i := 0; i < count; i++ {
		dayNumber := i + 1
		day := response_models.Day{
			ID:         fmt.Sprintf("day-%d", dayNumber),
			Date:       utils.FormatDate(start.AddDate(0, 0, i)),
			Activities: pl.ActivitiesForDay(dayNumber, profile),
		}
		day.Recalculate()
		days = append(days, day)
	}
	return days
}

// ActivitiesForDay takes pool[dayNumber % len(pool)] from each non-empty
// slot pool, in slot order.
func (pl *Planner) ActivitiesForDay(dayNumber int, profile PlannerProfile) []response_models.Activity {
	activities := make([]response_models.Activity, 0, len(daySlots))
	for _, slot := range daySlots {
		pool := pl.slotPool(slot, profile)
		if len(pool) == 0 {
			continue
		}
		picked := pool[dayNumber%len(pool)]
		activities = append(activities, fromTemplate(slot, dayNumber, picked, profile.Destination))
	}
	return activities
}

func (pl *Planner) slotPool(slot string, p PlannerProfile) []catalog.ActivityTemplate {
	var names []string

	switch slot {
	case "morning":
		if p.EnergyLevel == EnergyHigh || p.hasTrait("adventurous") {
			names = append(names, "adventure")
		}
		if p.hasInterest("history", "culture") {
			names = append(names, "culture")
		}
		if p.EnergyLevel == EnergyLow || p.hasTrait("relaxed") {
			names = append(names, "relaxed")
		}
	case "lunch":
		if p.DiningStyle == DiningFine {
			names = append(names, "fine-dining")
		}
		if p.DiningStyle == DiningStreet {
			names = append(names, "street-food")
		}
		names = append(names, "casual")
	case "afternoon":
		if p.hasInterest("history", "culture") {
			names = append(names, "culture")
		}
		if p.hasInterest("nature", "outdoor") {
			names = append(names, "nature")
		}
		names = append(names, "leisure")
	case "evening":
		if p.hasTrait("extrovert") || p.SocialStyle == SocialSocial {
			names = append(names, "social")
		}
		if p.hasTrait("introvert") || p.EnergyLevel == EnergyLow {
			names = append(names, "quiet")
		}
		names = append(names, "city")
	}

	var pool []catalog.ActivityTemplate
	for _, n := range names {
		pool = append(pool, pl.catalog.Pool(slot, n)...)
	}
	return pool
}

func fromTemplate(slot string, dayNumber int, t catalog.ActivityTemplate, destination string) response_models.Activity {
	image := t.Image
	if image == "" {
		image = placeholderImage
	}
	return response_models.Activity{
		ID:          fmt.Sprintf("%s-%d-%d", slot, dayNumber, t.Seq),
		Title:       t.Title,
		Description: t.Description,
		Type:        t.Type,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Duration:    t.Duration,
		Location:    destination,
		Cost:        t.Cost,
		Rating:      t.Rating,
		Image:       image,
		Notes:       t.Notes,
		Essential:   t.Essential,
	}
}
