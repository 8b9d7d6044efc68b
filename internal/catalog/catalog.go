// Package catalog holds the hand-authored reference data the planner and the
// utility features draw from: activity pools, songs, parking, hidden spots,
// discover listings, map places, currencies and travel documents.
//
// The data ships as YAML embedded in the binary and is parsed once at startup.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

type Coordinates struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

// ActivityTemplate is one plannable activity. Pool entries carry Seq and leave
// ID and Location to the planner; seeded itineraries fill every field.
type ActivityTemplate struct {
	Seq         int     `yaml:"seq"`
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Type        string  `yaml:"type"`
	StartTime   string  `yaml:"start_time"`
	EndTime     string  `yaml:"end_time"`
	Duration    int     `yaml:"duration"`
	Location    string  `yaml:"location"`
	Cost        float64 `yaml:"cost"`
	Rating      float64 `yaml:"rating"`
	Image       string  `yaml:"image"`
	Notes       string  `yaml:"notes"`
	Essential   bool    `yaml:"essential"`
}

type Pool struct {
	Name       string             `yaml:"pool"`
	Activities []ActivityTemplate `yaml:"activities"`
}

type activityPoolsFile struct {
	Slots map[string][]Pool `yaml:"slots"`
}

type SeedDay struct {
	ID         string             `yaml:"id"`
	Date       string             `yaml:"date"`
	Activities []ActivityTemplate `yaml:"activities"`
}

type SeedItinerary struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Destination string    `yaml:"destination"`
	StartDate   string    `yaml:"start_date"`
	EndDate     string    `yaml:"end_date"`
	Travelers   int       `yaml:"travelers"`
	Budget      float64   `yaml:"budget"`
	Preferences []string  `yaml:"preferences"`
	Days        []SeedDay `yaml:"days"`
}

type Song struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Artist   string `yaml:"artist" json:"artist"`
	Duration string `yaml:"duration" json:"duration"`
	Genre    string `yaml:"genre" json:"genre"`
	Mood     string `yaml:"mood" json:"mood"`
}

type songsFile struct {
	Songs        []Song              `yaml:"songs"`
	SimilarMoods map[string][]string `yaml:"similar_moods"`
}

type ParkingSpot struct {
	ID           string      `yaml:"id" json:"id"`
	Name         string      `yaml:"name" json:"name"`
	Address      string      `yaml:"address" json:"address"`
	DistanceKm   float64     `yaml:"distance_km" json:"distance"`
	PricePerHour float64     `yaml:"price_per_hour" json:"price"`
	Rating       float64     `yaml:"rating" json:"rating"`
	Availability string      `yaml:"availability" json:"availability"`
	Features     []string    `yaml:"features" json:"features"`
	Coordinates  Coordinates `yaml:"coordinates" json:"coordinates"`
}

type HiddenSpot struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description" json:"description"`
	Location    string      `yaml:"location" json:"location"`
	Coordinates Coordinates `yaml:"coordinates" json:"coordinates"`
	Category    string      `yaml:"category" json:"category"`
	Rating      float64     `yaml:"rating" json:"rating"`
	Difficulty  string      `yaml:"difficulty" json:"difficulty"`
	Duration    string      `yaml:"duration" json:"duration"`
	Cost        string      `yaml:"cost" json:"cost"`
	CrowdLevel  string      `yaml:"crowd_level" json:"crowdLevel"`
	BestTime    string      `yaml:"best_time" json:"bestTime"`
	Tips        []string    `yaml:"tips" json:"tips"`
}

type spotsFile[T any] struct {
	Spots []T `yaml:"spots"`
}

// Listing is a discover entry. Hotels use Tags for amenities, restaurants
// for specialties.
type Listing struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Rating     float64  `yaml:"rating"`
	Price      float64  `yaml:"price"`
	PriceRange string   `yaml:"price_range"`
	Cuisine    string   `yaml:"cuisine"`
	Image      string   `yaml:"image"`
	Location   string   `yaml:"location"`
	Distance   string   `yaml:"distance"`
	Duration   string   `yaml:"duration"`
	Category   string   `yaml:"category"`
	AIMatch    int      `yaml:"ai_match"`
	Tags       []string `yaml:"tags"`
	Features   []string `yaml:"features"`
}

type discoverFile struct {
	Hotels      []Listing `yaml:"hotels"`
	Restaurants []Listing `yaml:"restaurants"`
	Activities  []Listing `yaml:"activities"`
	Alerts      []string  `yaml:"alerts"`
}

type Place struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Address     string      `yaml:"address"`
	Coordinates Coordinates `yaml:"coordinates"`
	Type        string      `yaml:"type"`
	Rating      float64     `yaml:"rating"`
	Price       float64     `yaml:"price"`
}

type RouteProfile struct {
	Label        string   `yaml:"label"`
	MinutesPerKm float64  `yaml:"minutes_per_km"`
	CostPerKm    float64  `yaml:"cost_per_km"`
	Steps        []string `yaml:"steps"`
}

type placesFile struct {
	CurrentPosition Coordinates             `yaml:"current_position"`
	Locations       []Place                 `yaml:"locations"`
	Routes          map[string]RouteProfile `yaml:"routes"`
	Destinations    []string                `yaml:"destinations"`
	Themes          []string                `yaml:"themes"`
}

type Currency struct {
	Code   string `yaml:"code" json:"code"`
	Name   string `yaml:"name" json:"name"`
	Symbol string `yaml:"symbol" json:"symbol"`
	Flag   string `yaml:"flag" json:"flag"`
}

type currenciesFile struct {
	MockRates map[string]float64 `yaml:"mock_rates"`
	Popular   []Currency         `yaml:"popular"`
}

type TravelDocument struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Type         string   `yaml:"type"`
	Country      string   `yaml:"country"`
	IssueDate    string   `yaml:"issue_date"`
	ExpiryDate   string   `yaml:"expiry_date"`
	DocumentURL  string   `yaml:"document_url"`
	Requirements []string `yaml:"requirements"`
}

type Permission struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Granted     bool   `yaml:"granted" json:"granted"`
	Required    bool   `yaml:"required" json:"required"`
	Category    string `yaml:"category" json:"category"`
}

type Country struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

type documentsFile struct {
	Documents   []TravelDocument `yaml:"documents"`
	Permissions []Permission     `yaml:"permissions"`
	Countries   []Country        `yaml:"countries"`
}

// Catalog is read-only after Load and safe to share across goroutines.
type Catalog struct {
	slots            map[string][]Pool
	DefaultItinerary SeedItinerary

	Songs        []Song
	SimilarMoods map[string][]string

	ParkingSpots []ParkingSpot
	HiddenSpots  []HiddenSpot

	Hotels      []Listing
	Restaurants []Listing
	Activities  []Listing
	Alerts      []string

	CurrentPosition Coordinates
	Places          []Place
	Routes          map[string]RouteProfile
	Destinations    []string
	Themes          []string

	MockRates  map[string]float64
	Currencies []Currency

	Documents   []TravelDocument
	Permissions []Permission
	Countries   []Country
}

func Load() (*Catalog, error) {
	var (
		pools      activityPoolsFile
		seed       SeedItinerary
		songs      songsFile
		parking    spotsFile[ParkingSpot]
		hidden     spotsFile[HiddenSpot]
		discover   discoverFile
		places     placesFile
		currencies currenciesFile
		documents  documentsFile
	)

	files := []struct {
		name   string
		target any
	}{
		{"activity_pools.yaml", &pools},
		{"default_itinerary.yaml", &seed},
		{"songs.yaml", &songs},
		{"parking.yaml", &parking},
		{"hidden_spots.yaml", &hidden},
		{"discover.yaml", &discover},
		{"places.yaml", &places},
		{"currencies.yaml", &currencies},
		{"documents.yaml", &documents},
	}
	for _, f := range files {
		if err := decode(f.name, f.target); err != nil {
			return nil, err
		}
	}

	return &Catalog{
		slots:            pools.Slots,
		DefaultItinerary: seed,
		Songs:            songs.Songs,
		SimilarMoods:     songs.SimilarMoods,
		ParkingSpots:     parking.Spots,
		HiddenSpots:      hidden.Spots,
		Hotels:           discover.Hotels,
		Restaurants:      discover.Restaurants,
		Activities:       discover.Activities,
		Alerts:           discover.Alerts,
		CurrentPosition:  places.CurrentPosition,
		Places:           places.Locations,
		Routes:           places.Routes,
		Destinations:     places.Destinations,
		Themes:           places.Themes,
		MockRates:        currencies.MockRates,
		Currencies:       currencies.Popular,
		Documents:        documents.Documents,
		Permissions:      documents.Permissions,
		Countries:        documents.Countries,
	}, nil
}

// MustLoad panics on a malformed embedded file, which can only happen with a
// broken build.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func decode(name string, target any) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode catalog %s: %w", name, err)
	}
	return nil
}

// Pool returns the named sub-pool of a day slot, or nil.
func (c *Catalog) Pool(slot, name string) []ActivityTemplate {
	for _, p := range c.slots[slot] {
		if p.Name == name {
			return p.Activities
		}
	}
	return nil
}

func (c *Catalog) PlaceByID(id string) (Place, bool) {
	for _, p := range c.Places {
		if p.ID == id {
			return p, true
		}
	}
	return Place{}, false
}
