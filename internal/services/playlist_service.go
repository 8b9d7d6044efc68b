package services

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

const minPlaylistMatches = 5

type PlaylistServiceInterface interface {
	Generate(req request_models.PlaylistRequest) *response_models.PlaylistResponse
}

type PlaylistService struct {
	catalog *catalog.Catalog
	shuffle func(n int, swap func(i, j int))
}

func NewPlaylistService(c *catalog.Catalog) PlaylistServiceInterface {
	return &PlaylistService{catalog: c, shuffle: rand.Shuffle}
}

// PlaylistLimit maps a listening-time label to a song count.
func PlaylistLimit(duration string) int {
	switch duration {
	case "30 minutes":
		return 8
	case "1 hour":
		return 15
	case "2 hours":
		return 30
	case "4 hours":
		return 60
	default:
		return 120
	}
}

func (p *PlaylistService) Generate(req request_models.PlaylistRequest) *response_models.PlaylistResponse {
	songs := p.match(func(s catalog.Song) bool {
		return s.Mood == req.Mood || s.Genre == req.Genre
	})

	widened := false
	if len(songs) < minPlaylistMatches {
		similar := p.catalog.SimilarMoods[req.Mood]
		songs = p.match(func(s catalog.Song) bool {
			return s.Mood == req.Mood || containsString(similar, s.Mood) || s.Genre == req.Genre
		})
		widened = true
	}

	p.shuffle(len(songs), func(i, j int) { songs[i], songs[j] = songs[j], songs[i] })

	limit := PlaylistLimit(req.Duration)
	if len(songs) > limit {
		songs = songs[:limit]
	}

	return &response_models.PlaylistResponse{
		Mood:     req.Mood,
		Genre:    req.Genre,
		Duration: req.Duration,
		Limit:    limit,
		Widened:  widened,
		Songs:    songs,

		TotalDuration: utils.FormatDuration(runningSeconds(songs) / 60),
	}
}

func runningSeconds(songs []catalog.Song) int {
	total := 0
	for _, s := range songs {
		total += songSeconds(s.Duration)
	}
	return total
}

// songSeconds reads an "m:ss" track length; anything else counts as zero.
func songSeconds(d string) int {
	m, sec, ok := strings.Cut(strings.TrimSpace(d), ":")
	if !ok {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 {
		return 0
	}
	seconds, err := strconv.Atoi(sec)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0
	}
	return minutes*60 + seconds
}

func (p *PlaylistService) match(keep func(catalog.Song) bool) []catalog.Song {
	out := []catalog.Song{}
	for _, s := range p.catalog.Songs {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
