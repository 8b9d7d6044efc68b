package services

import (
	"math"
	"strings"
	"time"

	"wanderlens/internal/catalog"
	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

const (
	DocumentValid    = "valid"
	DocumentExpiring = "expiring"
	DocumentExpired  = "expired"

	expiringWindowDays = 30
)

type LicenseServiceInterface interface {
	Overview(country string) *response_models.LicenseResponse
}

type LicenseService struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewLicenseService(c *catalog.Catalog) LicenseServiceInterface {
	return &LicenseService{catalog: c, now: time.Now}
}

// DaysUntilExpiry is ceil((expiry - today) / 24h), with both dates read as
// UTC midnight.
func DaysUntilExpiry(expiry string, now time.Time) (int, bool) {
	exp, err := time.Parse(utils.DateLayout, expiry)
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(exp.Sub(today).Hours() / 24)), true
}

func DocumentStatus(days int) string {
	switch {
	case days < 0:
		return DocumentExpired
	case days <= expiringWindowDays:
		return DocumentExpiring
	default:
		return DocumentValid
	}
}

func (s *LicenseService) Overview(country string) *response_models.LicenseResponse {
	country = strings.TrimSpace(country)
	now := s.now()

	resp := &response_models.LicenseResponse{
		Country:     country,
		Documents:   []response_models.TravelDocumentResponse{},
		Permissions: append([]catalog.Permission{}, s.catalog.Permissions...),
		Countries:   append([]catalog.Country{}, s.catalog.Countries...),
	}
	for _, d := range s.catalog.Documents {
		if country != "" && !strings.EqualFold(d.Country, country) {
			continue
		}
		doc := response_models.TravelDocumentResponse{
			ID:           d.ID,
			Name:         d.Name,
			Type:         d.Type,
			Country:      d.Country,
			IssueDate:    d.IssueDate,
			ExpiryDate:   d.ExpiryDate,
			DocumentURL:  d.DocumentURL,
			Requirements: append([]string{}, d.Requirements...),
			Status:       DocumentExpired,
		}
		if days, ok := DaysUntilExpiry(d.ExpiryDate, now); ok {
			doc.DaysUntilExpiry = days
			doc.Status = DocumentStatus(days)
		}
		resp.Documents = append(resp.Documents, doc)
	}
	return resp
}
