package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseTripDate accepts a plain calendar date (read as UTC midnight) or a full
// RFC3339 timestamp.
func ParseTripDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse trip date %q: %w", s, err)
	}
	return t, nil
}

// DayCount is ceil((end-start)/24h). It is zero or negative when end does not
// come after start; callers loop `for i := 0; i < n; i++` and get no days.
func DayCount(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	return int(math.Ceil(hours / 24))
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatDuration renders minutes as "2h 30m", or "45m" under an hour.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// ParseLeadingInt reads the leading base-10 integer of s the way form values
// like "3-4" or "500+" are read: "3-4" -> 3, "500+" -> 500, "under-50" -> false.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseStrictNumber succeeds only when the whole trimmed value is a number.
func ParseStrictNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// RoundTo2 rounds half away from zero to two decimals.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
