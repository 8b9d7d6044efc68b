package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayCount(t *testing.T) {
	start, err := ParseTripDate("2024-03-01")
	require.NoError(t, err)

	cases := []struct {
		name string
		end  string
		want int
	}{
		{"two nights", "2024-03-03", 2},
		{"same day", "2024-03-01", 0},
		{"end before start", "2024-02-27", -3},
		{"partial day rounds up", "2024-03-02T06:00:00Z", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			end, err := ParseTripDate(tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, DayCount(start, end))
		})
	}
}

func TestParseTripDate_Invalid(t *testing.T) {
	_, err := ParseTripDate("next tuesday")
	assert.Error(t, err)
}

func TestParseLeadingInt(t *testing.T) {
	cases := map[string]struct {
		want int
		ok   bool
	}{
		"2":        {2, true},
		"3-4":      {3, true},
		"9+":       {9, true},
		"500+":     {500, true},
		" 42 ":     {42, true},
		"under-50": {0, false},
		"":         {0, false},
	}

	for in, tc := range cases {
		got, ok := ParseLeadingInt(in)
		assert.Equal(t, tc.ok, ok, in)
		assert.Equal(t, tc.want, got, in)
	}
}

func TestParseStrictNumber(t *testing.T) {
	v, ok := ParseStrictNumber("250")
	assert.True(t, ok)
	assert.Equal(t, 250.0, v)

	_, ok = ParseStrictNumber("200-500")
	assert.False(t, ok)

	_, ok = ParseStrictNumber("")
	assert.False(t, ok)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "3h 30m", FormatDuration(210))
	assert.Equal(t, "1h 0m", FormatDuration(60))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "2024-03-02", FormatDate(time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)))
}
