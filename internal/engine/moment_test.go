package engine_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-clock/internal/engine"
)

var (
	datePattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

func TestMoment_Segments(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		wantDate string
		wantTime string
	}{
		{"Morning", time.Date(2024, 3, 7, 8, 5, 9, 0, time.UTC), "03/07", "08:05:09"},
		{"Midnight", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "01/01", "00:00:00"},
		{"LastSecondOfYear", time.Date(2024, 12, 31, 23, 59, 59, 999_000_000, time.UTC), "12/31", "23:59:59"},
		{"Afternoon24h", time.Date(2023, 10, 14, 15, 30, 0, 0, time.UTC), "10/14", "15:30:00"},
		{"LeapDay", time.Date(2024, 2, 29, 12, 0, 1, 0, time.UTC), "02/29", "12:00:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := engine.NewMoment(tt.at)
			assert.Equal(t, tt.wantDate, m.Date())
			assert.Equal(t, tt.wantTime, m.TimeOfDay())
			assert.Equal(t, tt.wantDate+" "+tt.wantTime, m.Announcement())
		})
	}
}

// TestMoment_FixedWidth walks a whole leap year in uneven steps so every
// month, day, hour, minute and second width shows up.
func TestMoment_FixedWidth(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)
	step := 7*time.Hour + 13*time.Minute + 17*time.Second

	for ts := start; ts.Before(end); ts = ts.Add(step) {
		m := engine.NewMoment(ts)
		date, clock := m.Date(), m.TimeOfDay()

		if !assert.Len(t, date, 5) || !assert.Regexp(t, datePattern, date) {
			t.Fatalf("bad date segment for %v", ts)
		}
		if !assert.Len(t, clock, 8) || !assert.Regexp(t, timePattern, clock) {
			t.Fatalf("bad time segment for %v", ts)
		}
	}
}

func TestMoment_Idempotent(t *testing.T) {
	m := engine.NewMoment(time.Date(2024, 6, 1, 9, 8, 7, 0, time.UTC))

	assert.Equal(t, m.Date(), m.Date())
	assert.Equal(t, m.TimeOfDay(), m.TimeOfDay())
	assert.Equal(t, m.Label(), m.Label())
}

func TestMoment_Label(t *testing.T) {
	m := engine.NewMoment(time.Date(2024, 3, 7, 8, 5, 9, 0, time.UTC))
	assert.Equal(t, "Current date and time is 03/07 08:05:09", m.Label())
	assert.Equal(t, m.Announcement(), m.String())
}

func TestMoment_Zero(t *testing.T) {
	assert.True(t, engine.Moment{}.IsZero())
	assert.False(t, engine.NewMoment(time.Now()).IsZero())
}
