package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// Moment is the timestamp currently held and displayed by a clock.
// It keeps full precision but renders to the second.
type Moment struct {
	at time.Time
}

// NewMoment wraps t.
func NewMoment(t time.Time) Moment {
	return Moment{at: t}
}

// Time returns the wrapped timestamp.
func (m Moment) Time() time.Time {
	return m.at
}

// IsZero reports whether the moment was never read from a clock.
func (m Moment) IsZero() bool {
	return m.at.IsZero()
}

// Date renders the date segment (MM/DD).
func (m Moment) Date() string {
	return m.at.Format(config.DateLayout)
}

// TimeOfDay renders the time segment (HH:MM:SS, 24-hour).
func (m Moment) TimeOfDay() string {
	return m.at.Format(config.TimeLayout)
}

// Announcement is the live region content: both segments, space separated.
func (m Moment) Announcement() string {
	return m.Date() + config.SegmentSeparator + m.TimeOfDay()
}

// Label is the untranslated descriptive label of the live region.
func (m Moment) Label() string {
	return fmt.Sprintf(config.FallbackA11yLabel, m.Date(), m.TimeOfDay())
}

// String implements fmt.Stringer for logging.
func (m Moment) String() string {
	return m.Announcement()
}
