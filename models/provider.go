package models

import (
	"fmt"
	"time"
)

// WorkingWindow is a recurring weekly interval during which a provider
// declares working hours. Weekday uses Monday=0 .. Sunday=6. Start and End
// are clock times in "HH:MM" (24h) form, inclusive on both ends. Windows may
// overlap; they are not deduplicated.
type WorkingWindow struct {
	Weekday int    `bson:"weekday" json:"weekday"`
	Start   string `bson:"start" json:"start"`
	End     string `bson:"end" json:"end"`
}

// Validate checks the window invariants: weekday in range, parseable clock
// times, and start <= end. Windows spanning midnight are not supported.
func (w WorkingWindow) Validate() error {
	if w.Weekday < 0 || w.Weekday > 6 {
		return fmt.Errorf("weekday must be between 0 (Monday) and 6 (Sunday); got %d", w.Weekday)
	}
	start, err := ParseClock(w.Start)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", w.Start, err)
	}
	end, err := ParseClock(w.End)
	if err != nil {
		return fmt.Errorf("invalid end time %q: %w", w.End, err)
	}
	if start > end {
		return fmt.Errorf("window start %s is after end %s", w.Start, w.End)
	}
	return nil
}

// Covers reports whether the instant falls inside this window: same weekday
// and start <= time-of-day <= end. Malformed windows never match.
func (w WorkingWindow) Covers(t time.Time) bool {
	if WeekdayIndex(t) != w.Weekday {
		return false
	}
	start, err := ParseClock(w.Start)
	if err != nil {
		return false
	}
	end, err := ParseClock(w.End)
	if err != nil {
		return false
	}
	tod := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	return tod >= start && tod <= end
}

// WeekdayIndex maps a time to the Monday=0 .. Sunday=6 convention used by
// working windows.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ParseClock parses an "HH:MM" clock string into a duration since midnight.
func ParseClock(s string) (time.Duration, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
}

// Provider offers services during its declared working windows. The
// CompletedServices counter is owned by the reservation lifecycle: it moves
// only when a reservation is created already confirmed, inside the same
// store transaction as the insert, and is never decremented. Rating is an
// external input and is never mutated here.
type Provider struct {
	ID                string          `bson:"id" json:"id"`
	Name              string          `bson:"name" json:"name"`
	Email             string          `bson:"email" json:"email"`
	Bio               string          `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL          string          `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	ServiceIDs        []string        `bson:"serviceIds" json:"serviceIds"`
	WorkingWindows    []WorkingWindow `bson:"workingWindows" json:"workingWindows"`
	CompletedServices int             `bson:"completedServices" json:"completedServices"`
	Rating            float64         `bson:"rating" json:"rating"`
	Password          string          `bson:"-" json:"password,omitempty"`
	PasswordHash      string          `bson:"passwordHash" json:"-"`
	CreatedAt         time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time       `bson:"updatedAt" json:"updatedAt"`
}
