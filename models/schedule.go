package models

import "time"

// ScheduleSession is a single bookable class instance. Sessions are created
// and destroyed entirely by braincore; this service only reads snapshots.
type ScheduleSession struct {
	ID             string    `json:"id"`
	TemplateID     string    `json:"templateId"`
	Title          string    `json:"title,omitempty"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Instructor     string    `json:"instructor,omitempty"`
	Resource       string    `json:"resource,omitempty"`
	Capacity       int       `json:"capacity"`
	AvailableSpots int       `json:"availableSpots"`
}

// Weekday returns the session's day of week, 0=Sunday through 6=Saturday.
func (s ScheduleSession) Weekday() int {
	return int(s.StartTime.Weekday())
}

// TimeOfDay returns the session's start time as a zero-padded "HH:MM" string.
// Zero padding keeps lexicographic comparison equivalent to chronological.
func (s ScheduleSession) TimeOfDay() string {
	return s.StartTime.Format("15:04")
}

// DateString returns the session date as "2006-01-02".
func (s ScheduleSession) DateString() string {
	return s.StartTime.Format("2006-01-02")
}

// BookingOption describes eligibility and pricing for one session, as
// resolved by braincore for a given contact and locale.
type BookingOption struct {
	Type        string  `json:"type"` // "membership", "credits", "drop_in"
	Label       string  `json:"label"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Available   bool    `json:"available"`
	Description string  `json:"description,omitempty"`
}
