package models

import "time"

// MembershipPlan is one purchasable membership offer from braincore's
// catalog, shown on the memberships page before the wizard starts.
type MembershipPlan struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Type            string   `json:"type"` // "term", "monthly", "clip_card"
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	SessionsPerWeek int      `json:"sessionsPerWeek,omitempty"`
	TemplateIDs     []string `json:"templateIds,omitempty"`
}

// TermPlan describes a term membership offer as reported by braincore's
// term-availability endpoint: the term window and how many sessions the
// plan pre-books per week.
type TermPlan struct {
	PlanID                string    `json:"planId"`
	TemplateIDs           []string  `json:"templateIds"`
	TermStart             time.Time `json:"termStart"`
	TermEnd               time.Time `json:"termEnd"`
	TotalWeeks            int       `json:"totalWeeks"`
	SessionsPerWeek       int       `json:"sessionsPerWeek"`
	TotalRequiredSessions int       `json:"totalRequiredSessions"`
	Price                 float64   `json:"price"`
	Currency              string    `json:"currency"`
}

// PatternSlot is one recurring weekly slot derived from the member's
// week-one selections. It is created once and read-only afterwards.
type PatternSlot struct {
	Weekday    int    `json:"weekday"` // 0=Sunday .. 6=Saturday
	Time       string `json:"time"`    // "HH:MM", zero padded
	SessionID  string `json:"sessionId"`
	TemplateID string `json:"templateId"`
	Instructor string `json:"instructor,omitempty"`
}

// ConflictInfo records a pattern slot that found no exact match in a given
// week, together with up to three alternative sessions on the same weekday.
// It is destroyed once resolved or when the wizard session expires.
type ConflictInfo struct {
	Slot         PatternSlot       `json:"slot"`
	Reason       string            `json:"reason"`
	Alternatives []ScheduleSession `json:"alternatives"`
}

// WeekSchedule is the projection result for one term week. It is mutated in
// place as the member resolves conflicts.
type WeekSchedule struct {
	WeekNumber       int               `json:"weekNumber"`
	StartDate        time.Time         `json:"startDate"`
	EndDate          time.Time         `json:"endDate"` // exclusive
	Sessions         []ScheduleSession `json:"sessions"`
	SelectedSessions []string          `json:"selectedSessions"`
	Conflicts        []ConflictInfo    `json:"conflicts"`
}

// TermBookingSession holds the whole term-booking wizard state between
// steps. It lives in Redis under a generated session id with a TTL.
type TermBookingSession struct {
	SessionID       string            `json:"sessionId"`
	ContactID       string            `json:"contactId,omitempty"`
	Plan            TermPlan          `json:"plan"`
	WeekOneSessions []ScheduleSession `json:"weekOneSessions"`
	Pattern         []PatternSlot     `json:"pattern,omitempty"`
	Weeks           []WeekSchedule    `json:"weeks,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// SessionReservation is one pre-selected session submitted to braincore at
// term checkout. Field names follow braincore's wire format.
type SessionReservation struct {
	SessionID  string `json:"session_id"`
	Date       string `json:"date"` // "2006-01-02"
	Time       string `json:"time"` // "HH:MM"
	TemplateID string `json:"template_id"`
}

// TermCheckoutResult carries the external payment page braincore created
// for the reserved sessions. The client performs a full-page redirect.
type TermCheckoutResult struct {
	CheckoutID  string `json:"checkoutId"`
	CheckoutURL string `json:"checkoutUrl"`
}

// SelectedSessionCount returns the number of selected sessions across all
// weeks, week one included.
func (t *TermBookingSession) SelectedSessionCount() int {
	count := 0
	for _, w := range t.Weeks {
		count += len(w.SelectedSessions)
	}
	return count
}

// UnresolvedConflictCount returns the number of conflicts still open
// across all projected weeks.
func (t *TermBookingSession) UnresolvedConflictCount() int {
	count := 0
	for _, w := range t.Weeks {
		count += len(w.Conflicts)
	}
	return count
}
