package term

import (
	"context"
	"time"

	"yogasund/models"
)

// ScheduleSource is the slice of the braincore API the term wizard needs.
// The one-batched-call fetch strategy is part of the contract: callers pass
// a whole date range and partition the result locally.
type ScheduleSource interface {
	FetchSessionsInRange(ctx context.Context, templateIDs []string, start, end time.Time, contactID string) ([]models.ScheduleSession, error)
	GetTermAvailability(ctx context.Context, planID, templateID string, startDate time.Time) (*models.TermPlan, error)
	SubmitTermCheckout(ctx context.Context, bearer, planID string, termStart time.Time, contactID, primaryTemplateID string, sessions []models.SessionReservation) (*models.TermCheckoutResult, error)
}

// TermBookingService drives the multi-step term membership wizard. State
// between steps lives in the session store under the returned wizard
// session id.
type TermBookingService interface {
	StartSession(ctx context.Context, planID, templateID string, termStart time.Time, contactID string) (*models.TermBookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.TermBookingSession, error)
	SelectWeekOne(ctx context.Context, sessionID string, selectedIDs []string) (*models.TermBookingSession, error)
	ResolveConflict(ctx context.Context, sessionID string, weekIndex int, chosenSessionID string, conflictIndex int) (*models.TermBookingSession, error)
	Checkout(ctx context.Context, sessionID, bearer string) (*models.TermCheckoutResult, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultTermBookingService implements TermBookingService on top of the
// braincore client and a wizard state store.
type DefaultTermBookingService struct {
	Source ScheduleSource
	Store  SessionStore
}
