package term

import (
	"context"
	"fmt"
	"time"

	"yogasund/models"

	"github.com/google/uuid"
)

// StartSession opens a term-booking wizard: it fetches the term window for
// the plan and the first week's sessions, stores the wizard state, and
// returns it. contactID is empty until the member authenticates.
func (s *DefaultTermBookingService) StartSession(ctx context.Context, planID, templateID string, termStart time.Time, contactID string) (*models.TermBookingSession, error) {
	plan, err := s.Source.GetTermAvailability(ctx, planID, templateID, termStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load term availability: %w", err)
	}

	weekOneEnd := plan.TermStart.AddDate(0, 0, 7)
	weekOne, err := s.Source.FetchSessionsInRange(ctx, plan.TemplateIDs, plan.TermStart, weekOneEnd, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to load week one sessions: %w", err)
	}

	session := models.TermBookingSession{
		SessionID:       uuid.New().String(),
		ContactID:       contactID,
		Plan:            *plan,
		WeekOneSessions: weekOne,
		CreatedAt:       time.Now(),
	}

	if err := s.Store.Save(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession reloads the wizard state for the given id.
func (s *DefaultTermBookingService) GetSession(ctx context.Context, sessionID string) (*models.TermBookingSession, error) {
	return s.Store.Load(ctx, sessionID)
}

// SelectWeekOne records the member's week-one picks, extracts the weekly
// pattern and projects it over the remaining term weeks. Projection issues a
// single batched fetch for the whole remaining range; if that fetch fails the
// projection aborts with no partial result.
func (s *DefaultTermBookingService) SelectWeekOne(ctx context.Context, sessionID string, selectedIDs []string) (*models.TermBookingSession, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(selectedIDs) != session.Plan.SessionsPerWeek {
		return nil, ErrWrongSelectionCount
	}

	pattern := ExtractPattern(selectedIDs, session.WeekOneSessions)
	session.Pattern = pattern

	weekOne := models.WeekSchedule{
		WeekNumber:       1,
		StartDate:        session.Plan.TermStart,
		EndDate:          session.Plan.TermStart.AddDate(0, 0, 7),
		Sessions:         session.WeekOneSessions,
		SelectedSessions: selectedSessionIDs(pattern),
		Conflicts:        []models.ConflictInfo{},
	}

	remainingWeeks := session.Plan.TotalWeeks - 1
	weeks := []models.WeekSchedule{weekOne}
	if remainingWeeks > 0 {
		secondWeekStart := weekOne.EndDate
		rangeEnd := session.Plan.TermStart.AddDate(0, 0, 7*session.Plan.TotalWeeks)
		sessions, err := s.Source.FetchSessionsInRange(ctx, session.Plan.TemplateIDs, secondWeekStart, rangeEnd, session.ContactID)
		if err != nil {
			return nil, fmt.Errorf("failed to load remaining term sessions: %w", err)
		}
		weeks = append(weeks, ProjectPattern(pattern, sessions, secondWeekStart, remainingWeeks)...)
	}
	session.Weeks = weeks

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ResolveConflict applies the member's manual pick for one conflict and
// persists the mutated wizard state.
func (s *DefaultTermBookingService) ResolveConflict(ctx context.Context, sessionID string, weekIndex int, chosenSessionID string, conflictIndex int) (*models.TermBookingSession, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Weeks) == 0 {
		return nil, ErrPatternNotExtracted
	}

	if !ResolveConflict(session.Weeks, weekIndex, chosenSessionID, conflictIndex) {
		return nil, ErrInvalidWeek
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Checkout flattens the selections into a reservation list and creates the
// external checkout session on braincore. The wizard session is discarded on
// success; the member is redirected to the returned URL and braincore owns
// reservation cleanup from there.
func (s *DefaultTermBookingService) Checkout(ctx context.Context, sessionID, bearer string) (*models.TermCheckoutResult, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Weeks) == 0 {
		return nil, ErrPatternNotExtracted
	}
	if session.UnresolvedConflictCount() > 0 {
		return nil, ErrUnresolvedConflicts
	}

	reservations := FlattenReservations(session.Weeks)
	primary := PrimaryTemplateID(reservations)

	result, err := s.Source.SubmitTermCheckout(ctx, bearer, session.Plan.PlanID, session.Plan.TermStart, session.ContactID, primary, reservations)
	if err != nil {
		return nil, err
	}

	// The checkout succeeded upstream; a failed local cleanup only leaves
	// the wizard state to expire on its own TTL.
	_ = s.Store.Delete(ctx, sessionID)
	return result, nil
}

// CancelSession abandons the wizard. Braincore releases any reservations on
// its own schedule; there is nothing to roll back here.
func (s *DefaultTermBookingService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel term booking session: %w", err)
	}
	return nil
}

// selectedSessionIDs returns the pattern's originating session ids in
// pattern order, the week-one selected list.
func selectedSessionIDs(pattern []models.PatternSlot) []string {
	ids := make([]string, 0, len(pattern))
	for _, slot := range pattern {
		ids = append(ids, slot.SessionID)
	}
	return ids
}
