package term

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"yogasund/models"
)

// memoryStore mimics the Redis store's copy semantics: sessions round-trip
// through JSON so mutations never leak between save and load.
type memoryStore struct {
	sessions map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string][]byte)}
}

func (s *memoryStore) Save(ctx context.Context, session *models.TermBookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.sessions[session.SessionID] = data
	return nil
}

func (s *memoryStore) Load(ctx context.Context, sessionID string) (*models.TermBookingSession, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.TermBookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *memoryStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

// fakeSource serves canned braincore responses and records the checkout call.
type fakeSource struct {
	plan     *models.TermPlan
	sessions []models.ScheduleSession

	checkoutCalled    bool
	checkoutContactID string
	checkoutPlanID    string
	checkoutSessions  []models.SessionReservation
}

func (f *fakeSource) FetchSessionsInRange(ctx context.Context, templateIDs []string, start, end time.Time, contactID string) ([]models.ScheduleSession, error) {
	return f.sessions, nil
}

func (f *fakeSource) GetTermAvailability(ctx context.Context, planID, templateID string, startDate time.Time) (*models.TermPlan, error) {
	return f.plan, nil
}

func (f *fakeSource) SubmitTermCheckout(ctx context.Context, bearer, planID string, termStart time.Time, contactID, primaryTemplateID string, sessions []models.SessionReservation) (*models.TermCheckoutResult, error) {
	f.checkoutCalled = true
	f.checkoutContactID = contactID
	f.checkoutPlanID = planID
	f.checkoutSessions = sessions
	return &models.TermCheckoutResult{CheckoutID: "chk-1", CheckoutURL: "https://pay.example/chk-1"}, nil
}

func seedSession(t *testing.T, store SessionStore, session *models.TermBookingSession) {
	t.Helper()
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("seeding session: %v", err)
	}
}

func TestSelectWeekOne_WrongSelectionCount(t *testing.T) {
	store := newMemoryStore()
	svc := &DefaultTermBookingService{Source: &fakeSource{}, Store: store}

	seedSession(t, store, &models.TermBookingSession{
		SessionID: "wiz-1",
		Plan:      models.TermPlan{SessionsPerWeek: 2, TotalWeeks: 10, TermStart: date("2026-01-05")},
		WeekOneSessions: []models.ScheduleSession{
			mkSession("s1", "hatha", "2026-01-05", "17:00"),
			mkSession("s2", "yin", "2026-01-07", "18:00"),
		},
	})

	_, err := svc.SelectWeekOne(context.Background(), "wiz-1", []string{"s1"})
	if !errors.Is(err, ErrWrongSelectionCount) {
		t.Fatalf("SelectWeekOne() error = %v, want ErrWrongSelectionCount", err)
	}

	session, err := store.Load(context.Background(), "wiz-1")
	if err != nil {
		t.Fatalf("reloading session: %v", err)
	}
	if len(session.Weeks) != 0 || len(session.Pattern) != 0 {
		t.Errorf("rejected selection mutated stored state: weeks=%d pattern=%d", len(session.Weeks), len(session.Pattern))
	}
}

func TestCheckout_BeforeWeekOneSelection(t *testing.T) {
	store := newMemoryStore()
	source := &fakeSource{}
	svc := &DefaultTermBookingService{Source: source, Store: store}

	seedSession(t, store, &models.TermBookingSession{
		SessionID: "wiz-2",
		Plan:      models.TermPlan{SessionsPerWeek: 1, TotalWeeks: 4},
	})

	_, err := svc.Checkout(context.Background(), "wiz-2", "bearer-token")
	if !errors.Is(err, ErrPatternNotExtracted) {
		t.Fatalf("Checkout() error = %v, want ErrPatternNotExtracted", err)
	}
	if source.checkoutCalled {
		t.Error("checkout reached braincore before week one was selected")
	}
}

func TestCheckout_UnresolvedConflicts(t *testing.T) {
	store := newMemoryStore()
	source := &fakeSource{}
	svc := &DefaultTermBookingService{Source: source, Store: store}

	seedSession(t, store, &models.TermBookingSession{
		SessionID: "wiz-3",
		Plan:      models.TermPlan{SessionsPerWeek: 1, TotalWeeks: 2},
		Weeks: []models.WeekSchedule{
			{
				WeekNumber:       1,
				Sessions:         []models.ScheduleSession{mkSession("s1", "hatha", "2026-01-05", "17:00")},
				SelectedSessions: []string{"s1"},
			},
			{
				WeekNumber: 2,
				Conflicts: []models.ConflictInfo{
					{Slot: models.PatternSlot{Weekday: 1, Time: "17:00"}, Reason: "cancelled"},
				},
			},
		},
	})

	_, err := svc.Checkout(context.Background(), "wiz-3", "bearer-token")
	if !errors.Is(err, ErrUnresolvedConflicts) {
		t.Fatalf("Checkout() error = %v, want ErrUnresolvedConflicts", err)
	}
	if source.checkoutCalled {
		t.Error("checkout reached braincore with an open conflict")
	}
}

func TestCheckout_SubmitsAndDiscardsSession(t *testing.T) {
	store := newMemoryStore()
	source := &fakeSource{}
	svc := &DefaultTermBookingService{Source: source, Store: store}

	seedSession(t, store, &models.TermBookingSession{
		SessionID: "wiz-4",
		ContactID: "contact-9",
		Plan:      models.TermPlan{PlanID: "term-autumn", SessionsPerWeek: 1, TotalWeeks: 2, TermStart: date("2026-01-05")},
		Weeks: []models.WeekSchedule{
			{
				WeekNumber:       1,
				Sessions:         []models.ScheduleSession{mkSession("s1", "hatha", "2026-01-05", "17:00")},
				SelectedSessions: []string{"s1"},
			},
			{
				WeekNumber:       2,
				Sessions:         []models.ScheduleSession{mkSession("s8", "hatha", "2026-01-12", "17:00")},
				SelectedSessions: []string{"s8"},
				Conflicts:        []models.ConflictInfo{},
			},
		},
	})

	result, err := svc.Checkout(context.Background(), "wiz-4", "bearer-token")
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if result.CheckoutURL == "" {
		t.Error("checkout result has no redirect URL")
	}

	if source.checkoutPlanID != "term-autumn" {
		t.Errorf("submitted plan = %q, want term-autumn", source.checkoutPlanID)
	}
	if source.checkoutContactID != "contact-9" {
		t.Errorf("submitted contact id = %q, want contact-9", source.checkoutContactID)
	}
	if len(source.checkoutSessions) != 2 {
		t.Errorf("submitted %d reservations, want 2", len(source.checkoutSessions))
	}

	if _, err := svc.GetSession(context.Background(), "wiz-4"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession() after checkout error = %v, want ErrSessionNotFound", err)
	}
}
