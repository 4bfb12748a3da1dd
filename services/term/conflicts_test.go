package term

import (
	"testing"

	"yogasund/models"
)

func conflictedWeek() []models.WeekSchedule {
	pattern := ExtractPattern(
		[]string{"wed"},
		[]models.ScheduleSession{mkSession("wed", "A", "2026-01-07", "18:00")},
	)
	week := PartitionByWeek([]models.ScheduleSession{
		mkSession("alt-1", "A", "2026-01-14", "08:00"),
	}, date("2026-01-12"), 2, 1)[0]
	MatchWeek(&week, pattern)
	return []models.WeekSchedule{week}
}

// TestResolveConflict verifies resolution removes the conflict and appends
// exactly one session id.
func TestResolveConflict(t *testing.T) {
	weeks := conflictedWeek()

	if !ResolveConflict(weeks, 0, "alt-1", 0) {
		t.Fatal("ResolveConflict() = false, want true")
	}
	if len(weeks[0].Conflicts) != 0 {
		t.Errorf("week has %d conflicts after resolution, want 0", len(weeks[0].Conflicts))
	}
	if len(weeks[0].SelectedSessions) != 1 || weeks[0].SelectedSessions[0] != "alt-1" {
		t.Errorf("selected = %v, want [alt-1]", weeks[0].SelectedSessions)
	}
}

// TestResolveConflict_DoubleResolve documents the unguarded behavior: a
// second resolution of the same index finds no conflict to remove but still
// appends the session id.
func TestResolveConflict_DoubleResolve(t *testing.T) {
	weeks := conflictedWeek()

	ResolveConflict(weeks, 0, "alt-1", 0)
	ResolveConflict(weeks, 0, "alt-1", 0)

	if len(weeks[0].Conflicts) != 0 {
		t.Errorf("week has %d conflicts, want 0", len(weeks[0].Conflicts))
	}
	if len(weeks[0].SelectedSessions) != 2 {
		t.Errorf("selected has %d entries after double resolve, want 2", len(weeks[0].SelectedSessions))
	}
}

// TestSessionCounters verifies the per-session aggregates used by the
// checkout gate track resolutions across weeks.
func TestSessionCounters(t *testing.T) {
	session := models.TermBookingSession{Weeks: conflictedWeek()}

	if got := session.UnresolvedConflictCount(); got != 1 {
		t.Fatalf("UnresolvedConflictCount() = %d, want 1", got)
	}
	if got := session.SelectedSessionCount(); got != 0 {
		t.Fatalf("SelectedSessionCount() = %d, want 0", got)
	}

	ResolveConflict(session.Weeks, 0, "alt-1", 0)

	if got := session.UnresolvedConflictCount(); got != 0 {
		t.Errorf("UnresolvedConflictCount() = %d after resolve, want 0", got)
	}
	if got := session.SelectedSessionCount(); got != 1 {
		t.Errorf("SelectedSessionCount() = %d after resolve, want 1", got)
	}
}

// TestResolveConflict_WeekOutOfRange rejects week indexes with no schedule.
func TestResolveConflict_WeekOutOfRange(t *testing.T) {
	weeks := conflictedWeek()

	if ResolveConflict(weeks, 5, "alt-1", 0) {
		t.Error("ResolveConflict() = true for out-of-range week, want false")
	}
	if ResolveConflict(weeks, -1, "alt-1", 0) {
		t.Error("ResolveConflict() = true for negative week, want false")
	}
}
