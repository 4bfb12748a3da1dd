package term

import (
	"testing"
	"time"

	"yogasund/models"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestPartitionByWeek_Windows verifies N weeks with 7-day, non-overlapping
// half-open windows.
func TestPartitionByWeek_Windows(t *testing.T) {
	start := date("2026-01-12") // Monday of week 2
	weeks := PartitionByWeek(nil, start, 2, 3)

	if len(weeks) != 3 {
		t.Fatalf("PartitionByWeek() returned %d weeks, want 3", len(weeks))
	}
	for i, w := range weeks {
		if w.WeekNumber != 2+i {
			t.Errorf("weeks[%d].WeekNumber = %d, want %d", i, w.WeekNumber, 2+i)
		}
		if got := w.EndDate.Sub(w.StartDate); got != 7*24*time.Hour {
			t.Errorf("weeks[%d] window = %v, want 168h", i, got)
		}
		if i > 0 && !w.StartDate.Equal(weeks[i-1].EndDate) {
			t.Errorf("weeks[%d].StartDate = %v, want %v", i, w.StartDate, weeks[i-1].EndDate)
		}
	}
}

// TestPartitionByWeek_HalfOpen verifies a session exactly on a week boundary
// lands in the later week only.
func TestPartitionByWeek_HalfOpen(t *testing.T) {
	start := date("2026-01-12")
	boundary := mkSession("b", "A", "2026-01-19", "00:00")
	weeks := PartitionByWeek([]models.ScheduleSession{boundary}, start, 2, 2)

	if len(weeks[0].Sessions) != 0 {
		t.Errorf("week 2 has %d sessions, want 0", len(weeks[0].Sessions))
	}
	if len(weeks[1].Sessions) != 1 {
		t.Errorf("week 3 has %d sessions, want 1", len(weeks[1].Sessions))
	}
}

// TestMatchWeek_FullMatch: an exact (weekday, time) match for every slot
// means zero conflicts and one selection per slot.
func TestMatchWeek_FullMatch(t *testing.T) {
	pattern := ExtractPattern(
		[]string{"mon", "wed"},
		[]models.ScheduleSession{
			mkSession("mon", "A", "2026-01-05", "10:00"),
			mkSession("wed", "A", "2026-01-07", "18:00"),
		},
	)

	week := PartitionByWeek([]models.ScheduleSession{
		mkSession("w2-mon", "A", "2026-01-12", "10:00"),
		mkSession("w2-wed", "A", "2026-01-14", "18:00"),
		mkSession("w2-fri", "A", "2026-01-16", "09:00"),
	}, date("2026-01-12"), 2, 1)[0]

	MatchWeek(&week, pattern)

	if len(week.Conflicts) != 0 {
		t.Fatalf("MatchWeek() produced %d conflicts, want 0", len(week.Conflicts))
	}
	if len(week.SelectedSessions) != len(pattern) {
		t.Errorf("selected %d sessions, want %d", len(week.SelectedSessions), len(pattern))
	}
	if week.SelectedSessions[0] != "w2-mon" || week.SelectedSessions[1] != "w2-wed" {
		t.Errorf("selected = %v, want [w2-mon w2-wed]", week.SelectedSessions)
	}
}

// TestMatchWeek_EmptyWeekday: a slot whose weekday has no session at all
// becomes a conflict with an empty alternatives list.
func TestMatchWeek_EmptyWeekday(t *testing.T) {
	pattern := ExtractPattern(
		[]string{"wed"},
		[]models.ScheduleSession{mkSession("wed", "A", "2026-01-07", "18:00")},
	)

	// Week 2 has Monday sessions only.
	week := PartitionByWeek([]models.ScheduleSession{
		mkSession("w2-mon", "A", "2026-01-12", "10:00"),
	}, date("2026-01-12"), 2, 1)[0]

	MatchWeek(&week, pattern)

	if len(week.Conflicts) != 1 {
		t.Fatalf("MatchWeek() produced %d conflicts, want 1", len(week.Conflicts))
	}
	if len(week.Conflicts[0].Alternatives) != 0 {
		t.Errorf("conflict has %d alternatives, want 0", len(week.Conflicts[0].Alternatives))
	}
}

// TestMatchWeek_AlternativesCappedAndOrdered: alternatives are the first
// three unused same-weekday sessions in fetch order, time ignored.
func TestMatchWeek_AlternativesCappedAndOrdered(t *testing.T) {
	pattern := ExtractPattern(
		[]string{"wed"},
		[]models.ScheduleSession{mkSession("wed", "A", "2026-01-07", "18:00")},
	)

	week := PartitionByWeek([]models.ScheduleSession{
		mkSession("alt-1", "A", "2026-01-14", "07:00"),
		mkSession("alt-2", "A", "2026-01-14", "12:00"),
		mkSession("alt-3", "A", "2026-01-14", "19:00"),
		mkSession("alt-4", "A", "2026-01-14", "20:00"),
	}, date("2026-01-12"), 2, 1)[0]

	MatchWeek(&week, pattern)

	if len(week.Conflicts) != 1 {
		t.Fatalf("MatchWeek() produced %d conflicts, want 1", len(week.Conflicts))
	}
	alts := week.Conflicts[0].Alternatives
	if len(alts) != 3 {
		t.Fatalf("conflict has %d alternatives, want 3", len(alts))
	}
	for i, want := range []string{"alt-1", "alt-2", "alt-3"} {
		if alts[i].ID != want {
			t.Errorf("alternatives[%d] = %s, want %s", i, alts[i].ID, want)
		}
	}
}

// TestMatchWeek_GreedyClaimsInPatternOrder: two slots at the same weekday
// and time claim distinct sessions, earlier slot first.
func TestMatchWeek_GreedyClaimsInPatternOrder(t *testing.T) {
	pattern := ExtractPattern(
		[]string{"mon-a", "mon-b"},
		[]models.ScheduleSession{
			mkSession("mon-a", "A", "2026-01-05", "10:00"),
			mkSession("mon-b", "B", "2026-01-05", "10:00"),
		},
	)

	week := PartitionByWeek([]models.ScheduleSession{
		mkSession("w2-first", "A", "2026-01-12", "10:00"),
		mkSession("w2-second", "B", "2026-01-12", "10:00"),
	}, date("2026-01-12"), 2, 1)[0]

	MatchWeek(&week, pattern)

	if len(week.Conflicts) != 0 {
		t.Fatalf("MatchWeek() produced %d conflicts, want 0", len(week.Conflicts))
	}
	if week.SelectedSessions[0] != "w2-first" || week.SelectedSessions[1] != "w2-second" {
		t.Errorf("selected = %v, want [w2-first w2-second]", week.SelectedSessions)
	}
}

// TestProjectPattern_Example walks spec'd scenario: 2 sessions/week over
// 4 weeks, week 3 missing the Wednesday 18:00 class.
func TestProjectPattern_Example(t *testing.T) {
	weekOne := []models.ScheduleSession{
		mkSession("w1-mon", "A", "2026-01-05", "10:00"),
		mkSession("w1-wed", "A", "2026-01-07", "18:00"),
	}
	pattern := ExtractPattern([]string{"w1-mon", "w1-wed"}, weekOne)

	// Weeks 2-4; week 3 (starting Jan 19) has Wednesday sessions but none
	// at 18:00.
	remaining := []models.ScheduleSession{
		mkSession("w2-mon", "A", "2026-01-12", "10:00"),
		mkSession("w2-wed", "A", "2026-01-14", "18:00"),
		mkSession("w3-mon", "A", "2026-01-19", "10:00"),
		mkSession("w3-wed-alt1", "A", "2026-01-21", "08:00"),
		mkSession("w3-wed-alt2", "A", "2026-01-21", "12:00"),
		mkSession("w4-mon", "A", "2026-01-26", "10:00"),
		mkSession("w4-wed", "A", "2026-01-28", "18:00"),
	}

	weeks := ProjectPattern(pattern, remaining, date("2026-01-12"), 3)

	if len(weeks) != 3 {
		t.Fatalf("ProjectPattern() returned %d weeks, want 3", len(weeks))
	}

	week3 := weeks[1]
	if len(week3.Conflicts) != 1 {
		t.Fatalf("week 3 has %d conflicts, want 1", len(week3.Conflicts))
	}
	if len(week3.SelectedSessions) != 1 {
		t.Errorf("week 3 selected %d sessions before resolution, want 1", len(week3.SelectedSessions))
	}
	if got := len(week3.Conflicts[0].Alternatives); got != 2 {
		t.Errorf("week 3 conflict has %d alternatives, want 2", got)
	}

	for _, i := range []int{0, 2} {
		if len(weeks[i].Conflicts) != 0 {
			t.Errorf("week %d has %d conflicts, want 0", weeks[i].WeekNumber, len(weeks[i].Conflicts))
		}
		if len(weeks[i].SelectedSessions) != 2 {
			t.Errorf("week %d selected %d sessions, want 2", weeks[i].WeekNumber, len(weeks[i].SelectedSessions))
		}
	}
}
