package term

import (
	"fmt"
	"testing"
	"time"

	"yogasund/models"
)

// mkSession builds a schedule session on the given date at "HH:MM".
func mkSession(id, templateID, date, clock string) models.ScheduleSession {
	start, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		panic(fmt.Sprintf("bad test session time %s %s: %v", date, clock, err))
	}
	return models.ScheduleSession{
		ID:         id,
		TemplateID: templateID,
		StartTime:  start,
		EndTime:    start.Add(60 * time.Minute),
		Capacity:   12,
	}
}

// TestExtractPattern_SortedBySlot verifies the pattern comes back ordered by
// weekday then time regardless of selection order.
func TestExtractPattern_SortedBySlot(t *testing.T) {
	// Week of Monday 2026-01-05.
	week := []models.ScheduleSession{
		mkSession("wed-18", "A", "2026-01-07", "18:00"),
		mkSession("mon-10", "A", "2026-01-05", "10:00"),
		mkSession("mon-08", "B", "2026-01-05", "08:00"),
		mkSession("fri-07", "B", "2026-01-09", "07:30"),
	}

	selected := []string{"wed-18", "fri-07", "mon-10", "mon-08"}
	pattern := ExtractPattern(selected, week)

	if len(pattern) != 4 {
		t.Fatalf("ExtractPattern() returned %d slots, want 4", len(pattern))
	}

	wantOrder := []string{"mon-08", "mon-10", "wed-18", "fri-07"}
	for i, want := range wantOrder {
		if pattern[i].SessionID != want {
			t.Errorf("pattern[%d].SessionID = %s, want %s", i, pattern[i].SessionID, want)
		}
	}

	if pattern[0].Weekday != 1 || pattern[0].Time != "08:00" {
		t.Errorf("pattern[0] = (%d, %s), want (1, 08:00)", pattern[0].Weekday, pattern[0].Time)
	}
}

// TestExtractPattern_DropsUnknownIDs verifies selected ids missing from the
// week list are silently dropped rather than erroring.
func TestExtractPattern_DropsUnknownIDs(t *testing.T) {
	week := []models.ScheduleSession{
		mkSession("mon-10", "A", "2026-01-05", "10:00"),
	}

	pattern := ExtractPattern([]string{"mon-10", "gone"}, week)
	if len(pattern) != 1 {
		t.Fatalf("ExtractPattern() returned %d slots, want 1", len(pattern))
	}
	if pattern[0].SessionID != "mon-10" {
		t.Errorf("pattern[0].SessionID = %s, want mon-10", pattern[0].SessionID)
	}
}

// TestExtractPattern_SizeMatchesSelection checks that a selection of size
// sessionsPerWeek yields exactly that many slots.
func TestExtractPattern_SizeMatchesSelection(t *testing.T) {
	tests := []struct {
		name            string
		sessionsPerWeek int
	}{
		{"one per week", 1},
		{"two per week", 2},
		{"three per week", 3},
	}

	days := []string{"2026-01-05", "2026-01-06", "2026-01-07"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var week []models.ScheduleSession
			var selected []string
			for i := 0; i < tt.sessionsPerWeek; i++ {
				id := fmt.Sprintf("s%d", i)
				week = append(week, mkSession(id, "A", days[i], "10:00"))
				selected = append(selected, id)
			}

			pattern := ExtractPattern(selected, week)
			if len(pattern) != tt.sessionsPerWeek {
				t.Errorf("ExtractPattern() returned %d slots, want %d", len(pattern), tt.sessionsPerWeek)
			}
		})
	}
}
