package term

import (
	"testing"

	"yogasund/models"
)

// TestFlattenReservations verifies week order, selection order and that
// date/time/template are carried from the week's session records.
func TestFlattenReservations(t *testing.T) {
	weeks := []models.WeekSchedule{
		{
			Sessions: []models.ScheduleSession{
				mkSession("w1-mon", "A", "2026-01-05", "10:00"),
				mkSession("w1-wed", "B", "2026-01-07", "18:00"),
			},
			SelectedSessions: []string{"w1-mon", "w1-wed"},
		},
		{
			Sessions: []models.ScheduleSession{
				mkSession("w2-mon", "A", "2026-01-12", "10:00"),
			},
			SelectedSessions: []string{"w2-mon"},
		},
	}

	got := FlattenReservations(weeks)
	if len(got) != 3 {
		t.Fatalf("FlattenReservations() returned %d entries, want 3", len(got))
	}

	want := []models.SessionReservation{
		{SessionID: "w1-mon", Date: "2026-01-05", Time: "10:00", TemplateID: "A"},
		{SessionID: "w1-wed", Date: "2026-01-07", Time: "18:00", TemplateID: "B"},
		{SessionID: "w2-mon", Date: "2026-01-12", Time: "10:00", TemplateID: "A"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reservation[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestPrimaryTemplateID checks the plurality vote with first-seen tie break.
func TestPrimaryTemplateID(t *testing.T) {
	tests := []struct {
		name         string
		reservations []models.SessionReservation
		want         string
	}{
		{
			name: "clear majority",
			reservations: []models.SessionReservation{
				{TemplateID: "A"}, {TemplateID: "B"}, {TemplateID: "A"},
			},
			want: "A",
		},
		{
			name: "tie goes to first seen",
			reservations: []models.SessionReservation{
				{TemplateID: "B"}, {TemplateID: "A"}, {TemplateID: "B"}, {TemplateID: "A"},
			},
			want: "B",
		},
		{
			name:         "empty list",
			reservations: nil,
			want:         "",
		},
		{
			name: "blank templates ignored",
			reservations: []models.SessionReservation{
				{TemplateID: ""}, {TemplateID: ""}, {TemplateID: "C"},
			},
			want: "C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrimaryTemplateID(tt.reservations); got != tt.want {
				t.Errorf("PrimaryTemplateID() = %q, want %q", got, tt.want)
			}
		})
	}
}
