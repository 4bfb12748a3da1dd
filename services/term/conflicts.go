package term

import (
	"yogasund/models"
)

// ResolveConflict applies the member's manual pick for one conflict: the
// conflict at conflictIndex is removed from the week and sessionID is
// appended to the week's selected list.
//
// The chosen sessionID is not checked against the conflict's alternatives
// and duplicates within the week are not rejected; resolving an index that
// is already gone still appends.
func ResolveConflict(weeks []models.WeekSchedule, weekIndex int, sessionID string, conflictIndex int) bool {
	if weekIndex < 0 || weekIndex >= len(weeks) {
		return false
	}
	week := &weeks[weekIndex]

	if conflictIndex >= 0 && conflictIndex < len(week.Conflicts) {
		week.Conflicts = append(week.Conflicts[:conflictIndex], week.Conflicts[conflictIndex+1:]...)
	}
	week.SelectedSessions = append(week.SelectedSessions, sessionID)
	return true
}
