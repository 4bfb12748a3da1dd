package term

import (
	"sort"

	"yogasund/models"
)

// ExtractPattern derives the canonical weekly pattern from the member's
// week-one choices. Slots come back sorted by weekday ascending, then by
// time-of-day ascending; "HH:MM" is zero padded so lexicographic order is
// chronological. Selected ids with no matching session are silently dropped.
func ExtractPattern(selectedIDs []string, weekSessions []models.ScheduleSession) []models.PatternSlot {
	byID := make(map[string]models.ScheduleSession, len(weekSessions))
	for _, s := range weekSessions {
		byID[s.ID] = s
	}

	slots := make([]models.PatternSlot, 0, len(selectedIDs))
	for _, id := range selectedIDs {
		s, ok := byID[id]
		if !ok {
			continue
		}
		slots = append(slots, models.PatternSlot{
			Weekday:    s.Weekday(),
			Time:       s.TimeOfDay(),
			SessionID:  s.ID,
			TemplateID: s.TemplateID,
			Instructor: s.Instructor,
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Weekday != slots[j].Weekday {
			return slots[i].Weekday < slots[j].Weekday
		}
		return slots[i].Time < slots[j].Time
	})

	return slots
}
