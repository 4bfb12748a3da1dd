package term

import (
	"time"

	"yogasund/models"
)

const maxConflictAlternatives = 3

// PartitionByWeek splits a batched session fetch into per-week buckets using
// half-open intervals [weekStart, weekEnd). weekCount weeks are produced
// starting at firstWeekStart; sessions outside every interval are discarded.
// It is a pure function over the batched result, so the projector can issue
// one request for the whole remaining term instead of one per week.
func PartitionByWeek(sessions []models.ScheduleSession, firstWeekStart time.Time, firstWeekNumber, weekCount int) []models.WeekSchedule {
	weeks := make([]models.WeekSchedule, weekCount)
	for i := range weeks {
		start := firstWeekStart.AddDate(0, 0, 7*i)
		weeks[i] = models.WeekSchedule{
			WeekNumber:       firstWeekNumber + i,
			StartDate:        start,
			EndDate:          start.AddDate(0, 0, 7),
			Sessions:         []models.ScheduleSession{},
			SelectedSessions: []string{},
			Conflicts:        []models.ConflictInfo{},
		}
	}

	for _, s := range sessions {
		for i := range weeks {
			if !s.StartTime.Before(weeks[i].StartDate) && s.StartTime.Before(weeks[i].EndDate) {
				weeks[i].Sessions = append(weeks[i].Sessions, s)
				break
			}
		}
	}

	return weeks
}

// MatchWeek runs the greedy matcher for one week: each pattern slot, in
// extraction order, claims the first unused session with the same weekday
// and "HH:MM" time. Unmatched slots become conflicts carrying up to three
// still-unused same-weekday sessions (time ignored) in original fetch order.
//
// Matching is first-match and order dependent: earlier slots claim
// sessions before later ones see them.
func MatchWeek(week *models.WeekSchedule, pattern []models.PatternSlot) {
	used := make(map[string]bool, len(week.Sessions))

	for _, slot := range pattern {
		matched := ""
		for _, s := range week.Sessions {
			if used[s.ID] {
				continue
			}
			if s.Weekday() == slot.Weekday && s.TimeOfDay() == slot.Time {
				matched = s.ID
				break
			}
		}

		if matched != "" {
			used[matched] = true
			week.SelectedSessions = append(week.SelectedSessions, matched)
			continue
		}

		conflict := models.ConflictInfo{
			Slot:         slot,
			Reason:       "no session at the usual day and time this week",
			Alternatives: []models.ScheduleSession{},
		}
		for _, s := range week.Sessions {
			if used[s.ID] || s.Weekday() != slot.Weekday {
				continue
			}
			conflict.Alternatives = append(conflict.Alternatives, s)
			if len(conflict.Alternatives) == maxConflictAlternatives {
				break
			}
		}
		week.Conflicts = append(week.Conflicts, conflict)
	}
}

// ProjectPattern partitions the batched remaining-term sessions into weeks
// and matches the pattern against each one. The first projected week is
// week 2; week 1 is the member's explicit selection.
func ProjectPattern(pattern []models.PatternSlot, sessions []models.ScheduleSession, secondWeekStart time.Time, remainingWeeks int) []models.WeekSchedule {
	weeks := PartitionByWeek(sessions, secondWeekStart, 2, remainingWeeks)
	for i := range weeks {
		MatchWeek(&weeks[i], pattern)
	}
	return weeks
}
