package term

import (
	"yogasund/models"
)

// FlattenReservations collects every week's selected sessions, in week then
// selection order, as the reservation list braincore expects. Selected ids
// with no session record in their week fall back to the bare id so the
// backend can still validate them.
func FlattenReservations(weeks []models.WeekSchedule) []models.SessionReservation {
	var reservations []models.SessionReservation
	for _, week := range weeks {
		byID := make(map[string]models.ScheduleSession, len(week.Sessions))
		for _, s := range week.Sessions {
			byID[s.ID] = s
		}
		for _, id := range week.SelectedSessions {
			res := models.SessionReservation{SessionID: id}
			if s, ok := byID[id]; ok {
				res.Date = s.DateString()
				res.Time = s.TimeOfDay()
				res.TemplateID = s.TemplateID
			}
			reservations = append(reservations, res)
		}
	}
	return reservations
}

// PrimaryTemplateID picks the template appearing most often among the
// flattened reservations. Ties resolve to whichever template was seen first
// in flatten order.
func PrimaryTemplateID(reservations []models.SessionReservation) string {
	counts := make(map[string]int, len(reservations))
	var order []string

	for _, r := range reservations {
		if r.TemplateID == "" {
			continue
		}
		if _, seen := counts[r.TemplateID]; !seen {
			order = append(order, r.TemplateID)
		}
		counts[r.TemplateID]++
	}

	primary := ""
	best := 0
	for _, id := range order {
		if counts[id] > best {
			best = counts[id]
			primary = id
		}
	}
	return primary
}
