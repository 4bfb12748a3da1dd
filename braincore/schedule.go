package braincore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"yogasund/models"
)

type wireSession struct {
	ID             string    `json:"id"`
	TemplateID     string    `json:"template_id"`
	Title          string    `json:"title"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Instructor     string    `json:"instructor"`
	Resource       string    `json:"resource"`
	Capacity       int       `json:"capacity"`
	AvailableSpots int       `json:"available_spots"`
}

type scheduleResponse struct {
	Sessions []wireSession `json:"sessions"`
}

func (s wireSession) toModel() models.ScheduleSession {
	return models.ScheduleSession{
		ID:             s.ID,
		TemplateID:     s.TemplateID,
		Title:          s.Title,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		Instructor:     s.Instructor,
		Resource:       s.Resource,
		Capacity:       s.Capacity,
		AvailableSpots: s.AvailableSpots,
	}
}

// FetchSessionsInRange returns every session in [start, end) whose template
// is in templateIDs, in braincore's fetch order. One batched call covers the
// whole range; callers partition by week locally rather than issuing one
// request per week. With contactID set, available spots reflect the member's
// own bookings; empty means an anonymous read.
func (c *Client) FetchSessionsInRange(ctx context.Context, templateIDs []string, start, end time.Time, contactID string) ([]models.ScheduleSession, error) {
	q := url.Values{}
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("end_date", end.Format("2006-01-02"))
	if len(templateIDs) > 0 {
		q.Set("template_ids", strings.Join(templateIDs, ","))
	}
	if contactID != "" {
		q.Set("contact_id", contactID)
	}

	var resp scheduleResponse
	if err := c.doJSON(ctx, "GET", "/schedule?"+q.Encode(), "", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	sessions := make([]models.ScheduleSession, 0, len(resp.Sessions))
	for _, ws := range resp.Sessions {
		sessions = append(sessions, ws.toModel())
	}
	return sessions, nil
}

type wireBookingOption struct {
	Type        string  `json:"type"`
	Label       string  `json:"label"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Available   bool    `json:"available"`
	Description string  `json:"description"`
}

// GetBookingOptions fetches eligibility and pricing options for one session.
// contactID may be empty for guests; locale picks the label language.
func (c *Client) GetBookingOptions(ctx context.Context, sessionID, contactID, locale string) ([]models.BookingOption, error) {
	q := url.Values{}
	if contactID != "" {
		q.Set("contact_id", contactID)
	}
	if locale != "" {
		q.Set("locale", locale)
	}

	var resp struct {
		Options []wireBookingOption `json:"options"`
	}
	path := "/urbe/session/" + url.PathEscape(sessionID) + "/booking-options?" + q.Encode()
	if err := c.doJSON(ctx, "GET", path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch booking options: %w", err)
	}

	options := make([]models.BookingOption, 0, len(resp.Options))
	for _, o := range resp.Options {
		options = append(options, models.BookingOption{
			Type:        o.Type,
			Label:       o.Label,
			Price:       o.Price,
			Currency:    o.Currency,
			Available:   o.Available,
			Description: o.Description,
		})
	}
	return options, nil
}
