package braincore

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"yogasund/models"
)

type wirePlan struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	SessionsPerWeek int      `json:"sessions_per_week"`
	TemplateIDs     []string `json:"template_ids"`
}

// ListMembershipPlans fetches the purchasable plan catalog. locale picks
// the language of names and descriptions.
func (c *Client) ListMembershipPlans(ctx context.Context, locale string) ([]models.MembershipPlan, error) {
	path := "/membership-plans"
	if locale != "" {
		path += "?locale=" + url.QueryEscape(locale)
	}

	var resp struct {
		Plans []wirePlan `json:"plans"`
	}
	if err := c.doJSON(ctx, "GET", path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch membership plans: %w", err)
	}

	plans := make([]models.MembershipPlan, 0, len(resp.Plans))
	for _, p := range resp.Plans {
		plans = append(plans, models.MembershipPlan{
			ID:              p.ID,
			Name:            p.Name,
			Description:     p.Description,
			Type:            p.Type,
			Price:           p.Price,
			Currency:        p.Currency,
			SessionsPerWeek: p.SessionsPerWeek,
			TemplateIDs:     p.TemplateIDs,
		})
	}
	return plans, nil
}

type termAvailabilityResponse struct {
	PlanID                string    `json:"plan_id"`
	TemplateIDs           []string  `json:"template_ids"`
	TermStart             time.Time `json:"term_start"`
	TermEnd               time.Time `json:"term_end"`
	TotalWeeks            int       `json:"total_weeks"`
	SessionsPerWeek       int       `json:"sessions_per_week"`
	TotalRequiredSessions int       `json:"total_required_sessions"`
	Price                 float64   `json:"price"`
	Currency              string    `json:"currency"`
}

// GetTermAvailability fetches the term window and per-week slot count for a
// membership plan, anchored at startDate.
func (c *Client) GetTermAvailability(ctx context.Context, planID, templateID string, startDate time.Time) (*models.TermPlan, error) {
	path := "/term-availability/" + url.PathEscape(planID) + "/" + url.PathEscape(templateID) +
		"?start_date=" + startDate.Format("2006-01-02")

	var resp termAvailabilityResponse
	if err := c.doJSON(ctx, "GET", path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch term availability: %w", err)
	}

	return &models.TermPlan{
		PlanID:                resp.PlanID,
		TemplateIDs:           resp.TemplateIDs,
		TermStart:             resp.TermStart,
		TermEnd:               resp.TermEnd,
		TotalWeeks:            resp.TotalWeeks,
		SessionsPerWeek:       resp.SessionsPerWeek,
		TotalRequiredSessions: resp.TotalRequiredSessions,
		Price:                 resp.Price,
		Currency:              resp.Currency,
	}, nil
}

type termCheckoutRequest struct {
	PlanID            string                      `json:"plan_id"`
	TermStartDate     string                      `json:"term_start_date"`
	ContactID         string                      `json:"contact_id,omitempty"`
	PrimaryTemplateID string                      `json:"primary_template_id"`
	Sessions          []models.SessionReservation `json:"sessions"`
}

// SubmitTermCheckout reserves the finalized session list and creates the
// external checkout session. Braincore holds the reservations temporarily;
// cleanup on abandonment is entirely its responsibility.
func (c *Client) SubmitTermCheckout(ctx context.Context, bearer, planID string, termStart time.Time, contactID, primaryTemplateID string, sessions []models.SessionReservation) (*models.TermCheckoutResult, error) {
	body := termCheckoutRequest{
		PlanID:            planID,
		TermStartDate:     termStart.Format("2006-01-02"),
		ContactID:         contactID,
		PrimaryTemplateID: primaryTemplateID,
		Sessions:          sessions,
	}

	var resp struct {
		CheckoutID  string `json:"checkout_id"`
		CheckoutURL string `json:"checkout_url"`
	}
	if err := c.doJSON(ctx, "POST", "/term-checkout", bearer, body, &resp); err != nil {
		return nil, fmt.Errorf("term checkout failed: %w", err)
	}
	return &models.TermCheckoutResult{CheckoutID: resp.CheckoutID, CheckoutURL: resp.CheckoutURL}, nil
}
