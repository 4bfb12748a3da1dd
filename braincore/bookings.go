package braincore

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"yogasund/models"
)

type wireBooking struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	ContactID string    `json:"contact_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (w wireBooking) toModel() models.Booking {
	return models.Booking{
		ID:        w.ID,
		SessionID: w.SessionID,
		ContactID: w.ContactID,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
	}
}

type createBookingRequest struct {
	SessionID        string `json:"session_id"`
	OptionType       string `json:"option_type"`
	PaymentReference string `json:"payment_reference,omitempty"`
	SpecialNeeds     string `json:"special_needs,omitempty"`

	// Guest fields, set only for drop-ins without an account.
	GuestFirstName string `json:"guest_first_name,omitempty"`
	GuestLastName  string `json:"guest_last_name,omitempty"`
	GuestEmail     string `json:"guest_email,omitempty"`
	GuestPhone     string `json:"guest_phone,omitempty"`
}

// CreateBooking books a single session. bearer identifies the member; leave
// it empty and fill req.Guest for guest drop-ins.
func (c *Client) CreateBooking(ctx context.Context, bearer string, req models.BookingRequest) (*models.Booking, error) {
	body := createBookingRequest{
		SessionID:        req.SessionID,
		OptionType:       req.OptionType,
		PaymentReference: req.PaymentID,
		SpecialNeeds:     req.SpecialNeeds,
	}
	if req.Guest != nil {
		body.GuestFirstName = req.Guest.FirstName
		body.GuestLastName = req.Guest.LastName
		body.GuestEmail = req.Guest.Email
		body.GuestPhone = req.Guest.Phone
	}

	var resp wireBooking
	if err := c.doJSON(ctx, "POST", "/bookings", bearer, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	booking := resp.toModel()
	return &booking, nil
}

// GetMemberBookings lists the signed-in member's upcoming bookings.
func (c *Client) GetMemberBookings(ctx context.Context, bearer string) ([]models.Booking, error) {
	var resp struct {
		Bookings []wireBooking `json:"bookings"`
	}
	if err := c.doJSON(ctx, "GET", "/bookings", bearer, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(resp.Bookings))
	for _, wb := range resp.Bookings {
		bookings = append(bookings, wb.toModel())
	}
	return bookings, nil
}

// CancelBooking cancels a member booking. Refund and credit handling stays
// on the braincore side.
func (c *Client) CancelBooking(ctx context.Context, bearer, bookingID string) error {
	path := "/bookings/" + url.PathEscape(bookingID)
	if err := c.doJSON(ctx, "DELETE", path, bearer, nil, nil); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	return nil
}
