package booking

import (
	"context"
	"time"

	"yogasund/braincore"
	"yogasund/models"
)

// BookingService covers the drop-in flow: schedule browsing, per-session
// booking options, and booking creation for members and guests.
type BookingService interface {
	GetSchedule(ctx context.Context, start, end time.Time, contactID string) ([]models.ScheduleSession, error)
	GetBookingOptions(ctx context.Context, sessionID, contactID, locale string) ([]models.BookingOption, error)
	CreateBooking(ctx context.Context, bearer string, req models.BookingRequest) (*models.Booking, error)
	ListMemberBookings(ctx context.Context, bearer string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, bearer, bookingID string) error
}

// PaymentService owns the Stripe PaymentIntent lifecycle for paid drop-ins.
// Pricing always comes from braincore's booking options; the client never
// dictates an amount.
type PaymentService interface {
	CreateIntent(ctx context.Context, req models.PaymentIntentRequest, contactID, locale string) (*models.PaymentIntentResponse, error)
	ConfirmAndBook(ctx context.Context, bearer, intentID string, req models.BookingRequest) (*models.Booking, error)
}

// DefaultBookingService implements BookingService on the braincore client
// with a short-lived Redis cache in front of schedule reads.
type DefaultBookingService struct {
	Client *braincore.Client
}
