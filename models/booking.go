package models

import "time"

// GuestDetails identifies a drop-in guest with no member account.
type GuestDetails struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

// BookingRequest creates a single-session booking, either against the
// signed-in member's credits/membership or as a paid guest drop-in.
type BookingRequest struct {
	SessionID     string        `json:"sessionId" binding:"required"`
	OptionType    string        `json:"optionType" binding:"required"` // matches BookingOption.Type
	Guest         *GuestDetails `json:"guest,omitempty"`
	PaymentID     string        `json:"paymentId,omitempty"` // Stripe PaymentIntent id for paid drop-ins
	SpecialNeeds  string        `json:"specialNeeds,omitempty"`
}

// Booking is braincore's record of a confirmed reservation.
type Booking struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"sessionId"`
	ContactID  string    `json:"contactId,omitempty"`
	Status     string    `json:"status"` // "confirmed", "waitlisted", "cancelled"
	CreatedAt  time.Time `json:"createdAt"`
}

// PaymentIntentRequest asks for a Stripe PaymentIntent covering one
// drop-in booking. Amount and currency come from the session's booking
// option, never from the client.
type PaymentIntentRequest struct {
	SessionID  string `json:"sessionId" binding:"required"`
	OptionType string `json:"optionType" binding:"required"`
}

// PaymentIntentResponse hands the Elements widget its client secret.
type PaymentIntentResponse struct {
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// PaymentSweepPayload is the queue payload for the deferred intent sweep.
type PaymentSweepPayload struct {
	IntentID  string `json:"intentId"`
	SessionID string `json:"sessionId"`
}
