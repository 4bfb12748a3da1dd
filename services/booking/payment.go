package booking

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"yogasund/braincore"
	"yogasund/models"
	"yogasund/services/tasks"
	"yogasund/utils"

	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// paymentSweepDelay is how long an intent may stay unconfirmed before the
// background sweep cancels it.
const paymentSweepDelay = 30 * time.Minute

// StripePaymentService implements PaymentService against Stripe's
// PaymentIntent API. The Elements widget on the client confirms the intent;
// this side only creates it and verifies the outcome before booking.
type StripePaymentService struct {
	Booking BookingService
	Client  *braincore.Client
	Queue   *asynq.Client
}

// CreateIntent prices the requested option through braincore and opens a
// Stripe PaymentIntent for it. A deferred sweep task cancels the intent if
// it is never confirmed.
func (p *StripePaymentService) CreateIntent(ctx context.Context, req models.PaymentIntentRequest, contactID, locale string) (*models.PaymentIntentResponse, error) {
	options, err := p.Booking.GetBookingOptions(ctx, req.SessionID, contactID, locale)
	if err != nil {
		return nil, err
	}

	var option *models.BookingOption
	for i := range options {
		if options[i].Type == req.OptionType {
			option = &options[i]
			break
		}
	}
	if option == nil || !option.Available {
		return nil, fmt.Errorf("booking option %q is not available for this session", req.OptionType)
	}
	if option.Price <= 0 {
		return nil, fmt.Errorf("booking option %q requires no payment", req.OptionType)
	}

	amount := int64(math.Round(option.Price * 100))
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(strings.ToLower(option.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("session_id", req.SessionID)
	params.AddMetadata("option_type", req.OptionType)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	p.enqueueSweep(pi.ID, req.SessionID)

	return &models.PaymentIntentResponse{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       option.Price,
		Currency:     option.Currency,
	}, nil
}

// ConfirmAndBook verifies the intent actually succeeded, then creates the
// booking on braincore with the intent id as payment reference.
func (p *StripePaymentService) ConfirmAndBook(ctx context.Context, bearer, intentID string, req models.BookingRequest) (*models.Booking, error) {
	pi, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, &braincore.APIError{Status: 402, Message: "payment_declined"}
	}

	req.PaymentID = intentID
	booking, err := p.Client.CreateBooking(ctx, bearer, req)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (p *StripePaymentService) enqueueSweep(intentID, sessionID string) {
	if p.Queue == nil {
		return
	}
	task, opts, err := tasks.NewPaymentSweepTask(models.PaymentSweepPayload{
		IntentID:  intentID,
		SessionID: sessionID,
	}, time.Now().Add(paymentSweepDelay))
	if err != nil {
		utils.GetLogger().Warn("Failed to build payment sweep task", zap.Error(err))
		return
	}
	if _, err := p.Queue.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("Failed to enqueue payment sweep task", zap.String("intent", intentID), zap.Error(err))
	}
}
