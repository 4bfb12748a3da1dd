package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"yogasund/config"
	"yogasund/models"
	"yogasund/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// InitPaymentSweepWorker runs the async worker in background. It cancels
// payment intents that were opened for a drop-in booking but never
// confirmed, so abandoned checkouts do not linger on the Stripe side.
func InitPaymentSweepWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePaymentSweep, handlePaymentSweep)

	// Start async worker with retry logic
	go func() {
		log.Println("[PaymentSweep] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PaymentSweep] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PaymentSweep] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePaymentSweep(ctx context.Context, task *asynq.Task) error {
	var p models.PaymentSweepPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[PaymentSweep] Invalid payload: %v", err)
		return err
	}

	pi, err := paymentintent.Get(p.IntentID, nil)
	if err != nil {
		log.Printf("[PaymentSweep] Failed to fetch intent %s: %v", p.IntentID, err)
		return err
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded, stripe.PaymentIntentStatusCanceled:
		// Confirmed or already cleaned up; nothing to do.
		return nil
	}

	if _, err := paymentintent.Cancel(p.IntentID, nil); err != nil {
		log.Printf("[PaymentSweep] Failed to cancel stale intent %s: %v", p.IntentID, err)
		return err
	}

	log.Printf("[PaymentSweep] Cancelled stale intent %s for session %s", p.IntentID, p.SessionID)
	return nil
}
