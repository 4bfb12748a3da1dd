package tasks

import (
	"encoding/json"
	"time"

	"yogasund/models"

	"github.com/hibiken/asynq"
)

const TypePaymentSweep = "payment:sweep"

// NewPaymentSweepTask schedules a check on a payment intent at fireAt. If
// the intent is still unconfirmed by then the worker cancels it.
func NewPaymentSweepTask(payload models.PaymentSweepPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePaymentSweep, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
