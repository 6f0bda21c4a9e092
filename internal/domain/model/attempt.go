package model

import "time"

// AttemptState describes the checkout attempt lifecycle.
type AttemptState string

const (
	AttemptStateIdle            AttemptState = "IDLE"
	AttemptStateGuarding        AttemptState = "GUARDING"
	AttemptStateSubmitting      AttemptState = "SUBMITTING"
	AttemptStateAwaitingPayment AttemptState = "AWAITING_PAYMENT"
	AttemptStateVerifying       AttemptState = "VERIFYING"
	AttemptStateSucceeded       AttemptState = "SUCCEEDED"
	AttemptStateFailed          AttemptState = "FAILED"
)

// Terminal reports whether the attempt can no longer proceed. Only a fresh
// attempt continues from a terminal state.
func (s AttemptState) Terminal() bool {
	return s == AttemptStateSucceeded || s == AttemptStateFailed
}

// CheckoutAttempt is one journaled pass through the checkout flow.
type CheckoutAttempt struct {
	ID            string
	OrderID       string
	State         AttemptState
	FailureReason string
	Amount        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
