package repository

import (
	"context"

	"github.com/platefront/checkout/internal/domain/model"
)

// AttemptRepository journals checkout attempts and their state transitions.
// Transition and Finish refuse to touch terminal rows, which is the
// persistence half of the stale-update guard.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.CheckoutAttempt) error
	Transition(ctx context.Context, id string, to model.AttemptState) (bool, error)
	Finish(ctx context.Context, id string, to model.AttemptState, reason string) (bool, error)
	BindOrder(ctx context.Context, id, orderID string) error
	GetByID(ctx context.Context, id string) (*model.CheckoutAttempt, error)
	GetByOrderID(ctx context.Context, orderID string) (*model.CheckoutAttempt, error)
}
