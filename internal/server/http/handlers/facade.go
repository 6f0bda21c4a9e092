package handlers

import (
	"context"

	"github.com/platefront/checkout/internal/adapter/gateway"
	"github.com/platefront/checkout/internal/domain/model"
	"github.com/platefront/checkout/internal/flow"
)

// CheckoutFacade aggregates the checkout operations exposed via HTTP.
type CheckoutFacade interface {
	Place(ctx context.Context, token string, address model.Address, items []model.CartLine) (*flow.Handoff, error)
	Callback(ctx context.Context, attemptID string, payload gateway.CallbackPayload) (string, error)
	Verify(ctx context.Context, req model.VerificationRequest) (*flow.VerifyOutcome, error)
	HealthCheck(ctx context.Context) error
}
