package app

import (
	"context"

	"github.com/platefront/checkout/internal/adapter/gateway"
	"github.com/platefront/checkout/internal/domain/model"
	"github.com/platefront/checkout/internal/flow"
)

// HealthChecker reports readiness of a backing dependency.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CheckoutFacade is the application surface the HTTP layer talks to.
type CheckoutFacade struct {
	controller *flow.Controller
	health     HealthChecker
}

// NewCheckoutFacade constructs the checkout application facade.
func NewCheckoutFacade(controller *flow.Controller, health HealthChecker) *CheckoutFacade {
	return &CheckoutFacade{controller: controller, health: health}
}

// Place starts a checkout attempt and opens the payment session.
func (f *CheckoutFacade) Place(ctx context.Context, token string, address model.Address, items []model.CartLine) (*flow.Handoff, error) {
	return f.controller.Begin(ctx, token, address, items)
}

// Callback delivers the gateway completion payload for an attempt.
func (f *CheckoutFacade) Callback(ctx context.Context, attemptID string, payload gateway.CallbackPayload) (string, error) {
	return f.controller.HandleCallback(ctx, attemptID, payload)
}

// Verify finishes the attempt from the verification view parameters.
func (f *CheckoutFacade) Verify(ctx context.Context, req model.VerificationRequest) (*flow.VerifyOutcome, error) {
	return f.controller.CompleteVerification(ctx, req)
}

// HealthCheck reports whether the journal storage is reachable.
func (f *CheckoutFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
