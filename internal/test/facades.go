package test

import (
	"context"

	"github.com/platefront/checkout/internal/adapter/gateway"
	"github.com/platefront/checkout/internal/domain/model"
	"github.com/platefront/checkout/internal/flow"
)

// BackendClientStub provides controllable storefront backend responses.
type BackendClientStub struct {
	PlaceOrderFn  func(context.Context, string, model.OrderRequest) (*model.OrderAck, error)
	VerifyOrderFn func(context.Context, model.VerificationRequest) (*model.VerificationResult, error)
}

// PlaceOrder delegates to the provided function or returns a default ack.
func (s *BackendClientStub) PlaceOrder(ctx context.Context, token string, req model.OrderRequest) (*model.OrderAck, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, token, req)
	}
	return &model.OrderAck{Success: true, OrderID: "ord_1", GatewaySessionID: "sess_1"}, nil
}

// VerifyOrder delegates to the provided function or reports success.
func (s *BackendClientStub) VerifyOrder(ctx context.Context, req model.VerificationRequest) (*model.VerificationResult, error) {
	if s.VerifyOrderFn != nil {
		return s.VerifyOrderFn(ctx, req)
	}
	return &model.VerificationResult{Success: true}, nil
}

// SubmitterStub provides controllable order submission for flow tests.
type SubmitterStub struct {
	SubmitFn func(context.Context, string, model.Address, model.Cart) (*model.OrderAck, error)
	Calls    int
}

// Submit delegates to the provided function or returns a default ack.
func (s *SubmitterStub) Submit(ctx context.Context, token string, address model.Address, cart model.Cart) (*model.OrderAck, error) {
	s.Calls++
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, token, address, cart)
	}
	return &model.OrderAck{Success: true, OrderID: "ord_1", GatewaySessionID: "sess_1"}, nil
}

// VerifierStub provides controllable verification for flow tests.
type VerifierStub struct {
	VerifyFn func(context.Context, model.VerificationRequest) (*model.VerificationResult, error)
	Calls    int
}

// Verify delegates to the provided function or reports success.
func (s *VerifierStub) Verify(ctx context.Context, req model.VerificationRequest) (*model.VerificationResult, error) {
	s.Calls++
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, req)
	}
	return &model.VerificationResult{Success: true}, nil
}

// CheckoutFacadeStub provides controllable behaviour for HTTP handlers.
type CheckoutFacadeStub struct {
	PlaceFn    func(context.Context, string, model.Address, []model.CartLine) (*flow.Handoff, error)
	CallbackFn func(context.Context, string, gateway.CallbackPayload) (string, error)
	VerifyFn   func(context.Context, model.VerificationRequest) (*flow.VerifyOutcome, error)
	HealthFn   func(context.Context) error
}

// Place delegates to the provided function or returns a default handoff.
func (s CheckoutFacadeStub) Place(ctx context.Context, token string, address model.Address, items []model.CartLine) (*flow.Handoff, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, token, address, items)
	}
	return &flow.Handoff{
		AttemptID:   "attempt_1",
		OrderID:     "ord_1",
		Subtotal:    25,
		DeliveryFee: 2,
		Amount:      27,
	}, nil
}

// Callback delegates to the provided function or returns a fixed redirect.
func (s CheckoutFacadeStub) Callback(ctx context.Context, attemptID string, payload gateway.CallbackPayload) (string, error) {
	if s.CallbackFn != nil {
		return s.CallbackFn(ctx, attemptID, payload)
	}
	return flow.VerificationURL("ord_1", payload.Result()), nil
}

// Verify delegates to the provided function or reports success.
func (s CheckoutFacadeStub) Verify(ctx context.Context, req model.VerificationRequest) (*flow.VerifyOutcome, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, req)
	}
	return &flow.VerifyOutcome{State: model.AttemptStateSucceeded, Redirect: flow.RedirectHome, Message: "Payment verified successfully"}, nil
}

// HealthCheck delegates to the provided function or reports healthy.
func (s CheckoutFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}
