package usecase

import (
	"context"
	"fmt"

	"github.com/platefront/checkout/internal/adapter/backend"
	domainErrors "github.com/platefront/checkout/internal/domain/errors"
	"github.com/platefront/checkout/internal/domain/model"
)

// SubmissionUseCase builds and submits order requests. Validation of the
// inputs happens upstream; the request itself is constructed exactly once
// and sent exactly once.
type SubmissionUseCase struct {
	backend backend.Client
}

// NewSubmissionUseCase constructs SubmissionUseCase.
func NewSubmissionUseCase(client backend.Client) *SubmissionUseCase {
	return &SubmissionUseCase{backend: client}
}

// BuildOrderRequest assembles the deterministic order payload: items in cart
// snapshot order, amount = cart total plus delivery fee.
func (u *SubmissionUseCase) BuildOrderRequest(address model.Address, cart model.Cart) model.OrderRequest {
	return model.OrderRequest{
		Address: address,
		Items:   cart.Lines,
		Amount:  model.OrderAmount(cart.Total()),
	}
}

// Submit sends the order to the storefront backend. The returned ack always
// carries Success=true; every failure mode surfaces as
// ErrOrderSubmissionFailed and the flow must not hand off to payment.
func (u *SubmissionUseCase) Submit(ctx context.Context, token string, address model.Address, cart model.Cart) (*model.OrderAck, error) {
	ack, err := u.backend.PlaceOrder(ctx, token, u.BuildOrderRequest(address, cart))
	if err != nil {
		return nil, err
	}
	if !ack.Success {
		return nil, fmt.Errorf("%w: backend rejected order", domainErrors.ErrOrderSubmissionFailed)
	}
	if ack.OrderID == "" || ack.GatewaySessionID == "" {
		return nil, fmt.Errorf("%w: backend ack missing identifiers", domainErrors.ErrOrderSubmissionFailed)
	}
	return ack, nil
}
