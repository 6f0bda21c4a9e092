package usecase

import (
	"context"

	"github.com/platefront/checkout/internal/adapter/backend"
	domainErrors "github.com/platefront/checkout/internal/domain/errors"
	"github.com/platefront/checkout/internal/domain/model"
)

// VerificationUseCase dispatches payment verification to the storefront
// backend, which is the single source of truth at the instant of the call.
type VerificationUseCase struct {
	backend backend.Client
}

// NewVerificationUseCase constructs VerificationUseCase.
func NewVerificationUseCase(client backend.Client) *VerificationUseCase {
	return &VerificationUseCase{backend: client}
}

// Verify sends exactly one verification request per invocation. A request
// with any missing parameter never reaches the network.
func (u *VerificationUseCase) Verify(ctx context.Context, req model.VerificationRequest) (*model.VerificationResult, error) {
	if !req.Complete() {
		return nil, domainErrors.ErrMissingVerificationParameters
	}

	result, err := u.backend.VerifyOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, domainErrors.ErrVerificationFailed
	}
	return result, nil
}
