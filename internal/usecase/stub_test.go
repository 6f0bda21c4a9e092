package usecase

import (
	"context"

	"github.com/platefront/checkout/internal/domain/model"
)

type stubBackendClient struct {
	placeFn  func(context.Context, string, model.OrderRequest) (*model.OrderAck, error)
	verifyFn func(context.Context, model.VerificationRequest) (*model.VerificationResult, error)
}

func (s stubBackendClient) PlaceOrder(ctx context.Context, token string, req model.OrderRequest) (*model.OrderAck, error) {
	if s.placeFn != nil {
		return s.placeFn(ctx, token, req)
	}
	panic("not implemented")
}

func (s stubBackendClient) VerifyOrder(ctx context.Context, req model.VerificationRequest) (*model.VerificationResult, error) {
	if s.verifyFn != nil {
		return s.verifyFn(ctx, req)
	}
	panic("not implemented")
}
