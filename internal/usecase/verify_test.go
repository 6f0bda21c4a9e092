package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/platefront/checkout/internal/domain/errors"
	"github.com/platefront/checkout/internal/domain/model"
)

func completeRequest() model.VerificationRequest {
	return model.VerificationRequest{
		OrderID:        "ord_1",
		PaymentID:      "pay_1",
		GatewayOrderID: "rzp_1",
		Signature:      "sig_1",
	}
}

func TestVerifyRejectsMissingParametersWithoutNetworkCall(t *testing.T) {
	uc := NewVerificationUseCase(stubBackendClient{verifyFn: func(context.Context, model.VerificationRequest) (*model.VerificationResult, error) {
		t.Fatal("verify must not be dispatched with missing parameters")
		return nil, nil
	}})

	partials := []model.VerificationRequest{
		{PaymentID: "pay_1", GatewayOrderID: "rzp_1", Signature: "sig_1"},
		{OrderID: "ord_1", GatewayOrderID: "rzp_1", Signature: "sig_1"},
		{OrderID: "ord_1", PaymentID: "pay_1", Signature: "sig_1"},
		{OrderID: "ord_1", PaymentID: "pay_1", GatewayOrderID: "rzp_1"},
		{},
	}
	for _, req := range partials {
		if _, err := uc.Verify(context.Background(), req); !errors.Is(err, domainErrors.ErrMissingVerificationParameters) {
			t.Fatalf("expected ErrMissingVerificationParameters for %+v, got %v", req, err)
		}
	}
}

func TestVerifySuccess(t *testing.T) {
	var calls int
	uc := NewVerificationUseCase(stubBackendClient{verifyFn: func(ctx context.Context, req model.VerificationRequest) (*model.VerificationResult, error) {
		calls++
		if req != completeRequest() {
			t.Fatalf("unexpected request %+v", req)
		}
		return &model.VerificationResult{Success: true}, nil
	}})

	result, err := uc.Verify(context.Background(), completeRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatal("expected success result")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one verification request, got %d", calls)
	}
}

func TestVerifyBackendRejection(t *testing.T) {
	uc := NewVerificationUseCase(stubBackendClient{verifyFn: func(context.Context, model.VerificationRequest) (*model.VerificationResult, error) {
		return &model.VerificationResult{Success: false}, nil
	}})

	if _, err := uc.Verify(context.Background(), completeRequest()); !errors.Is(err, domainErrors.ErrVerificationFailed) {
		t.Fatalf("expected ErrVerificationFailed, got %v", err)
	}
}

func TestVerifyTransportFailure(t *testing.T) {
	uc := NewVerificationUseCase(stubBackendClient{verifyFn: func(context.Context, model.VerificationRequest) (*model.VerificationResult, error) {
		return nil, domainErrors.ErrVerificationRequestFailed
	}})

	if _, err := uc.Verify(context.Background(), completeRequest()); !errors.Is(err, domainErrors.ErrVerificationRequestFailed) {
		t.Fatalf("expected ErrVerificationRequestFailed, got %v", err)
	}
}

func TestVerifyRepeatedIdenticalRequests(t *testing.T) {
	var calls int
	uc := NewVerificationUseCase(stubBackendClient{verifyFn: func(context.Context, model.VerificationRequest) (*model.VerificationResult, error) {
		calls++
		return &model.VerificationResult{Success: true}, nil
	}})

	for i := 0; i < 2; i++ {
		result, err := uc.Verify(context.Background(), completeRequest())
		if err != nil {
			t.Fatalf("unexpected error on call %d: %v", i+1, err)
		}
		if !result.Success {
			t.Fatalf("expected success on call %d", i+1)
		}
	}
	if calls != 2 {
		t.Fatalf("expected one dispatch per invocation, got %d", calls)
	}
}
