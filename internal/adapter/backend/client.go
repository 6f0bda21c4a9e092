package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/platefront/checkout/internal/domain/errors"
	"github.com/platefront/checkout/internal/domain/model"
)

const (
	placePath  = "/api/order/place"
	verifyPath = "/api/order/verify"

	tokenHeader = "token"
)

// Client exposes the storefront backend order operations.
type Client interface {
	PlaceOrder(ctx context.Context, token string, req model.OrderRequest) (*model.OrderAck, error)
	VerifyOrder(ctx context.Context, req model.VerificationRequest) (*model.VerificationResult, error)
}

// HTTPClient implements Client against the backend HTTP API. Calls pass
// through a circuit breaker so a struggling backend fails fast instead of
// stacking up requests.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	breaker    *breaker
	logger     *slog.Logger
}

// verifyPayload mirrors the verification request the backend expects. The
// gateway field names follow the gateway's wire contract.
type verifyPayload struct {
	OrderID        string `json:"orderId"`
	PaymentID      string `json:"razorpay_payment_id"`
	GatewayOrderID string `json:"razorpay_order_id"`
	Signature      string `json:"razorpay_signature"`
}

// NewHTTPClient creates a backend client with the given request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("backend url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		breaker: newBreaker("storefront-backend", logger),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// PlaceOrder submits one order request. Any transport failure, non-success
// status, or success:false answer is reported uniformly as
// ErrOrderSubmissionFailed with the underlying cause preserved.
func (c *HTTPClient) PlaceOrder(ctx context.Context, token string, req model.OrderRequest) (*model.OrderAck, error) {
	var ack model.OrderAck
	headers := map[string]string{tokenHeader: token}
	if err := c.postJSON(ctx, placePath, headers, req, &ack); err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrOrderSubmissionFailed, err)
	}
	if !ack.Success {
		return nil, fmt.Errorf("%w: backend rejected order", domainErrors.ErrOrderSubmissionFailed)
	}
	return &ack, nil
}

// VerifyOrder sends exactly one verification request. The backend is the
// single source of truth: its success flag is returned as-is, transport
// failures surface as ErrVerificationRequestFailed.
func (c *HTTPClient) VerifyOrder(ctx context.Context, req model.VerificationRequest) (*model.VerificationResult, error) {
	payload := verifyPayload{
		OrderID:        req.OrderID,
		PaymentID:      req.PaymentID,
		GatewayOrderID: req.GatewayOrderID,
		Signature:      req.Signature,
	}
	var result model.VerificationResult
	if err := c.postJSON(ctx, verifyPath, nil, payload, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrVerificationRequestFailed, err)
	}
	return &result, nil
}

func (c *HTTPClient) postJSON(ctx context.Context, endpoint string, headers map[string]string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)

	_, err = c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			c.logger.Error("backend request failed",
				slog.String("endpoint", endpoint),
				slog.Int("status", resp.StatusCode),
				slog.String("body", string(raw)),
			)
			return nil, fmt.Errorf("backend status %s", resp.Status)
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("decode backend response: %w", err)
		}
		return nil, nil
	})
	return err
}
