package gateway

import (
	"context"
	"sync"

	"github.com/platefront/checkout/internal/domain/model"
)

// CallbackPayload is the completion callback delivered by the payment
// gateway. Field names follow the gateway's wire contract.
type CallbackPayload struct {
	PaymentID      string `json:"razorpay_payment_id"`
	GatewayOrderID string `json:"razorpay_order_id"`
	Signature      string `json:"razorpay_signature"`
}

// Result converts the raw payload into the domain result.
func (p CallbackPayload) Result() model.GatewayResult {
	return model.GatewayResult{
		PaymentID:      p.PaymentID,
		GatewayOrderID: p.GatewayOrderID,
		Signature:      p.Signature,
	}
}

// Prefill is the contact information shown pre-filled in the payment UI.
type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// Theme controls the payment UI appearance.
type Theme struct {
	Color string `json:"color"`
}

// SessionConfig is the configuration object the gateway's checkout widget is
// constructed with. Amount is in minor currency units; OrderID must be the
// backend-issued session id, never a locally fabricated one.
type SessionConfig struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	OrderID     string  `json:"order_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Prefill     Prefill `json:"prefill"`
	Theme       Theme   `json:"theme"`
}

// Client is the payment gateway capability. Load is idempotent and signals
// completion once; Open registers a pending session which the gateway's
// callback resolves through Resolve exactly once. An abandoned session is
// simply never resolved.
type Client interface {
	Load(ctx context.Context) error
	Open(ctx context.Context, attemptID string, cfg SessionConfig) (*Session, error)
	Resolve(attemptID string, payload CallbackPayload) (*Session, error)
}

// Session is a single-resolution pending payment. It replaces the gateway's
// raw callback with an operation the flow can await like any network call.
type Session struct {
	attemptID string
	config    SessionConfig

	done   chan struct{}
	once   sync.Once
	result model.GatewayResult
	err    error
}

func newSession(attemptID string, cfg SessionConfig) *Session {
	return &Session{
		attemptID: attemptID,
		config:    cfg,
		done:      make(chan struct{}),
	}
}

// AttemptID returns the attempt this session belongs to.
func (s *Session) AttemptID() string {
	return s.attemptID
}

// Config returns the configuration the session was opened with.
func (s *Session) Config() SessionConfig {
	return s.config
}

// Done is closed when the session resolves.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Await blocks until the gateway resolves the session or ctx is cancelled.
func (s *Session) Await(ctx context.Context) (model.GatewayResult, error) {
	select {
	case <-ctx.Done():
		return model.GatewayResult{}, ctx.Err()
	case <-s.done:
		return s.result, s.err
	}
}

// Result returns the resolution without blocking. The boolean is false while
// the session is still pending.
func (s *Session) Result() (model.GatewayResult, error, bool) {
	select {
	case <-s.done:
		return s.result, s.err, true
	default:
		return model.GatewayResult{}, nil, false
	}
}

func (s *Session) resolve(result model.GatewayResult) {
	s.once.Do(func() {
		s.result = result
		close(s.done)
	})
}

func (s *Session) fail(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}
