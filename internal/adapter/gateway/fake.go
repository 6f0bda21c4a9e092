package gateway

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/platefront/checkout/internal/domain/errors"
)

// Fake is an in-memory gateway for tests. When Payload is set, Open resolves
// the session synchronously, standing in for a shopper who completes payment
// immediately; otherwise sessions stay pending until Resolve is called.
type Fake struct {
	LoadErr error
	OpenErr error
	Payload *CallbackPayload

	mu       sync.Mutex
	Opened   []SessionConfig
	sessions map[string]*Session
}

// Load reports the configured load outcome.
func (f *Fake) Load(ctx context.Context) error {
	return f.LoadErr
}

// Open registers a session and optionally resolves it with the configured
// payload.
func (f *Fake) Open(ctx context.Context, attemptID string, cfg SessionConfig) (*Session, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}

	f.mu.Lock()
	if f.sessions == nil {
		f.sessions = make(map[string]*Session)
	}
	if _, exists := f.sessions[attemptID]; exists {
		f.mu.Unlock()
		return nil, domainErrors.ErrSessionAlreadyOpen
	}
	session := newSession(attemptID, cfg)
	f.sessions[attemptID] = session
	f.Opened = append(f.Opened, cfg)
	f.mu.Unlock()

	if f.Payload != nil {
		_, _ = f.Resolve(attemptID, *f.Payload)
	}
	return session, nil
}

// Resolve delivers a callback to the pending session, mirroring the
// production client's completeness check.
func (f *Fake) Resolve(attemptID string, payload CallbackPayload) (*Session, error) {
	f.mu.Lock()
	session, ok := f.sessions[attemptID]
	if ok {
		delete(f.sessions, attemptID)
	}
	f.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: no pending session for attempt %s", domainErrors.ErrNotFound, attemptID)
	}

	result := payload.Result()
	if !result.Complete() {
		session.fail(domainErrors.ErrIncompletePaymentPayload)
		return session, domainErrors.ErrIncompletePaymentPayload
	}
	session.resolve(result)
	return session, nil
}
