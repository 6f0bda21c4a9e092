package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	domainErrors "github.com/platefront/checkout/internal/domain/errors"
)

// ScriptClient is the production gateway client. Load fetches the hosted
// checkout script to prove the integration is reachable; sessions are kept in
// memory until the gateway callback resolves them.
type ScriptClient struct {
	scriptURL string
	http      *resty.Client
	logger    *slog.Logger

	loadOnce sync.Once
	loadErr  error

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewScriptClient creates a gateway client for the given hosted script URL.
func NewScriptClient(scriptURL string, timeout time.Duration, logger *slog.Logger) *ScriptClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ScriptClient{
		scriptURL: scriptURL,
		logger:    logger,
		http:      resty.New().SetTimeout(timeout).SetRetryCount(0),
		sessions:  make(map[string]*Session),
	}
}

// Load fetches the checkout script once. Repeat calls return the first
// outcome: a failed load is terminal for the process and never retried here.
func (c *ScriptClient) Load(ctx context.Context) error {
	c.loadOnce.Do(func() {
		resp, err := c.http.R().SetContext(ctx).Get(c.scriptURL)
		if err != nil {
			c.loadErr = fmt.Errorf("%w: %w", domainErrors.ErrGatewayScriptLoadFailed, err)
			return
		}
		if resp.IsError() {
			c.loadErr = fmt.Errorf("%w: status %s", domainErrors.ErrGatewayScriptLoadFailed, resp.Status())
			return
		}
		c.logger.Info("payment gateway script loaded", slog.String("url", c.scriptURL))
	})
	return c.loadErr
}

// Open registers a pending payment session. Only one session may be open per
// attempt at a time.
func (c *ScriptClient) Open(ctx context.Context, attemptID string, cfg SessionConfig) (*Session, error) {
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	if cfg.OrderID == "" {
		return nil, fmt.Errorf("payment session requires a backend-issued order id")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.sessions[attemptID]; exists {
		return nil, domainErrors.ErrSessionAlreadyOpen
	}

	session := newSession(attemptID, cfg)
	c.sessions[attemptID] = session
	return session, nil
}

// Resolve delivers the gateway callback to the pending session and removes
// it. A payload with any missing field fails the session with
// ErrIncompletePaymentPayload so verification is never reached.
func (c *ScriptClient) Resolve(attemptID string, payload CallbackPayload) (*Session, error) {
	c.mu.Lock()
	session, ok := c.sessions[attemptID]
	if ok {
		delete(c.sessions, attemptID)
	}
	c.mu.Unlock()

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

// Pending reports whether an attempt has an unresolved session.
func (c *ScriptClient) Pending(attemptID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.sessions[attemptID]
	return ok
}
