package flow

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"github.com/platefront/checkout/internal/adapter/gateway"
	domainErrors "github.com/platefront/checkout/internal/domain/errors"
	"github.com/platefront/checkout/internal/domain/model"
	"github.com/platefront/checkout/internal/domain/repository"
	"github.com/platefront/checkout/internal/metrics"
	"github.com/platefront/checkout/internal/usecase"
)

// Redirect targets for terminal outcomes.
const (
	RedirectCart = "/cart"
	RedirectHome = "/"

	verifyViewPath = "/verify"
)

// Submitter exposes the order submission operation required by the flow.
type Submitter interface {
	Submit(ctx context.Context, token string, address model.Address, cart model.Cart) (*model.OrderAck, error)
}

// Verifier exposes the verification dispatch required by the flow.
type Verifier interface {
	Verify(ctx context.Context, req model.VerificationRequest) (*model.VerificationResult, error)
}

// Options configure the payment session the controller opens.
type Options struct {
	GatewayKey  string
	Currency    string
	StoreName   string
	Description string
	ThemeColor  string
}

// Controller sequences one checkout attempt through
// Guarding → Submitting → AwaitingPayment → Verifying → Succeeded | Failed.
// Data flows strictly forward; a new attempt starts a fresh journal row.
type Controller struct {
	submitter Submitter
	verifier  Verifier
	gateway   gateway.Client
	attempts  repository.AttemptRepository
	opts      Options
	logger    *slog.Logger
}

// NewController constructs the checkout flow controller.
func NewController(submitter Submitter, verifier Verifier, gw gateway.Client, attempts repository.AttemptRepository, opts Options, logger *slog.Logger) *Controller {
	return &Controller{
		submitter: submitter,
		verifier:  verifier,
		gateway:   gw,
		attempts:  attempts,
		opts:      opts,
		logger:    logger,
	}
}

// Handoff is the point where control passes to the payment UI: everything the
// caller needs to open the gateway widget and await its resolution.
type Handoff struct {
	AttemptID   string
	OrderID     string
	Subtotal    float64
	DeliveryFee float64
	Amount      float64
	Session     *gateway.Session
}

// Begin runs guard and submission and opens the payment session. On any error
// the attempt is journaled as Failed and the error carries the taxonomy
// sentinel; the caller maps it to a redirect with RedirectForError.
func (c *Controller) Begin(ctx context.Context, token string, address model.Address, lines []model.CartLine) (*Handoff, error) {
	cart := model.SnapshotCart(lines)
	attempt := &model.CheckoutAttempt{
		ID:     uuid.NewString(),
		State:  model.AttemptStateGuarding,
		Amount: model.OrderAmount(cart.Total()),
	}
	if err := c.attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}
	metrics.AttemptsStarted.Inc()

	// The guard re-evaluates on every entry; violations never reach the
	// order submitter.
	if token == "" {
		return nil, c.fail(ctx, attempt.ID, domainErrors.ErrAuthRequired)
	}
	if cart.IsEmpty() {
		return nil, c.fail(ctx, attempt.ID, domainErrors.ErrEmptyCart)
	}
	if err := usecase.ValidateAddress(address); err != nil {
		return nil, c.fail(ctx, attempt.ID, err)
	}

	if err := c.transition(ctx, attempt.ID, model.AttemptStateSubmitting); err != nil {
		return nil, err
	}
	ack, err := c.submitter.Submit(ctx, token, address, cart)
	if err != nil {
		return nil, c.fail(ctx, attempt.ID, err)
	}
	if err := c.attempts.BindOrder(ctx, attempt.ID, ack.OrderID); err != nil {
		return nil, c.fail(ctx, attempt.ID, err)
	}

	if err := c.transition(ctx, attempt.ID, model.AttemptStateAwaitingPayment); err != nil {
		return nil, err
	}
	session, err := c.gateway.Open(ctx, attempt.ID, gateway.SessionConfig{
		Key:         c.opts.GatewayKey,
		Amount:      model.MinorUnits(attempt.Amount),
		Currency:    c.opts.Currency,
		OrderID:     ack.GatewaySessionID,
		Name:        c.opts.StoreName,
		Description: c.opts.Description,
		Prefill: gateway.Prefill{
			Name:    address.FullName(),
			Email:   address.Email,
			Contact: address.Phone,
		},
		Theme: gateway.Theme{Color: c.opts.ThemeColor},
	})
	if err != nil {
		return nil, c.fail(ctx, attempt.ID, err)
	}

	c.logger.Info("payment session opened",
		slog.String("attempt", attempt.ID),
		slog.String("order", ack.OrderID),
		slog.Int64("amount_minor", model.MinorUnits(attempt.Amount)),
	)

	return &Handoff{
		AttemptID:   attempt.ID,
		OrderID:     ack.OrderID,
		Subtotal:    cart.Total(),
		DeliveryFee: attempt.Amount - cart.Total(),
		Amount:      attempt.Amount,
		Session:     session,
	}, nil
}

// HandleCallback delivers the gateway's completion callback and returns the
// verification view URL carrying the four handoff parameters. A callback for
// a finished or unknown attempt mutates nothing.
func (c *Controller) HandleCallback(ctx context.Context, attemptID string, payload gateway.CallbackPayload) (string, error) {
	attempt, err := c.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return "", err
	}
	if attempt.State.Terminal() {
		return "", domainErrors.ErrAttemptFinished
	}

	session, err := c.gateway.Resolve(attemptID, payload)
	if err != nil {
		if errors.Is(err, domainErrors.ErrIncompletePaymentPayload) {
			_ = c.fail(ctx, attemptID, err)
		}
		return "", err
	}

	result, err := session.Await(ctx)
	if err != nil {
		return "", c.fail(ctx, attemptID, err)
	}
	return VerificationURL(attempt.OrderID, result), nil
}

// VerifyOutcome is the terminal answer for the verification view.
type VerifyOutcome struct {
	State    model.AttemptState
	Redirect string
	Message  string
}

// CompleteVerification finishes the flow from the four navigation parameters
// alone. Replaying the same parameters after a terminal outcome repeats that
// outcome without dispatching a second verification.
func (c *Controller) CompleteVerification(ctx context.Context, req model.VerificationRequest) (*VerifyOutcome, error) {
	if !req.Complete() {
		err := domainErrors.ErrMissingVerificationParameters
		return &VerifyOutcome{State: model.AttemptStateFailed, Redirect: RedirectCart, Message: UserMessage(err)}, err
	}

	attempt, err := c.attempts.GetByOrderID(ctx, req.OrderID)
	switch {
	case err == nil:
		if attempt.State.Terminal() {
			c.logger.Info("verification replayed for finished attempt",
				slog.String("attempt", attempt.ID),
				slog.String("order", req.OrderID),
				slog.String("state", string(attempt.State)),
			)
			return c.replayOutcome(attempt), nil
		}
		if err := c.transition(ctx, attempt.ID, model.AttemptStateVerifying); err != nil {
			return nil, err
		}
	case errors.Is(err, domainErrors.ErrNotFound):
		// The journal does not know this order (fresh process, replayed
		// URL). Verification needs nothing beyond the four parameters.
		attempt = nil
	default:
		return nil, err
	}

	if _, err := c.verifier.Verify(ctx, req); err != nil {
		if attempt != nil {
			_ = c.fail(ctx, attempt.ID, err)
		} else {
			metrics.AttemptFailures.WithLabelValues(reasonFor(err)).Inc()
		}
		return &VerifyOutcome{State: model.AttemptStateFailed, Redirect: RedirectCart, Message: UserMessage(err)}, err
	}

	if attempt != nil {
		c.succeed(ctx, attempt.ID)
	}
	metrics.AttemptOutcomes.WithLabelValues("succeeded").Inc()
	return &VerifyOutcome{State: model.AttemptStateSucceeded, Redirect: RedirectHome, Message: "Payment verified successfully"}, nil
}

// Run drives a whole attempt in-process: begin, await the session resolution,
// verify. Intended for gateway clients that resolve without an external
// callback round-trip.
func (c *Controller) Run(ctx context.Context, token string, address model.Address, lines []model.CartLine) (*VerifyOutcome, error) {
	handoff, err := c.Begin(ctx, token, address, lines)
	if err != nil {
		return &VerifyOutcome{State: model.AttemptStateFailed, Redirect: RedirectForError(err), Message: UserMessage(err)}, err
	}

	result, err := handoff.Session.Await(ctx)
	if err != nil {
		if errors.Is(err, domainErrors.ErrIncompletePaymentPayload) {
			_ = c.fail(ctx, handoff.AttemptID, err)
		}
		return &VerifyOutcome{State: model.AttemptStateFailed, Redirect: RedirectCart, Message: UserMessage(err)}, err
	}

	return c.CompleteVerification(ctx, model.VerificationRequest{
		OrderID:        handoff.OrderID,
		PaymentID:      result.PaymentID,
		GatewayOrderID: result.GatewayOrderID,
		Signature:      result.Signature,
	})
}

func (c *Controller) replayOutcome(attempt *model.CheckoutAttempt) *VerifyOutcome {
	if attempt.State == model.AttemptStateSucceeded {
		return &VerifyOutcome{State: model.AttemptStateSucceeded, Redirect: RedirectHome, Message: "Payment verified successfully"}
	}
	return &VerifyOutcome{State: model.AttemptStateFailed, Redirect: RedirectCart, Message: "Payment verification failed."}
}

func (c *Controller) transition(ctx context.Context, attemptID string, to model.AttemptState) error {
	ok, err := c.attempts.Transition(ctx, attemptID, to)
	if err != nil {
		return err
	}
	if !ok {
		// The attempt reached a terminal state elsewhere; this path must
		// not mutate anything further.
		return domainErrors.ErrAttemptFinished
	}
	return nil
}

func (c *Controller) fail(ctx context.Context, attemptID string, cause error) error {
	reason := reasonFor(cause)
	updated, err := c.attempts.Finish(ctx, attemptID, model.AttemptStateFailed, reason)
	if err != nil {
		c.logger.Error("journal attempt failure", slog.String("attempt", attemptID), slog.String("error", err.Error()))
	}
	if updated {
		metrics.AttemptOutcomes.WithLabelValues("failed").Inc()
		metrics.AttemptFailures.WithLabelValues(reason).Inc()
	}
	c.logger.Warn("checkout attempt failed",
		slog.String("attempt", attemptID),
		slog.String("reason", reason),
		slog.String("error", cause.Error()),
	)
	return cause
}

func (c *Controller) succeed(ctx context.Context, attemptID string) {
	if _, err := c.attempts.Finish(ctx, attemptID, model.AttemptStateSucceeded, ""); err != nil {
		c.logger.Error("journal attempt success", slog.String("attempt", attemptID), slog.String("error", err.Error()))
	}
}

// VerificationURL encodes the handoff state into the verification view query
// string. These four parameters are the only state crossing the page boundary.
func VerificationURL(orderID string, result model.GatewayResult) string {
	q := url.Values{}
	q.Set("orderId", orderID)
	q.Set("paymentId", result.PaymentID)
	q.Set("orderRazorId", result.GatewayOrderID)
	q.Set("signature", result.Signature)
	return verifyViewPath + "?" + q.Encode()
}

// ParseVerificationQuery rebuilds the verification request from navigation
// query parameters, with no other stored state.
func ParseVerificationQuery(q url.Values) model.VerificationRequest {
	return model.VerificationRequest{
		OrderID:        q.Get("orderId"),
		PaymentID:      q.Get("paymentId"),
		GatewayOrderID: q.Get("orderRazorId"),
		Signature:      q.Get("signature"),
	}
}
