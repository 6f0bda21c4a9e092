package errors

import "errors"

// Checkout error taxonomy. Every error is terminal for the current attempt:
// none are retried automatically, each maps to an explicit redirect target.
var (
	ErrAuthRequired                  = errors.New("authentication required")
	ErrEmptyCart                     = errors.New("cart is empty")
	ErrInvalidAddress                = errors.New("invalid delivery address")
	ErrOrderSubmissionFailed         = errors.New("order submission failed")
	ErrGatewayScriptLoadFailed       = errors.New("payment gateway script load failed")
	ErrIncompletePaymentPayload      = errors.New("incomplete payment payload")
	ErrMissingVerificationParameters = errors.New("missing verification parameters")
	ErrVerificationFailed            = errors.New("payment verification failed")
	ErrVerificationRequestFailed     = errors.New("verification request failed")

	ErrSessionAlreadyOpen = errors.New("payment session already open")
	ErrAttemptFinished    = errors.New("checkout attempt already finished")
	ErrNotFound           = errors.New("not found")
)
