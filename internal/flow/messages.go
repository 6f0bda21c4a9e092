package flow

import (
	"errors"

	domainErrors "github.com/platefront/checkout/internal/domain/errors"
)

// UserMessage maps a flow error to the notification shown to the shopper.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrAuthRequired):
		return "Please login first"
	case errors.Is(err, domainErrors.ErrEmptyCart):
		return "Please add items to cart"
	case errors.Is(err, domainErrors.ErrInvalidAddress):
		return "Please fill in all delivery fields"
	case errors.Is(err, domainErrors.ErrOrderSubmissionFailed):
		return "Error placing order!"
	case errors.Is(err, domainErrors.ErrGatewayScriptLoadFailed):
		return "Failed to load payment gateway"
	case errors.Is(err, domainErrors.ErrIncompletePaymentPayload),
		errors.Is(err, domainErrors.ErrMissingVerificationParameters):
		return "Missing payment details. Verification failed."
	case errors.Is(err, domainErrors.ErrVerificationFailed):
		return "Payment verification failed."
	case errors.Is(err, domainErrors.ErrVerificationRequestFailed):
		return "Error during payment verification. Try again."
	default:
		return "Something went wrong! Please try again."
	}
}

// RedirectForError returns the safe view for a failed attempt. Every error is
// terminal and sends the shopper back to the cart.
func RedirectForError(err error) string {
	if err == nil {
		return RedirectHome
	}
	return RedirectCart
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrAuthRequired):
		return "auth_required"
	case errors.Is(err, domainErrors.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domainErrors.ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, domainErrors.ErrOrderSubmissionFailed):
		return "order_submission_failed"
	case errors.Is(err, domainErrors.ErrGatewayScriptLoadFailed):
		return "gateway_script_load_failed"
	case errors.Is(err, domainErrors.ErrIncompletePaymentPayload):
		return "incomplete_payment_payload"
	case errors.Is(err, domainErrors.ErrMissingVerificationParameters):
		return "missing_verification_parameters"
	case errors.Is(err, domainErrors.ErrVerificationFailed):
		return "verification_failed"
	case errors.Is(err, domainErrors.ErrVerificationRequestFailed):
		return "verification_request_failed"
	default:
		return "internal"
	}
}
