package model

// GatewayResult is the payment gateway's callback payload. All three fields
// are opaque to the client; signature validity is judged by the backend only.
type GatewayResult struct {
	PaymentID      string
	GatewayOrderID string
	Signature      string
}

// Complete reports whether every callback field is present. A partial payload
// is a gateway integration failure and must never reach verification.
func (r GatewayResult) Complete() bool {
	return r.PaymentID != "" && r.GatewayOrderID != "" && r.Signature != ""
}

// VerificationRequest carries the four parameters the verification view
// rebuilds from the navigation query string. No other state is required.
type VerificationRequest struct {
	OrderID        string
	PaymentID      string
	GatewayOrderID string
	Signature      string
}

// Complete reports whether all verification parameters are present.
func (r VerificationRequest) Complete() bool {
	return r.OrderID != "" && r.PaymentID != "" && r.GatewayOrderID != "" && r.Signature != ""
}

// VerificationResult is the backend's terminal verdict for a payment.
type VerificationResult struct {
	Success bool `json:"success"`
}
