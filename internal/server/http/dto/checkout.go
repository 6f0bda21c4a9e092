package dto

import "github.com/platefront/checkout/internal/domain/model"

// PlaceRequest carries the order payload for checkout placement.
type PlaceRequest struct {
	Address model.Address    `json:"address"`
	Items   []model.CartLine `json:"items"`
}

// SessionResponse mirrors the gateway widget configuration.
type SessionResponse struct {
	Key         string `json:"key"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	OrderID     string `json:"order_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlaceResponse acknowledges placement and hands the payment session over.
type PlaceResponse struct {
	Success     bool            `json:"success"`
	AttemptID   string          `json:"attemptId"`
	OrderID     string          `json:"orderId"`
	Subtotal    float64         `json:"subtotal"`
	DeliveryFee float64         `json:"deliveryFee"`
	Amount      float64         `json:"amount"`
	Session     SessionResponse `json:"session"`
}

// CallbackRequest is the gateway success payload delivered after payment.
type CallbackRequest struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

// CallbackResponse points the client at the verification view.
type CallbackResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect"`
}

// VerifyResponse reports the terminal outcome of an attempt.
type VerifyResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect"`
	Message  string `json:"message"`
}

// ErrorResponse carries a user-facing failure with its redirect target.
type ErrorResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect"`
	Message  string `json:"message"`
}
