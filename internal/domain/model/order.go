package model

import "math"

// DeliveryFee is the flat delivery charge added to every non-empty order.
const DeliveryFee = 2.0

// OrderRequest is the payload submitted to the storefront backend. It is
// constructed once per attempt and sent exactly once.
type OrderRequest struct {
	Address Address    `json:"address"`
	Items   []CartLine `json:"items"`
	Amount  float64    `json:"amount"`
}

// OrderAmount returns cart total plus delivery fee. An empty cart owes
// nothing, including the fee.
func OrderAmount(cartTotal float64) float64 {
	if cartTotal == 0 {
		return 0
	}
	return cartTotal + DeliveryFee
}

// MinorUnits converts a decimal amount to integer minor currency units
// (paise) as required by the payment gateway.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// OrderAck is the backend's answer to order submission. OrderID is the
// durable correlation key for the remainder of the flow; GatewaySessionID is
// the backend-issued id the payment session must be opened with.
type OrderAck struct {
	Success          bool   `json:"success"`
	OrderID          string `json:"orderId"`
	GatewaySessionID string `json:"gatewaySessionId"`
}
