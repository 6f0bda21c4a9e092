package test

import (
	"math/rand"
	"sync"
	"time"

	"github.com/platefront/checkout/internal/adapter/gateway"
	"github.com/platefront/checkout/internal/domain/model"
)

// ValidAddress returns a complete delivery address fixture.
func ValidAddress() model.Address {
	return model.Address{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Street:    "1 Main St",
		City:      "Pune",
		State:     "MH",
		Zipcode:   "411001",
		Country:   "IN",
		Phone:     "9999999999",
	}
}

// SampleLines returns cart lines totalling 25.
func SampleLines() []model.CartLine {
	return []model.CartLine{
		{ItemID: "dish-1", Quantity: 2, UnitPrice: 10},
		{ItemID: "dish-2", Quantity: 1, UnitPrice: 5},
	}
}

// CompletePayload returns a gateway callback with all three fields present.
func CompletePayload() gateway.CallbackPayload {
	return gateway.CallbackPayload{
		PaymentID:      "pay_1",
		GatewayOrderID: "rzp_1",
		Signature:      "sig_1",
	}
}

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided
// bounds.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
