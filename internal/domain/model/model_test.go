package model

import "testing"

func TestSnapshotCartFiltersNonPositiveQuantities(t *testing.T) {
	cart := SnapshotCart([]CartLine{
		{ItemID: "a", Quantity: 2, UnitPrice: 5},
		{ItemID: "b", Quantity: 0, UnitPrice: 3},
		{ItemID: "c", Quantity: -1, UnitPrice: 7},
		{ItemID: "d", Quantity: 1, UnitPrice: 15},
	})

	if len(cart.Lines) != 2 {
		t.Fatalf("expected 2 lines after filtering, got %d", len(cart.Lines))
	}
	if cart.Lines[0].ItemID != "a" || cart.Lines[1].ItemID != "d" {
		t.Fatalf("expected catalog order preserved, got %v", cart.Lines)
	}
	if cart.Total() != 25 {
		t.Fatalf("expected total 25, got %v", cart.Total())
	}
}

func TestOrderAmountAddsDeliveryFee(t *testing.T) {
	if got := OrderAmount(25); got != 27 {
		t.Fatalf("expected 27, got %v", got)
	}
	if got := OrderAmount(0); got != 0 {
		t.Fatalf("expected free empty order, got %v", got)
	}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{27, 2700},
		{0, 0},
		{19.99, 1999},
		{0.1 + 0.2, 30},
	}
	for _, tc := range cases {
		if got := MinorUnits(tc.amount); got != tc.want {
			t.Fatalf("MinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestAddressMissingFields(t *testing.T) {
	addr := Address{
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
	if missing := addr.MissingFields(); len(missing) != 0 {
		t.Fatalf("expected complete address, missing %v", missing)
	}

	addr.Email = "  "
	addr.Phone = ""
	missing := addr.MissingFields()
	if len(missing) != 2 || missing[0] != "email" || missing[1] != "phone" {
		t.Fatalf("unexpected missing fields %v", missing)
	}

	if addr.FullName() != "Jane Doe" {
		t.Fatalf("unexpected full name %q", addr.FullName())
	}
}

func TestGatewayResultComplete(t *testing.T) {
	full := GatewayResult{PaymentID: "pay_1", GatewayOrderID: "order_1", Signature: "sig"}
	if !full.Complete() {
		t.Fatal("expected complete result")
	}
	for _, partial := range []GatewayResult{
		{GatewayOrderID: "order_1", Signature: "sig"},
		{PaymentID: "pay_1", Signature: "sig"},
		{PaymentID: "pay_1", GatewayOrderID: "order_1"},
	} {
		if partial.Complete() {
			t.Fatalf("expected incomplete result for %+v", partial)
		}
	}
}

func TestAttemptStateTerminal(t *testing.T) {
	for _, s := range []AttemptState{AttemptStateIdle, AttemptStateGuarding, AttemptStateSubmitting, AttemptStateAwaitingPayment, AttemptStateVerifying} {
		if s.Terminal() {
			t.Fatalf("state %s must not be terminal", s)
		}
	}
	if !AttemptStateSucceeded.Terminal() || !AttemptStateFailed.Terminal() {
		t.Fatal("expected terminal states")
	}
}
