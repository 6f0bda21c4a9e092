package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainErrors "github.com/platefront/checkout/internal/domain/errors"
	"github.com/platefront/checkout/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testAddress() model.Address {
	return model.Address{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Street: "1 Main St", City: "Pune", State: "MH",
		Zipcode: "411001", Country: "IN", Phone: "9999999999",
	}
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestPlaceOrderSendsRequestAndToken(t *testing.T) {
	var gotPath, gotToken string
	var gotBody model.OrderRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("token")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode order request: %v", err)
		}
		json.NewEncoder(w).Encode(model.OrderAck{Success: true, OrderID: "ord_1", GatewaySessionID: "sess_1"})
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	req := model.OrderRequest{
		Address: testAddress(),
		Items:   []model.CartLine{{ItemID: "dish-1", Quantity: 2, UnitPrice: 12.5}},
		Amount:  27,
	}
	ack, err := client.PlaceOrder(context.Background(), "auth-token", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/order/place" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotToken != "auth-token" {
		t.Fatalf("unexpected token header %q", gotToken)
	}
	if gotBody.Amount != 27 || len(gotBody.Items) != 1 || gotBody.Items[0].ItemID != "dish-1" {
		t.Fatalf("unexpected body %+v", gotBody)
	}
	if ack.OrderID != "ord_1" || ack.GatewaySessionID != "sess_1" {
		t.Fatalf("unexpected ack %+v", ack)
	}
}

func TestPlaceOrderBackendRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.OrderAck{Success: false})
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, time.Second, testLogger())
	if _, err := client.PlaceOrder(context.Background(), "t", model.OrderRequest{}); !errors.Is(err, domainErrors.ErrOrderSubmissionFailed) {
		t.Fatalf("expected ErrOrderSubmissionFailed, got %v", err)
	}
}

func TestPlaceOrderFailuresAreUniform(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "client error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client, _ := NewHTTPClient(server.URL, time.Second, testLogger())
			_, err := client.PlaceOrder(context.Background(), "t", model.OrderRequest{})
			if !errors.Is(err, domainErrors.ErrOrderSubmissionFailed) {
				t.Fatalf("expected ErrOrderSubmissionFailed, got %v", err)
			}
		})
	}
}

func TestVerifyOrderWirePayload(t *testing.T) {
	var raw map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/order/verify" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Errorf("decode verify request: %v", err)
		}
		json.NewEncoder(w).Encode(model.VerificationResult{Success: true})
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, time.Second, testLogger())
	result, err := client.VerifyOrder(context.Background(), model.VerificationRequest{
		OrderID:        "ord_1",
		PaymentID:      "pay_1",
		GatewayOrderID: "rzp_ord_1",
		Signature:      "sig_1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatal("expected success result")
	}

	expected := map[string]string{
		"orderId":             "ord_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "rzp_ord_1",
		"razorpay_signature":  "sig_1",
	}
	for key, want := range expected {
		if raw[key] != want {
			t.Fatalf("expected %s=%q on the wire, got %q", key, want, raw[key])
		}
	}
}

func TestVerifyOrderReturnsBackendVerdict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.VerificationResult{Success: false})
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, time.Second, testLogger())
	result, err := client.VerifyOrder(context.Background(), model.VerificationRequest{OrderID: "o", PaymentID: "p", GatewayOrderID: "g", Signature: "s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected backend rejection to pass through as success=false")
	}
}

func TestVerifyOrderTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, _ := NewHTTPClient(server.URL, time.Second, testLogger())
	_, err := client.VerifyOrder(context.Background(), model.VerificationRequest{OrderID: "o", PaymentID: "p", GatewayOrderID: "g", Signature: "s"})
	if !errors.Is(err, domainErrors.ErrVerificationRequestFailed) {
		t.Fatalf("expected ErrVerificationRequestFailed, got %v", err)
	}
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, time.Second, testLogger())
	for i := 0; i < 5; i++ {
		if _, err := client.PlaceOrder(context.Background(), "t", model.OrderRequest{}); err == nil {
			t.Fatal("expected failure")
		}
	}

	// The breaker should now reject without reaching the server.
	_, err := client.PlaceOrder(context.Background(), "t", model.OrderRequest{})
	if !errors.Is(err, domainErrors.ErrOrderSubmissionFailed) {
		t.Fatalf("expected ErrOrderSubmissionFailed from open breaker, got %v", err)
	}
}
