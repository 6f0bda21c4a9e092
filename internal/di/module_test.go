package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/platefront/checkout/internal/adapter/backend"
	"github.com/platefront/checkout/internal/adapter/gateway"
	"github.com/platefront/checkout/internal/app"
	"github.com/platefront/checkout/internal/config"
	"github.com/platefront/checkout/internal/domain/repository"
	"github.com/platefront/checkout/internal/storage/postgres"
	"github.com/platefront/checkout/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:       ":0",
		DatabaseURI:      "postgres://stub",
		BackendAddress:   "http://localhost",
		GatewayKeyID:     "key_test",
		GatewayScriptURL: "http://localhost/checkout.js",
		Currency:         "INR",
		StoreName:        "Plate Front",
		RequestTimeout:   time.Second,
		ShutdownTimeout:  time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := test.NewAttemptRepositoryStub()

	var facade *app.CheckoutFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.AttemptRepository(attempts)),
			fx.Replace(backend.Client(&test.BackendClientStub{})),
			fx.Replace(gateway.Client(&gateway.Fake{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected checkout facade instance")
	}
}
