package flow

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/platefront/checkout/internal/adapter/gateway"
	"github.com/platefront/checkout/internal/config"
	"github.com/platefront/checkout/internal/domain/repository"
	"github.com/platefront/checkout/internal/usecase"
)

// Module wires the flow controller into the fx graph.
var Module = fx.Provide(newController)

type controllerParams struct {
	fx.In

	Submitter *usecase.SubmissionUseCase
	Verifier  *usecase.VerificationUseCase
	Gateway   gateway.Client
	Attempts  repository.AttemptRepository
	Config    *config.Config
	Logger    *slog.Logger
}

func newController(p controllerParams) *Controller {
	opts := Options{
		GatewayKey:  p.Config.GatewayKeyID,
		Currency:    p.Config.Currency,
		StoreName:   p.Config.StoreName,
		Description: "Order Payment",
		ThemeColor:  "#3399cc",
	}
	return NewController(p.Submitter, p.Verifier, p.Gateway, p.Attempts, opts, p.Logger)
}
