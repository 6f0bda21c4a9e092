package gateway

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/platefront/checkout/internal/config"
)

// Module exposes the gateway client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) Client {
	return NewScriptClient(p.Config.GatewayScriptURL, p.Config.RequestTimeout, p.Logger)
}
