package di

import (
	"go.uber.org/fx"

	"github.com/platefront/checkout/internal/adapter/backend"
	"github.com/platefront/checkout/internal/adapter/gateway"
	"github.com/platefront/checkout/internal/app"
	"github.com/platefront/checkout/internal/config"
	"github.com/platefront/checkout/internal/flow"
	"github.com/platefront/checkout/internal/logger"
	"github.com/platefront/checkout/internal/server/http/router"
	"github.com/platefront/checkout/internal/storage/postgres"
	"github.com/platefront/checkout/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		backend.Module,
		gateway.Module,
		usecase.Module,
		flow.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
