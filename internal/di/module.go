package di

import (
	"go.uber.org/fx"

	"github.com/coursedesk/coursedesk/internal/adapter/email"
	"github.com/coursedesk/coursedesk/internal/adapter/payment"
	"github.com/coursedesk/coursedesk/internal/app"
	"github.com/coursedesk/coursedesk/internal/config"
	"github.com/coursedesk/coursedesk/internal/logger"
	"github.com/coursedesk/coursedesk/internal/notification"
	"github.com/coursedesk/coursedesk/internal/pkg/auth"
	"github.com/coursedesk/coursedesk/internal/server/http/handlers"
	"github.com/coursedesk/coursedesk/internal/server/http/router"
	"github.com/coursedesk/coursedesk/internal/storage/postgres"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		email.Module,
		notification.Module,
		usecase.Module,
		fx.Provide(func(client payment.Client) usecase.PaymentProvider { return client }),
		fx.Provide(func(f *app.DeskFacade) handlers.DeskFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
