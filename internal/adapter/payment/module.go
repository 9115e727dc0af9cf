package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/coursedesk/coursedesk/internal/config"
)

// Module exposes payment provider client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.PaymentProviderAddress, p.Logger)
}
