package email

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/coursedesk/coursedesk/internal/config"
)

// Module exposes mail relay client implementation to fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (Sender, error) {
	return NewHTTPSender(p.Config.MailRelayAddress, p.Logger)
}
