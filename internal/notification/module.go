package notification

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/coursedesk/coursedesk/internal/adapter/email"
	"github.com/coursedesk/coursedesk/internal/config"
)

// Module wires the notification dispatcher into the fx graph.
var Module = fx.Options(
	fx.Provide(newDispatcher),
	fx.Provide(func(d *Dispatcher) Submitter { return d }),
)

type dispatcherParams struct {
	fx.In

	Sender email.Sender
	Config *config.Config
	Logger *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(
		p.Sender,
		p.Config.NotificationQueueSize,
		p.Config.NotificationWorkers,
		p.Config.MailSendTimeout,
		p.Logger,
	)
}
