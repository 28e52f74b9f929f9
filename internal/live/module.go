package live

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/mrsuber/ResultInstitudeWeb/internal/config"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
)

var Module = fx.Module("live",
	fx.Provide(NewHubFromConfig, NewHandler),
)

// NewHubFromConfig builds the hub and ties it to the application lifecycle.
func NewHubFromConfig(lc fx.Lifecycle, cfg *config.Config, holder *site.Holder, log *slog.Logger) *Hub {
	hub := NewHub(Options{
		Heartbeat:  cfg.Live.Heartbeat,
		SessionTTL: cfg.Live.SessionTTL,
		QueueSize:  cfg.Live.QueueSize,
	}, holder.Layout, log)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			hub.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			hub.Stop()
			return nil
		},
	})
	return hub
}
