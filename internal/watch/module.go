package watch

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/mrsuber/ResultInstitudeWeb/internal/config"
	"github.com/mrsuber/ResultInstitudeWeb/internal/live"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
)

var Module = fx.Module("watch",
	fx.Invoke(StartWatcher),
)

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Holder    *site.Holder
	Hub       *live.Hub `optional:"true"`
	Log       *slog.Logger
}

// StartWatcher reloads the site holder and tells live browsers to reload
// whenever an override file changes. It does nothing unless SITE_WATCH is set
// and at least one override file is configured.
func StartWatcher(p Params) error {
	src := p.Holder.Sources()
	if !p.Config.Site.Watch || (src.ThemeFile == "" && src.ContentFile == "") {
		return nil
	}

	w, err := New([]string{src.ThemeFile, src.ContentFile}, Reloader(p.Holder, p.Hub, p.Log), p.Log)
	if err != nil {
		return err
	}

	var cancel context.CancelFunc
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			return w.Start(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			w.Stop()
			return nil
		},
	})
	return nil
}

// Reloader returns the change handler: reload the holder, then broadcast a
// page reload when it succeeded.
func Reloader(holder *site.Holder, hub *live.Hub, log *slog.Logger) func(paths []string) {
	return func(paths []string) {
		log.Info("site files changed", slog.Any("paths", paths))
		if err := holder.Reload(); err != nil {
			return
		}
		if hub != nil {
			hub.Reload()
		}
	}
}
