package cmd

import (
	"context"
	"log/slog"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/mrsuber/ResultInstitudeWeb/internal/config"
	"github.com/mrsuber/ResultInstitudeWeb/internal/live"
	"github.com/mrsuber/ResultInstitudeWeb/internal/server"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
	"github.com/mrsuber/ResultInstitudeWeb/internal/watch"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

type serveOptions struct {
	site   siteFlags
	port   int
	watch  bool
	noLive bool
	open   bool
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the HTTP server for the landing page, the contact form and the live
reveal bridge. Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}

			app := fx.New(appOptions(cfg, opts.open)...)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}

	opts.site.register(cmd)
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "listen port (default WEBSITE_PORT)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload theme and content files when they change")
	cmd.Flags().BoolVar(&opts.noLive, "no-live", false, "disable the live reveal bridge")
	cmd.Flags().BoolVar(&opts.open, "open", false, "open the site in the default browser")
	return cmd
}

func (o *serveOptions) config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := o.site.load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = o.port
	}
	if o.watch {
		cfg.Site.Watch = true
	}
	if o.noLive {
		cfg.Live.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// appOptions assembles the server application for cfg.
func appOptions(cfg *config.Config, open bool) []fx.Option {
	opts := []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		logger.Module,
		fx.Supply(cfg),
		site.Module,
	}
	if cfg.Live.Enabled {
		opts = append(opts, live.Module)
	}
	opts = append(opts, server.Module, watch.Module)
	if open {
		opts = append(opts, fx.Invoke(openBrowser))
	}
	return opts
}

// openBrowser opens the site once the server is listening. Hooks run in
// registration order, so this runs after the server's OnStart.
func openBrowser(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			url := cfg.URL()
			if err := browser.OpenURL(url); err != nil {
				log.Warn("could not open browser", slog.String("url", url), logger.Error(err))
			}
			return nil
		},
	})
}
