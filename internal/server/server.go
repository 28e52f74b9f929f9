package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/mrsuber/ResultInstitudeWeb/internal/config"
	"github.com/mrsuber/ResultInstitudeWeb/internal/contact"
	"github.com/mrsuber/ResultInstitudeWeb/internal/handlers"
	"github.com/mrsuber/ResultInstitudeWeb/internal/live"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
	"github.com/mrsuber/ResultInstitudeWeb/static"
)

var Module = fx.Module("server",
	fx.Provide(NewContactService, NewRouter),
	fx.Invoke(StartServer),
)

// NewContactService wires the contact form limits from config.
func NewContactService(cfg *config.Config, log *slog.Logger) *contact.Service {
	return contact.NewService(contact.NewRateLimiter(cfg.Contact.RatePerMinute, cfg.Contact.Burst), log)
}

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config  *config.Config
	Log     *slog.Logger
	Holder  *site.Holder
	Contact *contact.Service
	Live    *live.Handler `optional:"true"`
}

// NewRouter creates the chi router with the middleware stack and every route.
func NewRouter(p RouterParams) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		logger.RequestLogger(p.Log),
		middleware.Recoverer,
		middleware.StripSlashes,
	)

	liveEnabled := p.Config.Live.Enabled && p.Live != nil
	routes := handlers.Routes{
		Pages:   handlers.NewPages(p.Holder, liveEnabled, p.Log),
		Contact: handlers.NewContact(p.Contact, p.Log),
		Static:  static.FS,
	}
	if liveEnabled {
		routes.Live = p.Live
	}
	routes.Register(r)

	return r
}

// ServerParams are the dependencies of the HTTP server
type ServerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Router    *chi.Mux
	Config    *config.Config
	Log       *slog.Logger
	Hub       *live.Hub `optional:"true"`
}

// StartServer binds the listener on start and shuts the server down
// gracefully on stop.
func StartServer(p ServerParams) *http.Server {
	cfg := p.Config
	log := p.Log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      p.Router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	if p.Hub != nil {
		// open streams only end when their sessions close
		server.RegisterOnShutdown(p.Hub.Stop)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", server.Addr, err)
			}
			log.Info("starting HTTP server",
				slog.String("address", ln.Addr().String()),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
	return server
}
