package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	Site    SiteConfig
	Live    LiveConfig
	Contact ContactConfig

	// Server timeouts. WriteTimeout stays 0 so SSE streams are not cut.
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"0s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// SiteConfig selects the theme and optional content overrides
type SiteConfig struct {
	Theme       string `env:"SITE_THEME" envDefault:"glass"`
	ThemeFile   string `env:"SITE_THEME_FILE"`
	ContentFile string `env:"SITE_CONTENT_FILE"`
	Watch       bool   `env:"SITE_WATCH" envDefault:"false"`
}

// LiveConfig tunes the server-driven reveal bridge
type LiveConfig struct {
	Enabled    bool          `env:"LIVE_ENABLED" envDefault:"true"`
	Heartbeat  time.Duration `env:"LIVE_HEARTBEAT" envDefault:"25s"`
	SessionTTL time.Duration `env:"LIVE_SESSION_TTL" envDefault:"2m"`
	QueueSize  int           `env:"LIVE_QUEUE_SIZE" envDefault:"64"`
}

// ContactConfig limits contact form submissions per client
type ContactConfig struct {
	RatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"6"`
	Burst         int `env:"CONTACT_BURST" envDefault:"3"`
}

// knownThemes mirrors the presets in internal/theme.
var knownThemes = map[string]bool{
	"glass":        true,
	"professional": true,
}

// NewConfig creates a new config from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("address", cfg.Addr()),
		slog.String("theme", cfg.Site.Theme),
		slog.Bool("live", cfg.Live.Enabled),
	)
	return cfg, nil
}

// Load reads .env files (if present) and parses the environment.
// .env.local overrides .env; neither overrides variables already set.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
	return Parse()
}

// Parse builds a Config from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid WEBSITE_PORT %d: must be between 1 and 65535", c.Port)
	}
	if c.Site.ThemeFile == "" && !knownThemes[c.Site.Theme] {
		return fmt.Errorf("invalid SITE_THEME %q: must be one of glass, professional", c.Site.Theme)
	}
	if c.Live.Heartbeat <= 0 {
		return fmt.Errorf("LIVE_HEARTBEAT must be positive")
	}
	if c.Live.SessionTTL <= 0 {
		return fmt.Errorf("LIVE_SESSION_TTL must be positive")
	}
	if c.Live.QueueSize <= 0 {
		return fmt.Errorf("LIVE_QUEUE_SIZE must be positive")
	}
	if c.Contact.RatePerMinute <= 0 || c.Contact.Burst <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE and CONTACT_BURST must be positive")
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// URL returns a browsable local URL for the server.
func (c *Config) URL() string {
	host := c.Address
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port))
}
