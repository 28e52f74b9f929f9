// Package site holds the content and theme currently served. Both can be
// swapped at runtime when their override files change.
package site

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"go.uber.org/fx"

	"github.com/mrsuber/ResultInstitudeWeb/internal/config"
	"github.com/mrsuber/ResultInstitudeWeb/internal/content"
	"github.com/mrsuber/ResultInstitudeWeb/internal/reveal"
	"github.com/mrsuber/ResultInstitudeWeb/internal/theme"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

var Module = fx.Module("site",
	fx.Provide(NewHolderFromConfig),
)

// Snapshot is an immutable pairing of content and theme.
type Snapshot struct {
	Site  *content.Site
	Theme theme.Theme
}

// Sources names where the snapshot is loaded from.
type Sources struct {
	Theme       string
	ThemeFile   string
	ContentFile string
}

type Holder struct {
	sources Sources
	current atomic.Pointer[Snapshot]
	log     *slog.Logger
}

// NewHolder loads the initial snapshot.
func NewHolder(src Sources, log *slog.Logger) (*Holder, error) {
	if log == nil {
		log = logger.Nop()
	}
	h := &Holder{sources: src, log: log.With(logger.Scope("site"))}
	snap, err := Load(src)
	if err != nil {
		return nil, err
	}
	h.current.Store(snap)
	return h, nil
}

func NewHolderFromConfig(cfg *config.Config, log *slog.Logger) (*Holder, error) {
	return NewHolder(SourcesFromConfig(cfg), log)
}

func SourcesFromConfig(cfg *config.Config) Sources {
	return Sources{
		Theme:       cfg.Site.Theme,
		ThemeFile:   cfg.Site.ThemeFile,
		ContentFile: cfg.Site.ContentFile,
	}
}

// Load reads a snapshot from its sources.
func Load(src Sources) (*Snapshot, error) {
	th, err := theme.Load(src.Theme, src.ThemeFile)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	s, err := content.Load(src.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return &Snapshot{Site: s, Theme: th}, nil
}

func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

func (h *Holder) Sources() Sources {
	return h.sources
}

// Layout returns fresh reveal sections for the current content.
func (h *Holder) Layout() []reveal.Section {
	return h.Current().Site.Layout()
}

// Reload re-reads the sources. On error the previous snapshot stays in place.
func (h *Holder) Reload() error {
	snap, err := Load(h.sources)
	if err != nil {
		h.log.Warn("reload failed, keeping previous site", logger.Error(err))
		return err
	}
	h.current.Store(snap)
	h.log.Info("site reloaded",
		slog.String("theme", snap.Theme.Name),
		slog.Int("services", len(snap.Site.Services.Items)),
	)
	return nil
}
