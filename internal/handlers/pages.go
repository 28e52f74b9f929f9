package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/mrsuber/ResultInstitudeWeb/internal/components"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
	"github.com/mrsuber/ResultInstitudeWeb/internal/theme"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/apperror"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

// Pages renders the landing page from the current site snapshot.
type Pages struct {
	holder *site.Holder
	live   bool
	log    *slog.Logger
	now    func() time.Time
}

func NewPages(holder *site.Holder, live bool, log *slog.Logger) *Pages {
	if log == nil {
		log = logger.Nop()
	}
	return &Pages{holder: holder, live: live, log: log.With(logger.Scope("pages")), now: time.Now}
}

// Page builds the render input for a request. ?theme= selects a preset.
func (p *Pages) Page(r *http.Request) components.Page {
	snap := p.holder.Current()
	page := components.Page{
		Site:  snap.Site,
		Theme: snap.Theme,
		Live:  p.live,
		Year:  p.now().Year(),
	}
	if r == nil {
		return page
	}
	if name := r.URL.Query().Get("theme"); name != "" {
		if th, ok := theme.Lookup(name); ok {
			page.Theme = th
		}
	}
	page.Sent = r.URL.Query().Get("sent") == "1"
	return page
}

func (p *Pages) LandingPage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := components.LandingPage(p.Page(r)).Render(&buf); err != nil {
		apperror.Write(w, r, p.log, apperror.NewInternal("failed to render page", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func Health(w http.ResponseWriter, r *http.Request) {
	apperror.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
