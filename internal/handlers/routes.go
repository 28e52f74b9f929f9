package handlers

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mrsuber/ResultInstitudeWeb/internal/metrics"
)

// Routes groups the handlers mounted on the router.
type Routes struct {
	Pages   *Pages
	Contact *Contact
	Static  fs.FS
	// Live is optional; nil disables the live bridge endpoints.
	Live interface{ RegisterRoutes(chi.Router) }
}

func (rt Routes) Register(r chi.Router) {
	if rt.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(rt.Static))))
	}

	r.Get("/", rt.Pages.LandingPage)
	r.Post("/contact", rt.Contact.Submit)
	r.Get("/health", Health)
	r.Get("/healthz", Health)
	r.Handle("/metrics", metrics.Handler())

	if rt.Live != nil {
		rt.Live.RegisterRoutes(r)
	}
}
