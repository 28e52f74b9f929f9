package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsuber/ResultInstitudeWeb/internal/contact"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
	"github.com/mrsuber/ResultInstitudeWeb/static"
)

type fakeLive struct{ registered bool }

func (f *fakeLive) RegisterRoutes(r chi.Router) {
	f.registered = true
	r.Get("/live/stream", func(w http.ResponseWriter, r *http.Request) {})
}

func newRouter(t *testing.T, live *fakeLive) http.Handler {
	t.Helper()
	holder, err := site.NewHolder(site.Sources{Theme: "glass"}, nil)
	require.NoError(t, err)

	pages := NewPages(holder, live != nil, nil)
	pages.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	rt := Routes{
		Pages:   pages,
		Contact: NewContact(contact.NewService(contact.NewRateLimiter(60, 2), nil), nil),
		Static:  static.FS,
	}
	if live != nil {
		rt.Live = live
	}
	r := chi.NewRouter()
	rt.Register(r)
	return r
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLandingPage(t *testing.T) {
	r := newRouter(t, &fakeLive{})
	rec := do(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "Training Management System")
	assert.Contains(t, body, `class="theme-glass has-blur has-gradient"`)
	assert.Contains(t, body, `data-live="true"`)
	assert.Contains(t, body, "© 2026 Result Institute.")
}

func TestLandingPage_ThemeOverrideAndSent(t *testing.T) {
	r := newRouter(t, nil)

	body := do(r, httptest.NewRequest(http.MethodGet, "/?theme=professional&sent=1", nil)).Body.String()
	assert.Contains(t, body, `class="theme-professional"`)
	assert.Contains(t, body, "Thank you! Your message has been sent.")
	assert.Contains(t, body, `data-live="false"`)

	body = do(r, httptest.NewRequest(http.MethodGet, "/?theme=neon", nil)).Body.String()
	assert.Contains(t, body, `class="theme-glass has-blur has-gradient"`, "unknown theme falls back to the configured one")
}

func TestStaticAssets(t *testing.T) {
	r := newRouter(t, nil)

	rec := do(r, httptest.NewRequest(http.MethodGet, "/static/js/live.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/live/events")

	rec = do(r, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".reveal")
}

func TestHealth(t *testing.T) {
	r := newRouter(t, nil)
	for _, path := range []string{"/health", "/healthz"} {
		rec := do(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	}
}

func TestMetricsRoute(t *testing.T) {
	rec := do(newRouter(t, nil), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "website_live_sessions")
}

func TestLiveRoutesOptional(t *testing.T) {
	live := &fakeLive{}
	r := newRouter(t, live)
	assert.True(t, live.registered)
	assert.Equal(t, http.StatusOK, do(r, httptest.NewRequest(http.MethodGet, "/live/stream", nil)).Code)

	r = newRouter(t, nil)
	assert.Equal(t, http.StatusNotFound, do(r, httptest.NewRequest(http.MethodGet, "/live/stream", nil)).Code)
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "192.0.2.10:5555"
	return req
}

func TestContact_FormRedirects(t *testing.T) {
	r := newRouter(t, nil)
	rec := do(r, formRequest(url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Enrolment"},
		"message": {"Hello"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, SentLocation, rec.Header().Get("Location"))
}

func TestContact_JSON(t *testing.T) {
	r := newRouter(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := do(r, req)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"status":"received"}`, rec.Body.String())
}

func TestContact_Validation(t *testing.T) {
	r := newRouter(t, nil)
	rec := do(r, formRequest(url.Values{"name": {"Ada"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"validation_error"`)
	assert.Contains(t, rec.Body.String(), `"email":"required"`)
}

func TestContact_RateLimited(t *testing.T) {
	r := newRouter(t, nil)
	valid := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hi"},
		"message": {"Hello"},
	}

	assert.Equal(t, http.StatusSeeOther, do(r, formRequest(valid)).Code)
	assert.Equal(t, http.StatusSeeOther, do(r, formRequest(valid)).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, formRequest(valid)).Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.5:1234"
	assert.Equal(t, "203.0.113.5", clientIP(req))

	req.RemoteAddr = "203.0.113.5"
	assert.Equal(t, "203.0.113.5", clientIP(req))
}
