package live

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mrsuber/ResultInstitudeWeb/internal/metrics"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/apperror"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/sse"
)

const (
	maxEventBytes = 4 << 10
	retryAfter    = 2 * time.Second
)

// Handler exposes the hub over HTTP.
type Handler struct {
	hub *Hub
	log *slog.Logger
}

func NewHandler(hub *Hub, log *slog.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{hub: hub, log: log.With(logger.Scope("live.http"))}
}

// RegisterRoutes mounts the stream and event endpoints under /live.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/live", func(r chi.Router) {
		r.Get("/stream", h.Stream)
		r.Post("/events", h.Events)
	})
}

// Stream opens (or resumes, with ?session=) a session and streams its
// commands until the client goes away or the session closes.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	sw := sse.NewWriter(w)
	if err := sw.Start(); err != nil {
		apperror.Write(w, r, h.log, apperror.NewInternal("streaming unsupported", err))
		return
	}
	defer sw.Close()

	sess, err := h.session(r.URL.Query().Get("session"))
	if err != nil {
		_ = sw.Event("error", map[string]string{"message": err.Error()})
		return
	}

	out := make(chan Command, h.hub.opts.QueueSize)
	if err := sess.Attach(out); err != nil {
		_ = sw.Event("error", map[string]string{"message": err.Error()})
		return
	}
	defer sess.Detach()

	_ = sw.Retry(retryAfter)

	heartbeat := time.NewTicker(h.hub.opts.Heartbeat)
	defer heartbeat.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-sess.Done():
			return
		case cmd := <-out:
			if err := sw.Event(cmd.Name, cmd.Data); err != nil {
				h.log.Debug("stream write failed", slog.String("session_id", sess.ID()), logger.Error(err))
				return
			}
		case <-heartbeat.C:
			if err := sw.Comment("heartbeat"); err != nil {
				return
			}
		}
	}
}

// session resumes id when it exists and has no stream, otherwise opens a new
// session.
func (h *Handler) session(id string) (*Session, error) {
	if id != "" {
		if s, ok := h.hub.Get(id); ok && !s.Streaming() {
			return s, nil
		}
	}
	return h.hub.Open()
}

// Events accepts one platform event.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxEventBytes)

	var ev Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		metrics.LiveEvents.WithLabelValues("unknown", "invalid").Inc()
		apperror.Write(w, r, h.log, apperror.NewBadRequest("invalid event body").WithInternal(err))
		return
	}
	if err := ev.Validate(); err != nil {
		metrics.LiveEvents.WithLabelValues(eventLabel(ev.Type), "invalid").Inc()
		apperror.Write(w, r, h.log, apperror.NewBadRequest(err.Error()))
		return
	}

	if err := h.hub.Dispatch(ev); err != nil {
		result := "rejected"
		if errors.Is(err, apperror.ErrSessionNotFound) {
			result = "unknown_session"
		}
		metrics.LiveEvents.WithLabelValues(string(ev.Type), result).Inc()
		apperror.Write(w, r, h.log, err)
		return
	}

	metrics.LiveEvents.WithLabelValues(string(ev.Type), "accepted").Inc()
	w.WriteHeader(http.StatusAccepted)
}

// eventLabel bounds the type label to known values.
func eventLabel(t EventType) string {
	switch t {
	case EventIntersect, EventNavigate, EventOverlay, EventScroll:
		return string(t)
	}
	return "unknown"
}
