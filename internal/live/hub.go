package live

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrsuber/ResultInstitudeWeb/internal/metrics"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/apperror"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

type Options struct {
	Heartbeat  time.Duration
	SessionTTL time.Duration
	QueueSize  int
}

func (o Options) withDefaults() Options {
	if o.Heartbeat <= 0 {
		o.Heartbeat = 25 * time.Second
	}
	if o.SessionTTL <= 0 {
		o.SessionTTL = 2 * time.Minute
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 64
	}
	return o
}

// Hub owns every live session.
type Hub struct {
	opts   Options
	layout LayoutFunc
	log    *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
	stopped  bool

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewHub(opts Options, layout LayoutFunc, log *slog.Logger) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{
		opts:     opts.withDefaults(),
		layout:   layout,
		log:      log.With(logger.Scope("live.hub")),
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
	}
}

func (h *Hub) Options() Options { return h.opts }

// Start runs the eviction janitor.
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.janitor()
	h.log.Info("live hub started",
		slog.Duration("heartbeat", h.opts.Heartbeat),
		slog.Duration("session_ttl", h.opts.SessionTTL),
	)
}

// Stop closes every session and waits for their loops to exit.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)

		h.mu.Lock()
		h.stopped = true
		sessions := make([]*Session, 0, len(h.sessions))
		for _, s := range h.sessions {
			sessions = append(sessions, s)
		}
		h.mu.Unlock()

		for _, s := range sessions {
			h.remove(s)
		}
		h.wg.Wait()
		h.log.Info("live hub stopped", slog.Int("sessions", len(sessions)))
	})
}

// Open creates a session and starts its loop.
func (h *Hub) Open() (*Session, error) {
	s := newSession(uuid.NewString(), h.opts.QueueSize, h.layout, h.log)

	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return nil, apperror.ErrUnavailable
	}
	h.sessions[s.id] = s
	h.wg.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()
		s.run()
	}()
	metrics.LiveSessions.Inc()
	h.log.Debug("session opened", slog.String("session_id", s.id))
	return s, nil
}

// Get returns an open session.
func (h *Hub) Get(id string) (*Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	return s, ok
}

// Close closes and forgets a session.
func (h *Hub) Close(id string) {
	if s, ok := h.Get(id); ok {
		h.remove(s)
	}
}

func (h *Hub) remove(s *Session) {
	h.mu.Lock()
	_, ok := h.sessions[s.id]
	delete(h.sessions, s.id)
	h.mu.Unlock()

	s.Close()
	if ok {
		metrics.LiveSessions.Dec()
		h.log.Debug("session closed", slog.String("session_id", s.id))
	}
}

// Dispatch routes a browser event to its session.
func (h *Hub) Dispatch(ev Event) error {
	s, ok := h.Get(ev.SessionID)
	if !ok {
		return apperror.ErrSessionNotFound
	}
	switch err := s.Enqueue(ev); err {
	case nil:
		return nil
	case ErrSessionClosed:
		return apperror.ErrSessionNotFound
	default:
		return apperror.ErrTooManyRequests.WithInternal(err)
	}
}

// Reload tells every streaming browser to reload the page.
func (h *Hub) Reload() int {
	h.mu.RLock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	n := 0
	for _, s := range sessions {
		if s.Streaming() && s.Reload() == nil {
			n++
		}
	}
	h.log.Info("reload broadcast", slog.Int("sessions", n))
	return n
}

// Len returns the number of open sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Evict closes sessions without a stream that have been idle longer than the
// session TTL.
func (h *Hub) Evict(now time.Time) int {
	h.mu.RLock()
	var idle []*Session
	for _, s := range h.sessions {
		if !s.Streaming() && now.Sub(s.idleSince()) > h.opts.SessionTTL {
			idle = append(idle, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range idle {
		h.remove(s)
	}
	if len(idle) > 0 {
		h.log.Debug("evicted idle sessions", slog.Int("count", len(idle)))
	}
	return len(idle)
}

func (h *Hub) janitor() {
	defer h.wg.Done()

	interval := h.opts.SessionTTL / 2
	if interval > 30*time.Second {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case now := <-ticker.C:
			h.Evict(now)
		}
	}
}
