package live

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mrsuber/ResultInstitudeWeb/internal/metrics"
	"github.com/mrsuber/ResultInstitudeWeb/internal/reveal"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

var (
	ErrSessionClosed = errors.New("live: session closed")
	ErrSessionBusy   = errors.New("live: session already has a stream")
	ErrQueueFull     = errors.New("live: session queue full")
)

// LayoutFunc returns fresh page sections to mount.
type LayoutFunc func() []reveal.Section

type controlKind int

const (
	controlAttach controlKind = iota
	controlDetach
	controlReload
	controlBarrier
)

type control struct {
	kind controlKind
	out  chan<- Command
	ack  chan struct{}
}

// Session is one browser page. A single goroutine owns its Shell, Tracker and
// Navigator; everything else talks to it through channels.
type Session struct {
	id     string
	layout LayoutFunc
	log    *slog.Logger

	in  chan Event
	ctl chan control

	done      chan struct{}
	closeOnce sync.Once
	finished  chan struct{}

	store     *reveal.Store
	streaming atomic.Bool
	lastSeen  atomic.Int64
}

func newSession(id string, queueSize int, layout LayoutFunc, log *slog.Logger) *Session {
	s := &Session{
		id:       id,
		layout:   layout,
		log:      log.With(logger.Scope("live.session"), slog.String("session_id", id)),
		in:       make(chan Event, queueSize),
		ctl:      make(chan control, 4),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
		store:    reveal.NewStore(),
	}
	s.touch()
	return s
}

func (s *Session) ID() string { return s.id }

// Done is closed when the session is closed.
func (s *Session) Done() <-chan struct{} { return s.done }

// Revealed returns the ids revealed so far.
func (s *Session) Revealed() []string { return s.store.Revealed() }

// Streaming reports whether a stream is attached.
func (s *Session) Streaming() bool { return s.streaming.Load() }

func (s *Session) idleSince() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch() {
	s.lastSeen.Store(time.Now().UnixNano())
}

// Enqueue hands an event to the session loop without blocking.
func (s *Session) Enqueue(ev Event) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}
	select {
	case s.in <- ev:
		s.touch()
		return nil
	default:
		return ErrQueueFull
	}
}

// Attach connects a stream. The loop mounts the page and sends "connected"
// on out first.
func (s *Session) Attach(out chan<- Command) error {
	if !s.streaming.CompareAndSwap(false, true) {
		return ErrSessionBusy
	}
	if err := s.control(control{kind: controlAttach, out: out}); err != nil {
		s.streaming.Store(false)
		return err
	}
	s.touch()
	return nil
}

// Detach disconnects the stream and unmounts the page.
func (s *Session) Detach() {
	_ = s.control(control{kind: controlDetach})
	s.streaming.Store(false)
	s.touch()
}

// Reload asks the browser to reload the page.
func (s *Session) Reload() error {
	return s.control(control{kind: controlReload})
}

// barrier returns once every control and event queued before it was handled.
func (s *Session) barrier() error {
	ack := make(chan struct{})
	if err := s.control(control{kind: controlBarrier, ack: ack}); err != nil {
		return err
	}
	select {
	case <-ack:
		return nil
	case <-s.finished:
		return ErrSessionClosed
	}
}

func (s *Session) control(c control) error {
	select {
	case s.ctl <- c:
		return nil
	case <-s.done:
		return ErrSessionClosed
	}
}

// Close stops the loop; the page is unmounted if a stream was attached.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// loopState is owned by the session goroutine.
type loopState struct {
	s       *Session
	out     chan<- Command
	shell   *reveal.Shell
	tracker *reveal.Tracker
	unmount func()
	overlay bool
}

func (s *Session) run() {
	defer close(s.finished)

	st := &loopState{s: s}
	st.tracker = reveal.NewTracker(st.onReveal, s.log)
	nav := reveal.NewNavigator(reveal.ScrollFunc(st.scrollTo), reveal.OverlayFunc(st.closeOverlay), s.log)
	nav.OnGoTo(func(section string, found bool) {
		metrics.Navigations.WithLabelValues(section, metrics.NavigationResult(found)).Inc()
	})
	st.shell = reveal.NewShell(st.tracker, nav, s.log)
	st.shell.OnScrolled(func(scrolled bool) {
		st.emit(CommandNavbar, NavbarData{Scrolled: scrolled})
	})
	defer st.detach()

	for {
		select {
		case <-s.done:
			return
		case c := <-s.ctl:
			st.handleControl(c)
		case ev := <-s.in:
			st.handleEvent(ev)
		}
	}
}

func (st *loopState) handleControl(c control) {
	switch c.kind {
	case controlAttach:
		st.detach()
		st.out = c.out
		st.unmount = st.shell.Mount(st.s.layout())
		st.emit(CommandConnected, ConnectedData{SessionID: st.s.id, Revealed: st.s.store.Revealed()})
		st.s.log.Debug("stream attached")
	case controlDetach:
		st.detach()
		st.s.log.Debug("stream detached")
	case controlReload:
		st.emit(CommandReload, struct{}{})
	case controlBarrier:
	drain:
		for {
			select {
			case ev := <-st.s.in:
				st.handleEvent(ev)
			default:
				break drain
			}
		}
		close(c.ack)
	}
}

func (st *loopState) handleEvent(ev Event) {
	switch ev.Type {
	case EventIntersect:
		st.tracker.Report(ev.ID, ev.Ratio)
	case EventNavigate:
		st.shell.GoTo(ev.Section)
	case EventOverlay:
		st.overlay = ev.Open
	case EventScroll:
		st.shell.Scroll(ev.Y)
	}
}

func (st *loopState) detach() {
	if st.unmount != nil {
		st.unmount()
		st.unmount = nil
	}
	st.out = nil
}

// onReveal runs inside Tracker.Report, on the loop goroutine.
func (st *loopState) onReveal(id string) {
	if st.s.store.MarkRevealed(id) {
		metrics.Reveals.WithLabelValues(id).Inc()
		st.emit(CommandReveal, RevealData{ID: id})
	}
}

func (st *loopState) scrollTo(req reveal.ScrollRequest) {
	st.emit(CommandScroll, req)
}

func (st *loopState) closeOverlay() {
	if st.overlay {
		st.s.log.Debug("closing menu overlay")
	}
	st.overlay = false
	st.emit(CommandOverlay, OverlayData{Open: false})
}

// emit never blocks the loop: commands for a full or missing stream are dropped.
func (st *loopState) emit(name string, data any) {
	if st.out == nil {
		return
	}
	select {
	case st.out <- Command{Name: name, Data: data}:
	default:
		st.s.log.Warn("stream queue full, dropping command", slog.String("command", name))
	}
}
