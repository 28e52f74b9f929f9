package reveal

import (
	"log/slog"
	"sync"
)

// Shell owns the lifecycle of a page: it registers sections with the tracker
// and navigator on mount and releases them on unmount.
type Shell struct {
	tracker VisibilityTracker
	nav     *Navigator
	log     *slog.Logger

	mu       sync.Mutex
	mounted  bool
	sections []string
	scroll   *ScrollWatcher
	onScroll func(scrolled bool)
}

func NewShell(tracker VisibilityTracker, nav *Navigator, log *slog.Logger) *Shell {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Shell{tracker: tracker, nav: nav, log: log}
}

// OnScrolled installs the navbar scrolled-state listener. It only receives
// changes while the shell is mounted.
func (s *Shell) OnScrolled(fn func(scrolled bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onScroll = fn
}

// Mount builds the navigation targets from sections and then observes every
// element tagged for reveal. The returned func unmounts the shell; it is safe
// to call more than once. If registration panics, the shell is unmounted
// before the panic propagates.
func (s *Shell) Mount(sections []Section) (unmount func()) {
	var once sync.Once
	unmount = func() { once.Do(s.Unmount) }

	s.mu.Lock()
	s.mounted = true
	onScroll := s.onScroll
	s.scroll = NewScrollWatcher(func(scrolled bool) {
		if onScroll != nil {
			onScroll(scrolled)
		}
	})
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			unmount()
			panic(r)
		}
	}()

	targets := make(map[string]string, len(sections))
	names := make([]string, 0, len(sections))
	for _, sec := range sections {
		if sec.Name == "" || !valid(sec.Anchor) {
			continue
		}
		targets[sec.Name] = sec.Anchor.ID()
		names = append(names, sec.Name)
	}
	if s.nav != nil {
		s.nav.SetTargets(targets)
	}

	observed := 0
	for _, sec := range sections {
		for _, t := range sec.Reveal {
			if s.RegisterForReveal(t.Element, t.Threshold) {
				observed++
			}
		}
	}

	s.mu.Lock()
	s.sections = names
	s.mu.Unlock()

	s.log.Debug("page mounted",
		slog.Int("sections", len(names)),
		slog.Int("observed", observed),
	)
	return unmount
}

// RegisterForReveal observes a single element. It reports whether the element
// was handed to the tracker; nothing is registered while unmounted.
func (s *Shell) RegisterForReveal(el Element, threshold float64) bool {
	s.mu.Lock()
	mounted := s.mounted
	s.mu.Unlock()
	if !mounted || s.tracker == nil || !valid(el) {
		return false
	}
	s.tracker.Observe(el, threshold)
	return true
}

// GoTo forwards to the navigator.
func (s *Shell) GoTo(section string) bool {
	if s.nav == nil {
		return false
	}
	return s.nav.GoTo(section)
}

// Scroll feeds the page scroll offset to the navbar state watcher.
func (s *Shell) Scroll(y int) {
	s.mu.Lock()
	w := s.scroll
	mounted := s.mounted
	s.mu.Unlock()
	if mounted && w != nil {
		w.Update(y)
	}
}

// Scrolled reports the navbar scrolled state; false while unmounted.
func (s *Shell) Scrolled() bool {
	s.mu.Lock()
	w := s.scroll
	mounted := s.mounted
	s.mu.Unlock()
	return mounted && w != nil && w.Scrolled()
}

// Unmount releases every tracker registration and navigation target. It runs
// unconditionally, including after a partial mount.
func (s *Shell) Unmount() {
	s.mu.Lock()
	s.mounted = false
	s.scroll = nil
	s.sections = nil
	s.mu.Unlock()

	if s.tracker != nil {
		s.tracker.UnobserveAll()
	}
	if s.nav != nil {
		s.nav.Clear()
	}
	s.log.Debug("page unmounted")
}

// Mounted reports whether Mount ran without a later Unmount.
func (s *Shell) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// Sections returns the names of the mounted sections in mount order.
func (s *Shell) Sections() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sections...)
}
