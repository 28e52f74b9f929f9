package reveal

import (
	"log/slog"
	"sync"
)

// VisibilityTracker registers elements for one-shot reveal detection.
type VisibilityTracker interface {
	Observe(el Element, threshold float64)
	UnobserveAll()
}

type observation struct {
	threshold float64
	fired     bool
}

// Tracker turns raw visibility ratios into one-shot reveal events.
//
// Ratios come from the platform through Report. The reveal callback runs while
// the tracker lock is held, which serialises delivery with UnobserveAll: once
// UnobserveAll returns, no callback for a previously observed element can run.
// The callback therefore must not call back into the Tracker.
type Tracker struct {
	mu       sync.Mutex
	observed map[string]*observation
	fired    map[string]bool
	onReveal func(id string)
	log      *slog.Logger
}

// NewTracker returns a tracker that calls onReveal once per element.
func NewTracker(onReveal func(id string), log *slog.Logger) *Tracker {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Tracker{
		observed: make(map[string]*observation),
		fired:    make(map[string]bool),
		onReveal: onReveal,
		log:      log,
	}
}

// Observe registers el. Invalid or unmounted handles are ignored.
func (t *Tracker) Observe(el Element, threshold float64) {
	if !valid(el) {
		t.log.Debug("observe skipped: element not mounted")
		return
	}
	id := el.ID()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.observed[id] = &observation{
		threshold: NormalizeThreshold(threshold),
		fired:     t.fired[id],
	}
}

// Unobserve stops tracking a single element.
func (t *Tracker) Unobserve(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.observed, id)
}

// UnobserveAll drops every registration. Reports that arrive afterwards for
// those elements are ignored.
func (t *Tracker) UnobserveAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.observed) > 0 {
		t.log.Debug("unobserved all elements", slog.Int("count", len(t.observed)))
	}
	t.observed = make(map[string]*observation)
}

// Report delivers the current visible ratio of an element. It returns true
// when this report produced the element's reveal event.
func (t *Tracker) Report(id string, ratio float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	obs, ok := t.observed[id]
	if !ok || obs.fired {
		return false
	}
	if ratio <= 0 || ratio < obs.threshold {
		return false
	}

	obs.fired = true
	t.fired[id] = true
	if t.onReveal != nil {
		t.onReveal(id)
	}
	return true
}

// Observing reports whether id is currently registered.
func (t *Tracker) Observing(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.observed[id]
	return ok
}

// Len returns the number of registered elements.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.observed)
}

// IDs returns the registered element ids in no particular order.
func (t *Tracker) IDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]string, 0, len(t.observed))
	for id := range t.observed {
		ids = append(ids, id)
	}
	return ids
}
