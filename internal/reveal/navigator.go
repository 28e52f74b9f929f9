package reveal

import (
	"log/slog"
	"strings"
	"sync"
)

// ScrollBehavior mirrors the behavior option of the platform scroll call.
type ScrollBehavior string

const ScrollSmooth ScrollBehavior = "smooth"

// ScrollRequest asks the platform to bring an element into view.
type ScrollRequest struct {
	TargetID string         `json:"targetId"`
	Behavior ScrollBehavior `json:"behavior"`
}

// Scroller performs scroll requests. ScrollTo must return without waiting for
// the animation.
type Scroller interface {
	ScrollTo(req ScrollRequest)
}

// Overlay is a transient navigation surface such as the mobile menu drawer.
type Overlay interface {
	Close()
}

// ScrollFunc adapts a function to Scroller.
type ScrollFunc func(req ScrollRequest)

func (f ScrollFunc) ScrollTo(req ScrollRequest) { f(req) }

// OverlayFunc adapts a function to Overlay.
type OverlayFunc func()

func (f OverlayFunc) Close() { f() }

// Navigator resolves section names and requests smooth scrolls to them.
type Navigator struct {
	mu       sync.RWMutex
	targets  map[string]string
	scroller Scroller
	overlay  Overlay
	onGoTo   func(section string, found bool)
	log      *slog.Logger
}

// NewNavigator returns a navigator with no targets. overlay may be nil.
func NewNavigator(scroller Scroller, overlay Overlay, log *slog.Logger) *Navigator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Navigator{
		targets:  make(map[string]string),
		scroller: scroller,
		overlay:  overlay,
		log:      log,
	}
}

// OnGoTo installs an observer called after every GoTo.
func (n *Navigator) OnGoTo(fn func(section string, found bool)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onGoTo = fn
}

// SetTargets replaces the section name to element id mapping.
func (n *Navigator) SetTargets(targets map[string]string) {
	m := make(map[string]string, len(targets))
	for name, id := range targets {
		m[SectionName(name)] = id
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = m
}

// Clear drops every target. GoTo becomes a no-op until SetTargets runs again.
func (n *Navigator) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = make(map[string]string)
}

// Target returns the element id registered for section.
func (n *Navigator) Target(section string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	id, ok := n.targets[SectionName(section)]
	return id, ok
}

// GoTo closes the overlay and then, if section is known, issues a smooth
// scroll request for it. Unknown sections are ignored.
func (n *Navigator) GoTo(section string) bool {
	n.mu.RLock()
	id, ok := n.targets[SectionName(section)]
	onGoTo := n.onGoTo
	n.mu.RUnlock()

	// The overlay goes first so it never covers the scroll target.
	if n.overlay != nil {
		n.overlay.Close()
	}

	if ok && n.scroller != nil {
		n.scroller.ScrollTo(ScrollRequest{TargetID: id, Behavior: ScrollSmooth})
	} else if !ok {
		n.log.Debug("navigation target not mounted", slog.String("section", section))
	}

	if onGoTo != nil {
		onGoTo(SectionName(section), ok)
	}
	return ok
}

// SectionName strips the "#" of an in-page href and surrounding space.
func SectionName(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "#")
}
