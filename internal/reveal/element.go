package reveal

import "sync/atomic"

// DefaultThreshold is the visible fraction that triggers a reveal when the
// caller does not ask for a specific one.
const DefaultThreshold = 0.1

// Element is an opaque handle to a renderable region of the page.
type Element interface {
	ID() string
	// Mounted reports whether the region is still part of the page. Handles
	// can be unmounted asynchronously while they are being registered.
	Mounted() bool
}

// Region is the Element used by the platforms in this repository. It is
// mounted when created.
type Region struct {
	id      string
	mounted atomic.Bool
}

// NewRegion returns a mounted region with the given id.
func NewRegion(id string) *Region {
	r := &Region{id: id}
	r.mounted.Store(true)
	return r
}

func (r *Region) ID() string { return r.id }

func (r *Region) Mounted() bool { return r != nil && r.mounted.Load() }

// Unmount detaches the region. Later Observe calls with it are ignored.
func (r *Region) Unmount() { r.mounted.Store(false) }

// Target is an element tagged for reveal together with its threshold.
type Target struct {
	Element   Element
	Threshold float64
}

// Section is a named content region of the single-page layout.
type Section struct {
	Name   string
	Anchor Element
	Reveal []Target
}

// NormalizeThreshold maps values outside (0, 1] to DefaultThreshold.
func NormalizeThreshold(t float64) float64 {
	if t <= 0 || t > 1 {
		return DefaultThreshold
	}
	return t
}

func valid(el Element) bool {
	if el == nil {
		return false
	}
	if r, ok := el.(*Region); ok && r == nil {
		return false
	}
	return el.ID() != "" && el.Mounted()
}
