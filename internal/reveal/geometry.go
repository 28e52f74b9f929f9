package reveal

import "sync"

// Rect is an element's extent along the scroll axis.
type Rect struct {
	Y      int
	Height int
}

// Viewport is the visible window along the scroll axis.
type Viewport struct {
	Offset int
	Height int
}

// VisibleRatio returns the fraction of r that lies inside v, in [0, 1].
func VisibleRatio(r Rect, v Viewport) float64 {
	if r.Height <= 0 || v.Height <= 0 {
		return 0
	}
	top := max(r.Y, v.Offset)
	bottom := min(r.Y+r.Height, v.Offset+v.Height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(r.Height)
}

// Poller is a visibility source that polls element geometry instead of relying
// on a native intersection API. Layout changes are pushed with Place; each
// Poll reports the ratio of every placed element to the tracker.
type Poller struct {
	mu      sync.Mutex
	tracker *Tracker
	rects   map[string]Rect
}

func NewPoller(tracker *Tracker) *Poller {
	return &Poller{tracker: tracker, rects: make(map[string]Rect)}
}

// Place records the current rect of an element.
func (p *Poller) Place(id string, r Rect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rects[id] = r
}

// Rect returns the last placed rect of id.
func (p *Poller) Rect(id string) (Rect, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.rects[id]
	return r, ok
}

// Reset forgets every placed rect.
func (p *Poller) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rects = make(map[string]Rect)
}

// Poll reports the visible ratio of every placed element and returns the ids
// revealed by this poll.
func (p *Poller) Poll(v Viewport) []string {
	p.mu.Lock()
	ratios := make(map[string]float64, len(p.rects))
	for id, r := range p.rects {
		ratios[id] = VisibleRatio(r, v)
	}
	p.mu.Unlock()

	var revealed []string
	for id, ratio := range ratios {
		if p.tracker.Report(id, ratio) {
			revealed = append(revealed, id)
		}
	}
	return revealed
}
