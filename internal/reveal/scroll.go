package reveal

import "sync"

// ScrolledOffset is the scroll position past which the navbar switches to its
// scrolled presentation.
const ScrolledOffset = 50

// ScrollWatcher tracks whether the page has scrolled past ScrolledOffset and
// reports changes of that state.
type ScrollWatcher struct {
	mu       sync.Mutex
	scrolled bool
	onChange func(scrolled bool)
}

func NewScrollWatcher(onChange func(scrolled bool)) *ScrollWatcher {
	return &ScrollWatcher{onChange: onChange}
}

// Update feeds the current scroll offset. onChange runs only when the
// scrolled state flips.
func (w *ScrollWatcher) Update(y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	scrolled := y > ScrolledOffset
	if scrolled == w.scrolled {
		return
	}
	w.scrolled = scrolled
	if w.onChange != nil {
		w.onChange(scrolled)
	}
}

// Scrolled returns the last computed state.
func (w *ScrollWatcher) Scrolled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrolled
}
