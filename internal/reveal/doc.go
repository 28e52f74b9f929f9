// Package reveal implements the scroll-reveal and section navigation
// controller shared by every platform the site is rendered on.
//
// The package is platform neutral. A platform (the browser live bridge, the
// terminal preview) owns two primitives and plugs them in:
//
//   - a visibility source that measures how much of each element is inside the
//     viewport and calls Tracker.Report with the ratio;
//   - a Scroller that performs the smooth scroll for a ScrollRequest, plus an
//     optional Overlay (mobile menu drawer) that Navigator closes first.
//
// Reveal is one-shot: once an element has been reported visible above its
// threshold, Store.IsRevealed stays true for the rest of the page session and
// no further reveal event is emitted for it, whatever happens to the scroll
// position afterwards.
//
// Shell wires the pieces to the page lifecycle:
//
//	shell := reveal.NewShell(tracker, nav, log)
//	unmount := shell.Mount(sections)
//	defer unmount()
//
// Nothing in this package returns an error. Missing sections, stale handles
// and late visibility reports are no-ops by contract.
package reveal
