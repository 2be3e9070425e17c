// Package engine composes the calendar core: the date window, the grid
// cache, the scroll expansion controller, and the snapshot synchronizer.
// It is the single logical owner of all mutable calendar state and exposes
// the operations the host view drives: scroll signals, selection, and
// scroll-to-date with recentering. The engine is intended to be driven from
// one sequential context (the UI update thread); the expansion single-flight
// guard is the only internal locking.
package engine
