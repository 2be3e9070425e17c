package snapshot

import (
	"log"

	"github.com/pmezard/go-difflib/difflib"
)

// ListView is the slice of the host's virtualized list the synchronizer
// needs: refreshing, reading and writing the scroll offset, and measuring the
// total content extent. The Fyne layer implements it; tests use a fake.
type ListView interface {
	// Refresh re-materializes the list against the current row model.
	Refresh()

	// RefreshRow redraws a single row without touching its neighbors.
	RefreshRow(index int)

	// Offset returns the current scroll offset from the top of the content.
	Offset() float32

	// SetOffset moves the scroll position to the given offset.
	SetOffset(offset float32)

	// ContentExtent returns the total height of the materialized content.
	ContentExtent() float32
}

// Synchronizer reconciles successive snapshots against the host list. It
// owns the applied row model the view renders from; the view's length and
// content callbacks read through Rows/Row.
type Synchronizer struct {
	view    ListView
	applied Snapshot
}

// NewSynchronizer creates a synchronizer bound to the host view.
func NewSynchronizer(view ListView) *Synchronizer {
	return &Synchronizer{view: view}
}

// Rows returns the number of currently applied rows.
func (s *Synchronizer) Rows() int {
	return len(s.applied.Rows)
}

// Row returns the applied row at the given index.
func (s *Synchronizer) Row(index int) (Row, bool) {
	if index < 0 || index >= len(s.applied.Rows) {
		return Row{}, false
	}
	return s.applied.Rows[index], true
}

// Applied returns the currently applied snapshot.
func (s *Synchronizer) Applied() Snapshot {
	return s.applied
}

// Apply reconciles the next snapshot against the previously applied one.
// Window expansion only inserts rows, so the diff is insert-only; when rows
// are inserted above the already materialized content the scroll offset is
// compensated by the growth in content extent, keeping the user's visual
// position unchanged. Returns the number of inserted rows.
func (s *Synchronizer) Apply(next Snapshot) int {
	prevIDs := s.applied.IDs()
	nextIDs := next.IDs()

	inserted := 0
	insertedAbove := false
	rewritten := false

	matcher := difflib.NewMatcher(prevIDs, nextIDs)
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
		case 'i':
			inserted += op.J2 - op.J1
			if op.I1 == 0 && len(prevIDs) > 0 {
				insertedAbove = true
			}
		default:
			// Replacements and deletions only occur across a recenter,
			// where the whole model is rebuilt and the caller re-anchors
			// the scroll position itself.
			rewritten = true
		}
	}

	oldOffset := s.view.Offset()
	oldExtent := s.view.ContentExtent()

	s.applied = next
	s.view.Refresh()

	if insertedAbove && !rewritten {
		delta := s.view.ContentExtent() - oldExtent
		if delta > 0 {
			s.view.SetOffset(oldOffset + delta)
		}
	}

	if inserted > 0 {
		log.Printf("Snapshot applied: %d rows (+%d, above=%v)", len(next.Rows), inserted, insertedAbove)
	}
	return inserted
}

// Reconfigure refreshes only the rows with the given IDs, leaving the row
// identity list untouched. Used for selection highlight changes, where
// regenerating the whole snapshot would be wasted work.
func (s *Synchronizer) Reconfigure(rowIDs []string) {
	for _, id := range rowIDs {
		if index := s.applied.IndexOf(id); index >= 0 {
			s.view.RefreshRow(index)
		}
	}
}

// Invalidate drops the applied model without touching the view. Called on
// recenter just before the fresh snapshot is applied, so the diff machinery
// does not try to preserve rows from a discarded window.
func (s *Synchronizer) Invalidate() {
	s.applied = Snapshot{}
}
