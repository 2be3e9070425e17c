package snapshot

import (
	"testing"
	"time"

	"github.com/daygrid/daygrid/internal/grid"
	"github.com/daygrid/daygrid/internal/model"
)

const fakeRowHeight float32 = 40

// fakeListView simulates the virtualized list: the content extent is the
// applied row count times a fixed row height.
type fakeListView struct {
	sync         *Synchronizer
	offset       float32
	refreshes    int
	rowRefreshes []int
}

func (v *fakeListView) Refresh()             { v.refreshes++ }
func (v *fakeListView) RefreshRow(index int) { v.rowRefreshes = append(v.rowRefreshes, index) }
func (v *fakeListView) Offset() float32      { return v.offset }
func (v *fakeListView) SetOffset(o float32)  { v.offset = o }
func (v *fakeListView) ContentExtent() float32 {
	return float32(v.sync.Rows()) * fakeRowHeight
}

func newTestSync() (*Synchronizer, *fakeListView, *grid.Cache) {
	view := &fakeListView{}
	sync := NewSynchronizer(view)
	view.sync = sync
	cache := grid.NewCache(grid.NewGenerator(grid.Config{FirstWeekday: time.Monday, Location: time.UTC}))
	return sync, view, cache
}

func sectionsRange(first model.SectionID, count int) []model.SectionID {
	sections := make([]model.SectionID, count)
	for i := range sections {
		sections[i] = first
		first = first.Next()
	}
	return sections
}

func TestBuild_RowStructure(t *testing.T) {
	_, _, cache := newTestSync()
	snap := Build([]model.SectionID{{Year: 2025, Month: time.December}}, cache)

	// December 2025: header + 5 week rows.
	if len(snap.Rows) != 6 {
		t.Fatalf("Expected 6 rows, got %d", len(snap.Rows))
	}
	if snap.Rows[0].Kind != RowHeader || snap.Rows[0].ID != "h:2025-12" {
		t.Errorf("First row should be the month header, got %+v", snap.Rows[0])
	}
	for i := 1; i < len(snap.Rows); i++ {
		row := snap.Rows[i]
		if row.Kind != RowWeek {
			t.Errorf("Row %d should be a week row", i)
		}
		if len(row.Days) != grid.DaysPerWeek {
			t.Errorf("Row %d has %d days, expected 7", i, len(row.Days))
		}
	}
	if snap.Rows[1].ID != "w:2025-12:0" {
		t.Errorf("Week row ID = %s, expected w:2025-12:0", snap.Rows[1].ID)
	}
}

func TestApply_InitialSnapshot(t *testing.T) {
	sync, view, cache := newTestSync()
	snap := Build(sectionsRange(model.SectionID{Year: 2025, Month: time.May}, 3), cache)

	inserted := sync.Apply(snap)

	if inserted != len(snap.Rows) {
		t.Errorf("Inserted = %d, expected all %d rows", inserted, len(snap.Rows))
	}
	if view.refreshes != 1 {
		t.Errorf("Expected one view refresh, got %d", view.refreshes)
	}
	if view.offset != 0 {
		t.Errorf("Initial apply must not move the offset, got %f", view.offset)
	}
}

func TestApply_ForwardExpansionKeepsOffset(t *testing.T) {
	sync, view, cache := newTestSync()
	first := model.SectionID{Year: 2025, Month: time.May}

	sync.Apply(Build(sectionsRange(first, 3), cache))
	view.offset = 200

	before := sync.Rows()
	inserted := sync.Apply(Build(sectionsRange(first, 5), cache))

	if inserted != sync.Rows()-before {
		t.Errorf("Inserted = %d, expected %d", inserted, sync.Rows()-before)
	}
	if view.offset != 200 {
		t.Errorf("Forward expansion must not compensate the offset, got %f", view.offset)
	}
}

func TestApply_BackwardExpansionCompensatesOffset(t *testing.T) {
	sync, view, cache := newTestSync()
	june := model.SectionID{Year: 2025, Month: time.June}

	sync.Apply(Build(sectionsRange(june, 3), cache))
	view.offset = 120

	// Anchor: the row currently at the visual top of the viewport.
	anchorIndex := int(view.offset / fakeRowHeight)
	anchor, _ := sync.Row(anchorIndex)
	anchorTop := float32(anchorIndex)*fakeRowHeight - view.offset

	// Expand two months backward: the same run now starts at 2025-04.
	before := sync.Rows()
	extentBefore := view.ContentExtent()
	sync.Apply(Build(sectionsRange(model.SectionID{Year: 2025, Month: time.April}, 5), cache))

	added := sync.Rows() - before
	expectedDelta := float32(added) * fakeRowHeight
	if got := view.ContentExtent() - extentBefore; got != expectedDelta {
		t.Fatalf("Content grew by %f, expected %f", got, expectedDelta)
	}
	if view.offset != 120+expectedDelta {
		t.Errorf("Offset = %f, expected %f", view.offset, 120+expectedDelta)
	}

	// Offset-compensation law: the previously topmost row is still at the
	// same visual position.
	newIndex := sync.Applied().IndexOf(anchor.ID)
	if newIndex < 0 {
		t.Fatal("Anchor row should survive the expansion")
	}
	newTop := float32(newIndex)*fakeRowHeight - view.offset
	if newTop != anchorTop {
		t.Errorf("Anchor row moved from %f to %f", anchorTop, newTop)
	}
}

func TestApply_ExpansionIsInsertOnly(t *testing.T) {
	sync, _, cache := newTestSync()
	june := model.SectionID{Year: 2025, Month: time.June}

	sync.Apply(Build(sectionsRange(june, 2), cache))
	prev := sync.Applied().IDs()

	sync.Apply(Build(sectionsRange(model.SectionID{Year: 2025, Month: time.April}, 6), cache))
	next := sync.Applied().IDs()

	// Every previously applied row is still present, in order.
	j := 0
	for _, id := range next {
		if j < len(prev) && id == prev[j] {
			j++
		}
	}
	if j != len(prev) {
		t.Errorf("Expansion disturbed existing rows: matched %d of %d", j, len(prev))
	}
}

func TestApply_RecenterDoesNotCompensate(t *testing.T) {
	sync, view, cache := newTestSync()

	sync.Apply(Build(sectionsRange(model.SectionID{Year: 2025, Month: time.June}, 3), cache))
	view.offset = 300

	// Recenter: applied model is invalidated, then a disjoint snapshot
	// arrives. No offset compensation applies; the caller re-anchors.
	sync.Invalidate()
	sync.Apply(Build(sectionsRange(model.SectionID{Year: 2010, Month: time.January}, 3), cache))

	if view.offset != 300 {
		t.Errorf("Recenter apply must not adjust the offset, got %f", view.offset)
	}
}

func TestReconfigure(t *testing.T) {
	sync, view, cache := newTestSync()
	june := model.SectionID{Year: 2025, Month: time.June}
	sync.Apply(Build([]model.SectionID{june}, cache))

	sync.Reconfigure([]string{WeekRowID(june, 2), "w:2099-01:0", HeaderRowID(june)})

	if len(view.rowRefreshes) != 2 {
		t.Fatalf("Expected 2 row refreshes, got %v", view.rowRefreshes)
	}
	if view.rowRefreshes[0] != 3 {
		t.Errorf("Week row 2 should be list index 3, got %d", view.rowRefreshes[0])
	}
	if view.rowRefreshes[1] != 0 {
		t.Errorf("Header should be list index 0, got %d", view.rowRefreshes[1])
	}
}

func TestRowsWithDay(t *testing.T) {
	_, _, cache := newTestSync()
	snap := Build(sectionsRange(model.SectionID{Year: 2025, Month: time.November}, 2), cache)

	// 2025-12-01 is a real day of December and not part of November's grid:
	// November 2025 ends on a Sunday, so its grid has no trailing padding.
	indices := snap.RowsWithDay(model.IndexKey{Year: 2025, Month: time.December, Day: 1})
	if len(indices) != 1 {
		t.Fatalf("Expected 1 row containing 2025-12-01, got %d", len(indices))
	}

	// 2025-10-27 leads November's grid as a placeholder only.
	indices = snap.RowsWithDay(model.IndexKey{Year: 2025, Month: time.October, Day: 27})
	if len(indices) != 1 {
		t.Errorf("Expected 1 row containing the leading placeholder, got %d", len(indices))
	}
}
