package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/daygrid/daygrid/internal/engine"
	"github.com/daygrid/daygrid/internal/model"
	"github.com/daygrid/daygrid/internal/snapshot"
	"github.com/daygrid/daygrid/internal/window"
)

func newTestCalendarList(t *testing.T) *CalendarList {
	t.Helper()
	test.NewApp()

	cfg := engine.DefaultEngineConfig()
	cfg.Grid.Location = time.UTC
	cfg.Controller.Cooldown = time.Hour // keep expansion out of unrelated tests

	center := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
	return NewCalendarList(center, cfg, NewLocalization())
}

func TestCalendarListInitialSnapshot(t *testing.T) {
	cl := newTestCalendarList(t)

	rows := cl.Engine().Rows()
	if rows == 0 {
		t.Fatal("Expected a non-empty initial snapshot")
	}

	row, ok := cl.Engine().Row(0)
	if !ok {
		t.Fatal("Expected row 0 to exist")
	}
	if row.Kind != snapshot.RowHeader {
		t.Errorf("Expected first row to be a month header, got kind %d", row.Kind)
	}
	if got := row.Section.String(); got != "2022-12" {
		t.Errorf("Expected first section 2022-12, got %s", got)
	}

	if got, want := cl.ContentExtent(), float32(rows)*ListRowPitch(); got != want {
		t.Errorf("Expected content extent %.1f, got %.1f", want, got)
	}
}

func TestCalendarListHeaderRowBinding(t *testing.T) {
	cl := newTestCalendarList(t)

	obj := cl.createRow()
	row, ok := obj.(*calendarRow)
	if !ok {
		t.Fatalf("Expected *calendarRow template, got %T", obj)
	}

	cl.updateRow(0, row)

	if !row.header.Visible() {
		t.Error("Header label should be visible on a header row")
	}
	if row.weekBox.Visible() {
		t.Error("Week cells should be hidden on a header row")
	}
	if got := row.header.Text; got != "December 2022" {
		t.Errorf("Expected header 'December 2022', got %q", got)
	}
}

func TestCalendarListWeekRowBinding(t *testing.T) {
	cl := newTestCalendarList(t)

	row := cl.createRow().(*calendarRow)
	cl.updateRow(1, row)

	if row.header.Visible() {
		t.Error("Header label should be hidden on a week row")
	}
	if !row.weekBox.Visible() {
		t.Error("Week cells should be visible on a week row")
	}

	// December 2022 starts on Thursday, so the Monday-first grid leads
	// with three November placeholders.
	cell, ok := row.cells[0].(*dayCell)
	if !ok {
		t.Fatalf("Expected default *dayCell, got %T", row.cells[0])
	}
	want := model.IndexKey{Year: 2022, Month: time.November, Day: 28}
	if cell.key != want {
		t.Errorf("Expected first cell %v, got %v", want, cell.key)
	}
	if !cell.placeholder {
		t.Error("Expected first cell to be a placeholder")
	}
	if !cell.Disabled() {
		t.Error("Placeholder cells should be disabled")
	}

	real, ok := row.cells[3].(*dayCell)
	if !ok {
		t.Fatalf("Expected default *dayCell, got %T", row.cells[3])
	}
	if real.placeholder {
		t.Error("December 1 cell should not be a placeholder")
	}
	if real.key.Day != 1 {
		t.Errorf("Expected day 1 in cell 3, got %d", real.key.Day)
	}
}

func TestCalendarListWeekNumbers(t *testing.T) {
	cl := newTestCalendarList(t)
	cl.SetShowWeekNumbers(true)

	row := cl.createRow().(*calendarRow)
	cl.updateRow(1, row)

	if !row.weekNumCol.Visible() {
		t.Fatal("Week number column should be visible when enabled")
	}
	// The grid week starting 2022-11-28 is ISO week 48.
	if got := row.weekNum.Text; got != "W48" {
		t.Errorf("Expected week number W48, got %q", got)
	}
	if got := row.weekNumCol.MinSize().Width; got != WeekNumberWidth {
		t.Errorf("Expected week number column width %.0f, got %.0f", WeekNumberWidth, got)
	}

	cl.SetShowWeekNumbers(false)
	cl.updateRow(1, row)
	if row.weekNumCol.Visible() {
		t.Error("Week number column should be hidden when disabled")
	}
}

func TestCalendarListSelection(t *testing.T) {
	cl := newTestCalendarList(t)

	var notified model.IndexKey
	cl.SetCallbacks(nil, nil, func(key model.IndexKey) { notified = key })

	day := model.IndexKey{Year: 2025, Month: time.December, Day: 24}
	cl.selectDay(day)

	selected, ok := cl.Engine().Selected()
	if !ok || selected != day {
		t.Errorf("Expected selection %v, got %v (ok=%v)", day, selected, ok)
	}
	if notified != day {
		t.Errorf("Expected selection callback with %v, got %v", day, notified)
	}
}

func TestCalendarListCustomCells(t *testing.T) {
	cl := newTestCalendarList(t)

	var updated []model.IndexKey
	var sawData bool
	cl.SetCellHooks(
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(obj fyne.CanvasObject, key model.IndexKey, data any, isToday, isSelected, isPlaceholder bool) {
			updated = append(updated, key)
			if data != nil {
				sawData = true
			}
		},
	)
	cl.SetCallbacks(func(key model.IndexKey) any { return "marker" }, nil, nil)

	row := cl.createRow().(*calendarRow)
	if _, isDefault := row.cells[0].(*dayCell); isDefault {
		t.Fatal("Expected custom cells from the create hook")
	}

	cl.updateRow(1, row)

	if len(updated) != 7 {
		t.Fatalf("Expected 7 cell updates, got %d", len(updated))
	}
	if !sawData {
		t.Error("Expected user data to reach the update hook")
	}
}

func TestCalendarListScrollToDateRecenters(t *testing.T) {
	cl := newTestCalendarList(t)

	win := test.NewWindow(cl.Container())
	defer win.Close()
	win.Resize(fyne.NewSize(400, 600))

	cl.ScrollToDate(time.Date(2010, 3, 10, 0, 0, 0, 0, time.UTC))

	start, _ := cl.Engine().Bounds()
	wantStart := time.Date(2007, 3, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("Expected recentered window start %v, got %v", wantStart, start)
	}
}

func TestCalendarListScrollMonitorFeedsController(t *testing.T) {
	test.NewApp()

	cfg := engine.DefaultEngineConfig()
	cfg.Grid.Location = time.UTC
	cfg.Controller.Cooldown = time.Hour

	center := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
	cl := NewCalendarList(center, cfg, NewLocalization())

	win := test.NewWindow(cl.Container())
	defer win.Close()
	win.Resize(fyne.NewSize(400, 600))

	expanded := make(chan window.Direction, 1)
	cl.Engine().OnWindowExpanded(func(dir window.Direction, _ time.Time) {
		select {
		case expanded <- dir:
		default:
		}
	})

	before := cl.Engine().Rows()
	// A near-top offset is within the threshold for any sane viewport.
	cl.Engine().HandleScroll(0, cl.ContentExtent(), 600)

	select {
	case dir := <-expanded:
		if dir != window.DirectionBackward {
			t.Errorf("Expected backward expansion, got %s", dir)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected a window expansion event")
	}
	if cl.Engine().Rows() <= before {
		t.Error("Expected more rows after backward expansion")
	}
}

// distantZone returns a fixed zone whose calendar day currently differs
// from the process zone's. UTC+14 and UTC-12 are 26 hours apart, so at
// least one of them is always on another day than local time.
func distantZone() *time.Location {
	loc := time.FixedZone("UTC+14", 14*60*60)
	if time.Now().In(loc).Day() == time.Now().Day() {
		loc = time.FixedZone("UTC-12", -12*60*60)
	}
	return loc
}

func TestCalendarListScrollToTodayDistantZone(t *testing.T) {
	test.NewApp()

	loc := distantZone()
	cfg := engine.DefaultEngineConfig()
	cfg.Grid.Location = loc
	cfg.Controller.Cooldown = time.Hour

	cl := NewCalendarList(time.Now().In(loc), cfg, NewLocalization())

	win := test.NewWindow(cl.Container())
	defer win.Close()
	win.Resize(fyne.NewSize(400, 600))

	today := cl.Engine().Today()
	if today == model.Today(nil) {
		t.Fatal("Test zone should disagree with the process zone on the day")
	}

	cl.ScrollToToday()

	selected, ok := cl.Engine().Selected()
	if !ok || selected != today {
		t.Fatalf("Expected selection %v, got %v (ok=%v)", today, selected, ok)
	}

	index := cl.Engine().ScrollToDay(today)
	if index < 0 {
		t.Fatal("Expected a row for today in the engine's zone")
	}
	row, _ := cl.Engine().Row(index)
	found := false
	for _, item := range row.Days {
		if item.Key == today && !item.Placeholder {
			found = true
		}
	}
	if !found {
		t.Errorf("Targeted row does not present %v as a real day", today)
	}
}

func TestCalendarListContentExtentMatchesRenderedList(t *testing.T) {
	cl := newTestCalendarList(t)

	win := test.NewWindow(cl.Container())
	defer win.Close()
	win.Resize(fyne.NewSize(400, 600))

	// Scrolling far past the end clamps to the real content height, which
	// exposes the pitch the list actually laid out with.
	cl.list.ScrollToOffset(1e9)
	measured := cl.list.GetScrollOffset() + cl.list.Size().Height

	want := cl.ContentExtent()
	diff := measured - want
	if diff < 0 {
		diff = -diff
	}
	// The final row has no trailing separator.
	if diff > ListRowPitch()-CalendarRowHeight+0.5 {
		t.Errorf("Derived extent %.1f drifts from rendered extent %.1f", want, measured)
	}
}
