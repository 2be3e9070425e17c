package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/daygrid/daygrid/internal/engine"
	"github.com/daygrid/daygrid/internal/grid"
	"github.com/daygrid/daygrid/internal/model"
	"github.com/daygrid/daygrid/internal/snapshot"
)

// CalendarList is the infinite scrolling month calendar. It wraps a
// virtualized widget.List over the engine's row snapshot, feeds the scroll
// stream back into the engine, and lets the engine push incremental
// snapshot updates through the snapshot.ListView methods it implements.
type CalendarList struct {
	engine       *engine.Engine
	localization *Localization

	list      *widget.List
	container *fyne.Container

	showWeekNumbers bool

	// Host callbacks
	userData      UserDataFunc
	headerText    HeaderTextFunc
	cellCreate    CellCreateFunc
	cellUpdate    CellUpdateFunc
	onDaySelected func(model.IndexKey)

	// Scroll monitoring
	lastOffset  float32
	stopMonitor chan struct{}
}

// NewCalendarList creates the calendar centered on the month containing
// center and applies the initial snapshot.
func NewCalendarList(center time.Time, cfg engine.Config, localization *Localization) *CalendarList {
	cl := &CalendarList{localization: localization}

	cl.list = widget.NewList(
		func() int {
			if cl.engine == nil {
				return 0
			}
			return cl.engine.Rows()
		},
		func() fyne.CanvasObject { return cl.createRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { cl.updateRow(id, obj) },
	)

	// The engine applies the initial snapshot through the ListView
	// methods below, so the list must exist first.
	cl.engine = engine.New(center, cfg, cl)

	cl.container = container.NewBorder(nil, nil, nil, nil, cl.list)
	return cl
}

// Container returns the root canvas object to place in a layout.
func (cl *CalendarList) Container() fyne.CanvasObject {
	return cl.container
}

// Engine exposes the calendar engine for event registration and state
// queries.
func (cl *CalendarList) Engine() *engine.Engine {
	return cl.engine
}

// SetCallbacks wires the host hooks: per-day user data, month header text,
// and the selection listener. Nil values keep the defaults.
func (cl *CalendarList) SetCallbacks(userData UserDataFunc, headerText HeaderTextFunc, onDaySelected func(model.IndexKey)) {
	cl.userData = userData
	cl.headerText = headerText
	cl.onDaySelected = onDaySelected
}

// SetCellHooks replaces the default day cell with host-rendered cells.
// Both hooks must be set together.
func (cl *CalendarList) SetCellHooks(create CellCreateFunc, update CellUpdateFunc) {
	cl.cellCreate = create
	cl.cellUpdate = update
}

// SetShowWeekNumbers toggles the ISO week number column.
func (cl *CalendarList) SetShowWeekNumbers(show bool) {
	if cl.showWeekNumbers == show {
		return
	}
	cl.showWeekNumbers = show
	cl.list.Refresh()
}

// ScrollToDate brings the given date into view, recentering the window
// first when the date lies outside it.
func (cl *CalendarList) ScrollToDate(date time.Time) {
	index := cl.engine.ScrollTo(date)
	if index < 0 {
		log.Printf("ScrollToDate: no row for %s", date.Format("2006-01-02"))
		return
	}
	cl.list.ScrollTo(widget.ListItemID(index))
}

// ScrollToToday brings the current day into view and selects it. Today is
// resolved in the engine's location, which may differ from the process zone.
func (cl *CalendarList) ScrollToToday() {
	today := cl.engine.Today()
	if index := cl.engine.ScrollToDay(today); index >= 0 {
		cl.list.ScrollTo(widget.ListItemID(index))
	}
	cl.engine.Select(today)
}

// StartScrollMonitor begins sampling the list offset and feeding the
// expansion controller. Stop with StopScrollMonitor.
func (cl *CalendarList) StartScrollMonitor() {
	if cl.stopMonitor != nil {
		return
	}
	cl.stopMonitor = make(chan struct{})

	go func(stop chan struct{}) {
		ticker := time.NewTicker(ScrollPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fyne.Do(cl.checkScroll)
			}
		}
	}(cl.stopMonitor)
}

// StopScrollMonitor halts scroll sampling.
func (cl *CalendarList) StopScrollMonitor() {
	if cl.stopMonitor == nil {
		return
	}
	close(cl.stopMonitor)
	cl.stopMonitor = nil
}

// checkScroll runs on the UI thread: one O(1) signal per changed offset.
func (cl *CalendarList) checkScroll() {
	offset := cl.list.GetScrollOffset()
	if offset == cl.lastOffset {
		return
	}
	cl.lastOffset = offset
	cl.engine.HandleScroll(offset, cl.ContentExtent(), cl.list.Size().Height)
}

// Refresh implements snapshot.ListView.
func (cl *CalendarList) Refresh() {
	cl.list.Refresh()
}

// RefreshRow implements snapshot.ListView.
func (cl *CalendarList) RefreshRow(index int) {
	cl.list.RefreshItem(widget.ListItemID(index))
}

// Offset implements snapshot.ListView.
func (cl *CalendarList) Offset() float32 {
	return cl.list.GetScrollOffset()
}

// SetOffset implements snapshot.ListView.
func (cl *CalendarList) SetOffset(offset float32) {
	cl.list.ScrollToOffset(offset)
	cl.lastOffset = offset
}

// ContentExtent implements snapshot.ListView. Rows have a uniform pitch,
// so the extent is derived from the row count rather than measured.
func (cl *CalendarList) ContentExtent() float32 {
	if cl.engine == nil {
		return 0
	}
	return float32(cl.engine.Rows()) * ListRowPitch()
}

// calendarRow is the reusable list row template. A single template serves
// both row kinds; update shows either the header label or the week cells.
type calendarRow struct {
	widget.BaseWidget

	header     *widget.Label
	weekNum    *widget.Label
	weekNumCol fyne.CanvasObject
	cells      []fyne.CanvasObject
	weekBox    fyne.CanvasObject
	content    *fyne.Container
}

func (cl *CalendarList) createRow() fyne.CanvasObject {
	row := &calendarRow{}

	row.header = widget.NewLabel("")
	row.header.TextStyle = fyne.TextStyle{Bold: true}

	row.weekNum = widget.NewLabel("")

	// Fixed-width column so rows align whether the label shows W5 or W48.
	row.weekNumCol = container.NewGridWrap(
		fyne.NewSize(WeekNumberWidth, CalendarRowHeight), row.weekNum)

	row.cells = make([]fyne.CanvasObject, grid.DaysPerWeek)
	for i := range row.cells {
		if cl.cellCreate != nil {
			row.cells[i] = cl.cellCreate()
		} else {
			row.cells[i] = newDayCell(cl.selectDay)
		}
	}

	cellGrid := container.NewGridWithColumns(grid.DaysPerWeek, row.cells...)
	row.weekBox = container.NewBorder(nil, nil, row.weekNumCol, nil, cellGrid)
	row.content = container.NewStack(row.header, row.weekBox)

	row.ExtendBaseWidget(row)
	return row
}

// CreateRenderer implements fyne.Widget.
func (r *calendarRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

// MinSize keeps all rows at the uniform list pitch.
func (r *calendarRow) MinSize() fyne.Size {
	min := r.content.MinSize()
	min.Height = CalendarRowHeight
	return min
}

func (cl *CalendarList) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*calendarRow)
	if !ok {
		return
	}
	data, ok := cl.engine.Row(int(id))
	if !ok {
		return
	}

	if data.Kind == snapshot.RowHeader {
		row.header.SetText(cl.headerTitle(data.Section))
		row.header.Show()
		row.weekBox.Hide()
		return
	}

	row.header.Hide()
	row.weekBox.Show()

	if cl.showWeekNumbers && len(data.Days) > 0 {
		_, week := data.Days[0].Key.Time(cl.engine.Location()).ISOWeek()
		row.weekNum.SetText(fmt.Sprintf(WeekNumberFmt, week))
		row.weekNumCol.Show()
	} else {
		row.weekNumCol.Hide()
	}

	today := cl.engine.Today()
	selected, hasSelected := cl.engine.Selected()

	for i, item := range data.Days {
		if i >= len(row.cells) {
			break
		}
		isToday := !item.Placeholder && item.Key == today
		isSelected := hasSelected && !item.Placeholder && item.Key == selected

		var userData any
		if cl.userData != nil {
			userData = cl.userData(item.Key)
		}

		if cl.cellUpdate != nil {
			cl.cellUpdate(row.cells[i], item.Key, userData, isToday, isSelected, item.Placeholder)
			continue
		}
		if cell, ok := row.cells[i].(*dayCell); ok {
			cell.SetDay(item.Key, isToday, isSelected, item.Placeholder, userData != nil)
		}
	}
}

// headerTitle resolves the month header text, preferring the host override.
func (cl *CalendarList) headerTitle(section model.SectionID) string {
	if cl.headerText != nil {
		return cl.headerText(section)
	}
	return cl.localization.MonthTitle(section)
}

// selectDay is the default cell tap handler.
func (cl *CalendarList) selectDay(key model.IndexKey) {
	cl.engine.Select(key)
	if cl.onDaySelected != nil {
		cl.onDaySelected(key)
	}
}
