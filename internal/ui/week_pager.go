package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/daygrid/daygrid/internal/grid"
	"github.com/daygrid/daygrid/internal/model"
	"github.com/daygrid/daygrid/internal/period"
)

// WeekPager is the bounded week view: one week of day cells at a time,
// paged with buttons or horizontal swipes over a fixed date interval.
// Paging moves the selection to the focus day of the new week, the first
// day when paging forward and the last day when paging backward.
type WeekPager struct {
	timeline     *period.Timeline
	localization *Localization

	current  model.Period
	selected model.IndexKey

	title     *widget.Label
	prevBtn   *widget.Button
	nextBtn   *widget.Button
	cells     []*dayCell
	container *fyne.Container

	userData      UserDataFunc
	onDaySelected func(model.IndexKey)
}

// NewWeekPager creates a pager over the given timeline, opening on the
// week containing start. The timeline must be non-empty.
func NewWeekPager(timeline *period.Timeline, start model.IndexKey, localization *Localization) *WeekPager {
	wp := &WeekPager{
		timeline:     timeline,
		localization: localization,
	}

	week, ok := timeline.WeekContaining(start)
	if !ok {
		weeks := timeline.Weeks()
		if len(weeks) > 0 {
			week = weeks[0]
		}
	}
	wp.current = week
	wp.selected = start
	if !week.Contains(start) {
		wp.selected = week.First()
	}

	wp.title = widget.NewLabel("")
	wp.title.TextStyle = fyne.TextStyle{Bold: true}
	wp.title.Alignment = fyne.TextAlignCenter

	wp.prevBtn = widget.NewButton(IconPrev, wp.Prev)
	wp.nextBtn = widget.NewButton(IconNext, wp.Next)

	wp.cells = make([]*dayCell, grid.DaysPerWeek)
	cellObjects := make([]fyne.CanvasObject, grid.DaysPerWeek)
	for i := range wp.cells {
		wp.cells[i] = newDayCell(wp.selectDay)
		cellObjects[i] = wp.cells[i]
	}
	week7 := container.NewGridWithColumns(grid.DaysPerWeek, cellObjects...)

	gestures := NewGestureHandler(wp.handleGesture)
	touchArea := newTouchRegion(week7, gestures)

	// Fixed-width pager buttons sized for touch targets.
	buttonSize := fyne.NewSize(PagerButtonWidth, MinTouchTargetSize)
	prevCol := container.NewGridWrap(buttonSize, wp.prevBtn)
	nextCol := container.NewGridWrap(buttonSize, wp.nextBtn)

	header := container.NewBorder(nil, nil, prevCol, nextCol, wp.title)
	wp.container = container.NewBorder(header, nil, nil, nil, touchArea)

	wp.refresh()
	return wp
}

// Container returns the root canvas object to place in a layout.
func (wp *WeekPager) Container() fyne.CanvasObject {
	return wp.container
}

// SetCallbacks wires the host hooks.
func (wp *WeekPager) SetCallbacks(userData UserDataFunc, onDaySelected func(model.IndexKey)) {
	wp.userData = userData
	wp.onDaySelected = onDaySelected
}

// Current returns the week currently shown.
func (wp *WeekPager) Current() model.Period {
	return wp.current
}

// Selected returns the selected day.
func (wp *WeekPager) Selected() model.IndexKey {
	return wp.selected
}

// Select moves the selection to a day of the current week. Days outside
// the current week are ignored.
func (wp *WeekPager) Select(key model.IndexKey) {
	if !wp.current.Contains(key) {
		return
	}
	wp.selectDay(key)
}

// Next pages to the following week when one exists.
func (wp *WeekPager) Next() {
	next, ok := wp.timeline.WeekAfter(wp.current.ID)
	if !ok {
		return
	}
	wp.settle(next, true)
}

// Prev pages to the preceding week when one exists.
func (wp *WeekPager) Prev() {
	prev, ok := wp.timeline.WeekBefore(wp.current.ID)
	if !ok {
		return
	}
	wp.settle(prev, false)
}

// settle applies a page turn: the new week becomes current and the
// selection lands on its focus day for the paging direction.
func (wp *WeekPager) settle(week model.Period, forward bool) {
	wp.current = week
	wp.selected = period.FocusDay(week, forward)
	wp.refresh()
	if wp.onDaySelected != nil {
		wp.onDaySelected(wp.selected)
	}
}

func (wp *WeekPager) handleGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		fyne.Do(wp.Next)
	case GestureSwipeRight:
		fyne.Do(wp.Prev)
	}
}

func (wp *WeekPager) selectDay(key model.IndexKey) {
	wp.selected = key
	wp.refresh()
	if wp.onDaySelected != nil {
		wp.onDaySelected(key)
	}
}

// refresh rebinds the title, cells and pager buttons to the current week.
func (wp *WeekPager) refresh() {
	wp.title.SetText(wp.weekTitle())

	today := model.Today(wp.timeline.Location())
	for i, cell := range wp.cells {
		if i >= len(wp.current.Days) {
			cell.Hide()
			continue
		}
		cell.Show()
		key := wp.current.Days[i]

		var userData any
		if wp.userData != nil {
			userData = wp.userData(key)
		}
		cell.SetDay(key, key == today, key == wp.selected, false, userData != nil)
	}

	if _, ok := wp.timeline.WeekBefore(wp.current.ID); ok {
		wp.prevBtn.Enable()
	} else {
		wp.prevBtn.Disable()
	}
	if _, ok := wp.timeline.WeekAfter(wp.current.ID); ok {
		wp.nextBtn.Enable()
	} else {
		wp.nextBtn.Disable()
	}
}

// weekTitle renders "Month Year" for the week, spanning both months when
// the week crosses a boundary.
func (wp *WeekPager) weekTitle() string {
	first := wp.current.First()
	last := wp.current.Last()
	firstTitle := wp.localization.MonthTitle(first.Section())
	if first.Section() == last.Section() {
		return firstTitle
	}
	return fmt.Sprintf("%s %s %s", firstTitle, DashPlaceholder, wp.localization.MonthTitle(last.Section()))
}

// touchRegion wraps content and forwards raw touch events to a gesture
// handler. Taps still reach the wrapped widgets normally.
type touchRegion struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	gestures *GestureHandler
}

func newTouchRegion(content fyne.CanvasObject, gestures *GestureHandler) *touchRegion {
	tr := &touchRegion{content: content, gestures: gestures}
	tr.ExtendBaseWidget(tr)
	return tr
}

// CreateRenderer implements fyne.Widget.
func (tr *touchRegion) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tr.content)
}

// TouchDown implements mobile.Touchable.
func (tr *touchRegion) TouchDown(event *mobile.TouchEvent) {
	tr.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable.
func (tr *touchRegion) TouchUp(event *mobile.TouchEvent) {
	tr.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable.
func (tr *touchRegion) TouchCancel(event *mobile.TouchEvent) {
	tr.gestures.TouchCancel(event)
}

var _ mobile.Touchable = (*touchRegion)(nil)
