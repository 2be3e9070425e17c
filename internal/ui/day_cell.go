package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/daygrid/daygrid/internal/model"
)

// CellCreateFunc builds one reusable day cell for the virtualized list.
type CellCreateFunc func() fyne.CanvasObject

// CellUpdateFunc rebinds a reused cell to a day. data carries whatever the
// host's UserDataFunc returned for the day, nil when no provider is set.
type CellUpdateFunc func(obj fyne.CanvasObject, key model.IndexKey, data any, isToday, isSelected, isPlaceholder bool)

// UserDataFunc supplies host data (events, badges) for a day.
type UserDataFunc func(key model.IndexKey) any

// HeaderTextFunc supplies the month header title, also used as the
// accessibility label of the header row.
type HeaderTextFunc func(section model.SectionID) string

// dayCell is the default day cell: a tappable button showing the day
// number, dimmed for placeholders, accented for today and the selection.
type dayCell struct {
	widget.Button

	key         model.IndexKey
	placeholder bool
	onTapped    func(model.IndexKey)
}

func newDayCell(onTapped func(model.IndexKey)) *dayCell {
	c := &dayCell{onTapped: onTapped}
	c.ExtendBaseWidget(c)
	return c
}

// Tapped forwards real-day taps to the selection handler. Placeholder days
// are not selectable.
func (c *dayCell) Tapped(e *fyne.PointEvent) {
	if c.placeholder || c.onTapped == nil {
		return
	}
	c.onTapped(c.key)
}

// MinSize keeps cells at a touch-friendly size.
func (c *dayCell) MinSize() fyne.Size {
	min := c.Button.MinSize()
	if min.Width < DayCellMinWidth {
		min.Width = DayCellMinWidth
	}
	if min.Height < MinTouchTargetSize {
		min.Height = MinTouchTargetSize
	}
	return min
}

// SetDay rebinds the cell to a day and restyles it.
func (c *dayCell) SetDay(key model.IndexKey, isToday, isSelected, isPlaceholder, hasEvents bool) {
	c.key = key
	c.placeholder = isPlaceholder

	label := strconv.Itoa(key.Day)
	if hasEvents {
		label += IconToday
	}
	c.SetText(label)

	if isPlaceholder {
		c.Importance = widget.LowImportance
		c.Disable()
	} else {
		c.Enable()
		switch {
		case isSelected:
			c.Importance = widget.HighImportance
		case isToday:
			c.Importance = widget.MediumImportance
		default:
			c.Importance = widget.LowImportance
		}
	}
	c.Refresh()
}
