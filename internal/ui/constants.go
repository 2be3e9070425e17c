package ui

import (
	"time"

	"fyne.io/fyne/v2/theme"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPrev     = "‹"
	IconNext     = "›"
	IconToday    = "•"
	IconSettings = "⚙"
)

// Text fragments
const (
	DashPlaceholder = "—"
	WeekNumberFmt   = "W%d"
)

// Layout sizing (calendar rows / cells)
const (
	CalendarRowHeight float32 = 44
	DayCellMinWidth   float32 = 44

	WeekNumberWidth float32 = 36

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	PagerButtonWidth float32 = 48
)

// ListRowPitch is the vertical distance between consecutive list rows: the
// row height plus the separator widget.List draws between items. It must
// track the active theme, since content-extent math in the scroll monitor
// has to match the pitch the list actually lays out with.
func ListRowPitch() float32 {
	return CalendarRowHeight + theme.SeparatorThicknessSize()
}

// Scroll monitoring
const (
	// ScrollPollInterval bounds how often the scroll monitor samples the
	// list offset; the expansion controller itself is O(1) per sample.
	ScrollPollInterval = 50 * time.Millisecond
)
