package window

import (
	"time"

	"github.com/daygrid/daygrid/internal/model"
)

// Window is the half-open [start, end) range of months currently
// materialized by the calendar. Both bounds are always normalized to the
// first instant of a month. Mutation goes through GrowBack/GrowFront
// (monotonic) or Recenter (explicit reset).
type Window struct {
	start time.Time
	end   time.Time
}

// New creates a window spanning spanMonths before and after the month
// containing center.
func New(center time.Time, spanMonths int) *Window {
	w := &Window{}
	w.Recenter(center, spanMonths)
	return w
}

// Start returns the inclusive lower bound, the first day of the earliest
// materialized month.
func (w *Window) Start() time.Time {
	return w.start
}

// End returns the exclusive upper bound, the first day of the month after
// the latest materialized one.
func (w *Window) End() time.Time {
	return w.end
}

// Months returns the count of materialized months.
func (w *Window) Months() int {
	if w.start.IsZero() || !w.start.Before(w.end) {
		return 0
	}
	years := w.end.Year() - w.start.Year()
	return years*12 + int(w.end.Month()) - int(w.start.Month())
}

// Sections returns the contiguous ascending run of month sections covered
// by the window.
func (w *Window) Sections() []model.SectionID {
	count := w.Months()
	if count <= 0 {
		return nil
	}

	sections := make([]model.SectionID, 0, count)
	section := model.SectionOf(w.start)
	for i := 0; i < count; i++ {
		sections = append(sections, section)
		section = section.Next()
	}
	return sections
}

// Contains reports whether the given day falls inside the window.
func (w *Window) Contains(key model.IndexKey) bool {
	if w.start.IsZero() {
		return false
	}
	t := key.Time(w.start.Location())
	return !t.Before(w.start) && t.Before(w.end)
}

// GrowBack moves the start bound earlier by the given number of months.
// Growth is monotonic; non-positive amounts are ignored.
func (w *Window) GrowBack(months int) bool {
	if months <= 0 || w.start.IsZero() {
		return false
	}
	w.start = w.start.AddDate(0, -months, 0)
	return true
}

// GrowFront moves the end bound later by the given number of months.
func (w *Window) GrowFront(months int) bool {
	if months <= 0 || w.end.IsZero() {
		return false
	}
	w.end = w.end.AddDate(0, months, 0)
	return true
}

// Recenter discards the current bounds and establishes a fresh window of
// spanMonths months on each side of the month containing center. The caller
// is responsible for clearing any grid cache built from the old bounds.
func (w *Window) Recenter(center time.Time, spanMonths int) {
	if spanMonths < 1 {
		spanMonths = 1
	}
	loc := center.Location()
	monthStart := time.Date(center.Year(), center.Month(), 1, 0, 0, 0, 0, loc)
	w.start = monthStart.AddDate(0, -spanMonths, 0)
	w.end = monthStart.AddDate(0, spanMonths+1, 0)
}
