package period

import (
	"time"

	"github.com/daygrid/daygrid/internal/grid"
	"github.com/daygrid/daygrid/internal/model"
)

// Timeline is the eagerly generated calendar of a fixed [start, end]
// interval: every month period and every week period, in chronological
// order. The week-ID index is populated lazily on the first lookup and
// memoized for the timeline's lifetime.
type Timeline struct {
	gen    *grid.Generator
	start  time.Time
	end    time.Time
	months []model.Period
	weeks  []model.Period

	weekIndex map[string]int
}

// NewTimeline builds the timeline for the interval. The first week is the
// one containing start (so it may begin before the interval), the last is
// the one containing end. A reversed interval yields an empty timeline.
func NewTimeline(start, end time.Time, gen *grid.Generator) *Timeline {
	tl := &Timeline{gen: gen, start: start, end: end}
	if end.Before(start) {
		return tl
	}

	section := model.SectionOf(start)
	last := model.SectionOf(end)
	for {
		tl.months = append(tl.months, gen.MonthPeriod(section))
		if section == last {
			break
		}
		section = section.Next()
	}

	cursor := gen.Config().WeekStart(start)
	for !cursor.After(end) {
		tl.weeks = append(tl.weeks, gen.WeekPeriod(model.KeyOf(cursor)))
		cursor = cursor.AddDate(0, 0, grid.DaysPerWeek)
	}

	return tl
}

// Bounds returns the interval the timeline was built for.
func (tl *Timeline) Bounds() (time.Time, time.Time) {
	return tl.start, tl.end
}

// Location returns the time location the timeline's grids are generated in.
func (tl *Timeline) Location() *time.Location {
	return tl.gen.Config().Location
}

// Months returns the generated month periods in chronological order.
func (tl *Timeline) Months() []model.Period {
	return tl.months
}

// Weeks returns the generated week periods in chronological order.
func (tl *Timeline) Weeks() []model.Period {
	return tl.weeks
}

// WeekContaining returns the week period covering the given day.
func (tl *Timeline) WeekContaining(key model.IndexKey) (model.Period, bool) {
	start := tl.gen.Config().WeekStart(key.Time(tl.gen.Config().Location))
	return tl.WeekByID(model.KeyOf(start).WeekID())
}

// WeekByID returns the week period with the given ISO week identity.
func (tl *Timeline) WeekByID(id string) (model.Period, bool) {
	index, ok := tl.indexOfWeek(id)
	if !ok {
		return model.Period{}, false
	}
	return tl.weeks[index], true
}

// WeekBefore returns the week preceding the one with the given identity,
// or ok=false at the interval boundary.
func (tl *Timeline) WeekBefore(id string) (model.Period, bool) {
	index, ok := tl.indexOfWeek(id)
	if !ok || index == 0 {
		return model.Period{}, false
	}
	return tl.weeks[index-1], true
}

// WeekAfter returns the week following the one with the given identity,
// or ok=false at the interval boundary.
func (tl *Timeline) WeekAfter(id string) (model.Period, bool) {
	index, ok := tl.indexOfWeek(id)
	if !ok || index == len(tl.weeks)-1 {
		return model.Period{}, false
	}
	return tl.weeks[index+1], true
}

func (tl *Timeline) indexOfWeek(id string) (int, bool) {
	if tl.weekIndex == nil {
		tl.weekIndex = make(map[string]int, len(tl.weeks))
		for i, week := range tl.weeks {
			tl.weekIndex[week.ID] = i
		}
	}
	index, ok := tl.weekIndex[id]
	return index, ok
}

// FocusDay returns the day that becomes selected after paging to a new
// week: the first day when navigating forward, the last day when navigating
// backward. The paged week view relies on this exact tie-break for its
// focus behavior.
func FocusDay(p model.Period, forward bool) model.IndexKey {
	if forward {
		return p.First()
	}
	return p.Last()
}
