package grid

import (
	"fmt"
	"time"

	"github.com/daygrid/daygrid/internal/model"
)

// DaysPerWeek is the row length of every generated grid.
const DaysPerWeek = 7

// Config holds the calendar configuration the generator is bound to. It is
// fixed for the lifetime of an engine; changing it requires a new generator
// and a cache reset.
type Config struct {
	// FirstWeekday is the weekday the first column of every row starts on.
	FirstWeekday time.Weekday

	// Location resolves "today" and day boundaries.
	Location *time.Location
}

// DefaultConfig returns the standard configuration: weeks starting on
// Monday in the local time zone.
func DefaultConfig() Config {
	return Config{FirstWeekday: time.Monday, Location: time.Local}
}

// WeekStart returns the most recent configured first weekday on or before t,
// at midnight.
func (c Config) WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location())
	offset := (int(day.Weekday()) - int(c.FirstWeekday) + DaysPerWeek) % DaysPerWeek
	return day.AddDate(0, 0, -offset)
}

func (c Config) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Generator produces month and week grids for a fixed calendar
// configuration. It holds no mutable state and is safe to share.
type Generator struct {
	cfg Config
}

// NewGenerator creates a generator bound to the given configuration.
func NewGenerator(cfg Config) *Generator {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Generator{cfg: cfg}
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config {
	return g.cfg
}

// MonthItems generates the ordered grid entries for one month section:
// leading placeholders drawn from the tail of the previous month, one entry
// per real day, and trailing placeholders drawn from the head of the next
// month, so the total length is always a multiple of seven.
func (g *Generator) MonthItems(section model.SectionID) []model.DayItem {
	if section.Month < time.January || section.Month > time.December {
		// Defensive: unresolvable anchors produce an empty grid rather
		// than an error, matching the no-failure contract of the engine.
		return nil
	}

	first := section.First()
	daysInMonth := section.Days()
	leading := (int(first.Weekday()) - int(g.cfg.FirstWeekday) + DaysPerWeek) % DaysPerWeek

	items := make([]model.DayItem, 0, leading+daysInMonth+DaysPerWeek)

	// Tail of the previous month, with its real day numbers.
	for i := leading; i > 0; i-- {
		items = append(items, model.DayItem{Key: first.AddDays(-i), Placeholder: true})
	}

	for day := 0; day < daysInMonth; day++ {
		items = append(items, model.DayItem{Key: first.AddDays(day)})
	}

	// Head of the next month, up to the end of the last row.
	if remainder := len(items) % DaysPerWeek; remainder != 0 {
		next := section.Next().First()
		for i := 0; i < DaysPerWeek-remainder; i++ {
			items = append(items, model.DayItem{Key: next.AddDays(i), Placeholder: true})
		}
	}

	return items
}

// WeekDays returns the seven consecutive days of the week containing the
// anchor, starting on the configured first weekday. Weeks carry no
// placeholders.
func (g *Generator) WeekDays(anchor model.IndexKey) []model.IndexKey {
	start := g.cfg.WeekStart(anchor.Time(g.cfg.Location))
	startKey := model.KeyOf(start)

	days := make([]model.IndexKey, DaysPerWeek)
	for i := range days {
		days[i] = startKey.AddDays(i)
	}
	return days
}

// MonthPeriod wraps MonthItems as a uniform Period. The period days include
// placeholders; LeadingPadding records how many entries precede the first
// real day.
func (g *Generator) MonthPeriod(section model.SectionID) model.Period {
	items := g.MonthItems(section)

	days := make([]model.IndexKey, len(items))
	leading := 0
	for i, item := range items {
		days[i] = item.Key
		if item.Placeholder && i == leading {
			leading++
		}
	}

	return model.Period{
		ID:             section.String(),
		Anchor:         section.First(),
		Days:           days,
		LeadingPadding: leading,
	}
}

// WeekPeriod wraps WeekDays as a uniform Period. The period ID is the ISO
// week identity of the week's first day, which is what bounded timelines
// key their lookups on.
func (g *Generator) WeekPeriod(anchor model.IndexKey) model.Period {
	days := g.WeekDays(anchor)
	if len(days) == 0 {
		return model.Period{}
	}

	return model.Period{
		ID:     days[0].WeekID(),
		Anchor: days[0],
		Days:   days,
	}
}

// RowCount returns how many 7-day rows the grid for the section occupies.
func (g *Generator) RowCount(section model.SectionID) int {
	return len(g.MonthItems(section)) / DaysPerWeek
}

// String describes the configuration, useful in logs.
func (c Config) String() string {
	return fmt.Sprintf("firstWeekday=%s location=%s", c.FirstWeekday, c.location())
}
