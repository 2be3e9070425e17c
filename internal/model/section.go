package model

import (
	"fmt"
	"time"
)

// SectionID identifies one month section of the calendar grid. Sections are
// ordered chronologically and a materialized window is always a contiguous
// run of sections with no gaps.
type SectionID struct {
	Year  int
	Month time.Month
}

// SectionOf returns the section containing t.
func SectionOf(t time.Time) SectionID {
	return SectionID{Year: t.Year(), Month: t.Month()}
}

// Time returns the first day of the section at midnight in loc.
func (s SectionID) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, loc)
}

// First returns the IndexKey of the first day of the month.
func (s SectionID) First() IndexKey {
	return IndexKey{Year: s.Year, Month: s.Month, Day: 1}
}

// Days returns the number of days in the month, honouring leap years.
func (s SectionID) Days() int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(s.Year, s.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Next returns the following month section.
func (s SectionID) Next() SectionID {
	return SectionOf(time.Date(s.Year, s.Month+1, 1, 0, 0, 0, 0, time.UTC))
}

// Prev returns the preceding month section.
func (s SectionID) Prev() SectionID {
	return SectionOf(time.Date(s.Year, s.Month-1, 1, 0, 0, 0, 0, time.UTC))
}

// Before reports whether s is chronologically earlier than other.
func (s SectionID) Before(other SectionID) bool {
	if s.Year != other.Year {
		return s.Year < other.Year
	}
	return s.Month < other.Month
}

// String returns the YYYY-MM identity of the section.
func (s SectionID) String() string {
	return fmt.Sprintf("%04d-%02d", s.Year, int(s.Month))
}

// DayItem is one entry of a generated month grid. A placeholder entry is a
// day borrowed from the adjacent month purely to complete a 7-day row; it is
// never selectable and never counts as "today".
type DayItem struct {
	Key         IndexKey
	Placeholder bool
}
