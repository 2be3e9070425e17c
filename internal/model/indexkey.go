package model

import (
	"fmt"
	"time"
)

// IndexKey is the canonical identity of a single calendar day. Equality and
// hashing are structural over (Year, Month, Day); two keys built from the
// same date are always interchangeable.
type IndexKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the IndexKey for the calendar day containing t.
func KeyOf(t time.Time) IndexKey {
	return IndexKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the IndexKey for the current day in the given location.
func Today(loc *time.Location) IndexKey {
	if loc == nil {
		loc = time.Local
	}
	return KeyOf(time.Now().In(loc))
}

// IsZero reports whether the key is the empty value.
func (k IndexKey) IsZero() bool {
	return k.Year == 0 && k.Month == 0 && k.Day == 0
}

// Time returns the key as midnight of that day in the given location.
func (k IndexKey) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the key n calendar days after (or before, for negative n)
// this one. Overflowing day numbers are normalized by the calendar, so
// adding 1 to Jan 31 yields Feb 1.
func (k IndexKey) AddDays(n int) IndexKey {
	return KeyOf(time.Date(k.Year, k.Month, k.Day+n, 0, 0, 0, 0, time.UTC))
}

// DayID returns the per-day identity string in YYYY-MM-DD form.
func (k IndexKey) DayID() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// MonthID returns the per-month identity string in YYYY-MM form.
func (k IndexKey) MonthID() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// WeekID returns the ISO week identity string in YYYY-Www form. The ISO
// year can differ from Year near year boundaries (e.g. 2024-12-30 belongs
// to 2025-W01).
func (k IndexKey) WeekID() string {
	isoYear, isoWeek := k.Time(time.UTC).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", isoYear, isoWeek)
}

// Section returns the month section this day belongs to.
func (k IndexKey) Section() SectionID {
	return SectionID{Year: k.Year, Month: k.Month}
}

// Weekday returns the day of week for this key.
func (k IndexKey) Weekday() time.Weekday {
	return k.Time(time.UTC).Weekday()
}

// Before reports whether k is chronologically earlier than other.
func (k IndexKey) Before(other IndexKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}

// String implements fmt.Stringer using the day identity.
func (k IndexKey) String() string {
	return k.DayID()
}
