// Package window maintains the materialized date range of the infinite
// calendar and decides when to grow it. The window only ever expands while
// the user scrolls; the single shrinking operation is an explicit recenter
// around a target date, used when jumping outside the current range.
package window
