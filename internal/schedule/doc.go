// Package schedule supplies per-day user data to the calendar cells: a list
// of dated events loaded from a YAML document. The engine itself knows
// nothing about events; hosts look them up in their day-content callback.
package schedule
