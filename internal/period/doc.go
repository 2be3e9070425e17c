// Package period provides the bounded, non-infinite calendar model: all
// month and week grids of a fixed date interval generated eagerly once,
// with indexed week lookup and neighbor queries. It is the special case of
// the windowed calendar with expansion disabled, and backs the paged week
// view.
package period
