// Package grid generates locale-aligned month and week grids from calendar
// anchors. Generation is deterministic and side-effect free: the same anchor
// and configuration always produce the same grid, which is what makes the
// read-through cache correct without any invalidation policy.
package grid
