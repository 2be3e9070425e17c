package snapshot

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/grid"
	"github.com/daygrid/daygrid/internal/model"
)

// RowKind distinguishes the two row shapes of the calendar list.
type RowKind int

const (
	// RowHeader is a month title row.
	RowHeader RowKind = iota

	// RowWeek is a seven-cell day row.
	RowWeek
)

// Row is one entry of the virtualized list. Row IDs are stable for the
// lifetime of a window: a month's rows never change once generated, so the
// same ID always describes the same content.
type Row struct {
	ID      string
	Kind    RowKind
	Section model.SectionID

	// Days holds exactly seven entries for week rows, none for headers.
	Days []model.DayItem
}

// Snapshot is the full ordered row model for the current window, ready to
// be reconciled against the host list.
type Snapshot struct {
	Rows []Row
}

// HeaderRowID returns the stable row ID of a month's header row.
func HeaderRowID(section model.SectionID) string {
	return "h:" + section.String()
}

// WeekRowID returns the stable row ID of the i-th week row of a month.
func WeekRowID(section model.SectionID, i int) string {
	return fmt.Sprintf("w:%s:%d", section, i)
}

// Build materializes the snapshot for an ordered run of sections, reading
// month grids through the cache.
func Build(sections []model.SectionID, cache *grid.Cache) Snapshot {
	var rows []Row

	for _, section := range sections {
		items := cache.Items(section)
		if len(items) == 0 {
			continue
		}

		rows = append(rows, Row{
			ID:      HeaderRowID(section),
			Kind:    RowHeader,
			Section: section,
		})

		for i := 0; i+grid.DaysPerWeek <= len(items); i += grid.DaysPerWeek {
			rows = append(rows, Row{
				ID:      WeekRowID(section, i/grid.DaysPerWeek),
				Kind:    RowWeek,
				Section: section,
				Days:    items[i : i+grid.DaysPerWeek],
			})
		}
	}

	return Snapshot{Rows: rows}
}

// IDs returns the ordered row identity list, the input to diffing.
func (s Snapshot) IDs() []string {
	ids := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		ids[i] = row.ID
	}
	return ids
}

// IndexOf returns the position of the row with the given ID, or -1.
func (s Snapshot) IndexOf(id string) int {
	for i, row := range s.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// RowsWithDay returns the indices of week rows containing the given day,
// including placeholder occurrences in adjacent months' grids.
func (s Snapshot) RowsWithDay(key model.IndexKey) []int {
	var indices []int
	for i, row := range s.Rows {
		if row.Kind != RowWeek {
			continue
		}
		for _, item := range row.Days {
			if item.Key == key {
				indices = append(indices, i)
				break
			}
		}
	}
	return indices
}
