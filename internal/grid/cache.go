package grid

import (
	"github.com/daygrid/daygrid/internal/model"
)

// Cache memoizes generated month grids keyed by section identity. A month
// grid is a pure function of (section, configuration) and the configuration
// is fixed for the generator's lifetime, so entries never go stale; the only
// eviction is the wholesale Clear performed on window recenter.
type Cache struct {
	gen   *Generator
	items map[model.SectionID][]model.DayItem
}

// NewCache creates a read-through cache over the given generator.
func NewCache(gen *Generator) *Cache {
	return &Cache{
		gen:   gen,
		items: make(map[model.SectionID][]model.DayItem),
	}
}

// Items returns the grid entries for the section, generating and storing
// them on first access.
func (c *Cache) Items(section model.SectionID) []model.DayItem {
	if items, ok := c.items[section]; ok {
		return items
	}

	items := c.gen.MonthItems(section)
	c.items[section] = items
	return items
}

// Generator returns the generator backing the cache.
func (c *Cache) Generator() *Generator {
	return c.gen
}

// Len returns the number of materialized sections.
func (c *Cache) Len() int {
	return len(c.items)
}

// Clear drops every cached grid. Called only when the owning window is
// recentered; months are never invalidated individually.
func (c *Cache) Clear() {
	c.items = make(map[model.SectionID][]model.DayItem)
}
