package engine

import (
	"log"
	"time"

	"github.com/daygrid/daygrid/internal/grid"
	"github.com/daygrid/daygrid/internal/model"
	"github.com/daygrid/daygrid/internal/snapshot"
	"github.com/daygrid/daygrid/internal/window"
)

// DefaultRecenterSpanMonths is how far the window reaches on each side of
// the target after a recenter.
const DefaultRecenterSpanMonths = 36

// Config bundles the engine tuning. Zero values fall back to the defaults
// used in production.
type Config struct {
	Grid               grid.Config
	Controller         window.ControllerConfig
	RecenterSpanMonths int
}

// DefaultEngineConfig returns the standard configuration.
func DefaultEngineConfig() Config {
	return Config{
		Grid:               grid.DefaultConfig(),
		Controller:         window.DefaultControllerConfig(),
		RecenterSpanMonths: DefaultRecenterSpanMonths,
	}
}

// Engine owns the infinite calendar state and keeps the host's virtualized
// list synchronized with it. It is recomputed each session from "now" plus
// configuration; nothing is persisted.
type Engine struct {
	cfg   Config
	cache *grid.Cache
	win   *window.Window
	ctrl  *window.Controller
	sync  *snapshot.Synchronizer

	selected    model.IndexKey
	hasSelected bool

	expandHandlers    map[Handle]func(window.Direction, time.Time)
	selectionHandlers map[Handle]func(model.IndexKey)
}

// New creates an engine centered on the month containing center, bound to
// the given host view, and applies the initial snapshot.
func New(center time.Time, cfg Config, view snapshot.ListView) *Engine {
	if cfg.RecenterSpanMonths <= 0 {
		cfg.RecenterSpanMonths = DefaultRecenterSpanMonths
	}
	if cfg.Grid.Location == nil {
		cfg.Grid.Location = time.Local
	}

	e := &Engine{
		cfg:               cfg,
		cache:             grid.NewCache(grid.NewGenerator(cfg.Grid)),
		win:               window.New(center, cfg.RecenterSpanMonths),
		sync:              snapshot.NewSynchronizer(view),
		expandHandlers:    make(map[Handle]func(window.Direction, time.Time)),
		selectionHandlers: make(map[Handle]func(model.IndexKey)),
	}
	e.ctrl = window.NewController(e.win, cfg.Controller, e.onExpanded)

	log.Printf("Calendar engine initialized: %s, window %s..%s",
		cfg.Grid, e.win.Start().Format("2006-01"), e.win.End().Format("2006-01"))

	e.rebuild()
	return e
}

// Bounds returns the current window bounds, read-only.
func (e *Engine) Bounds() (start, end time.Time) {
	return e.win.Start(), e.win.End()
}

// Rows returns the number of rows in the applied snapshot.
func (e *Engine) Rows() int {
	return e.sync.Rows()
}

// Row returns the applied row at the given index.
func (e *Engine) Row(index int) (snapshot.Row, bool) {
	return e.sync.Row(index)
}

// Today returns the current day in the engine's calendar configuration.
func (e *Engine) Today() model.IndexKey {
	return model.Today(e.cfg.Grid.Location)
}

// Selected returns the currently selected day, if any.
func (e *Engine) Selected() (model.IndexKey, bool) {
	return e.selected, e.hasSelected
}

// Select updates the selected day, refreshing only the rows whose visual
// payload changed, and emits SelectionChanged. Selecting the already
// selected day is a no-op.
func (e *Engine) Select(key model.IndexKey) {
	if e.hasSelected && e.selected == key {
		return
	}

	var dirty []string
	if e.hasSelected {
		dirty = append(dirty, e.rowIDsWithDay(e.selected)...)
	}
	dirty = append(dirty, e.rowIDsWithDay(key)...)

	e.selected = key
	e.hasSelected = true
	e.sync.Reconfigure(dirty)

	for _, handler := range e.selectionHandlers {
		handler(key)
	}
}

// ClearSelection removes the selection, refreshing the affected rows.
func (e *Engine) ClearSelection() {
	if !e.hasSelected {
		return
	}
	dirty := e.rowIDsWithDay(e.selected)
	e.hasSelected = false
	e.selected = model.IndexKey{}
	e.sync.Reconfigure(dirty)
}

// HandleScroll consumes one scroll-position signal from the host view.
// Cheap on the no-trigger path; when a threshold is crossed the window
// grows, the snapshot is re-applied, and WindowExpanded fires.
func (e *Engine) HandleScroll(offset, content, viewport float32) {
	e.ctrl.OnScroll(offset, content, viewport)
}

// Location returns the time location grids are generated in. Hosts
// resolving dates for the engine must use it, not the process zone.
func (e *Engine) Location() *time.Location {
	return e.cfg.Grid.Location
}

// ScrollTo locates the given date, recentering the window first when the
// date lies outside it, and returns the index of the week row showing the
// date. The host scrolls the returned row into view.
func (e *Engine) ScrollTo(date time.Time) int {
	return e.ScrollToDay(model.KeyOf(date.In(e.cfg.Grid.Location)))
}

// ScrollToDay is ScrollTo for an already resolved day key. Keys carry no
// zone, so no conversion can shift the day.
func (e *Engine) ScrollToDay(key model.IndexKey) int {
	if !e.win.Contains(key) {
		log.Printf("Scroll target %s outside window, recentering", key)
		e.win.Recenter(key.Time(e.cfg.Grid.Location), e.cfg.RecenterSpanMonths)
		e.cache.Clear()
		e.ctrl.Reset()
		e.sync.Invalidate()
		e.rebuild()
	}

	return e.rowIndexOfDay(key)
}

// onExpanded is the controller callback: the window has already grown, so
// regenerate the snapshot (additions only) and notify listeners.
func (e *Engine) onExpanded(dir window.Direction, bound time.Time) {
	e.rebuild()
	for _, handler := range e.expandHandlers {
		handler(dir, bound)
	}
}

func (e *Engine) rebuild() {
	e.sync.Apply(snapshot.Build(e.win.Sections(), e.cache))
}

// rowIndexOfDay returns the index of the week row presenting the day in its
// own month section, falling back to any row containing it.
func (e *Engine) rowIndexOfDay(key model.IndexKey) int {
	applied := e.sync.Applied()
	indices := applied.RowsWithDay(key)
	if len(indices) == 0 {
		return -1
	}
	for _, index := range indices {
		if applied.Rows[index].Section == key.Section() {
			return index
		}
	}
	return indices[0]
}

func (e *Engine) rowIDsWithDay(key model.IndexKey) []string {
	applied := e.sync.Applied()
	var ids []string
	for _, index := range applied.RowsWithDay(key) {
		ids = append(ids, applied.Rows[index].ID)
	}
	return ids
}
