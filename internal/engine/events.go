package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/daygrid/daygrid/internal/model"
	"github.com/daygrid/daygrid/internal/window"
)

// Handle identifies a registered event handler so it can be removed later.
type Handle string

// OnWindowExpanded registers a handler fired after every expansion with the
// direction and the new bound (the new start for backward growth, the new
// end for forward growth).
func (e *Engine) OnWindowExpanded(handler func(window.Direction, time.Time)) Handle {
	h := Handle(uuid.NewString())
	e.expandHandlers[h] = handler
	return h
}

// OnSelectionChanged registers a handler fired whenever the selected day
// changes.
func (e *Engine) OnSelectionChanged(handler func(model.IndexKey)) Handle {
	h := Handle(uuid.NewString())
	e.selectionHandlers[h] = handler
	return h
}

// RemoveHandler unregisters a previously registered handler. Unknown
// handles are ignored.
func (e *Engine) RemoveHandler(h Handle) {
	delete(e.expandHandlers, h)
	delete(e.selectionHandlers, h)
}
