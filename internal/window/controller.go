package window

import (
	"log"
	"sync"
	"time"
)

// Expansion state for the single-flight guard
type expandState int

const (
	stateIdle expandState = iota
	stateExpandingBackward
	stateExpandingForward
)

// Direction reports which edge of the window an expansion grew.
type Direction int

const (
	DirectionBackward Direction = iota
	DirectionForward
)

// String returns the human readable name of the direction.
func (d Direction) String() string {
	if d == DirectionBackward {
		return "backward"
	}
	return "forward"
}

// Default tuning values. These are ordinary configuration, not structural
// invariants; hosts override them through ControllerConfig.
const (
	DefaultThresholdScreens float32 = 3
	DefaultQuantumMonths            = 24
	DefaultCooldown                 = 100 * time.Millisecond
)

// ControllerConfig carries the expansion tuning values.
type ControllerConfig struct {
	// ThresholdScreens is the trigger distance from either content edge,
	// expressed as a multiple of the viewport height.
	ThresholdScreens float32

	// QuantumMonths is how many months each expansion adds.
	QuantumMonths int

	// Cooldown is how long the controller stays disarmed after an
	// expansion before scroll signals can trigger the next one.
	Cooldown time.Duration
}

// DefaultControllerConfig returns the observed production tuning.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		ThresholdScreens: DefaultThresholdScreens,
		QuantumMonths:    DefaultQuantumMonths,
		Cooldown:         DefaultCooldown,
	}
}

func (c ControllerConfig) normalized() ControllerConfig {
	if c.ThresholdScreens <= 0 {
		c.ThresholdScreens = DefaultThresholdScreens
	}
	if c.QuantumMonths <= 0 {
		c.QuantumMonths = DefaultQuantumMonths
	}
	if c.Cooldown <= 0 {
		c.Cooldown = DefaultCooldown
	}
	return c
}

// Controller turns the host's scroll-position stream into window growth.
// OnScroll runs on the rendering critical path and is a handful of float
// comparisons; the expensive part (growing the window and regenerating
// grids) happens in the expansion callback exactly once per trigger.
//
// At most one expansion per direction is in flight at a time. A second
// trigger during the cooldown is dropped, not queued.
type Controller struct {
	cfg ControllerConfig
	win *Window

	mu    sync.Mutex
	state expandState

	// onExpand receives the direction and the new bound after the window
	// has grown. Must be set before scroll signals arrive.
	onExpand func(Direction, time.Time)
}

// NewController creates a controller driving the given window.
func NewController(win *Window, cfg ControllerConfig, onExpand func(Direction, time.Time)) *Controller {
	return &Controller{
		cfg:      cfg.normalized(),
		win:      win,
		onExpand: onExpand,
	}
}

// OnScroll consumes one scroll-position signal: the current offset from the
// top, the total content extent, and the viewport extent. It triggers at
// most one expansion and returns whether it did.
func (c *Controller) OnScroll(offset, content, viewport float32) bool {
	if viewport <= 0 || content <= viewport {
		return false
	}

	threshold := viewport * c.cfg.ThresholdScreens
	fromTop := offset
	fromBottom := content - viewport - offset

	switch {
	case fromTop < threshold:
		return c.expand(DirectionBackward)
	case fromBottom < threshold:
		return c.expand(DirectionForward)
	}
	return false
}

// expand performs the single-flighted transition to an expanding state,
// grows the window, notifies, and schedules the re-arm.
func (c *Controller) expand(dir Direction) bool {
	c.mu.Lock()
	if c.state != stateIdle {
		c.mu.Unlock()
		return false
	}
	if dir == DirectionBackward {
		c.state = stateExpandingBackward
	} else {
		c.state = stateExpandingForward
	}
	c.mu.Unlock()

	var grown bool
	var bound time.Time
	if dir == DirectionBackward {
		grown = c.win.GrowBack(c.cfg.QuantumMonths)
		bound = c.win.Start()
	} else {
		grown = c.win.GrowFront(c.cfg.QuantumMonths)
		bound = c.win.End()
	}

	if !grown {
		// Defensive: the window could not be mutated, so restore idle
		// immediately with no partial state committed.
		c.mu.Lock()
		c.state = stateIdle
		c.mu.Unlock()
		return false
	}

	log.Printf("Window expanded %s by %d months, new bound: %s",
		dir, c.cfg.QuantumMonths, bound.Format("2006-01"))

	if c.onExpand != nil {
		c.onExpand(dir, bound)
	}

	// Re-arm after the cooldown so a continuing scroll gesture does not
	// fire redundant expansions while the new grids are being applied.
	time.AfterFunc(c.cfg.Cooldown, func() {
		c.mu.Lock()
		c.state = stateIdle
		c.mu.Unlock()
	})

	return true
}

// Idle reports whether the controller is armed for the next expansion.
func (c *Controller) Idle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == stateIdle
}

// Reset forces the controller back to idle. Used after a recenter, which
// replaces the window wholesale and makes any pending re-arm irrelevant.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.state = stateIdle
	c.mu.Unlock()
}
