package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler turns raw touch events into paging gestures for the week
// view: swipe left pages forward, swipe right pages backward. Vertical
// movement is deliberately ignored so the surrounding scroll container
// keeps it.
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
	touchEndPos    fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	gh.touchEndPos = event.Position
	duration := time.Since(gh.touchStartTime)

	dx := gh.touchEndPos.X - gh.touchStartPos.X
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	dy := gh.touchEndPos.Y - gh.touchStartPos.Y
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	switch {
	case absDx >= gh.swipeThreshold && absDx > absDy:
		if dx < 0 {
			gh.triggerGesture(GestureSwipeLeft)
		} else {
			gh.triggerGesture(GestureSwipeRight)
		}
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	case absDx < gh.swipeThreshold && absDy < gh.swipeThreshold:
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(event *mobile.TouchEvent) {
	// Reset tracking
	gh.touchStartTime = time.Time{}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}
