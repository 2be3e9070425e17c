// Package ui contains the Fyne-based calendar widgets: the infinite
// scrolling month calendar backed by the windowing engine, and the paged
// week view backed by a bounded timeline. Rendering of day cells is
// delegated to host callbacks; the widgets own layout, scrolling, and
// selection wiring. All UI strings are localized via Localization.
package ui
