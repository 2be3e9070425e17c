package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CalendarTheme defines a compact theme for the calendar widgets with
// accent colors for today, selection, and weekends
type CalendarTheme struct{}

// NewCalendarTheme creates a new calendar theme
func NewCalendarTheme() fyne.Theme {
	return &CalendarTheme{}
}

// Color returns theme colors
func (t *CalendarTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for today/selection
	case theme.ColorNameSelection:
		return color.RGBA{R: 25, G: 118, B: 210, A: 64} // Translucent selection fill
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for event markers
	case theme.ColorNameDisabled:
		if variant == theme.VariantDark {
			return color.RGBA{R: 110, G: 110, B: 110, A: 255} // Dimmed placeholder days
		}
		return color.RGBA{R: 170, G: 170, B: 170, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CalendarTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CalendarTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, tightened for dense calendar grids
func (t *CalendarTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameText:
		return 13
	}
	return theme.DefaultTheme().Size(name)
}
