package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyFirstWeekday    = "first_weekday"
	KeyLanguage        = "app_language"
	KeyShowWeekNumbers = "show_week_numbers"
	KeyExpandQuantum   = "expand_quantum_months"
)

// Default values
const (
	DefaultFirstWeekday    = int(time.Monday)
	DefaultLanguage        = "system"
	DefaultShowWeekNumbers = false
	DefaultExpandQuantum   = 24
)

// Quantum bounds keep a misconfigured preference from generating an
// unreasonable number of month grids per expansion.
const (
	MinExpandQuantum = 6
	MaxExpandQuantum = 60
)

// Settings manages the calendar application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetFirstWeekday returns the configured first day of week
func (s *Settings) GetFirstWeekday() time.Weekday {
	value := s.app.Preferences().IntWithFallback(KeyFirstWeekday, -1)
	if value < int(time.Sunday) || value > int(time.Saturday) {
		s.SetFirstWeekday(time.Weekday(DefaultFirstWeekday))
		return time.Weekday(DefaultFirstWeekday)
	}
	return time.Weekday(value)
}

// SetFirstWeekday sets the first day of week
func (s *Settings) SetFirstWeekday(day time.Weekday) {
	if day < time.Sunday || day > time.Saturday {
		day = time.Weekday(DefaultFirstWeekday)
	}
	s.app.Preferences().SetInt(KeyFirstWeekday, int(day))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetShowWeekNumbers returns whether ISO week numbers are shown in the grid
func (s *Settings) GetShowWeekNumbers() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowWeekNumbers, DefaultShowWeekNumbers)
}

// SetShowWeekNumbers sets whether ISO week numbers are shown in the grid
func (s *Settings) SetShowWeekNumbers(show bool) {
	s.app.Preferences().SetBool(KeyShowWeekNumbers, show)
}

// GetExpandQuantumMonths returns how many months each window expansion adds
func (s *Settings) GetExpandQuantumMonths() int {
	value := s.app.Preferences().Int(KeyExpandQuantum)
	if value <= 0 {
		s.SetExpandQuantumMonths(DefaultExpandQuantum)
		return DefaultExpandQuantum
	}
	return value
}

// SetExpandQuantumMonths sets how many months each window expansion adds
func (s *Settings) SetExpandQuantumMonths(months int) {
	if months < MinExpandQuantum {
		months = MinExpandQuantum
	}
	if months > MaxExpandQuantum {
		months = MaxExpandQuantum
	}
	s.app.Preferences().SetInt(KeyExpandQuantum, months)
}

// ParseWeekday maps an English weekday name to its time.Weekday value.
// Used by CLI flags; matching is case-insensitive.
func ParseWeekday(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(name, day.String()) {
			return day, true
		}
	}
	return time.Weekday(DefaultFirstWeekday), false
}

// GetFirstWeekdayOptions returns the selectable first-weekday options
func (s *Settings) GetFirstWeekdayOptions() []time.Weekday {
	return []time.Weekday{time.Monday, time.Sunday, time.Saturday}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
