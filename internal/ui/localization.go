package ui

import (
	"fmt"
	"time"

	"github.com/daygrid/daygrid/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyToday           = "today"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyFirstWeekday    = "first_weekday"
	KeyShowWeekNumbers = "show_week_numbers"
	KeyMonthView       = "month_view"
	KeyWeekView        = "week_view"
	KeyRestartNote     = "restart_note"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns the selectable languages
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}
	// Fallback to English
	if text, found := l.texts["en"][key]; found {
		return text
	}
	return key
}

// MonthName returns the localized name of a month
func (l *Localization) MonthName(month time.Month) string {
	return l.GetText(fmt.Sprintf("month_%d", int(month)))
}

// WeekdayShort returns the localized two-letter weekday abbreviation
func (l *Localization) WeekdayShort(day time.Weekday) string {
	return l.GetText(fmt.Sprintf("weekday_%d", int(day)))
}

// MonthTitle returns the localized header title for a month section
func (l *Localization) MonthTitle(section model.SectionID) string {
	return fmt.Sprintf("%s %d", l.MonthName(section.Month), section.Year)
}

// initializeTexts populates the translation tables
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Calendar",
		KeyToday:           "Today",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyFirstWeekday:    "First day of week",
		KeyShowWeekNumbers: "Show week numbers",
		KeyMonthView:       "Month",
		KeyWeekView:        "Week",
		KeyRestartNote:     "Weekday and language changes apply on restart",

		"month_1": "January", "month_2": "February", "month_3": "March",
		"month_4": "April", "month_5": "May", "month_6": "June",
		"month_7": "July", "month_8": "August", "month_9": "September",
		"month_10": "October", "month_11": "November", "month_12": "December",

		"weekday_0": "Su", "weekday_1": "Mo", "weekday_2": "Tu",
		"weekday_3": "We", "weekday_4": "Th", "weekday_5": "Fr",
		"weekday_6": "Sa",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Календарь",
		KeyToday:           "Сегодня",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyFirstWeekday:    "Первый день недели",
		KeyShowWeekNumbers: "Номера недель",
		KeyMonthView:       "Месяц",
		KeyWeekView:        "Неделя",
		KeyRestartNote:     "Смена дня недели и языка вступает в силу после перезапуска",

		"month_1": "Январь", "month_2": "Февраль", "month_3": "Март",
		"month_4": "Апрель", "month_5": "Май", "month_6": "Июнь",
		"month_7": "Июль", "month_8": "Август", "month_9": "Сентябрь",
		"month_10": "Октябрь", "month_11": "Ноябрь", "month_12": "Декабрь",

		"weekday_0": "Вс", "weekday_1": "Пн", "weekday_2": "Вт",
		"weekday_3": "Ср", "weekday_4": "Чт", "weekday_5": "Пт",
		"weekday_6": "Сб",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Calendário",
		KeyToday:           "Hoje",
		KeySettings:        "Configurações",
		KeyLanguage:        "Idioma",
		KeyFirstWeekday:    "Primeiro dia da semana",
		KeyShowWeekNumbers: "Números das semanas",
		KeyMonthView:       "Mês",
		KeyWeekView:        "Semana",
		KeyRestartNote:     "Alterações de dia da semana e idioma aplicam-se após reiniciar",

		"month_1": "Janeiro", "month_2": "Fevereiro", "month_3": "Março",
		"month_4": "Abril", "month_5": "Maio", "month_6": "Junho",
		"month_7": "Julho", "month_8": "Agosto", "month_9": "Setembro",
		"month_10": "Outubro", "month_11": "Novembro", "month_12": "Dezembro",

		"weekday_0": "Do", "weekday_1": "Se", "weekday_2": "Te",
		"weekday_3": "Qa", "weekday_4": "Qi", "weekday_5": "Sx",
		"weekday_6": "Sá",
	}
}
