package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/daygrid/daygrid/internal/config"
	"github.com/daygrid/daygrid/internal/engine"
	"github.com/daygrid/daygrid/internal/grid"
	"github.com/daygrid/daygrid/internal/model"
	"github.com/daygrid/daygrid/internal/period"
	"github.com/daygrid/daygrid/internal/schedule"
	"github.com/daygrid/daygrid/internal/window"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	events       *schedule.Source

	calendarList *CalendarList
	weekPager    *WeekPager
	tabs         *container.AppTabs
	statusLabel  *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(win fyne.Window, app fyne.App, events *schedule.Source) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       win,
		settings:     settings,
		localization: localization,
		events:       events,
	}

	log.Printf("RootUI initialized with %d event days", events.Len())

	win.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	gridCfg := grid.Config{
		FirstWeekday: ui.settings.GetFirstWeekday(),
		Location:     time.Local,
	}
	ctrlCfg := window.DefaultControllerConfig()
	ctrlCfg.QuantumMonths = ui.settings.GetExpandQuantumMonths()

	engineCfg := engine.DefaultEngineConfig()
	engineCfg.Grid = gridCfg
	engineCfg.Controller = ctrlCfg

	now := time.Now()

	// Infinite month view
	ui.calendarList = NewCalendarList(now, engineCfg, ui.localization)
	ui.calendarList.SetShowWeekNumbers(ui.settings.GetShowWeekNumbers())
	ui.calendarList.SetCallbacks(ui.dayUserData, nil, ui.onDaySelected)

	// Bounded week view over the current year
	gen := grid.NewGenerator(gridCfg)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.Local)
	yearEnd := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.Local)
	timeline := period.NewTimeline(yearStart, yearEnd, gen)

	ui.weekPager = NewWeekPager(timeline, model.Today(nil), ui.localization)
	ui.weekPager.SetCallbacks(ui.dayUserData, ui.onDaySelected)

	// Toolbar
	todayBtn := widget.NewButton(ui.localization.GetText(KeyToday), ui.onToday)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	topPanel := container.NewBorder(nil, nil, todayBtn, settingsBtn, ui.statusLabel)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyMonthView), ui.calendarList.Container()),
		container.NewTabItem(ui.localization.GetText(KeyWeekView), ui.weekPager.Container()),
	)

	content := container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		ui.tabs,  // center
	)

	ui.window.SetContent(content)
	ui.calendarList.StartScrollMonitor()

	log.Printf("UI setup completed successfully")
}

// Shutdown stops background work before the window closes.
func (ui *RootUI) Shutdown() {
	ui.calendarList.StopScrollMonitor()
}

// dayUserData feeds the day cells: non-nil when the day has events.
func (ui *RootUI) dayUserData(key model.IndexKey) any {
	if evts := ui.events.Lookup(key); len(evts) > 0 {
		return evts
	}
	return nil
}

// onDaySelected updates the status line with the selection and its events.
func (ui *RootUI) onDaySelected(key model.IndexKey) {
	text := key.String()
	for _, evt := range ui.events.Lookup(key) {
		text += " " + IconToday + " " + evt.Title
	}
	ui.statusLabel.SetText(text)
}

// onToday jumps the month view back to the current day.
func (ui *RootUI) onToday() {
	ui.calendarList.ScrollToToday()
	ui.weekPager.Select(model.Today(nil))
}

// onShowSettings displays the settings dialog
func (ui *RootUI) onShowSettings() {
	// First weekday selector
	weekdayOptions := ui.settings.GetFirstWeekdayOptions()
	weekdayNames := make([]string, len(weekdayOptions))
	for i, day := range weekdayOptions {
		weekdayNames[i] = ui.localization.WeekdayShort(day)
	}
	weekdaySelect := widget.NewSelect(weekdayNames, func(selected string) {
		for i, name := range weekdayNames {
			if name == selected {
				ui.settings.SetFirstWeekday(weekdayOptions[i])
				break
			}
		}
	})
	weekdaySelect.SetSelected(ui.localization.WeekdayShort(ui.settings.GetFirstWeekday()))

	// Language selector
	languages := ui.settings.GetLanguageOptions()
	langCodes := make([]string, 0, len(languages))
	langNames := make([]string, 0, len(languages))
	for code, name := range languages {
		langCodes = append(langCodes, code)
		langNames = append(langNames, name)
	}
	langSelect := widget.NewSelect(langNames, func(selected string) {
		for i, name := range langNames {
			if name == selected {
				ui.settings.SetLanguage(langCodes[i])
				break
			}
		}
	})

	// Week numbers toggle
	weekNumbersCheck := widget.NewCheck(ui.localization.GetText(KeyShowWeekNumbers), func(checked bool) {
		ui.settings.SetShowWeekNumbers(checked)
		ui.calendarList.SetShowWeekNumbers(checked)
	})
	weekNumbersCheck.SetChecked(ui.settings.GetShowWeekNumbers())

	form := container.NewVBox(
		widget.NewLabel(ui.localization.GetText(KeyFirstWeekday)),
		weekdaySelect,
		widget.NewLabel(ui.localization.GetText(KeyLanguage)),
		langSelect,
		weekNumbersCheck,
		widget.NewLabel(""),
		widget.NewLabelWithStyle(
			ui.localization.GetText(KeyRestartNote),
			fyne.TextAlignLeading,
			fyne.TextStyle{Italic: true},
		),
	)

	dialog.ShowCustom(
		ui.localization.GetText(KeySettings),
		"OK",
		form,
		ui.window,
	)
}
