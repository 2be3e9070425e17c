// Package main provides the demo application entry point.
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/urfave/cli/v2"

	"github.com/daygrid/daygrid/internal/config"
	"github.com/daygrid/daygrid/internal/schedule"
	"github.com/daygrid/daygrid/internal/ui"
)

const appID = "com.daygrid.calendar-demo"

func main() {
	cliApp := &cli.App{
		Name:  "calendar-demo",
		Usage: "Infinite scrolling calendar demo",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Usage:   "UI language (system, en, ru, pt)",
			},
			&cli.StringFlag{
				Name:    "first-weekday",
				Aliases: []string{"w"},
				Usage:   "first day of the week (monday, saturday, sunday)",
			},
			&cli.StringFlag{
				Name:    "events",
				Aliases: []string{"e"},
				Usage:   "path to a YAML events file",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatalf("calendar-demo: %v", err)
	}
}

func run(c *cli.Context) error {
	// Create new Fyne app
	fyneApp := app.NewWithID(appID)
	fyneApp.Settings().SetTheme(ui.NewCalendarTheme())

	// Flags override the persisted preferences for this launch
	settings := config.NewSettings(fyneApp)
	if lang := c.String("language"); lang != "" {
		settings.SetLanguage(lang)
	}
	if weekday := c.String("first-weekday"); weekday != "" {
		if day, ok := config.ParseWeekday(weekday); ok {
			settings.SetFirstWeekday(day)
		} else {
			log.Printf("Unknown weekday %q, keeping %s", weekday, settings.GetFirstWeekday())
		}
	}

	// Load the events fixture when given
	events := schedule.NewSource()
	if path := c.String("events"); path != "" {
		loaded, err := schedule.LoadFile(path)
		if err != nil {
			return err
		}
		events = loaded
		log.Printf("Loaded events for %d days from %s", events.Len(), path)
	}

	window := fyneApp.NewWindow("Calendar")
	window.Resize(fyne.NewSize(420, 640))

	root := ui.NewRootUI(window, fyneApp, events)
	window.SetOnClosed(root.Shutdown)

	// Show and run
	window.ShowAndRun()
	return nil
}
