package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/daygrid/daygrid/internal/schedule"
	"github.com/daygrid/daygrid/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.daygrid.calendar"
	AppName = "Calendar"

	WindowWidth  = 420
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("Calendar v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCalendarTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, schedule.NewSource())
	myWindow.SetOnClosed(root.Shutdown)

	// Show and run
	myWindow.ShowAndRun()
}
