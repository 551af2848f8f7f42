package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/export"
	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.canadiansniper.dayz-texture-exporter"
	AppName = "DayZ Texture Exporter"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	exportSvc := export.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, exportSvc)

	// Show and run
	myWindow.ShowAndRun()
}
