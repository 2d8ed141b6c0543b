package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/favicon-maker/internal/compress"
	"github.com/ytget/favicon-maker/internal/config"
	"github.com/ytget/favicon-maker/internal/export"
	"github.com/ytget/favicon-maker/internal/platform"
	"github.com/ytget/favicon-maker/internal/session"
	"github.com/ytget/favicon-maker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.favicon-maker"
	AppName = "Favicon Maker"

	WindowWidth  = 720
	WindowHeight = 560
)

func main() {
	fmt.Printf("Favicon Maker v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myApp.SetIcon(ui.DefaultIconResource())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetOutputDirectory()); err != nil {
		fmt.Printf("failed to ensure output dir: %v\n", err)
	}

	sess := session.New(ui.NewWindowPreview(myApp, myWindow, settings))
	exportSvc := export.NewService(sess, compress.NewService(), ui.NewSettingsSink(settings), settings.GetExportTimeout())

	ui.NewRootUI(myWindow, settings, sess, exportSvc)

	myWindow.ShowAndRun()
}
