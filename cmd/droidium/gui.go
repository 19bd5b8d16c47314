package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/droidium/droidium/internal/assets"
	"github.com/droidium/droidium/internal/cleanup"
	"github.com/droidium/droidium/internal/logger"
	"github.com/droidium/droidium/internal/shell"
	"github.com/droidium/droidium/internal/ui"
)

const appID = "io.droidium.app"

var (
	loadWatermark = assets.LoadLogo
	newApp        = func() fyne.App { return app.NewWithID(appID) }
	showAndRun    = func(w fyne.Window) { w.ShowAndRun() }
)

// runGUI opens the main window and blocks until it is closed. A watermark
// that fails to decode stops startup before any window exists.
func runGUI() error {
	cfg := shell.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	wm, err := loadWatermark()
	if err != nil {
		logger.Error("Failed to load watermark", "asset", assets.LogoName, "error", err)
		return err
	}
	cleanup.Register("watermark", wm.Release)
	logger.Debug("Watermark loaded", "width", wm.Size().Width, "height", wm.Size().Height)

	a := newApp()
	a.Settings().SetTheme(ui.NewTheme(shell.New(cfg)))
	a.SetIcon(assets.LogoResource())

	w := a.NewWindow(cfg.Title)
	w.SetIcon(assets.LogoResource())
	w.SetMaster()
	ui.NewShell(cfg, wm).Install(w)

	logger.Info("Window opened", "title", cfg.Title, "width", cfg.WindowWidth, "height", cfg.WindowHeight)
	showAndRun(w)
	return nil
}
