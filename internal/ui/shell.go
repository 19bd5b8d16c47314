// Package ui draws the shell with fyne.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/droidium/droidium/internal/assets"
	"github.com/droidium/droidium/internal/logger"
	"github.com/droidium/droidium/internal/shell"
)

// Shell renders a shell.State. Every state change relays the window out
// through shell.ComputeFrame.
type Shell struct {
	cfg    shell.Config
	state  shell.State
	wmSize fyne.Size

	root      *fyne.Container
	centralBg *canvas.Rectangle
	panelBg   *canvas.Rectangle
	toggle    *iconButton
	nav       []*widget.Button
	watermark fyne.CanvasObject
	left      *groupBox
	right     *groupBox
}

// NewShell builds the widgets. wm may be nil, in which case no watermark is
// drawn.
func NewShell(cfg shell.Config, wm *assets.Watermark) *Shell {
	s := &Shell{
		cfg:   cfg,
		state: shell.New(cfg),
	}

	if tex := watermarkTexture(cfg, wm); tex != nil {
		s.watermark = tex
		s.wmSize = wm.Size()
	} else {
		empty := canvas.NewRectangle(color.Transparent)
		empty.Hide()
		s.watermark = empty
	}

	s.centralBg = canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	s.panelBg = canvas.NewRectangle(theme.Color(theme.ColorNameMenuBackground))
	s.toggle = newIconButton(theme.MenuIcon(), guarded("ui.toggle", s.ToggleSidePanel))

	for _, p := range shell.Pages() {
		p := p
		b := widget.NewButton("", guarded("ui.nav."+p.String(), func() { s.Navigate(p) }))
		s.nav = append(s.nav, b)
	}

	s.left = newGroupBox()
	s.right = newGroupBox()

	// Later objects draw on top: the side panel hides any watermark overflow.
	objs := []fyne.CanvasObject{s.centralBg, s.watermark, s.left.root, s.right.root, s.panelBg, s.toggle}
	for _, b := range s.nav {
		objs = append(objs, b)
	}
	s.root = container.New(&frameLayout{s: s}, objs...)

	s.sync()
	return s
}

func watermarkTexture(cfg shell.Config, wm *assets.Watermark) *canvas.Image {
	if wm == nil {
		return nil
	}
	return wm.Texture(uint8(cfg.WatermarkAlpha))
}

// Install sets s as the content of a fixed size window.
func (s *Shell) Install(w fyne.Window) {
	w.SetContent(s.root)
	w.Resize(fyne.NewSize(s.cfg.WindowWidth, s.cfg.WindowHeight))
	w.SetFixedSize(true)
	w.SetPadded(false)
	w.CenterOnScreen()
}

func (s *Shell) Content() fyne.CanvasObject { return s.root }

func (s *Shell) State() shell.State { return s.state }

// Frame is the layout for the current state.
func (s *Shell) Frame() shell.Frame {
	return shell.ComputeFrame(s.cfg, s.state, s.wmSize)
}

func (s *Shell) ToggleSidePanel() {
	s.apply(s.state.ToggleSidePanel(s.cfg))
	logger.Debug("Side panel toggled", "open", s.state.SidePanelOpen, "width", s.state.SidePanelWidth)
}

func (s *Shell) Navigate(p shell.Page) {
	if !p.Valid() {
		logger.Warn("Ignoring navigation to unknown page", "page", int(p))
		return
	}
	s.apply(s.state.Navigate(p))
	logger.Debug("Page selected", "page", p.String())
}

func (s *Shell) apply(next shell.State) {
	s.state = next
	s.sync()
	s.root.Refresh()
}

// sync copies the state into the widgets.
func (s *Shell) sync() {
	for i, p := range shell.Pages() {
		b := s.nav[i]
		if s.state.SidePanelOpen {
			b.SetText(p.String())
		} else {
			b.SetText(shortLabel(p.String()))
		}
		if p == s.state.Page {
			b.Importance = widget.HighImportance
		} else {
			b.Importance = widget.LowImportance
		}
		b.Refresh()
	}
	showPage(s.left, s.right, s.state)
}

type frameLayout struct {
	s *Shell
}

func (l *frameLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(l.s.cfg.WindowWidth, l.s.cfg.WindowHeight)
}

func (l *frameLayout) Layout(_ []fyne.CanvasObject, _ fyne.Size) {
	s := l.s
	f := s.Frame()

	place(s.centralBg, f.Central)
	place(s.panelBg, f.SidePanel)
	place(s.toggle, f.Toggle)
	for i, b := range s.nav {
		place(b, f.Nav[i])
	}
	place(s.watermark, f.Watermark)
	place(s.left.root, f.LeftPanel)
	place(s.right.root, f.RightPanel)
}

func place(o fyne.CanvasObject, r shell.Rect) {
	o.Move(r.Pos)
	o.Resize(r.Size)
}
