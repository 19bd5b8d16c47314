// Package shell holds the window state of the application and the pure
// layout function that turns it into rectangles every frame.
package shell

// State is the complete mutable UI state. Operations return a new value;
// the receiver is never modified.
type State struct {
	Page Page

	LabelFontSize   float32
	HeadingFontSize float32
	Padding         float32

	SidePanelOpen  bool
	SidePanelWidth float32
}

func New(cfg Config) State {
	page := cfg.StartPage
	if !page.Valid() {
		page = PageAdb
	}
	return State{
		Page:            page,
		LabelFontSize:   cfg.LabelFontSize,
		HeadingFontSize: cfg.HeadingFontSize,
		Padding:         cfg.Padding,
		SidePanelOpen:   cfg.StartOpen,
		SidePanelWidth:  PanelWidth(cfg, cfg.StartOpen),
	}
}

// PanelWidth is the only place the side panel width is derived.
func PanelWidth(cfg Config, open bool) float32 {
	if open {
		return cfg.ExpandedWidth
	}
	return cfg.CollapsedWidth
}

// ToggleSidePanel flips the open flag and the width together.
func (s State) ToggleSidePanel(cfg Config) State {
	s.SidePanelOpen = !s.SidePanelOpen
	s.SidePanelWidth = PanelWidth(cfg, s.SidePanelOpen)
	return s
}

// Navigate selects p. Unknown pages leave the state unchanged.
func (s State) Navigate(p Page) State {
	if p.Valid() {
		s.Page = p
	}
	return s
}
