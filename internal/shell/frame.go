package shell

import "fyne.io/fyne/v2"

// toggleInset is the gap between the toggle button and the panel edges.
const toggleInset = 4

// Rect is an axis aligned box in window coordinates.
type Rect struct {
	Pos  fyne.Position
	Size fyne.Size
}

func NewRect(x, y, w, h float32) Rect {
	return Rect{Pos: fyne.NewPos(x, y), Size: fyne.NewSize(w, h)}
}

func (r Rect) Max() fyne.Position {
	return fyne.NewPos(r.Pos.X+r.Size.Width, r.Pos.Y+r.Size.Height)
}

// Frame is the layout of one redraw.
type Frame struct {
	SidePanel Rect
	Toggle    Rect
	// Nav has one row per entry of Pages().
	Nav       []Rect
	NavLabels bool

	Central    Rect
	Watermark  Rect
	LeftPanel  Rect
	RightPanel Rect
}

// ComputeFrame lays out the window for state s. watermark is the intrinsic
// image size; the image is centered on the window rather than on the
// central region so it does not move when the side panel toggles.
func ComputeFrame(cfg Config, s State, watermark fyne.Size) Frame {
	w, h := cfg.WindowWidth, cfg.WindowHeight
	panel := s.SidePanelWidth
	pad := s.Padding

	var f Frame
	f.SidePanel = NewRect(0, 0, panel, h)

	side := cfg.CollapsedWidth - 2*toggleInset
	f.Toggle = NewRect(panel-side-toggleInset, pad, side, side)

	f.NavLabels = s.SidePanelOpen
	y := f.Toggle.Max().Y + pad
	for range Pages() {
		f.Nav = append(f.Nav, NewRect(toggleInset, y, panel-2*toggleInset, side))
		y += side + pad/2
	}

	f.Central = NewRect(panel, 0, w-panel, h)

	f.Watermark = NewRect(w/2-watermark.Width/2, h/2-watermark.Height/2, watermark.Width, watermark.Height)

	innerH := h - 2*pad
	f.LeftPanel = NewRect(panel+pad, pad, w/2-cfg.CollapsedWidth, innerH)
	rightX := f.LeftPanel.Max().X + pad
	rightW := w - pad - rightX - toggleInset
	if rightW < 0 {
		rightW = 0
	}
	f.RightPanel = NewRect(rightX, pad, rightW, innerH)

	return f
}
