package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rivo/uniseg"

	"github.com/droidium/droidium/internal/shell"
)

type pageText struct {
	title  string
	detail string
}

var pageTexts = map[shell.Page]pageText{
	shell.PageAdb:       {title: "Android Debug Bridge", detail: "Device tools are not available yet."},
	shell.PageFrida:     {title: "Frida", detail: "Instrumentation tools are not available yet."},
	shell.PageInjection: {title: "Library Injection", detail: "Injection tools are not available yet."},
}

// shortLabel is the first user-perceived character of name, used while the
// side panel is collapsed.
func shortLabel(name string) string {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(name, -1)
	return cluster
}

// groupBox is an outlined box with a heading and a column of labels.
type groupBox struct {
	outline *canvas.Rectangle
	heading *canvas.Text
	lines   *fyne.Container
	root    *fyne.Container
}

func newGroupBox() *groupBox {
	outline := canvas.NewRectangle(color.Transparent)
	outline.StrokeColor = theme.Color(theme.ColorNameSeparator)
	outline.StrokeWidth = 1
	outline.CornerRadius = theme.InputRadiusSize()

	heading := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	heading.TextStyle = fyne.TextStyle{Bold: true}

	lines := container.NewVBox()
	g := &groupBox{
		outline: outline,
		heading: heading,
		lines:   lines,
		root:    container.NewStack(outline, container.NewPadded(container.NewVBox(heading, lines))),
	}
	return g
}

func (g *groupBox) set(headingSize float32, title string, lines ...string) {
	g.heading.Text = title
	g.heading.TextSize = headingSize
	g.heading.Refresh()

	objs := make([]fyne.CanvasObject, 0, len(lines))
	for _, l := range lines {
		objs = append(objs, widget.NewLabel(l))
	}
	g.lines.Objects = objs
	g.lines.Refresh()
}

func (g *groupBox) title() string {
	return g.heading.Text
}

func (g *groupBox) text() []string {
	var out []string
	for _, o := range g.lines.Objects {
		if l, ok := o.(*widget.Label); ok {
			out = append(out, l.Text)
		}
	}
	return out
}

// showPage fills the two content boxes for the page selected in s.
func showPage(left, right *groupBox, s shell.State) {
	txt := pageTexts[s.Page]
	left.set(s.HeadingFontSize, txt.title, txt.detail)
	right.set(s.HeadingFontSize, "Output", "Nothing to show.")
}
