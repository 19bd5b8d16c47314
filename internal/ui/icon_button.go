package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// iconButton is a flat icon that shows a pointer cursor and dims on hover.
type iconButton struct {
	widget.BaseWidget
	icon    *canvas.Image
	hovered bool
	onTap   func()
}

func newIconButton(res fyne.Resource, onTap func()) *iconButton {
	themed := theme.NewThemedResource(res)
	themed.ColorName = theme.ColorNameForeground

	icon := canvas.NewImageFromResource(themed)
	icon.FillMode = canvas.ImageFillContain

	b := &iconButton{icon: icon, onTap: onTap}
	b.ExtendBaseWidget(b)
	return b
}

func (b *iconButton) Tapped(_ *fyne.PointEvent) {
	if b.onTap != nil {
		b.onTap()
	}
}

func (b *iconButton) MouseIn(_ *desktop.MouseEvent)    { b.setHover(true) }
func (b *iconButton) MouseMoved(_ *desktop.MouseEvent) {}
func (b *iconButton) MouseOut()                        { b.setHover(false) }

func (b *iconButton) setHover(on bool) {
	if b.hovered == on {
		return
	}
	b.hovered = on
	if on {
		b.icon.Translucency = 0.4
	} else {
		b.icon.Translucency = 0
	}
	b.icon.Refresh()
}

func (b *iconButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (b *iconButton) MinSize() fyne.Size {
	return fyne.NewSize(24, 24)
}

func (b *iconButton) CreateRenderer() fyne.WidgetRenderer {
	return &iconButtonRenderer{b: b}
}

type iconButtonRenderer struct {
	b *iconButton
}

func (r *iconButtonRenderer) Layout(s fyne.Size) {
	r.b.icon.Resize(s)
	r.b.icon.Move(fyne.NewPos(0, 0))
}

func (r *iconButtonRenderer) MinSize() fyne.Size {
	return r.b.MinSize()
}

func (r *iconButtonRenderer) Refresh() {
	canvas.Refresh(r.b.icon)
}

func (r *iconButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.b.icon}
}

func (r *iconButtonRenderer) Destroy() {}
