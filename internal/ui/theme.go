package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/droidium/droidium/internal/shell"
)

// Theme is the default dark theme with the font sizes of a shell state.
// Padding is not mapped; shell.ComputeFrame places everything that uses it.
type Theme struct {
	fyne.Theme
	label   float32
	heading float32
}

func NewTheme(s shell.State) *Theme {
	return &Theme{
		Theme:   theme.DefaultTheme(),
		label:   s.LabelFontSize,
		heading: s.HeadingFontSize,
	}
}

func (t *Theme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(n, theme.VariantDark)
}

func (t *Theme) Size(n fyne.ThemeSizeName) float32 {
	switch n {
	case theme.SizeNameText:
		return t.label
	case theme.SizeNameHeadingText:
		return t.heading
	case theme.SizeNameSubHeadingText:
		return (t.label + t.heading) / 2
	}
	return t.Theme.Size(n)
}
