package shell

import (
	"fmt"

	"github.com/droidium/droidium/internal/apperrors"
)

// Config holds the fixed geometry and typography of the shell window.
type Config struct {
	Title        string
	WindowWidth  float32
	WindowHeight float32

	CollapsedWidth float32
	ExpandedWidth  float32

	LabelFontSize   float32
	HeadingFontSize float32
	Padding         float32

	// WatermarkAlpha is the watermark opacity out of 255.
	WatermarkAlpha int

	StartPage Page
	StartOpen bool
}

func DefaultConfig() Config {
	return Config{
		Title:           "Droidium",
		WindowWidth:     1280,
		WindowHeight:    600,
		CollapsedWidth:  40,
		ExpandedWidth:   160,
		LabelFontSize:   16,
		HeadingFontSize: 20,
		Padding:         10,
		WatermarkAlpha:  10,
		StartPage:       PageAdb,
		StartOpen:       false,
	}
}

func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return apperrors.Config(fmt.Sprintf("window size must be positive, got %vx%v", c.WindowWidth, c.WindowHeight))
	case c.CollapsedWidth <= 0:
		return apperrors.Config("collapsed side panel width must be positive")
	case c.CollapsedWidth >= c.ExpandedWidth:
		return apperrors.Config(fmt.Sprintf("expanded width %v must exceed collapsed width %v", c.ExpandedWidth, c.CollapsedWidth))
	case c.ExpandedWidth >= c.WindowWidth:
		return apperrors.Config("expanded side panel does not fit the window")
	case c.LabelFontSize <= 0 || c.HeadingFontSize <= 0:
		return apperrors.Config("font sizes must be positive")
	case c.Padding < 0:
		return apperrors.Config("padding must not be negative")
	case c.WatermarkAlpha < 0 || c.WatermarkAlpha > 255:
		return apperrors.Config(fmt.Sprintf("watermark alpha %d is outside 0..255", c.WatermarkAlpha))
	case !c.StartPage.Valid():
		return apperrors.Config(fmt.Sprintf("unknown start page %d", int(c.StartPage)))
	}
	return nil
}
