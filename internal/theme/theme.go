package theme

import (
	"image/color"
)

// Theme defines the colors used to paint the toolbar and canvas.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background around the canvas
	Foreground color.RGBA // Main text color

	// Toolbar
	ToolbarBackground color.RGBA

	// Tool Buttons
	ButtonBackground         color.RGBA
	ButtonBackgroundHover    color.RGBA
	ButtonBackgroundActive   color.RGBA
	ButtonBackgroundDisabled color.RGBA
	ButtonText               color.RGBA
	ButtonTextDisabled       color.RGBA
	ButtonBorder             color.RGBA

	// Canvas
	CanvasBackground color.RGBA // Shown through transparent (erased) pixels
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                     "Default",
		Background:               color.RGBA{220, 220, 220, 255},
		Foreground:               color.RGBA{0, 0, 0, 255},
		ToolbarBackground:        color.RGBA{220, 220, 220, 255},
		ButtonBackground:         color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover:    color.RGBA{180, 180, 180, 255},
		ButtonBackgroundActive:   color.RGBA{150, 150, 150, 255},
		ButtonBackgroundDisabled: color.RGBA{215, 215, 215, 255},
		ButtonText:               color.RGBA{0, 0, 0, 255},
		ButtonTextDisabled:       color.RGBA{140, 140, 140, 255},
		ButtonBorder:             color.RGBA{0, 0, 0, 255},
		CanvasBackground:         color.RGBA{255, 255, 255, 255},
	}
}
