package render

import "image/color"

// Palette is the fixed color scheme of a rendered card.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Reading    color.RGBA // orange, used for kun chips and compound readings
	Chip       color.RGBA // chip background
	BoxFill    color.RGBA
	BoxBorder  color.RGBA
	Accent     color.RGBA
}

// DefaultPalette returns the stock wallpaper scheme: white text on black,
// orange readings, a slightly lifted box fill.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0, 0, 0, 255},
		Text:       color.RGBA{255, 255, 255, 255},
		Reading:    color.RGBA{255, 165, 0, 255},
		Chip:       color.RGBA{20, 20, 20, 255},
		BoxFill:    color.RGBA{20, 20, 20, 255},
		BoxBorder:  color.RGBA{255, 255, 255, 255},
		Accent:     color.RGBA{100, 149, 237, 255},
	}
}

// Config carries everything a Renderer needs. It is passed by value into
// NewRenderer, never read from package state, so tests can vary palette
// and baseline per renderer without leakage.
type Config struct {
	Palette Palette

	// Baseline canvas the layout constants are authored against.
	BaseWidth  int
	BaseHeight int

	// FontPaths is the ordered probe list for a CJK-capable font. Empty
	// means the built-in platform list.
	FontPaths []string
}

// DefaultConfig returns the stock 1920x1080 configuration.
func DefaultConfig() Config {
	return Config{
		Palette:    DefaultPalette(),
		BaseWidth:  1920,
		BaseHeight: 1080,
	}
}
