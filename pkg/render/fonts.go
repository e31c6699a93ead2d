package render

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFontPaths is the built-in probe order for a Japanese-capable font,
// covering the usual Linux, macOS and Windows install locations.
var DefaultFontPaths = []string{
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Windows/Fonts/msgothic.ttc",
}

// resolveFont probes the given paths in order and returns the first font
// that both exists and parses. A nil result means no usable font; the
// renderer then falls back to the built-in bitmap face, so rendering
// itself never fails for lack of a font.
func resolveFont(paths []string) *truetype.Font {
	if len(paths) == 0 {
		paths = DefaultFontPaths
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return f
	}
	return nil
}

// faceAt returns a face for the resolved font at the given pixel size, or
// the last-resort bitmap face when no font resolved.
func faceAt(f *truetype.Font, size float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
