package measure

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font measures text in pixels using a font face.
//
// A font.Face is not safe for concurrent use, and neither is Font.
type Font struct {
	face font.Face
}

// NewFont wraps face. A nil face measures everything as 0.
func NewFont(face font.Face) *Font {
	return &Font{face: face}
}

// Basic returns a measurer for the fixed 7x13 bitmap face.
func Basic() *Font {
	return NewFont(basicfont.Face7x13)
}

// GoRegular returns a measurer for the Go Regular font at size points and
// dpi dots per inch.
func GoRegular(size, dpi float64) (*Font, error) {
	return ParseTTF(goregular.TTF, size, dpi)
}

// ParseTTF parses a TrueType/OpenType font and returns a measurer for it.
func ParseTTF(data []byte, size, dpi float64) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if dpi <= 0 {
		dpi = 72
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face (size %.1f, dpi %.0f): %w", size, dpi, err)
	}
	return NewFont(face), nil
}

// Face returns the wrapped face.
func (f *Font) Face() font.Face {
	if f == nil {
		return nil
	}
	return f.face
}

// Measure returns the advance width of text in whole pixels, rounded up.
func (f *Font) Measure(text string) int {
	if f == nil || f.face == nil || text == "" {
		return 0
	}
	return font.MeasureString(f.face, text).Ceil()
}

// Close releases the face.
func (f *Font) Close() error {
	if f == nil || f.face == nil {
		return nil
	}
	return f.face.Close()
}
