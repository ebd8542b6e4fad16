// Package canvas provides the surfaces a rendered figure is drawn on.
package canvas

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
)

// Canvas receives lines in pixel coordinates, y pointing down.
type Canvas interface {
	SetColor(c color.Color)
	Line(x0, y0, x1, y1 float64)
	Save(path string) error
}

var (
	// AxisColor is used for the guide lines drawn by Setup.
	AxisColor = color.NRGBA{R: 0, G: 0, B: 240, A: 51}
	// FigureColor is the colour Setup leaves selected.
	FigureColor = color.NRGBA{A: 255}
)

// New returns a size×size canvas for the format implied by the extension of
// path: ".png" or ".svg".
func New(path string, size int) (Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %d", size)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return NewPNG(size), nil
	case ".svg":
		return NewSVG(size), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q, want .png or .svg", ext)
	}
}

// Setup draws the axes and the bounds of a size×size canvas, then selects
// FigureColor.
func Setup(c Canvas, size float64) {
	c.SetColor(AxisColor)
	for _, y := range []float64{0, size / 2, size - 1} {
		c.Line(0, y, size, y)
	}
	for _, x := range []float64{0, size / 2, size - 1} {
		c.Line(x, 0, x, size)
	}
	c.SetColor(FigureColor)
}
