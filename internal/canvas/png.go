package canvas

import (
	"errors"
	"image/color"

	"github.com/gogpu/gg"
)

// PNG rasterises lines with gg. Lines of one colour are collected into a
// single path and stroked when the colour changes or the image is saved.
type PNG struct {
	dc      *gg.Context
	pending bool
	err     error
}

// NewPNG returns a white size×size image.
func NewPNG(size int) *PNG {
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.White)
	dc.SetLineWidth(1)
	dc.SetColor(FigureColor)
	return &PNG{dc: dc}
}

func (p *PNG) flush() {
	if !p.pending {
		return
	}
	p.pending = false
	if err := p.dc.Stroke(); err != nil && p.err == nil {
		p.err = err
	}
}

// SetColor strokes the lines drawn so far and switches colour.
func (p *PNG) SetColor(c color.Color) {
	p.flush()
	p.dc.SetColor(c)
}

// Line adds a line to the current path.
func (p *PNG) Line(x0, y0, x1, y1 float64) {
	p.dc.MoveTo(x0, y0)
	p.dc.LineTo(x1, y1)
	p.pending = true
}

// Save strokes any pending lines and writes the image to path. The
// canvas can't be drawn on afterwards.
func (p *PNG) Save(path string) error {
	p.flush()
	if p.err != nil {
		return p.err
	}
	err := p.dc.SavePNG(path)
	return errors.Join(err, p.dc.Close())
}
