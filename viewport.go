package lsys

import (
	"context"
	"fmt"
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// DrawFunc receives a line to draw, in viewport coordinates.
type DrawFunc func(x0, y0, x1, y1 float64)

// Viewport is a square drawing area of Size units with a margin of Border
// units on every side.
type Viewport struct {
	Size   float64
	Border float64
}

// Validate reports whether v leaves a drawable area.
func (v Viewport) Validate() error {
	switch {
	case !(v.Size > 0) || math.IsInf(v.Size, 0):
		return fmt.Errorf("%w: viewport size must be positive, got %v", ErrInvalidConfig, v.Size)
	case !(v.Border >= 0):
		return fmt.Errorf("%w: negative border %v", ErrInvalidConfig, v.Border)
	case v.Size-2*v.Border <= 0:
		return fmt.Errorf("%w: border %v leaves nothing of size %v", ErrInvalidConfig, v.Border, v.Size)
	}
	return nil
}

// Transform maps abstract units to viewport coordinates: a uniform scale
// followed by a shift.
type Transform struct {
	Scale            float64
	OffsetX, OffsetY float64

	m mt.Transform
}

// Apply maps (x, y) into the viewport.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.m.Apply(x, y)
}

// Fit returns the transform that scales b to fill v, keeping the aspect
// ratio, and centres it. The larger of b's sides spans the viewport minus
// its borders.
func (v Viewport) Fit(b Bounds) (Transform, error) {
	if err := v.Validate(); err != nil {
		return Transform{}, err
	}
	rng := b.Range()
	if b.Empty() || !(rng > 0) || math.IsInf(rng, 0) {
		return Transform{}, fmt.Errorf("%w: figure spans %s", ErrDegenerateGeometry, b)
	}

	s := (v.Size - 2*v.Border) / rng
	xoff := v.Size/2 - (b.MinX+b.Width()/2)*s
	yoff := v.Size/2 - (b.MinY+b.Height()/2)*s

	m := mt.NewTransform()
	m.Translate(xoff, yoff)
	m.Scale(s, s)

	return Transform{
		Scale:   s,
		OffsetX: xoff,
		OffsetY: yoff,
		m:       *m,
	}, nil
}

// Measure walks axiom once and returns the box around every point the
// turtle visits, drawn or not.
func Measure(axiom Rule, rules Rules, c Config) (Bounds, error) {
	return measure(context.Background(), axiom, rules, c)
}

func measure(ctx context.Context, axiom Rule, rules Rules, c Config) (Bounds, error) {
	b := EmptyBounds()
	err := walk(ctx, axiom, rules, c, func(x0, y0, x1, y1 float64, _ bool) {
		b.Extend(x0, y0)
		b.Extend(x1, y1)
	})
	if err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Render draws axiom into v. The figure has no closed-form size, so it is
// walked twice: once to measure it and once, with the same inputs, to emit
// the fitted pen-down segments to draw.
func Render(axiom Rule, rules Rules, c Config, v Viewport, draw DrawFunc) error {
	return RenderContext(context.Background(), axiom, rules, c, v, draw)
}

// RenderContext is Render that stops, returning ctx.Err(), when ctx is
// done. Nothing more is drawn after that.
func RenderContext(ctx context.Context, axiom Rule, rules Rules, c Config, v Viewport, draw DrawFunc) error {
	b, err := measure(ctx, axiom, rules, c)
	if err != nil {
		return err
	}
	logger := Logger()
	logger.Debug("figure measured", "bounds", b.String())

	t, err := v.Fit(b)
	if err != nil {
		return err
	}
	logger.Debug("viewport fitted", "scale", t.Scale, "offset_x", t.OffsetX, "offset_y", t.OffsetY)

	var drawn int
	err = walk(ctx, axiom, rules, c, func(x0, y0, x1, y1 float64, penDown bool) {
		if !penDown {
			return
		}
		sx0, sy0 := t.Apply(x0, y0)
		sx1, sy1 := t.Apply(x1, y1)
		draw(sx0, sy0, sx1, sy1)
		drawn++
	})
	if err != nil {
		return err
	}
	logger.Debug("figure rendered", "segments", drawn)
	return nil
}
