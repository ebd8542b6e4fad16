package lsys

import (
	"fmt"
	"math"
)

// Bounds is the axis-aligned box around a set of points. The zero value
// is not empty; use EmptyBounds to start accumulating.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyBounds returns a box that any point will replace.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Extend grows b to contain (x, y).
func (b *Bounds) Extend(x, y float64) {
	b.MinX = min(b.MinX, x)
	b.MinY = min(b.MinY, y)
	b.MaxX = max(b.MaxX, x)
	b.MaxY = max(b.MaxY, y)
}

// Empty reports whether no point has been added.
func (b Bounds) Empty() bool { return b.MinX > b.MaxX || b.MinY > b.MaxY }

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Range is the larger of Width and Height.
func (b Bounds) Range() float64 { return max(b.Width(), b.Height()) }

func (b Bounds) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}
