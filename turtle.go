package lsys

import (
	"fmt"
	"math"
)

// MaxDepth bounds Config.Depth. Each level of expansion is a level of
// recursion.
const MaxDepth = 1 << 16

// Config holds the numeric settings of a run.
type Config struct {
	InitialAngle    float64 // degrees, 0 points along +y
	AngleStep       float64 // degrees per '+' or '-'
	ScaleMultiplier float64 // applied to the step length at every expansion level
	Depth           int     // expansion budget
	MaxSegments     int     // 0 means no limit
}

// Validate reports whether c can drive an evaluation.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.InitialAngle) || math.IsInf(c.InitialAngle, 0):
		return fmt.Errorf("%w: initial angle %v", ErrInvalidConfig, c.InitialAngle)
	case math.IsNaN(c.AngleStep) || math.IsInf(c.AngleStep, 0):
		return fmt.Errorf("%w: angle step %v", ErrInvalidConfig, c.AngleStep)
	case !(c.ScaleMultiplier > 0) || math.IsInf(c.ScaleMultiplier, 0):
		return fmt.Errorf("%w: scale multiplier must be positive, got %v", ErrInvalidConfig, c.ScaleMultiplier)
	case c.Depth < 0:
		return fmt.Errorf("%w: negative depth %d", ErrInvalidConfig, c.Depth)
	case c.Depth > MaxDepth:
		return fmt.Errorf("%w: depth %d is over %d", ErrInvalidConfig, c.Depth, MaxDepth)
	case c.MaxSegments < 0:
		return fmt.Errorf("%w: negative segment limit %d", ErrInvalidConfig, c.MaxSegments)
	}
	return nil
}

// Turtle is the cursor state threaded through an evaluation. It is a plain
// value: copying it is how bracketed sub-rules get their own cursor.
type Turtle struct {
	Heading float64 // degrees
	X, Y    float64
	Scale   float64 // current step length
	Depth   int     // remaining expansion budget

	AngleStep       float64
	ScaleMultiplier float64
}

// NewTurtle returns the starting state for c: at the origin, step length 1.
func NewTurtle(c Config) Turtle {
	return Turtle{
		Heading:         c.InitialAngle,
		Scale:           1,
		Depth:           c.Depth,
		AngleStep:       c.AngleStep,
		ScaleMultiplier: c.ScaleMultiplier,
	}
}

// Forward returns the position one step ahead of t.
func (t Turtle) Forward() (x, y float64) {
	sin, cos := math.Sincos(t.Heading * math.Pi / 180)
	return t.X + sin*t.Scale, t.Y + cos*t.Scale
}
