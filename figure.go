package lsys

import (
	"context"
	"fmt"
)

// SegmentFunc receives every move of the turtle, in abstract units.
// penDown is false for moves that should not be drawn ('g').
type SegmentFunc func(x0, y0, x1, y1 float64, penDown bool)

// Evaluate walks rule with the turtle t, expanding letters from rules while
// t has depth left, and calls fn for every move. It returns the turtle as
// it stands after the last instruction.
//
// A letter with depth left is replaced by its rule, one level deeper and
// with the step length multiplied by t.ScaleMultiplier. Without depth, or
// without a rule, 'f' draws a step and 'g' moves a step; other letters are
// dropped at depth 0. Any letter other than 'f' and 'g' that has no rule is
// an ErrUndefinedSymbol, whatever the depth.
func Evaluate(rule Rule, rules Rules, t Turtle, fn SegmentFunc) (Turtle, error) {
	e := &evaluator{ctx: context.Background(), rules: rules, emit: fn}
	return e.run(rule, t)
}

// cancelEvery is how many moves and expansions pass between checks of the
// context.
const cancelEvery = 1 << 12

type evaluator struct {
	ctx   context.Context
	rules Rules
	emit  SegmentFunc

	// limit caps moves and, separately, expansions. 0 means no cap.
	limit   int
	moves   int
	expands int
}

// walk evaluates rule from the starting turtle of c, honouring
// c.MaxSegments and the cancellation of ctx.
func walk(ctx context.Context, rule Rule, rules Rules, c Config, fn SegmentFunc) error {
	if err := c.Validate(); err != nil {
		return err
	}
	e := &evaluator{ctx: ctx, rules: rules, emit: fn, limit: c.MaxSegments}
	_, err := e.run(rule, NewTurtle(c))
	return err
}

// tick is called before every move and every expansion.
func (e *evaluator) tick() error {
	if (e.moves+e.expands)%cancelEvery == 0 {
		return e.ctx.Err()
	}
	return nil
}

func (e *evaluator) run(rule Rule, t Turtle) (Turtle, error) {
	for _, in := range rule {
		var err error
		switch in.Kind {
		case TurnRightInstruction:
			t.Heading += float64(in.Count) * t.AngleStep
		case TurnLeftInstruction:
			t.Heading -= float64(in.Count) * t.AngleStep
		case PenInstruction:
			t, err = e.move(t, true)
		case LetterInstruction:
			t, err = e.letter(in.Letter, t)
		case NestedInstruction:
			// The bracket works on its own copy of t.
			_, err = e.run(in.Rule, t)
		default:
			err = fmt.Errorf("unrecognized instruction %s", in.Kind)
		}
		if err != nil {
			return t, err
		}
	}
	return t, nil
}

func (e *evaluator) letter(c byte, t Turtle) (Turtle, error) {
	sub, ok := e.rules[c]
	if !ok && c != 'f' && c != 'g' {
		return t, fmt.Errorf("%w %q", ErrUndefinedSymbol, c)
	}
	if ok && t.Depth > 0 {
		if err := e.tick(); err != nil {
			return t, err
		}
		e.expands++
		if e.limit > 0 && e.expands > e.limit {
			return t, fmt.Errorf("%w: more than %d expansions", ErrTooManySegments, e.limit)
		}
		inner := t
		inner.Scale *= t.ScaleMultiplier
		inner.Depth--
		out, err := e.run(sub, inner)
		if err != nil {
			return t, err
		}
		out.Scale, out.Depth = t.Scale, t.Depth
		return out, nil
	}

	switch c {
	case 'f':
		return e.move(t, true)
	case 'g':
		return e.move(t, false)
	}
	return t, nil
}

func (e *evaluator) move(t Turtle, penDown bool) (Turtle, error) {
	if err := e.tick(); err != nil {
		return t, err
	}
	e.moves++
	if e.limit > 0 && e.moves > e.limit {
		return t, fmt.Errorf("%w: more than %d", ErrTooManySegments, e.limit)
	}
	x, y := t.Forward()
	if e.emit != nil {
		e.emit(t.X, t.Y, x, y, penDown)
	}
	t.X, t.Y = x, y
	return t, nil
}

// Figure bundles everything needed to draw an L-system.
type Figure struct {
	Axiom  Rule
	Rules  Rules
	Config Config
}

// NewFigure parses axiom and the rule block and checks c.
func NewFigure(axiom, rules string, c Config) (*Figure, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	a, err := ParseRule(axiom)
	if err != nil {
		return nil, fmt.Errorf("axiom: %w", err)
	}
	rs, err := ParseRules(rules)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	return &Figure{Axiom: a, Rules: rs, Config: c}, nil
}

// Walk evaluates the figure from its starting turtle.
func (f *Figure) Walk(fn SegmentFunc) error {
	return walk(context.Background(), f.Axiom, f.Rules, f.Config, fn)
}

// Bounds measures the figure in abstract units.
func (f *Figure) Bounds() (Bounds, error) {
	return Measure(f.Axiom, f.Rules, f.Config)
}

// Render draws the figure fitted into v.
func (f *Figure) Render(v Viewport, draw DrawFunc) error {
	return Render(f.Axiom, f.Rules, f.Config, v, draw)
}

// RenderContext is Render that gives up with ctx's error once ctx is done.
func (f *Figure) RenderContext(ctx context.Context, v Viewport, draw DrawFunc) error {
	return RenderContext(ctx, f.Axiom, f.Rules, f.Config, v, draw)
}
