// Package lsys interprets Lindenmayer-system grammars and draws them with a
// turtle.
//
// A grammar is an axiom and a block of rules, both written in a small
// language:
//
//	a-z     a letter; expanded from the rule table while depth is left
//	f, g    at the bottom, 'f' draws one step and 'g' moves one step
//	|       always draws one step, never expands
//	+  -    turn right or left by the angle step
//	N+ N-   turn by N angle steps
//	[ ... ] run the contents on a copy of the turtle
//
// Rules are written one per line as "x=...". [ParseRule] and [ParseRules]
// turn text into a [Rule] and [Rules]; [Evaluate] walks them, and [Render]
// walks them twice to fit the drawing into a [Viewport]:
//
//	fig, err := lsys.NewFigure("f++f++f", "f=f-f++f-f", lsys.Config{
//		InitialAngle:    180,
//		AngleStep:       60,
//		ScaleMultiplier: 0.6,
//		Depth:           6,
//	})
//	if err != nil {
//		return err
//	}
//	err = fig.Render(lsys.Viewport{Size: 400, Border: 10}, func(x0, y0, x1, y1 float64) {
//		// draw a line
//	})
package lsys
