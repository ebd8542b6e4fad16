package lsys

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

type segment struct {
	X0, Y0, X1, Y1 float64
	PenDown        bool
}

// collect returns a SegmentFunc that appends to *out.
func collect(out *[]segment) SegmentFunc {
	return func(x0, y0, x1, y1 float64, penDown bool) {
		*out = append(*out, segment{x0, y0, x1, y1, penDown})
	}
}
