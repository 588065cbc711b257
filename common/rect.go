package common

import "github.com/jakecoffman/cp"

// Rectangles are cp.BB values in screen space (y grows downward), so B holds
// the top edge and T the bottom edge. Both are still min/max as cp expects.

// Rect builds a box from a top-left corner and size.
func Rect(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

func Width(bb cp.BB) float64  { return bb.R - bb.L }
func Height(bb cp.BB) float64 { return bb.T - bb.B }

// Overlaps is a strict intersection test: boxes sharing only an edge do not
// overlap. cp.BB.Intersects is inclusive, which would make a resting body
// collide with the floor on the horizontal pass.
func Overlaps(a, b cp.BB) bool {
	return b.L < a.R && b.R > a.L && b.B < a.T && b.T > a.B
}

// Inset shrinks bb by the given margins. Negative margins grow it.
func Inset(bb cp.BB, left, top, right, bottom float64) cp.BB {
	return cp.BB{L: bb.L + left, B: bb.B + top, R: bb.R - right, T: bb.T - bottom}
}

// Offset moves bb by (dx, dy).
func Offset(bb cp.BB, dx, dy float64) cp.BB {
	return cp.BB{L: bb.L + dx, B: bb.B + dy, R: bb.R + dx, T: bb.T + dy}
}
