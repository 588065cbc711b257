package common

import "testing"

func TestOverlaps(t *testing.T) {
	base := Rect(0, 0, 40, 40)
	cases := []struct {
		name  string
		other [4]float64
		want  bool
	}{
		{"inside", [4]float64{10, 10, 5, 5}, true},
		{"partial", [4]float64{30, 30, 20, 20}, true},
		{"touching_right_edge", [4]float64{40, 0, 40, 40}, false},
		{"touching_bottom_edge", [4]float64{0, 40, 40, 40}, false},
		{"apart", [4]float64{100, 100, 10, 10}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := Rect(c.other[0], c.other[1], c.other[2], c.other[3])
			if got := Overlaps(base, o); got != c.want {
				t.Fatalf("Overlaps = %v, want %v", got, c.want)
			}
			if got := Overlaps(o, base); got != c.want {
				t.Fatalf("Overlaps not symmetric: %v", got)
			}
		})
	}
}

func TestInset(t *testing.T) {
	bb := Inset(Rect(0, 0, 40, 40), 8, 8, 8, 0)
	if bb.L != 8 || bb.B != 8 || bb.R != 32 || bb.T != 40 {
		t.Fatalf("unexpected inset box %+v", bb)
	}
	if Width(bb) != 24 || Height(bb) != 32 {
		t.Fatalf("unexpected size %vx%v", Width(bb), Height(bb))
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(5, 0, 2); got != 2 {
		t.Fatalf("got %d", got)
	}
	if got := ClampInt(-1, 0, 2); got != 0 {
		t.Fatalf("got %d", got)
	}
	if got := ClampInt(3, 0, -1); got != 0 {
		t.Fatalf("empty range should clamp to lo, got %d", got)
	}
}
