package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"ball.png", "ball.png"},
		{"assets/ball.png", "ball.png"},
		{"/home/me/chrono/assets/sfx/jump.wav", "sfx/jump.wav"},
		{"/tmp/goal.png", "goal.png"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := cleanAssetPath(c.in); got != c.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestMissingImageFallsBackToNil(t *testing.T) {
	if img := Image("no_such_sprite.png"); img != nil {
		t.Fatalf("expected nil image for a missing asset")
	}
	if _, ok := imageCache["no_such_sprite.png"]; !ok {
		t.Fatalf("failed lookup was not cached")
	}
	if img := Image(""); img != nil {
		t.Fatalf("expected nil for empty name")
	}
}

func TestMissingSoundIsAnError(t *testing.T) {
	if _, err := LoadFile("no_such_sound.wav"); err == nil {
		t.Fatalf("expected error for missing sound")
	}
}
