package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedSpecsMatchDefaults(t *testing.T) {
	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	def := DefaultPlayerSpec()
	if player.Motion != def.Motion {
		t.Fatalf("player motion %+v, want %+v", player.Motion, def.Motion)
	}
	if player.Hitboxes != def.Hitboxes {
		t.Fatalf("player hitboxes %+v, want %+v", player.Hitboxes, def.Hitboxes)
	}
	if len(player.Audio) != 3 {
		t.Fatalf("expected 3 sounds, got %d", len(player.Audio))
	}

	world, err := LoadWorldSpec()
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}
	wdef := DefaultWorldSpec()
	if world.TileSize != wdef.TileSize || world.Lever != wdef.Lever || world.Button != wdef.Button || world.Outcome != wdef.Outcome {
		t.Fatalf("world spec drifted from defaults: %+v", world)
	}
	if got := world.Palette.PastPlat.Or(nil); got != (color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}) {
		t.Fatalf("past_plat = %v", got)
	}
}

func TestLoadSpecKeepsDefaultsForMissingFields(t *testing.T) {
	spec, err := LoadSpec("does_not_exist.yaml", DefaultWorldSpec())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if spec.TileSize != 40 {
		t.Fatalf("defaults not returned on error: %v", spec.TileSize)
	}

	partial := DefaultPlayerSpec()
	if err := yaml.Unmarshal([]byte("motion:\n  gravity: 1.5\n"), &partial); err != nil {
		t.Fatal(err)
	}
	if partial.Motion.Gravity != 1.5 || partial.Motion.MaxSpeed != 7 {
		t.Fatalf("partial decode lost defaults: %+v", partial.Motion)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#ff8a80"`, want: color.NRGBA{R: 0xff, G: 0x8a, B: 0x80, A: 0xff}},
		{in: `"00000080"`, want: color.NRGBA{A: 0x80}},
		{in: `"#abc"`, wantErr: true},
		{in: `"#zzzzzz"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("got %v, want %v", got.Color, c.want)
			}
		})
	}
}

func TestCleanPrefabPath(t *testing.T) {
	if got := cleanPrefabPath("prefabs/world.yaml"); got != "world.yaml" {
		t.Fatalf("got %q", got)
	}
	if !isSpecFile("a/b/player.YML") || isSpecFile("notes.txt") {
		t.Fatal("isSpecFile mismatch")
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if got := Locate("world.yaml"); got != OriginEmbedded {
		t.Fatalf("Locate before override = %v, want embedded", got)
	}
	if got := Locate("nope.yaml"); got != OriginMissing {
		t.Fatalf("Locate(nope.yaml) = %v, want missing", got)
	}

	if err := os.Mkdir(filepath.Join(dir, DiskDir), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, DiskDir, "world.yaml"), []byte("tile_size: 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Locate("prefabs/world.yaml"); got != OriginDisk {
		t.Fatalf("Locate after override = %v, want disk", got)
	}
	spec, err := LoadWorldSpec()
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}
	if spec.TileSize != 32 || spec.Lever.RippleFrames != 45 {
		t.Fatalf("override not merged over defaults: tile=%v ripple=%v", spec.TileSize, spec.Lever.RippleFrames)
	}
}
