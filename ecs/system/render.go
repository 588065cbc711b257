package system

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Palette is the resolved set of colours the renderer uses.
type Palette struct {
	PastBg, PastPlat, PastBorder          color.Color
	PresentBg, PresentPlat, PresentBorder color.Color
	Player, Lever, LeverActive            color.Color
	Spike, Goal                           color.Color
	Laser, LaserCore, LaserOff            color.Color
	Button, ButtonActive                  color.Color
}

// PaletteFrom fills unset entries of spec from the built-in palette.
func PaletteFrom(spec prefabs.PaletteSpec) Palette {
	def := prefabs.DefaultWorldSpec().Palette
	pick := func(c, fallback *prefabs.YAMLColor) color.Color {
		return c.Or(fallback.Or(colornames.Magenta))
	}
	return Palette{
		PastBg:        pick(spec.PastBg, def.PastBg),
		PastPlat:      pick(spec.PastPlat, def.PastPlat),
		PastBorder:    pick(spec.PastBorder, def.PastBorder),
		PresentBg:     pick(spec.PresentBg, def.PresentBg),
		PresentPlat:   pick(spec.PresentPlat, def.PresentPlat),
		PresentBorder: pick(spec.PresentBorder, def.PresentBorder),
		Player:        pick(spec.Player, def.Player),
		Lever:         pick(spec.Lever, def.Lever),
		LeverActive:   pick(spec.LeverActive, def.LeverActive),
		Spike:         pick(spec.Spike, def.Spike),
		Goal:          pick(spec.Goal, def.Goal),
		Laser:         pick(spec.Laser, def.Laser),
		LaserCore:     pick(spec.LaserCore, def.LaserCore),
		LaserOff:      pick(spec.LaserOff, def.LaserOff),
		Button:        pick(spec.Button, def.Button),
		ButtonActive:  pick(spec.ButtonActive, def.ButtonActive),
	}
}

var (
	gridColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x0d}
	burnedFill     = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	ghostLaserFill = color.NRGBA{R: 60, A: 178}
	hintColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}
)

// RenderSystem draws the world as two side-by-side viewports sharing one
// camera: the past on the left and the present on the right.
type RenderSystem struct {
	palette  Palette
	tileSize float64
	cullPad  float64
	face     text.Face
}

func NewRenderSystem(spec prefabs.WorldSpec) *RenderSystem {
	return &RenderSystem{
		palette:  PaletteFrom(spec.Palette),
		tileSize: spec.TileSize,
		cullPad:  spec.Camera.CullPad,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// view is one half of the screen plus the shake offset applied to it.
type view struct {
	dst *ebiten.Image
	Viewport
	dx, dy float64
}

func (v view) rect(bb cp.BB) (float32, float32, float32, float32) {
	p := v.Project(bb)
	return float32(p.L + v.dx), float32(p.B + v.dy), float32(common.Width(p)), float32(common.Height(p))
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	half := sw / 2

	camX, dx, dy := 0.0, 0.0, 0.0
	if _, cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		camX = cam.X
		dx, dy = cam.ShakeOffset[0], cam.ShakeOffset[1]
	}
	var tick uint64
	var sess *component.Session
	if s, _, ok := session(w); ok {
		sess = s
		tick = s.Tick
	}

	past := view{
		dst:      screen.SubImage(image.Rect(0, 0, int(half), int(sh))).(*ebiten.Image),
		Viewport: Viewport{OriginX: 0, CameraX: camX, Width: half, CullPad: r.cullPad},
		dx:       dx,
		dy:       dy,
	}
	present := view{
		dst:      screen.SubImage(image.Rect(int(half), 0, int(sw), int(sh))).(*ebiten.Image),
		Viewport: Viewport{OriginX: half, CameraX: camX, Width: half, CullPad: r.cullPad},
		dx:       dx,
		dy:       dy,
	}

	r.drawBackground(past, sh, r.palette.PastBg)
	r.drawPlatforms(w, past, component.TimelinePast, r.palette.PastPlat, r.palette.PastBorder)
	r.drawButtons(w, past)
	r.drawSpikes(w, past, tick, true)
	r.drawLasers(w, past, sess, true)
	r.drawLever(w, past)
	r.drawPlayer(w, past, 1)

	r.drawBackground(present, sh, r.palette.PresentBg)
	r.drawPlatforms(w, present, component.TimelinePresent, r.palette.PresentPlat, r.palette.PresentBorder)
	r.drawSpikes(w, present, tick, false)
	r.drawLasers(w, present, sess, false)
	r.drawPlayer(w, present, 0.5)
	r.drawGoal(w, present)
	r.drawHUD(w, present, sess)

	vector.StrokeLine(screen, float32(half+dx), 0, float32(half+dx), float32(sh), 4, color.White, false)
}

func (r *RenderSystem) drawBackground(v view, height float64, bg color.Color) {
	x := float32(v.OriginX + v.dx)
	vector.DrawFilledRect(v.dst, x, float32(v.dy), float32(v.Width), float32(height), bg, false)

	ts := r.tileSize
	if ts <= 0 {
		return
	}
	for gx := -math.Mod(v.CameraX, ts); gx < v.Width; gx += ts {
		sx := float32(v.OriginX + gx + v.dx)
		vector.StrokeLine(v.dst, sx, 0, sx, float32(height), 1, gridColor, false)
	}
	for gy := 0.0; gy < height; gy += ts {
		sy := float32(gy + v.dy)
		vector.StrokeLine(v.dst, x, sy, x+float32(v.Width), sy, 1, gridColor, false)
	}
}

func (r *RenderSystem) drawPlatforms(w *ecs.World, v view, timeline component.Timeline, fill, border color.Color) {
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		if !p.Timeline.Has(timeline) || !v.Visible(p.Bounds.L) {
			return
		}
		x, y, bw, bh := v.rect(p.Bounds)
		vector.DrawFilledRect(v.dst, x, y, bw, bh, fill, false)
		vector.StrokeRect(v.dst, x, y, bw, bh, 2, border, false)
	})
}

func (r *RenderSystem) drawButtons(w *ecs.World, v view) {
	ecs.ForEach(w, component.TimeButtonComponent.Kind(), func(_ ecs.Entity, b *component.TimeButton) {
		if !v.Visible(b.Bounds.L) {
			return
		}
		x, y, bw, bh := v.rect(b.Bounds)
		clr := r.palette.Button
		if b.Pressed {
			clr = r.palette.ButtonActive
		}
		vector.DrawFilledRect(v.dst, x, y, bw, bh, clr, false)
		if !b.Pressed {
			vector.DrawFilledRect(v.dst, x+5, y-5, bw-10, 5, hintColor, false)
		}
	})
}

// drawSpikes bobs spikes gently. ghost draws the faded copy shown in the
// past, where spikes cannot hurt but are still worth seeing.
func (r *RenderSystem) drawSpikes(w *ecs.World, v view, tick uint64, ghost bool) {
	floatY := float32(math.Sin(float64(tick)/12) * 3)
	alpha := float32(1)
	if ghost {
		alpha = 0.3
	}

	ecs.ForEach(w, component.HazardComponent.Kind(), func(e ecs.Entity, h *component.Hazard) {
		if h.Kind != component.HazardSpike || !v.Visible(h.Bounds.L) {
			return
		}
		x, y, bw, bh := v.rect(h.Bounds)
		y += floatY

		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && s.Image != nil {
			drawImageInRect(v.dst, s.Image, x, y, bw, bh, alpha)
			return
		}
		vector.DrawFilledRect(v.dst, x, y, bw, bh, withAlpha(r.palette.Spike, alpha), false)
	})
}

func (r *RenderSystem) drawLasers(w *ecs.World, v view, sess *component.Session, ghost bool) {
	active := sess == nil || sess.LasersActive
	var tick uint64
	if sess != nil {
		tick = sess.Tick
	}

	ecs.ForEach(w, component.HazardComponent.Kind(), func(_ ecs.Entity, h *component.Hazard) {
		if h.Kind != component.HazardLaser || !v.Visible(h.Bounds.L) {
			return
		}
		x, y, bw, bh := v.rect(h.Bounds)
		cx := x + bw/2

		switch {
		case ghost:
			vector.DrawFilledRect(v.dst, cx-4, y, 8, bh, ghostLaserFill, false)
			vector.DrawFilledRect(v.dst, cx-1, y, 2, bh, color.Black, false)
		case active:
			pulse := float32(math.Sin(float64(tick)/6) * 3)
			glow := withAlpha(r.palette.Laser, 0.35)
			vector.DrawFilledRect(v.dst, cx-10-pulse, y, 20+2*pulse, bh, glow, false)
			vector.DrawFilledRect(v.dst, cx-6-pulse/2, y, 12+pulse, bh, r.palette.Laser, false)
			vector.DrawFilledRect(v.dst, cx-3, y, 6, bh, r.palette.LaserCore, false)
		default:
			vector.DrawFilledRect(v.dst, cx-1, y, 4, bh, r.palette.LaserOff, false)
		}
	})
}

func (r *RenderSystem) drawLever(w *ecs.World, v view) {
	ecs.ForEach(w, component.LeverComponent.Kind(), func(_ ecs.Entity, l *component.Lever) {
		if !v.Visible(l.Bounds.L) {
			return
		}
		x, y, bw, bh := v.rect(l.Bounds)
		clr := r.palette.Lever
		handleX := float32(5)
		if l.Active {
			clr = r.palette.LeverActive
			handleX = bw - 10
		}
		vector.DrawFilledRect(v.dst, x, y+10, bw, bh-10, clr, false)
		vector.DrawFilledRect(v.dst, x+handleX, y, 10, 20, color.White, false)

		if !l.Active {
			r.drawText(v.dst, "E", float64(x+bw/2)-3.5, float64(y)-28, 1, color.White)
		}
	})
}

func (r *RenderSystem) drawPlayer(w *ecs.World, v view, alpha float32) {
	e, p, t, b, ok := firstPlayer(w)
	if !ok {
		return
	}
	x, y, bw, bh := v.rect(playerBox(t, b))
	cx, cy := x+bw/2, y+bh/2
	radius := bw / 2

	if p.Burned && alpha == 1 {
		vector.DrawFilledCircle(v.dst, cx, cy, radius+4, withAlpha(colornames.Orange, 0.3), true)
		vector.DrawFilledCircle(v.dst, cx, cy, radius, burnedFill, true)
		vector.StrokeCircle(v.dst, cx, cy, radius, 3, colornames.Orange, true)
		return
	}

	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && s.Image != nil {
		size := s.DrawSize
		if size <= 0 {
			size = float64(bw)
		}
		// The sprite is a little larger than the box and sits slightly high.
		lift := (size - float64(bh)) / 4
		iw, ih := s.Image.Bounds().Dx(), s.Image.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
		op.GeoM.Scale(size/float64(iw), size/float64(ih))
		op.GeoM.Translate(0, -lift)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(float64(cx), float64(cy))
		op.ColorScale.ScaleAlpha(alpha)
		op.Filter = ebiten.FilterLinear
		v.dst.DrawImage(s.Image, op)
		return
	}

	vector.DrawFilledCircle(v.dst, cx, cy, radius, withAlpha(r.palette.Player, alpha), true)
	// A spoke so the roll is visible without a sprite.
	sx := cx + float32(math.Cos(t.Rotation))*radius*0.8
	sy := cy + float32(math.Sin(t.Rotation))*radius*0.8
	vector.StrokeLine(v.dst, cx, cy, sx, sy, 3, withAlpha(r.palette.PresentBg, alpha), true)
}

func (r *RenderSystem) drawGoal(w *ecs.World, v view) {
	ecs.ForEach2(w, component.GoalComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, g *component.Goal, s *component.Sprite) {
		if !v.Visible(g.Bounds.L) {
			return
		}
		x, y, bw, bh := v.rect(g.Bounds)
		if s.Image != nil {
			drawImageInRect(v.dst, s.Image, x, y, bw, bh, 1)
			return
		}
		vector.DrawFilledRect(v.dst, x, y, bw, bh, r.palette.Goal, false)
	})
}

func (r *RenderSystem) drawHUD(w *ecs.World, v view, sess *component.Session) {
	x := v.OriginX + 40
	if Pending(w) > 0 {
		r.drawText(v.dst, "REALITY SHIFTING...", x, 60, 3, color.White)
	}
	if sess != nil && sess.LaserTimer > 0 {
		secs := int(math.Ceil(float64(sess.LaserTimer) / 60))
		r.drawText(v.dst, fmt.Sprintf("LASERS OFF: %d", secs), x, 105, 2.5, colornames.Cyan)
	}
}

func (r *RenderSystem) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, r.face, op)
}

func drawImageInRect(dst, img *ebiten.Image, x, y, w, h, alpha float32) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(iw), float64(h)/float64(ih))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func withAlpha(c color.Color, alpha float32) color.Color {
	r, g, b, a := c.RGBA()
	scale := func(v uint32) uint8 { return uint8(float32(v>>8) * alpha) }
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: scale(a)}
}
