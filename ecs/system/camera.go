package system

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

// CameraSystem centres both viewports on the player horizontally and decays
// the death shake.
type CameraSystem struct {
	rand func() float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{rand: rand.Float64}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	_, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if s, _, ok := session(w); ok {
		if _, _, t, b, ok := firstPlayer(w); ok {
			cam.X = CameraX(t.X+b.Width/2, s.LevelWidth, cam.ViewWidth, cam.RightPad)
		}
	}

	cam.ShakeOffset = [2]float64{}
	if cam.Shake <= 0 {
		return
	}
	cam.ShakeOffset[0] = (cs.rand() - 0.5) * cam.Shake
	cam.ShakeOffset[1] = (cs.rand() - 0.5) * cam.Shake
	cam.Shake *= cam.ShakeDecay
	if cam.Shake < 1 {
		cam.Shake = 0
	}
}

// CameraX is the scroll that centres targetX in a view of viewWidth, kept
// within [0, levelWidth - viewWidth + rightPad].
func CameraX(targetX, levelWidth, viewWidth, rightPad float64) float64 {
	maxX := math.Max(0, levelWidth-viewWidth+rightPad)
	return common.Clamp(targetX-viewWidth/2, 0, maxX)
}

// Viewport maps world coordinates into one half of the screen.
type Viewport struct {
	OriginX float64
	CameraX float64
	Width   float64
	CullPad float64
}

// ScreenX converts a world x to a screen x inside this viewport.
func (v Viewport) ScreenX(worldX float64) float64 {
	return worldX - v.CameraX + v.OriginX
}

// Project moves bb into screen space.
func (v Viewport) Project(bb cp.BB) cp.BB {
	return common.Offset(bb, v.OriginX-v.CameraX, 0)
}

// Visible reports whether an object whose left edge is at worldX should be
// drawn. Objects slightly off either edge still draw so they slide in.
func (v Viewport) Visible(worldX float64) bool {
	rx := worldX - v.CameraX
	return rx > -v.CullPad && rx < v.Width+v.CullPad
}
