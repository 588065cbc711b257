package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/chrono/assets"
	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/ecs/entity"
	"github.com/milk9111/chrono/ecs/system"
	"github.com/milk9111/chrono/levels"
	"github.com/milk9111/chrono/prefabs"
	"github.com/milk9111/chrono/progress"
	"golang.org/x/image/font/basicfont"
)

type mode int

const (
	modeMenu mode = iota
	modePlaying
)

var menuBg = color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}

type Game struct {
	debug bool
	mode  mode

	playerSpec prefabs.PlayerSpec
	worldSpec  prefabs.WorldSpec
	watcher    *prefabs.Watcher

	progress system.ProgressStore

	levelIndex int
	world      *ecs.World
	input      *system.InputSystem
	sim        *ecs.Scheduler
	render     *system.RenderSystem

	// Sounds outlive level worlds, so they sit in a world of their own.
	audioWorld *ecs.World
	audio      *system.AudioSystem

	menuUI *ebitenui.UI
	endUI  *ebitenui.UI
	face   text.Face
}

// NewGame loads tuning and opens the level menu, or starts startLevel
// directly when it is not negative. A nil store keeps progress in memory.
func NewGame(store *progress.FileStore, debug bool, startLevel int) *Game {
	g := &Game{
		debug:      debug,
		input:      system.NewInputSystem(),
		audioWorld: ecs.NewWorld(),
		audio:      system.NewAudioSystem(),
		face:       text.NewGoXFace(basicfont.Face7x13),
	}
	if store != nil {
		g.progress = store
	} else {
		g.progress = &progress.MemoryStore{}
	}

	g.loadSpecs()
	g.loadAudio()

	if debug {
		w, err := prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.menuUI = newLevelMenu(g)
	if startLevel >= 0 {
		g.startLevel(startLevel)
	}
	return g
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) loadSpecs() {
	ps, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("player spec: %v (using defaults)", err)
	}
	ws, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Printf("world spec: %v (using defaults)", err)
	}
	g.playerSpec = ps
	g.worldSpec = ws
	if g.debug {
		log.Printf("tuning: player.yaml from %v, world.yaml from %v", prefabs.Locate("player.yaml"), prefabs.Locate("world.yaml"))
	}
	g.render = system.NewRenderSystem(ws)
}

func (g *Game) loadAudio() {
	for _, e := range ecs.Entities(g.audioWorld) {
		ecs.DestroyEntity(g.audioWorld, e)
	}
	if _, err := entity.NewAudio(g.audioWorld, g.playerSpec.Audio, assets.AudioPlayer); err != nil {
		log.Printf("audio: %v", err)
	}
}

// startLevel builds a fresh world for index. A level that fails to build
// sends the player back to the menu.
func (g *Game) startLevel(index int) {
	index = levels.ClampIndex(index)
	src, err := levels.Load(index)
	if err != nil {
		log.Printf("load level %d: %v", index, err)
		g.openMenu()
		return
	}

	opts := entity.Options{
		Player:     g.playerSpec,
		World:      g.worldSpec,
		LevelIndex: index,
		LevelCount: levels.Count(),
		ViewWidth:  common.BaseWidth,
		ViewHeight: common.BaseHeight,
		Images:     assets.Image,
	}
	w := ecs.NewWorld()
	if _, err := entity.BuildLevel(w, src.Rows, opts); err != nil {
		log.Printf("build level %q: %v", src.Name, err)
		g.openMenu()
		return
	}

	g.levelIndex = index
	g.world = w
	g.sim = ecs.NewScheduler(g.input, system.NewSimulation(g, g.progress))
	g.endUI = nil
	g.mode = modePlaying
	if g.debug {
		log.Printf("started level %d (%s)", index, src.Name)
	}
}

func (g *Game) restart() {
	g.startLevel(g.levelIndex)
}

func (g *Game) nextLevel() {
	if g.levelIndex < levels.Count()-1 {
		g.startLevel(g.levelIndex + 1)
		return
	}
	g.restart()
}

// resetProgress locks every level but the first again.
func (g *Game) resetProgress() {
	if r, ok := g.progress.(interface{ Reset() error }); ok {
		if err := r.Reset(); err != nil {
			log.Printf("reset progress: %v", err)
		}
	}
	g.menuUI = newLevelMenu(g)
}

func (g *Game) openMenu() {
	g.mode = modeMenu
	g.world = nil
	g.endUI = nil
	g.menuUI = newLevelMenu(g)
}

func (g *Game) Update() error {
	g.applyReloads()

	switch g.mode {
	case modeMenu:
		g.menuUI.Update()
	case modePlaying:
		g.updatePlaying()
	}

	g.audio.Update(g.audioWorld)
	return nil
}

func (g *Game) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.openMenu()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return
	}

	if g.endUI != nil {
		g.endUI.Update()
		return
	}
	if g.world == nil {
		return
	}
	g.sim.Update(g.world)
}

// applyReloads picks up edited prefab files. New tuning takes effect on the
// next level start.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		if err != nil {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}

	names := g.watcher.Drain()
	if len(names) == 0 {
		return
	}
	for _, name := range names {
		log.Printf("prefab changed: %s", name)
	}
	g.loadSpecs()
	g.loadAudio()
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case modeMenu:
		screen.Fill(menuBg)
		g.menuUI.Draw(screen)
	case modePlaying:
		g.render.Draw(g.world, screen)
		g.drawBadge(screen)
		if g.endUI != nil {
			g.endUI.Draw(screen)
		}
	}
}

func (g *Game) drawBadge(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(20, 16)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, fmt.Sprintf("LEVEL %02d", g.levelIndex+1), g.face, op)

	if g.debug {
		op := &text.DrawOptions{}
		op.GeoM.Translate(20, 50)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), g.face, op)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Hooks.

func (g *Game) OnDeath(burned bool) {
	if g.debug {
		log.Printf("level %d: died (burned=%v)", g.levelIndex, burned)
	}
}

func (g *Game) OnVictory() {
	if g.debug {
		log.Printf("level %d: cleared", g.levelIndex)
	}
}

func (g *Game) OnLevelAdvance(newIndex int) {
	log.Printf("unlocked level %d", newIndex+1)
}

func (g *Game) ShowEndPanel(win, hasNextLevel bool) {
	g.endUI = newEndPanel(g, win, hasNextLevel)
}

func (g *Game) PlaySound(kind component.Sound) {
	if _, a, ok := ecs.First(g.audioWorld, component.AudioComponent.Kind()); ok {
		a.Request(kind)
	}
}
