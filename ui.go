package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/levels"
	"golang.org/x/image/font/basicfont"
)

var (
	white      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	winColor   = color.NRGBA{R: 0x4a, G: 0xde, B: 0x80, A: 0xff}
	loseColor  = color.NRGBA{R: 0xf2, G: 0x53, B: 0x49, A: 0xff}
	lockedGrey = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

type uiTheme struct {
	face      ebtext.Face
	panel     *imageui.NineSlice
	buttonImg *widget.ButtonImage
	lockedImg *widget.ButtonImage
	textColor *widget.ButtonTextColor
	lockColor *widget.ButtonTextColor
}

func newTheme() *uiTheme {
	btn := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	hover := imageui.NewNineSliceColor(color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff})
	lock := imageui.NewNineSliceColor(color.NRGBA{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff})
	return &uiTheme{
		face:      ebtext.NewGoXFace(basicfont.Face7x13),
		panel:     imageui.NewNineSliceColor(color.NRGBA{A: 180}),
		buttonImg: &widget.ButtonImage{Idle: btn, Hover: hover, Pressed: hover},
		lockedImg: &widget.ButtonImage{Idle: lock, Hover: lock, Pressed: lock},
		textColor: &widget.ButtonTextColor{Idle: white},
		lockColor: &widget.ButtonTextColor{Idle: lockedGrey},
	}
}

func (th *uiTheme) title(label string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &th.face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (th *uiTheme) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(th.buttonImg),
		widget.ButtonOpts.Text(label, &th.face, th.textColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 36),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// lockedButton looks like a button and ignores clicks.
func (th *uiTheme) lockedButton(label string) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(th.lockedImg),
		widget.ButtonOpts.Text(label, &th.face, th.lockColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 36),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
}

// centredPanel wraps children in a vertical panel centred on the screen.
func (th *uiTheme) centredPanel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(th.panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 30, Bottom: 30, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// newLevelMenu lists every level; those past the unlocked frontier are
// shown locked.
func newLevelMenu(g *Game) *ebitenui.UI {
	th := newTheme()
	children := []widget.PreferredSizeLocateableWidget{th.title("CHRONO - SELECT LEVEL", white)}

	unlocked := g.progress.MaxUnlocked()
	for i, name := range levels.Names() {
		label := fmt.Sprintf("%02d  %s", i+1, name)
		if i > unlocked {
			children = append(children, th.lockedButton(label+"  [locked]"))
			continue
		}
		index := i
		children = append(children, th.button(label, func() { g.startLevel(index) }))
	}
	if unlocked > 0 {
		children = append(children, th.button("RESET PROGRESS", g.resetProgress))
	}
	return th.centredPanel(children...)
}

// newEndPanel is shown over the frozen level once an attempt ends.
func newEndPanel(g *Game, win, hasNextLevel bool) *ebitenui.UI {
	th := newTheme()
	var children []widget.PreferredSizeLocateableWidget

	switch {
	case win && hasNextLevel:
		children = append(children,
			th.title("LEVEL CLEARED!", winColor),
			th.button("NEXT LEVEL", g.nextLevel),
		)
	case win:
		children = append(children,
			th.title("More levels SOON...!", winColor),
			th.button("PLAY AGAIN", g.restart),
		)
	default:
		children = append(children,
			th.title("LOST IN TIME", loseColor),
			th.button("TRY AGAIN", g.restart),
		)
	}
	children = append(children, th.button("LEVELS", g.openMenu))
	return th.centredPanel(children...)
}
