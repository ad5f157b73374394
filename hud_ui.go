package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/thicket/ecs/system"
	"golang.org/x/image/font/basicfont"
)

// xpBarSteps is the resolution of the xp and health bars.
const xpBarSteps = 1000

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// HUD shows the player's progress and the pause menu.
type HUD struct {
	ui     *ebitenui.UI
	level  *widget.Text
	wood   *widget.Text
	xp     *widget.ProgressBar
	health *widget.ProgressBar
	pause  *widget.Container
}

// NewHUD builds the level label, xp and health bars in the top-left corner
// and a hidden, centered pause panel with Resume and Quit buttons.
func NewHUD(g *Game) *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	trackImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff})
	xpImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff})
	healthImg := imageui.NewNineSliceColor(color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	h := &HUD{}

	h.level = widget.NewText(widget.TextOpts.Text("Level 1", &face, white))
	h.wood = widget.NewText(widget.TextOpts.Text("Wood 0", &face, white))
	bar := func(fill *imageui.NineSlice) *widget.ProgressBar {
		return widget.NewProgressBar(
			widget.ProgressBarOpts.WidgetOpts(widget.WidgetOpts.MinSize(240, 10)),
			widget.ProgressBarOpts.Images(
				&widget.ProgressBarImage{Idle: trackImg},
				&widget.ProgressBarImage{Idle: fill},
			),
			widget.ProgressBarOpts.Values(0, xpBarSteps, 0),
		)
	}
	h.xp = bar(xpImg)
	h.health = bar(healthImg)

	status := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Left: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	status.AddChild(h.level, h.xp, h.health, h.wood)

	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)
	resumeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Resume", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.SetPaused(false)
		}),
	)
	quitBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Quit", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.Quit()
		}),
	)

	h.pause = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/4, baseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	h.pause.AddChild(title, resumeBtn, quitBtn)
	h.pause.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(status, h.pause)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// ShowProgress implements system.ProgressSink.
func (h *HUD) ShowProgress(p system.Progress) {
	h.level.Label = fmt.Sprintf("Level %d", p.Level)
	h.wood.Label = fmt.Sprintf("Wood %d", p.Wood)
	h.xp.SetCurrent(int(p.XPFraction * xpBarSteps))
	h.health.SetCurrent(int(p.HealthFraction * xpBarSteps))
}

func (h *HUD) SetPaused(paused bool) {
	if paused {
		h.pause.GetWidget().Visibility = widget.Visibility_Show
		return
	}
	h.pause.GetWidget().Visibility = widget.Visibility_Hide
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
