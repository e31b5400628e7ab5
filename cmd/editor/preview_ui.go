package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const hudWidth = 220

// previewHUD is the overlay in the top-right corner of the preview: the
// level being shown, how much of it is painted and a way back.
type previewHUD struct {
	ui      *ebitenui.UI
	level   *widget.Text
	painted *widget.Text
}

// newPreviewHUD builds the overlay from coloured nine-slices and the built-in
// basic font so it needs no theme assets.
func newPreviewHUD(back func()) *previewHUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x46, G: 0x39, B: 0x6b, A: 0xff})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x53, G: 0x46, B: 0x78, A: 0xff})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	start := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})

	h := &previewHUD{}
	h.level = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(start),
	)
	h.painted = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(start),
	)
	backBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnIdle}),
		widget.ButtonOpts.Text("Back to editor", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 28),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			back()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(hudWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(h.level)
	panel.AddChild(h.painted)
	panel.AddChild(backBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

func (h *previewHUD) refresh(level string, painted, total int) {
	if level == "" {
		level = "(unsaved)"
	}
	h.level.Label = "Level: " + level
	h.painted.Label = fmt.Sprintf("Painted: %d / %d cells", painted, total)
}
