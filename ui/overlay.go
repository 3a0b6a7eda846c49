package ui

import (
	"bytes"

	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// OverlayUI draws the pause, game over, win and level complete banners.
// The banner is laid out by ebitenui on an offscreen image, then composited
// with the overlay's alpha so the level complete banner can fade in.
type OverlayUI struct {
	UI *ebitenui.UI

	titleLabel    *widget.Label
	subtitleLabel *widget.Label

	titleFace    text.Face
	subtitleFace text.Face

	offscreen *ebiten.Image
	drawOp    ebiten.DrawImageOptions
}

// NewOverlayUI creates the overlay sized to the game screen.
func NewOverlayUI() *OverlayUI {
	oui := &OverlayUI{}
	oui.loadFonts()
	oui.buildUI()
	oui.offscreen = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
	return oui
}

func (oui *OverlayUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	oui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   40,
	}
	oui.subtitleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (oui *OverlayUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.HUD.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	oui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &oui.titleFace, &widget.LabelColor{
			Idle: cfg.HUD.TitleColor,
		}),
	)
	contentContainer.AddChild(oui.titleLabel)

	oui.subtitleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &oui.subtitleFace, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	)
	contentContainer.AddChild(oui.subtitleLabel)

	rootContainer.AddChild(contentContainer)

	oui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update copies the overlay text into the widgets and runs the UI layout.
func (oui *OverlayUI) Update(overlay systems.Overlay) {
	oui.titleLabel.Label = overlay.Title
	oui.subtitleLabel.Label = overlay.Subtitle
	oui.UI.Update()
}

// Draw composites the banner over the screen. Nothing is drawn when the
// overlay is hidden.
func (oui *OverlayUI) Draw(screen *ebiten.Image, overlay systems.Overlay) {
	if !overlay.Visible || overlay.Alpha <= 0 {
		return
	}

	oui.offscreen.Clear()
	oui.UI.Draw(oui.offscreen)

	oui.drawOp.ColorScale.Reset()
	oui.drawOp.ColorScale.ScaleAlpha(float32(overlay.Alpha))
	screen.DrawImage(oui.offscreen, &oui.drawOp)
}
