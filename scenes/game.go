package scenes

import (
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/fonts"
	"github.com/automoto/cubejump/game"
	"github.com/automoto/cubejump/input"
	"github.com/automoto/cubejump/systems"
	"github.com/automoto/cubejump/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameScene runs a session in the window. It holds no gameplay rules: it
// samples the keyboard, steps the session once per tick and draws the
// frame the session describes.
type GameScene struct {
	session  *game.Session
	keyboard *input.Keyboard
	overlay  *ui.OverlayUI
	hudFace  text.Face
	frame    systems.Frame
}

// NewGameScene creates a scene around an already validated session. The
// fonts must be loaded first.
func NewGameScene(session *game.Session) *GameScene {
	return &GameScene{
		session:  session,
		keyboard: &input.Keyboard{},
		overlay:  ui.NewOverlayUI(),
		hudFace:  text.NewGoXFace(fonts.HUD.Get()),
		frame:    session.Frame(),
	}
}

func (gs *GameScene) Update() {
	gs.session.Step(1/float64(ebiten.TPS()), gs.keyboard)
	gs.frame = gs.session.Frame()
	gs.overlay.Update(gs.frame.Overlay)
}

// QuitRequested reports whether the player pressed quit.
func (gs *GameScene) QuitRequested() bool {
	return gs.session.QuitRequested()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(gs.frame.Background)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offsetX := float64(width)/2 - gs.frame.Camera.X
	offsetY := float64(height)/2 - gs.frame.Camera.Y

	for _, cmd := range gs.frame.Commands {
		switch cmd.Kind {
		case systems.DrawRect:
			vector.DrawFilledRect(screen,
				float32(cmd.Rect.X+offsetX), float32(cmd.Rect.Y+offsetY),
				float32(cmd.Rect.W), float32(cmd.Rect.H),
				cmd.Color, false)
		case systems.DrawText:
			op := &text.DrawOptions{}
			op.GeoM.Translate(cmd.X, cmd.Y)
			op.ColorScale.ScaleWithColor(cmd.Color)
			text.Draw(screen, cmd.Text, gs.hudFace, op)
		}
	}

	gs.overlay.Draw(screen, gs.frame.Overlay)
}

// Layout returns the fixed logical screen size.
func Layout() (int, int) {
	return cfg.C.Width, cfg.C.Height
}
