package systems

import (
	"image/color"

	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

// DrawKind says which layer a draw command belongs to.
type DrawKind int

const (
	DrawRect DrawKind = iota // world space rectangle
	DrawText                 // screen space HUD text
)

// DrawCommand is one primitive for the host to draw. The core never touches
// a graphics API; the host walks Frame.Commands in order.
type DrawCommand struct {
	Kind  DrawKind
	Rect  leveldata.Rect // world space for DrawRect
	X, Y  float64        // screen space origin for DrawText
	Text  string
	Color color.RGBA
}

// Overlay is the full screen banner shown over the frozen world.
type Overlay struct {
	Visible  bool
	Title    string
	Subtitle string
	Alpha    float64 // 0..1
}

// Frame is everything the host needs to draw one frame.
type Frame struct {
	Camera     components.Vector // world position at the screen center
	Background color.RGBA
	Commands   []DrawCommand
	Overlay    Overlay
}

// Viewport culling skips entities that are off-screen. A small padding keeps
// rectangles from popping in at the edges.
const cullPadding = 64.0

// BuildFrame turns the world into a draw list: level geometry first, then
// enemies, then the player, then the HUD. It reads state and never mutates it.
func BuildFrame(w donburi.World) Frame {
	frame := Frame{Background: cfg.HUD.BackgroundFill}

	if cameraEntry, ok := components.Camera.First(w); ok {
		frame.Camera = components.Camera.Get(cameraEntry).Position
	}

	minX := frame.Camera.X - float64(cfg.C.Width)/2 - cullPadding
	maxX := frame.Camera.X + float64(cfg.C.Width)/2 + cullPadding
	minY := frame.Camera.Y - float64(cfg.C.Height)/2 - cullPadding
	maxY := frame.Camera.Y + float64(cfg.C.Height)/2 + cullPadding

	addRect := func(e *donburi.Entry, c color.RGBA) {
		r := components.Object.Get(e).Rect()
		if r.Right() < minX || r.X > maxX || r.Bottom() < minY || r.Y > maxY {
			return
		}
		frame.Commands = append(frame.Commands, DrawCommand{Kind: DrawRect, Rect: r, Color: c})
	}

	tags.Pillar.Each(w, func(e *donburi.Entry) {
		addRect(e, cfg.HUD.PillarColor)
	})
	tags.Checkpoint.Each(w, func(e *donburi.Entry) {
		c := cfg.HUD.CheckpointOff
		if components.Checkpoint.Get(e).Activated {
			c = cfg.HUD.CheckpointOn
		}
		addRect(e, c)
	})
	tags.Coin.Each(w, func(e *donburi.Entry) {
		addRect(e, cfg.HUD.CoinColor)
	})
	tags.Flag.Each(w, func(e *donburi.Entry) {
		c := cfg.HUD.FlagColor
		if components.Flag.Get(e).Reached {
			c = cfg.HUD.FlagReached
		}
		addRect(e, c)
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		addRect(e, cfg.HUD.EnemyColor)
	})
	if playerEntry, ok := tags.Player.First(w); ok {
		player := components.Player.Get(playerEntry)
		if player.Alive {
			c := cfg.HUD.PlayerColor
			if player.Invulnerable > 0 {
				c = cfg.HUD.InvulnColor
			}
			addRect(playerEntry, c)
		}
	}

	frame.Commands = append(frame.Commands, hudLines(w)...)
	frame.Overlay = buildOverlay(w)
	return frame
}
