package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

func TestCameraStaysInsideLevel(t *testing.T) {
	wide := floorLevel()
	wide.Width = 3000
	w := newTestWorld(t, wide)
	SnapCamera(w)

	cameraEntry, _ := components.Camera.First(w)
	camera := components.Camera.Get(cameraEntry)

	// Player is near the left edge, so the view is clamped to half a screen.
	if camera.Position.X != float64(cfg.C.Width)/2 {
		t.Errorf("camera X = %v, want %v", camera.Position.X, float64(cfg.C.Width)/2)
	}
	// The level is shorter than the screen, so it is centered vertically.
	if camera.Position.Y != float64(wide.Height)/2 {
		t.Errorf("camera Y = %v, want %v", camera.Position.Y, float64(wide.Height)/2)
	}

	_, _, obj := playerOf(t, w)
	obj.X = 1500
	before := camera.Position.X
	UpdateCamera(w)
	if camera.Position.X <= before || camera.Position.X >= 1516 {
		t.Errorf("camera X = %v, want eased between %v and 1516", camera.Position.X, before)
	}
}

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name                  string
		target, screen, level float64
		want                  float64
	}{
		{"inside", 1000, 960, 3000, 1000},
		{"left edge", 100, 960, 3000, 480},
		{"right edge", 2900, 960, 3000, 2520},
		{"small level centered", 100, 960, 600, 300},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampAxis(tc.target, tc.screen, tc.level); got != tc.want {
				t.Errorf("clampAxis = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuildFrame(t *testing.T) {
	w := newTestWorld(t, floorLevel(
		leveldata.Object{Kind: leveldata.KindCoin, Rect: leveldata.Rect{X: 300, Y: 400, W: 20, H: 20}},
	))
	SnapCamera(w)

	frame := BuildFrame(w)

	var rects int
	var hud []string
	for _, cmd := range frame.Commands {
		switch cmd.Kind {
		case DrawRect:
			rects++
		case DrawText:
			hud = append(hud, cmd.Text)
		}
	}
	// floor, wall, coin, flag, player
	if rects != 5 {
		t.Errorf("got %d rects, want 5", rects)
	}
	want := []string{"Lives: 3", "Score: 0", "Level: 1/1"}
	if len(hud) != len(want) {
		t.Fatalf("HUD = %v, want %v", hud, want)
	}
	for i := range want {
		if hud[i] != want[i] {
			t.Errorf("HUD line %d = %q, want %q", i, hud[i], want[i])
		}
	}
	if frame.Overlay.Visible {
		t.Errorf("overlay visible while playing: %+v", frame.Overlay)
	}

	last := frame.Commands[rects-1]
	if last.Color != cfg.HUD.PlayerColor {
		t.Errorf("last world rect color = %v, want the player drawn on top", last.Color)
	}
}

func TestBuildFrameOverlay(t *testing.T) {
	tests := []struct {
		state cfg.GameStateID
		title string
	}{
		{cfg.StatePlaying, ""},
		{cfg.StatePaused, "PAUSED"},
		{cfg.StateGameOver, "GAME OVER"},
		{cfg.StateWin, "YOU WIN"},
	}
	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			w := newTestWorld(t, floorLevel())
			GetGameState(w).CurrentState = tc.state

			overlay := BuildFrame(w).Overlay
			if overlay.Title != tc.title {
				t.Errorf("Title = %q, want %q", overlay.Title, tc.title)
			}
			if overlay.Visible != (tc.title != "") {
				t.Errorf("Visible = %v", overlay.Visible)
			}
		})
	}

	t.Run("level complete", func(t *testing.T) {
		w := newTestWorld(t, floorLevel())
		StartLevelTransition(w, 0.9)
		AdvanceLevelTransition(w, 0.45)

		overlay := BuildFrame(w).Overlay
		if overlay.Title != "LEVEL COMPLETE" {
			t.Errorf("Title = %q", overlay.Title)
		}
		if overlay.Alpha < 0.49 || overlay.Alpha > 0.51 {
			t.Errorf("Alpha = %v, want about 0.5", overlay.Alpha)
		}
	})
}

func TestReachedFlagIsHighlighted(t *testing.T) {
	w := newTestWorld(t, floorLevel())
	SnapCamera(w)
	flagRect := leveldata.Rect{X: 900, Y: 384, W: 24, H: 48}

	flagColor := func() color.RGBA {
		for _, cmd := range BuildFrame(w).Commands {
			if cmd.Kind == DrawRect && cmd.Rect == flagRect {
				return cmd.Color
			}
		}
		t.Fatal("flag not drawn")
		return color.RGBA{}
	}

	if got := flagColor(); got != cfg.HUD.FlagColor {
		t.Errorf("flag color = %v, want %v", got, cfg.HUD.FlagColor)
	}

	tags.Flag.Each(w, func(e *donburi.Entry) {
		components.Flag.Get(e).Reached = true
	})
	if got := flagColor(); got != cfg.HUD.FlagReached {
		t.Errorf("reached flag color = %v, want %v", got, cfg.HUD.FlagReached)
	}
}
