package game

import (
	"errors"
	"testing"

	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/systems"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

const testDT = 1.0 / 60

// idle holds no actions.
type idle struct{}

func (idle) Poll() [cfg.ActionCount]bool { return [cfg.ActionCount]bool{} }

var (
	flagAtSpawn  = leveldata.Object{Kind: leveldata.KindFlag, Rect: leveldata.Rect{X: 90, Y: 384, W: 24, H: 48}}
	flagFarRight = leveldata.Object{Kind: leveldata.KindFlag, Rect: leveldata.Rect{X: 900, Y: 384, W: 24, H: 48}}
	coinAtSpawn  = leveldata.Object{Kind: leveldata.KindCoin, Rect: leveldata.Rect{X: 95, Y: 405, W: 20, H: 20}}
	enemyAtSpawn = leveldata.Object{
		Kind:      leveldata.KindEnemy,
		Rect:      leveldata.Rect{X: 90, Y: 392, W: 36, H: 40},
		MinX:      90,
		MaxX:      90,
		Direction: 1,
	}
)

// testLevel is 960x480 with a floor; the player spawns at x=84 on it.
func testLevel(name string, objects ...leveldata.Object) *leveldata.Level {
	spawn := leveldata.Point{X: 100, Y: 432}
	return &leveldata.Level{
		Name:   name,
		Width:  960,
		Height: 480,
		Spawn:  &spawn,
		Objects: append([]leveldata.Object{
			{Kind: leveldata.KindPillar, Rect: leveldata.Rect{X: 0, Y: 432, W: 960, H: 48}},
		}, objects...),
	}
}

func newTestSession(t *testing.T, levels ...*leveldata.Level) *Session {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	s, err := NewSession(levels)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func script(t *testing.T, steps ...ScriptStep) *ScriptedInput {
	t.Helper()
	in, err := NewScriptedInput(Script{Steps: steps})
	if err != nil {
		t.Fatalf("NewScriptedInput: %v", err)
	}
	return in
}

func playerObject(t *testing.T, s *Session) *components.ObjectData {
	t.Helper()
	e, ok := tags.Player.First(s.World())
	if !ok {
		t.Fatal("no player")
	}
	return components.Object.Get(e)
}

func TestNewSessionRejectsInvalidLevels(t *testing.T) {
	tests := []struct {
		name   string
		levels []*leveldata.Level
	}{
		{"no levels", nil},
		{"nil level", []*leveldata.Level{nil}},
		{"missing flag", []*leveldata.Level{testLevel("noflag")}},
		{"bad second level", []*leveldata.Level{testLevel("ok", flagFarRight), {Name: "empty"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSession(tc.levels)
			if !errors.Is(err, leveldata.ErrInvalidLevel) {
				t.Errorf("err = %v, want ErrInvalidLevel", err)
			}
		})
	}
}

func TestFlagAdvancesLevelsThenWins(t *testing.T) {
	s := newTestSession(t, testLevel("one", flagAtSpawn), testLevel("two", flagAtSpawn))
	cfg.Level.TransitionTime = 0

	s.Step(testDT, idle{})
	if s.LevelIndex() != 1 {
		t.Fatalf("LevelIndex = %d, want 1", s.LevelIndex())
	}
	if got := s.Progress().Score; got != 1000 {
		t.Errorf("Score = %d, want 1000 for reaching level 2", got)
	}
	if s.State() != cfg.StatePlaying {
		t.Errorf("state = %s, want Playing", s.State())
	}

	s.Step(testDT, idle{})
	if s.State() != cfg.StateWin {
		t.Fatalf("state = %s, want Win", s.State())
	}
	if got := s.Progress().Score; got != 1000 {
		t.Errorf("Score = %d, want 1000: clearing the last level pays no bonus", got)
	}

	// Win freezes the game.
	s.Step(testDT, idle{})
	if got := s.Progress().Score; got != 1000 {
		t.Errorf("Score = %d after Win, want unchanged", got)
	}
}

func TestClearingOnlyLevelPaysNoBonus(t *testing.T) {
	s := newTestSession(t, testLevel("only", flagAtSpawn))
	cfg.Level.TransitionTime = 0

	s.Step(testDT, idle{})

	if s.State() != cfg.StateWin {
		t.Fatalf("state = %s, want Win", s.State())
	}
	if got := s.Progress().Score; got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

func TestLevelTransitionFreezesGame(t *testing.T) {
	s := newTestSession(t, testLevel("one", flagAtSpawn), testLevel("two", flagFarRight))

	in := script(t, Hold(1), Hold(1, "pause"), Hold(1), Hold(1, "restart"), Hold(200))
	s.Step(testDT, in)
	if !systems.IsLevelTransitioning(s.World()) {
		t.Fatal("flag did not start the transition")
	}

	frames := 1
	for s.LevelIndex() == 0 {
		s.Step(testDT, in)
		frames++
		if s.State() != cfg.StatePlaying {
			t.Fatalf("state = %s during the transition", s.State())
		}
		if frames > 120 {
			t.Fatal("transition never finished")
		}
	}

	want := int(cfg.Level.TransitionTime / testDT)
	if frames < want-2 || frames > want+3 {
		t.Errorf("next level loaded after %d frames, want about %d", frames, want)
	}
	if got := s.Progress().Score; got != 1000 {
		t.Errorf("Score = %d, want 1000; restart during the transition must be ignored", got)
	}
}

func TestFlagWinsOverDeathInSameFrame(t *testing.T) {
	s := newTestSession(t, testLevel("one", flagAtSpawn, enemyAtSpawn), testLevel("two", flagFarRight))
	cfg.Level.TransitionTime = 0

	s.Step(testDT, idle{})

	if s.LevelIndex() != 1 {
		t.Errorf("LevelIndex = %d, want 1", s.LevelIndex())
	}
	if got := s.Progress().Lives; got != 3 {
		t.Errorf("Lives = %d, want 3", got)
	}
}

func TestLosingAllLivesIsGameOver(t *testing.T) {
	s := newTestSession(t, testLevel("one", flagFarRight, enemyAtSpawn))

	for frame := 0; s.State() != cfg.StateGameOver; frame++ {
		if frame > 1000 {
			t.Fatalf("no game over after %d frames, lives %d", frame, s.Progress().Lives)
		}
		s.Step(testDT, idle{})
	}

	if got := s.Progress().Lives; got != 0 {
		t.Errorf("Lives = %d, want 0", got)
	}

	// Pause is ignored in GameOver.
	in := script(t, Hold(1, "pause"))
	s.Step(testDT, in)
	if s.State() != cfg.StateGameOver {
		t.Errorf("state = %s, want GameOver", s.State())
	}
}

func TestRestartRestoresLevel(t *testing.T) {
	s := newTestSession(t, testLevel("one", flagFarRight, coinAtSpawn))

	s.Step(testDT, idle{})
	if got := s.Progress().Score; got != 50 {
		t.Fatalf("Score = %d, want 50 after the coin", got)
	}
	s.Step(testDT, idle{})
	if got := s.Progress().Score; got != 50 {
		t.Fatalf("Score = %d, coin paid twice", got)
	}
	systems.GetProgress(s.World()).Lives = 1
	systems.TransitionState(s.World(), cfg.StateGameOver)

	s.Step(testDT, script(t, Hold(1, "restart")))

	if s.State() != cfg.StatePlaying {
		t.Errorf("state = %s, want Playing", s.State())
	}
	progress := s.Progress()
	if progress.Lives != 3 || progress.Score != 0 {
		t.Errorf("progress = %+v, want 3 lives and score 0", progress)
	}
	coins := 0
	tags.Coin.Each(s.World(), func(*donburi.Entry) { coins++ })
	if coins != 1 {
		t.Errorf("got %d coins after restart, want 1", coins)
	}
}

func TestPauseFreezesPhysics(t *testing.T) {
	s := newTestSession(t, testLevel("one", flagFarRight))
	in := script(t, Hold(1), Hold(1, "pause"), Hold(10, "right"), Hold(1, "right", "pause"), Hold(5, "right"))

	s.Step(testDT, in)
	s.Step(testDT, in)
	if s.State() != cfg.StatePaused {
		t.Fatalf("state = %s, want Paused", s.State())
	}
	x := playerObject(t, s).X

	for range 10 {
		s.Step(testDT, in)
	}
	if got := playerObject(t, s).X; got != x {
		t.Errorf("player moved while paused: %v -> %v", x, got)
	}
	if !s.Frame().Overlay.Visible {
		t.Error("pause overlay not visible")
	}

	s.Step(testDT, in)
	if s.State() != cfg.StatePlaying {
		t.Fatalf("state = %s, want Playing after second pause press", s.State())
	}
	for range 5 {
		s.Step(testDT, in)
	}
	if got := playerObject(t, s).X; got <= x {
		t.Errorf("player did not move after resuming: %v", got)
	}
}

func TestQuitRequest(t *testing.T) {
	s := newTestSession(t, testLevel("one", flagFarRight))

	s.Step(testDT, script(t, Hold(1, "quit")))

	if !s.QuitRequested() {
		t.Error("QuitRequested = false after quit press")
	}
}
