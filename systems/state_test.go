package systems

import (
	"testing"

	cfg "github.com/automoto/cubejump/config"
	"github.com/yohamta/donburi"
)

func TestTransitionState(t *testing.T) {
	tests := []struct {
		from, to  cfg.GameStateID
		wantPanic bool
	}{
		{cfg.StatePlaying, cfg.StatePaused, false},
		{cfg.StatePlaying, cfg.StateGameOver, false},
		{cfg.StatePlaying, cfg.StateWin, false},
		{cfg.StatePaused, cfg.StatePlaying, false},
		{cfg.StateGameOver, cfg.StatePlaying, false},
		{cfg.StateWin, cfg.StatePlaying, false},
		{cfg.StatePaused, cfg.StatePaused, false},
		{cfg.StateGameOver, cfg.StatePaused, true},
		{cfg.StateWin, cfg.StateGameOver, true},
		{cfg.StatePaused, cfg.StateWin, true},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			w := donburi.NewWorld()
			GetGameState(w).CurrentState = tc.from

			defer func() {
				r := recover()
				if (r != nil) != tc.wantPanic {
					t.Errorf("panic = %v, wantPanic %v", r, tc.wantPanic)
				}
			}()
			TransitionState(w, tc.to)

			if got := CurrentState(w); got != tc.to {
				t.Errorf("state = %s, want %s", got, tc.to)
			}
		})
	}
}

func TestTogglePause(t *testing.T) {
	w := donburi.NewWorld()

	if !TogglePause(w) || !IsPaused(w) {
		t.Fatal("Playing did not pause")
	}
	if !TogglePause(w) || IsPaused(w) {
		t.Fatal("Paused did not resume")
	}

	for _, s := range []cfg.GameStateID{cfg.StateGameOver, cfg.StateWin} {
		GetGameState(w).CurrentState = s
		if TogglePause(w) {
			t.Errorf("pause toggled in %s", s)
		}
		if CurrentState(w) != s {
			t.Errorf("state changed from %s to %s", s, CurrentState(w))
		}
	}
}

func TestPauseIgnoredDuringTransition(t *testing.T) {
	w := donburi.NewWorld()
	StartLevelTransition(w, 0.9)

	if TogglePause(w) {
		t.Error("pause toggled mid-transition")
	}
	if IsPaused(w) {
		t.Error("paused mid-transition")
	}
}

func TestLevelTransitionRunsForItsDuration(t *testing.T) {
	w := donburi.NewWorld()
	StartLevelTransition(w, 0.5)

	frames := 0
	for !AdvanceLevelTransition(w, testDT) {
		frames++
		if frames > 60 {
			t.Fatal("transition never finished")
		}
		if p := GetOrCreateLevelComplete(w).Progress; p <= 0 || p > 1 {
			t.Fatalf("Progress = %v outside (0, 1]", p)
		}
	}
	if frames < 28 || frames > 31 {
		t.Errorf("transition took %d frames, want about 30", frames)
	}
	if IsLevelTransitioning(w) {
		t.Error("transition still active after finishing")
	}
}

func TestZeroLengthTransitionFinishesImmediately(t *testing.T) {
	w := donburi.NewWorld()
	StartLevelTransition(w, 0)

	if !AdvanceLevelTransition(w, testDT) {
		t.Error("zero-length transition did not finish on first advance")
	}
}

func TestQuitRequest(t *testing.T) {
	w := donburi.NewWorld()
	RequestQuit(w)
	if !GetGameState(w).QuitRequested {
		t.Error("QuitRequested not set")
	}
}
