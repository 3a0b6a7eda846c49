package systems

import (
	"fmt"

	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/yohamta/donburi"
)

// hudLines renders lives, score and level number in the top-left corner.
func hudLines(w donburi.World) []DrawCommand {
	if _, ok := components.Level.First(w); !ok {
		return nil
	}

	progress := GetProgress(w)
	levelData := GetLevel(w)

	lines := []string{
		fmt.Sprintf("Lives: %d", progress.Lives),
		fmt.Sprintf("Score: %d", progress.Score),
		fmt.Sprintf("Level: %d/%d", levelData.LevelIndex+1, len(levelData.Levels)),
	}

	cmds := make([]DrawCommand, 0, len(lines))
	for i, line := range lines {
		cmds = append(cmds, DrawCommand{
			Kind:  DrawText,
			X:     cfg.HUD.Margin,
			Y:     cfg.HUD.Margin + float64(i)*cfg.HUD.LineHeight,
			Text:  line,
			Color: cfg.HUD.TextColor,
		})
	}
	return cmds
}

// buildOverlay picks the banner for the current state. The level complete
// banner fades in with the transition tween.
func buildOverlay(w donburi.World) Overlay {
	if lc := GetOrCreateLevelComplete(w); lc.IsComplete {
		return Overlay{
			Visible:  true,
			Title:    "LEVEL COMPLETE",
			Subtitle: fmt.Sprintf("Score: %d", GetProgress(w).Score),
			Alpha:    lc.Progress,
		}
	}

	switch CurrentState(w) {
	case cfg.StatePaused:
		return Overlay{Visible: true, Title: "PAUSED", Subtitle: "Press P to resume", Alpha: 1}
	case cfg.StateGameOver:
		return Overlay{Visible: true, Title: "GAME OVER", Subtitle: "Press R to restart", Alpha: 1}
	case cfg.StateWin:
		return Overlay{
			Visible:  true,
			Title:    "YOU WIN",
			Subtitle: fmt.Sprintf("Final score: %d. Press R to play again", GetProgress(w).Score),
			Alpha:    1,
		}
	}
	return Overlay{}
}
