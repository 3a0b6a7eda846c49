// Command simulate plays the game without a window, driven by a scripted
// input file, and logs how far the run got.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/cubejump/assets"
	"github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/game"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/systems"
)

func main() {
	levelsDir := flag.String("levels", "", "directory of .yaml/.tmx levels (default: bundled levels)")
	scriptPath := flag.String("script", "", "YAML input script (default: idle)")
	configPath := flag.String("config", "", "YAML tuning file overriding the built-in defaults")
	tps := flag.Int("tps", 0, "ticks per second (default: config value)")
	maxTicks := flag.Int("ticks", 3600, "stop after this many ticks, 0 for no limit")
	realtime := flag.Bool("realtime", false, "pace ticks with a wall clock ticker")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	tickRate := config.C.TPS
	if *tps > 0 {
		tickRate = *tps
	}

	var levels []*leveldata.Level
	var err error
	if *levelsDir == "" {
		levels, err = assets.LoadLevels()
	} else {
		levels, err = leveldata.LoadAll(os.DirFS(*levelsDir), ".")
	}
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	var input systems.InputSource = &game.ScriptedInput{}
	if *scriptPath != "" {
		scripted, err := game.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		input = scripted
	}

	session, err := game.NewSession(levels)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := game.NewLoop(session, input, tickRate, *maxTicks)
	run := loop.RunFast
	if *realtime {
		run = loop.Run
	}
	if err := run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Game loop failed: %v", err)
	}

	progress := session.Progress()
	log.Printf("Finished after %d ticks: state %s, level %d/%d, lives %d, score %d",
		session.Frames(), session.State(), session.LevelIndex()+1, len(levels), progress.Lives, progress.Score)
}
