package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/automoto/cubejump/assets"
	"github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/fonts"
	"github.com/automoto/cubejump/game"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	QuitRequested() bool
}

type Game struct {
	scene Scene
}

func NewGame(session *game.Session) *Game {
	return &Game{
		scene: scenes.NewGameScene(session),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return scenes.Layout()
}

func loadLevels(dir string) ([]*leveldata.Level, error) {
	if dir == "" {
		return assets.LoadLevels()
	}
	return leveldata.LoadAll(os.DirFS(dir), ".")
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file overriding the built-in defaults")
	levelsDir := flag.String("levels", "", "directory of .yaml/.tmx levels (default: bundled levels)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Printf("Loaded tuning from %s", *configPath)
	}

	levels, err := loadLevels(*levelsDir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	session, err := game.NewSession(levels)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Cube Jump")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(session)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
