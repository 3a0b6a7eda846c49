package game

import (
	"fmt"
	"log"

	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/systems"
	"github.com/automoto/cubejump/systems/factory"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

// Session owns one play-through: the world, the level list, progress and the
// state machine. It has no window or clock; callers feed it fixed steps.
type Session struct {
	world donburi.World
	frame int
}

// NewSession validates the level pack and loads the first level.
func NewSession(levels []*leveldata.Level) (*Session, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", leveldata.ErrInvalidLevel)
	}
	for i, level := range levels {
		if level == nil {
			return nil, fmt.Errorf("%w: level %d is nil", leveldata.ErrInvalidLevel, i)
		}
		if err := level.Validate(); err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i, level.Name, err)
		}
	}

	w := donburi.NewWorld()
	factory.CreateLevel(w, levels)
	factory.CreateCamera(w)
	systems.GetGameState(w)

	s := &Session{world: w}
	s.loadLevel(0)
	return s, nil
}

// Step advances the game by one fixed frame of dt seconds.
//
// Frame order: input, state gate, player, enemies, collisions, then
// checkpoint, coin, flag and death handling, then camera. Collisions run only
// after every position for the frame is final.
func (s *Session) Step(dt float64, src systems.InputSource) {
	s.frame++
	w := s.world
	input := systems.UpdateInput(w, src)

	if systems.GetAction(input, cfg.ActionQuit).JustPressed {
		systems.RequestQuit(w)
		log.Printf("Quit requested at frame %d", s.frame)
		return
	}

	if systems.GetAction(input, cfg.ActionRestart).JustPressed && !systems.IsLevelTransitioning(w) {
		s.Restart()
		return
	}

	if systems.GetAction(input, cfg.ActionPause).JustPressed {
		systems.TogglePause(w)
	}

	if systems.IsLevelTransitioning(w) {
		if systems.AdvanceLevelTransition(w, dt) {
			s.completeLevel()
		}
		return
	}

	if systems.CurrentState(w).FreezesPhysics() {
		return
	}

	if systems.UpdateDeaths(w, dt) {
		log.Printf("Player respawned at %+v", systems.RespawnPoint(w))
	}

	level := systems.GetLevel(w).CurrentLevel
	systems.UpdatePlayer(w, dt, input)
	systems.UpdateEnemies(w, dt)
	events := systems.ResolveCollisions(w, level, dt)

	s.handleEvents(events)

	systems.UpdateCamera(w)
}

func (s *Session) handleEvents(events systems.CollisionEvents) {
	w := s.world

	systems.HandleCheckpoints(w, events.Checkpoints)
	systems.HandleCoins(w, events.Coins)

	// Touching the flag wins over dying in the same frame.
	if events.FlagReached {
		s.reachFlag()
		return
	}

	if events.Died() {
		cause := components.DeathByEnemy
		if events.Fell {
			cause = components.DeathByFall
		}
		systems.KillPlayer(w, cause)
		progress := systems.GetProgress(w)
		log.Printf("Player died (%s), %d lives left", cause, progress.Lives)
		if systems.CurrentState(w) == cfg.StateGameOver {
			log.Printf("Game over with score %d", progress.Score)
		}
	}
}

func (s *Session) reachFlag() {
	w := s.world
	tags.Flag.Each(w, func(e *donburi.Entry) {
		components.Flag.Get(e).Reached = true
	})

	if cfg.Level.TransitionTime <= 0 {
		s.completeLevel()
		return
	}
	systems.StartLevelTransition(w, cfg.Level.TransitionTime)
}

// completeLevel moves to the next level and pays the bonus for reaching it,
// or moves to Win after the last one. Clearing the last level pays nothing.
func (s *Session) completeLevel() {
	w := s.world
	levelData := systems.GetLevel(w)
	index := levelData.LevelIndex

	if !levelData.HasNext() {
		systems.TransitionState(w, cfg.StateWin)
		log.Printf("All levels complete with score %d", systems.GetProgress(w).Score)
		return
	}

	bonus := systems.AwardLevelBonus(w, index+1)
	log.Printf("Level %d (%s) complete, bonus %d", index+1, levelData.CurrentLevel.Name, bonus)
	s.loadLevel(index + 1)
}

// Restart reloads the current level from scratch and restores lives and the
// score the level started with. It is ignored mid-transition.
func (s *Session) Restart() {
	w := s.world
	if systems.IsLevelTransitioning(w) {
		return
	}

	progress := systems.GetProgress(w)
	progress.Lives = progress.MaxLives
	progress.Score = progress.LevelStartScore

	s.loadLevel(systems.GetLevel(w).LevelIndex)
	systems.TransitionState(w, cfg.StatePlaying)
	log.Printf("Restarted level %d", systems.GetLevel(w).LevelIndex+1)
}

func (s *Session) loadLevel(index int) {
	w := s.world
	factory.LoadLevel(w, index)
	systems.ClearLevelTransition(w)
	systems.GetProgress(w).LevelStartScore = systems.GetProgress(w).Score
	systems.SnapCamera(w)

	level := systems.GetLevel(w).CurrentLevel
	log.Printf("Loaded level %d: %s (%dx%d, %d objects)", index+1, level.Name, level.Width, level.Height, len(level.Objects))
}

// Frame returns the draw list for the current state.
func (s *Session) Frame() systems.Frame {
	return systems.BuildFrame(s.world)
}

// State returns the active game state.
func (s *Session) State() cfg.GameStateID {
	return systems.CurrentState(s.world)
}

// QuitRequested reports whether the player asked to quit.
func (s *Session) QuitRequested() bool {
	return systems.GetGameState(s.world).QuitRequested
}

// Progress returns a copy of lives and score.
func (s *Session) Progress() components.ProgressData {
	return *systems.GetProgress(s.world)
}

// LevelIndex returns the zero-based index of the loaded level.
func (s *Session) LevelIndex() int {
	return systems.GetLevel(s.world).LevelIndex
}

// Frames returns how many steps have run.
func (s *Session) Frames() int {
	return s.frame
}

// World exposes the entity world for hosts and tests.
func (s *Session) World() donburi.World {
	return s.world
}
