package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the override file layout. Sections that are absent keep
// their current values because yaml decodes into the live config structs.
type tuningFile struct {
	Game    *Config        `yaml:"game"`
	Player  *PlayerConfig  `yaml:"player"`
	Physics *PhysicsConfig `yaml:"physics"`
	Enemy   *EnemyConfig   `yaml:"enemy"`
	Level   *LevelConfig   `yaml:"level"`
	Score   *ScoreConfig   `yaml:"score"`
	Camera  *CameraConfig  `yaml:"camera"`
}

// LoadFile applies a YAML tuning override on top of the current values.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("tuning file %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML tuning data into the global config and validates it.
func Apply(data []byte) error {
	tf := tuningFile{
		Game:    C,
		Player:  &Player,
		Physics: &Physics,
		Enemy:   &Enemy,
		Level:   &Level,
		Score:   &Score,
		Camera:  &Camera,
	}
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	return Validate()
}

// Validate checks the global config for values the simulation cannot run with.
func Validate() error {
	if C.TPS <= 0 {
		return fmt.Errorf("game.tps must be positive, got %d", C.TPS)
	}
	if Player.MoveSpeed < 0 {
		return fmt.Errorf("player.move_speed cannot be negative, got %v", Player.MoveSpeed)
	}
	if Player.JumpImpulse >= 0 {
		return fmt.Errorf("player.jump_impulse must be negative (up), got %v", Player.JumpImpulse)
	}
	if Player.MaxJumps < 1 || Player.MaxJumps > 2 {
		return fmt.Errorf("player.max_jumps must be 1 or 2, got %d", Player.MaxJumps)
	}
	if Player.CoyoteTime < 0 || Player.JumpBuffer < 0 {
		return fmt.Errorf("player jump windows cannot be negative")
	}
	if Player.StartingLives < 1 {
		return fmt.Errorf("player.starting_lives must be at least 1, got %d", Player.StartingLives)
	}
	if Player.CollisionWidth <= 0 || Player.CollisionHeight <= 0 {
		return fmt.Errorf("player collision size must be positive")
	}
	if Physics.Gravity <= 0 || Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("physics.gravity and physics.max_fall_speed must be positive")
	}
	if Enemy.PatrolSpeed < 0 {
		return fmt.Errorf("enemy.patrol_speed cannot be negative, got %v", Enemy.PatrolSpeed)
	}
	if Level.TileSize <= 0 || Level.SpaceCellSize <= 0 {
		return fmt.Errorf("level.tile_size and level.space_cell_size must be positive")
	}
	if Level.TransitionTime < 0 {
		return fmt.Errorf("level.transition_time cannot be negative, got %v", Level.TransitionTime)
	}
	return nil
}
