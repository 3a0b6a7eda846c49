package config

import "image/color"

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per second, times in seconds.
type PlayerConfig struct {
	// Movement
	MoveSpeed            float64 `yaml:"move_speed"`
	JumpImpulse          float64 `yaml:"jump_impulse"` // negative is up
	DoubleJumpMultiplier float64 `yaml:"double_jump_multiplier"`
	MaxJumps             int     `yaml:"max_jumps"`

	// Jump helpers
	CoyoteTime float64 `yaml:"coyote_time"`
	JumpBuffer float64 `yaml:"jump_buffer"`

	// Lives
	StartingLives          int     `yaml:"starting_lives"`
	RespawnDelay           float64 `yaml:"respawn_delay"`
	RespawnInvulnerability float64 `yaml:"respawn_invulnerability"`

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	// GroundProbe is how far below the player's feet a pillar still counts as support.
	GroundProbe float64 `yaml:"ground_probe"`
}

// EnemyConfig contains enemy patrol configuration
type EnemyConfig struct {
	PatrolSpeed           float64 `yaml:"patrol_speed"`
	DefaultPatrolDistance float64 `yaml:"default_patrol_distance"`
	CollisionWidth        int     `yaml:"collision_width"`
	CollisionHeight       int     `yaml:"collision_height"`
}

// LevelConfig contains level layout and progression values
type LevelConfig struct {
	TileSize         int     `yaml:"tile_size"`
	SpaceCellSize    int     `yaml:"space_cell_size"`
	DeathMargin      float64 `yaml:"death_margin"` // fall distance below the level before a death
	TransitionTime   float64 `yaml:"transition_time"`
	CoinSize         float64 `yaml:"coin_size"`
	FlagWidth        float64 `yaml:"flag_width"`
	FlagHeight       float64 `yaml:"flag_height"`
	CheckpointWidth  float64 `yaml:"checkpoint_width"`
	CheckpointHeight float64 `yaml:"checkpoint_height"`
}

// ScoreConfig contains score rewards
type ScoreConfig struct {
	CoinValue         int `yaml:"coin_value"`
	LevelBonusPerStep int `yaml:"level_bonus_per_step"` // multiplied by the number of the level being entered
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
}

// HUDConfig contains HUD and overlay colors and layout
type HUDConfig struct {
	Margin         float64
	LineHeight     float64
	TextColor      color.RGBA
	OverlayColor   color.RGBA
	TitleColor     color.RGBA
	BackgroundFill color.RGBA
	PillarColor    color.RGBA
	PlayerColor    color.RGBA
	InvulnColor    color.RGBA
	EnemyColor     color.RGBA
	CoinColor      color.RGBA
	FlagColor      color.RGBA
	FlagReached    color.RGBA
	CheckpointOff  color.RGBA
	CheckpointOn   color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Enemy EnemyConfig
var Level LevelConfig
var Score ScoreConfig
var Camera CameraConfig
var HUD HUDConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	Sky          = color.RGBA{R: 30, G: 34, B: 48, A: 255}
	Stone        = color.RGBA{R: 110, G: 110, B: 130, A: 255}
	Cyan         = color.RGBA{R: 60, G: 200, B: 230, A: 255}
	PaleCyan     = color.RGBA{R: 160, G: 235, B: 250, A: 255}
	LightRed     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 30, G: 200, B: 80, A: 255}
	DarkRed      = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

func init() {
	Reset()
}

// Reset restores every tuning value to its built-in default.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Player = PlayerConfig{
		MoveSpeed:            360,  // 6 px/frame at 60fps
		JumpImpulse:          -900, // -15 px/frame at 60fps
		DoubleJumpMultiplier: 1.0,
		MaxJumps:             2,

		CoyoteTime: 0.1,
		JumpBuffer: 0.1,

		StartingLives:          3,
		RespawnDelay:           0.25,
		RespawnInvulnerability: 1.0,

		CollisionWidth:  32,
		CollisionHeight: 32,
	}

	Physics = PhysicsConfig{
		Gravity:      2880, // 0.8 px/frame^2 at 60fps
		MaxFallSpeed: 960,
		GroundProbe:  1,
	}

	Enemy = EnemyConfig{
		PatrolSpeed:           90,
		DefaultPatrolDistance: 96,
		CollisionWidth:        36,
		CollisionHeight:       40,
	}

	Level = LevelConfig{
		TileSize:         48,
		SpaceCellSize:    16,
		DeathMargin:      200,
		TransitionTime:   0.9,
		CoinSize:         20,
		FlagWidth:        24,
		FlagHeight:       48,
		CheckpointWidth:  24,
		CheckpointHeight: 48,
	}

	Score = ScoreConfig{
		CoinValue:         50,
		LevelBonusPerStep: 500,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	HUD = HUDConfig{
		Margin:         10,
		LineHeight:     22,
		TextColor:      White,
		OverlayColor:   BlackOverlay,
		TitleColor:     White,
		BackgroundFill: Sky,
		PillarColor:    Stone,
		PlayerColor:    Cyan,
		InvulnColor:    PaleCyan,
		EnemyColor:     LightRed,
		CoinColor:      Gold,
		FlagColor:      BrightGreen,
		FlagReached:    Gold,
		CheckpointOff:  DarkRed,
		CheckpointOn:   BrightGreen,
	}
}
