package leveldata

import (
	"fmt"

	"github.com/automoto/cubejump/config"
	"gopkg.in/yaml.v3"
)

// Template is the YAML level format: a grid of glyphs, one cell per tile.
//
//	'#' pillar tile (horizontal runs merge into one pillar)
//	'P' player spawn
//	'E' patrolling enemy (patrols the pillar below it when there is one)
//	'C' coin
//	'K' checkpoint
//	'F' flag (placed on the rightmost pillar when omitted)
//	'.' or ' ' empty
type Template struct {
	Name       string   `yaml:"name"`
	EnemySpeed float64  `yaml:"enemy_speed"` // multiplier on the configured patrol speed
	Rows       []string `yaml:"rows"`
}

// ParseTemplate decodes a YAML template and builds a validated Level.
func ParseTemplate(name string, data []byte) (*Level, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse level template %s: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	level, err := t.Build()
	if err != nil {
		return nil, err
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

type pillarRun struct {
	row, startCol, endCol int // endCol is exclusive
}

// Build converts the glyph grid into a Level using the configured tile and
// object sizes. It does not validate the result.
func (t *Template) Build() (*Level, error) {
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("%w: level %q has no rows", ErrInvalidLevel, t.Name)
	}

	tile := float64(config.Level.TileSize)
	speedScale := t.EnemySpeed
	if speedScale == 0 {
		speedScale = 1
	}

	cols := 0
	for _, row := range t.Rows {
		cols = max(cols, len(row))
	}

	level := &Level{
		Name:   t.Name,
		Width:  cols * config.Level.TileSize,
		Height: len(t.Rows) * config.Level.TileSize,
	}

	runs := t.pillarRuns()
	for _, run := range runs {
		level.Objects = append(level.Objects, Object{
			Kind: KindPillar,
			Rect: Rect{
				X: float64(run.startCol) * tile,
				Y: float64(run.row) * tile,
				W: float64(run.endCol-run.startCol) * tile,
				H: tile,
			},
		})
	}

	hasFlag := false
	checkpointID := 0
	for r, row := range t.Rows {
		for c, ch := range row {
			cell := Rect{X: float64(c) * tile, Y: float64(r) * tile, W: tile, H: tile}
			switch ch {
			case '.', ' ', '#':
			case 'P':
				if level.Spawn != nil {
					return nil, fmt.Errorf("%w: level %q has more than one spawn", ErrInvalidLevel, t.Name)
				}
				feet := cell.FeetOf()
				level.Spawn = &feet
			case 'E':
				level.Objects = append(level.Objects, t.enemyAt(r, c, cell, runs, speedScale))
			case 'C':
				size := config.Level.CoinSize
				level.Objects = append(level.Objects, Object{
					Kind: KindCoin,
					Rect: Rect{X: cell.X + (tile-size)/2, Y: cell.Y + (tile-size)/2, W: size, H: size},
				})
			case 'K':
				checkpointID++
				rect := RectAtFeet(cell.FeetOf(), config.Level.CheckpointWidth, config.Level.CheckpointHeight)
				level.Objects = append(level.Objects, Object{
					Kind:    KindCheckpoint,
					Rect:    rect,
					ID:      checkpointID,
					Respawn: rect.FeetOf(),
				})
			case 'F':
				hasFlag = true
				level.Objects = append(level.Objects, Object{
					Kind: KindFlag,
					Rect: RectAtFeet(cell.FeetOf(), config.Level.FlagWidth, config.Level.FlagHeight),
				})
			default:
				return nil, fmt.Errorf("%w: level %q: unknown glyph %q at row %d col %d",
					ErrInvalidLevel, t.Name, ch, r, c)
			}
		}
	}

	if !hasFlag && len(runs) > 0 {
		level.Objects = append(level.Objects, flagOnRightmost(runs, tile))
	}

	return level, nil
}

func (t *Template) pillarRuns() []pillarRun {
	var runs []pillarRun
	for r, row := range t.Rows {
		start := -1
		for c := 0; c <= len(row); c++ {
			solid := c < len(row) && row[c] == '#'
			switch {
			case solid && start < 0:
				start = c
			case !solid && start >= 0:
				runs = append(runs, pillarRun{row: r, startCol: start, endCol: c})
				start = -1
			}
		}
	}
	return runs
}

// enemyAt places an enemy standing at the bottom of its cell. When a pillar
// run sits directly below, the enemy patrols that run; otherwise it patrols
// DefaultPatrolDistance either side of its start.
func (t *Template) enemyAt(r, c int, cell Rect, runs []pillarRun, speedScale float64) Object {
	w := float64(config.Enemy.CollisionWidth)
	h := float64(config.Enemy.CollisionHeight)
	rect := RectAtFeet(cell.FeetOf(), w, h)

	minX := rect.X - config.Enemy.DefaultPatrolDistance
	maxX := rect.X + config.Enemy.DefaultPatrolDistance
	tile := float64(config.Level.TileSize)
	for _, run := range runs {
		if run.row == r+1 && c >= run.startCol && c < run.endCol {
			minX = float64(run.startCol) * tile
			maxX = float64(run.endCol)*tile - w
			break
		}
	}
	if maxX < minX {
		// Run narrower than the enemy: stand still in the middle.
		minX = (minX + maxX) / 2
		maxX = minX
	}
	rect.X = min(max(rect.X, minX), maxX)

	return Object{
		Kind:      KindEnemy,
		Rect:      rect,
		MinX:      minX,
		MaxX:      maxX,
		Speed:     config.Enemy.PatrolSpeed * speedScale,
		Direction: 1,
	}
}

// flagOnRightmost stands the flag on the last tile of the rightmost pillar
// run, picking the highest run when several end at the same column.
func flagOnRightmost(runs []pillarRun, tile float64) Object {
	best := runs[0]
	for _, run := range runs[1:] {
		if run.endCol > best.endCol || (run.endCol == best.endCol && run.row < best.row) {
			best = run
		}
	}
	top := Point{X: (float64(best.endCol) - 0.5) * tile, Y: float64(best.row) * tile}
	return Object{
		Kind: KindFlag,
		Rect: RectAtFeet(top, config.Level.FlagWidth, config.Level.FlagHeight),
	}
}
