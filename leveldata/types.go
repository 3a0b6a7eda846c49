// Package leveldata describes levels as immutable, engine-free data and loads
// them from YAML templates or Tiled TMX maps. It has no dependencies on
// ebitengine, donburi, or resolv.
package leveldata

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is wrapped by every validation failure. A level that fails
// validation must not be started.
var ErrInvalidLevel = errors.New("invalid level")

// ObjectKind tags the variant stored in an Object.
type ObjectKind int

const (
	KindPillar ObjectKind = iota
	KindEnemy
	KindCheckpoint
	KindCoin
	KindFlag
)

var kindNames = map[ObjectKind]string{
	KindPillar:     "pillar",
	KindEnemy:      "enemy",
	KindCheckpoint: "checkpoint",
	KindCoin:       "coin",
	KindFlag:       "flag",
}

// String returns the kind name. It doubles as the resolv tag for the kind.
func (k ObjectKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ObjectKind(%d)", int(k))
}

// Point is a position in world pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle; X,Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether the two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// FeetOf returns the bottom-center point of the rectangle.
func (r Rect) FeetOf() Point {
	return Point{X: r.X + r.W/2, Y: r.Bottom()}
}

// RectAtFeet builds a w×h rectangle standing on the given bottom-center point.
func RectAtFeet(p Point, w, h float64) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h, W: w, H: h}
}

// Object is one static level entry. Fields outside the Kind's variant are zero.
type Object struct {
	Kind ObjectKind
	Rect

	// KindEnemy: patrol range for the enemy's left edge.
	MinX, MaxX float64
	Speed      float64
	Direction  int

	// KindCheckpoint
	ID      int
	Respawn Point // feet position the player respawns at
}

// Level is a full level definition. Spawn is the player's feet position.
type Level struct {
	Name    string
	Width   int
	Height  int
	Spawn   *Point
	Objects []Object
}

// ObjectsOf returns the level's objects of one kind, in definition order.
func (l *Level) ObjectsOf(kind ObjectKind) []Object {
	var out []Object
	for _, o := range l.Objects {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// Validate checks the invariants the simulation relies on.
func (l *Level) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: level %q: %s", ErrInvalidLevel, l.Name, fmt.Sprintf(format, args...))
	}

	if l.Width <= 0 || l.Height <= 0 {
		return fail("size %dx%d must be positive", l.Width, l.Height)
	}
	if l.Spawn == nil {
		return fail("missing player spawn")
	}

	flags := 0
	for i, o := range l.Objects {
		if o.W <= 0 || o.H <= 0 {
			return fail("%s #%d has non-positive size %vx%v", o.Kind, i, o.W, o.H)
		}
		switch o.Kind {
		case KindPillar, KindCoin:
		case KindEnemy:
			if o.MaxX < o.MinX {
				return fail("enemy #%d patrol bounds [%v, %v] are inverted", i, o.MinX, o.MaxX)
			}
			if o.Speed < 0 {
				return fail("enemy #%d has negative speed %v", i, o.Speed)
			}
			if o.Direction != 1 && o.Direction != -1 {
				return fail("enemy #%d direction must be 1 or -1, got %d", i, o.Direction)
			}
			if o.X < o.MinX || o.X > o.MaxX {
				return fail("enemy #%d starts at %v outside its patrol [%v, %v]", i, o.X, o.MinX, o.MaxX)
			}
		case KindCheckpoint:
		case KindFlag:
			flags++
		default:
			return fail("object #%d has unknown kind %d", i, int(o.Kind))
		}
	}
	if flags == 0 {
		return fail("missing flag")
	}
	return nil
}
