// Package game implements Bug Crossing, a Frogger-style game: the player
// crosses a tile board to the water while bugs sweep the stone lanes.
//
// Every visible object is an Entity: a top-left position plus a bounding box
// derived from fixed sprite dimensions. Behavior lives in small variant types
// (Player, Enemy, Item, Obstacle) that the World coordinator updates once per
// frame and then renders.
package game

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Kind tags the behavior of an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindHeart
	KindGem
	KindKey
	KindStar
	KindRock
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindHeart:
		return "heart"
	case KindGem:
		return "gem"
	case KindKey:
		return "key"
	case KindStar:
		return "star"
	case KindRock:
		return "rock"
	default:
		return "unknown"
	}
}

// IsItem reports whether the kind is a collectible.
func (k Kind) IsItem() bool {
	switch k {
	case KindHeart, KindGem, KindKey, KindStar:
		return true
	default:
		return false
	}
}

// Entity is the position, bounding box and sprite shared by all objects.
// The box is only ever derived from the position inside SetPosition.
type Entity struct {
	Kind   Kind
	Sprite SpriteID

	x, y float64
	w, h float64
	box  core.Box
}

func newEntity(kind Kind, sprite SpriteID, w, h float64) Entity {
	return Entity{
		Kind:   kind,
		Sprite: sprite,
		w:      w,
		h:      h,
		box:    core.NewBox(0, 0, w, h),
	}
}

// SetPosition moves the entity and recomputes its bounding box.
func (e *Entity) SetPosition(x, y float64) {
	e.x = x
	e.y = y
	e.box = core.NewBox(x, y, e.w, e.h)
}

// X returns the left edge position.
func (e *Entity) X() float64 { return e.x }

// Y returns the top edge position.
func (e *Entity) Y() float64 { return e.y }

// Box returns the current bounding box.
func (e *Entity) Box() core.Box { return e.box }

func (e *Entity) Top() float64    { return e.box.Top }
func (e *Entity) Bottom() float64 { return e.box.Bottom }
func (e *Entity) Left() float64   { return e.box.Left }
func (e *Entity) Right() float64  { return e.box.Right }

// Colliding reports whether two entities' boxes overlap.
// The result does not depend on which entity asks.
func (e *Entity) Colliding(other *Entity) bool {
	return e.box.Intersects(other.box)
}

// Render draws the entity's sprite at its position.
func (e *Entity) Render(c Canvas) {
	c.DrawSprite(e.Sprite, e.x, e.y)
}

// Actor is an entity with per-frame behavior.
type Actor interface {
	Base() *Entity
	Update(w *World, dt float64)
	Render(c Canvas)
}

// Canvas is the render primitive actors draw through.
type Canvas interface {
	DrawSprite(id SpriteID, x, y float64)
}
