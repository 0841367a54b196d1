package game

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Player is the input-driven character.
// A key press only queues a delta; the next Update applies and clears it.
type Player struct {
	Entity

	dx, dy float64
	Paused bool

	startX, startY float64
}

// NewPlayer creates a player standing on its start position.
func NewPlayer(sprite SpriteID, w, h, startX, startY float64) *Player {
	p := &Player{
		Entity: newEntity(KindPlayer, sprite, w, h),
		startX: startX,
		startY: startY,
	}
	p.ResetPosition()
	return p
}

// Base returns the embedded entity.
func (p *Player) Base() *Entity { return &p.Entity }

// Delta returns the pending movement.
func (p *Player) Delta() (dx, dy float64) {
	return p.dx, p.dy
}

// ResetPosition returns the player to the start tile and drops any pending move.
func (p *Player) ResetPosition() {
	p.SetPosition(p.startX, p.startY)
	p.resetDelta()
}

func (p *Player) resetDelta() {
	p.dx, p.dy = 0, 0
}

// HandleInput queues a one-tile move for a directional action.
// The move is accepted only if the destination stays on the board and,
// when rocks are in play, no rock occupies it. Returns whether it was queued.
func (p *Player) HandleInput(w *World, a core.Action) bool {
	if p.Paused || !a.IsDirection() {
		return false
	}

	ux, uy := a.Delta()
	stepX := float64(ux) * w.tileW
	stepY := float64(uy) * w.tileH

	candidate := p.Box().Translate(stepX, stepY)
	if !candidate.Within(w.boardW, w.boardH) {
		return false
	}
	if w.features.Obstacles && w.blocked(candidate) {
		return false
	}

	p.dx, p.dy = stepX, stepY
	return true
}

// Update applies the pending move, then checks whether the water was reached.
func (p *Player) Update(w *World, _ float64) {
	if p.Paused {
		return
	}
	if p.dx != 0 || p.dy != 0 {
		p.SetPosition(p.x+p.dx, p.y+p.dy)
		p.resetDelta()
	}
	if w.reachedGoal(p.Box()) {
		w.goalReached()
	}
}
