package game

// Enemy is a bug moving right along a stone lane at a constant speed.
// Enemies are never removed: leaving the board re-spawns them in place.
type Enemy struct {
	Entity

	Speed float64 // Pixels per second
	Score int     // Applied to the score on hit
}

// NewEnemy creates an enemy at the given position.
func NewEnemy(w, h, x, y, speed float64, score int) *Enemy {
	e := &Enemy{
		Entity: newEntity(KindEnemy, SpriteEnemyBug, w, h),
		Speed:  speed,
		Score:  score,
	}
	e.SetPosition(x, y)
	return e
}

// Base returns the embedded entity.
func (e *Enemy) Base() *Entity { return &e.Entity }

// Update advances the enemy, resolves a hit on the player and wraps it
// back to the spawn point once it has left the board. Enemies stop as soon
// as an earlier hit in the same frame has ended the game.
func (e *Enemy) Update(w *World, dt float64) {
	if w.status == StatusGameOver {
		return
	}
	e.SetPosition(e.x+e.Speed*dt, e.y)

	if w.playerActive() && e.Colliding(&w.player.Entity) {
		w.enemyHit(e)
	}

	if e.Left() > w.boardW {
		x, y := w.enemySpawnPoint()
		e.SetPosition(x, y)
	}
}
