package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func TestEnemyMovesBySpeed(t *testing.T) {
	w := newTestWorld(t, quietConfig(), classic)
	e := addEnemy(w, 0, 83, 120)

	step(t, w, 0.5)
	assert.InDelta(t, 60.0, e.X(), 1e-9)
	assert.Equal(t, 83.0, e.Y())
	assert.InDelta(t, 161.0, e.Right(), 1e-9)
}

func TestEnemyWrapsInPlace(t *testing.T) {
	cfg := quietConfig()
	cfg.Enemies.Count = 3
	w := newTestWorld(t, cfg, classic)

	before := append([]*Enemy(nil), w.Enemies()...)
	e := before[1]
	e.SetPosition(750, 166)

	step(t, w, 1.0/60)

	require.Len(t, w.Enemies(), 3)
	assert.Same(t, e, w.Enemies()[1], "respawned enemy keeps its slot")
	for i := range before {
		assert.Same(t, before[i], w.Enemies()[i])
	}
	assert.Equal(t, -200.0, e.X())
	assert.Contains(t, []float64{83, 166, 249}, e.Y())
}

func TestEnemyOnBoardEdgeDoesNotWrap(t *testing.T) {
	w := newTestWorld(t, quietConfig(), classic)
	e := addEnemy(w, 706, 83, 2)

	step(t, w, 0.5)
	assert.Equal(t, 707.0, e.X(), "left edge equal to board width is still on the board")

	step(t, w, 0.5)
	assert.Equal(t, -200.0, e.X())
}

func TestHitEndsGameWhenScoreRunsOut(t *testing.T) {
	w := newTestWorld(t, quietConfig(), scored)
	clearStage(w)
	w.score.Current = 10
	addEnemy(w, 200, 415, 100)

	step(t, w, 0.01)

	assert.Equal(t, StatusGameOver, w.Status())
	assert.Equal(t, 0, w.Score().Current)
	assert.Equal(t, 30, w.Score().High)
	assert.True(t, w.Player().Paused)
	assert.Equal(t, "GAME OVER", w.Message())

	w.HandleInput(core.ActionLeft)
	dx, dy := w.Player().Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestGameOverShowsZeroForNegativeScore(t *testing.T) {
	cfg := quietConfig()
	cfg.Enemies.Score = -25
	w := newTestWorld(t, cfg, scored)
	clearStage(w)
	w.score.Current = 10
	addEnemy(w, 200, 415, 100)

	step(t, w, 0.01)

	assert.Equal(t, StatusGameOver, w.Status())
	assert.Equal(t, 0, w.Score().Current)
}

func TestHitWithScoreLeftRetries(t *testing.T) {
	w := newTestWorld(t, quietConfig(), stages)
	items := append([]*Item(nil), w.Items()...)
	rocks := append([]*Obstacle(nil), w.Rocks()...)
	require.NotEmpty(t, items)

	p := w.Player()
	p.SetPosition(0, 83)
	w.rocks = nil // keep the lane free around the player
	addEnemy(w, -50, 83, 100)

	step(t, w, 0.01)

	assert.Equal(t, StatusPlaying, w.Status())
	assert.Equal(t, 20, w.Score().Current)
	assert.Equal(t, 202.0, p.X())
	assert.Equal(t, 415.0, p.Y())
	assert.Equal(t, items, w.Items(), "retry keeps the stage")
	assert.Equal(t, 1, w.Stage())
	assert.Len(t, rocks, 3)
}

func TestHitWithoutScoringResetsBoard(t *testing.T) {
	w := newTestWorld(t, quietConfig(), classic)
	p := w.Player()
	p.SetPosition(303, 249)
	hit := addEnemy(w, 250, 249, 100)
	other := addEnemy(w, 400, 83, 100)

	step(t, w, 0.01)

	assert.Equal(t, StatusPlaying, w.Status())
	assert.Equal(t, 202.0, p.X())
	assert.Equal(t, 415.0, p.Y())
	assert.Equal(t, -200.0, hit.X())
	// other was reset before its own turn, so it still moves this frame
	assert.InDelta(t, -199.0, other.X(), 1e-9)
	assert.Equal(t, 30, w.Score().Current, "classic never touches the score")
}

func TestEnemiesFreezeAfterGameOver(t *testing.T) {
	w := newTestWorld(t, quietConfig(), scored)
	e := addEnemy(w, 0, 83, 100)
	w.GameOver()

	step(t, w, 1)
	assert.Equal(t, 0.0, e.X())
}

func TestEnemiesStopInFrameThatEndsGame(t *testing.T) {
	w := newTestWorld(t, quietConfig(), scored)
	clearStage(w)
	w.score.Current = 10
	addEnemy(w, 200, 415, 100)
	later := addEnemy(w, 0, 83, 100)

	step(t, w, 0.01)

	require.Equal(t, StatusGameOver, w.Status())
	assert.Equal(t, 0.0, later.X())
}

func TestPausedPlayerIsNotHit(t *testing.T) {
	w := newTestWorld(t, quietConfig(), scored)
	clearStage(w)
	addEnemy(w, 200, 415, 100)
	w.Player().Paused = true

	step(t, w, 0.01)
	assert.Equal(t, 30, w.Score().Current)
	assert.Equal(t, StatusPlaying, w.Status())
}
