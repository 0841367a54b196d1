package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

var (
	classic = Features{}
	scored  = Features{Scoring: true, Items: true}
	stages  = Features{Scoring: true, Items: true, Obstacles: true, Stages: true}
	deluxe  = Features{Scoring: true, Items: true, Obstacles: true, Stages: true, Selector: true}
)

// quietConfig is the default configuration without enemies, so tests can
// place exactly the enemies they need.
func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Enemies.Count = 0
	return cfg
}

func newTestWorld(t *testing.T, cfg config.Config, f Features) *World {
	t.Helper()
	w, err := NewWorld(cfg, f, 42)
	require.NoError(t, err)
	return w
}

// clearStage removes all items and rocks.
func clearStage(w *World) {
	w.items = nil
	w.rocks = nil
	w.scenery = nil
}

func addRock(w *World, col, row int) *Obstacle {
	o := NewObstacle(w.tileW, w.tileH, float64(col)*w.tileW, float64(row)*w.tileH)
	w.rocks = append(w.rocks, o)
	w.scenery = append(w.scenery, o)
	return o
}

func addItem(w *World, kind Kind, value, col, row int) *Item {
	it := NewItem(kind, value, w.tileW, w.tileH, float64(col)*w.tileW, float64(row)*w.tileH, w.rng)
	w.items = append(w.items, it)
	w.scenery = append(w.scenery, it)
	return it
}

func addEnemy(w *World, x, y, speed float64) *Enemy {
	e := NewEnemy(w.tileW, w.tileH, x, y, speed, w.cfg.Enemies.Score)
	w.enemies = append(w.enemies, e)
	return e
}

// step runs one frame and fails the test on error.
func step(t *testing.T, w *World, dt float64) {
	t.Helper()
	require.NoError(t, w.Update(dt))
}

type drawCall struct {
	id   SpriteID
	x, y float64
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) DrawSprite(id SpriteID, x, y float64) {
	c.calls = append(c.calls, drawCall{id: id, x: x, y: y})
}

func (c *recordingCanvas) count(id SpriteID) int {
	n := 0
	for _, call := range c.calls {
		if call.id == id {
			n++
		}
	}
	return n
}
