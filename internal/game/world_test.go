package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

func TestNewWorldStartsOnStartTile(t *testing.T) {
	w := newTestWorld(t, config.Default(), deluxe)

	assert.Equal(t, StatusPlaying, w.Status())
	assert.Equal(t, 1, w.Stage())
	assert.Equal(t, 30, w.Score().Current)
	assert.Len(t, w.Enemies(), 5)
	for _, e := range w.Enemies() {
		assert.Equal(t, -200.0, e.X())
		assert.Contains(t, []float64{83, 166, 249}, e.Y())
		assert.GreaterOrEqual(t, e.Speed, 50.0)
		assert.Less(t, e.Speed, 200.0)
		assert.Equal(t, -10, e.Score)
	}
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Board.EnemyLanes = nil

	_, err := NewWorld(cfg, classic, 1)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestClassicHasNoScenery(t *testing.T) {
	w := newTestWorld(t, config.Default(), classic)
	assert.Empty(t, w.Items())
	assert.Empty(t, w.Rocks())
	assert.Empty(t, w.Scenery())
}

func TestSameSeedSameGame(t *testing.T) {
	a := newTestWorld(t, config.Default(), deluxe)
	b := newTestWorld(t, config.Default(), deluxe)

	require.Len(t, b.Scenery(), len(a.Scenery()))
	for i := range a.Scenery() {
		ea, eb := a.Scenery()[i].Base(), b.Scenery()[i].Base()
		assert.Equal(t, ea.Kind, eb.Kind)
		assert.Equal(t, ea.Sprite, eb.Sprite)
		assert.Equal(t, ea.Box(), eb.Box())
	}

	for i := 0; i < 120; i++ {
		step(t, a, 1.0/30)
		step(t, b, 1.0/30)
	}
	for i := range a.Enemies() {
		assert.Equal(t, a.Enemies()[i].Box(), b.Enemies()[i].Box())
		assert.Equal(t, a.Enemies()[i].Speed, b.Enemies()[i].Speed)
	}
	assert.Equal(t, a.Score(), b.Score())
}

func TestNextStage(t *testing.T) {
	w := newTestWorld(t, quietConfig(), stages)
	e1 := addEnemy(w, 0, 83, 50)
	e2 := addEnemy(w, 300, 166, 75)
	w.Player().SetPosition(101, 249)

	require.NoError(t, w.NextStage())

	assert.Equal(t, 2, w.Stage())
	assert.Equal(t, 70.0, e1.Speed)
	assert.Equal(t, 95.0, e2.Speed)
	assert.Equal(t, 202.0, w.Player().X())
	assert.Equal(t, 415.0, w.Player().Y())
	assert.Equal(t, 40, w.Score().Current)
	for _, it := range w.Items() {
		assert.False(t, it.Collected)
	}
}

func TestFixedSpeedStages(t *testing.T) {
	cfg := quietConfig()
	cfg.Stage.SpeedIncrement = 0
	w := newTestWorld(t, cfg, stages)
	e := addEnemy(w, 0, 83, 50)

	for i := 0; i < 3; i++ {
		require.NoError(t, w.NextStage())
	}
	assert.Equal(t, 50.0, e.Speed)
	assert.Equal(t, 4, w.Stage())
}

func TestUpdateFailsWhenStageCannotBeBuilt(t *testing.T) {
	w := newTestWorld(t, quietConfig(), stages)
	w.cfg.Stage.Rocks = 100
	w.Player().SetPosition(0, 83)
	w.rocks = nil

	w.HandleInput(core.ActionUp)
	err := w.Update(0.01)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBoardOverConstrained)

	assert.ErrorIs(t, w.Update(0.01), ErrBoardOverConstrained, "error sticks")
}

func TestRestartKeepsHighScore(t *testing.T) {
	w := newTestWorld(t, quietConfig(), stages)
	require.NoError(t, w.NextStage())
	require.NoError(t, w.NextStage())
	require.Equal(t, 50, w.Score().High)

	w.GameOver()
	require.Equal(t, StatusGameOver, w.Status())
	assert.Equal(t, 0, w.Score().Current)

	require.NoError(t, w.Restart())
	assert.Equal(t, StatusPlaying, w.Status())
	assert.Equal(t, 30, w.Score().Current)
	assert.Equal(t, 50, w.Score().High)
	assert.Equal(t, 1, w.Stage())
	assert.False(t, w.Player().Paused)
	assert.Empty(t, w.Message())
}

func TestPause(t *testing.T) {
	w := newTestWorld(t, quietConfig(), scored)
	e := addEnemy(w, 0, 83, 100)

	w.HandleInput(core.ActionPause)
	require.True(t, w.Paused())
	assert.True(t, w.Player().Paused)

	w.HandleInput(core.ActionUp)
	step(t, w, 1)
	assert.Equal(t, 0.0, e.X())
	assert.Equal(t, 415.0, w.Player().Y())

	w.HandleInput(core.ActionPause)
	require.False(t, w.Paused())
	step(t, w, 0.5)
	assert.Equal(t, 50.0, e.X())
}

func TestPauseIgnoredAfterGameOver(t *testing.T) {
	w := newTestWorld(t, quietConfig(), scored)
	w.GameOver()
	w.HandleInput(core.ActionPause)
	assert.False(t, w.Paused())
	assert.True(t, w.Player().Paused)
}

func TestRenderPaintersOrder(t *testing.T) {
	w := newTestWorld(t, quietConfig(), deluxe)
	clearStage(w)
	addItem(w, KindHeart, 10, 0, 4)
	addRock(w, 1, 1)
	addItem(w, KindKey, 20, 2, 3)
	addRock(w, 3, 1)
	addItem(w, KindStar, 50, 4, 2)
	addEnemy(w, 0, 83, 50)

	c := &recordingCanvas{}
	w.Render(c)

	tiles := w.cfg.Board.Cols * w.cfg.Board.Rows
	require.Len(t, c.calls, tiles+5+1+1)

	scenery := c.calls[tiles : tiles+5]
	for i := 1; i < len(scenery); i++ {
		assert.LessOrEqual(t, scenery[i-1].y, scenery[i].y)
	}
	assert.Equal(t, SpriteRock, scenery[0].id)
	assert.Equal(t, 101.0, scenery[0].x, "equal Y keeps insertion order")
	assert.Equal(t, SpriteRock, scenery[1].id)
	assert.Equal(t, 303.0, scenery[1].x)

	assert.Equal(t, SpriteEnemyBug, c.calls[len(c.calls)-2].id)
	assert.Equal(t, SpriteCharBoy, c.calls[len(c.calls)-1].id, "player is drawn last")
}

func TestRenderBoardRows(t *testing.T) {
	w := newTestWorld(t, quietConfig(), classic)
	c := &recordingCanvas{}
	w.Render(c)

	assert.Equal(t, 7, c.count(SpriteWaterBlock))
	assert.Equal(t, 21, c.count(SpriteStoneBlock))
	assert.Equal(t, 14, c.count(SpriteGrassBlock))
	assert.Equal(t, drawCall{id: SpriteWaterBlock, x: 0, y: 0}, c.calls[0])
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "playing", StatusPlaying.String())
	assert.Equal(t, "game over", StatusGameOver.String())
}
