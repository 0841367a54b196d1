package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func newTestCanvas(t *testing.T, originX, originY int) (*ScreenCanvas, *core.Screen) {
	t.Helper()
	w := newTestWorld(t, quietConfig(), classic)
	screen := core.NewScreen(80, 24)
	return NewScreenCanvas(screen, DefaultSpriteSheet(nil), w, originX, originY), screen
}

func TestCanvasCellAt(t *testing.T) {
	c, _ := newTestCanvas(t, 5, 2)

	tests := []struct {
		x, y   float64
		cx, cy int
	}{
		{0, 0, 5, 2},
		{101, 83, 14, 5},
		{202, 415, 23, 17},
		{50, 41, 9, 3},
		{-200, 0, -13, 2},
	}
	for _, tc := range tests {
		cx, cy := c.CellAt(tc.x, tc.y)
		assert.Equal(t, tc.cx, cx, "x=%v", tc.x)
		assert.Equal(t, tc.cy, cy, "y=%v", tc.y)
	}
	assert.Equal(t, core.NewRect(5, 2, 63, 18), c.Bounds())
}

func TestCanvasPaintsBlocks(t *testing.T) {
	c, screen := newTestCanvas(t, 0, 0)
	c.DrawSprite(SpriteWaterBlock, 0, 0)

	for y := 0; y < 3; y++ {
		for x := 0; x < 9; x++ {
			cell := screen.GetCell(x, y)
			assert.Equal(t, '~', cell.Rune)
			assert.Equal(t, core.ColorBlue, cell.Bg)
		}
	}
	assert.Equal(t, ' ', screen.Get(9, 0))
}

func TestCanvasArtKeepsTileBackground(t *testing.T) {
	c, screen := newTestCanvas(t, 0, 0)
	c.DrawSprite(SpriteGrassBlock, 0, 0)
	c.DrawSprite(SpriteCharBoy, 0, 0)

	cell := screen.GetCell(2, 0)
	assert.Equal(t, '(', cell.Rune)
	assert.Equal(t, core.ColorBrightWhite, cell.Fg)
	assert.Equal(t, core.ColorGreen, cell.Bg)
	assert.Equal(t, "  (o_o)  ", screen.Row(0)[:9])
}

func TestCanvasClipsToBoard(t *testing.T) {
	c, screen := newTestCanvas(t, 4, 1)
	c.DrawSprite(SpriteEnemyBug, -200, 83)
	c.DrawSprite(SpriteEnemyBug, 690, 83)

	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if x < 4 || x >= 4+63 || y < 1 || y >= 1+18 {
				require.Equal(t, ' ', screen.Get(x, y), "drawn outside the board at %d,%d", x, y)
			}
		}
	}
}

func TestCanvasUnknownSprite(t *testing.T) {
	c, screen := newTestCanvas(t, 0, 0)
	c.DrawSprite(SpriteID(99), 0, 0)

	assert.Equal(t, "??", string([]rune{screen.Get(3, 1), screen.Get(4, 1)}))
}

func TestSpriteSheetResolve(t *testing.T) {
	s := DefaultSpriteSheet(nil)
	assert.Equal(t, len(spriteNames)-1, s.Len(), "every sprite but none has art")

	for _, id := range Characters {
		g, ok := s.Resolve(id)
		require.True(t, ok, id.String())
		assert.LessOrEqual(t, g.Width(), 9, id.String())
		assert.LessOrEqual(t, len(g.Rows), 3, id.String())
	}

	g, ok := s.Resolve(SpriteNone)
	assert.False(t, ok)
	assert.Equal(t, missingGlyph.Rows, g.Rows)
}
