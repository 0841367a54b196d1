package game

import (
	"math"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// ScreenCanvas draws sprites into a core.Screen, scaling board pixels to
// terminal cells. Drawing is clipped to the board area.
type ScreenCanvas struct {
	screen *core.Screen
	sheet  *SpriteSheet
	bounds core.Rect // Board area in cells

	tileW, tileH       float64 // Pixels per tile
	tileCols, tileRows int     // Cells per tile
}

// NewScreenCanvas creates a canvas whose board origin is at (originX, originY).
func NewScreenCanvas(screen *core.Screen, sheet *SpriteSheet, w *World, originX, originY int) *ScreenCanvas {
	cfg := w.Config()
	return &ScreenCanvas{
		screen:   screen,
		sheet:    sheet,
		bounds:   core.NewRect(originX, originY, cfg.Board.Cols*cfg.Display.TileCols, cfg.Board.Rows*cfg.Display.TileRows),
		tileW:    cfg.Board.TileWidth,
		tileH:    cfg.Board.TileHeight,
		tileCols: cfg.Display.TileCols,
		tileRows: cfg.Display.TileRows,
	}
}

// Bounds returns the board area in screen cells.
func (c *ScreenCanvas) Bounds() core.Rect {
	return c.bounds
}

// CellAt converts a board position to screen cell coordinates.
func (c *ScreenCanvas) CellAt(x, y float64) (int, int) {
	cx := c.bounds.X + int(math.Floor(x*float64(c.tileCols)/c.tileW))
	cy := c.bounds.Y + int(math.Floor(y*float64(c.tileRows)/c.tileH))
	return cx, cy
}

// DrawSprite draws the glyph of id with its tile's top-left corner at (x, y).
func (c *ScreenCanvas) DrawSprite(id SpriteID, x, y float64) {
	g, _ := c.sheet.Resolve(id)
	cx, cy := c.CellAt(x, y)

	if g.Bg != core.ColorDefault {
		cell := core.Cell{Rune: g.Fill, Fg: g.Fg, Bg: g.Bg}
		for dy := 0; dy < c.tileRows; dy++ {
			for dx := 0; dx < c.tileCols; dx++ {
				c.set(cx+dx, cy+dy, cell)
			}
		}
	}

	offX := (c.tileCols - g.Width()) / 2
	offY := (c.tileRows - len(g.Rows)) / 2
	for j, row := range g.Rows {
		i := 0
		for _, r := range row {
			if r != ' ' {
				c.set(cx+offX+i, cy+offY+j, core.Cell{Rune: r, Fg: g.Fg})
			}
			i++
		}
	}
}

func (c *ScreenCanvas) set(x, y int, cell core.Cell) {
	if x < c.bounds.X || x >= c.bounds.Right() || y < c.bounds.Y || y >= c.bounds.Bottom() {
		return
	}
	c.screen.SetCell(x, y, cell)
}
