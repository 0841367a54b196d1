package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// SpriteID is an opaque handle to a drawable resource.
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpriteWaterBlock
	SpriteStoneBlock
	SpriteGrassBlock
	SpriteEnemyBug
	SpriteCharBoy
	SpriteCharCatGirl
	SpriteCharHornGirl
	SpriteCharPinkGirl
	SpriteCharPrincessGirl
	SpriteHeart
	SpriteGemBlue
	SpriteGemGreen
	SpriteGemOrange
	SpriteKey
	SpriteStar
	SpriteRock
)

var spriteNames = map[SpriteID]string{
	SpriteNone:             "none",
	SpriteWaterBlock:       "water-block",
	SpriteStoneBlock:       "stone-block",
	SpriteGrassBlock:       "grass-block",
	SpriteEnemyBug:         "enemy-bug",
	SpriteCharBoy:          "char-boy",
	SpriteCharCatGirl:      "char-cat-girl",
	SpriteCharHornGirl:     "char-horn-girl",
	SpriteCharPinkGirl:     "char-pink-girl",
	SpriteCharPrincessGirl: "char-princess-girl",
	SpriteHeart:            "heart",
	SpriteGemBlue:          "gem-blue",
	SpriteGemGreen:         "gem-green",
	SpriteGemOrange:        "gem-orange",
	SpriteKey:              "key",
	SpriteStar:             "star",
	SpriteRock:             "rock",
}

// String returns the resource name of the sprite.
func (s SpriteID) String() string {
	if name, ok := spriteNames[s]; ok {
		return name
	}
	return "unknown"
}

// Characters is the ordered list of selectable player sprites.
var Characters = []SpriteID{
	SpriteCharBoy,
	SpriteCharCatGirl,
	SpriteCharHornGirl,
	SpriteCharPinkGirl,
	SpriteCharPrincessGirl,
}

// Glyph is the terminal rendition of a sprite.
type Glyph struct {
	Rows []string   // Art centered in the tile; spaces are transparent
	Fg   core.Color // Art color
	Bg   core.Color // When set, the whole tile is painted (board blocks)
	Fill rune       // Rune repeated over a painted tile
}

// Width returns the widest art row in cells.
func (g Glyph) Width() int {
	w := 0
	for _, row := range g.Rows {
		w = max(w, len([]rune(row)))
	}
	return w
}

// missingGlyph is drawn for ids the sheet does not know.
var missingGlyph = Glyph{Rows: []string{"??"}, Fg: core.ColorBrightMagenta}

// SpriteSheet resolves sprite ids to glyphs.
type SpriteSheet struct {
	glyphs *intmap.Map[SpriteID, Glyph]
	warned *intmap.Map[SpriteID, struct{}]
	logger *log.Logger
}

// NewSpriteSheet creates an empty sheet. A nil logger discards diagnostics.
func NewSpriteSheet(logger *log.Logger) *SpriteSheet {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SpriteSheet{
		glyphs: intmap.New[SpriteID, Glyph](len(spriteNames)),
		warned: intmap.New[SpriteID, struct{}](4),
		logger: logger,
	}
}

// Add registers or replaces the glyph for a sprite.
func (s *SpriteSheet) Add(id SpriteID, g Glyph) {
	s.glyphs.Put(id, g)
}

// Len returns the number of registered glyphs.
func (s *SpriteSheet) Len() int {
	return s.glyphs.Len()
}

// Resolve returns the glyph for a sprite. Unknown ids yield a placeholder
// glyph and false; each unknown id is logged once.
func (s *SpriteSheet) Resolve(id SpriteID) (Glyph, bool) {
	if g, ok := s.glyphs.Get(id); ok {
		return g, true
	}
	if _, seen := s.warned.Get(id); !seen {
		s.warned.Put(id, struct{}{})
		s.logger.Warn("unknown sprite", "id", int(id), "name", id.String())
	}
	return missingGlyph, false
}

// DefaultSpriteSheet returns the built-in terminal art for every sprite.
// Art is sized for tiles of at least 9x3 cells.
func DefaultSpriteSheet(logger *log.Logger) *SpriteSheet {
	s := NewSpriteSheet(logger)

	s.Add(SpriteWaterBlock, Glyph{Fill: '~', Fg: core.ColorBrightCyan, Bg: core.ColorBlue})
	s.Add(SpriteStoneBlock, Glyph{Fill: ' ', Fg: core.ColorWhite, Bg: core.ColorDarkGray})
	s.Add(SpriteGrassBlock, Glyph{Fill: ' ', Fg: core.ColorBrightGreen, Bg: core.ColorGreen})

	s.Add(SpriteEnemyBug, Glyph{Fg: core.ColorBrightRed, Rows: []string{
		" _/^^\\_ ",
		"<(o)##)=",
		" /\\  /\\ ",
	}})

	s.Add(SpriteCharBoy, Glyph{Fg: core.ColorBrightWhite, Rows: []string{
		"(o_o)",
		"/|_|\\",
		" / \\ ",
	}})
	s.Add(SpriteCharCatGirl, Glyph{Fg: core.ColorBrightYellow, Rows: []string{
		"/\\_/\\",
		"(=^.^)",
		" /|\\ ",
	}})
	s.Add(SpriteCharHornGirl, Glyph{Fg: core.ColorOrange, Rows: []string{
		"\\(^-^)/",
		"  /|\\  ",
		"  / \\  ",
	}})
	s.Add(SpriteCharPinkGirl, Glyph{Fg: core.ColorPink, Rows: []string{
		"@(*_*)@",
		"  /|\\  ",
		"  / \\  ",
	}})
	s.Add(SpriteCharPrincessGirl, Glyph{Fg: core.ColorBrightMagenta, Rows: []string{
		" \\^^^/ ",
		" (o.o) ",
		"  /|\\  ",
	}})

	s.Add(SpriteHeart, Glyph{Fg: core.ColorBrightRed, Rows: []string{
		"♥♥ ♥♥",
		"♥♥♥♥♥",
		" ♥♥♥ ",
	}})
	for id, c := range map[SpriteID]core.Color{
		SpriteGemBlue:   core.ColorBrightBlue,
		SpriteGemGreen:  core.ColorBrightGreen,
		SpriteGemOrange: core.ColorOrange,
	} {
		s.Add(id, Glyph{Fg: c, Rows: []string{
			" /\\ ",
			"<◆◆>",
			" \\/ ",
		}})
	}
	s.Add(SpriteKey, Glyph{Fg: core.ColorYellow, Rows: []string{
		"",
		"O==┬┐",
	}})
	s.Add(SpriteStar, Glyph{Fg: core.ColorBrightYellow, Rows: []string{
		"  .  ",
		"-=★=-",
		"  '  ",
	}})
	s.Add(SpriteRock, Glyph{Fg: core.ColorGray, Rows: []string{
		" ▄██▄ ",
		"██████",
		"▀████▀",
	}})

	return s
}
