package game

// Selector cycles through a fixed list of character sprites.
type Selector struct {
	sprites []SpriteID
	index   int
}

// NewSelector creates a selector pointing at the first sprite.
func NewSelector(sprites []SpriteID) *Selector {
	return &Selector{sprites: sprites}
}

// Next advances to the following sprite, wrapping around.
func (s *Selector) Next() {
	if len(s.sprites) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.sprites)
}

// Index returns the selected position.
func (s *Selector) Index() int {
	return s.index
}

// Current returns the selected sprite, or SpriteNone for an empty list.
func (s *Selector) Current() SpriteID {
	if len(s.sprites) == 0 {
		return SpriteNone
	}
	return s.sprites[s.index]
}
