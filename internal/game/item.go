package game

// Item is a static collectible worth a fixed score.
type Item struct {
	Entity

	Value     int
	Collected bool
}

// gemSprites are the color variants a gem picks from.
var gemSprites = []SpriteID{SpriteGemBlue, SpriteGemGreen, SpriteGemOrange}

// NewItem creates an uncollected item of the given kind.
// Gems pick their color uniformly from rng.
func NewItem(kind Kind, value int, w, h, x, y float64, rng intn) *Item {
	it := &Item{
		Entity: newEntity(kind, itemSprite(kind, rng), w, h),
		Value:  value,
	}
	it.SetPosition(x, y)
	return it
}

// intn is the subset of *rand.Rand needed to pick sprite variants.
type intn interface {
	Intn(n int) int
}

func itemSprite(kind Kind, rng intn) SpriteID {
	switch kind {
	case KindHeart:
		return SpriteHeart
	case KindGem:
		return gemSprites[rng.Intn(len(gemSprites))]
	case KindKey:
		return SpriteKey
	case KindStar:
		return SpriteStar
	default:
		return SpriteNone
	}
}

// Base returns the embedded entity.
func (it *Item) Base() *Entity { return &it.Entity }

// Update collects the item when the player steps on it.
// A collected item is never checked again.
func (it *Item) Update(w *World, _ float64) {
	if it.Collected || !w.playerActive() {
		return
	}
	if it.Colliding(&w.player.Entity) {
		it.Collected = true
		w.itemCollected(it)
	}
}

// Render draws the item until it is collected.
func (it *Item) Render(c Canvas) {
	if it.Collected {
		return
	}
	it.Entity.Render(c)
}

// Obstacle is a rock blocking the tile it stands on.
type Obstacle struct {
	Entity
}

// NewObstacle creates a rock at the given position.
func NewObstacle(w, h, x, y float64) *Obstacle {
	o := &Obstacle{Entity: newEntity(KindRock, SpriteRock, w, h)}
	o.SetPosition(x, y)
	return o
}

// Base returns the embedded entity.
func (o *Obstacle) Base() *Entity { return &o.Entity }

// Update does nothing; rocks only matter to the player's move check.
func (o *Obstacle) Update(*World, float64) {}
