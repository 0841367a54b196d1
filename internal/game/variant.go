package game

// Features switches on the optional rules of a variant.
type Features struct {
	Scoring   bool // Score as health, enemy penalties, game over at zero
	Items     bool // Collectibles placed each stage
	Obstacles bool // Rocks blocking tiles
	Stages    bool // Reaching the water advances the stage
	Selector  bool // Character selection
}

// Variant is a named, registered rule set.
type Variant struct {
	ID          string
	Title       string
	Description string
	Features    Features
}

// Variants lists the playable rule sets from simplest to richest.
var Variants = []Variant{
	{
		ID:          "classic",
		Title:       "Bug Crossing (Classic)",
		Description: "Reach the water; any bug sends everything back to the start",
	},
	{
		ID:          "scored",
		Title:       "Bug Crossing (Scored)",
		Description: "Score is your health: bugs cost points, items and the water earn them",
		Features:    Features{Scoring: true, Items: true},
	},
	{
		ID:          "stages",
		Title:       "Bug Crossing (Stages)",
		Description: "Rocks block the way and every crossing starts a faster stage",
		Features:    Features{Scoring: true, Items: true, Obstacles: true, Stages: true},
	},
	{
		ID:          "deluxe",
		Title:       "Bug Crossing (Deluxe)",
		Description: "Stages plus character selection",
		Features:    Features{Scoring: true, Items: true, Obstacles: true, Stages: true, Selector: true},
	},
}

// LookupVariant returns the variant with the given id.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
