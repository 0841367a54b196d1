package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// ErrBoardOverConstrained is returned when a stage cannot place all of its
// objects on distinct tiles.
var ErrBoardOverConstrained = errors.New("board over-constrained")

// Tile is a board cell, numbered from the top-left.
type Tile struct {
	Col, Row int
}

// placer draws random free tiles by rejection sampling.
// Each placement gives up after maxAttempts draws.
type placer struct {
	rng         *rand.Rand
	cols        int
	rows        []int
	occupied    []Tile
	maxAttempts int
}

func newPlacer(rng *rand.Rand, cols int, rows []int, maxAttempts int, reserved ...Tile) *placer {
	return &placer{
		rng:         rng,
		cols:        cols,
		rows:        rows,
		occupied:    append([]Tile(nil), reserved...),
		maxAttempts: maxAttempts,
	}
}

func (p *placer) isOccupied(t Tile) bool {
	for _, o := range p.occupied {
		if o == t {
			return true
		}
	}
	return false
}

// free counts the spawnable tiles not yet taken.
func (p *placer) free() int {
	seen := make(map[int]bool, len(p.rows))
	n := 0
	for _, r := range p.rows {
		if seen[r] {
			continue
		}
		seen[r] = true
		for c := 0; c < p.cols; c++ {
			if !p.isOccupied(Tile{Col: c, Row: r}) {
				n++
			}
		}
	}
	return n
}

// place picks a free tile and marks it occupied.
func (p *placer) place() (Tile, error) {
	if len(p.rows) == 0 || p.cols <= 0 {
		return Tile{}, fmt.Errorf("%w: no spawnable tiles", ErrBoardOverConstrained)
	}
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		t := Tile{
			Col: p.rng.Intn(p.cols),
			Row: p.rows[p.rng.Intn(len(p.rows))],
		}
		if p.isOccupied(t) {
			continue
		}
		p.occupied = append(p.occupied, t)
		return t, nil
	}
	return Tile{}, fmt.Errorf("%w: no free tile after %d attempts (%d placed)",
		ErrBoardOverConstrained, p.maxAttempts, len(p.occupied))
}

// planStage lists the kinds of objects one stage contains.
// Rare kinds are rolled once per stage, not per object.
func planStage(cfg config.StageConfig, f Features, rng *rand.Rand) []Kind {
	var kinds []Kind
	if f.Items {
		for i := 0; i < cfg.Hearts; i++ {
			kinds = append(kinds, KindHeart)
		}
		for i := 0; i < cfg.Gems; i++ {
			kinds = append(kinds, KindGem)
		}
		if rng.Float64() < cfg.KeyChance {
			kinds = append(kinds, KindKey)
		}
		if rng.Float64() < cfg.StarChance {
			kinds = append(kinds, KindStar)
		}
	}
	if f.Obstacles {
		for i := 0; i < cfg.Rocks; i++ {
			kinds = append(kinds, KindRock)
		}
	}
	return kinds
}
