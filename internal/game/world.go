package game

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Status is the global game state.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// World owns every entity of a running game and arbitrates between them:
// collisions feed the score, the score decides game over, and reaching the
// water advances the stage.
type World struct {
	cfg      config.Config
	features Features
	rng      *rand.Rand
	logger   *log.Logger

	tileW, tileH   float64
	boardW, boardH float64
	goals          []core.Box

	player   *Player
	enemies  []*Enemy
	items    []*Item
	rocks    []*Obstacle
	scenery  []Actor // items and rocks, ordered by Y for drawing
	selector *Selector

	score   Score
	status  Status
	message string
	stage   int
	paused  bool
	err     error
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for gameplay diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorld builds a world for the given configuration and feature set.
// The same seed always produces the same game.
func NewWorld(cfg config.Config, f Features, seed int64, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		cfg:      cfg,
		features: f,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   log.New(io.Discard),
		tileW:    cfg.Board.TileWidth,
		tileH:    cfg.Board.TileHeight,
		boardW:   cfg.Board.Width(),
		boardH:   cfg.Board.Height(),
		selector: NewSelector(Characters),
	}
	for _, o := range opts {
		o(w)
	}

	for _, r := range cfg.Board.GoalRows {
		w.goals = append(w.goals, core.NewBox(0, float64(r)*w.tileH, w.boardW, w.tileH))
	}

	w.player = NewPlayer(
		SpriteCharBoy,
		w.tileW, w.tileH,
		float64(cfg.Player.StartCol)*w.tileW,
		float64(cfg.Player.StartRow)*w.tileH,
	)
	w.score = NewScore(cfg.Scoring.InitialScore)

	if err := w.start(); err != nil {
		return nil, err
	}
	return w, nil
}

// start (re)populates enemies and the first stage.
func (w *World) start() error {
	w.status = StatusPlaying
	w.message = ""
	w.stage = 1
	w.paused = false
	w.err = nil
	w.player.Paused = false
	w.player.ResetPosition()

	w.enemies = w.enemies[:0]
	for i := 0; i < w.cfg.Enemies.Count; i++ {
		x, y := w.enemySpawnPoint()
		w.enemies = append(w.enemies, NewEnemy(w.tileW, w.tileH, x, y, w.enemySpeed(), w.cfg.Enemies.Score))
	}

	if err := w.generateStage(); err != nil {
		return err
	}
	w.logger.Info("game started", "enemies", len(w.enemies), "items", len(w.items), "rocks", len(w.rocks))
	return nil
}

// Restart begins a new game after game over. The high score is kept.
func (w *World) Restart() error {
	w.score.Reset(w.cfg.Scoring.InitialScore)
	return w.start()
}

// enemySpawnPoint returns the off-board entry point on a random lane.
func (w *World) enemySpawnPoint() (x, y float64) {
	lanes := w.cfg.Board.EnemyLanes
	lane := lanes[w.rng.Intn(len(lanes))]
	return w.cfg.Enemies.SpawnX, float64(lane) * w.tileH
}

// enemySpeed returns a random speed within the configured range.
func (w *World) enemySpeed() float64 {
	e := w.cfg.Enemies
	return e.MinSpeed + w.rng.Float64()*(e.MaxSpeed-e.MinSpeed)
}

// generateStage replaces all items and rocks with a fresh random layout.
// No two objects share a tile and none sits on the player's start tile.
func (w *World) generateStage() error {
	kinds := planStage(w.cfg.Stage, w.features, w.rng)

	start := Tile{Col: w.cfg.Player.StartCol, Row: w.cfg.Player.StartRow}
	pl := newPlacer(w.rng, w.cfg.Board.Cols, w.cfg.Board.SpawnRows, w.cfg.Spawn.MaxAttempts, start)
	if len(kinds) > 0 && len(kinds) > pl.free() {
		return fmt.Errorf("stage %d: %w: %d objects for %d free tiles",
			w.stage, ErrBoardOverConstrained, len(kinds), pl.free())
	}

	w.items = w.items[:0]
	w.rocks = w.rocks[:0]
	w.scenery = w.scenery[:0]

	for _, k := range kinds {
		t, err := pl.place()
		if err != nil {
			return fmt.Errorf("stage %d: placing %s: %w", w.stage, k, err)
		}
		x, y := float64(t.Col)*w.tileW, float64(t.Row)*w.tileH

		if !k.IsItem() {
			o := NewObstacle(w.tileW, w.tileH, x, y)
			w.rocks = append(w.rocks, o)
			w.scenery = append(w.scenery, o)
			continue
		}
		it := NewItem(k, w.itemValue(k), w.tileW, w.tileH, x, y, w.rng)
		w.items = append(w.items, it)
		w.scenery = append(w.scenery, it)
	}

	w.sortScenery()
	w.logger.Debug("stage generated", "stage", w.stage, "items", len(w.items), "rocks", len(w.rocks))
	return nil
}

// sortScenery orders items and rocks top to bottom, so lower objects are
// drawn over higher ones.
func (w *World) sortScenery() {
	sort.SliceStable(w.scenery, func(i, j int) bool {
		return w.scenery[i].Base().Y() < w.scenery[j].Base().Y()
	})
}

func (w *World) itemValue(k Kind) int {
	v := w.cfg.Items
	switch k {
	case KindHeart:
		return v.Heart
	case KindGem:
		return v.Gem
	case KindKey:
		return v.Key
	case KindStar:
		return v.Star
	default:
		w.logger.Warn("no score value for kind", "kind", k.String())
		return 0
	}
}

// HandleInput routes an action to the player or the selector.
// Actions the variant does not use are ignored.
func (w *World) HandleInput(a core.Action) {
	switch {
	case a.IsDirection():
		if w.status == StatusGameOver || w.paused {
			return
		}
		w.player.HandleInput(w, a)
	case a == core.ActionSelect && w.features.Selector:
		w.selector.Next()
		w.logger.Debug("character selected", "sprite", w.selector.Current().String())
	case a == core.ActionPause:
		w.SetPaused(!w.paused)
	default:
		w.logger.Debug("input ignored", "action", a.String())
	}
}

// SetPaused freezes or resumes gameplay. It has no effect after game over.
func (w *World) SetPaused(paused bool) {
	if w.status == StatusGameOver {
		return
	}
	w.paused = paused
	w.player.Paused = paused
}

// Update advances every entity by dt seconds.
// Nothing moves while paused or after game over. A non-nil error means the
// next stage could not be generated and the game cannot continue.
func (w *World) Update(dt float64) error {
	if w.err != nil {
		return w.err
	}
	if w.status == StatusGameOver || w.paused {
		return nil
	}

	if w.features.Selector {
		w.player.Sprite = w.selector.Current()
	}

	for _, e := range w.enemies {
		e.Update(w, dt)
	}
	for _, it := range w.items {
		it.Update(w, dt)
	}
	w.player.Update(w, dt)

	return w.err
}

// Render draws the board, then items and rocks top to bottom, then enemies
// and the player.
func (w *World) Render(c Canvas) {
	for row := 0; row < w.cfg.Board.Rows; row++ {
		sprite := w.rowSprite(row)
		for col := 0; col < w.cfg.Board.Cols; col++ {
			c.DrawSprite(sprite, float64(col)*w.tileW, float64(row)*w.tileH)
		}
	}

	w.sortScenery()
	for _, a := range w.scenery {
		a.Render(c)
	}
	for _, e := range w.enemies {
		e.Render(c)
	}
	w.player.Render(c)
}

func (w *World) rowSprite(row int) SpriteID {
	for _, r := range w.cfg.Board.GoalRows {
		if r == row {
			return SpriteWaterBlock
		}
	}
	for _, r := range w.cfg.Board.EnemyLanes {
		if r == row {
			return SpriteStoneBlock
		}
	}
	return SpriteGrassBlock
}

// playerActive reports whether collisions with the player still count.
func (w *World) playerActive() bool {
	return w.status == StatusPlaying && !w.player.Paused
}

// blocked reports whether a rock overlaps the box.
func (w *World) blocked(b core.Box) bool {
	for _, r := range w.rocks {
		if r.Box().Intersects(b) {
			return true
		}
	}
	return false
}

// reachedGoal reports whether the box overlaps the water.
func (w *World) reachedGoal(b core.Box) bool {
	for _, g := range w.goals {
		if b.Intersects(g) {
			return true
		}
	}
	return false
}

// enemyHit resolves a collision between an enemy and the player.
// With scoring, the penalty is applied first and only then compared with
// zero; without scoring the whole board resets.
func (w *World) enemyHit(e *Enemy) {
	if !w.features.Scoring {
		w.logger.Debug("collision, resetting board")
		w.resetBoard()
		return
	}

	w.score.Add(e.Score)
	w.logger.Debug("collision", "penalty", e.Score, "score", w.score.Current)
	if w.score.Current <= 0 {
		w.GameOver()
		return
	}
	w.Retry()
}

// itemCollected awards an item's value.
func (w *World) itemCollected(it *Item) {
	w.score.Add(it.Value)
	w.logger.Debug("item collected", "kind", it.Kind.String(), "value", it.Value, "score", w.score.Current)
}

// goalReached handles the player entering the water.
func (w *World) goalReached() {
	if w.features.Stages {
		if err := w.NextStage(); err != nil {
			w.logger.Error("next stage failed", "stage", w.stage, "err", err)
			w.err = err
		}
		return
	}
	if w.features.Scoring {
		w.score.Add(w.cfg.Scoring.GoalBonus)
	}
	w.logger.Debug("goal reached", "score", w.score.Current)
	w.player.ResetPosition()
}

// resetBoard sends every enemy back to a random spawn point and the player
// to the start tile.
func (w *World) resetBoard() {
	for _, e := range w.enemies {
		x, y := w.enemySpawnPoint()
		e.SetPosition(x, y)
	}
	w.player.ResetPosition()
}

// Retry puts the player back on the start tile after a hit.
// Items, rocks and enemies are left as they are.
func (w *World) Retry() {
	w.player.ResetPosition()
}

// NextStage speeds up every enemy, resets the player and lays out a new
// set of items and rocks.
func (w *World) NextStage() error {
	for _, e := range w.enemies {
		e.Speed += w.cfg.Stage.SpeedIncrement
	}
	w.player.ResetPosition()
	w.stage++
	if w.features.Scoring {
		w.score.Add(w.cfg.Scoring.GoalBonus)
	}
	w.logger.Info("stage advanced", "stage", w.stage, "score", w.score.Current)
	return w.generateStage()
}

// GameOver stops gameplay and pauses the player. The displayed score is
// zeroed so a negative value is never shown.
func (w *World) GameOver() {
	w.status = StatusGameOver
	w.player.Paused = true
	w.player.resetDelta()
	if w.features.Scoring {
		w.score.Current = 0
	}
	w.message = "GAME OVER"
	w.logger.Info("game over", "stage", w.stage, "high", w.score.High)
}

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Enemies returns the enemies in spawn order.
func (w *World) Enemies() []*Enemy { return w.enemies }

// Items returns the items of the current stage.
func (w *World) Items() []*Item { return w.items }

// Rocks returns the rocks of the current stage.
func (w *World) Rocks() []*Obstacle { return w.rocks }

// Scenery returns items and rocks in drawing order.
func (w *World) Scenery() []Actor { return w.scenery }

// Score returns the score.
func (w *World) Score() Score { return w.score }

// Status returns the game status.
func (w *World) Status() Status { return w.status }

// Message returns the overlay message, empty while playing.
func (w *World) Message() string { return w.message }

// Stage returns the current stage number, starting at 1.
func (w *World) Stage() int { return w.stage }

// Paused reports whether gameplay is paused by the player.
func (w *World) Paused() bool { return w.paused }

// Features returns the enabled features.
func (w *World) Features() Features { return w.features }

// Selector returns the character selector.
func (w *World) Selector() *Selector { return w.selector }

// Config returns the configuration the world was built from.
func (w *World) Config() config.Config { return w.cfg }
