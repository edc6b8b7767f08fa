// Package engine runs a single falling-block game session: gravity ticks,
// player and autopilot commands, scoring and piece supply.
package engine

import (
	"github.com/rs/zerolog/log"

	"termtris-local/ai"
	"termtris-local/board"
	"termtris-local/piece"
	"termtris-local/store"
	"termtris-local/types"
)

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Rows     int  // board height
	Cols     int  // board width
	TickRate int  // base ticks per gravity step
	Autoplay bool // start with the autopilot in control
	Paused   bool // start paused
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Rows:     20,
		Cols:     12,
		TickRate: 8,
	}
}

// Game is one session. It is not safe for concurrent use: every method must
// be called from the goroutine that drives the ticks.
type Game struct {
	cfg    GameConfig
	source *piece.Source
	board  *board.Board
	pilot  *ai.Autopilot
	store  store.ScoreStore

	spawnX int
	spawnY int

	tickRate    int
	clock       int
	paused      bool
	over        bool
	auto        bool
	fastForward bool

	score     int
	lines     int
	pieces    int
	bestScore int
	bestLines int
	next      *piece.Piece

	updateCallbacks []func(types.Snapshot)
}

// NewGame creates a session over catalog. A nil rng uses the default bag
// randomness; a nil st keeps records in memory.
func NewGame(cfg GameConfig, catalog *piece.Catalog, rng piece.Rand, st store.ScoreStore) *Game {
	if st == nil {
		st = &store.MemoryStore{}
	}
	if cfg.TickRate < 1 {
		cfg.TickRate = 1
	}
	source := piece.NewSource(catalog, rng)
	spawnX := cfg.Cols/2 - 2
	spawnY := 1 - catalog.MaxBoundingSize()

	g := &Game{
		cfg:       cfg,
		source:    source,
		board:     board.New(cfg.Cols, cfg.Rows),
		pilot:     ai.NewAutopilot(ai.NewSearcher(source, spawnX, spawnY)),
		store:     st,
		spawnX:    spawnX,
		spawnY:    spawnY,
		tickRate:  cfg.TickRate,
		paused:    cfg.Paused,
		auto:      cfg.Autoplay,
		bestScore: st.BestScore(),
		bestLines: st.BestLines(),
	}
	g.Restart()
	return g
}

// Restart clears the board and score and starts a fresh bag. The first
// piece becomes live on the next gravity step.
func (g *Game) Restart() {
	g.clock = 0
	g.tickRate = g.cfg.TickRate
	g.over = false
	g.fastForward = false
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.source.Reset()
	g.board.Clear()
	g.pilot.Reset()
	g.makeNext()
	log.Debug().Int("rows", g.cfg.Rows).Int("cols", g.cfg.Cols).Msg("game-restart")
	g.publish()
}

// Advance runs one base tick. Gravity applies when the clock wraps, or
// immediately when fast-forward is pending. With the autopilot on, one
// planned command is applied first.
func (g *Game) Advance() {
	if g.paused || g.over {
		return
	}
	if g.auto {
		if cmd := g.pilot.NextMove(g.board); cmd != types.CmdNone {
			g.apply(cmd)
		}
	}
	g.clock = (g.clock + 1) % g.tickRate
	if g.clock == 0 {
		g.step()
	} else if g.fastForward {
		g.step()
		g.fastForward = false
	}
	g.publish()
}

// Move applies a player command. It is ignored while paused or over.
func (g *Game) Move(cmd types.Command) {
	if g.paused || g.over {
		return
	}
	g.apply(cmd)
	g.publish()
}

// Pause toggles the paused state, unless the game is over.
func (g *Game) Pause() {
	if g.over {
		return
	}
	g.paused = !g.paused
	g.publish()
}

// ToggleAuto switches the autopilot on or off and returns the new state.
func (g *Game) ToggleAuto() bool {
	g.auto = !g.auto
	g.pilot.Reset()
	g.publish()
	return g.auto
}

// SetCadence sets how many base ticks pass between gravity steps.
func (g *Game) SetCadence(ticksPerAdvance int) {
	if ticksPerAdvance < 1 {
		ticksPerAdvance = 1
	}
	g.tickRate = ticksPerAdvance
	g.clock %= ticksPerAdvance
}

func (g *Game) Cadence() int   { return g.tickRate }
func (g *Game) Score() int     { return g.score }
func (g *Game) Lines() int     { return g.lines }
func (g *Game) Pieces() int    { return g.pieces }
func (g *Game) Over() bool     { return g.over }
func (g *Game) Paused() bool   { return g.paused }
func (g *Game) Auto() bool     { return g.auto }
func (g *Game) BestScore() int { return g.bestScore }
func (g *Game) BestLines() int { return g.bestLines }

// Board returns the session's board. Callers must treat it as read-only.
func (g *Game) Board() *board.Board { return g.board }

// NextPiece returns the piece that becomes live after the current one.
func (g *Game) NextPiece() *piece.Piece { return g.next }

// OnUpdate registers a callback that receives a snapshot after every state change.
func (g *Game) OnUpdate(fn func(types.Snapshot)) {
	g.updateCallbacks = append(g.updateCallbacks, fn)
}

// Snapshot returns a copy of the session state.
func (g *Game) Snapshot() types.Snapshot {
	s := types.Snapshot{
		Rows:      g.board.Rows(),
		Score:     g.score,
		Lines:     g.lines,
		BestScore: g.bestScore,
		BestLines: g.bestLines,
		Pieces:    g.pieces,
		Cadence:   g.tickRate,
		Paused:    g.paused,
		Over:      g.over,
		Auto:      g.auto,
	}
	if p := g.board.Piece(); p != nil {
		s.ActiveID = string(p.ID())
		s.Active = append([]types.BoardPos(nil), p.Cells()...)
		s.Shadow = g.board.Shadow()
	}
	if g.next != nil {
		s.NextID = string(g.next.ID())
		s.Next = g.next.CellsAt(0, 0, 0)
	}
	return s
}

func (g *Game) apply(cmd types.Command) {
	if cmd == types.CmdFastForward {
		g.fastForward = true
		return
	}
	r := g.board.Apply(cmd)
	g.addScore(r.Score)
	if cmd == types.CmdDrop {
		g.fastForward = true
	}
}

// step is one gravity step: fall, or lock and bring in the next piece.
func (g *Game) step() {
	r := g.board.Tick()
	if r.Success {
		return
	}
	g.addScore(r.Score)
	g.addLines(r.Lines)
	if r.Lines > 0 {
		log.Info().Int("rows", r.Lines).Int("score", g.score).Int("lines", g.lines).Msg("rows-cleared")
	}
	if !g.board.Accept(g.next) {
		g.over = true
		log.Info().Int("score", g.score).Int("lines", g.lines).Int("pieces", g.pieces).Msg("game-over")
		return
	}
	g.pieces++
	log.Debug().Str("piece", string(g.next.ID())).Int("n", g.pieces).Msg("piece-spawn")
	g.makeNext()
}

func (g *Game) makeNext() {
	g.next = piece.New(g.source.Next(), g.spawnX, g.spawnY)
}

func (g *Game) addScore(delta int) {
	if delta <= 0 {
		return
	}
	g.score += delta
	if g.score > g.bestScore {
		g.bestScore = g.score
		if err := g.store.SetBestScore(g.bestScore); err != nil {
			log.Warn().Err(err).Msg("save-best-score")
		}
	}
}

func (g *Game) addLines(delta int) {
	if delta <= 0 {
		return
	}
	g.lines += delta
	if g.lines > g.bestLines {
		g.bestLines = g.lines
		if err := g.store.SetBestLines(g.bestLines); err != nil {
			log.Warn().Err(err).Msg("save-best-lines")
		}
	}
}

func (g *Game) publish() {
	if len(g.updateCallbacks) == 0 {
		return
	}
	s := g.Snapshot()
	for _, fn := range g.updateCallbacks {
		fn(s)
	}
}
