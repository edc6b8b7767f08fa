package ai

import (
	"github.com/rs/zerolog/log"

	"termtris-local/board"
	"termtris-local/piece"
	"termtris-local/types"
)

// Plan turns a result into commands for p: transforms first, then lateral
// shifts, then a hard drop.
func Plan(r Result, p *piece.Piece) []types.Command {
	forms := p.Forms()
	turns := (r.Form - p.Form()) % forms
	if turns < 0 {
		turns += forms
	}
	dx := r.X - p.X()
	step := types.CmdRight
	if dx < 0 {
		step = types.CmdLeft
		dx = -dx
	}

	moves := make([]types.Command, 0, turns+dx+1)
	for i := 0; i < turns; i++ {
		moves = append(moves, types.CmdTransform)
	}
	for i := 0; i < dx; i++ {
		moves = append(moves, step)
	}
	return append(moves, types.CmdDrop)
}

// Autopilot hands out one planned command at a time for the board's live
// piece, planning again whenever a different piece becomes live.
type Autopilot struct {
	search *Searcher
	piece  *piece.Piece
	moves  []types.Command
}

// NewAutopilot creates an autopilot driven by s.
func NewAutopilot(s *Searcher) *Autopilot {
	return &Autopilot{search: s}
}

// NextMove returns the next command for the live piece, or types.CmdNone when
// there is no piece or the plan is used up.
func (a *Autopilot) NextMove(b *board.Board) types.Command {
	p := b.Piece()
	if p == nil {
		return types.CmdNone
	}
	if p != a.piece {
		r := a.search.BestMove(b, p)
		a.moves = Plan(r, p)
		a.piece = p
		log.Debug().
			Str("piece", string(p.ID())).
			Int("form", r.Form).
			Int("x", r.X).
			Float64("score", r.Score).
			Int("moves", len(a.moves)).
			Msg("autopilot-plan")
	}
	if len(a.moves) == 0 {
		return types.CmdNone
	}
	cmd := a.moves[0]
	a.moves = a.moves[1:]
	return cmd
}

// Reset discards the pending plan.
func (a *Autopilot) Reset() {
	a.piece = nil
	a.moves = nil
}
