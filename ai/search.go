// Package ai picks placements for the live piece with a one-piece expectimax
// search over a private copy of the board.
package ai

import (
	"termtris-local/board"
	"termtris-local/piece"
)

const noScore = -100000.0

// maxForms bounds the orientations a shape can encode in its 8-bit grid.
const maxForms = 8

// Templates is the set of shapes the next piece may be drawn from.
// *piece.Source satisfies it.
type Templates interface {
	TemplateCount() int
	Template(i int) *piece.Shape
}

// Result is a chosen final orientation and anchor column. Score is heuristic.
type Result struct {
	Score float64
	Form  int
	X     int
}

// Searcher evaluates placements. It owns a scratch grid that is stamped and
// unstamped during a search, so one Searcher must not run concurrent searches.
type Searcher struct {
	templates Templates
	spawnX    int
	spawnY    int

	grid   [][]bool
	high   []int
	width  int
	height int
}

// NewSearcher creates a searcher whose hypothetical next pieces spawn at (spawnX, spawnY).
func NewSearcher(t Templates, spawnX, spawnY int) *Searcher {
	return &Searcher{templates: t, spawnX: spawnX, spawnY: spawnY}
}

// BestMove returns the placement of p that maximizes the expected score
// against a uniformly drawn next piece. The board is only read. When no
// placement is legal the piece's current form and column are returned.
func (s *Searcher) BestMove(b *board.Board, p *piece.Piece) Result {
	s.load(b)
	best := Result{Score: noScore, Form: p.Form(), X: p.X()}
	s.sweep(p.Shape(), p.X(), p.Y(), p.Form(), func(form, x int) {
		if v := s.expected(); v > best.Score {
			best = Result{Score: v, Form: form, X: x}
		}
	})
	return best
}

// expected averages the best placement of every template spawned fresh.
func (s *Searcher) expected() float64 {
	n := s.templates.TemplateCount()
	if n == 0 {
		return score(s.grid, s.high)
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += s.best(s.templates.Template(i), s.spawnX, s.spawnY, 0)
	}
	return total / float64(n)
}

// best is the highest heuristic score over every placement of shape.
func (s *Searcher) best(shape *piece.Shape, x, y, form int) float64 {
	top := noScore
	s.sweep(shape, x, y, form, func(int, int) {
		if v := score(s.grid, s.high); v > top {
			top = v
		}
	})
	return top
}

// sweep visits every reachable landing of shape with its cells stamped into
// the scratch grid. Forms are tried in order; a form is reachable when every
// transform from the starting form up to it is legal at (x, y). For each form
// the column offset walks right from 0, then left from -1, stopping at the
// first illegal offset in each direction. Both the live piece and the
// mean node's spawned templates go through this rule, so a template whose
// spawn offset is blocked contributes no placements.
func (s *Searcher) sweep(shape *piece.Shape, x, y, start int, visit func(form, x int)) {
	var reach [maxForms]bool
	forms := shape.Forms
	if forms > maxForms {
		forms = maxForms
	}
	reach[start%forms] = s.fits(shape.Cells(start), x, y)
	for k := 1; k < forms; k++ {
		prev, next := (start+k-1)%forms, (start+k)%forms
		reach[next] = reach[prev] && s.fits(shape.Cells(next), x, y)
	}

	for form := 0; form < forms; form++ {
		if !reach[form] {
			continue
		}
		cells := shape.Cells(form)
		for _, dir := range [2]int{1, -1} {
			dx := 0
			if dir < 0 {
				dx = -1
			}
			for s.fits(cells, x+dx, y) {
				dy := s.dropDistance(shape, form, x+dx, y)
				s.stamp(cells, x+dx, y+dy, true)
				visit(form, x+dx)
				s.stamp(cells, x+dx, y+dy, false)
				dx += dir
			}
		}
	}
}

func (s *Searcher) load(b *board.Board) {
	s.grid = b.Occupancy(s.grid)
	s.width, s.height = b.Width(), b.Height()
	if len(s.high) < s.width {
		s.high = make([]int, s.width)
	}
}

// fits reports whether cells anchored at (x, y) are inside the walls, above
// the floor and on empty cells.
func (s *Searcher) fits(cells []piece.Cell, x, y int) bool {
	for _, c := range cells {
		cx, cy := c.X+x, c.Y+y
		if cx < 0 || cx >= s.width || cy >= s.height {
			return false
		}
		if cy >= 0 && s.grid[cy][cx] {
			return false
		}
	}
	return true
}

// dropDistance walks each column's lowest cell down until blocked or on the floor.
func (s *Searcher) dropDistance(shape *piece.Shape, form, x, y int) int {
	distance := s.height
	for _, c := range shape.Lowest(form) {
		cx, cy := c.X+x, c.Y+y
		row := cy
		for row+1 < s.height && (row+1 < 0 || !s.grid[row+1][cx]) {
			row++
		}
		if row-cy < distance {
			distance = row - cy
		}
	}
	if distance < 0 {
		distance = 0
	}
	cells := shape.Cells(form)
	for distance > 0 && !s.fits(cells, x, y+distance) {
		distance--
	}
	return distance
}

func (s *Searcher) stamp(cells []piece.Cell, x, y int, v bool) {
	for _, c := range cells {
		if cy := c.Y + y; cy >= 0 {
			s.grid[cy][c.X+x] = v
		}
	}
}
