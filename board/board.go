// Package board implements the occupancy grid and the live piece's movement,
// locking and row clearing.
package board

import (
	"math"

	"termtris-local/piece"
	"termtris-local/types"
)

// Empty is the tile value of an unoccupied cell.
const Empty byte = 0

// Result reports the outcome of a board operation.
// Landed is set when a gravity tick locked the live piece into the grid.
type Result struct {
	Success bool
	Landed  bool
	Score   int
	Lines   int
}

// Board is a width x height grid of tiles plus at most one live piece.
// Row 0 is the top, row height-1 the floor. Rows above 0 are always empty.
type Board struct {
	width  int
	height int
	grid   [][]byte
	piece  *piece.Piece
}

// New creates an empty board.
func New(width, height int) *Board {
	b := &Board{width: width, height: height, grid: make([][]byte, height)}
	for y := range b.grid {
		b.grid[y] = make([]byte, width)
	}
	return b
}

// Parse builds a board from rows of text, '.' or ' ' meaning empty and any
// other byte being the tile stored in that cell.
func Parse(rows ...string) *Board {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	b := New(width, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] != '.' && r[x] != ' ' {
				b.grid[y][x] = r[x]
			}
		}
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Piece returns the live piece, or nil.
func (b *Board) Piece() *piece.Piece { return b.piece }

// Tile returns the tile at (x, y). Cells above the board read as Empty.
func (b *Board) Tile(x, y int) byte {
	if y < 0 {
		return Empty
	}
	return b.grid[y][x]
}

// IsCellEmpty reports whether (x, y) holds no tile. Rows above the board are empty.
func (b *Board) IsCellEmpty(x, y int) bool {
	return y < 0 || b.grid[y][x] == Empty
}

// WithinBounds reports whether every cell is inside the side walls and above
// the floor. The top is not checked.
func (b *Board) WithinBounds(cells []piece.Cell) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return false
		}
	}
	return true
}

// CellsClear reports whether every on-board cell is empty. Bounds are not checked.
func (b *Board) CellsClear(cells []piece.Cell) bool {
	for _, c := range cells {
		if c.Y < 0 {
			continue
		}
		if b.grid[c.Y][c.X] != Empty {
			return false
		}
	}
	return true
}

// Legal reports whether a cell set is in bounds and unoccupied.
func (b *Board) Legal(cells []piece.Cell) bool {
	return b.WithinBounds(cells) && b.CellsClear(cells)
}

// Accept makes p the live piece. It returns false, leaving the board unchanged,
// when p's cells are out of bounds or already occupied: the game is lost.
// A nil p clears the live piece.
func (b *Board) Accept(p *piece.Piece) bool {
	if p != nil && !b.Legal(p.Cells()) {
		return false
	}
	b.piece = p
	return true
}

// Apply runs one command against the live piece. Unknown commands are no-ops.
func (b *Board) Apply(cmd types.Command) Result {
	if b.piece == nil || b.piece.Grounded() {
		return Result{}
	}
	switch cmd {
	case types.CmdDown:
		return Result{Success: b.shift(0, 1)}
	case types.CmdLeft:
		return Result{Success: b.shift(-1, 0)}
	case types.CmdRight:
		return Result{Success: b.shift(1, 0)}
	case types.CmdTransform:
		return Result{Success: b.transform()}
	case types.CmdDrop:
		d := b.drop()
		return Result{Success: d > 0, Score: DropScore(d)}
	}
	return Result{}
}

// Tick applies gravity. When the piece cannot fall it is locked into the grid,
// completed rows are cleared and the live piece is released.
func (b *Board) Tick() Result {
	if b.piece == nil {
		return Result{}
	}
	if r := b.Apply(types.CmdDown); r.Success {
		return r
	}
	p := b.piece
	p.Ground()
	for _, c := range p.Cells() {
		if c.Y >= 0 {
			b.grid[c.Y][c.X] = p.ID()
		}
	}
	rows := b.FullRows(p.Rows())
	b.ClearRows(rows)
	b.piece = nil
	return Result{Landed: true, Score: RowScore(len(rows)), Lines: len(rows)}
}

// Shadow returns the cells the live piece would occupy after a hard drop.
func (b *Board) Shadow() []piece.Cell {
	if b.piece == nil {
		return nil
	}
	p := b.piece
	return p.CellsAt(p.X(), p.Y()+b.DistanceToGround(p), p.Form())
}

// DistanceToGround returns how far p can fall. Each column's lowest cell walks
// down until the next row is occupied or the floor is reached.
func (b *Board) DistanceToGround(p *piece.Piece) int {
	distance := b.height
	for _, c := range p.LowestCellPerColumn() {
		y := c.Y
		for y+1 < b.height && b.IsCellEmpty(c.X, y+1) {
			y++
		}
		if y-c.Y < distance {
			distance = y - c.Y
		}
	}
	if distance < 0 {
		distance = 0
	}
	for distance > 0 && !b.Legal(p.CellsAt(p.X(), p.Y()+distance, p.Form())) {
		distance--
	}
	return distance
}

// FullRows returns the rows among the given ones that have no empty cell.
func (b *Board) FullRows(rows []int) []int {
	var full []int
	for _, y := range rows {
		if y < 0 || y >= b.height {
			continue
		}
		filled := true
		for x := 0; x < b.width; x++ {
			if b.grid[y][x] == Empty {
				filled = false
				break
			}
		}
		if filled {
			full = append(full, y)
		}
	}
	return full
}

// ClearRows removes each row in turn, shifting everything above it down one row.
// Rows must be in increasing order.
func (b *Board) ClearRows(rows []int) {
	for _, row := range rows {
		for y := row; y > 0; y-- {
			copy(b.grid[y], b.grid[y-1])
		}
		for x := range b.grid[0] {
			b.grid[0][x] = Empty
		}
	}
}

// Clear empties the grid and drops the live piece.
func (b *Board) Clear() {
	for y := range b.grid {
		for x := range b.grid[y] {
			b.grid[y][x] = Empty
		}
	}
	b.piece = nil
}

// Occupancy copies the grid into dst as booleans, reallocating dst when its
// dimensions do not match.
func (b *Board) Occupancy(dst [][]bool) [][]bool {
	if len(dst) != b.height || (b.height > 0 && len(dst[0]) != b.width) {
		dst = make([][]bool, b.height)
		for y := range dst {
			dst[y] = make([]bool, b.width)
		}
	}
	for y, row := range b.grid {
		for x, t := range row {
			dst[y][x] = t != Empty
		}
	}
	return dst
}

// Rows renders the grid as text, '.' for empty cells.
func (b *Board) Rows() []string {
	out := make([]string, b.height)
	buf := make([]byte, b.width)
	for y, row := range b.grid {
		for x, t := range row {
			if t == Empty {
				buf[x] = '.'
			} else {
				buf[x] = t
			}
		}
		out[y] = string(buf)
	}
	return out
}

// RowScore is the score for clearing n rows at once.
func RowScore(n int) int {
	return int(math.Floor(math.Pow(float64(n), 1.2)*5)) * 10
}

// DropScore is the score for a hard drop over distance rows.
func DropScore(distance int) int {
	return distance / 3
}

func (b *Board) shift(dx, dy int) bool {
	p := b.piece
	if !b.Legal(p.CellsAt(p.X()+dx, p.Y()+dy, p.Form())) {
		return false
	}
	p.Shift(dx, dy)
	return true
}

func (b *Board) transform() bool {
	p := b.piece
	if !b.Legal(p.CellsAt(p.X(), p.Y(), p.Form()+1)) {
		return false
	}
	p.Transform(1)
	return true
}

func (b *Board) drop() int {
	p := b.piece
	d := b.DistanceToGround(p)
	p.Ground()
	if d > 0 {
		p.Shift(0, d)
	}
	return d
}
