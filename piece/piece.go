package piece

// Piece is a shape placed at an anchor (top-left of its bounding box) in one form.
// Its cell list is cached and rebuilt on every move through place.
type Piece struct {
	shape    *Shape
	x, y     int
	form     int
	grounded bool
	cells    []Cell
}

// New creates a piece of the given shape at (x, y) in form 0.
func New(shape *Shape, x, y int) *Piece {
	p := &Piece{shape: shape}
	p.place(x, y, 0)
	return p
}

func (p *Piece) Shape() *Shape { return p.shape }
func (p *Piece) X() int        { return p.x }
func (p *Piece) Y() int        { return p.y }
func (p *Piece) Form() int     { return p.form }
func (p *Piece) Forms() int    { return p.shape.Forms }

// ID returns the shape id, used as the tile value once the piece locks.
func (p *Piece) ID() byte { return p.shape.ID }

// Grounded reports whether the piece has touched down.
func (p *Piece) Grounded() bool { return p.grounded }

// Ground latches the piece as touched down.
func (p *Piece) Ground() { p.grounded = true }

// Cells returns the absolute cells the piece occupies. The slice must not be modified.
func (p *Piece) Cells() []Cell {
	return p.cells
}

// CellsAt returns the cells the piece would occupy anchored at (x, y) in form.
func (p *Piece) CellsAt(x, y, form int) []Cell {
	return offset(p.shape.Cells(form), x, y)
}

// Shift moves the anchor by (dx, dy). Legality is the caller's concern.
func (p *Piece) Shift(dx, dy int) {
	p.place(p.x+dx, p.y+dy, p.form)
}

// Transform advances the form by delta, wrapping modulo the form count.
// Legality is the caller's concern.
func (p *Piece) Transform(delta int) {
	p.place(p.x, p.y, p.form+delta)
}

// HighestCellPerColumn returns the topmost occupied cell of each column.
func (p *Piece) HighestCellPerColumn() []Cell {
	return offset(p.shape.Highest(p.form), p.x, p.y)
}

// LowestCellPerColumn returns the bottommost occupied cell of each column.
func (p *Piece) LowestCellPerColumn() []Cell {
	return offset(p.shape.Lowest(p.form), p.x, p.y)
}

// Rows returns the distinct rows the piece occupies, in increasing order.
func (p *Piece) Rows() []int {
	var rows []int
	for _, c := range p.cells {
		if len(rows) == 0 || rows[len(rows)-1] != c.Y {
			rows = append(rows, c.Y)
		}
	}
	return rows
}

// Copy returns an ungrounded piece with the same shape, anchor and form.
func (p *Piece) Copy() *Piece {
	c := &Piece{shape: p.shape}
	c.place(p.x, p.y, p.form)
	return c
}

func (p *Piece) place(x, y, form int) {
	p.x, p.y, p.form = x, y, p.shape.normalize(form)
	p.cells = offset(p.shape.Cells(p.form), x, y)
}

func offset(rel []Cell, x, y int) []Cell {
	out := make([]Cell, len(rel))
	for i, c := range rel {
		out[i] = Cell{X: c.X + x, Y: c.Y + y}
	}
	return out
}
