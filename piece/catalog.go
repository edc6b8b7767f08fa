// Package piece defines falling-block shapes, live pieces and the bag that supplies them.
package piece

import "termtris-local/types"

// Cell is an occupied grid coordinate, relative to a piece anchor or absolute on the board.
type Cell = types.BoardPos

// Shape is an immutable piece template. Its per-form cell lists are derived once
// at registration and shared read-only by every Piece built from it.
type Shape struct {
	ID      byte
	Index   int
	Forms   int
	Starter bool

	size    int
	cells   [][]Cell
	highest [][]Cell
	lowest  [][]Cell
}

// Cells returns the occupied cells of the given form relative to the anchor.
// The returned slice must not be modified.
func (s *Shape) Cells(form int) []Cell {
	return s.cells[s.normalize(form)]
}

// Highest returns the topmost relative cell of each column the form occupies.
func (s *Shape) Highest(form int) []Cell {
	return s.highest[s.normalize(form)]
}

// Lowest returns the bottommost relative cell of each column the form occupies.
func (s *Shape) Lowest(form int) []Cell {
	return s.lowest[s.normalize(form)]
}

// Size returns the larger dimension of the shape's bit grid.
func (s *Shape) Size() int {
	return s.size
}

func (s *Shape) normalize(form int) int {
	form %= s.Forms
	if form < 0 {
		form += s.Forms
	}
	return form
}

// Catalog is the static set of shapes a game draws from.
type Catalog struct {
	shapes  []*Shape
	byID    map[byte]*Shape
	largest int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[byte]*Shape)}
}

// AddShape registers a shape. Bit f of grid[y][x] set means cell (x, y) is
// occupied in form f.
func (c *Catalog) AddShape(id byte, forms int, starter bool, grid [][]uint8) *Shape {
	if forms < 1 {
		forms = 1
	}
	s := &Shape{
		ID:      id,
		Index:   len(c.shapes),
		Forms:   forms,
		Starter: starter,
		cells:   make([][]Cell, forms),
		highest: make([][]Cell, forms),
		lowest:  make([][]Cell, forms),
	}
	for y, row := range grid {
		if len(row) > s.size {
			s.size = len(row)
		}
		if y+1 > s.size {
			s.size = y + 1
		}
	}
	for form := 0; form < forms; form++ {
		var cells []Cell
		for y, row := range grid {
			for x, bits := range row {
				if (bits>>form)&1 == 1 {
					cells = append(cells, Cell{X: x, Y: y})
				}
			}
		}
		s.cells[form] = cells
		s.highest[form] = columnExtremes(cells, false)
		s.lowest[form] = columnExtremes(cells, true)
	}
	if s.size > c.largest {
		c.largest = s.size
	}
	c.shapes = append(c.shapes, s)
	c.byID[id] = s
	return s
}

// columnExtremes keeps the first cell per column, scanning the row-major list
// top-to-bottom, or bottom-to-top when fromBottom is set.
func columnExtremes(cells []Cell, fromBottom bool) []Cell {
	var out []Cell
	seen := make(map[int]bool, len(cells))
	for i := range cells {
		c := cells[i]
		if fromBottom {
			c = cells[len(cells)-1-i]
		}
		if seen[c.X] {
			continue
		}
		seen[c.X] = true
		out = append(out, c)
	}
	return out
}

// Count returns the number of registered shapes.
func (c *Catalog) Count() int {
	return len(c.shapes)
}

// Shape returns the shape registered at index i.
func (c *Catalog) Shape(i int) *Shape {
	return c.shapes[i]
}

// ByID returns the shape with the given id, or nil.
func (c *Catalog) ByID(id byte) *Shape {
	return c.byID[id]
}

// Shapes returns all shapes in registration order.
func (c *Catalog) Shapes() []*Shape {
	return c.shapes
}

// MaxBoundingSize returns the largest bit grid dimension across all shapes.
func (c *Catalog) MaxBoundingSize() int {
	return c.largest
}

// Standard returns the seven-shape catalog. The s and z shapes may not open a game.
func Standard() *Catalog {
	c := NewCatalog()
	c.AddShape('i', 2, true, [][]uint8{
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{2, 3, 2, 2},
		{0, 1, 0, 0},
	})
	c.AddShape('j', 4, true, [][]uint8{
		{0, 0, 0, 0},
		{0, 4, 5, 0},
		{8, 14, 9, 0},
		{0, 7, 11, 2},
	})
	c.AddShape('l', 4, true, [][]uint8{
		{0, 0, 0, 0},
		{0, 5, 4, 0},
		{0, 3, 14, 2},
		{8, 11, 13, 0},
	})
	c.AddShape('o', 1, true, [][]uint8{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
	})
	c.AddShape('t', 4, true, [][]uint8{
		{0, 0, 0, 0},
		{0, 11, 0, 0},
		{13, 15, 7, 0},
		{0, 14, 0, 0},
	})
	c.AddShape('s', 2, false, [][]uint8{
		{0, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 3, 3, 0},
		{1, 1, 2, 0},
	})
	c.AddShape('z', 2, false, [][]uint8{
		{0, 0, 0, 0},
		{0, 0, 2, 0},
		{1, 3, 2, 0},
		{0, 3, 1, 0},
	})
	return c
}
