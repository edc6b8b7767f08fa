package piece

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddShapeDerivesFormCells(t *testing.T) {
	c := NewCatalog()
	s := c.AddShape('x', 2, true, [][]uint8{
		{1, 2},
		{3, 0},
	})

	want0 := []Cell{{X: 0, Y: 0}, {X: 0, Y: 1}}
	want1 := []Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}
	if diff := cmp.Diff(want0, s.Cells(0)); diff != "" {
		t.Errorf("form 0 cells mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want1, s.Cells(1)); diff != "" {
		t.Errorf("form 1 cells mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, 2, c.MaxBoundingSize())
	assert.Same(t, s, c.ByID('x'))
}

func TestStandardCatalog(t *testing.T) {
	c := Standard()
	require.Equal(t, 7, c.Count())
	assert.Equal(t, 4, c.MaxBoundingSize())

	forms := map[byte]int{'i': 2, 'j': 4, 'l': 4, 'o': 1, 't': 4, 's': 2, 'z': 2}
	for _, s := range c.Shapes() {
		assert.Equal(t, forms[s.ID], s.Forms, "forms of %c", s.ID)
		for f := 0; f < s.Forms; f++ {
			assert.Len(t, s.Cells(f), 4, "shape %c form %d", s.ID, f)
		}
		wantStarter := s.ID != 's' && s.ID != 'z'
		assert.Equal(t, wantStarter, s.Starter, "starter flag of %c", s.ID)
	}
}

func TestColumnExtremes(t *testing.T) {
	// t shape, form 0: nub on top of column 1.
	s := Standard().ByID('t')
	cells := s.Cells(0)
	require.Equal(t, []Cell{{X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}, cells)

	assert.ElementsMatch(t, []Cell{{X: 1, Y: 1}, {X: 0, Y: 2}, {X: 2, Y: 2}}, s.Highest(0))
	assert.ElementsMatch(t, []Cell{{X: 1, Y: 2}, {X: 0, Y: 2}, {X: 2, Y: 2}}, s.Lowest(0))
}

func TestLowestCellPerColumnVerticalBar(t *testing.T) {
	p := New(Standard().ByID('i'), 3, -3)
	assert.Equal(t, []Cell{{X: 4, Y: 0}}, p.LowestCellPerColumn())
	assert.Equal(t, []Cell{{X: 4, Y: -3}}, p.HighestCellPerColumn())
}

func TestTransformCycleRestoresPiece(t *testing.T) {
	for _, s := range Standard().Shapes() {
		p := New(s, 2, 5)
		before := append([]Cell(nil), p.Cells()...)
		for i := 0; i < s.Forms; i++ {
			p.Transform(1)
		}
		assert.Equal(t, 0, p.Form(), "shape %c", s.ID)
		assert.Equal(t, before, p.Cells(), "shape %c", s.ID)
	}
}

func TestTransformNegativeDeltaWraps(t *testing.T) {
	p := New(Standard().ByID('j'), 0, 0)
	p.Transform(-1)
	assert.Equal(t, 3, p.Form())
}

func TestCellsAtMatchesCacheAfterMoves(t *testing.T) {
	p := New(Standard().ByID('l'), 4, -3)
	moves := []struct{ dx, dy, rot int }{
		{1, 0, 0}, {0, 0, 1}, {0, 2, 0}, {-3, 1, 1}, {0, 0, 3}, {2, 4, 0},
	}
	for _, m := range moves {
		p.Shift(m.dx, m.dy)
		p.Transform(m.rot)
		if diff := cmp.Diff(p.CellsAt(p.X(), p.Y(), p.Form()), p.Cells()); diff != "" {
			t.Fatalf("cached cells out of sync (-want +got):\n%s", diff)
		}
	}
}

func TestRowsAndCopy(t *testing.T) {
	p := New(Standard().ByID('o'), 1, 3)
	assert.Equal(t, []int{5, 6}, p.Rows())

	p.Ground()
	c := p.Copy()
	assert.False(t, c.Grounded())
	assert.Equal(t, p.Cells(), c.Cells())
	c.Shift(1, 0)
	assert.NotEqual(t, p.Cells(), c.Cells())
}
