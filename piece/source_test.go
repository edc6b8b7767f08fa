package piece

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func seeded(b byte) *frand.RNG {
	seed := make([]byte, 32)
	seed[0] = b
	return frand.NewCustom(seed, 1024, 12)
}

func TestFirstDrawIsStarter(t *testing.T) {
	c := Standard()
	for i := 0; i < 200; i++ {
		src := NewSource(c, rand.New(rand.NewSource(int64(i))))
		assert.True(t, src.Next().Starter, "seed %d", i)
	}
}

func TestResetRestoresStarterRule(t *testing.T) {
	src := NewSource(Standard(), seeded(7))
	for i := 0; i < 5; i++ {
		src.Next()
	}
	for i := 0; i < 50; i++ {
		src.Reset()
		require.Equal(t, 0, src.Draws())
		assert.True(t, src.Next().Starter)
	}
}

func TestBagCycleDrawsEveryShapeTwice(t *testing.T) {
	c := Standard()
	src := NewSource(c, seeded(1))
	for cycle := 0; cycle < 3; cycle++ {
		counts := make(map[byte]int)
		for i := 0; i < 2*c.Count(); i++ {
			counts[src.Next().ID]++
		}
		for _, s := range c.Shapes() {
			assert.Equal(t, 2, counts[s.ID], "cycle %d shape %c", cycle, s.ID)
		}
		assert.Equal(t, 0, src.Remaining())
	}
	assert.Equal(t, 6*c.Count(), src.Draws())
}

func TestTemplatesIndependentOfBag(t *testing.T) {
	c := Standard()
	src := NewSource(c, seeded(3))
	src.Next()
	require.Equal(t, c.Count(), src.TemplateCount())
	for i := 0; i < src.TemplateCount(); i++ {
		assert.Same(t, c.Shape(i), src.Template(i))
	}
}

func TestSourceWithoutStarterShapes(t *testing.T) {
	c := NewCatalog()
	c.AddShape('s', 2, false, [][]uint8{{1, 2}})
	src := NewSource(c, seeded(9))
	assert.Equal(t, byte('s'), src.Next().ID)
}
