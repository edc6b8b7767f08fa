package piece

import "lukechampine.com/frand"

// Rand is the randomness the bag needs. *frand.RNG and *math/rand.Rand satisfy it.
type Rand interface {
	Intn(n int) int
}

// Source is a bag randomizer. Each bag holds every catalog shape twice in a
// uniformly shuffled order and is drained from the end. The first piece drawn
// after a reset is always starter-eligible.
type Source struct {
	catalog *Catalog
	rng     Rand
	queue   []*Shape
	draws   int
}

// NewSource creates a reset bag over the catalog. A nil rng uses frand.
func NewSource(c *Catalog, rng Rand) *Source {
	if rng == nil {
		rng = frand.New()
	}
	s := &Source{catalog: c, rng: rng}
	s.Reset()
	return s
}

// Reset clears the draw counter and refills the bag under the starter rule.
func (s *Source) Reset() {
	s.draws = 0
	s.refill()
}

// Next draws the next shape.
func (s *Source) Next() *Shape {
	if len(s.queue) == 0 {
		s.refill()
	}
	s.draws++
	last := len(s.queue) - 1
	shape := s.queue[last]
	s.queue[last] = nil
	s.queue = s.queue[:last]
	return shape
}

// Draws returns the number of shapes drawn since the last reset.
func (s *Source) Draws() int {
	return s.draws
}

// Remaining returns the number of shapes left in the current bag.
func (s *Source) Remaining() int {
	return len(s.queue)
}

// TemplateCount returns the number of distinct shapes, independent of the bag.
func (s *Source) TemplateCount() int {
	return s.catalog.Count()
}

// Template returns the shape at catalog index i, independent of the bag.
func (s *Source) Template(i int) *Shape {
	return s.catalog.Shape(i)
}

func (s *Source) refill() {
	shapes := s.catalog.Shapes()
	s.queue = s.queue[:0]
	s.queue = append(s.queue, shapes...)
	s.queue = append(s.queue, shapes...)
	if len(s.queue) == 0 {
		return
	}
	s.shuffle()
	if s.draws > 0 || !s.hasStarter() {
		return
	}
	for !s.queue[len(s.queue)-1].Starter {
		s.shuffle()
	}
}

// shuffle is an in-place Fisher-Yates over the queue.
func (s *Source) shuffle() {
	for i := len(s.queue) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	}
}

func (s *Source) hasStarter() bool {
	for _, sh := range s.catalog.Shapes() {
		if sh.Starter {
			return true
		}
	}
	return false
}
