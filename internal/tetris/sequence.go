package tetris

import (
	"math/rand/v2"
	"time"
)

// Sequence produces the tetrominoes handed out by a game. The second return
// value is false once the sequence is exhausted.
type Sequence interface {
	Next() (Tetromino, bool)
}

// BagSequence is an endless sequence that deals all seven kinds in random
// order before any kind repeats.
type BagSequence struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagSequence creates a bag sequence. A zero seed picks a time based seed.
func NewBagSequence(seed uint64) *BagSequence {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec
	}

	return &BagSequence{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec
	}
}

// Next returns the next tetromino, it never runs out.
func (s *BagSequence) Next() (Tetromino, bool) {
	if len(s.bag) == 0 {
		s.bag = append(s.bag, AllKinds[:]...)
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}

	kind := s.bag[0]
	s.bag = s.bag[1:]

	return NewTetromino(kind), true
}

// FixedSequence hands out a predefined list of tetrominoes once.
type FixedSequence struct {
	tetrominoes []Tetromino
	offset      int
}

// NewFixedSequence creates a finite sequence of the given kinds.
func NewFixedSequence(kinds ...Kind) *FixedSequence {
	tetrominoes := make([]Tetromino, len(kinds))
	for i, kind := range kinds {
		tetrominoes[i] = NewTetromino(kind)
	}
	return &FixedSequence{tetrominoes: tetrominoes}
}

// Next returns the next tetromino until the list is used up.
func (s *FixedSequence) Next() (Tetromino, bool) {
	if s.offset >= len(s.tetrominoes) {
		return Tetromino{}, false
	}

	tetromino := s.tetrominoes[s.offset]
	s.offset++
	return tetromino, true
}

// Remaining returns how many tetrominoes are left.
func (s *FixedSequence) Remaining() int {
	return len(s.tetrominoes) - s.offset
}

// CyclicSequence repeats a list of kinds forever.
type CyclicSequence struct {
	kinds  []Kind
	offset int
}

// NewCyclicSequence creates an endless sequence looping over kinds.
func NewCyclicSequence(kinds ...Kind) *CyclicSequence {
	return &CyclicSequence{kinds: append([]Kind{}, kinds...)}
}

// Next returns the next tetromino. An empty cycle is exhausted immediately.
func (s *CyclicSequence) Next() (Tetromino, bool) {
	if len(s.kinds) == 0 {
		return Tetromino{}, false
	}

	kind := s.kinds[s.offset%len(s.kinds)]
	s.offset++
	return NewTetromino(kind), true
}
