// Package memory implements the memory-matching (concentration) game: a grid
// of face-down cards revealed two at a time, with levels that grow the grid.
//
// The rules live in a pure reducer (Reduce) over State. Session wraps the
// reducer with the impure parts: the random source, the level progression and
// the celebration timer. Game adapts a Session to the arcade platform.
package memory

import (
	"errors"
	"fmt"
)

// ErrGridTooSmall is returned when a board is requested for a side below 2.
var ErrGridTooSmall = errors.New("memory: grid side must be at least 2")

// Board is the ordered sequence of tile identifiers for one level.
// Position i holds the identifier of the tile at board index i.
type Board []int

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// PairCount returns the number of pairs on a side x side grid.
// With an odd side one grid cell stays empty.
func PairCount(side int) int {
	if side < 2 {
		return 0
	}
	return side * side / 2
}

// NewBoard builds the identifiers 1..PairCount(side) twice and shuffles them.
func NewBoard(side int, sh Shuffler) (Board, error) {
	if side < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGridTooSmall, side)
	}

	pairs := PairCount(side)
	b := make(Board, 0, pairs*2)
	for id := 1; id <= pairs; id++ {
		b = append(b, id)
	}
	b = append(b, b...)

	if sh != nil {
		sh.Shuffle(len(b), func(i, j int) {
			b[i], b[j] = b[j], b[i]
		})
	}
	return b, nil
}

// Pairs returns the number of pairs on the board.
func (b Board) Pairs() int {
	return len(b) / 2
}

// At returns the identifier at index, or false when index is off the board.
func (b Board) At(index int) (int, bool) {
	if index < 0 || index >= len(b) {
		return 0, false
	}
	return b[index], true
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	copy(out, b)
	return out
}
