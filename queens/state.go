package queens

import (
	"fmt"
	"math/rand"
	"strings"
)

// BoardSize is the number of files (and ranks) on the board. The solver
// targets the classic 8x8 puzzle only.
const BoardSize = 8

// StateSpaceSize is the number of representable states, BoardSize^BoardSize.
const StateSpaceSize = 16777216

// fileLabels holds the one-letter labels of the files, 'a' through 'h'.
const fileLabels = "abcdefgh"

// State is one candidate board: one queen per file, each on a rank in
// [1, BoardSize]. Queens never share a file, so a state is fully described
// by its per-file rank sequence.
//
// State is an immutable value type. Two states with the same rank sequence
// compare equal under == and collide as map keys, which is what lets a
// population deduplicate its members.
type State struct {
	ranks [BoardSize]uint8
}

// NewState builds a State from exactly BoardSize rank values, each in
// [1, BoardSize]. Order follows the files: ranks[0] is the queen on file a.
func NewState(ranks []int) (State, error) {
	var s State
	if len(ranks) != BoardSize {
		return s, fmt.Errorf("%w: expected %d ranks, got %d", ErrInvalidState, BoardSize, len(ranks))
	}
	for i, r := range ranks {
		if r < 1 || r > BoardSize {
			return s, fmt.Errorf("%w: rank %d on file %c out of range [1, %d]", ErrInvalidState, r, fileLabels[i], BoardSize)
		}
		s.ranks[i] = uint8(r)
	}
	return s, nil
}

// ParseState builds a State from its digit-string form, one digit per file.
// "15863724" places queens on a1, b5, c8, d6, e3, f7, g2 and h4.
func ParseState(digits string) (State, error) {
	var s State
	if len(digits) != BoardSize {
		return s, fmt.Errorf("%w: expected %d digits, got %d characters", ErrInvalidState, BoardSize, len(digits))
	}
	for i := 0; i < BoardSize; i++ {
		d := digits[i] - '0'
		if d < 1 || d > BoardSize {
			return s, fmt.Errorf("%w: digit %q at position %d", ErrInvalidState, string(digits[i]), i+1)
		}
		s.ranks[i] = d
	}
	return s, nil
}

// Rank returns the rank of the queen on the given file, addressed by
// 0-based file index.
func (s State) Rank(file int) (int, error) {
	if file < 0 || file >= BoardSize {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidFile, file)
	}
	return int(s.ranks[file]), nil
}

// RankAtFile returns the rank of the queen on the given file, addressed by
// its one-letter label 'a' through 'h'.
func (s State) RankAtFile(label rune) (int, error) {
	i := strings.IndexRune(fileLabels, label)
	if i < 0 {
		return 0, fmt.Errorf("%w: label %q", ErrInvalidFile, string(label))
	}
	return int(s.ranks[i]), nil
}

// Ranks returns the per-file rank values as a fresh array.
func (s State) Ranks() [BoardSize]int {
	var out [BoardSize]int
	for i, r := range s.ranks {
		out[i] = int(r)
	}
	return out
}

// String returns the digit-string form of the state, one digit per file.
func (s State) String() string {
	b := make([]byte, BoardSize)
	for i, r := range s.ranks {
		b[i] = '0' + r
	}
	return string(b)
}

// Mate crosses the state with another parent and returns the child.
//
// A crossover point c is drawn uniformly from [0, BoardSize-1]; the child
// takes the files before c from the receiver and the rest from other, so at
// least the last file always comes from other. Every file of the child is
// then mutated independently with the given probability. A mutation redraws
// the rank uniformly from [1, BoardSize] and may land on the current value.
//
// Both parents are left untouched.
func (s State) Mate(other State, mutationProbability float64) (State, error) {
	if mutationProbability < 0.0 || mutationProbability >= 1.0 {
		return State{}, fmt.Errorf("%w: %v not in [0.0, 1.0)", ErrInvalidProbability, mutationProbability)
	}

	c := rand.Intn(BoardSize)
	child := other
	copy(child.ranks[:c], s.ranks[:c])

	if mutationProbability > 0 {
		for i := range child.ranks {
			if rand.Float64() < mutationProbability {
				child.ranks[i] = uint8(1 + rand.Intn(BoardSize))
			}
		}
	}
	return child, nil
}

// RandomStates draws count distinct states uniformly, without replacement,
// from the full space of StateSpaceSize rank assignments.
//
// Sampling is by rejection against a seen set rather than by enumerating
// the space, so the cost scales with count, not with StateSpaceSize. The
// distribution is the same either way.
func RandomStates(count int) ([]State, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSampleSize, count)
	}
	if count > StateSpaceSize {
		return nil, fmt.Errorf("%w: %d exceeds the %d representable states", ErrSampleSize, count, StateSpaceSize)
	}

	states := make([]State, 0, count)
	seen := make(map[State]struct{}, count)
	for len(states) < count {
		s := randomState()
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		states = append(states, s)
	}
	return states, nil
}

// randomState draws one state uniformly from the full space.
func randomState() State {
	var s State
	for i := range s.ranks {
		s.ranks[i] = uint8(1 + rand.Intn(BoardSize))
	}
	return s
}
