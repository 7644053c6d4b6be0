package queens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFitnessKnownSolutions verifies hand-checked solutions score
// MaxFitness and pass the goal test.
func TestFitnessKnownSolutions(t *testing.T) {
	assert.Equal(t, 28, MaxFitness)

	// 63728514 and 58417263 are the horizontal and vertical reflections of
	// 41582736; reflection preserves the non-attacking property.
	for _, digits := range []string{"41582736", "63728514", "58417263"} {
		s := mustParse(t, digits)
		assert.Equal(t, MaxFitness, Fitness(s), "state %s", digits)
		assert.True(t, IsGoal(s), "state %s", digits)
	}
}

// TestFitnessFullyAttackingBoards verifies boards where every pair attacks
// score zero. On the two diagonals every pair shares a diagonal; with all
// queens on one rank every pair shares a rank.
func TestFitnessFullyAttackingBoards(t *testing.T) {
	for _, digits := range []string{"12345678", "87654321", "11111111"} {
		s := mustParse(t, digits)
		assert.Equal(t, 0, Fitness(s), "state %s", digits)
		assert.False(t, IsGoal(s), "state %s", digits)
	}
}

// TestFitnessMatchesAttackRecount cross-checks Fitness against an
// independent count of attacking pairs on random boards.
func TestFitnessMatchesAttackRecount(t *testing.T) {
	states, err := RandomStates(200)
	require.NoError(t, err)

	for _, s := range states {
		f := Fitness(s)
		assert.GreaterOrEqual(t, f, 0, "state %s", s)
		assert.LessOrEqual(t, f, MaxFitness, "state %s", s)
		assert.Equal(t, MaxFitness-countAttacks(s), f, "state %s", s)
	}
}

// countAttacks counts attacking pairs directly: shared rank, or file
// distance equal to rank distance.
func countAttacks(s State) int {
	ranks := s.Ranks()
	attacks := 0
	for i := 0; i < BoardSize; i++ {
		for j := i + 1; j < BoardSize; j++ {
			sameRank := ranks[i] == ranks[j]
			sameDiagonal := j-i == ranks[i]-ranks[j] || j-i == ranks[j]-ranks[i]
			if sameRank || sameDiagonal {
				attacks++
			}
		}
	}
	return attacks
}
