package queens

// MaxFitness is the highest attainable fitness score, the number of distinct
// queen pairs C(BoardSize, 2). A state scoring MaxFitness is a solution.
const MaxFitness = BoardSize * (BoardSize - 1) / 2

// Fitness scores a state by counting its non-attacking queen pairs. Two
// queens attack each other when they share a rank, or when they share a
// diagonal, that is when their file distance equals their rank distance.
// Queens never share a file.
func Fitness(s State) int {
	score := 0
	for i := 0; i < BoardSize; i++ {
		for j := i + 1; j < BoardSize; j++ {
			if s.ranks[i] == s.ranks[j] {
				continue
			}
			if abs(i-j) == abs(int(s.ranks[i])-int(s.ranks[j])) {
				continue
			}
			score++
		}
	}
	return score
}

// IsGoal reports whether the state is a solution, a placement where no pair
// of queens attacks each other.
func IsGoal(s State) bool {
	return Fitness(s) == MaxFitness
}

// Helper function: abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
