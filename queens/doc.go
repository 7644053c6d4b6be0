// Package queens solves the 8-queens placement puzzle with a genetic
// algorithm.
//
// A State places one queen per file and is scored by counting its
// non-attacking queen pairs; a state scoring MaxFitness is a solution. A
// Population seeds itself with distinct random states, then evolves them
// through rank selection, single-point crossover and per-file random
// mutation until a bred child solves the puzzle.
//
// Basic usage:
//
//	pop, err := queens.NewPopulation(queens.DefaultConfig())
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	solution, err := pop.Run(context.Background(), nil)
//	if err != nil {
//		log.Fatalf("Search failed: %v", err)
//	}
//
//	fmt.Println(solution)       // digit form, e.g. "41582736"
//	fmt.Println(pop.Iterations) // matings it took to get there
//
// The search performs no I/O of its own; pass an Observer to Run to drive
// progress reporting, and see the board subpackage for console rendering of
// a finished placement.
package queens
