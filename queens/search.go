package queens

import (
	"context"
	"fmt"
)

// Observer receives a population summary once per generation, before that
// generation's breeding begins. Observers run on the calling goroutine; the
// search itself performs no I/O, so console status displays belong here.
type Observer func(Stats)

// RunGeneration executes a single generation of the search and returns the
// first child that solved the puzzle, or nil if the generation finished
// without producing a solution.
//
// Breeding stops as soon as a solution appears; the remaining pairs of that
// generation are left unbred. A solution already present among the members
// does not stop the search, only a bred child does.
func (p *Population) RunGeneration() (*State, error) {
	p.Generation++

	// --- Step 1: Rank and Select ---
	// Order all known states by fitness and keep the top PopulationSize as
	// the mating pool.
	pool := p.rank()
	if len(pool) > p.Config.PopulationSize {
		pool = pool[:p.Config.PopulationSize]
	}

	// --- Step 2: Breed ---
	// Mate each adjacent pair of the pool and goal-test every child as it
	// is produced.
	for i := 0; i+1 < len(pool); i++ {
		p.Iterations++
		child, err := pool[i].Mate(pool[i+1], p.Config.MutationProbability)
		if err != nil {
			return nil, fmt.Errorf("mating failed in generation %d: %w", p.Generation, err)
		}
		if p.insert(child) == MaxFitness {
			return &child, nil
		}
	}
	return nil, nil
}

// Run drives the search until a bred child solves the puzzle, then returns
// it. The loop has no generation cap and no stagnation cutoff; cancelling
// the context, checked once per generation, is the only way to stop a run
// early. With the default parameters a run converges after a handful of
// generations.
//
// The observer, if non-nil, is invoked once per generation before breeding.
func (p *Population) Run(ctx context.Context, obs Observer) (State, error) {
	for {
		select {
		case <-ctx.Done():
			return State{}, ctx.Err()
		default:
		}

		if obs != nil {
			obs(p.Stats())
		}

		winner, err := p.RunGeneration()
		if err != nil {
			return State{}, err
		}
		if winner != nil {
			return *winner, nil
		}
	}
}
