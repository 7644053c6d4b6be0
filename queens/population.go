package queens

import (
	"fmt"
	"sort"
)

// Population holds the full history of an evolutionary search: every state
// evaluated so far with its cached fitness score.
type Population struct {
	Config *Config

	// Members maps each evaluated state to its fitness, so a state bred
	// more than once is scored only once. Entries are never evicted; the
	// map grows as the search breeds new states. The mating pool is
	// re-selected from the top of the ranking each generation, which keeps
	// the breeding work bounded regardless of history size.
	Members map[State]int

	// Generation counts completed generation steps.
	Generation int

	// Iterations counts mating operations across the whole run, including
	// the matings of a partially completed final generation.
	Iterations int

	best        State
	bestFitness int
}

// NewPopulation creates a population of Config.PopulationSize distinct
// random states with their fitness scores computed and cached. A nil config
// gets the defaults.
func NewPopulation(config *Config) (*Population, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	states, err := RandomStates(config.PopulationSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate initial population: %w", err)
	}

	p := &Population{
		Config:      config,
		Members:     make(map[State]int, config.PopulationSize),
		bestFitness: -1,
	}
	for _, s := range states {
		p.insert(s)
	}
	return p, nil
}

// insert scores a state, caches it and updates the best-seen tracking.
// Re-inserting a known state overwrites its entry with the same score.
// The fitness is returned so callers can goal-test without rescoring.
func (p *Population) insert(s State) int {
	f := Fitness(s)
	p.Members[s] = f
	if f > p.bestFitness {
		p.best = s
		p.bestFitness = f
	}
	return f
}

// Size returns the number of distinct states evaluated so far.
func (p *Population) Size() int {
	return len(p.Members)
}

// Best returns the fittest state seen so far and its fitness score. Ties
// keep the earlier state.
func (p *Population) Best() (State, int) {
	return p.best, p.bestFitness
}

// rank returns every member ordered by cached fitness, highest first. The
// relative order of equal-fitness states is unspecified.
func (p *Population) rank() []State {
	ranked := make([]State, 0, len(p.Members))
	for s := range p.Members {
		ranked = append(ranked, s)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return p.Members[ranked[i]] > p.Members[ranked[j]]
	})
	return ranked
}

// Stats is a point-in-time summary of a population, handed to search
// observers once per generation.
type Stats struct {
	Generation  int
	Size        int
	BestFitness int
	MeanFitness float64
}

// Stats summarizes the population as it stands.
func (p *Population) Stats() Stats {
	st := Stats{
		Generation:  p.Generation,
		Size:        len(p.Members),
		BestFitness: p.bestFitness,
	}
	if len(p.Members) > 0 {
		sum := 0
		for _, f := range p.Members {
			sum += f
		}
		st.MeanFitness = float64(sum) / float64(len(p.Members))
	}
	return st
}
