package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonschenk/n-queens/queens"
	"github.com/jonschenk/n-queens/queens/board"
)

var (
	configPath          string
	populationSize      int
	mutationProbability float64
	noStatus            bool

	rootCmd = &cobra.Command{
		Use:   "queens",
		Short: "Search for an 8-queens solution with a genetic algorithm",
		Long: `queens evolves a population of random board states through rank selection,
crossover and mutation until a placement with no attacking queen pairs
appears, then prints the winning board.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runSearch,
	}
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "INI file with search parameters")
	rootCmd.Flags().IntVar(&populationSize, "population-size", 0, "override population_size")
	rootCmd.Flags().Float64Var(&mutationProbability, "mutation-probability", 0, "override mutation_probability")
	rootCmd.Flags().BoolVar(&noStatus, "no-status", false, "suppress the transient status line")
}

func runSearch(cmd *cobra.Command, args []string) error {
	config := queens.DefaultConfig()
	if configPath != "" {
		loaded, err := queens.LoadConfig(configPath)
		if err != nil {
			return err
		}
		config = loaded
	}
	if cmd.Flags().Changed("population-size") {
		config.PopulationSize = populationSize
	}
	if cmd.Flags().Changed("mutation-probability") {
		config.MutationProbability = mutationProbability
	}
	if err := config.Validate(); err != nil {
		return err
	}

	status := newStatusLine(os.Stdout)
	if noStatus {
		status.enabled = false
	}

	status.Set("> Generating initial population")
	pop, err := queens.NewPopulation(config)
	status.Clear()
	if err != nil {
		return err
	}

	solution, err := pop.Run(cmd.Context(), func(queens.Stats) {
		status.Advance()
	})
	status.Clear()
	if err != nil {
		return err
	}

	fmt.Println(board.Render(solution))
	fmt.Println(labelStyle.Render("Golden child:"), solution)
	fmt.Printf("Took %d iterations to find solution\n", pop.Iterations)
	return nil
}
