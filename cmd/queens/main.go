// Command queens searches for an 8-queens solution with a genetic algorithm
// and prints the winning board.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
