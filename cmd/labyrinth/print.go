package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/labyrinth/internal/config"
	"github.com/vovakirdan/labyrinth/internal/maze"
)

var (
	flagPrintDifficulty string
	flagPrintSolution   bool
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print a maze as ASCII art",
	Long: `Generate a maze and print it to stdout. S marks the start, G the exit.
The same --seed and --difficulty always print the same maze.

Examples:
  labyrinth print
  labyrinth print --difficulty hard --seed 42
  labyrinth print --seed 7 --solution`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringVar(&flagPrintDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
	printCmd.Flags().BoolVar(&flagPrintSolution, "solution", false, "Highlight the path from start to exit")
}

func runPrint(_ *cobra.Command, _ []string) error {
	g, tier, seed, err := generate(flagPrintDifficulty)
	if err != nil {
		return err
	}

	var mark map[maze.Position]bool
	if flagPrintSolution {
		mark = pathSet(maze.Solve(g, maze.Position{}, g.Goal()))
	}

	color.New(color.Bold).Printf("%s %dx%d", tier.Name, g.Cols(), g.Rows())
	fmt.Printf("  seed %d\n", seed)
	fmt.Print(colorize(g.Render(mark)))
	return nil
}

// generate builds the maze for a difficulty name and the --seed flag.
func generate(difficulty string) (*maze.Grid, config.Tier, int64, error) {
	i, err := gameCfg.TierIndex(difficulty)
	if err != nil {
		return nil, config.Tier{}, 0, err
	}
	tier := gameCfg.Tier(i)
	seed := seedOrNow()
	return maze.GenerateSeeded(tier.Cols, tier.Rows, seed), tier, seed, nil
}

func pathSet(path []maze.Position) map[maze.Position]bool {
	set := make(map[maze.Position]bool, len(path))
	for _, p := range path {
		set[p] = true
	}
	return set
}

// colorize highlights the start, the exit and solution marks.
func colorize(ascii string) string {
	r := strings.NewReplacer(
		" S ", color.GreenString(" S "),
		" G ", color.RedString(" G "),
		" . ", color.YellowString(" . "),
	)
	return r.Replace(ascii)
}
