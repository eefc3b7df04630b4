package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/labyrinth/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and difficulty tiers",
	Long:  `Shows the registered game modes and the difficulty table in use.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	header := color.New(color.Bold)
	id := color.New(color.FgCyan)

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	header.Println("Modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %s  %s\n", id.Sprintf("%-*s", maxIDLen, g.ID), g.Title)
	}

	fmt.Println()
	header.Println("Difficulties:")
	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "Name", "Size")
	fmt.Printf("  %-8s  %s\n", "----", "----")
	for _, t := range gameCfg.Difficulties {
		fmt.Printf("  %s  %dx%d\n", id.Sprintf("%-8s", t.Name), t.Cols, t.Rows)
	}

	fmt.Println()
	fmt.Println("Run 'labyrinth play [standard|race|infinite]' to play.")
}
