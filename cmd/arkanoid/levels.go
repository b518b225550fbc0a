package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid-tui/internal/arkanoid"
	"github.com/vovakirdan/arkanoid-tui/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in campaign levels, or the levels from a custom
level directory when --level-dir is given.`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory of custom level YAML files")
}

func runLevels(cmd *cobra.Command, args []string) {
	pack := arkanoid.BuiltinLayouts()
	source := "Built-in levels:"

	if flagLevelDir != "" {
		loaded, err := levels.LoadDir(flagLevelDir)
		if err != nil {
			fmt.Printf("Error loading levels: %v\n", err)
			return
		}
		pack = loaded
		source = fmt.Sprintf("Levels in %s:", flagLevelDir)
	}

	fmt.Println(source)
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range pack {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-20s  %s\n", "#", maxIDLen, "ID", "Name", "Bricks")
	fmt.Printf("  %-3s  %-*s  %-20s  %s\n", "-", maxIDLen, "--", "----", "------")

	for i, l := range pack {
		fmt.Printf("  %-3d  %-*s  %-20s  %d\n", i+1, maxIDLen, l.ID, l.Name, l.CountBricks())
	}

	fmt.Println()
	fmt.Println("Run 'arkanoid play --level <#>' to start from a specific level.")
}
