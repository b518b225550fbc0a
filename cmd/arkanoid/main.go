// arkanoid is a terminal Arkanoid game: break the bricks, keep the ball
// in play, chase the high score.
//
// Usage:
//
//	arkanoid play            - Play directly (campaign mode)
//	arkanoid menu            - Interactive start menu
//	arkanoid levels          - List built-in levels
//	arkanoid scores          - Show high scores
//	arkanoid serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arkanoid/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/arkanoid-tui/internal/arkanoid"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - Break bricks in your terminal",
	Long: `Arkanoid is a terminal brick-breaker: bounce the ball off your
paddle, clear every brick, and don't let the ball fall.

Available commands:
  play     - Play directly (campaign or endless)
  menu     - Interactive start menu
  levels   - List built-in levels
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  arkanoid play
  arkanoid play --endless --difficulty hard
  arkanoid play --level 5
  arkanoid menu
  arkanoid serve --ssh :2222
  arkanoid scores --endless`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
