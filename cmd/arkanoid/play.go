package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid-tui/internal/arkanoid"
	"github.com/vovakirdan/arkanoid-tui/internal/core"
	"github.com/vovakirdan/arkanoid-tui/internal/levels"
	"github.com/vovakirdan/arkanoid-tui/internal/platform/tui"
	"github.com/vovakirdan/arkanoid-tui/internal/registry"
	"github.com/vovakirdan/arkanoid-tui/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEndless    bool
	flagLevel      int
	flagLevelDir   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session directly, without the menu.

Controls:
  A/D or Left/Right  - Move paddle
  Space              - Launch ball
  P                  - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - more lives, wider paddle, slower ball
  normal - the intended experience
  hard   - fewer lives, narrow paddle, fast ball
  fixed  - normal, but the ball speed never ramps up

Examples:
  arkanoid play
  arkanoid play --endless
  arkanoid play --difficulty hard
  arkanoid play --level 5
  arkanoid play --config ./my-arkanoid.yaml
  arkanoid play --level-dir ./mylevels`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode instead of the campaign")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start from a specific level (1-based)")
	playCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory of custom level YAML files")
}

// terminalSize returns the current terminal dimensions with a fallback.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// applyLevelPack loads custom levels from --level-dir if set.
func applyLevelPack() error {
	if flagLevelDir == "" {
		return nil
	}
	pack, err := levels.LoadDir(flagLevelDir)
	if err != nil {
		return err
	}
	arkanoid.SetLevelPack(pack)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := terminalSize()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	arkanoid.SetConfigPath(flagConfig)
	arkanoid.SetDifficultyPreset(flagDifficulty)
	arkanoid.SetStartLevel(flagLevel)
	if err := applyLevelPack(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	gameID := "arkanoid"
	if flagEndless {
		gameID = "arkanoid_endless"
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, flagDifficulty)

	if store != nil {
		if best, err := store.HighScore(gameID); err == nil && best > 0 {
			fmt.Printf("Best score: %d\n", best)
		}
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
