package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/elemental-cascade/internal/config"
	"github.com/vovakirdan/elemental-cascade/internal/core"
	"github.com/vovakirdan/elemental-cascade/internal/games/cascade"
	"github.com/vovakirdan/elemental-cascade/internal/platform/tui"
	"github.com/vovakirdan/elemental-cascade/internal/registry"
	"github.com/vovakirdan/elemental-cascade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode. Without an argument the mode and
difficulty selector is shown first.

Controls:
  WASD/Arrows  - Move cursor
  Enter/Space  - Select tile / swap with selected
  B/Esc        - Deselect
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower disasters, fewer of them
  normal - Default balance
  hard   - Faster disasters, more of them
  fixed  - Use the config values as-is

Examples:
  cascade play
  cascade play cascade
  cascade play cascade_timed --difficulty hard
  cascade play cascade --config ./my-cascade.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// installParamsSource wires the config loader into the game package so a
// Reset picks up the current config path, preset, and wave mode.
func installParamsSource() {
	cascade.SetParamsSource(func(mode cascade.Mode) cascade.Params {
		cfg, err := config.LoadCascade(cascade.GetConfigPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
			cfg = config.DefaultCascadeConfig()
		}

		if preset := cascade.GetDifficultyPreset(); preset != "" {
			config.ApplyCascadePreset(&cfg, config.DifficultyPreset(preset))
		}

		params := cfg.Params()
		if mode == cascade.ModeTimed {
			params.WaveMode = cascade.WaveModeTime
		} else {
			params.WaveMode = cascade.WaveModeScore
		}
		return params
	})
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	cascade.SetConfigPath(flagConfig)
	cascade.SetDifficultyPreset(flagDifficulty)
	installParamsSource()

	var gameID string
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'cascade list' to see available modes.")
			os.Exit(1)
		}
	} else {
		// Show mode/difficulty selector
		selection, updatedCfg, selErr := tui.RunCascadeModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		gameID = selection.GameID
		if flagDifficulty == "" {
			cascade.SetDifficultyPreset(string(selection.Difficulty))
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
