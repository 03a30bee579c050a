// cascade is a terminal match-3 survival game with descending disaster tiles.
//
// Usage:
//
//	cascade list              - List available modes
//	cascade play <mode>       - Play a mode directly
//	cascade menu              - Start the interactive mode picker
//	cascade serve             - Start SSH server for remote play
//	cascade scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.cascade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/vovakirdan/elemental-cascade/internal/games/cascade"
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
	Use:   "cascade",
	Short: "Elemental Cascade - match tiles, survive the disasters",
	Long: `Elemental Cascade is a terminal match-3 survival game. Swap adjacent
resource tiles to form lines of three while disaster tiles descend from
the top of the board. Let a disaster reach the bottom and the run ends.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  cascade list
  cascade play cascade
  cascade menu
  cascade serve --ssh :2222
  cascade scores cascade_timed`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cascade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
