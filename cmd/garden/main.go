// garden is a terminal side-scrolling platformer: run, jump and shoot through
// a forgotten garden and collect every orb before the timer runs out.
//
// Usage:
//
//	garden play              - Play the game
//	garden serve             - Start SSH server for remote play
//	garden scores            - Show the best-time ranking
//	garden config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.garden/ranking.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-garden/internal/games/garden"
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
	Use:   "garden",
	Short: "Forgotten Garden - a platformer in your terminal",
	Long: `Forgotten Garden is a side-scrolling platformer played in the terminal.
Collect every orb of light before the timer runs out, avoiding or shooting
the creatures that guard them. Victories are ranked by time.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View the best-time ranking
  config   - Print the effective configuration

Examples:
  garden play
  garden play --difficulty hard --layout procedural
  garden serve --ssh :2222
  garden scores --tui`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.garden/ranking.db", "Path to ranking database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
