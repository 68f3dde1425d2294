// duorun is a terminal side-scrolling runner where a player and a companion
// dodge obstacles together.
//
// Usage:
//
//	duorun play              - Play the game
//	duorun scores            - Show the run leaderboard
//	duorun serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set host frame rate (default: 60)
//	--db <path>     - Set database path (default: ~/.duorun/duorun.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duorun",
	Short: "Duo Run - a two-runner obstacle game for your terminal",
	Long: `Duo Run is a terminal side-scroller: you control the runner with Space
while your companion runs ahead and times its own jumps. Survive as long
as you can - the world speeds up the longer you last.

Available commands:
  play     - Play the game locally
  scores   - View the run leaderboard
  serve    - Start SSH server for remote play

Examples:
  duorun play
  duorun play --difficulty hard
  duorun scores
  duorun serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duorun/duorun.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
