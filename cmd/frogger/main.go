// frogger runs the frogger machine in the terminal: a 1 ms timer interrupt,
// a seven-segment countdown, a button queue and a serial escape-sequence
// decoder, all emulated and driving a five-lane Frogger board.
//
// Usage:
//
//	frogger play             - Play in this terminal
//	frogger serve            - Start SSH server, one machine per session
//	frogger scores           - Print the top runs
//	frogger scoreboard       - Browse runs interactively
//	frogger tuning           - Show resolved tuning and lane intervals per level
//
// Global flags:
//
//	--fps <rate>          - UI repaint rate (default: 30)
//	--poll <duration>     - Foreground iteration period (default: 200µs)
//	--db <path>           - Database path (default: ~/.frogger/scores.db)
//	--config <path>       - Tuning YAML
//	--difficulty <name>   - easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagPoll       time.Duration
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - an emulated microcontroller game in your terminal",
	Long: `Frogger runs the timing core of a small microcontroller game: a 1 ms
timer interrupt, a two-digit seven-segment countdown, four buttons and a
serial terminal link, all emulated, driving a five-lane Frogger board.

Available commands:
  play        - Play in this terminal (optionally over a real serial port)
  serve       - Start SSH server for remote play
  scores      - Print the top runs
  scoreboard  - Browse runs interactively
  tuning      - Show resolved tuning and lane intervals

Examples:
  frogger play
  frogger play --difficulty hard
  frogger play --serial /dev/ttyUSB0 --baud 19200
  frogger serve --ssh :2222
  frogger tuning --config ./my-frogger.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "UI repaint rate (frames per second)")
	rootCmd.PersistentFlags().DurationVar(&flagPoll, "poll", 200*time.Microsecond, "Foreground loop iteration period")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frogger/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(tuningCmd)
}
