package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show the top runs",
	Long: `Display the best runs, or one player's best runs.

A level marked * means every level was cleared.

Examples:
  frogger scores
  frogger scores alice --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse runs interactively",
	Args:  cobra.NoArgs,
	Run:   runScoreboard,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoreboardCmd.Flags().StringVar(&flagPlayer, "player", "", "Player for the all/mine toggle (default: login name)")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.Run
	title := "High Scores"
	if len(args) == 1 {
		title = fmt.Sprintf("High Scores - %s", args[0])
		runs, err = store.PlayerRuns(args[0], flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'frogger play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	for i, r := range runs {
		level := fmt.Sprintf("%d", r.Level)
		if r.Completed {
			level += "*"
		}
		fmt.Printf("  %-4d  %-12s  %-6d  %-6s  %s\n",
			i+1, r.Player, r.Score, level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetStats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d over %d games (%d cleared)\n", stats.HighScore, stats.GamesCount, stats.Completed)
	}
}

func runScoreboard(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, playerName(flagPlayer), width, height); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
