package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/loop"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagLogFile string
	flagSerial  string
	flagBaud    int
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the machine and play.

Controls:
  6 2 8 4          - Buttons: right, down, up, left
  Arrows           - Sent as ESC [ A..D over the terminal link
  l u d r          - Left, up, down, right
  p                - Pause
  Ctrl+S           - Screenshot to ~/.frogger/screenshots
  Ctrl+C           - Quit

With --serial the named device is opened in raw mode and its bytes reach
the same decoder as the keyboard, as a terminal on the board's UART would.

Difficulty options:
  easy   - Five extra seconds per level and an extra life
  normal - Reference tuning
  hard   - Four seconds less per level and faster lanes
  fixed  - Lanes never speed up

Examples:
  frogger play
  frogger play --difficulty easy
  frogger play --serial /dev/ttyUSB0
  frogger play --log-file /tmp/frogger.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write the machine log to this file")
	playCmd.Flags().StringVar(&flagSerial, "serial", "", "Serial device to use as the terminal link")
	playCmd.Flags().IntVar(&flagBaud, "baud", 0, "Serial speed (default from config, 19200)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with scores (default: login name)")
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, cfg, err := loop.LoadSettings(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var link *tui.SerialLink
	if flagSerial != "" {
		baud := flagBaud
		if baud <= 0 {
			baud = cfg.Input.Baud
		}
		link, err = tui.OpenSerial(flagSerial, baud)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer link.Close()
		logger.Info("serial link open", "device", flagSerial, "baud", baud)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.RunOptions{
		Settings: settings,
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: flagFPS,
			Poll:      flagPoll,
		},
		ButtonKeys: cfg.Input.ButtonKeys,
		Store:      store,
		Player:     playerName(flagPlayer),
		Logger:     logger,
		Serial:     link,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a file logger, or a discarding one when path is empty.
// The terminal belongs to the UI.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "frogger",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

func playerName(flag string) string {
	if flag != "" {
		return flag
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
