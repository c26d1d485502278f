package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/loop"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// Model is the Bubble Tea model for one frogger machine. The machine runs on
// its own goroutines; the model feeds it keys and paints its snapshots.
type Model struct {
	runner   *loop.Runner
	keys     *KeyMapper
	screen   *core.Screen
	config   core.RuntimeConfig
	high     *atomic.Int64
	quitting bool
}

// NewModel creates a model for runner. high holds the best score to show and
// may be nil.
func NewModel(runner *loop.Runner, keys *KeyMapper, high *atomic.Int64, cfg core.RuntimeConfig) Model {
	cfg = cfg.Normalize()
	if keys == nil {
		keys = NewKeyMapper("")
	}
	if high == nil {
		high = &atomic.Int64{}
	}
	return Model{
		runner: runner,
		keys:   keys,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		high:   high,
	}
}

// Init starts the repaint loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlS {
			m.saveScreenshot()
			return m, nil
		}
		if m.keys.Feed(m.runner.Machine(), msg) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)

	case TickMsg:
		return m, tickCmd(m.config.FrameRate)
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen.Width() < MinWidth || m.screen.Height() < MinHeight {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			MinWidth, MinHeight, m.screen.Width(), m.screen.Height())
	}

	Compose(m.screen, m.runner.Status(), int(m.high.Load()), m.keys.Help())
	return RenderScreen(m.screen)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	Compose(m.screen, m.runner.Status(), int(m.high.Load()), "")

	dir := filepath.Join(os.Getenv("HOME"), ".frogger", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("frogger_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// RunOptions configures a local play session.
type RunOptions struct {
	Settings   loop.Settings
	Runtime    core.RuntimeConfig
	ButtonKeys string
	Store      *storage.Store // optional
	Player     string
	Logger     *log.Logger // optional
	Serial     *SerialLink // optional, feeds the machine alongside the keyboard
}

// Run plays frogger in the local terminal until the player quits.
func Run(opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Runtime.Normalize()

	source := storage.SourceLocal
	if opts.Serial != nil {
		source = storage.SourceSerial
	}

	runner := loop.NewRunner(opts.Settings, logger)
	high := &atomic.Int64{}
	attachStore(runner, opts.Store, opts.Player, source, high, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runner.Run(ctx, cfg.Poll)

	if opts.Serial != nil {
		//nolint:errcheck // Best-effort greeting
		opts.Serial.Write([]byte("frogger: arrows or l/u/d/r move, p pauses\r\n"))
		go func() {
			if err := opts.Serial.Pump(ctx, runner.Machine().Serial); err != nil {
				logger.Error("serial link stopped", "error", err)
			}
		}()
	}

	model := NewModel(runner, NewKeyMapper(opts.ButtonKeys), high, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}

// attachStore loads the best score into high and records every finished
// game. A nil store records nothing.
func attachStore(r *loop.Runner, store *storage.Store, player, source string, high *atomic.Int64, logger *log.Logger) {
	if store == nil {
		return
	}
	if best, err := store.HighScore(); err == nil {
		raiseHigh(high, int64(best))
	}

	r.OnGameEnd(func(res loop.Result) {
		score := int(res.Score)
		raiseHigh(high, int64(score))
		if score == 0 && !res.Completed {
			return
		}
		if _, err := store.SaveRun(storage.Run{
			Player:    player,
			Score:     score,
			Level:     res.Level,
			Completed: res.Completed,
			Source:    source,
		}); err != nil {
			logger.Warn("could not save run", "error", err)
		}
	})
}

// raiseHigh stores v in high if it beats the current value. Sessions share
// high, so the update is a compare-and-swap loop.
func raiseHigh(high *atomic.Int64, v int64) {
	for {
		cur := high.Load()
		if v <= cur || high.CompareAndSwap(cur, v) {
			return
		}
	}
}
