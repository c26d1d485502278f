package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/game"
	"github.com/vovakirdan/tui-frogger/internal/loop"
	"github.com/vovakirdan/tui-frogger/internal/sevenseg"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrown:         lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
}

// Layout of the machine view.
const (
	boardX   = 2
	boardY   = 2
	panelX   = boardX + game.Width*game.CellWidth + 4
	panelY   = boardY
	messageY = boardY + game.Height + 3

	// MinWidth and MinHeight fit the board, the panel and the messages.
	MinWidth  = panelX + 20
	MinHeight = messageY + 5
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Compose draws one machine status into dst.
func Compose(dst *core.Screen, st loop.Status, high int, help string) {
	dst.Clear()
	dst.DrawTextCentered(0, "F R O G G E R", core.ColorBrightGreen)

	dst.DrawBox(boardX-1, boardY-1, game.Width*game.CellWidth+2, game.Height+2, core.ColorGray)
	if st.Phase == loop.PhasePlaying || st.Phase == loop.PhaseIntermission {
		st.Board.Render(dst, boardX, boardY)
	}

	drawDisplay(dst, panelX, panelY, st.Clock.Display)
	dst.DrawTextColor(panelX, panelY+3, "TIME", core.ColorGray)

	dst.DrawTextColor(panelX, panelY+5, "Lives "+livesBar(st.Lives, st.MaxLives), core.ColorYellow)
	dst.DrawText(panelX, panelY+6, fmt.Sprintf("Level %d", st.Level))
	dst.DrawText(panelX, panelY+7, fmt.Sprintf("Score %d", st.Score))
	dst.DrawTextColor(panelX, panelY+8, fmt.Sprintf("High  %d", high), core.ColorGray)
	if st.RxLost > 0 {
		dst.DrawTextColor(panelX, panelY+9, fmt.Sprintf("Rx lost %d", st.RxLost), core.ColorOrange)
	}

	for i, line := range phaseMessage(st) {
		dst.DrawTextCentered(messageY+i, line.text, line.color)
	}

	if help != "" {
		dst.DrawTextCentered(dst.Height()-1, help, core.ColorGray)
	}
}

// drawDisplay draws the two seven-segment digits, left digit first.
func drawDisplay(dst *core.Screen, x, y int, f sevenseg.Frame) {
	for i, d := range [...]sevenseg.Segments{f.Left, f.Right} {
		rows := sevenseg.Render(d)
		for r, line := range rows {
			dst.DrawTextColor(x+i*5, y+r, line, core.ColorBrightRed)
		}
	}
}

// livesBar draws one lamp per life up to the cap.
func livesBar(lives, capacity int) string {
	var b strings.Builder
	for i := 0; i < capacity; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i < lives {
			b.WriteRune('●')
		} else {
			b.WriteRune('○')
		}
	}
	return b.String()
}

type messageLine struct {
	text  string
	color core.Color
}

func phaseMessage(st loop.Status) []messageLine {
	switch st.Phase {
	case loop.PhaseSplash:
		return []messageLine{
			{"Frogger", core.ColorBrightGreen},
			{"Press a button or any key to start", core.ColorWhite},
		}
	case loop.PhaseIntermission:
		return []messageLine{{fmt.Sprintf("LEVEL %d", st.Level), core.ColorRed}}
	case loop.PhaseGameOver:
		return []messageLine{
			{"GAME OVER", core.ColorRed},
			{"Press a button to start again", core.ColorWhite},
		}
	case loop.PhaseCompleted:
		return []messageLine{
			{"Congratulations", core.ColorRed},
			{"You beat the game!", core.ColorWhite},
		}
	}
	if st.Paused {
		return []messageLine{{"Paused...", core.ColorBrightMagenta}}
	}
	return nil
}

// centerText centers text horizontally within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
