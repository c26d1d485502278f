package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/loop"
	"github.com/vovakirdan/tui-frogger/internal/sevenseg"
)

func TestComposeMessages(t *testing.T) {
	tests := []struct {
		name string
		st   loop.Status
		want []string
	}{
		{"splash", loop.Status{Phase: loop.PhaseSplash}, []string{"Frogger", "Press a button or any key to start"}},
		{"intermission", loop.Status{Phase: loop.PhaseIntermission, Level: 3}, []string{"LEVEL 3"}},
		{"paused", loop.Status{Phase: loop.PhasePlaying, Paused: true}, []string{"Paused..."}},
		{"game over", loop.Status{Phase: loop.PhaseGameOver}, []string{"GAME OVER", "Press a button to start again"}},
		{"completed", loop.Status{Phase: loop.PhaseCompleted}, []string{"Congratulations", "You beat the game!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(80, 24)
			Compose(s, tt.st, 0, "")
			for i, want := range tt.want {
				if row := s.Row(messageY + i); !strings.Contains(row, want) {
					t.Errorf("row %d = %q, want %q", messageY+i, row, want)
				}
			}
		})
	}
}

func TestComposePlayingHasNoMessage(t *testing.T) {
	s := core.NewScreen(80, 24)
	Compose(s, loop.Status{Phase: loop.PhasePlaying}, 0, "")
	if row := strings.TrimSpace(s.Row(messageY)); row != "" {
		t.Errorf("message row = %q, want blank", row)
	}
}

func TestComposePanel(t *testing.T) {
	s := core.NewScreen(80, 24)
	st := loop.Status{
		Phase:    loop.PhasePlaying,
		Level:    2,
		Lives:    2,
		MaxLives: 4,
		Score:    31,
	}
	st.Clock.Display.Left = sevenseg.Digit(1)
	st.Clock.Display.Right = sevenseg.Digit(7)
	Compose(s, st, 120, "help text")

	checks := []struct {
		y    int
		want string
	}{
		{panelY, " _ "},   // top bar of 7
		{panelY + 1, "|"}, // right edge of 1
		{panelY + 5, "Lives ● ● ○ ○"},
		{panelY + 6, "Level 2"},
		{panelY + 7, "Score 31"},
		{panelY + 8, "High  120"},
		{s.Height() - 1, "help text"},
	}
	for _, c := range checks {
		if row := s.Row(c.y); !strings.Contains(row, c.want) {
			t.Errorf("row %d = %q, want %q", c.y, row, c.want)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawText(0, 1, "efgh")

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "efgh"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("newlines = %d, want 1", n)
	}
}

func TestLivesBar(t *testing.T) {
	tests := []struct {
		lives, max int
		want       string
	}{
		{0, 0, ""},
		{3, 4, "● ● ● ○"},
		{4, 4, "● ● ● ●"},
		{0, 3, "○ ○ ○"},
	}
	for _, tt := range tests {
		if got := livesBar(tt.lives, tt.max); got != tt.want {
			t.Errorf("livesBar(%d, %d) = %q, want %q", tt.lives, tt.max, got, tt.want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText = %q, want unchanged", got)
	}
}

func TestComposeSerialOverflow(t *testing.T) {
	tests := []struct {
		lost uint64
		want bool
	}{
		{0, false},
		{3, true},
	}
	for _, tt := range tests {
		s := core.NewScreen(80, 24)
		Compose(s, loop.Status{Phase: loop.PhasePlaying, RxLost: tt.lost}, 0, "")
		got := strings.Contains(s.Row(panelY+9), "Rx lost 3")
		if got != tt.want {
			t.Errorf("lost %d: row %q", tt.lost, s.Row(panelY+9))
		}
	}
}
