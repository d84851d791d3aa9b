package garden

import (
	"fmt"

	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/games/garden/sim"
	"github.com/vovakirdan/tui-garden/internal/ranking"
)

// rankingRows is how many ranking entries the lobby and victory panels list.
const rankingRows = 5

type line struct {
	text  string
	color core.Color
}

// drawPanel draws a centered box sized to fit lines.
func drawPanel(dst *core.Screen, lines []line, border core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, core.TextWidth(l.text))
	}
	w = min(w+6, dst.Width())
	h := min(len(lines)+4, dst.Height())
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.DrawBox(x, y, w, h, border)
	for i, l := range lines {
		if 2+i >= h-1 {
			break
		}
		dst.DrawTextCentered(y+2+i, l.text, l.color)
	}
}

func drawTitle(dst *core.Screen, theme *Theme) {
	art := []string{
		"╔═╗┌─┐┬─┐┌─┐┌─┐┌┬┐┌┬┐┌─┐┌┐┌",
		"╠╣ │ │├┬┘│ ┬│ │ │  │ ├┤ │││",
		"╚  └─┘┴└─└─┘└─┘ ┴  ┴ └─┘┘└┘",
		"   ╔═╗┌─┐┬─┐┌┬┐┌─┐┌┐┌   ",
		"   ║ ╦├─┤├┬┘ ││├┤ │││   ",
		"   ╚═╝┴ ┴┴└──┴┘└─┘┘└┘   ",
	}
	top := max((dst.Height()-len(art)-4)/2, 0)
	for i, row := range art {
		dst.DrawTextCentered(top+i, row, core.ColorBrightGreen)
	}
	dst.DrawTextCentered(top+len(art)+2, "Press ENTER to begin", theme.HUDColor())
	dst.DrawTextCentered(top+len(art)+3, "Q to quit", core.ColorGray)
}

func drawLobby(dst *core.Screen, theme *Theme, s sim.Snapshot) {
	lines := []line{
		{"HOW TO PLAY", core.ColorBrightYellow},
		{"", core.ColorDefault},
		{"A/D or ←/→  run      SPACE/W  jump", core.ColorWhite},
		{"E/F/X  shoot         P  pause", core.ColorWhite},
		{"Collect every orb before the time runs out.", core.ColorWhite},
		{"", core.ColorDefault},
	}
	lines = append(lines, rankingLines(s.Ranking, 0)...)
	lines = append(lines,
		line{"", core.ColorDefault},
		line{"ENTER continue   ESC back", core.ColorGray},
	)
	drawPanel(dst, lines, theme.HUDColor())
}

func drawCredits(dst *core.Screen, theme *Theme) {
	drawPanel(dst, []line{
		{"The garden is dying.", core.ColorBrightGreen},
		{"Its last orbs of light are scattered across the ruins,", core.ColorWhite},
		{"guarded by creatures that no longer remember the sun.", core.ColorWhite},
		{"", core.ColorDefault},
		{"ENTER play   ESC back", core.ColorGray},
	}, theme.HUDColor())
}

func drawWon(dst *core.Screen, theme *Theme, s sim.Snapshot) {
	lines := []line{
		{"JOURNEY'S END", core.ColorBrightYellow},
		{FinalMessage(s.Collected, s.TotalOrbs), core.ColorWhite},
		{"Time " + FormatTime(s.FinalMs), core.ColorBrightCyan},
		{"", core.ColorDefault},
	}

	if s.NameEntry {
		field := s.Name + "_"
		for core.TextWidth(field) < s.NameMax+1 {
			field += " "
		}
		lines = append(lines,
			line{"Enter your name: " + field, core.ColorBrightWhite},
			line{"ENTER save   BACKSPACE delete", core.ColorGray},
		)
	} else {
		if s.Rank > 0 {
			lines = append(lines, line{fmt.Sprintf("Ranked #%d", s.Rank), core.ColorBrightGreen})
		} else {
			lines = append(lines, line{"Not fast enough for the ranking", core.ColorGray})
		}
		lines = append(lines, line{"", core.ColorDefault})
		lines = append(lines, rankingLines(s.Ranking, s.Rank)...)
		lines = append(lines,
			line{"", core.ColorDefault},
			line{"R or ENTER play again   Q quit", core.ColorGray},
		)
	}
	drawPanel(dst, lines, core.ColorBrightYellow)
}

func drawLost(dst *core.Screen, _ *Theme, s sim.Snapshot) {
	reason := "You ran out of lives."
	if s.LostByTimer {
		reason = "Time ran out."
	}
	drawPanel(dst, []line{
		{"THE GARDEN FADES", core.ColorBrightRed},
		{reason, core.ColorWhite},
		{FinalMessage(s.Collected, s.TotalOrbs), core.ColorWhite},
		{fmt.Sprintf("Enemies defeated: %d", s.Defeated), core.ColorGray},
		{"", core.ColorDefault},
		{"R or ENTER try again   Q quit", core.ColorGray},
	}, core.ColorRed)
}

func drawPaused(dst *core.Screen) {
	drawPanel(dst, []line{
		{"PAUSED", core.ColorBrightYellow},
		{"P to resume", core.ColorGray},
	}, core.ColorYellow)
}

// rankingLines lists the best times, highlighting the row at rank.
func rankingLines(entries []ranking.Entry, rank int) []line {
	if len(entries) == 0 {
		return []line{{"No times recorded yet", core.ColorGray}}
	}
	out := []line{{"BEST TIMES", core.ColorBrightYellow}}
	for i, e := range entries {
		if i >= rankingRows {
			break
		}
		color := core.ColorWhite
		if i+1 == rank {
			color = core.ColorBrightGreen
		}
		out = append(out, line{fmt.Sprintf("%2d. %-12s %8s", i+1, e.Name, FormatTime(e.TimeMs)), color})
	}
	return out
}

// FinalMessage grades a round by the fraction of orbs collected.
func FinalMessage(collected, total int) string {
	switch {
	case total > 0 && collected >= total:
		return "You collected every orb!"
	case collected > 0 && collected >= total/2:
		return fmt.Sprintf("You collected %d/%d orbs. The garden is recovering!", collected, total)
	case collected > 0:
		return fmt.Sprintf("You collected %d/%d orbs. There is still hope...", collected, total)
	default:
		return "No orbs collected... better luck next time"
	}
}

// FormatTime renders milliseconds as seconds with two decimals.
func FormatTime(ms int64) string {
	return fmt.Sprintf("%d.%02ds", ms/1000, (ms%1000)/10)
}
