package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#39d353"))
	todoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	// GitHub contribution palette, one style per band.
	bandStyles = [...]lipgloss.Style{
		domain.BandNone: lipgloss.NewStyle().Foreground(lipgloss.Color("#30363d")),
		domain.BandLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0e4429")),
		domain.BandMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("#006d32")),
		domain.BandHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("#26a641")),
		domain.BandFull: lipgloss.NewStyle().Foreground(lipgloss.Color("#39d353")),
	}
)

const cellGlyph = "■"

func renderDay(day *domain.DayLog, completion int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %d%%", day.Date, completion)))
	b.WriteString("\n")

	for _, task := range domain.AllTasks() {
		if day.Tasks.Done(task) {
			b.WriteString(doneStyle.Render("[x] " + task.String()))
		} else {
			b.WriteString(todoStyle.Render("[ ] " + task.String()))
		}
		b.WriteString("\n")
	}

	if day.WeightKg != nil {
		fmt.Fprintf(&b, "weight  %.1f kg (%.1f lbs)\n", *day.WeightKg, domain.KgToLbs(*day.WeightKg))
	}
	if day.FastingHours != nil {
		fmt.Fprintf(&b, "fasting %.1f h\n", *day.FastingHours)
	}

	return b.String()
}

func renderHeatmap(hm *domain.Heatmap) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s → %s", hm.StartDate, hm.EndDate)))
	b.WriteString("\n")

	for _, row := range hm.Cells {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = bandStyles[cell.Band].Render(cellGlyph)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"perfect days %d · current streak %d · longest streak %d",
		hm.PerfectDays, hm.CurrentStreak, hm.LongestStreak,
	)))
	b.WriteString("\n")

	return b.String()
}
