package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	seatStyleAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	seatStyleSelected  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	seatStyleReserved  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	seatStyleCursor    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("4"))
)

// renderSeatGrid draws the session's seats in a fixed 10-column grid,
// in the order the backend returned them. Each cell's look is a pure
// function of (status, selected, cursor).
func (s *reservationSession) renderSeatGrid() string {
	if len(s.seats) == 0 {
		return "No hay asientos para esta función."
	}

	cellWidth := 2
	for _, seat := range s.seats {
		if l := len(fmt.Sprintf("%d", seat.Number)); l > cellWidth {
			cellWidth = l
		}
	}

	gridWidth := seatGridColumns*(cellWidth+1) - 1
	screen := screenBarBlock(gridWidth, "PANTALLA")
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	var b strings.Builder
	b.WriteString(screenBorderStyle.Render(screen.top))
	b.WriteString("\n")
	b.WriteString(screenStyle.Render(screen.mid))
	b.WriteString("\n")
	b.WriteString(screenBorderStyle.Render(screen.bot))
	b.WriteString("\n\n")

	for i, seat := range s.seats {
		text := padCell(fmt.Sprintf("%d", seat.Number), cellWidth)
		switch {
		case i == s.cursor:
			text = seatStyleCursor.Render(text)
		case !seat.Available():
			text = seatStyleReserved.Render(text)
		case s.selected[seat.Id]:
			text = seatStyleSelected.Render(text)
		default:
			text = seatStyleAvailable.Render(text)
		}
		b.WriteString(text)
		if (i+1)%seatGridColumns == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if len(s.seats)%seatGridColumns != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hint("Legend: white available • green selected • dim reserved"))
	b.WriteString("\n")

	picked := s.selectedNumbers()
	summary := fmt.Sprintf("Asientos seleccionados: %d", len(picked))
	if len(picked) > 0 {
		summary += " • " + strings.Join(picked, " ")
	}
	b.WriteString(hint(summary))
	return b.String()
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
