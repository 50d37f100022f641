package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
)

// MaxDescriptionWidth is where item lines get cut with an ellipsis.
const MaxDescriptionWidth = 60

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(pct, width int) string {
	if width < 5 {
		width = 5
	}
	pct = max(0, min(pct, 100))
	filled := pct * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// ItemLine is the one-line rendering of an item: box, quantity, description.
// Packed items are struck through.
func ItemLine(it model.Item) string {
	t := Current()
	desc := ansi.Truncate(it.Description, MaxDescriptionWidth, "…")
	text := fmt.Sprintf("%d %s", it.Quantity, desc)
	if it.Packed {
		return t.Success.Render(t.BoxChecked) + " " + t.Packed.Render(text)
	}
	return t.Muted.Render(t.BoxUnchecked) + " " + text
}

// SortLine names the active sort, e.g. "Sorted by name, descending".
func SortLine(by packing.SortKey, mode packing.SortMode) string {
	return fmt.Sprintf("Sorted by %s, %s", by.Label(), mode)
}

// Footer is the summary message plus, for a non-empty list, a progress bar.
func Footer(sum packing.Summary) []string {
	t := Current()
	lines := []string{t.Accent.Render(sum.Message())}
	if sum.State != packing.StateEmpty {
		lines = append(lines, t.Muted.Render(ProgressBar(sum.Percentage, 28)))
	}
	return lines
}

// VisibleWidth is the printed width of s, ignoring escape sequences.
func VisibleWidth(s string) int { return ansi.StringWidth(s) }
