// SPDX-License-Identifier: AGPL-3.0-or-later
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	previewHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	previewCell   = lipgloss.NewStyle().Padding(0, 1)
	previewTitle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Preview renders a bordered terminal table with a title line. Cells wider
// than maxWidth runes are truncated; maxWidth <= 0 disables truncation.
func Preview(title string, headers []string, rows [][]string, maxWidth int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(clip(headers, maxWidth)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return previewHeader
			}
			return previewCell
		})

	for _, row := range rows {
		t.Row(clip(row, maxWidth)...)
	}

	return previewTitle.Render(title) + "\n" + t.String() + "\n"
}

func clip(in []string, maxWidth int) []string {
	out := make([]string, len(in))
	for i, s := range in {
		r := []rune(s)
		if maxWidth > 0 && len(r) > maxWidth {
			s = string(r[:maxWidth-1]) + "…"
		}
		out[i] = s
	}
	return out
}
