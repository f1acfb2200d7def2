// SPDX-License-Identifier: AGPL-3.0-or-later
package reconcile

import (
	"fmt"
	"io"
	"strings"

	"github.com/bartekus/vocabrecon/internal/render"
)

// WriteText writes the human readable report, one finding per line.
func (r Report) WriteText(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("sheet A terms: %d", r.ACount),
		fmt.Sprintf("sheet B terms: %d", r.BCount),
		listLine("common", r.Common),
		listLine("new ENA terms wished on A", r.NewOnA),
		listLine("A - B", r.AOnly),
		listLine("  excluding experiment fields", r.AOnlyExcludingExperiment),
		listLine("B - A", r.BOnly),
		fmt.Sprintf("%d/%d mandatory fields in B, remaining: %s",
			len(r.MandatoryCovered), r.MandatoryTotal, bracket(r.MandatoryMissing)),
	}
	if r.RegistryChecked {
		lines = append(lines, listLine("A terms not in registry", r.ANotInRegistry))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// Markdown renders the report as a standalone markdown document.
func (r Report) Markdown() string {
	var b strings.Builder

	b.WriteString(render.Header(1, "Vocabulary reconciliation"))
	b.WriteString(render.Table(
		[]string{"measure", "value"},
		[][]string{
			{"sheet A terms", fmt.Sprint(r.ACount)},
			{"sheet B terms", fmt.Sprint(r.BCount)},
			{"common", fmt.Sprint(len(r.Common))},
			{"mandatory coverage", fmt.Sprintf("%d/%d (%.0f%%)", len(r.MandatoryCovered), r.MandatoryTotal, r.Coverage()*100)},
		},
	))
	b.WriteString("\n")

	sections := []struct {
		title string
		items []string
	}{
		{"Common", r.Common},
		{"New ENA terms wished on A", r.NewOnA},
		{"A only", r.AOnly},
		{"A only, excluding experiment fields", r.AOnlyExcludingExperiment},
		{"B only", r.BOnly},
		{"Mandatory fields missing from B", r.MandatoryMissing},
	}
	if r.RegistryChecked {
		sections = append(sections, struct {
			title string
			items []string
		}{"A terms not in registry", r.ANotInRegistry})
	}

	for _, s := range sections {
		b.WriteString(render.Header(2, fmt.Sprintf("%s (%d)", s.title, len(s.items))))
		b.WriteString(render.List(s.items))
		b.WriteString("\n")
	}
	return b.String()
}

func listLine(label string, items []string) string {
	return fmt.Sprintf("%s total=%d: %s", label, len(items), bracket(items))
}

func bracket(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
