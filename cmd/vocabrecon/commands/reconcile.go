// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bartekus/vocabrecon/cmd/vocabrecon/internal/clierr"
	"github.com/bartekus/vocabrecon/internal/cell"
	"github.com/bartekus/vocabrecon/internal/reconcile"
	"github.com/bartekus/vocabrecon/internal/registry"
	"github.com/bartekus/vocabrecon/internal/render"
	"github.com/bartekus/vocabrecon/internal/sheets"
	"github.com/bartekus/vocabrecon/internal/terms"
)

// NewReconcileCommand compares sheet A's wished terms with sheet B's
// recommended terms, the ENA baselines and the registry.
func NewReconcileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Compare the term columns of sheets A and B",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := a.pageSize(cmd)
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			mdPath, _ := cmd.Flags().GetString("markdown")
			colA := stringFlag(cmd, "a-column", a.cfg.Columns.A)
			colB := stringFlag(cmd, "b-column", a.cfg.Columns.B)
			colNew := stringFlag(cmd, "new-term-column", a.cfg.Columns.NewTerm)

			refs, err := parseSheetRefs(cmd, a)
			if err != nil {
				return err
			}
			tables, err := fetchTables(cmd.Context(), a, refs)
			if err != nil {
				if len(tables) == 1 {
					writePartial(cmd, tables[0], colA)
				}
				return err
			}
			sheetA, sheetB := tables[0], tables[1]

			in, err := termInput(sheetA, sheetB, colA, colB, colNew)
			if err != nil {
				return clierr.FromDomain("reconcile", err)
			}

			client := a.registryClient()
			base := client.Baselines()
			in.Mandatory = base.Mandatory
			in.ExperimentAll = base.ExperimentAll

			labels, err := client.ListFieldLabels(cmd.Context(), size)
			if err != nil {
				a.log.Warn("registry unavailable, skipping registry check", zap.Error(err))
			} else {
				in.Registry = terms.NewSet(labels...)
			}

			report := reconcile.Compute(in)
			a.log.Debug("reconciled",
				zap.Int("a", report.ACount),
				zap.Int("b", report.BCount),
				zap.Int("common", len(report.Common)))

			if mdPath != "" {
				if err := render.AtomicWrite(mdPath, []byte(report.Markdown())); err != nil {
					return clierr.Wrap(clierr.ExitFailure, "writing markdown report", err)
				}
				a.log.Info("wrote markdown report", zap.String("path", mdPath))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return clierr.Wrap(clierr.ExitFailure, "encoding report", err)
				}
				_, _ = fmt.Fprintln(out, string(b))
				return nil
			}
			if err := report.WriteText(out); err != nil {
				return clierr.Wrap(clierr.ExitFailure, "writing report", err)
			}
			return nil
		},
	}

	addSheetFlags(cmd)
	cmd.Flags().String("a-column", "", `sheet A column of wished terms (default "ENA wish")`)
	cmd.Flags().String("b-column", "", `sheet B column of recommended terms (default "ENA recommended")`)
	cmd.Flags().String("new-term-column", "", `sheet B flag column (default "Needs New Term in ENA")`)
	cmd.Flags().Int("size", registry.DefaultPageSize, "registry page size")
	cmd.Flags().Bool("json", false, "print the report as JSON")
	cmd.Flags().String("markdown", "", "also write the report as markdown to this path")
	return cmd
}

// termInput extracts the canonical sets from the two sheets. The marked set
// holds the B terms whose flag column is truthy.
func termInput(sheetA, sheetB *sheets.Table, colA, colB, colNew string) (reconcile.Input, error) {
	aCells, err := sheetA.Column(colA)
	if err != nil {
		return reconcile.Input{}, err
	}
	bCells, err := sheetB.Column(colB)
	if err != nil {
		return reconcile.Input{}, err
	}
	flags, err := sheetB.Column(colNew)
	if err != nil {
		return reconcile.Input{}, err
	}

	mask := cell.Mask(flags)
	marked := make([]cell.Cell, 0, len(bCells))
	for i, c := range bCells {
		if mask[i] {
			marked = append(marked, c)
		}
	}

	return reconcile.Input{
		A:             terms.Normalize(aCells),
		B:             terms.Normalize(bCells),
		NewTermMarked: terms.Normalize(marked),
	}, nil
}

// writePartial prints sheet A's terms when sheet B could not be loaded.
func writePartial(cmd *cobra.Command, sheetA *sheets.Table, colA string) {
	cells, err := sheetA.Column(colA)
	if err != nil {
		return
	}
	set := terms.Normalize(cells)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sheet A terms total=%d: [%s]\n", set.Len(), strings.Join(set.Sorted(), ", "))
}
