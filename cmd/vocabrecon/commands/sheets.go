// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bartekus/vocabrecon/cmd/vocabrecon/internal/clierr"
	"github.com/bartekus/vocabrecon/internal/render"
	"github.com/bartekus/vocabrecon/internal/sheets"
)

const previewCellWidth = 40

// NewSheetsCommand groups the spreadsheet commands.
func NewSheetsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Fetch the AEGIS spreadsheets",
	}
	cmd.AddCommand(newSheetsPreviewCommand(a))
	return cmd
}

func newSheetsPreviewCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Fetch both sheets and print the first rows of each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			head, err := cmd.Flags().GetInt("print-head")
			if err != nil {
				return clierr.Wrap(clierr.ExitUsage, "--print-head", err)
			}
			saveDir := stringFlag(cmd, "save-dir", a.cfg.Output.SnapshotDir)

			refs, err := parseSheetRefs(cmd, a)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range refs {
				tbl, raw, err := a.sheetFetcher().FetchTable(cmd.Context(), s.ref)
				if err != nil {
					return clierr.FromDomain("sheet "+s.label, err)
				}
				a.log.Info("loaded sheet",
					zap.String("sheet", s.label),
					zap.Int("rows", tbl.Len()),
					zap.Int("cols", len(tbl.Header)))

				if saveDir != "" {
					path := filepath.Join(saveDir, "sheet_"+s.file+".csv")
					if err := render.AtomicWrite(path, raw); err != nil {
						return clierr.Wrapf(clierr.ExitFailure, err, "saving sheet %s", s.label)
					}
					a.log.Info("saved raw csv", zap.String("path", path))
				}

				if head > 0 {
					h := tbl.Head(head)
					_, _ = fmt.Fprintln(out)
					_, _ = fmt.Fprint(out, render.Preview(fmt.Sprintf("=== Sheet %s (head) ===", s.label), h.Header, h.Strings(), previewCellWidth))
				}
			}
			return nil
		},
	}

	addSheetFlags(cmd)
	cmd.Flags().Int("print-head", 5, "print the first N rows of each sheet")
	cmd.Flags().String("save-dir", "", "write the raw CSV exports into this directory")
	return cmd
}

type namedRef struct {
	label string
	file  string
	ref   sheets.Ref
}

func addSheetFlags(cmd *cobra.Command) {
	cmd.Flags().String("sheet-a", "", "URL or ID of sheet A, the draft checklist (default from config)")
	cmd.Flags().String("sheet-b", "", "URL or ID of sheet B, the ENA upload sheet (default from config)")
}

// parseSheetRefs validates both sheet references before anything is fetched.
func parseSheetRefs(cmd *cobra.Command, a *app) ([]namedRef, error) {
	inputs := []struct{ label, file, value string }{
		{"A", "a", stringFlag(cmd, "sheet-a", a.cfg.SheetA)},
		{"B", "b", stringFlag(cmd, "sheet-b", a.cfg.SheetB)},
	}

	refs := make([]namedRef, 0, len(inputs))
	for _, in := range inputs {
		ref, err := sheets.ParseRef(in.value)
		if err != nil {
			return nil, clierr.Wrapf(clierr.ExitUsage, err, "could not parse sheet ID for sheet %s", in.label)
		}
		a.log.Info("sheet", zap.String("label", in.label), zap.String("id", ref.ID), zap.String("gid", ref.GID))
		refs = append(refs, namedRef{label: in.label, file: in.file, ref: ref})
	}
	return refs, nil
}

// fetchTables loads every ref in order, stopping at the first failure.
func fetchTables(ctx context.Context, a *app, refs []namedRef) ([]*sheets.Table, error) {
	fetcher := a.sheetFetcher()
	out := make([]*sheets.Table, 0, len(refs))
	for _, r := range refs {
		tbl, _, err := fetcher.FetchTable(ctx, r.ref)
		if err != nil {
			return out, clierr.FromDomain("sheet "+r.label, err)
		}
		a.log.Debug("loaded sheet", zap.String("sheet", r.label), zap.Int("rows", tbl.Len()))
		out = append(out, tbl)
	}
	return out, nil
}
