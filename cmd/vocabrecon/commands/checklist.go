// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/vocabrecon/cmd/vocabrecon/internal/clierr"
	"github.com/bartekus/vocabrecon/internal/checklist"
	"github.com/bartekus/vocabrecon/internal/sheets"
)

// NewChecklistCommand groups the draft checklist commands.
func NewChecklistCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Draft ENA checklists from an annotated sheet",
	}
	cmd.AddCommand(newChecklistWriteCommand(a))
	return cmd
}

func newChecklistWriteCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write high-confidence and all-confidence checklists as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := stringFlag(cmd, "out-dir", a.cfg.Output.ChecklistDir)

			ref, err := sheets.ParseRef(stringFlag(cmd, "sheet", a.cfg.SheetB))
			if err != nil {
				return clierr.Wrap(clierr.ExitUsage, "could not parse sheet ID", err)
			}

			tbl, _, err := a.sheetFetcher().FetchTable(cmd.Context(), ref)
			if err != nil {
				return clierr.FromDomain("checklist write", err)
			}

			res, err := checklist.Write(tbl, outDir, a.log)
			if err != nil {
				return clierr.FromDomain("checklist write", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s (%d rows)\n", res.HighConfidencePath, res.HighConfidenceRows)
			_, _ = fmt.Fprintf(out, "%s (%d rows)\n", res.AllConfidencesPath, res.AllConfidencesRows)
			return nil
		},
	}
	cmd.Flags().String("sheet", "", "URL or ID of the annotated sheet with a \"Confidence to add\" column (default: sheet B from config; the upstream script passed sheet A)")
	cmd.Flags().String("out-dir", "", "output directory (default data/checklist)")
	return cmd
}
