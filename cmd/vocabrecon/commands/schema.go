// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bartekus/vocabrecon/cmd/vocabrecon/internal/clierr"
	"github.com/bartekus/vocabrecon/internal/linkml"
	"github.com/bartekus/vocabrecon/internal/render"
)

const overviewSample = 3

// NewSchemaCommand groups the LinkML/MIxS schema commands.
func NewSchemaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect LinkML/MIxS schema files",
	}
	cmd.AddCommand(newSchemaTermsCommand(a))
	cmd.AddCommand(newSchemaOverviewCommand(a))
	cmd.AddCommand(newSchemaFieldsCommand(a))
	return cmd
}

func newSchemaTermsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms <file>",
		Short: "Write the sorted MIxS term slot names to a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := linkml.Load(args[0])
			if err != nil {
				return clierr.FromDomain("schema terms", err)
			}
			a.log.Info("loaded schema", zap.String("name", s.Name), zap.Int("slots", len(s.Slots)))

			termSlots := s.TermSlots()
			a.log.Debug("classified slots",
				zap.Strings("terms", termSlots),
				zap.Strings("proposed", s.ProposedTermSlots()),
				zap.Strings("collections", s.CollectionSlots()))

			outPath := stringFlag(cmd, "out", a.cfg.Output.TermSlots)
			if err := render.AtomicWrite(outPath, []byte(strings.Join(termSlots, "\n")+"\n")); err != nil {
				return clierr.Wrap(clierr.ExitFailure, "writing term slots", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d terms)\n", outPath, len(termSlots))
			return nil
		},
	}
	cmd.Flags().String("out", "", "output file (default data/output/term_slots.txt)")
	return cmd
}

func newSchemaOverviewCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview <file>",
		Short: "Print schema metadata and slot statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []linkml.Option
			if mixs, _ := cmd.Flags().GetBool("mixs"); mixs {
				opts = append(opts, linkml.WithRequiredKeys(linkml.MixsRequiredKeys...))
			}

			s, err := linkml.Load(args[0], opts...)
			if err != nil {
				return clierr.FromDomain("schema overview", err)
			}

			ov := s.Overview(overviewSample)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), `name %s
id=%s
version=%s
description=%s
comments=[%s]

slots len=%d
classes len=%d
subsets len=%d all=[%s]

slot titles indexed=%d
slot mixs ids indexed=%d
terms=%d proposed=%d

field names total=%d first %d=[%s]
field titles total=%d first %d=[%s]
`,
				ov.Name, ov.ID, ov.Version, ov.Description, strings.Join(ov.Comments, "; "),
				ov.SlotCount, ov.ClassCount, ov.SubsetCount, strings.Join(ov.Subsets, ", "),
				ov.TitleIndex, ov.MixsIDIndex, ov.TermCount, ov.ProposedCount,
				ov.FieldCount, len(ov.FieldSample), strings.Join(ov.FieldSample, ", "),
				ov.FieldCount, len(ov.TitleSample), strings.Join(ov.TitleSample, ", "),
			)
			return nil
		},
	}
	cmd.Flags().Bool("mixs", false, "require every top-level key of a full MIxS schema")
	return cmd
}

func newSchemaFieldsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <file>",
		Short: "Print name, title and description of every field slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := linkml.Load(args[0])
			if err != nil {
				return clierr.FromDomain("schema fields", err)
			}

			out := cmd.OutOrStdout()
			for _, sl := range s.Slots {
				if sl.IsDataSlot() {
					continue
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", sl.Name, sl.Title, sl.Description)
			}
			a.log.Debug("listed fields", zap.Int("count", len(s.FieldNames())))
			return nil
		},
	}
}
