// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bartekus/vocabrecon/cmd/vocabrecon/internal/clierr"
	"github.com/bartekus/vocabrecon/internal/registry"
)

// NewRegistryCommand groups the schema store queries.
func NewRegistryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Query the ENA/BioSamples schema store",
	}

	cmd.AddCommand(newListFieldNamesCommand(a))
	cmd.AddCommand(newLatestFieldCommand(a))
	cmd.AddCommand(newListSchemasCommand(a))
	return cmd
}

func newListFieldNamesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-field-names",
		Short: "Print every field label, sorted case-insensitively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := a.pageSize(cmd)
			if err != nil {
				return err
			}

			labels, err := a.registryClient().ListFieldLabels(cmd.Context(), size)
			if err != nil {
				return clierr.FromDomain("registry list-field-names", err)
			}

			out := cmd.OutOrStdout()
			for _, l := range labels {
				_, _ = fmt.Fprintln(out, l)
			}
			a.log.Info("listed field names", zap.Int("count", len(labels)))
			return nil
		},
	}
	cmd.Flags().Int("size", registry.DefaultPageSize, "page size requested from the store")
	return cmd
}

func newLatestFieldCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest-field <label>",
		Short: "Print the most recent revision of a field as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := a.pageSize(cmd)
			if err != nil {
				return err
			}

			label := args[0]
			rec, err := a.registryClient().LatestField(cmd.Context(), label, size)
			if err != nil {
				return clierr.FromDomain("registry latest-field", err)
			}
			if rec == nil {
				// Not fatal: report and exit 0.
				a.log.Error("field not found", zap.String("label", label))
				return nil
			}

			b, err := json.MarshalIndent(rec.Raw, "", "  ")
			if err != nil {
				return clierr.Wrap(clierr.ExitFailure, "encoding field", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().Int("size", registry.DefaultPageSize, "page size requested from the store")
	return cmd
}

func newListSchemasCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-schemas",
		Short: "Print id,accession,name for every schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemas, err := a.registryClient().ListSchemas(cmd.Context())
			if err != nil {
				return clierr.FromDomain("registry list-schemas", err)
			}

			out := cmd.OutOrStdout()
			for _, s := range schemas {
				_, _ = fmt.Fprintf(out, "%s,%s,%s\n", s.ID, deref(s.Accession), deref(s.Name))
			}
			return nil
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
