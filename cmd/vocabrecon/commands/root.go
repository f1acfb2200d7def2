// SPDX-License-Identifier: AGPL-3.0-or-later

/*
vocabrecon - reconciles controlled-vocabulary term lists used to curate
biological sample metadata: AEGIS checklist sheets, the ENA/BioSamples
schema store and LinkML/MIxS schemas.

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bartekus/vocabrecon/cmd/vocabrecon/internal/clierr"
	"github.com/bartekus/vocabrecon/internal/config"
	"github.com/bartekus/vocabrecon/internal/httpclient"
	"github.com/bartekus/vocabrecon/internal/logging"
	"github.com/bartekus/vocabrecon/internal/registry"
	"github.com/bartekus/vocabrecon/internal/sheets"
)

// app carries what every subcommand shares once the root has run.
type app struct {
	verbose     bool
	configPath  string
	registryURL string
	timeout     string

	cfg config.Config
	log *zap.Logger
}

// NewRootCmd constructs the vocabrecon root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("VOCABRECON_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	a := &app{log: zap.NewNop(), cfg: config.Default()}

	cmd := &cobra.Command{
		Use:           "vocabrecon",
		Short:         "Reconcile controlled-vocabulary term lists against ENA",
		Long:          "vocabrecon compares AEGIS checklist sheets with each other, the ENA schema store and MIxS schemas.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	pf.StringVar(&a.registryURL, "registry-url", "", "schema store base URL")
	pf.StringVar(&a.timeout, "timeout", "", "HTTP timeout, e.g. 30s")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of vocabrecon",
		// version needs no config; a broken config file must not hide it.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "vocabrecon version %s\n", version)
		},
	})

	cmd.AddCommand(NewRegistryCommand(a))
	cmd.AddCommand(NewSheetsCommand(a))
	cmd.AddCommand(NewReconcileCommand(a))
	cmd.AddCommand(NewChecklistCommand(a))
	cmd.AddCommand(NewSchemaCommand(a))

	return cmd
}

// setup resolves config (file, env, then flags) and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.log = logging.New(cmd.ErrOrStderr(), a.verbose)

	cfg, err := config.Load(config.Source{Path: a.configPath})
	if err != nil {
		return clierr.FromDomain("loading config", err)
	}
	if a.registryURL != "" {
		cfg.RegistryURL = a.registryURL
	}
	if a.timeout != "" {
		d, err := config.ParseTimeout(a.timeout)
		if err != nil {
			return clierr.Wrap(clierr.ExitUsage, "--timeout", err)
		}
		cfg.Timeout = d
	}
	if err := cfg.Validate(); err != nil {
		return clierr.FromDomain("invalid settings", err)
	}

	a.cfg = cfg
	if cfg.Source != "" {
		a.log.Debug("loaded config", zap.String("path", cfg.Source))
	}
	return nil
}

func (a *app) executor() *httpclient.Executor {
	hc := httpclient.DefaultConfig()
	hc.Timeout = a.cfg.Timeout
	return httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(hc)),
		httpclient.WithTimeout(a.cfg.Timeout),
		httpclient.WithLogger(a.log),
	)
}

func (a *app) registryClient() *registry.Client {
	return registry.New(
		registry.WithBaseURL(a.cfg.RegistryURL),
		registry.WithExecutor(a.executor()),
		registry.WithLogger(a.log),
	)
}

func (a *app) sheetFetcher() *sheets.Fetcher {
	return sheets.NewFetcher(
		sheets.WithBaseURL(a.cfg.SheetsURL),
		sheets.WithExecutor(a.executor()),
		sheets.WithLogger(a.log),
	)
}

// pageSize returns --size when given, else the configured page size.
func (a *app) pageSize(cmd *cobra.Command) (int, error) {
	if !cmd.Flags().Changed("size") {
		return a.cfg.PageSize, nil
	}
	n, err := cmd.Flags().GetInt("size")
	if err != nil {
		return 0, clierr.Wrap(clierr.ExitUsage, "--size", err)
	}
	if n <= 0 {
		return 0, clierr.Newf(clierr.ExitUsage, "--size must be positive, got %d", n)
	}
	return n, nil
}

// stringFlag returns the flag value when set, else fallback.
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}
