// Package cli provides the planner command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"azure-cost-planner/internal/catalog"
	"azure-cost-planner/internal/config"
	"azure-cost-planner/internal/estimate"
	"azure-cost-planner/internal/logging"
	"azure-cost-planner/internal/pricing"
	"azure-cost-planner/internal/version"
)

type rootOptions struct {
	configPath string
	logLevel   string
	currency   string
}

// NewRootCommand builds the planner command and its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Estimate and compare Azure VM costs",
		Long: `planner prices Azure virtual machines from a built-in catalog.

Examples:
  planner estimate --region southindia --vm-size Standard_B1s --os Linux
  planner compare --vm-size Standard_D2s_v5 --os Windows --hours 200
  planner serve --listen-addr :8080`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $PLANNER_CONFIG_FILE)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.currency, "currency", "", "currency label for displayed amounts ("+strings.Join(estimate.Currencies(), ", ")+")")

	cmd.AddCommand(
		newServeCommand(opts),
		newEstimateCommand(opts),
		newCompareCommand(opts),
		newCatalogCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

// Execute runs the planner CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

// load merges the config layers with any persistent flags set on the command line.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("currency") {
		cfg.Currency = o.currency
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, newLogger(cmd.ErrOrStderr(), cfg.LogLevel), nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	if w == os.Stderr {
		return logging.New(level)
	}
	return logging.NewWithWriter(w, level)
}

func newPriceService(cfg config.Config, reg prometheus.Registerer, logger *slog.Logger) *pricing.Service {
	var source pricing.Source
	switch cfg.PriceSource {
	case config.SourceRetail:
		retail := pricing.NewRetailSource(cfg.Currency, catalog.Regions(), catalog.VMSizes(), logger)
		logger.Info("using retail price source; live lookups are not implemented",
			slog.String("endpoint", pricing.RetailPricesEndpoint),
			slog.String("currency", retail.Currency()),
		)
		source = retail
	default:
		source = pricing.NewStaticSource(catalog.Default())
	}
	return pricing.NewService(source, reg)
}

func osFlagUsage() string {
	names := make([]string, 0, len(catalog.OperatingSystems()))
	for _, o := range catalog.OperatingSystems() {
		names = append(names, string(o))
	}
	return "operating system (" + strings.Join(names, ", ") + ")"
}

func newTable(w io.Writer) *tabby.Tabby {
	return tabby.NewCustom(tabwriter.NewWriter(w, 0, 0, 2, ' ', 0))
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "planner %s (%s)\n", info.Version, info.GoVersion)
		},
	}
}
