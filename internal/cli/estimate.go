package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"azure-cost-planner/internal/catalog"
	"azure-cost-planner/internal/config"
	"azure-cost-planner/internal/estimate"
	"azure-cost-planner/internal/pricing"
	"azure-cost-planner/internal/session"
)

type inputFlags struct {
	region string
	vmSize string
	os     string
	hours  int
}

// request fills unset flags from the configured defaults.
func (f inputFlags) request(cmd *cobra.Command, cfg config.Config, svc *pricing.Service) (estimate.Request, error) {
	defaults := session.NewDefaults(svc.Regions(), svc.VMSizes(), cfg.Currency)
	defaults.Hours = cfg.DefaultHours
	req := defaults.Request()

	if cmd.Flags().Changed("region") {
		req.Region = f.region
	}
	if cmd.Flags().Changed("vm-size") {
		req.VMSize = f.vmSize
	}
	if cmd.Flags().Changed("os") {
		os, err := catalog.ParseOS(f.os)
		if err != nil {
			return estimate.Request{}, err
		}
		req.OS = os
	}
	if cmd.Flags().Changed("hours") {
		req.Hours = f.hours
	}
	return req, nil
}

func newEstimateCommand(opts *rootOptions) *cobra.Command {
	var flags inputFlags
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the monthly cost of one VM configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			svc := newPriceService(cfg, nil, logger)
			req, err := flags.request(cmd, cfg, svc)
			if err != nil {
				return err
			}

			est, err := estimate.NewBuilder(svc).Estimate(req)
			if err != nil {
				return err
			}
			logger.Debug("estimate computed",
				slog.String("source", svc.SourceName()),
				slog.String("region", est.Region),
				slog.String("vmSize", est.VMSize),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Region:          %s (%s)\n", est.RegionName, est.Region)
			fmt.Fprintf(out, "VM size:         %s\n", est.VMSize)
			fmt.Fprintf(out, "OS:              %s\n", est.OS)
			fmt.Fprintf(out, "Hours per month: %d\n", est.HoursPerMonth)
			fmt.Fprintf(out, "Hourly price:    %s\n", est.HourlyDisplay)
			fmt.Fprintf(out, "Monthly cost:    %s\n", est.MonthlyDisplay)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.region, "region", "r", "", "Azure region code (default: first catalog region)")
	cmd.Flags().StringVar(&flags.vmSize, "vm-size", "", "VM size (default: first catalog size)")
	cmd.Flags().StringVar(&flags.os, "os", string(catalog.Linux), osFlagUsage())
	cmd.Flags().IntVar(&flags.hours, "hours", estimate.DefaultHoursPerMonth, "usage hours per month (1-744)")
	return cmd
}
