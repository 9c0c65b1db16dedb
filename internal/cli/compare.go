package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"azure-cost-planner/internal/catalog"
	"azure-cost-planner/internal/estimate"
)

func newCompareCommand(opts *rootOptions) *cobra.Command {
	var flags inputFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare one VM configuration across every region",
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

			cmp, err := estimate.NewBuilder(svc).Compare(req.VMSize, req.OS, req.Hours, req.Currency)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s, %d hours/month:\n", cmp.VMSize, cmp.OS, cmp.HoursPerMonth)
			t := newTable(out)
			t.AddHeader("REGION", "NAME", "HOURLY", "MONTHLY")
			for _, q := range cmp.Quotes {
				t.AddLine(q.Region, q.RegionName, q.HourlyDisplay, q.MonthlyDisplay)
			}
			t.Print()
			fmt.Fprintf(out, "Cheapest:       %s (%s) at %s/month\n", cmp.Cheapest.RegionName, cmp.Cheapest.Region, cmp.Cheapest.MonthlyDisplay)
			fmt.Fprintf(out, "Most expensive: %s (%s) at %s/month\n", cmp.MostExpensive.RegionName, cmp.MostExpensive.Region, cmp.MostExpensive.MonthlyDisplay)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.vmSize, "vm-size", "", "VM size (default: first catalog size)")
	cmd.Flags().StringVar(&flags.os, "os", string(catalog.Linux), osFlagUsage())
	cmd.Flags().IntVar(&flags.hours, "hours", estimate.DefaultHoursPerMonth, "usage hours per month (1-744)")
	return cmd
}
