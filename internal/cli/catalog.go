package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"azure-cost-planner/internal/catalog"
	"azure-cost-planner/internal/estimate"
	"azure-cost-planner/internal/format"
)

const hourlyPricePlaces = 4

func newCatalogCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the regions, VM sizes and hourly prices in the price catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load(cmd)
			if err != nil {
				return err
			}
			c := catalog.Default()
			out := cmd.OutOrStdout()

			regions := c.Regions()
			fmt.Fprintf(out, "%d regions:\n", len(regions))
			t := newTable(out)
			t.AddHeader("CODE", "NAME")
			for _, code := range regions {
				t.AddLine(code, format.RegionName(code))
			}
			t.Print()

			sizes := c.VMSizes()
			fmt.Fprintf(out, "\n%d VM sizes:\n", len(sizes))
			for _, size := range sizes {
				fmt.Fprintf(out, "  %s\n", size)
			}

			fmt.Fprintf(out, "\n%d hourly prices:\n", c.Len())
			prices := newTable(out)
			prices.AddHeader("REGION", "VM SIZE", "OS", "HOURLY")
			for _, e := range c.Entries() {
				prices.AddLine(e.Region, e.VMSize, e.OS, estimate.FormatMoney(cfg.Currency, e.HourlyPrice, hourlyPricePlaces))
			}
			prices.Print()
			return nil
		},
	}
}
