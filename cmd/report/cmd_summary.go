package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/narrative"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the aggregates and written summary for a filter",
	Example: `  report summary --day Monday
  report summary --day Friday --corridor 1 --bank dki --bank emoney`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	res, err := buildDashboard(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	return printSummary(cmd.OutOrStdout(), res.Dashboard)
}

func printSummary(out io.Writer, d *domain.Dashboard) error {
	f := d.Filter
	fmt.Fprintf(out, "Filter: day=%s corridor=%s banks=%v\n", f.Day, f.Corridor, f.Banks)
	fmt.Fprintf(out, "Transactions: %d\n\n", d.TotalRows)

	if d.Empty {
		fmt.Fprintln(out, "No transactions match the selected filters.")
		fmt.Fprintln(out)
		_, err := fmt.Fprint(out, d.Narrative.Text)
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "HOUR\tTRANSACTIONS")
	for _, c := range d.Hourly.Counts {
		fmt.Fprintf(tw, "%s\t%d\n", narrative.FormatHour(c.Hour), c.Count)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "RANK\tCORRIDOR\tTRANSACTIONS")
	for i, r := range d.Routes.Top {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i+1, r.Corridor, r.Count)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "PAYMENT\tTRANSACTIONS")
	for _, p := range d.Payments.Counts {
		fmt.Fprintf(tw, "%s\t%d\n", p.Name, p.Count)
	}
	fmt.Fprintln(tw)

	if c := d.Locations.Center; c != nil {
		fmt.Fprintf(tw, "Map center\t%.5f, %.5f\t(%d trips with coordinates)\n", c.Lat, c.Lon, d.Locations.ValidRows)
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprint(out, d.Narrative.Text)
	return err
}
