package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/seaward/marina"
	"github.com/seaward/marina/renderer"
)

type monthCmd struct {
	file string
}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "apply the monthly billing to every vessel" }
func (*monthCmd) Usage() string {
	return `bms month [-f <datafile>]

  Charges every vessel one month of fees: its length times the rate of its
  location category. There is no period tracking; run it once per month.
`
}

func (c *monthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the fleet data file.")
}

func (c *monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, err := resolveFile(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	fleet, err := openFleet(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	total := fleet.ApplyMonthlyFees()

	if err := marina.SaveFleet(path, fleet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BillingSummary(fleet.Len(), total))
	return subcommands.ExitSuccess
}
