package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/seaward/marina"
	"github.com/seaward/marina/renderer"
)

type payCmd struct {
	file string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment against a vessel's balance" }
func (*payCmd) Usage() string {
	return `bms pay [-f <datafile>] <name> <amount>

  Records a payment. The amount must be strictly less than the outstanding
  balance; a payment covering the full balance is rejected.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the fleet data file.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a vessel name and an amount.")
		return subcommands.ExitUsageError
	}
	args := f.Args()
	name := strings.Join(args[:len(args)-1], " ")
	amount := marina.ParseMoney(args[len(args)-1], marina.DefaultCurrency)

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

	if err := fleet.RecordPayment(name, amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := marina.SaveFleet(path, fleet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	v, err := fleet.Find(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Receipt(v, amount))
	return subcommands.ExitSuccess
}
