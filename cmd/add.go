package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/seaward/marina"
)

type addCmd struct {
	file string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a vessel from a data file record" }
func (*addCmd) Usage() string {
	return `bms add [-f <datafile>] <record>

  Adds one vessel given as a five-field record, e.g.:

    bms add 'Serenity,32,slip,14,0.00'

  See 'bms topic file-format' for the record layout.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the fleet data file.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing the record to add.")
		return subcommands.ExitUsageError
	}
	// A quoted record arrives as one argument; an unquoted name with spaces
	// arrives as several. Joining restores the record either way.
	line := strings.Join(f.Args(), " ")

	v, err := marina.ParseVessel(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

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

	if err := fleet.Insert(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := marina.SaveFleet(path, fleet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %q to %s\n", v.Name, path)
	return subcommands.ExitSuccess
}
