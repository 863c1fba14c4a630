package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/seaward/marina/renderer"
)

type listCmd struct {
	file string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the fleet inventory" }
func (*listCmd) Usage() string {
	return `bms list [-f <datafile>]

  Lists every vessel in the fleet, in name order.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the fleet data file.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.Fleet(fleet))
	return subcommands.ExitSuccess
}
