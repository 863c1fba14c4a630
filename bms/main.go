package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/seaward/marina/cmd"
)

// completion describes the CLI for shell completion. It must run before
// flag.Parse: in completion mode it prints predictions and exits.
func completion() {
	subs := map[string]*complete.Command{
		"help":     {},
		"flags":    {},
		"commands": {},
	}
	for _, c := range cmd.Commands {
		subs[c.Name()] = &complete.Command{
			Flags: map[string]complete.Predictor{"f": predict.Files("*")},
		}
	}
	(&complete.Command{Sub: subs}).Complete("bms")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s <datafile> | %s <command> ...\n", commander.Name(), commander.Name())
		fmt.Fprintf(os.Stderr, "Run '%s help' for the list of commands.\n", commander.Name())
		os.Exit(1)
	}

	// A first argument that is not a command is a fleet file: run the
	// interactive session on it.
	if name := flag.Arg(0); name != "help" && name != "flags" && name != "commands" && !cmd.IsCommand(name) {
		os.Exit(cmd.RunSession(name))
	}

	os.Exit(int(commander.Execute(context.Background())))
}
