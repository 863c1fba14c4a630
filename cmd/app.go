// Package cmd implements the CLI application to manage a marina fleet.
package cmd

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/seaward/marina"
)

// Commands lists the subcommands.
// A main package will register them on a Commander and Execute the user-selected one.
var Commands = []subcommands.Command{
	&listCmd{},
	&addCmd{},
	&removeCmd{},
	&payCmd{},
	&monthCmd{},
	&topicCmd{},
}

// IsCommand reports whether name is a registered subcommand.
func IsCommand(name string) bool {
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// logger carries warnings and lifecycle diagnostics to stderr, keeping stdout
// for prompts and reports.
var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}).With().Timestamp().Logger()

// openFleet loads the fleet stored at path. A missing file is not an error:
// the session starts empty and the file is created on save.
func openFleet(path string) (*marina.Fleet, error) {
	fleet, err := marina.LoadFleet(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("file", path).Msg("fleet file does not exist, starting with an empty fleet")
		return marina.NewFleet(), nil
	}
	return fleet, err
}

// resolveFile picks the data file: the -f flag wins, then the configuration.
func resolveFile(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if f := App().File; f != "" {
		return f, nil
	}
	return "", errors.New("no data file: pass -f or set `file` in the config")
}
