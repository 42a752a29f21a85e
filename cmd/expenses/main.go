// Command expenses is a terminal expense tracker. Expenses live in memory
// for the life of the process.
//
// Usage:
//
//	expenses [shell] [-markdown]
//	expenses run [-markdown] <file|-> ...
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"expenses/internal/cli"
)

func main() {
	completion().Complete(path.Base(os.Args[0]))

	cli.LoadEnvFile()
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commander.Register(&shellCmd{logger: logger}, "")
	commander.Register(&runCmd{logger: logger}, "")

	flag.Parse()
	if flag.NArg() == 0 {
		_ = flag.CommandLine.Parse([]string{"shell"})
	}

	ctx, stop := cli.GracefulShutdown(context.Background(), logger)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

// completion describes the command line for shell completion. Install it
// with COMP_INSTALL=1 expenses.
func completion() *complete.Command {
	markdown := map[string]complete.Predictor{"markdown": predict.Nothing}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"shell":    {Flags: markdown},
			"run":      {Flags: markdown, Args: predict.Or(predict.Files("*"), predict.Set{"-"})},
			"help":     {Args: predict.Set{"shell", "run", "help", "flags", "commands"}},
			"flags":    {},
			"commands": {},
		},
	}
}
