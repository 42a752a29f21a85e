package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"expenses/internal/cli"
	applog "expenses/internal/log"
	"expenses/internal/shell"
)

type runCmd struct {
	logger   *applog.Logger
	markdown bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute shell commands from files" }
func (*runCmd) Usage() string {
	return `expenses run [-markdown] <file|-> ...

  Executes the shell commands of each file in order, as one session. Use -
  to read commands from stdin. Blank lines and lines starting with # are
  ignored. Exits with a failure status if any command failed.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "markdown", false, "render listings as markdown tables")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one script is required")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig(c.logger, c.markdown)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	lines, err := shell.LoadScripts(ctx, f.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := cli.NewSession(cfg, c.logger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	failed, err := s.RunScript(ctx, lines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if failed > 0 {
		c.logger.Warn("Script finished with failures", "failed", failed, "commands", len(lines))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
