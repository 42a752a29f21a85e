package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"expenses/internal/cli"
	"expenses/internal/config"
	applog "expenses/internal/log"
	"expenses/internal/render"
)

type shellCmd struct {
	logger   *applog.Logger
	markdown bool
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive expense tracker (default)" }
func (*shellCmd) Usage() string {
	return `expenses shell [-markdown]

  Starts an interactive session. Type 'help' at the prompt for the list of
  commands. Expenses are discarded when the session ends.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "markdown", false, "render listings as markdown tables")
}

func (c *shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(c.logger, c.markdown)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := cli.NewSession(cfg, c.logger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	c.logger.Info("Shell started", applog.FieldOperation, applog.OpStartup)
	if err := s.Run(ctx, os.Stdin); err != nil {
		c.logger.Info("Shell interrupted", applog.FieldOperation, applog.OpShutdown, applog.FieldError, err)
	}
	return subcommands.ExitSuccess
}

func loadConfig(logger *applog.Logger, markdown bool) (*config.Config, error) {
	cfg, err := cli.LoadAndValidateConfig(logger)
	if err != nil {
		return nil, err
	}
	if markdown {
		cfg.RenderMode = string(render.Markdown)
	}
	return cfg, nil
}
