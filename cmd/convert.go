package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Root implements the bare `lbx <listens.json>` invocation. Anything other
// than exactly one path argument prints the usage text and exits non-zero
// without producing data output.
func (r *Runner) Root(ctx context.Context, cmd *cli.Command) error {
	r.applyVerbosity(cmd)

	if cmd.Args().Len() != 1 {
		cli.ShowAppHelp(cmd)
		return cli.Exit("", 1)
	}

	return r.convert(cmd.Args().First(), "")
}

// Convert implements the convert subcommand.
func (r *Runner) Convert(ctx context.Context, cmd *cli.Command) error {
	r.applyVerbosity(cmd)

	file := cmd.StringArg("file")
	if file == "" || cmd.Args().Len() > 0 {
		cli.ShowSubcommandHelp(cmd)
		return cli.Exit("", 1)
	}

	return r.convert(file, cmd.String("config"))
}

func (r *Runner) convert(path, configPath string) error {
	cfg, err := r.resolveConfig(configPath)
	if err != nil {
		return err
	}

	report, err := r.engine(cfg).Convert(path, r.output)
	if err != nil {
		return err
	}

	r.logger.Debug("conversion complete", "records", report.Total, "rows", report.Kept)
	return nil
}
