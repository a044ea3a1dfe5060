package main

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/veldhuis/lbx/internal/formatter"
)

// Check implements the check subcommand: the convert filter as a dry run,
// reporting how many records each skip reason would discard.
func (r *Runner) Check(ctx context.Context, cmd *cli.Command) error {
	r.applyVerbosity(cmd)

	file := cmd.StringArg("file")
	if file == "" || cmd.Args().Len() > 0 {
		cli.ShowSubcommandHelp(cmd)
		return cli.Exit("", 1)
	}

	cfg, err := r.resolveConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	report, err := r.engine(cfg).Check(file)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(report, true)
	}
	return r.writePlain("%s", formatter.RenderReport(report))
}
