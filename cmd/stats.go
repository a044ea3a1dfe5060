package main

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/veldhuis/lbx/internal/formatter"
)

// Stats implements the stats subcommand, summarizing only the records a
// conversion would keep.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
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

	topN := int(cmd.Int("top"))
	if topN <= 0 {
		topN = cfg.Output.TopArtists
	}

	summary, err := r.engine(cfg).Stats(file, topN)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(summary, true)
	}
	return r.writePlain("%s", formatter.RenderSummary(summary))
}
