package main

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/veldhuis/lbx/internal/shared"
)

// initCommand writes the embedded example configuration to disk for editing.
func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example config.toml to edit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path for the config file",
				Value:   "config.toml",
			},
		},
		Action: r.Init,
	}
}

// Init implements the init subcommand.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	return r.writePlain("Wrote %s\n", path)
}
