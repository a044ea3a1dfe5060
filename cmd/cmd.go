// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// convertCommand is the explicit form of the root invocation
func convertCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a listens JSON export to TSV on stdout",
		ArgsUsage: "<listens.json>",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: r.Convert,
	}
}

// checkCommand reports accept/reject counts without emitting data lines
func checkCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Dry-run a conversion and report skip counts per reason",
		ArgsUsage: "<listens.json>",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the report as JSON",
			},
		},
		Action: r.Check,
	}
}

// statsCommand summarizes the listens a conversion would keep
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Summarize the listens that survive filtering",
		ArgsUsage: "<listens.json>",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the summary as JSON",
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "Number of top artists to include (0 uses the configured default)",
			},
		},
		Action: r.Stats,
	}
}
