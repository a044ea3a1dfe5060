package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/veldhuis/lbx/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	if err := buildApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// buildApp assembles the command tree. The root action is the bare
// `lbx <listens.json>` invocation; everything else is a named subcommand.
func buildApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "lbx",
		Usage:     "Convert ListenBrainz listen history JSON into tab-separated values",
		Version:   "0.1.0",
		ArgsUsage: "<listens.json>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging on stderr",
			},
		},
		Action:   r.Root,
		Commands: r.register(),
	}
}
