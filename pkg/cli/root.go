/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/flavorfinds/flavorfinds/pkg/api"
	"github.com/flavorfinds/flavorfinds/pkg/logging"
)

const (
	name = "flavorfinds"

	envDataDir     = "FLAVORFINDS_DATA_DIR"
	envCORSOrigins = "FLAVORFINDS_CORS_ORIGINS"
)

// serve is replaced in tests.
var serve = api.Serve

// Execute runs the root command with the process arguments.
// This is called by main.main().
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().Run(ctx, os.Args)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "FlavorFinds recipe site",
		Version:               api.Version(),
		EnableShellCompletion: true,
		Description: `Serves the FlavorFinds single-page site together with its JSON API.

The server binds the first free port of 8000-8004, 8080 and 8081 on 127.0.0.1.
Feedback is stored in feedback.json inside the data directory.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Value:   api.DefaultDataDir,
				Usage:   "Directory holding feedback.json (created when missing)",
				Sources: cli.EnvVars(envDataDir),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.StringSliceFlag{
				Name:    "cors-origin",
				Usage:   "Origin allowed to call the API cross-site (repeatable)",
				Sources: cli.EnvVars(envCORSOrigins),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return serve(ctx, optionsFromCmd(cmd))
		},
	}
}

func optionsFromCmd(cmd *cli.Command) api.Options {
	return api.Options{
		DataDir:        cmd.String("data-dir"),
		LogLevel:       cmd.String("log-level"),
		AllowedOrigins: cmd.StringSlice("cors-origin"),
	}
}
