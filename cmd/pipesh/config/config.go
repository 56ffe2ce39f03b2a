// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config provides the config subcommand, which prints the
// effective configuration.
package config

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/pipesh/cmd/pipesh/shell"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
	"github.com/urfave/cli/v3"
)

// ConfigCmd is the command that prints the effective configuration as YAML.
var ConfigCmd = &cli.Command{
	Name:      "config",
	Usage:     "Print the effective configuration",
	UsageText: "pipesh [--config FILE] config",
	Description: `Print the configuration pipesh would use, after the configuration file
and the flags given before the subcommand have been applied.
The output is valid input for --config.`,
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	s, err := shell.Resolve(ctx, cmd, vos.NewHost())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out, err := s.Config.Marshal()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	_, err = fmt.Fprint(cmd.Root().Writer, string(out))

	return err
}
