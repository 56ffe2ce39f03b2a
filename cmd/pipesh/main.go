// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the pipesh command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/pipesh"
	"github.com/matt-FFFFFF/pipesh/cmd/pipesh/config"
	"github.com/matt-FFFFFF/pipesh/cmd/pipesh/shell"
	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		config.ConfigCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "pipesh",
	Description: `pipesh is a small interactive shell. It runs builtins and programs,
connects two programs with a pipe and redirects output to files with > and >>.
Without --command it reads lines interactively, with line editing and history.`,
	Usage:     "pipesh [-c LINE]",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	Flags:  shell.Flags,
	Action: shell.Action,
}

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", pipesh.Version, pipesh.Commit)

	if err := rootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
