// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import "github.com/urfave/cli/v3"

const (
	commandFlag     = "command"
	configFlag      = "config"
	pipeModeFlag    = "pipe-mode"
	historyFileFlag = "history-file"
	noHistoryFlag   = "no-history"
	noColorFlag     = "no-color"
	logLevelFlag    = "log-level"
)

// Flags are the flags of the root command. The config subcommand inherits
// the ones that affect configuration.
var Flags = NewFlags()

// NewFlags returns a fresh set of root command flags.
func NewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     commandFlag,
			Aliases:  []string{"c"},
			Usage:    "Execute LINE and exit with its status",
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name: configFlag,
			Usage: "Read configuration from FILE instead of ~/.pipesh.yaml. " +
				"Sources in Hashicorp's go-getter syntax are fetched, " +
				"e.g. git::https://example.com/dotfiles.git//pipesh.yaml",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:     pipeModeFlag,
			Usage:    "How pipe stages are connected: buffered or streaming",
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:      historyFileFlag,
			Usage:     "Load and save history in FILE",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.BoolFlag{
			Name:        noHistoryFlag,
			Usage:       "Do not load or save history",
			DefaultText: "false",
			Value:       false,
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        noColorFlag,
			Usage:       "Disable colour in the prompt",
			DefaultText: "false",
			Value:       false,
			OnlyOnce:    true,
		},
		&cli.StringFlag{
			Name:     logLevelFlag,
			Usage:    "Log level: debug, info, warn or error. Overrides PIPESH_LOG_LEVEL",
			OnlyOnce: true,
		},
	}
}
