// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell is the action of the root command: the interactive shell
// or, with --command, the execution of a single line.
package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/pipesh/internal/builtin"
	"github.com/matt-FFFFFF/pipesh/internal/color"
	"github.com/matt-FFFFFF/pipesh/internal/config"
	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/launcher"
	"github.com/matt-FFFFFF/pipesh/internal/parser"
	"github.com/matt-FFFFFF/pipesh/internal/repl"
	"github.com/matt-FFFFFF/pipesh/internal/runner"
	"github.com/matt-FFFFFF/pipesh/internal/signalbroker"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const (
	// ExitParseError is the exit code of --command for a line that does not parse.
	ExitParseError = 2
	cliExitStr     = ""
)

// ErrInvalidFlag is returned for a flag with an unusable value.
var ErrInvalidFlag = errors.New("invalid flag value")

// Settings is the resolved configuration of a session.
type Settings struct {
	Config config.Config
	// HistoryPath is the history file, empty when history is disabled.
	HistoryPath string
}

// Resolve loads the configuration file and applies the flags on top.
func Resolve(ctx context.Context, cmd *cli.Command, sys vos.OS) (Settings, error) {
	var (
		cfg config.Config
		err error
	)

	home, homeErr := sys.UserHomeDir()

	switch src := cmd.String(configFlag); {
	case src != "":
		cfg, err = config.LoadSource(ctx, src)
	case homeErr == nil:
		cfg, err = config.Load(ctx, config.DefaultPath(home), false)
	default:
		ctxlog.Debug(ctx, "no home directory, using default configuration", "error", homeErr)
		cfg = config.Default()
	}

	if err != nil {
		return Settings{}, err
	}

	if cmd.IsSet(pipeModeFlag) {
		cfg.PipeMode = cmd.String(pipeModeFlag)
	}

	if cmd.IsSet(historyFileFlag) {
		cfg.HistoryFile = cmd.String(historyFileFlag)
	}

	if err := cfg.Validate(); err != nil {
		return Settings{}, errors.Join(ErrInvalidFlag, err)
	}

	s := Settings{Config: cfg}

	if !cmd.Bool(noHistoryFlag) {
		s.HistoryPath = cfg.HistoryPath(home)
		if homeErr != nil && s.HistoryPath != cfg.HistoryFile {
			ctxlog.Debug(ctx, "history disabled, no home directory", "error", homeErr)
			s.HistoryPath = ""
		}
	}

	return s, nil
}

// Action runs the shell.
func Action(ctx context.Context, cmd *cli.Command) error {
	if lvl := cmd.String(logLevelFlag); lvl != "" {
		level, ok := ctxlog.ParseLevel(lvl)
		if !ok {
			return cli.Exit(fmt.Sprintf("%v: --%s %q", ErrInvalidFlag, logLevelFlag, lvl), 1)
		}

		ctxlog.LevelVar.Set(level)
	}

	if cmd.Bool(noColorFlag) {
		color.SetEnabled(false)
	}

	sys := vos.NewHost()

	s, err := Resolve(ctx, cmd, sys)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	d := runner.NewDriver(sys, builtin.Default(), s.Config.Mode())

	if cmd.IsSet(commandFlag) {
		if code := RunLine(ctx, d, cmd.String(commandFlag), s.Config.ExitKeyword); code != 0 {
			return cli.Exit(cliExitStr, code)
		}

		return nil
	}

	if err := interactive(ctx, d, s); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

// RunLine parses and executes one line and returns the process exit code.
// A line without a status exits 0, a line that does not parse exits
// ExitParseError. The exit keyword does nothing.
func RunLine(ctx context.Context, d *runner.Driver, line, exitKeyword string) int {
	r, err := parser.ParseLine(line)
	if err != nil {
		fmt.Fprintf(d.OS.Stderr(), "Error occurred in command: %v\n", err) //nolint:errcheck
		return ExitParseError
	}

	if c, ok := r.(*runner.Command); ok && c.Name() == exitKeyword {
		return 0
	}

	code, ok := d.Execute(ctx, r, launcher.DefaultConfig()).Code()
	if !ok {
		return 0
	}

	return code
}

func interactive(ctx context.Context, d *runner.Driver, s Settings) error {
	line := liner.NewLiner()

	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetWordCompleter(repl.FilenameCompleter(d.OS))

	stop := signalbroker.Start(ctx)
	defer stop()

	return repl.New(line, d, repl.Options{
		HistoryPath:  s.HistoryPath,
		HistoryLimit: s.Config.HistoryLimit,
		PromptMarker: s.Config.Prompt,
		ExitKeyword:  s.Config.ExitKeyword,
	}).Run(ctx)
}
