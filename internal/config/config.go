// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/runner"
	"github.com/spf13/afero"
)

const (
	// DefaultFileName is the name of the configuration file in the home directory.
	DefaultFileName = ".pipesh.yaml"
	// DefaultHistoryFileName is the name of the history file in the home directory.
	DefaultHistoryFileName = ".pipesh_history"
	// DefaultHistoryLimit is the number of history entries kept by default.
	DefaultHistoryLimit = 1000
	// DefaultPromptMarker ends the prompt.
	DefaultPromptMarker = ">>"
	// DefaultExitKeyword leaves the shell.
	DefaultExitKeyword = "exit"
)

var (
	// ErrInvalidConfig is returned when the configuration has invalid values.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidYaml is returned when the configuration file cannot be decoded.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrReadFile is returned when the configuration file cannot be read.
	ErrReadFile = errors.New("failed to read configuration file")
)

// Config is the shell configuration.
type Config struct {
	// PipeMode is "buffered" or "streaming".
	PipeMode string `yaml:"pipe_mode"`
	// HistoryFile is the path of the history file. A leading ~ is the home directory.
	HistoryFile string `yaml:"history_file"`
	// HistoryLimit is the maximum number of remembered lines, 0 for the line editor default.
	HistoryLimit int `yaml:"history_limit"`
	// Prompt is the marker printed at the end of the prompt.
	Prompt string `yaml:"prompt"`
	// ExitKeyword is the command word that leaves the shell.
	ExitKeyword string `yaml:"exit_keyword"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{
		PipeMode:     runner.PipeBuffered.String(),
		HistoryFile:  filepath.Join("~", DefaultHistoryFileName),
		HistoryLimit: DefaultHistoryLimit,
		Prompt:       DefaultPromptMarker,
		ExitKeyword:  DefaultExitKeyword,
	}
}

// DefaultPath returns the configuration file path in home.
func DefaultPath(home string) string {
	return filepath.Join(home, DefaultFileName)
}

// Load reads the configuration at path on top of the defaults.
// A missing file is only an error when required is set.
func Load(ctx context.Context, path string, required bool) (Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			ctxlog.Debug(ctx, "no configuration file", "path", path)
			return cfg, nil
		}

		return cfg, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}

	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	ctxlog.Debug(ctx, "loaded configuration", "path", path, "pipe_mode", cfg.PipeMode,
		"history_file", cfg.HistoryFile, "history_limit", cfg.HistoryLimit)

	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Default(), fmt.Errorf("%w: %v", ErrInvalidYaml, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Validate checks every field and reports all problems together.
func (c Config) Validate() error {
	var err error

	if _, perr := runner.ParsePipeMode(c.PipeMode); perr != nil {
		err = multierror.Append(err, fmt.Errorf("pipe_mode: %w", perr))
	}

	if c.HistoryLimit < 0 {
		err = multierror.Append(err, fmt.Errorf("history_limit: must not be negative, got %d", c.HistoryLimit))
	}

	if strings.ContainsAny(c.Prompt, "\r\n") {
		err = multierror.Append(err, errors.New("prompt: must be a single line"))
	}

	if c.ExitKeyword == "" || strings.ContainsAny(c.ExitKeyword, " \t\r\n\"|<>") {
		err = multierror.Append(err, fmt.Errorf("exit_keyword: must be a single plain word, got %q", c.ExitKeyword))
	}

	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}

// Mode returns the pipe mode. Validate must have succeeded.
func (c Config) Mode() runner.PipeMode {
	m, _ := runner.ParsePipeMode(c.PipeMode)
	return m
}

// HistoryPath returns HistoryFile with a leading ~ replaced by home.
func (c Config) HistoryPath(home string) string {
	p := c.HistoryFile

	switch {
	case p == "~":
		return home
	case strings.HasPrefix(p, "~/"), strings.HasPrefix(p, `~\`):
		return filepath.Join(home, p[2:])
	}

	return p
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
