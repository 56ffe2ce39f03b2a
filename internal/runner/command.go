// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
)

// Command is a single program or builtin invocation.
// Args[0] is the name, the rest are passed through unchanged.
type Command struct {
	Args []string
}

// NewCommand creates a command from its words.
func NewCommand(args ...string) *Command {
	return &Command{Args: args}
}

func (*Command) runnable() {}

// IsEmpty reports whether the command has no words.
func (c *Command) IsEmpty() bool {
	return c == nil || len(c.Args) == 0
}

// Name returns the program or builtin name, or "" for an empty command.
func (c *Command) Name() string {
	if c.IsEmpty() {
		return ""
	}

	return c.Args[0]
}

// String implements fmt.Stringer.
func (c *Command) String() string {
	if c.IsEmpty() {
		return ""
	}

	return joinArgs(c.Args)
}

// Run executes a builtin in process or launches a program.
// An empty command succeeds without doing anything.
func (c *Command) Run(ctx context.Context, d *Driver, cfg RunConfig) exitstatus.Status {
	if c.IsEmpty() {
		return exitstatus.Success
	}

	if fn, ok := d.Builtins.Lookup(c.Name()); ok {
		ctxlog.Debug(ctx, "running builtin", "name", c.Name(), "args", c.Args[1:])
		return fn(ctx, d.OS, c.Args)
	}

	return d.Launcher.RunToCompletion(ctx, c.Name(), c.Args[1:], cfg)
}
