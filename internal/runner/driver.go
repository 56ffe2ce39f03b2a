// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/pipesh/internal/builtin"
	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/launcher"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
)

// ErrUnknownPipeMode is returned by ParsePipeMode for an unrecognised name.
var ErrUnknownPipeMode = errors.New("unknown pipe mode")

// PipeMode selects how the two stages of a pipe are connected.
type PipeMode int

const (
	// PipeBuffered runs the left stage to completion, collecting all its
	// output in memory, before the right stage is started.
	PipeBuffered PipeMode = iota
	// PipeStreaming runs both stages at the same time connected by an
	// operating system pipe.
	PipeStreaming
)

// String implements fmt.Stringer.
func (m PipeMode) String() string {
	switch m {
	case PipeBuffered:
		return "buffered"
	case PipeStreaming:
		return "streaming"
	}

	return "unknown"
}

// ParsePipeMode converts "buffered" or "streaming" to a PipeMode.
// The empty string means PipeBuffered.
func ParsePipeMode(s string) (PipeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "buffered":
		return PipeBuffered, nil
	case "streaming":
		return PipeStreaming, nil
	}

	return PipeBuffered, fmt.Errorf("%w: %q", ErrUnknownPipeMode, s)
}

// Driver executes runnables against an OS.
type Driver struct {
	Builtins *builtin.Registry
	Launcher *launcher.Launcher
	OS       vos.OS
	PipeMode PipeMode
}

// NewDriver creates a driver for sys. A nil registry means builtin.Default().
func NewDriver(sys vos.OS, builtins *builtin.Registry, mode PipeMode) *Driver {
	if builtins == nil {
		builtins = builtin.Default()
	}

	return &Driver{
		Builtins: builtins,
		Launcher: launcher.New(sys),
		OS:       sys,
		PipeMode: mode,
	}
}

// Execute runs r with cfg and returns its status.
func (d *Driver) Execute(ctx context.Context, r Runnable, cfg RunConfig) exitstatus.Status {
	logger := ctxlog.Logger(ctx).With("line", r.String())
	ctx = ctxlog.New(ctx, logger)

	logger.Debug("executing", "pipe_mode", d.PipeMode.String())

	status := r.Run(ctx, d, cfg)

	logger.Debug("executed", "status", status.String())

	return status
}

// fail reports a failure on stderr and returns status.
func (d *Driver) fail(ctx context.Context, status exitstatus.Status, format string, args ...any) exitstatus.Status {
	msg := fmt.Sprintf(format, args...)

	ctxlog.Debug(ctx, "execution failed", "reason", msg, "status", status.String())
	d.diagnose(msg)

	return status
}

// diagnose writes a one line message to stderr.
func (d *Driver) diagnose(msg string) {
	fmt.Fprintf(d.OS.Stderr(), "pipesh: %s\n", msg) //nolint:errcheck
}
