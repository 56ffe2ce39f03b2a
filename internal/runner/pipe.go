// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"os"
	"syscall"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/launcher"
)

// Pipe connects the stdout of From to the stdin of To.
type Pipe struct {
	From *Command
	To   *Command
}

func (*Pipe) runnable() {}

// String implements fmt.Stringer.
func (p *Pipe) String() string {
	left, right := p.From.String(), p.To.String()

	switch {
	case left == "":
		return "| " + right
	case right == "":
		return left + " |"
	}

	return left + " | " + right
}

// Run executes both stages and returns the status of the right stage.
// A missing stage is reported and the other stage runs on its own.
// Builtins cannot take part in a pipe.
func (p *Pipe) Run(ctx context.Context, d *Driver, cfg RunConfig) exitstatus.Status {
	switch {
	case p.From.IsEmpty() && p.To.IsEmpty():
		d.diagnose("missing command on both sides of |")
		return exitstatus.Success
	case p.From.IsEmpty():
		d.diagnose("missing command before |, running " + p.To.Name() + " on its own")
		return p.To.Run(ctx, d, launcher.DefaultConfig())
	case p.To.IsEmpty():
		d.diagnose("missing command after |, running " + p.From.Name() + " on its own")
		return p.From.Run(ctx, d, launcher.DefaultConfig())
	}

	for _, c := range []*Command{p.From, p.To} {
		if d.Builtins.IsBuiltin(c.Name()) {
			return d.fail(ctx, exitstatus.PipeBuiltin, "%s: builtins cannot be used in a pipe", c.Name())
		}
	}

	if d.PipeMode == PipeStreaming {
		return p.runStreaming(ctx, d, cfg)
	}

	return p.runBuffered(ctx, d, cfg)
}

// runBuffered drains the left stage completely before the right stage is
// started.
func (p *Pipe) runBuffered(ctx context.Context, d *Driver, cfg RunConfig) exitstatus.Status {
	left, err := d.Launcher.Spawn(ctx, p.From.Name(), p.From.Args[1:], cfg.CaptureStdout())
	if err != nil {
		ctxlog.Debug(ctx, "left stage did not start", "error", err)
		return exitstatus.PipeLeftSpawn
	}

	if _, err := left.Wait(); err != nil {
		return d.fail(ctx, exitstatus.PipeLeftWait, "cannot wait for %s: %v", p.From.Name(), err)
	}

	data := left.Output()
	ctxlog.Debug(ctx, "left stage finished", "pid", left.Pid(), "bytes", len(data))

	right, err := d.Launcher.Spawn(ctx, p.To.Name(), p.To.Args[1:], cfg.PipeStdin())
	if err != nil {
		ctxlog.Debug(ctx, "right stage did not start", "error", err)
		return exitstatus.PipeRightSpawn
	}

	ctxlog.Debug(ctx, "feeding right stage", "pid", right.Pid(), "bytes", len(data))

	writeErr := feed(right, data)

	status, err := right.Wait()
	if err != nil {
		return d.fail(ctx, exitstatus.PipeRightWait, "cannot wait for %s: %v", p.To.Name(), err)
	}

	if writeErr != nil {
		return d.fail(ctx, exitstatus.PipeWrite, "cannot write to %s: %v", p.To.Name(), writeErr)
	}

	return status
}

// feed writes data to the child's stdin and closes it. A child that exits
// without reading all of its input is not an error.
func feed(c *launcher.Child, data []byte) error {
	w, err := c.Stdin()
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed) {
		err = nil
	}

	if cerr := w.Close(); err == nil && cerr != nil && !errors.Is(cerr, syscall.EPIPE) && !errors.Is(cerr, os.ErrClosed) {
		err = cerr
	}

	return err
}

// runStreaming runs both stages at once, joined by an OS pipe.
func (p *Pipe) runStreaming(ctx context.Context, d *Driver, cfg RunConfig) exitstatus.Status {
	r, w, err := os.Pipe()
	if err != nil {
		return d.fail(ctx, exitstatus.PipeWrite, "cannot create pipe: %v", err)
	}

	left, err := d.Launcher.Spawn(ctx, p.From.Name(), p.From.Args[1:], cfg.AttachStdout(w))
	_ = w.Close()

	if err != nil {
		_ = r.Close()

		ctxlog.Debug(ctx, "left stage did not start", "error", err)

		return exitstatus.PipeLeftSpawn
	}

	right, err := d.Launcher.Spawn(ctx, p.To.Name(), p.To.Args[1:], cfg.AttachStdin(r))
	_ = r.Close()

	if err != nil {
		ctxlog.Debug(ctx, "right stage did not start", "error", err)

		// The left stage gets EPIPE or SIGPIPE now that the read end is gone.
		if _, werr := left.Wait(); werr != nil {
			ctxlog.Debug(ctx, "cannot reap left stage", "error", werr)
		}

		return exitstatus.PipeRightSpawn
	}

	ctxlog.Debug(ctx, "stages started", "left_pid", left.Pid(), "right_pid", right.Pid())

	_, leftErr := left.Wait()

	status, rightErr := right.Wait()

	if leftErr != nil {
		return d.fail(ctx, exitstatus.PipeLeftWait, "cannot wait for %s: %v", p.From.Name(), leftErr)
	}

	if rightErr != nil {
		return d.fail(ctx, exitstatus.PipeRightWait, "cannot wait for %s: %v", p.To.Name(), rightErr)
	}

	return status
}
