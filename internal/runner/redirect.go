// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
	"github.com/spf13/afero"
)

const targetPerm = 0o644

// Insert writes the output of Cmd to Target, replacing its contents.
type Insert struct {
	Cmd    *Command
	Target string
}

func (*Insert) runnable() {}

// String implements fmt.Stringer.
func (i *Insert) String() string {
	return redirectString(i.Cmd, ">", i.Target)
}

// Run executes the command and writes its output to the target.
func (i *Insert) Run(ctx context.Context, d *Driver, cfg RunConfig) exitstatus.Status {
	return redirect(ctx, d, cfg, i.Cmd, i.Target, os.O_TRUNC)
}

// Append writes the output of Cmd to the end of Target.
type Append struct {
	Cmd    *Command
	Target string
}

func (*Append) runnable() {}

// String implements fmt.Stringer.
func (a *Append) String() string {
	return redirectString(a.Cmd, ">>", a.Target)
}

// Run executes the command and appends its output to the target.
func (a *Append) Run(ctx context.Context, d *Driver, cfg RunConfig) exitstatus.Status {
	return redirect(ctx, d, cfg, a.Cmd, a.Target, os.O_APPEND)
}

func redirectString(c *Command, marker, target string) string {
	if c.IsEmpty() {
		return marker + " " + quoteArg(target)
	}

	return c.String() + " " + marker + " " + quoteArg(target)
}

// redirect runs c with stdout captured, then writes the captured bytes to
// target opened with os.O_CREATE|os.O_WRONLY|mode.
func redirect(ctx context.Context, d *Driver, cfg RunConfig, c *Command, target string, mode int) exitstatus.Status {
	logger := ctxlog.Logger(ctx).With("target", target)

	if c.IsEmpty() {
		f, err := openTarget(d.OS, target, mode)
		if err != nil {
			return d.fail(ctx, exitstatus.RedirectOpen, "cannot open %s: %v", target, err)
		}

		if err := f.Close(); err != nil {
			return d.fail(ctx, exitstatus.RedirectWrite, "cannot write %s: %v", target, err)
		}

		return exitstatus.Success
	}

	if d.Builtins.IsBuiltin(c.Name()) {
		return d.fail(ctx, exitstatus.RedirectBuiltin, "%s: builtin output cannot be redirected", c.Name())
	}

	child, err := d.Launcher.Spawn(ctx, c.Name(), c.Args[1:], cfg.CaptureStdout())
	if err != nil {
		logger.Debug("redirected command did not start", "error", err)
		return exitstatus.RedirectSpawn
	}

	status, err := child.Wait()
	if err != nil {
		return d.fail(ctx, exitstatus.RedirectWait, "cannot wait for %s: %v", c.Name(), err)
	}

	data := child.Output()

	f, err := openTarget(d.OS, target, mode)
	if err != nil {
		return d.fail(ctx, exitstatus.RedirectOpen, "cannot open %s: %v", target, err)
	}

	if err := writeAndClose(f, data); err != nil {
		return d.fail(ctx, exitstatus.RedirectWrite, "cannot write %s: %v", target, err)
	}

	logger.Debug("redirected output", "bytes", len(data))

	return status
}

func openTarget(sys vos.OS, target string, mode int) (afero.File, error) {
	p, err := vos.Abs(sys, target)
	if err != nil {
		return nil, err
	}

	return sys.Fs().OpenFile(p, os.O_CREATE|os.O_WRONLY|mode, targetPerm)
}

func writeAndClose(f afero.File, data []byte) error {
	_, err := f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}
