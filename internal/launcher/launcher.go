// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrNotFound is returned when the executable could not be located.
	ErrNotFound = errors.New("executable file not found")
	// ErrWaitFailed is returned when waiting on the process failed.
	ErrWaitFailed = errors.New("could not wait for process")
	// ErrStdinNotPiped is returned by Child.Stdin when stdin was not piped.
	ErrStdinNotPiped = errors.New("stdin is not piped")
	// ErrNoAttachedFile is returned when an Attached stream has no file.
	ErrNoAttachedFile = errors.New("attached stream has no file")
)

// LaunchError is returned when a program could not be started.
type LaunchError struct {
	Program string
	Err     error
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Program, e.Err)
}

// Unwrap returns the underlying error.
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Launcher starts child processes in the working directory and environment
// of an OS.
type Launcher struct {
	sys vos.OS
}

// New creates a Launcher for sys.
func New(sys vos.OS) *Launcher {
	return &Launcher{sys: sys}
}

// Spawn starts program with args (not including the program name).
// Start failures are reported on stderr and returned as *LaunchError.
func (l *Launcher) Spawn(ctx context.Context, program string, args []string, cfg Config) (*Child, error) {
	logger := ctxlog.Logger(ctx).With("program", program)

	path, err := lookPath(l.sys, program)
	if err != nil {
		return nil, l.launchFailed(ctx, program, err)
	}

	dir, err := l.sys.Getwd()
	if err != nil {
		return nil, l.launchFailed(ctx, program, err)
	}

	if (cfg.Stdin == Attached && cfg.StdinFile == nil) || (cfg.Stdout == Attached && cfg.StdoutFile == nil) {
		return nil, l.launchFailed(ctx, program, ErrNoAttachedFile)
	}

	cmd := exec.Command(path, args...)
	cmd.Args[0] = program
	cmd.Dir = dir
	cmd.Env = l.sys.Environ()
	cmd.Stderr = l.sys.Stderr()

	child := &Child{Program: program, cmd: cmd}

	switch cfg.Stdin {
	case Piped:
		w, err := cmd.StdinPipe()
		if err != nil {
			return nil, l.launchFailed(ctx, program, err)
		}

		child.stdin = w
	case Attached:
		cmd.Stdin = cfg.StdinFile
	default:
		cmd.Stdin = l.sys.Stdin()
	}

	switch cfg.Stdout {
	case Piped:
		child.stdout = &bytes.Buffer{}
		cmd.Stdout = child.stdout
	case Attached:
		cmd.Stdout = cfg.StdoutFile
	default:
		cmd.Stdout = l.sys.Stdout()
	}

	logger.Debug("starting process", "path", path, "cwd", dir, "args", args,
		"stdin", cfg.Stdin.String(), "stdout", cfg.Stdout.String())

	if err := cmd.Start(); err != nil {
		child.closeStdin()
		return nil, l.launchFailed(ctx, program, err)
	}

	logger.Debug("process started", "pid", cmd.Process.Pid)

	return child, nil
}

// RunToCompletion spawns program, waits for it and returns its status.
// A piped stdin is closed straight away.
func (l *Launcher) RunToCompletion(ctx context.Context, program string, args []string, cfg Config) exitstatus.Status {
	child, err := l.Spawn(ctx, program, args, cfg)
	if err != nil {
		return exitstatus.LaunchFailed
	}

	child.closeStdin()

	status, err := child.Wait()
	if err != nil {
		fmt.Fprintf(l.sys.Stderr(), "pipesh: cannot wait for %s: %v\n", program, err) //nolint:errcheck
		return exitstatus.WaitFailed
	}

	ctxlog.Debug(ctx, "process finished", "program", program, "status", status.String())

	return status
}

func (l *Launcher) launchFailed(ctx context.Context, program string, cause error) error {
	ctxlog.Debug(ctx, "launch failed", "program", program, "error", cause)
	fmt.Fprintf(l.sys.Stderr(), "pipesh: %s failed to start: %v\n", program, cause) //nolint:errcheck

	if !errors.Is(cause, ErrCouldNotStartProcess) {
		cause = errors.Join(ErrCouldNotStartProcess, cause)
	}

	return &LaunchError{Program: program, Err: cause}
}

// Child is a started process.
type Child struct {
	Program string
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  *bytes.Buffer
}

// Pid returns the operating system process id.
func (c *Child) Pid() int {
	return c.cmd.Process.Pid
}

// Stdin returns the writer connected to a piped stdin.
// The caller must close it so the child sees end of input.
func (c *Child) Stdin() (io.WriteCloser, error) {
	if c.stdin == nil {
		return nil, ErrStdinNotPiped
	}

	return c.stdin, nil
}

// Output returns everything the child wrote to a piped stdout.
// It is complete once Wait has returned.
func (c *Child) Output() []byte {
	if c.stdout == nil {
		return nil
	}

	return c.stdout.Bytes()
}

// Wait waits for the child to exit. A child killed by a signal has no exit
// code and yields exitstatus.None. The error is only set when the operating
// system could not report on the child.
func (c *Child) Wait() (exitstatus.Status, error) {
	err := c.cmd.Wait()
	if err == nil {
		return exitstatus.Code(c.cmd.ProcessState.ExitCode()), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return exitstatus.None, nil
		}

		return exitstatus.Code(code), nil
	}

	return exitstatus.None, errors.Join(ErrWaitFailed, err)
}

func (c *Child) closeStdin() {
	if c.stdin != nil {
		_ = c.stdin.Close()
	}
}
