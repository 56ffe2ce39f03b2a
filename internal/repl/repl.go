// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/launcher"
	"github.com/matt-FFFFFF/pipesh/internal/parser"
	"github.com/matt-FFFFFF/pipesh/internal/runner"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
	"github.com/peterh/liner"
)

const (
	historyPerm = 0o600
	// maxReadErrors is the number of consecutive line editor failures
	// after which the loop gives up.
	maxReadErrors = 5
	unknownCwd    = "?"
)

// ErrLineEditor is returned when the line editor keeps failing.
var ErrLineEditor = errors.New("line editor failed")

// LineEditor reads lines and keeps their history. *liner.State satisfies it.
type LineEditor interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

var _ LineEditor = (*liner.State)(nil)

// StyledPrompter is implemented by line editors that can display escape
// sequences in the prompt. liner rejects control characters in a prompt,
// so editors without it get a plain one.
type StyledPrompter interface {
	StyledPrompt() bool
}

// Options configures the read loop.
type Options struct {
	// HistoryPath is the history file. Empty disables history.
	HistoryPath string
	// HistoryLimit caps the saved entries, 0 keeps what the editor holds.
	HistoryLimit int
	// PromptMarker ends the prompt.
	PromptMarker string
	// ExitKeyword is the command word that ends the loop.
	ExitKeyword string
}

// REPL is the interactive read loop.
type REPL struct {
	editor LineEditor
	driver *runner.Driver
	sys    vos.OS
	opts   Options
	last   exitstatus.Status
}

// New creates a read loop executing lines with driver.
func New(editor LineEditor, driver *runner.Driver, opts Options) *REPL {
	if opts.PromptMarker == "" {
		opts.PromptMarker = ">>"
	}

	if opts.ExitKeyword == "" {
		opts.ExitKeyword = "exit"
	}

	return &REPL{
		editor: editor,
		driver: driver,
		sys:    driver.OS,
		opts:   opts,
		last:   exitstatus.None,
	}
}

// Run reads and executes lines until the exit keyword, Ctrl-C or Ctrl-D.
// History is loaded first and saved on the way out.
func (r *REPL) Run(ctx context.Context) error {
	r.loadHistory(ctx)
	defer r.saveHistory(ctx)

	failures := 0

	for {
		line, err := r.editor.Prompt(r.prompt())

		switch {
		case err == nil:
			failures = 0
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(r.sys.Stdout(), "CTRL-C") //nolint:errcheck
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.sys.Stdout(), "CTRL-D") //nolint:errcheck
			return nil
		default:
			failures++

			fmt.Fprintf(r.sys.Stderr(), "Error reading line: %v\n", err) //nolint:errcheck

			if failures >= maxReadErrors {
				return errors.Join(ErrLineEditor, err)
			}

			continue
		}

		if done := r.Step(ctx, line); done {
			return nil
		}
	}
}

// Step parses and executes one line. It reports whether the line was the
// exit keyword. Lines starting with a space are not added to history.
func (r *REPL) Step(ctx context.Context, line string) bool {
	runnable, err := parser.ParseLine(line)
	if err != nil {
		ctxlog.Debug(ctx, "parse failed", "line", line, "error", err)
		fmt.Fprintf(r.sys.Stderr(), "Error occurred in command: %v\n", err) //nolint:errcheck

		return false
	}

	if cmd, ok := runnable.(*runner.Command); ok {
		if cmd.IsEmpty() {
			return false
		}

		if cmd.Name() == r.opts.ExitKeyword {
			return true
		}
	}

	if !strings.HasPrefix(line, " ") {
		r.editor.AppendHistory(line)
	}
	r.last = r.driver.Execute(ctx, runnable, launcher.DefaultConfig())

	return false
}

// Last returns the status of the previous line that has not been shown in
// a prompt yet.
func (r *REPL) Last() exitstatus.Status {
	return r.last
}

// prompt renders the prompt and consumes the last status.
func (r *REPL) prompt() string {
	cwd, err := r.sys.Getwd()
	if err != nil {
		cwd = unknownCwd
	}

	sp, ok := r.editor.(StyledPrompter)
	p := Prompt(r.last, cwd, r.opts.PromptMarker, ok && sp.StyledPrompt())
	r.last = exitstatus.None

	return p
}
