// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/pipesh/internal/color"
	"github.com/matt-FFFFFF/pipesh/internal/runner"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
	"github.com/peterh/liner"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

// styledEditor is a fakeEditor that can display escape sequences.
type styledEditor struct {
	fakeEditor
}

func (*styledEditor) StyledPrompt() bool {
	return true
}

func TestRun_StyledPromptOnlyForCapableEditors(t *testing.T) {
	orig := color.Enabled()
	defer color.SetEnabled(orig)

	color.SetEnabled(true)

	sys := vos.NewMem(afero.NewMemMapFs(), "/")
	d := runner.NewDriver(sys, nil, runner.PipeBuffered)

	plain := &fakeEditor{inputs: lines("exit")}
	require.NoError(t, New(plain, d, Options{}).Run(context.Background()))
	assert.Equal(t, []string{"/ >> "}, plain.prompts)

	styled := &styledEditor{fakeEditor{inputs: lines("exit")}}
	require.NoError(t, New(styled, d, Options{}).Run(context.Background()))
	require.Len(t, styled.prompts, 1)
	assert.Contains(t, styled.prompts[0], "\033[")
}

// TestRun_Liner drives a real liner state with colour enabled. With stdin
// redirected liner reads lines from os.Stdin without touching the terminal.
func TestRun_Liner(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal, liner would take it over")
	}

	orig := color.Enabled()
	defer color.SetEnabled(orig)

	color.SetEnabled(true)

	r, w, err := os.Pipe()
	require.NoError(t, err)

	_, err = w.WriteString("echo hi\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	stdin := os.Stdin
	os.Stdin = r

	defer func() {
		os.Stdin = stdin
		_ = r.Close()
	}()

	line := liner.NewLiner()
	defer line.Close() //nolint:errcheck

	sys := vos.NewMem(afero.NewMemMapFs(), "/")
	rl := New(line, runner.NewDriver(sys, nil, runner.PipeBuffered), Options{})

	require.NoError(t, rl.Run(context.Background()))
	assert.True(t, strings.HasPrefix(sys.Out.String(), "hi\n"), sys.Out.String())
	assert.NotContains(t, sys.Err.String(), "Error reading line")
}
