// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/launcher"
)

// RunConfig selects how stdin and stdout of the executed line are connected.
type RunConfig = launcher.Config

// Runnable is a parsed command line. The set of implementations is closed:
// *Command, *Pipe, *Insert, *Append and *From.
type Runnable interface {
	fmt.Stringer
	// Run executes the node and returns its exit status.
	Run(ctx context.Context, d *Driver, cfg RunConfig) exitstatus.Status
	runnable()
}

var (
	_ Runnable = (*Command)(nil)
	_ Runnable = (*Pipe)(nil)
	_ Runnable = (*Insert)(nil)
	_ Runnable = (*Append)(nil)
	_ Runnable = (*From)(nil)
)

// quoteArg renders a word so that lexing it again gives back the same word.
func quoteArg(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\r\"\\|<>") {
		return s
	}

	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for i := range len(s) {
		switch s[i] {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteByte(s[i])
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

func joinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = quoteArg(a)
	}

	return strings.Join(quoted, " ")
}
