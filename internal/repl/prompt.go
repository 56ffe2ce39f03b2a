// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"strings"

	"github.com/matt-FFFFFF/pipesh/internal/color"
	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
)

// Prompt renders "(<code>) <cwd> <marker> ". The code part is only shown
// when last carries a definite status. With styled set the marker is
// coloured if colour is enabled.
func Prompt(last exitstatus.Status, cwd, marker string, styled bool) string {
	var sb strings.Builder

	if !last.IsNone() {
		sb.WriteString("(")
		sb.WriteString(last.String())
		sb.WriteString(") ")
	}

	sb.WriteString(cwd)
	sb.WriteString(" ")
	if styled {
		sb.WriteString(color.Colorize(marker, color.Bold, color.FgGreen))
	} else {
		sb.WriteString(marker)
	}
	sb.WriteString(" ")

	return sb.String()
}
