// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
)

// Pwd writes the working directory.
func Pwd(_ context.Context, sys vos.OS, args []string) exitstatus.Status {
	wd, err := sys.Getwd()
	if err != nil {
		fmt.Fprintf(sys.Stderr(), "%s: cannot obtain working directory: %v\n", args[0], err) //nolint:errcheck
		return exitstatus.BuiltinError
	}

	fmt.Fprintln(sys.Stdout(), wd) //nolint:errcheck

	return exitstatus.Success
}
