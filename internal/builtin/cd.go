// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
)

// Cd changes the working directory. Without an argument it changes to the
// home directory. A leading ~ is replaced by the home directory.
func Cd(ctx context.Context, sys vos.OS, args []string) exitstatus.Status {
	var target string

	switch len(args) {
	case 1:
		home, err := sys.UserHomeDir()
		if err != nil {
			fmt.Fprintf(sys.Stderr(), "%s: cannot resolve home directory: %v\n", args[0], err) //nolint:errcheck
			return exitstatus.BuiltinError
		}

		target = home

	case 2:
		expanded, err := expandHome(sys, args[1])
		if err != nil {
			fmt.Fprintf(sys.Stderr(), "%s: cannot resolve home directory: %v\n", args[0], err) //nolint:errcheck
			return exitstatus.BuiltinError
		}

		target = expanded

	default:
		fmt.Fprintf(sys.Stderr(), "%s: too many arguments\n", args[0]) //nolint:errcheck
		return exitstatus.BuiltinError
	}

	ctxlog.Debug(ctx, "changing directory", "target", target)

	if err := sys.Chdir(target); err != nil {
		fmt.Fprintf(sys.Stderr(), "%s: cannot change directory: %v\n", args[0], err) //nolint:errcheck
		return exitstatus.BuiltinError
	}

	return exitstatus.Success
}

// expandHome replaces "~" and a "~/" prefix with the home directory.
// Other uses of ~ (e.g. ~user) are left untouched.
func expandHome(sys vos.OS, p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~`+string(filepath.Separator)) {
		return p, nil
	}

	home, err := sys.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, p[1:]), nil
}
