// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
	"github.com/spf13/afero"
)

// Statuses reported by List.
var (
	ListReadFailed = exitstatus.Code(2)
	ListNotDir     = exitstatus.Code(6)
)

// List prints the entries of the working directory. It is only registered
// on platforms without a native ls.
func List(ctx context.Context, sys vos.OS, args []string) exitstatus.Status {
	dir, err := sys.Getwd()
	if err != nil {
		fmt.Fprintf(sys.Stderr(), "%s: %v\n", args[0], err) //nolint:errcheck
		return exitstatus.BuiltinError
	}

	fsys := sys.Fs()

	isDir, err := afero.IsDir(fsys, dir)
	if err != nil || !isDir {
		fmt.Fprintf(sys.Stderr(), "%s: given path is not a directory\n", args[0]) //nolint:errcheck
		return ListNotDir
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		ctxlog.Debug(ctx, "read dir failed", "dir", dir, "error", err)
		fmt.Fprintf(sys.Stderr(), "%s: %v\n", args[0], err) //nolint:errcheck

		return ListReadFailed
	}

	w := sys.Stdout()
	fmt.Fprintf(w, "\t%s >\n", dir) //nolint:errcheck
	listEntry(w, true, ".")
	listEntry(w, true, "..")

	for _, entry := range entries {
		listEntry(w, entry.IsDir(), entry.Name())
	}

	return exitstatus.Success
}

func listEntry(w io.Writer, isDir bool, name string) {
	kind := "File"
	if isDir {
		kind = "Dir "
	}

	fmt.Fprintf(w, "%s :\t%s\n", kind, name) //nolint:errcheck
}
