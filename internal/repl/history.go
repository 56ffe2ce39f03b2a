// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
)

// loadHistory reads the history file into the editor. A missing file is
// announced and created on save.
func (r *REPL) loadHistory(ctx context.Context) {
	if r.opts.HistoryPath == "" {
		return
	}

	f, err := r.sys.Fs().Open(r.opts.HistoryPath)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(r.sys.Stdout(), "No previous history, creating history in %s\n", r.opts.HistoryPath) //nolint:errcheck
		return
	}

	if err != nil {
		fmt.Fprintf(r.sys.Stderr(), "pipesh: cannot read history: %v\n", err) //nolint:errcheck
		return
	}

	defer f.Close() //nolint:errcheck

	n, err := r.editor.ReadHistory(f)
	if err != nil {
		fmt.Fprintf(r.sys.Stderr(), "pipesh: cannot read history: %v\n", err) //nolint:errcheck
	}

	ctxlog.Debug(ctx, "loaded history", "path", r.opts.HistoryPath, "entries", n)
}

// saveHistory writes the editor history, replacing the file. With a
// HistoryLimit only the most recent entries are kept.
func (r *REPL) saveHistory(ctx context.Context) {
	if r.opts.HistoryPath == "" {
		return
	}

	var buf bytes.Buffer

	n, err := r.editor.WriteHistory(&buf)
	if err != nil {
		fmt.Fprintf(r.sys.Stderr(), "pipesh: cannot save history: %v\n", err) //nolint:errcheck
		return
	}

	data := buf.Bytes()
	if r.opts.HistoryLimit > 0 && n > r.opts.HistoryLimit {
		data, n = lastLines(data, r.opts.HistoryLimit), r.opts.HistoryLimit
	}

	f, err := r.sys.Fs().OpenFile(r.opts.HistoryPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, historyPerm)
	if err != nil {
		fmt.Fprintf(r.sys.Stderr(), "pipesh: cannot save history: %v\n", err) //nolint:errcheck
		return
	}

	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		fmt.Fprintf(r.sys.Stderr(), "pipesh: cannot save history: %v\n", err) //nolint:errcheck
		return
	}

	ctxlog.Debug(ctx, "saved history", "path", r.opts.HistoryPath, "entries", n)
}

// lastLines returns the last n newline terminated lines of data.
func lastLines(data []byte, n int) []byte {
	end := len(data)
	if end > 0 && data[end-1] == '\n' {
		end--
	}

	for i := end - 1; i >= 0; i-- {
		if data[i] != '\n' {
			continue
		}

		n--
		if n == 0 {
			return data[i+1:]
		}
	}

	return data
}
