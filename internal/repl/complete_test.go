// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/matt-FFFFFF/pipesh/internal/vos"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenameCompleter(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("paths in this table are POSIX")
	}

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/home/user/src", 0o755))
	require.NoError(t, fsys.MkdirAll("/tmp", 0o755))

	for _, f := range []string{
		"/home/user/notes.txt",
		"/home/user/notebook.md",
		"/home/user/.profile",
		"/home/user/src/main.go",
		"/tmp/log.txt",
	} {
		require.NoError(t, afero.WriteFile(fsys, f, nil, 0o644))
	}

	sys := vos.NewMem(fsys, "/home/user")
	sys.Home = "/home/user"
	sep := string(filepath.Separator)

	tests := []struct {
		name     string
		line     string
		pos      int
		wantHead string
		want     []string
		wantTail string
	}{
		{name: "prefix in cwd", line: "cat note", pos: 8, wantHead: "cat ", want: []string{"notebook.md", "notes.txt"}},
		{name: "directory gets separator", line: "cd s", pos: 4, wantHead: "cd ", want: []string{"src" + sep}},
		{name: "inside a directory", line: "cat src/m", pos: 9, wantHead: "cat ", want: []string{"src/main.go"}},
		{name: "absolute", line: "cat /tmp/l", pos: 10, wantHead: "cat ", want: []string{"/tmp/log.txt"}},
		{name: "home", line: "cat ~/.p", pos: 8, wantHead: "cat ", want: []string{"~/.profile"}},
		{name: "hidden only on dot", line: "ls ", pos: 3, wantHead: "ls ", want: []string{"notebook.md", "notes.txt", "src" + sep}},
		{name: "after redirect", line: "echo x >n", pos: 9, wantHead: "echo x >", want: []string{"notebook.md", "notes.txt"}},
		{name: "cursor mid line", line: "cat no | wc", pos: 6, wantHead: "cat ", want: []string{"notebook.md", "notes.txt"}, wantTail: " | wc"},
		{name: "missing directory", line: "cat nope/x", pos: 10, wantHead: "cat "},
		{name: "no match", line: "cat zzz", pos: 7, wantHead: "cat "},
	}

	complete := FilenameCompleter(sys)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head, got, tail := complete(tt.line, tt.pos)
			assert.Equal(t, tt.wantHead, head)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTail, tail)
		})
	}
}

func TestStep_HistoryIgnoresLeadingSpace(t *testing.T) {
	tests := []struct {
		line     string
		recorded bool
	}{
		{line: "echo kept", recorded: true},
		{line: " echo secret", recorded: false},
		{line: "echo  spaced  ", recorded: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			editor := &fakeEditor{}
			r, _ := newTestREPL(t, editor, "")

			r.Step(t.Context(), tt.line)

			if tt.recorded {
				assert.Equal(t, []string{tt.line}, editor.history)
			} else {
				assert.Empty(t, editor.history)
			}
		})
	}
}
