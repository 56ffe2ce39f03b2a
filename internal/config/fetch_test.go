// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSource(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantDir  string
		wantFile string
	}{
		{
			name:     "file at repository root",
			src:      "git::https://example.com/dotfiles.git//pipesh.yaml",
			wantDir:  "git::https://example.com/dotfiles.git",
			wantFile: "pipesh.yaml",
		},
		{
			name:     "file in subdirectory with ref",
			src:      "git::https://example.com/dotfiles.git//shell/pipesh.yaml?ref=v1.2.0",
			wantDir:  "git::https://example.com/dotfiles.git//shell?ref=v1.2.0",
			wantFile: "pipesh.yaml",
		},
		{
			name:     "github shorthand",
			src:      "github.com/user/dotfiles//conf/pipesh.yaml",
			wantDir:  "github.com/user/dotfiles//conf",
			wantFile: "pipesh.yaml",
		},
		{
			name: "no subdirectory part",
			src:  "https://example.com/pipesh.yaml",
		},
		{
			name: "directory instead of file",
			src:  "git::https://example.com/dotfiles.git//shell/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, file := splitSource(tt.src)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantFile, file)
		})
	}
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("git::https://example.com/x.git//a.yaml"))
	assert.True(t, IsRemote("s3://bucket/a.yaml"))
	assert.False(t, IsRemote("/home/user/.pipesh.yaml"))
	assert.False(t, IsRemote("relative/pipesh.yaml"))
}

func TestFetch_InvalidSource(t *testing.T) {
	_, err := Fetch(context.Background(), "https://example.com/pipesh.yaml")
	require.ErrorIs(t, err, ErrFetch)
}

func TestLoadSource_Local(t *testing.T) {
	stubFs(t, map[string]string{"/conf/pipesh.yaml": "exit_keyword: bye\n"})

	cfg, err := LoadSource(context.Background(), "/conf/pipesh.yaml")
	require.NoError(t, err)
	assert.Equal(t, "bye", cfg.ExitKeyword)

	_, err = LoadSource(context.Background(), "/conf/missing.yaml")
	require.ErrorIs(t, err, ErrReadFile)
}
