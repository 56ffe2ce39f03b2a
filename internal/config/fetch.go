// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
)

const (
	getterSubdirSeparator = "//"
	getterQuerySeparator  = "?"
	getterForcedSeparator = "::"
	schemeSeparator       = "://"
)

// ErrFetch is returned when a remote configuration cannot be retrieved.
var ErrFetch = errors.New("failed to fetch configuration")

// IsRemote reports whether src is a go-getter source rather than a local path.
func IsRemote(src string) bool {
	return strings.Contains(src, getterForcedSeparator) || strings.Contains(src, schemeSeparator)
}

// LoadSource loads configuration from a local path or, for remote sources,
// through go-getter. The source must exist.
func LoadSource(ctx context.Context, src string) (Config, error) {
	if !IsRemote(src) {
		return Load(ctx, src, true)
	}

	data, err := Fetch(ctx, src)
	if err != nil {
		return Default(), err
	}

	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", src, err)
	}

	return cfg, nil
}

// Fetch downloads the directory holding the file named by src with
// go-getter and returns the file contents. The file is addressed with the
// go-getter subdirectory syntax, e.g.
// "git::https://example.com/dotfiles.git//shell/pipesh.yaml?ref=main".
func Fetch(ctx context.Context, src string) ([]byte, error) {
	dirSrc, file := splitSource(src)
	if file == "" {
		return nil, fmt.Errorf("%w: no file in source %q", ErrFetch, src)
	}

	tmpDir, err := os.MkdirTemp("", "pipesh-config-*")
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	ctxlog.Debug(ctx, "fetching configuration", "source", dirSrc, "file", file)

	res, err := client.Get(ctx, &getter.Request{
		Src:     dirSrc,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	})
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, filepath.FromSlash(file)))
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	return data, nil
}

// splitSource splits a go-getter source naming a file into the source of
// the enclosing directory and the file name. The query is kept on the
// directory source. Sources without a subdirectory part give "", "".
func splitSource(src string) (string, string) {
	var query string

	if i := strings.Index(src, getterQuerySeparator); i >= 0 {
		src, query = src[:i], src[i:]
	}

	from := 0
	if i := strings.Index(src, schemeSeparator); i >= 0 {
		from = i + len(schemeSeparator)
	}

	i := strings.LastIndex(src[from:], getterSubdirSeparator)
	if i < 0 {
		return "", ""
	}

	i += from

	base, sub := src[:i], src[i+len(getterSubdirSeparator):]
	if sub == "" || strings.HasSuffix(sub, "/") {
		return "", ""
	}

	if dir := path.Dir(sub); dir != "." {
		base += getterSubdirSeparator + dir
	}

	return base + query, path.Base(sub)
}
