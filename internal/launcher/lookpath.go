// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package launcher

import (
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/pipesh/internal/vos"
)

// lookPath resolves program to an executable path. Names containing a
// path separator are resolved against the working directory of sys,
// anything else is searched in the PATH of sys. Candidates are checked on
// sys.Fs(), so a vos.Mem with its own cwd and environment resolves the
// same way the host would.
func lookPath(sys vos.OS, program string) (string, error) {
	if program == "" {
		return "", ErrNotFound
	}

	if strings.ContainsRune(program, '/') || strings.ContainsRune(program, filepath.Separator) {
		p, err := vos.Abs(sys, program)
		if err != nil {
			return "", err
		}

		return findExecutable(sys, p)
	}

	env := sys.Environ()

	for _, dir := range filepath.SplitList(getenv(env, "PATH")) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}

		if !filepath.IsAbs(dir) {
			abs, err := vos.Abs(sys, dir)
			if err != nil {
				continue
			}

			dir = abs
		}

		if p, err := findExecutable(sys, filepath.Join(dir, program)); err == nil {
			return p, nil
		}
	}

	return "", ErrNotFound
}

// findExecutable checks p, and on Windows p with each PATHEXT extension.
func findExecutable(sys vos.OS, p string) (string, error) {
	candidates := []string{p}

	if runtime.GOOS == "windows" && filepath.Ext(p) == "" {
		exts := getenv(sys.Environ(), "PATHEXT")
		if exts == "" {
			exts = ".com;.exe;.bat;.cmd"
		}

		for _, ext := range filepath.SplitList(exts) {
			candidates = append(candidates, p+strings.ToLower(ext))
		}
	}

	var lastErr error = ErrNotFound

	for _, c := range candidates {
		info, err := sys.Fs().Stat(c)
		if err != nil {
			continue
		}

		if info.IsDir() {
			lastErr = fs.ErrPermission
			continue
		}

		if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
			lastErr = fs.ErrPermission
			continue
		}

		return c, nil
	}

	return "", lastErr
}

func getenv(env []string, key string) string {
	prefix := key + "="

	for i := len(env) - 1; i >= 0; i-- {
		if runtime.GOOS == "windows" {
			if len(env[i]) >= len(prefix) && strings.EqualFold(env[i][:len(prefix)], prefix) {
				return env[i][len(prefix):]
			}

			continue
		}

		if strings.HasPrefix(env[i], prefix) {
			return env[i][len(prefix):]
		}
	}

	return ""
}
