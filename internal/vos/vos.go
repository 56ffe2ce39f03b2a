// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package vos

import (
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// OS provides the operating system facilities used by builtins, the
// process launcher and redirections.
type OS interface {
	// Stdin returns the stream inherited by child processes as input.
	Stdin() io.Reader
	// Stdout returns the stream builtins and inheriting children write to.
	Stdout() io.Writer
	// Stderr returns the stream diagnostics are written to.
	Stderr() io.Writer
	// Getwd returns the current working directory.
	Getwd() (string, error)
	// Chdir changes the current working directory.
	Chdir(dir string) error
	// UserHomeDir returns the home directory of the current user.
	UserHomeDir() (string, error)
	// Environ returns the environment passed to child processes.
	Environ() []string
	// Fs returns the filesystem used for redirection targets and listings.
	Fs() afero.Fs
}

// Abs resolves p against the working directory of sys.
func Abs(sys OS, p string) (string, error) {
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}

	wd, err := sys.Getwd()
	if err != nil {
		return "", err
	}

	return filepath.Join(wd, p), nil
}
