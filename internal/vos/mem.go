// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package vos

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
)

var _ OS = (*Mem)(nil)

// ErrNoHome is returned by Mem.UserHomeDir when no home directory is set.
var ErrNoHome = errors.New("home directory is not set")

// Mem is an OS whose working directory lives in memory and whose directory
// checks go through an afero filesystem. Output is collected in buffers.
// It never changes the working directory of the real process.
type Mem struct {
	In   io.Reader
	Out  bytes.Buffer
	Err  bytes.Buffer
	Home string
	Env  []string

	cwd string
	fs  afero.Fs
}

// NewMem returns a Mem rooted at cwd on the given filesystem.
// A nil filesystem is replaced by an empty in-memory one.
func NewMem(fsys afero.Fs, cwd string) *Mem {
	if fsys == nil {
		fsys = afero.NewMemMapFs()
	}

	return &Mem{
		In:  bytes.NewReader(nil),
		cwd: filepath.Clean(cwd),
		fs:  fsys,
	}
}

// Stdin implements OS.
func (m *Mem) Stdin() io.Reader {
	return m.In
}

// Stdout implements OS.
func (m *Mem) Stdout() io.Writer {
	return &m.Out
}

// Stderr implements OS.
func (m *Mem) Stderr() io.Writer {
	return &m.Err
}

// Getwd implements OS.
func (m *Mem) Getwd() (string, error) {
	return m.cwd, nil
}

// Chdir implements OS. The target must be an existing directory on the
// Mem filesystem.
func (m *Mem) Chdir(dir string) error {
	target, err := Abs(m, dir)
	if err != nil {
		return err
	}

	info, err := m.fs.Stat(target)
	if err != nil {
		return &fs.PathError{Op: "chdir", Path: dir, Err: unwrapPathError(err)}
	}

	if !info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}

	m.cwd = target

	return nil
}

// UserHomeDir implements OS.
func (m *Mem) UserHomeDir() (string, error) {
	if m.Home == "" {
		return "", ErrNoHome
	}

	return m.Home, nil
}

// Environ implements OS. Without an explicit Env the host environment is
// used so that spawned children can still resolve PATH.
func (m *Mem) Environ() []string {
	if m.Env == nil {
		return os.Environ()
	}

	return m.Env
}

// Fs implements OS.
func (m *Mem) Fs() afero.Fs {
	return m.fs
}

func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
