// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package vos

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

var _ OS = (*Host)(nil)

// Host is the OS implementation backed by the running process.
// Nil streams fall back to the process standard streams.
type Host struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	fs afero.Fs
}

// NewHost returns a Host using the process standard streams.
func NewHost() *Host {
	return &Host{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Stdin implements OS.
func (h *Host) Stdin() io.Reader {
	if h.In == nil {
		return os.Stdin
	}

	return h.In
}

// Stdout implements OS.
func (h *Host) Stdout() io.Writer {
	if h.Out == nil {
		return os.Stdout
	}

	return h.Out
}

// Stderr implements OS.
func (h *Host) Stderr() io.Writer {
	if h.Err == nil {
		return os.Stderr
	}

	return h.Err
}

// Getwd implements OS.
func (h *Host) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir implements OS.
func (h *Host) Chdir(dir string) error {
	return os.Chdir(dir)
}

// UserHomeDir implements OS.
func (h *Host) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Environ implements OS.
func (h *Host) Environ() []string {
	return os.Environ()
}

// Fs implements OS.
func (h *Host) Fs() afero.Fs {
	if h.fs == nil {
		h.fs = FsFactory()
	}

	return h.fs
}
