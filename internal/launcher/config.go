// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package launcher

import "os"

// StreamMode describes how a child's standard stream is connected.
type StreamMode int

const (
	// Inherit connects the stream to the shell's own stream.
	Inherit StreamMode = iota
	// Piped connects the stream to the caller: stdout is captured into a
	// buffer, stdin is exposed as a writer.
	Piped
	// Attached connects the stream to an explicit file.
	Attached
)

// String implements fmt.Stringer.
func (m StreamMode) String() string {
	switch m {
	case Inherit:
		return "inherit"
	case Piped:
		return "piped"
	case Attached:
		return "attached"
	}

	return "unknown"
}

// Config selects how stdin and stdout of a child are connected.
// The zero value inherits both.
type Config struct {
	Stdin  StreamMode
	Stdout StreamMode
	// StdinFile is used when Stdin is Attached.
	StdinFile *os.File
	// StdoutFile is used when Stdout is Attached.
	StdoutFile *os.File
}

// DefaultConfig inherits both streams.
func DefaultConfig() Config {
	return Config{}
}

// CaptureStdout returns a copy of c with stdout piped.
func (c Config) CaptureStdout() Config {
	c.Stdout = Piped
	c.StdoutFile = nil

	return c
}

// PipeStdin returns a copy of c with stdin piped.
func (c Config) PipeStdin() Config {
	c.Stdin = Piped
	c.StdinFile = nil

	return c
}

// AttachStdin returns a copy of c with stdin read from f.
func (c Config) AttachStdin(f *os.File) Config {
	c.Stdin = Attached
	c.StdinFile = f

	return c
}

// AttachStdout returns a copy of c with stdout written to f.
func (c Config) AttachStdout(f *os.File) Config {
	c.Stdout = Attached
	c.StdoutFile = f

	return c
}
