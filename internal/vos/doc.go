// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package vos is the boundary between the shell and the operating system.
// The working directory, the home directory, the standard streams and the
// filesystem are all reached through the OS interface so that the only
// process-wide mutable state (the current directory) is never touched
// behind the caller's back, and so that tests can substitute an in-memory
// implementation.
package vos
