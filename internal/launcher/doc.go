// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package launcher starts child processes with a chosen standard stream
// configuration and maps their termination to an exit status.
//
// Each of stdin and stdout is independently inherited from the shell,
// piped to the caller, or attached to an explicit file. Stderr is always
// inherited. Children are never retried, timed out or cancelled.
package launcher
