// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package builtin provides the commands that run inside the shell process
// rather than as child processes, and the registry used to find them.
package builtin
