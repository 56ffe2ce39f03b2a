// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repl is the interactive read loop of the shell.
//
// Each line read from the line editor is parsed and executed, and the
// resulting status is shown in the next prompt. The loop also loads and
// saves the line editor history.
package repl
