// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parser turns lexed tokens into a single runner.Runnable.
//
// The grammar is small: words optionally followed by one marker. A pipe
// takes a second list of words, an insert or append takes exactly one
// filename word, and an input redirection makes the whole line inert.
// Anything else is a *Error carrying the offending token.
package parser
