// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lexer splits a command line into word tokens and structural
// markers.
//
// Words are runs of non-whitespace characters, or double-quoted strings in
// which \" \\ and \n are the only recognised escapes. The reserved markers
// are | (pipe), > (insert), >> (append) and < (from).
package lexer
