// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for the prompt and the
// console log handler.
//
// Color output honours the NO_COLOR and FORCE_COLOR environment variables
// and is otherwise only enabled when stdout is a terminal. SetEnabled
// overrides the detected value.
package color
