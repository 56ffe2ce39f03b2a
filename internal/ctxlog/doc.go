// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog logger in a context.Context.
//
// The default logger is a pretty console handler on stderr. Its level comes
// from the PIPESH_LOG_LEVEL environment variable (DEBUG, INFO, WARN or
// ERROR), anything else means WARN.
package ctxlog
