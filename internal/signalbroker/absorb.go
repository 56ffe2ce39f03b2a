// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
)

// Absorb drains sigCh until it is closed, logging every signal.
// It returns the number of signals received.
func Absorb(ctx context.Context, sigCh <-chan os.Signal) int {
	n := 0

	for sig := range sigCh {
		n++

		ctxlog.Debug(ctx, "signalbroker", "detail", "absorbed signal", "signal", sig.String(), "count", n)
	}

	return n
}
