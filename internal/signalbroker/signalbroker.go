// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker keeps terminal interrupts from ending the shell.
//
// While a broker is active, os.Interrupt and SIGQUIT delivered to the shell
// process are received on a channel and logged instead of terminating it.
// The foreground child still receives the signal from the terminal.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
)

var interactiveSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGQUIT,
}

// New creates a channel receiving the given signals, by default the
// interactive interrupt signals.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = interactiveSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Start absorbs the interactive signals until the returned stop function
// is called. Stop restores default signal handling.
func Start(ctx context.Context) (stop func()) {
	ch := New(ctx)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Absorb(ctx, ch)
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(ch)
			wg.Wait()
			ctxlog.Debug(ctx, "signalbroker", "detail", "stopped")
		})
	}
}
