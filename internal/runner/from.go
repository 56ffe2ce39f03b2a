// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"

	"github.com/matt-FFFFFF/pipesh/internal/ctxlog"
	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
)

// From is the input redirection marker. It is recognised but has no effect.
type From struct{}

func (*From) runnable() {}

// String implements fmt.Stringer.
func (*From) String() string {
	return "<"
}

// Run does nothing and returns exitstatus.None.
func (*From) Run(ctx context.Context, _ *Driver, _ RunConfig) exitstatus.Status {
	ctxlog.Debug(ctx, "input redirection is not supported, ignoring line")
	return exitstatus.None
}
