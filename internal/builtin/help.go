// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
)

func (r *Registry) help(_ context.Context, sys vos.OS, _ []string) exitstatus.Status {
	w := sys.Stdout()
	fmt.Fprintln(w, "These shell commands are defined internally.") //nolint:errcheck
	fmt.Fprintln(w)                                                //nolint:errcheck

	for _, name := range r.Names() {
		fmt.Fprintln(w, name) //nolint:errcheck
	}

	return exitstatus.Success
}
