// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
)

// Echo writes its arguments separated by single spaces, then a newline.
func Echo(_ context.Context, sys vos.OS, args []string) exitstatus.Status {
	fmt.Fprintln(sys.Stdout(), strings.Join(args[1:], " ")) //nolint:errcheck

	return exitstatus.Success
}
