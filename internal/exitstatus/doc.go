// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package exitstatus defines the optional exit status returned by every
// executed command line, together with the reserved sentinel statuses used
// to tell pipeline and redirection failure points apart without parsing
// stderr.
package exitstatus
