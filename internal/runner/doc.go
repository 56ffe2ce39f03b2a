// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner executes parsed command lines.
//
// A line is one of five Runnable variants: a plain Command, a two stage
// Pipe, an Insert or Append output redirection, or the inert From marker.
// A Driver carries everything execution needs (builtins, the process
// launcher, the OS boundary and the pipe mode) and every Run returns an
// exitstatus.Status. Failures inside a pipe or a redirection map to their
// own sentinel status and are reported on the driver's stderr.
package runner
