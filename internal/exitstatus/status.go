// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package exitstatus

import "strconv"

// Status is an optional exit code. The zero value is None.
type Status struct {
	code  int
	valid bool
}

// None means no exit code is available, e.g. the process was killed by a
// signal or the executed node has no effect.
var None = Status{}

// Code returns a definite status with the given exit code.
func Code(n int) Status {
	return Status{code: n, valid: true}
}

// Sentinel statuses. Each failure point has its own value.
var (
	Success = Code(0)

	BuiltinError = Code(1)

	LaunchFailed = Code(101)
	WaitFailed   = Code(102)

	PipeBuiltin    = Code(110)
	PipeLeftSpawn  = Code(111)
	PipeLeftWait   = Code(112)
	PipeRightSpawn = Code(113)
	PipeWrite      = Code(114)
	PipeRightWait  = Code(115)

	RedirectBuiltin = Code(120)
	RedirectSpawn   = Code(121)
	RedirectWait    = Code(122)
	RedirectOpen    = Code(123)
	RedirectWrite   = Code(124)
)

// Code returns the exit code and whether one is available.
func (s Status) Code() (int, bool) {
	return s.code, s.valid
}

// IsNone reports whether no exit code is available.
func (s Status) IsNone() bool {
	return !s.valid
}

// IsSuccess reports whether the status is a definite zero.
func (s Status) IsSuccess() bool {
	return s.valid && s.code == 0
}

// String returns the exit code as text, or "none".
func (s Status) String() string {
	if !s.valid {
		return "none"
	}

	return strconv.Itoa(s.code)
}
