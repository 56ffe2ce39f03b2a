// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package builtin

func platformTable() Table {
	return Table{
		"ls": List,
	}
}
