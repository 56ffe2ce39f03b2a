// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"maps"
	"slices"

	"github.com/matt-FFFFFF/pipesh/internal/exitstatus"
	"github.com/matt-FFFFFF/pipesh/internal/vos"
)

// Func is an in-process command. args[0] is the builtin name.
// Side effects are limited to writes on the sys streams and changes to the
// sys working directory.
type Func func(ctx context.Context, sys vos.OS, args []string) exitstatus.Status

// Table maps builtin names to their implementation.
type Table map[string]Func

// Registry holds the builtins known to the shell. Platform builtins are
// consulted before portable ones so a platform can shadow a portable name.
type Registry struct {
	platform Table
	portable Table
}

// New creates a registry from a platform table and a portable table.
// Either may be nil.
func New(platform, portable Table) *Registry {
	if platform == nil {
		platform = make(Table)
	}

	if portable == nil {
		portable = make(Table)
	}

	return &Registry{
		platform: platform,
		portable: portable,
	}
}

// Default returns the registry with the portable builtins and the builtins
// of the current platform.
func Default() *Registry {
	r := New(platformTable(), Table{
		"echo": Echo,
		"cd":   Cd,
		"pwd":  Pwd,
	})
	r.Register("help", r.help)

	return r
}

// Register adds or replaces a portable builtin.
func (r *Registry) Register(name string, fn Func) {
	r.portable[name] = fn
}

// Lookup returns the builtin registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	if r == nil {
		return nil, false
	}

	if fn, ok := r.platform[name]; ok {
		return fn, true
	}

	fn, ok := r.portable[name]

	return fn, ok
}

// IsBuiltin reports whether name resolves to a builtin.
func (r *Registry) IsBuiltin(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	names := slices.Collect(maps.Keys(r.portable))
	for name := range maps.Keys(r.platform) {
		if _, ok := r.portable[name]; !ok {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}
