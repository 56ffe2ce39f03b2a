// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrettyHandler(t *testing.T) {
	handler := NewPrettyHandler(nil)
	require.NotNil(t, handler)
	assert.NotNil(t, handler.h)
	assert.NotNil(t, handler.b)
	assert.NotNil(t, handler.m)
	assert.NotNil(t, handler.writer, "writer should default to stderr")
	assert.False(t, handler.colour)
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelInfo})
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer

	handler := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug},
		WithDestinationWriter(&buf), WithOutputEmptyAttrs())

	withAttrs, ok := handler.WithAttrs([]slog.Attr{slog.String("program", "ls")}).(*PrettyHandler)
	require.True(t, ok)
	assert.Same(t, handler.b, withAttrs.b, "buffer must be shared")
	assert.Same(t, handler.m, withAttrs.m, "mutex must be shared")
	assert.True(t, withAttrs.outputEmptyAttrs, "options must be kept")

	withGroup, ok := withAttrs.WithGroup("child").(*PrettyHandler)
	require.True(t, ok)

	logger := slog.New(withGroup)
	logger.Info("spawned", "pid", 42)

	out := buf.String()
	assert.Contains(t, out, `"program"`)
	assert.Contains(t, out, `"ls"`)
	assert.Contains(t, out, `"child"`)
	assert.Contains(t, out, "42")
}

func TestPrettyHandler_Handle(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		attrs   []any
		options []Option
		want    []string
		notWant []string
	}{
		{
			name:    "info without attributes",
			level:   slog.LevelInfo,
			want:    []string{"INFO:", "running line"},
			notWant: []string{"{"},
		},
		{
			name:  "debug with attributes",
			level: slog.LevelDebug,
			attrs: []any{"program", "wc", "status", 0},
			want:  []string{"DEBUG:", "running line", `"program"`, `"wc"`, `"status"`},
		},
		{
			name:    "empty attributes on request",
			level:   slog.LevelWarn,
			options: []Option{WithOutputEmptyAttrs()},
			want:    []string{"WARN:", "{}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			opts := append([]Option{WithDestinationWriter(&buf)}, tt.options...)
			handler := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug}, opts...)

			record := slog.NewRecord(time.Now(), tt.level, "running line", 0)
			record.Add(tt.attrs...)

			require.NoError(t, handler.Handle(context.Background(), record))

			out := buf.String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}

			for _, nw := range tt.notWant {
				assert.NotContains(t, out, nw)
			}

			assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
			assert.NotContains(t, out, "\033[", "no escape codes without colour")
		})
	}
}

func TestPrettyHandler_Colour(t *testing.T) {
	var buf bytes.Buffer

	handler := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug},
		WithDestinationWriter(&buf), WithColour())

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError, slog.LevelError + 2} {
		buf.Reset()
		require.NoError(t, handler.Handle(context.Background(), slog.NewRecord(time.Now(), level, "coloured", 0)))
		assert.Contains(t, buf.String(), "\033[", "level %v should be coloured", level)
	}
}

func TestPrettyHandler_ReplaceAttr(t *testing.T) {
	var buf bytes.Buffer

	replaceAttr := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}

		if a.Key == "secret" {
			return slog.String("secret", "[REDACTED]")
		}

		return a
	}

	handler := NewPrettyHandler(&slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: replaceAttr,
	}, WithDestinationWriter(&buf))

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "message", 0)
	record.Add("secret", "password123", "public", "data")

	require.NoError(t, handler.Handle(context.Background(), record))

	out := buf.String()
	assert.Contains(t, out, "[REDACTED]")
	assert.NotContains(t, out, "password123")
	assert.Contains(t, out, "public")
	assert.True(t, len(out) > 0 && out[0] == 'I', "time should be removed, got %q", out)
}

func TestPrettyHandler_Errors(t *testing.T) {
	t.Run("inner handler fails", func(t *testing.T) {
		handler := &PrettyHandler{h: &failingHandler{}, b: &bytes.Buffer{}, m: &sync.Mutex{}}

		_, err := handler.computeAttrs(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "x", 0))
		require.Error(t, err)
	})

	t.Run("writer fails", func(t *testing.T) {
		handler := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug},
			WithDestinationWriter(&failingWriter{}))

		err := handler.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "x", 0))
		require.ErrorIs(t, err, ErrIoWrite)
	})
}

func TestSuppressDefaults(t *testing.T) {
	next := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == "transform" {
			return slog.String("transform", "transformed")
		}

		return a
	}

	tests := []struct {
		name string
		next func([]string, slog.Attr) slog.Attr
		attr slog.Attr
		want slog.Attr
	}{
		{name: "time", attr: slog.Time(slog.TimeKey, time.Now()), want: slog.Attr{}},
		{name: "level", attr: slog.Any(slog.LevelKey, slog.LevelInfo), want: slog.Attr{}},
		{name: "message", attr: slog.String(slog.MessageKey, "m"), want: slog.Attr{}},
		{name: "custom", attr: slog.String("custom", "v"), want: slog.String("custom", "v")},
		{name: "time with next", next: next, attr: slog.Time(slog.TimeKey, time.Now()), want: slog.Attr{}},
		{name: "transform with next", next: next, attr: slog.String("transform", "o"), want: slog.String("transform", "transformed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suppressDefaults(tt.next)([]string{}, tt.attr)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

type failingHandler struct{}

func (h *failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("failing handler error")
}

func (h *failingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *failingHandler) WithGroup(string) slog.Handler { return h }

type failingWriter struct{}

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
