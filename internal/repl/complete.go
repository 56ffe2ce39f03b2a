// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/pipesh/internal/vos"
	"github.com/peterh/liner"
	"github.com/spf13/afero"
)

// wordBreaks end the word being completed.
const wordBreaks = " \t\"|<>"

// FilenameCompleter completes the word under the cursor as a path on
// sys.Fs(), relative to the working directory of sys. A leading ~/ is the
// home directory and directories complete with a trailing separator.
// Hidden entries are only offered once the word starts with a dot.
func FilenameCompleter(sys vos.OS) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		runes := []rune(line)
		if pos < 0 || pos > len(runes) {
			pos = len(runes)
		}

		before, tail := string(runes[:pos]), string(runes[pos:])
		start := strings.LastIndexAny(before, wordBreaks) + 1

		return before[:start], completePath(sys, before[start:]), tail
	}
}

func completePath(sys vos.OS, word string) []string {
	seps := "/" + string(filepath.Separator)
	dirPart, base := "", word

	if i := strings.LastIndexAny(word, seps); i >= 0 {
		dirPart, base = word[:i+1], word[i+1:]
	}

	dir := dirPart
	if dir == "" {
		dir = "."
	}

	if strings.HasPrefix(dirPart, "~") && strings.ContainsAny(dirPart[1:2], seps) {
		home, err := sys.UserHomeDir()
		if err != nil {
			return nil
		}

		dir = filepath.Join(home, dirPart[2:])
	}

	abs, err := vos.Abs(sys, dir)
	if err != nil {
		return nil
	}

	entries, err := afero.ReadDir(sys.Fs(), abs)
	if err != nil {
		return nil
	}

	var out []string

	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}

		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}

		c := dirPart + name
		if e.IsDir() {
			c += string(filepath.Separator)
		}

		out = append(out, c)
	}

	return out
}
