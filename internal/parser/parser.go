// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"fmt"

	"github.com/matt-FFFFFF/pipesh/internal/lexer"
	"github.com/matt-FFFFFF/pipesh/internal/runner"
)

// ParseLine lexes and parses one line of input.
// Lexer errors are returned wrapped with ErrInvalidLine.
func ParseLine(line string) (runner.Runnable, error) {
	tokens, err := lexer.Lex(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLine, err)
	}

	return Parse(tokens)
}

// Parse builds the runnable for tokens. No runnable is returned on error.
func Parse(tokens []lexer.Token) (runner.Runnable, error) {
	first, rest := collectWords(tokens)
	if len(rest) == 0 {
		return runner.NewCommand(first...), nil
	}

	marker, rest := rest[0], rest[1:]

	switch marker.Kind {
	case lexer.Pipe:
		second, tail := collectWords(rest)
		if len(tail) > 0 {
			return nil, newError(ErrTooManyStages, tail[0])
		}

		return &runner.Pipe{
			From: runner.NewCommand(first...),
			To:   runner.NewCommand(second...),
		}, nil

	case lexer.Insert, lexer.Append:
		target, err := parseTarget(marker, rest)
		if err != nil {
			return nil, err
		}

		cmd := runner.NewCommand(first...)
		if marker.Kind == lexer.Append {
			return &runner.Append{Cmd: cmd, Target: target}, nil
		}

		return &runner.Insert{Cmd: cmd, Target: target}, nil

	case lexer.From:
		return &runner.From{}, nil
	}

	return nil, newError(ErrUnexpectedToken, marker)
}

// parseTarget expects exactly one word after a redirection marker.
func parseTarget(marker lexer.Token, rest []lexer.Token) (string, error) {
	if len(rest) == 0 {
		return "", newError(ErrMissingFilename, marker)
	}

	if !rest[0].IsWord() {
		return "", newError(ErrUnexpectedToken, rest[0])
	}

	if len(rest) > 1 {
		return "", newError(ErrUnexpectedToken, rest[1])
	}

	return rest[0].Text, nil
}

// collectWords returns the texts of the leading word tokens and the
// remaining tokens.
func collectWords(tokens []lexer.Token) ([]string, []lexer.Token) {
	var words []string

	for i, tok := range tokens {
		if !tok.IsWord() {
			return words, tokens[i:]
		}

		words = append(words, tok.Text)
	}

	return words, nil
}
