// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnterminatedQuote is returned when a quoted word has no closing quote.
var ErrUnterminatedQuote = errors.New("cannot find closing \"")

// Error is a lexing failure at a given offset.
type Error struct {
	Err    error
	Offset int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (quote opened at %d)", e.Err, e.Offset)
}

// Unwrap returns the underlying sentinel.
func (e *Error) Unwrap() error {
	return e.Err
}

// Lex converts a line into tokens. On failure no tokens are returned.
func Lex(line string) ([]Token, error) {
	l := &lexer{line: line}

	var tokens []Token

	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}

type lexer struct {
	line string
	pos  int
}

func (l *lexer) next() (Token, bool, error) {
	l.skipSpace()

	if l.pos >= len(l.line) {
		return Token{}, false, nil
	}

	start := l.pos

	switch l.line[l.pos] {
	case '"':
		l.pos++
		return l.quoted(start)
	case '|':
		l.pos++
		return Token{Kind: Pipe, Start: start, End: l.pos}, true, nil
	case '<':
		l.pos++
		return Token{Kind: From, Start: start, End: l.pos}, true, nil
	case '>':
		l.pos++
		if l.pos < len(l.line) && l.line[l.pos] == '>' {
			l.pos++
			return Token{Kind: Append, Start: start, End: l.pos}, true, nil
		}

		return Token{Kind: Insert, Start: start, End: l.pos}, true, nil
	}

	for l.pos < len(l.line) {
		r, size := utf8.DecodeRuneInString(l.line[l.pos:])
		if unicode.IsSpace(r) || isReserved(r) {
			break
		}

		l.pos += size
	}

	return Token{Kind: Word, Text: l.line[start:l.pos], Start: start, End: l.pos}, true, nil
}

// quoted reads a double-quoted word. The opening quote is already consumed.
// Lines without escapes are sliced rather than copied.
func (l *lexer) quoted(start int) (Token, bool, error) {
	body := l.pos

	var sb *strings.Builder

	for l.pos < len(l.line) {
		c := l.line[l.pos]

		switch c {
		case '"':
			text := l.line[body:l.pos]
			if sb != nil {
				text = sb.String()
			}

			l.pos++

			return Token{Kind: Word, Text: text, Start: start, End: l.pos}, true, nil

		case '\\':
			if sb == nil {
				sb = &strings.Builder{}
				sb.Grow(len(l.line) - body)
				sb.WriteString(l.line[body:l.pos])
			}

			l.pos++
			if l.pos >= len(l.line) {
				return Token{}, false, &Error{Err: ErrUnterminatedQuote, Offset: start}
			}

			switch esc := l.line[l.pos]; esc {
			case '"', '\\':
				sb.WriteByte(esc)
			case 'n':
				sb.WriteByte('\n')
			default:
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}

			l.pos++

		default:
			if sb != nil {
				sb.WriteByte(c)
			}

			l.pos++
		}
	}

	return Token{}, false, &Error{Err: ErrUnterminatedQuote, Offset: start}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.line) {
		r, size := utf8.DecodeRuneInString(l.line[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}

		l.pos += size
	}
}

func isReserved(r rune) bool {
	return r == '|' || r == '>' || r == '<'
}
