// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lexer

import "fmt"

// Kind identifies the type of a token.
type Kind int

const (
	// Word is a plain or quoted word.
	Word Kind = iota
	// Pipe is the | marker.
	Pipe
	// Insert is the > marker.
	Insert
	// Append is the >> marker.
	Append
	// From is the < marker.
	From
)

// String returns the marker text, or "word".
func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Pipe:
		return "|"
	case Insert:
		return ">"
	case Append:
		return ">>"
	case From:
		return "<"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical element of a line.
// Start and End are byte offsets into the original line.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

// IsWord reports whether the token is a word.
func (t Token) IsWord() bool {
	return t.Kind == Word
}

// String renders the token for diagnostics.
func (t Token) String() string {
	if t.Kind == Word {
		return fmt.Sprintf("word %q at %d", t.Text, t.Start)
	}

	return fmt.Sprintf("%q at %d", t.Kind.String(), t.Start)
}
