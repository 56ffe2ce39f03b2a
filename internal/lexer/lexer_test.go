// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(text string) Token {
	return Token{Kind: Word, Text: text}
}

func marker(k Kind) Token {
	return Token{Kind: k}
}

// stripOffsets lets table cases ignore byte offsets.
func stripOffsets(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, Token{Kind: tok.Kind, Text: tok.Text})
	}

	return out
}

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: []Token{},
		},
		{
			name:     "only whitespace",
			input:    "  \t  ",
			expected: []Token{},
		},
		{
			name:     "simple command",
			input:    "echo hello world",
			expected: []Token{word("echo"), word("hello"), word("world")},
		},
		{
			name:     "multiple spaces between words",
			input:    "  ls    -la   /tmp  ",
			expected: []Token{word("ls"), word("-la"), word("/tmp")},
		},
		{
			name:     "quoted word keeps whitespace",
			input:    `echo "a b" c`,
			expected: []Token{word("echo"), word("a b"), word("c")},
		},
		{
			name:     "newline escape",
			input:    `echo "a\nb"`,
			expected: []Token{word("echo"), word("a\nb")},
		},
		{
			name:     "escaped quote and backslash",
			input:    `echo "say \"hi\" \\o/"`,
			expected: []Token{word("echo"), word(`say "hi" \o/`)},
		},
		{
			name:     "unknown escape is kept",
			input:    `echo "a\tb\x"`,
			expected: []Token{word("echo"), word(`a\tb\x`)},
		},
		{
			name:     "empty quotes give an empty word",
			input:    `echo ""`,
			expected: []Token{word("echo"), word("")},
		},
		{
			name:     "quote inside a word is literal",
			input:    `echo ab"cd"`,
			expected: []Token{word("echo"), word(`ab"cd"`)},
		},
		{
			name:     "word directly after a quote",
			input:    `"ab"cd`,
			expected: []Token{word("ab"), word("cd")},
		},
		{
			name:     "pipe with spaces",
			input:    "ls | wc -l",
			expected: []Token{word("ls"), marker(Pipe), word("wc"), word("-l")},
		},
		{
			name:     "pipe without spaces",
			input:    "ls|wc",
			expected: []Token{word("ls"), marker(Pipe), word("wc")},
		},
		{
			name:     "insert",
			input:    "echo hi > out.txt",
			expected: []Token{word("echo"), word("hi"), marker(Insert), word("out.txt")},
		},
		{
			name:     "append without spaces",
			input:    "echo hi>>out.txt",
			expected: []Token{word("echo"), word("hi"), marker(Append), word("out.txt")},
		},
		{
			name:     "three angle brackets",
			input:    ">>>",
			expected: []Token{marker(Append), marker(Insert)},
		},
		{
			name:     "from",
			input:    "sort < in.txt",
			expected: []Token{word("sort"), marker(From), word("in.txt")},
		},
		{
			name:     "reserved characters inside quotes",
			input:    `echo "a | b > c"`,
			expected: []Token{word("echo"), word("a | b > c")},
		},
		{
			name:     "unicode words",
			input:    "echo héllo wörld",
			expected: []Token{word("echo"), word("héllo"), word("wörld")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stripOffsets(tokens))
		})
	}
}

func TestLex_Offsets(t *testing.T) {
	line := `cat "x y" >> log`
	tokens, err := Lex(line)
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, "cat", line[tokens[0].Start:tokens[0].End])
	assert.Equal(t, `"x y"`, line[tokens[1].Start:tokens[1].End])
	assert.Equal(t, ">>", line[tokens[2].Start:tokens[2].End])
	assert.Equal(t, "log", line[tokens[3].Start:tokens[3].End])
}

func TestLex_UnterminatedQuote(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{name: "missing closing quote", input: `echo "abc`, offset: 5},
		{name: "escaped closing quote", input: `echo "abc\"`, offset: 5},
		{name: "trailing backslash", input: `echo "abc\`, offset: 5},
		{name: "lone quote", input: `"`, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			require.ErrorIs(t, err, ErrUnterminatedQuote)
			assert.Nil(t, tokens)

			var lexErr *Error
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.offset, lexErr.Offset)
			assert.True(t, strings.HasPrefix(err.Error(), ErrUnterminatedQuote.Error()))
		})
	}
}

func TestLex_WordsOnlyMatchesFields(t *testing.T) {
	inputs := []string{
		"a",
		"git commit -m msg",
		"\tx  y\t z ",
		"/usr/bin/env FOO=bar baz",
	}

	for _, in := range inputs {
		tokens, err := Lex(in)
		require.NoError(t, err)

		var got []string
		for _, tok := range tokens {
			require.True(t, tok.IsWord())
			got = append(got, tok.Text)
		}

		assert.Equal(t, strings.Fields(in), got, in)
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `word "ls" at 0`, Token{Kind: Word, Text: "ls"}.String())
	assert.Equal(t, `">>" at 4`, Token{Kind: Append, Start: 4}.String())
	assert.Equal(t, "|", Pipe.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
