// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/pipesh/internal/lexer"
)

var (
	// ErrMissingFilename is returned when a redirection has no target.
	ErrMissingFilename = errors.New("missing filename after redirection")
	// ErrUnexpectedToken is returned for a token that cannot appear where it was found.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrTooManyStages is returned for pipelines longer than two stages.
	ErrTooManyStages = errors.New("more than two pipeline stages unsupported")
	// ErrInvalidLine wraps lexer errors returned by ParseLine.
	ErrInvalidLine = errors.New("invalid line")
)

// Error is a parse failure at a token.
type Error struct {
	Err   error
	Token lexer.Token
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Token)
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error, tok lexer.Token) *Error {
	return &Error{Err: err, Token: tok}
}
