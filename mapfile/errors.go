// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"

	"github.com/pkg/errors"

	"quakemap/maptoken"
)

// ParseError is returned if the rest of the input can not be parsed.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse map: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnexpectedTokenError drops the construct it was found in.
type UnexpectedTokenError struct {
	Expected maptoken.Kind
	Got      maptoken.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %v but got %v at column %d", e.Expected, e.Got, e.Got.Column)
}

// MalformedPatchGridError is reported for bad patch dimensions or a
// control point count that does not match them.
type MalformedPatchGridError struct {
	Line    int
	Rows    int
	Columns int
	Reason  string
}

func (e *MalformedPatchGridError) Error() string {
	return fmt.Sprintf("malformed %dx%d patch: %s", e.Rows, e.Columns, e.Reason)
}

func isFatal(err error) bool {
	var te *maptoken.TokenizerError
	return errors.As(err, &te)
}

// errorLine returns the line an error was found at.
func errorLine(err error, line int) int {
	var ut *UnexpectedTokenError
	if errors.As(err, &ut) {
		return ut.Got.Line
	}
	var pe *MalformedPatchGridError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return line
}
