// Package importer turns raw bank-statement CSV exports into uncommitted
// domain transactions. Parsing is atomic: a statement either yields its full
// row sequence or fails with a typed error and stages nothing.
package importer

import (
	"fmt"
	"strings"
)

// EmptyInputError reports a statement with no usable text or zero data rows.
type EmptyInputError struct {
	Reason string
}

func (e *EmptyInputError) Error() string {
	return "empty statement: " + e.Reason
}

// MissingColumnsError reports required header columns that could not be
// resolved. Found carries the raw column names actually present so the user
// can see what the bank exported.
type MissingColumnsError struct {
	Missing []string
	Found   []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("required columns missing (%s); columns found: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}
