package rdfbind

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeInvalidLexical indicates a lexical form that does not parse as
	// its datatype's value space.
	ErrCodeInvalidLexical ErrorCode = "INVALID_LEXICAL"
	// ErrCodeInvalidDateTime indicates a lexical form that is not a valid
	// ISO 8601 date/time.
	ErrCodeInvalidDateTime ErrorCode = "INVALID_DATETIME"
)

var (
	// ErrInvalidLexical indicates a lexical form outside its datatype's
	// value space.
	ErrInvalidLexical = errors.New("rdfbind: invalid lexical form")
	// ErrInvalidDateTime indicates a malformed ISO 8601 date/time lexical form.
	ErrInvalidDateTime = errors.New("rdfbind: invalid dateTime lexical form")
)

// LexicalError reports a lexical form that failed to parse for a datatype.
type LexicalError struct {
	// Lexical is the offending lexical form.
	Lexical string
	// Datatype is the datatype the form was parsed as.
	Datatype Datatype
	// Err is the underlying parse error.
	Err error
}

// Error implements the error interface.
func (e *LexicalError) Error() string {
	return fmt.Sprintf("rdfbind: cannot parse %q as %s: %v", e.Lexical, e.Datatype, e.Err)
}

// Unwrap returns the underlying error.
func (e *LexicalError) Unwrap() error { return e.Err }

// Is reports whether the error matches the lexical sentinels.
func (e *LexicalError) Is(target error) bool {
	if target == ErrInvalidLexical {
		return true
	}
	if target == ErrInvalidDateTime {
		return e.Datatype == DatatypeDateTime
	}
	return false
}

// Code returns the error code for an error, or empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var lexErr *LexicalError
	if errors.As(err, &lexErr) {
		if lexErr.Datatype == DatatypeDateTime {
			return ErrCodeInvalidDateTime
		}
		return ErrCodeInvalidLexical
	}

	switch {
	case errors.Is(err, ErrInvalidDateTime):
		return ErrCodeInvalidDateTime
	case errors.Is(err, ErrInvalidLexical):
		return ErrCodeInvalidLexical
	}
	return ""
}

// lexicalError wraps a parse failure with the lexical form and datatype.
func lexicalError(lexical string, dt Datatype, err error) error {
	return &LexicalError{Lexical: lexical, Datatype: dt, Err: err}
}
