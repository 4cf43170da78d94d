// Package diagnostics defines the positioned, coded errors shared by every
// pipeline stage. The lexer, parser and evaluator all report through this
// type so the CLI can print a uniform error listing.
package diagnostics

import (
	"fmt"

	"github.com/arshidkv12/monkey/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // illegal character or malformed literal

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // no prefix parse function
	ErrP003 ErrorCode = "P003" // malformed literal

	// Runtime
	ErrR001 ErrorCode = "R001" // evaluation error
)

// DiagnosticError is a single positioned error produced by a pipeline stage.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Column  int
}

func NewError(code ErrorCode, tok token.Token, format string, a ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *DiagnosticError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", file, e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: [%s] %s", file, e.Code, e.Message)
}
