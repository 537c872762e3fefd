package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrNoInput = errors.New("no input provided: please specify a file path or pipe JSON data to stdin")
)

// TokenizeErrorKind names the lexical class that failed to match its
// expected shape.
type TokenizeErrorKind uint8

const (
	InvalidString TokenizeErrorKind = iota
	InvalidNumber
	InvalidLiteral
)

// String returns the user-facing description of the kind.
func (k TokenizeErrorKind) String() string {
	switch k {
	case InvalidString:
		return "invalid string token"
	case InvalidNumber:
		return "invalid number token"
	case InvalidLiteral:
		return "invalid literal token"
	default:
		return "invalid token"
	}
}

// Name returns the identifier form of the kind, used for report labels.
func (k TokenizeErrorKind) Name() string {
	switch k {
	case InvalidString:
		return "InvalidString"
	case InvalidNumber:
		return "InvalidNumber"
	case InvalidLiteral:
		return "InvalidLiteral"
	default:
		return "Unknown"
	}
}

// TokenizeError reports the first lexical error in the input. It
// terminates tokenization; no partial token sequence accompanies it.
type TokenizeError struct {
	Kind   TokenizeErrorKind
	Offset int // byte offset where the failing token starts
}

// NewTokenizeError creates a tokenizer error of the given kind at a
// byte offset.
func NewTokenizeError(kind TokenizeErrorKind, offset int) *TokenizeError {
	return &TokenizeError{Kind: kind, Offset: offset}
}

// Error implements error interface
func (e *TokenizeError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// ParseErrorKind distinguishes the grammar violations the parser can
// detect.
type ParseErrorKind uint8

const (
	UnexpectedToken ParseErrorKind = iota
	ExpectedColon
	ExpectedCommaOrCloseBrace
	ExpectedCommaOrCloseBracket
	ExpectedKeyOrCloseBrace
)

// String returns the user-facing description of the kind.
func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case ExpectedColon:
		return "expected colon"
	case ExpectedCommaOrCloseBrace:
		return "expected comma or closing curly brace"
	case ExpectedCommaOrCloseBracket:
		return "expected comma or closing square bracket"
	case ExpectedKeyOrCloseBrace:
		return "expected string key or closing curly brace"
	default:
		return "parse error"
	}
}

// Name returns the identifier form of the kind, used for report labels.
func (k ParseErrorKind) Name() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case ExpectedColon:
		return "ExpectedColon"
	case ExpectedCommaOrCloseBrace:
		return "ExpectedCommaOrCloseBrace"
	case ExpectedCommaOrCloseBracket:
		return "ExpectedCommaOrCloseBracket"
	case ExpectedKeyOrCloseBrace:
		return "ExpectedKeyOrCloseBrace"
	default:
		return "Unknown"
	}
}

// ParseError reports the first grammar violation found while consuming
// the token sequence. Token holds the debug form of the offending
// token, or "end of input" when the sequence ran out.
type ParseError struct {
	Kind  ParseErrorKind
	Token string
}

// NewParseError creates a parser error of the given kind for the
// offending token.
func NewParseError(kind ParseErrorKind, token string) *ParseError {
	return &ParseError{Kind: kind, Token: token}
}

// Error implements error interface
func (e *ParseError) Error() string {
	if e.Token == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s, got %s", e.Kind, e.Token)
}

// ErrorType categorizes driver-level errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeConfig  ErrorType = "config"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file path or pipe JSON data to stdin."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
