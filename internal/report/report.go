package report

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/jsonv/internal/config"
	"github.com/mcncl/jsonv/internal/errors"
)

// Stage names used in machine-readable reports.
const (
	StageTokenizer = "tokenizer"
	StageParser    = "parser"
)

// ValidMessage is printed on a successful validation.
const ValidMessage = "This is valid JSON. Great!"

// Result is the outcome of validating one document. The zero value is
// an invalid result with no detail.
type Result struct {
	Valid     bool   `json:"valid"`
	Stage     string `json:"stage,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Success returns the result for a document that tokenized and parsed
// cleanly.
func Success() Result {
	return Result{Valid: true}
}

// FromError classifies a pipeline error into a Result, labeling the
// stage that rejected the input and a snake_case form of the error
// kind.
func FromError(err error) Result {
	var tokErr *errors.TokenizeError
	if stderrors.As(err, &tokErr) {
		return Result{
			Stage:     StageTokenizer,
			ErrorKind: strcase.ToSnake(tokErr.Kind.Name()),
			Message:   tokErr.Error(),
		}
	}
	var parseErr *errors.ParseError
	if stderrors.As(err, &parseErr) {
		return Result{
			Stage:     StageParser,
			ErrorKind: strcase.ToSnake(parseErr.Kind.Name()),
			Message:   parseErr.Error(),
		}
	}
	return Result{Message: err.Error()}
}

// Render produces the user-facing form of the result in the given
// output format.
func (r Result) Render(format string) (string, error) {
	switch format {
	case config.FormatJSON:
		b, err := json.Marshal(r)
		if err != nil {
			return "", errors.NewOutputError("failed to encode report", err)
		}
		return string(b), nil
	case config.FormatText, "":
		if r.Valid {
			return ValidMessage, nil
		}
		return r.Message, nil
	default:
		return "", errors.NewOutputError(fmt.Sprintf("unknown output format %q", format), nil)
	}
}
