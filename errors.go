package dunoslide

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrDocumentNotFound = errors.New("presentation file not found")
	ErrSyntax           = errors.New("invalid document syntax")
	ErrValidation       = errors.New("invalid presentation")
)

// SyntaxError reports a document that could not be decoded into a generic value.
type SyntaxError struct {
	Path   string
	Format string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("failed to parse %s document %s: %v", e.Format, e.Path, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// FieldError is a single schema violation.
type FieldError struct {
	// Path from the document root. Elements are string keys or int indices.
	Path     []any
	Message  string
	Expected string
	Given    any
	Hint     string
}

// Loc returns Path joined by sep.
func (e *FieldError) Loc(sep string) string {
	parts := make([]string, 0, len(e.Path))
	for _, p := range e.Path {
		switch v := p.(type) {
		case int:
			parts = append(parts, strconv.Itoa(v))
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(parts, sep)
}

func (e *FieldError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Loc("."), e.Message)
}

// ValidationError collects every FieldError found in one Decode call.
type ValidationError struct {
	Errors []*FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%v: %v", ErrValidation, e.Errors[0])
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("%v: %d errors: %s", ErrValidation, len(e.Errors), strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
