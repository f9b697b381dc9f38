// Package diagnostics reconstructs the error-reporting shape used
// throughout the rest of this code base: a stable error code, a source
// position, a human-readable message, and an optional file path attached
// later by whatever loaded the file (diagnostics itself never opens one).
package diagnostics

import (
	"fmt"

	"github.com/hornlang/hornc/internal/token"
)

// ErrorCode is a stable, greppable identifier for a diagnosed condition.
type ErrorCode string

const (
	ErrInvalidTypeName                 ErrorCode = "L001"
	ErrNotTrait                        ErrorCode = "L002"
	ErrNotStruct                       ErrorCode = "L003"
	ErrCannotApplyTypeParameter        ErrorCode = "L004"
	ErrIncorrectNumberOfTypeParameters ErrorCode = "L005"
	ErrIncorrectParameterKind          ErrorCode = "L006"
	ErrDuplicateLangItem               ErrorCode = "L007"
	ErrDuplicateParameter              ErrorCode = "L008"
	ErrDuplicateOrShadowedParameters   ErrorCode = "L009"
	ErrAutoTraitParameters             ErrorCode = "L010"
	ErrAutoTraitWhereClauses           ErrorCode = "L011"
	ErrAutoTraitAssociatedTypes        ErrorCode = "L012"
	ErrNotTraitNotWellFormed           ErrorCode = "L013"
	ErrFundamentalStructArity          ErrorCode = "L014"
	ErrAuxiliaryTraitHasImpl           ErrorCode = "L015"
	ErrNegativeImplAssociatedValues    ErrorCode = "L016"
	ErrAmbiguousAssociatedType         ErrorCode = "L017"
	ErrMissingAssociatedType           ErrorCode = "L018"
	ErrUnboundVariable                 ErrorCode = "L019"
	ErrInvalidProjection               ErrorCode = "L020"
	ErrDuplicateItemName               ErrorCode = "L021"
	ErrUnresolvedTraitReference        ErrorCode = "L022"
)

// DiagnosticError is a single diagnosed condition, positioned in the source
// that produced it.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Position
	Message string
	File    string
}

// NewError builds a DiagnosticError at the given position.
func NewError(code ErrorCode, pos token.Position, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: pos, Message: message}
}

func (e *DiagnosticError) Error() string {
	if e.Token.IsKnown() {
		if e.File != "" {
			return fmt.Sprintf("%s: %s: %s (%s)", e.File, e.Token, e.Message, e.Code)
		}
		return fmt.Sprintf("%s: %s (%s)", e.Token, e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Errorf builds a DiagnosticError with a formatted message.
func Errorf(code ErrorCode, pos token.Position, format string, args ...any) *DiagnosticError {
	return NewError(code, pos, fmt.Sprintf(format, args...))
}
