package model

import "errors"

// Standard error codes for domain validation failures
const (
	ErrCodeScoreOutOfRange    = "SCORE_OUT_OF_RANGE"
	ErrCodeNilProduct         = "NIL_PRODUCT"
	ErrCodeUnknownKind        = "UNKNOWN_KIND"
	ErrCodeInvalidRoast       = "INVALID_ROAST_LEVEL"
	ErrCodeInvalidGrind       = "INVALID_GRIND_SIZE"
	ErrCodeInvalidConcentrate = "INVALID_CONCENTRATION_LEVEL"
	ErrCodeUnsupportedVariant = "UNSUPPORTED_VARIANT"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrScoreTooHigh       = NewDomainError(ErrCodeScoreOutOfRange, "Quality score must not exceed 10")
	ErrNilProduct         = NewDomainError(ErrCodeNilProduct, "Product must not be nil")
	ErrUnknownKind        = NewDomainError(ErrCodeUnknownKind, "Coffee type must be BEAN, GROUND or INSTANT")
	ErrInvalidRoast       = NewDomainError(ErrCodeInvalidRoast, "Roast level must be LIGHT, MEDIUM or DARK")
	ErrInvalidGrind       = NewDomainError(ErrCodeInvalidGrind, "Grind size must be FINE, MEDIUM or COARSE")
	ErrInvalidConcentrate = NewDomainError(ErrCodeInvalidConcentrate, "Concentration level must be LOW, MEDIUM or HIGH")
	ErrUnsupportedVariant = NewDomainError(ErrCodeUnsupportedVariant, "Unsupported product variant")
)

// IsValidationError reports whether err is, or wraps, a DomainError.
func IsValidationError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
