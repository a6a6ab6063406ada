package validator

import "errors"

var (
	// ErrValidationFailed matches every *ValidationError and ValidationErrors
	// through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownRule is returned when a rule is nil or not one of the
	// variants declared by this package.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrInvalidRule is returned when rule parameters are inconsistent,
	// such as a negative limit or Min greater than Max.
	ErrInvalidRule = errors.New("invalid rule parameters")

	// ErrUnknownField is returned when a form is asked about a field that
	// has no rules attached.
	ErrUnknownField = errors.New("unknown field")

	// ErrEmptyFieldName is returned when attaching rules to an empty name.
	ErrEmptyFieldName = errors.New("field name is required")
)
