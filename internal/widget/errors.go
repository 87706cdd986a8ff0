package widget

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of a rejected configuration edit
type ErrorType int

const (
	// ErrTypeValidation indicates the value is of the right kind but outside the allowed set or range
	ErrTypeValidation ErrorType = iota
	// ErrTypeUnknownField indicates the field name is not part of Config
	ErrTypeUnknownField
	// ErrTypeTypeMismatch indicates the value cannot be converted to the field's type
	ErrTypeTypeMismatch
	// ErrTypeParse indicates a serialized configuration could not be decoded
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeUnknownField:
		return "Unknown Field"
	case ErrTypeTypeMismatch:
		return "Type Mismatch"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ConfigError describes why an edit to a Config was rejected.
type ConfigError struct {
	Type    ErrorType // Category of error
	Field   string    // JSON name of the offending field
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	prefix := e.Type.String()
	if e.Field != "" {
		prefix = fmt.Sprintf("%s (%s)", prefix, e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error for field
func NewValidationError(field, message string) *ConfigError {
	return &ConfigError{Type: ErrTypeValidation, Field: field, Message: message}
}

// NewUnknownFieldError creates an error for a field name Config does not have
func NewUnknownFieldError(field string) *ConfigError {
	return &ConfigError{
		Type:    ErrTypeUnknownField,
		Field:   field,
		Message: fmt.Sprintf("no such field %q", field),
	}
}

// NewTypeMismatchError creates an error for a value of the wrong kind
func NewTypeMismatchError(field string, want string, got any) *ConfigError {
	return &ConfigError{
		Type:    ErrTypeTypeMismatch,
		Field:   field,
		Message: fmt.Sprintf("expected %s, got %T", want, got),
	}
}

// NewParseError creates an error for a configuration document that failed to decode
func NewParseError(message string, err error) *ConfigError {
	return &ConfigError{Type: ErrTypeParse, Message: message, Err: err}
}

func errorType(err error) (ErrorType, bool) {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Type, true
	}
	return 0, false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeValidation
}

// IsUnknownFieldError checks if an error is an unknown-field error
func IsUnknownFieldError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeUnknownField
}

// IsTypeMismatchError checks if an error is a type mismatch
func IsTypeMismatchError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeTypeMismatch
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeParse
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		return err.Error()
	}
	if cfgErr.Field != "" {
		return fmt.Sprintf("%s: %s", cfgErr.Field, cfgErr.Message)
	}
	return cfgErr.Message
}

// GetTroubleshootingHint returns advice on how to correct a rejected edit
func GetTroubleshootingHint(err error) string {
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		return "An unexpected error occurred. Please try again."
	}

	switch cfgErr.Type {
	case ErrTypeUnknownField:
		return strings.Join([]string{
			"That field does not exist.",
			"Valid fields:",
			"  " + strings.Join(FieldNames(), ", "),
		}, "\n")

	case ErrTypeTypeMismatch:
		return "Check the value's format. Numbers must be whole, booleans true or false."

	case ErrTypeParse:
		return strings.Join([]string{
			"The configuration document could not be read.",
			"Troubleshooting:",
			"  • Check the JSON syntax",
			"  • Field names are camelCase, e.g. bottomOffset",
		}, "\n")

	case ErrTypeValidation:
		if allowed := allowedValues(Field(cfgErr.Field)); allowed != "" {
			return "Allowed values: " + allowed
		}
		return "The value is out of range. Check the error message for details."

	default:
		return "An error occurred. Please check the error message for details."
	}
}

func allowedValues(f Field) string {
	switch f {
	case FieldSize:
		return joinValues(Sizes)
	case FieldPosition:
		return joinValues(Positions)
	case FieldAnimationStyle:
		return joinValues(AnimationStyles)
	case FieldCopyType:
		return joinValues(CopyTypes)
	case FieldColor:
		return strings.Join(ColorChoices(), ", ")
	case FieldToggleIcon:
		icons := make([]ToggleIcon, 0, len(ToggleIconOptions))
		for _, opt := range ToggleIconOptions {
			icons = append(icons, opt.Value)
		}
		return joinValues(icons)
	case FieldBottomOffset:
		return fmt.Sprintf("0 to %d", MaxBottomOffset)
	}
	return ""
}

func joinValues[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
