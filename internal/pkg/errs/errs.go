package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrObjectsNotFound       = errors.New("objects not found")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrValueIsRequired       = errors.New("value is required")
	ErrVersionIsInvalid      = errors.New("version is invalid")
	ErrBusinessRuleViolation = errors.New("business rule violated")
)

// sanitize flattens multi-line values so error messages stay on one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

func causeSuffix(cause error) string {
	if cause == nil {
		return ""
	}
	return fmt.Sprintf(" (cause: %s)", sanitize(cause))
}

// ObjectNotFoundError indicates that a single object could not be located
// by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a persistence failure.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s%s",
			ErrObjectNotFound, e.ParamName, e.ID, causeSuffix(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectsNotFoundError indicates that one or more objects of the same kind
// could not be located. It carries every missing identifier, not just the first.
type ObjectsNotFoundError struct {
	ParamName string
	IDs       []string
	Cause     error
}

// NewObjectsNotFoundError creates an ObjectsNotFoundError listing all missing ids.
func NewObjectsNotFoundError(paramName string, ids []string) *ObjectsNotFoundError {
	return &ObjectsNotFoundError{ParamName: paramName, IDs: ids}
}

// NewObjectsNotFoundErrorWithCause creates an ObjectsNotFoundError wrapping an
// underlying cause.
func NewObjectsNotFoundErrorWithCause(paramName string, ids []string, cause error) *ObjectsNotFoundError {
	return &ObjectsNotFoundError{ParamName: paramName, IDs: ids, Cause: cause}
}

func (e *ObjectsNotFoundError) Error() string {
	return fmt.Sprintf("%s: param is: %s, IDs are: %s%s",
		ErrObjectsNotFound, e.ParamName, strings.Join(e.IDs, ", "), causeSuffix(e.Cause))
}

func (e *ObjectsNotFoundError) Unwrap() error {
	return ErrObjectsNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation failure that caused it.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s%s", ErrValueIsInvalid, e.ParamName, causeSuffix(e.Cause))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its
// permitted [Min, Max] interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v%s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max, causeSuffix(e.Cause))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return fmt.Sprintf("%s: %s%s", ErrValueIsRequired, e.ParamName, causeSuffix(e.Cause))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version check failed.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError with a cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s%s", ErrVersionIsInvalid, e.ParamName, causeSuffix(e.Cause))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// BusinessRuleViolationError indicates that an operation would break a domain
// invariant: a forbidden status transition, an ownership mismatch, a quantity
// overflow. Code is a stable machine-readable identifier of the violated rule;
// Message is the human-readable rendering with the offending id(s).
type BusinessRuleViolationError struct {
	Code    string
	Message string
	Cause   error
}

// NewBusinessRuleViolationError creates a BusinessRuleViolationError for the
// given rule code and formatted message.
func NewBusinessRuleViolationError(code string, format string, args ...any) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewBusinessRuleViolationErrorWithCause creates a BusinessRuleViolationError
// wrapping an underlying cause.
func NewBusinessRuleViolationErrorWithCause(code string, cause error, format string, args ...any) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *BusinessRuleViolationError) Error() string {
	return fmt.Sprintf("%s: %s: %s%s", ErrBusinessRuleViolation, e.Code, sanitize(e.Message), causeSuffix(e.Cause))
}

func (e *BusinessRuleViolationError) Unwrap() error {
	return ErrBusinessRuleViolation
}
