package persist

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors. Every typed error below matches one of them
// through errors.Is.
var (
	// ErrUnsupportedType is returned when a host type has no entry in a
	// dialect's type mapping table.
	ErrUnsupportedType = errors.New("persist: unsupported type")

	// ErrMissingPrimaryKey is returned when entity metadata has zero or more
	// than one id column.
	ErrMissingPrimaryKey = errors.New("persist: missing primary key")

	// ErrMalformedMetadata is returned for structurally invalid metadata.
	ErrMalformedMetadata = errors.New("persist: malformed metadata")

	// ErrInvalidValue is returned when a Go value cannot be rendered as a
	// literal of its column's host type.
	ErrInvalidValue = errors.New("persist: invalid value")

	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("persist: entity not found")

	// ErrNotSingular is returned when a query that expects exactly one result
	// returns multiple results.
	ErrNotSingular = errors.New("persist: entity not singular")
)

// UnsupportedTypeError reports a host type missing from a dialect's type table.
type UnsupportedTypeError struct {
	Dialect string // Empty when raised outside of a dialect (e.g. by the loader).
	Type    string
	Column  string // Optional.
}

// Error returns the error string.
func (e *UnsupportedTypeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "persist: unsupported type %q", e.Type)
	if e.Column != "" {
		fmt.Fprintf(&sb, " for column %q", e.Column)
	}
	if e.Dialect != "" {
		fmt.Fprintf(&sb, " in dialect %s", e.Dialect)
	}
	return sb.String()
}

// Is reports whether the target error matches UnsupportedTypeError.
func (e *UnsupportedTypeError) Is(err error) bool {
	return err == ErrUnsupportedType
}

// NewUnsupportedTypeError returns a new UnsupportedTypeError.
func NewUnsupportedTypeError(dialect, typ string) *UnsupportedTypeError {
	return &UnsupportedTypeError{Dialect: dialect, Type: typ}
}

// IsUnsupportedType returns true if the error is an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedTypeError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedType)
}

// MissingPrimaryKeyError reports an entity without exactly one id column.
type MissingPrimaryKeyError struct {
	Table string
	Count int // Number of id columns found.
}

// Error returns the error string.
func (e *MissingPrimaryKeyError) Error() string {
	if e.Count > 1 {
		return fmt.Sprintf("persist: table %s has %d primary key columns, expected 1", e.Table, e.Count)
	}
	return fmt.Sprintf("persist: table %s has no primary key column", e.Table)
}

// Is reports whether the target error matches MissingPrimaryKeyError.
func (e *MissingPrimaryKeyError) Is(err error) bool {
	return err == ErrMissingPrimaryKey
}

// NewMissingPrimaryKeyError returns a new MissingPrimaryKeyError.
func NewMissingPrimaryKeyError(table string, count int) *MissingPrimaryKeyError {
	return &MissingPrimaryKeyError{Table: table, Count: count}
}

// IsMissingPrimaryKey returns true if the error is a MissingPrimaryKeyError.
func IsMissingPrimaryKey(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingPrimaryKeyError
	return errors.As(err, &e) || errors.Is(err, ErrMissingPrimaryKey)
}

// MalformedMetadataError reports structurally invalid entity metadata.
type MalformedMetadataError struct {
	Table  string
	Column string // Optional.
	Reason string
}

// Error returns the error string.
func (e *MalformedMetadataError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("persist: malformed metadata %s.%s: %s", e.Table, e.Column, e.Reason)
	}
	return fmt.Sprintf("persist: malformed metadata %s: %s", e.Table, e.Reason)
}

// Is reports whether the target error matches MalformedMetadataError.
func (e *MalformedMetadataError) Is(err error) bool {
	return err == ErrMalformedMetadata
}

// NewMalformedMetadataError returns a new MalformedMetadataError.
func NewMalformedMetadataError(table, column, reason string) *MalformedMetadataError {
	return &MalformedMetadataError{Table: table, Column: column, Reason: reason}
}

// IsMalformedMetadata returns true if the error is a MalformedMetadataError.
func IsMalformedMetadata(err error) bool {
	if err == nil {
		return false
	}
	var e *MalformedMetadataError
	return errors.As(err, &e) || errors.Is(err, ErrMalformedMetadata)
}

// InvalidValueError reports a value that does not fit its column's host type.
type InvalidValueError struct {
	Column string
	Type   string
	Value  any
}

// Error returns the error string.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("persist: invalid %s value %v (%T) for column %q", e.Type, e.Value, e.Value, e.Column)
}

// Is reports whether the target error matches InvalidValueError.
func (e *InvalidValueError) Is(err error) bool {
	return err == ErrInvalidValue
}

// NewInvalidValueError returns a new InvalidValueError.
func NewInvalidValueError(column, typ string, value any) *InvalidValueError {
	return &InvalidValueError{Column: column, Type: typ, Value: value}
}

// IsInvalidValue returns true if the error is an InvalidValueError.
func IsInvalidValue(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidValueError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidValue)
}

// NotFoundError represents an error when an entity is not found.
type NotFoundError struct {
	label string
	id    any // Optional: the ID that was searched for
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if e.id != nil {
		return fmt.Sprintf("persist: %s not found (id=%v)", e.label, e.id)
	}
	return fmt.Sprintf("persist: %s not found", e.label)
}

// Is reports whether the target error matches NotFoundError.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Label returns the entity label.
func (e *NotFoundError) Label() string {
	return e.label
}

// ID returns the ID that was searched for, if available.
func (e *NotFoundError) ID() any {
	return e.id
}

// NewNotFoundError returns a new NotFoundError for the given entity type.
func NewNotFoundError(label string) *NotFoundError {
	return &NotFoundError{label: label}
}

// NewNotFoundErrorWithID returns a new NotFoundError with the ID that was searched for.
func NewNotFoundErrorWithID(label string, id any) *NotFoundError {
	return &NotFoundError{label: label, id: id}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// NotSingularError represents an error when a lookup by id returns more
// than one row.
type NotSingularError struct {
	label string
	count int // Number of results returned (-1 if unknown)
}

// Error returns the error string.
func (e *NotSingularError) Error() string {
	if e.count >= 0 {
		return fmt.Sprintf("persist: %s not singular (got %d results, expected 1)", e.label, e.count)
	}
	return fmt.Sprintf("persist: %s not singular", e.label)
}

// Is reports whether the target error matches NotSingularError.
func (e *NotSingularError) Is(err error) bool {
	return err == ErrNotSingular
}

// Count returns the number of results, or -1 if unknown.
func (e *NotSingularError) Count() int {
	return e.count
}

// NewNotSingularErrorWithCount returns a new NotSingularError with the result count.
func NewNotSingularErrorWithCount(label string, count int) *NotSingularError {
	return &NotSingularError{label: label, count: count}
}

// IsNotSingular returns true if the error is a NotSingularError.
func IsNotSingular(err error) bool {
	if err == nil {
		return false
	}
	var e *NotSingularError
	return errors.As(err, &e) || errors.Is(err, ErrNotSingular)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "persist: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("persist: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors, so errors.Is and errors.As
// inspect each of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}

// QueryError wraps a read failure with additional context.
type QueryError struct {
	Entity string // Entity type being queried
	Op     string // Operation (e.g., "find_all", "find_by_id")
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *QueryError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("persist: querying %s (%s): %v", e.Entity, e.Op, e.Err)
	}
	return fmt.Sprintf("persist: querying %s: %v", e.Entity, e.Err)
}

// Unwrap returns the underlying error.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError returns a new QueryError.
func NewQueryError(entity, op string, err error) *QueryError {
	return &QueryError{Entity: entity, Op: op, Err: err}
}

// IsQueryError returns true if the error is a QueryError.
func IsQueryError(err error) bool {
	if err == nil {
		return false
	}
	var e *QueryError
	return errors.As(err, &e)
}

// MutationError wraps a write or DDL failure with additional context.
type MutationError struct {
	Entity string // Entity type being mutated
	Op     string // Operation (e.g., "create", "drop", "insert")
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *MutationError) Error() string {
	return fmt.Sprintf("persist: %s %s: %v", e.Op, e.Entity, e.Err)
}

// Unwrap returns the underlying error.
func (e *MutationError) Unwrap() error {
	return e.Err
}

// NewMutationError returns a new MutationError.
func NewMutationError(entity, op string, err error) *MutationError {
	return &MutationError{Entity: entity, Op: op, Err: err}
}

// IsMutationError returns true if the error is a MutationError.
func IsMutationError(err error) bool {
	if err == nil {
		return false
	}
	var e *MutationError
	return errors.As(err, &e)
}
