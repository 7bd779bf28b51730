package mapping

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAStruct is returned when the entity is neither a struct nor a pointer to struct.
	ErrNotAStruct = errors.New("entity must be a struct or pointer to struct")
	// ErrEmptyMappedName is returned when no non-empty mapped name can be inferred for a property.
	ErrEmptyMappedName = errors.New("could not infer mapped name")
	// ErrEmptyComputedExpression is returned when a computed property declares an empty expression.
	ErrEmptyComputedExpression = errors.New("expression is mandatory for computed properties")
	// ErrConflictingKeyRoles is returned when a property is declared both partition key and clustering column.
	ErrConflictingKeyRoles = errors.New("partition key and clustering column are mutually exclusive")
	// ErrDuplicateMappedName is returned when two properties of one entity resolve to the same mapped name.
	ErrDuplicateMappedName = errors.New("duplicate mapped name")
	// ErrNoAccessor is returned when a property has no usable read or write path.
	ErrNoAccessor = errors.New("no usable accessor")
)

// ConfigError reports a fatal schema-resolution failure. No partial schema
// is published for the entity it names.
type ConfigError struct {
	Entity   string
	Property string
	Err      error
}

func (e *ConfigError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("mapping %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("mapping %s: property '%s': %v", e.Entity, e.Property, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// AccessError reports a failed read or write of a single property value.
// It is local to one call and does not invalidate the schema.
type AccessError struct {
	Op       string // "read" or "write"
	Entity   string
	Property string
	Err      error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("unable to %s property '%s' in %s: %v", e.Op, e.Property, e.Entity, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }
