// Package codec registers per-property value converters between in-memory
// values and their storage representation. Only the identity of a codec
// matters to schema resolution; instances are constructed fail-fast at
// resolution time through the Registry.
package codec

import "reflect"

// Codec converts one property's value to and from its storage
// representation. Implementations must be safe for concurrent use.
type Codec interface {
	// Name returns the identifier the codec is registered under.
	Name() string
	// Encode converts an in-memory value to its storage representation.
	Encode(v any) (any, error)
	// Decode converts a storage value back to the property's declared type.
	Decode(v any, target reflect.Type) (any, error)
}
