package mapping

import (
	"fmt"
	"reflect"

	"github.com/shrek82/rowmap/codec"
)

// Property is the immutable descriptor of one mapped property. It is
// resolved once per entity type and reused for every instance; all methods
// are safe for concurrent use.
type Property struct {
	name             string
	mappedName       string
	typ              reflect.Type
	owner            reflect.Type
	partitionKey     bool
	clusteringColumn bool
	computed         bool
	caseSensitive    bool
	position         int
	codec            codec.Codec
	acc              accessor
}

// Name returns the logical property name.
func (p *Property) Name() string { return p.name }

// MappedName returns the external column name, or the expression string
// for computed properties. Case-insensitive names are lowercased;
// case-sensitive names are preserved verbatim (see IsCaseSensitive).
func (p *Property) MappedName() string { return p.mappedName }

// Type returns the declared value type of the property.
func (p *Property) Type() reflect.Type { return p.typ }

// IsPartitionKey reports whether the property is part of the partition key.
func (p *Property) IsPartitionKey() bool { return p.partitionKey }

// IsClusteringColumn reports whether the property is a clustering column.
func (p *Property) IsClusteringColumn() bool { return p.clusteringColumn }

// Position returns the ordinal among partition-key columns or clustering
// columns, or -1 when the property is not a key column.
func (p *Property) Position() int { return p.position }

// IsComputed reports whether the mapped name is a server-side expression
// rather than a stored column.
func (p *Property) IsComputed() bool { return p.computed }

// IsCaseSensitive reports whether the mapped name must be emitted quoted.
func (p *Property) IsCaseSensitive() bool { return p.caseSensitive }

// Codec returns the custom codec attached to this property, or nil when
// the type-system default applies.
func (p *Property) Codec() codec.Codec { return p.codec }

// ColumnName returns the mapped name ready for emission: quoted when the
// property is case-sensitive, verbatim otherwise.
func (p *Property) ColumnName() string {
	if p.caseSensitive {
		return Quote(p.mappedName)
	}
	return p.mappedName
}

func (p *Property) String() string { return p.name }

// GetValue reads the property value from entity, preferring the getter
// and falling back to direct field access.
func (p *Property) GetValue(entity any) (v any, err error) {
	ptr, terr := p.target(entity, false)
	if terr != nil {
		return nil, &AccessError{Op: "read", Entity: entityName(entity), Property: p.name, Err: terr}
	}
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, &AccessError{Op: "read", Entity: entityName(entity), Property: p.name, Err: fmt.Errorf("%v", r)}
		}
	}()
	out, aerr := p.acc.get(ptr)
	if aerr != nil {
		return nil, &AccessError{Op: "read", Entity: entityName(entity), Property: p.name, Err: aerr}
	}
	return out.Interface(), nil
}

// SetValue writes value into entity, preferring the setter and falling
// back to direct field access. entity must be a non-nil pointer.
func (p *Property) SetValue(entity any, value any) (err error) {
	ptr, terr := p.target(entity, true)
	if terr != nil {
		return &AccessError{Op: "write", Entity: entityName(entity), Property: p.name, Err: terr}
	}
	rv, cerr := coerce(value, p.typ)
	if cerr != nil {
		return &AccessError{Op: "write", Entity: entityName(entity), Property: p.name, Err: cerr}
	}
	defer func() {
		if r := recover(); r != nil {
			err = &AccessError{Op: "write", Entity: entityName(entity), Property: p.name, Err: fmt.Errorf("%v", r)}
		}
	}()
	if aerr := p.acc.set(ptr, rv); aerr != nil {
		return &AccessError{Op: "write", Entity: entityName(entity), Property: p.name, Err: aerr}
	}
	return nil
}

// target normalizes entity to a non-nil pointer to the owning struct type.
// Reads tolerate a plain struct value by copying it; writes require the
// caller's own pointer so the mutation is visible.
func (p *Property) target(entity any, forWrite bool) (reflect.Value, error) {
	rv := reflect.ValueOf(entity)
	if !rv.IsValid() {
		return reflect.Value{}, fmt.Errorf("entity is nil")
	}
	if rv.Kind() != reflect.Pointer {
		if forWrite {
			return reflect.Value{}, fmt.Errorf("entity must be a non-nil pointer, got %s", rv.Type())
		}
		cp := reflect.New(rv.Type())
		cp.Elem().Set(rv)
		rv = cp
	}
	if rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("entity is a nil pointer")
	}
	if rv.Elem().Type() != p.owner {
		return reflect.Value{}, fmt.Errorf("entity type %s does not own this property (want %s)", rv.Elem().Type(), p.owner)
	}
	return rv, nil
}

// coerce adapts value to the property's declared type, converting where
// the types are convertible but not directly assignable.
func coerce(value any, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(typ), nil
	}
	rv := reflect.ValueOf(value)
	if rv.Type() == typ || rv.Type().AssignableTo(typ) {
		return rv, nil
	}
	if rv.Type().ConvertibleTo(typ) {
		return rv.Convert(typ), nil
	}
	return reflect.Value{}, fmt.Errorf("value of type %s is not assignable to %s", rv.Type(), typ)
}

func entityName(entity any) string {
	t := reflect.TypeOf(entity)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
