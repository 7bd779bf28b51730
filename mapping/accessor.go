package mapping

import (
	"reflect"
)

// accessor is the runtime read/write capability backing one property.
// The variant is chosen once at schema-resolution time; instances are
// immutable and safe for concurrent use against different entities.
//
// Accessors receive the entity as a non-nil pointer value so that
// pointer-receiver methods and field writes both work.
type accessor interface {
	get(ptr reflect.Value) (reflect.Value, error)
	set(ptr reflect.Value, value reflect.Value) error
}

// fieldAccessor reads and writes one struct field by index.
type fieldAccessor struct {
	index []int
}

func (a fieldAccessor) get(ptr reflect.Value) (reflect.Value, error) {
	return ptr.Elem().FieldByIndex(a.index), nil
}

func (a fieldAccessor) set(ptr reflect.Value, value reflect.Value) error {
	ptr.Elem().FieldByIndex(a.index).Set(value)
	return nil
}

// getterSetterAccessor reads through the getter and writes through the
// setter, never touching the backing field.
type getterSetterAccessor struct {
	getter *reflect.Method
	setter *reflect.Method
}

func (a getterSetterAccessor) get(ptr reflect.Value) (reflect.Value, error) {
	if a.getter == nil {
		return reflect.Value{}, ErrNoAccessor
	}
	out := a.getter.Func.Call([]reflect.Value{ptr})
	return out[0], nil
}

func (a getterSetterAccessor) set(ptr reflect.Value, value reflect.Value) error {
	if a.setter == nil {
		return ErrNoAccessor
	}
	a.setter.Func.Call([]reflect.Value{ptr, value})
	return nil
}

// fallbackAccessor prefers the accessor method for each operation and
// falls back to the field when the method is absent.
type fallbackAccessor struct {
	getter   *reflect.Method
	setter   *reflect.Method
	field    []int
	hasField bool
}

func (a fallbackAccessor) get(ptr reflect.Value) (reflect.Value, error) {
	if a.getter != nil {
		out := a.getter.Func.Call([]reflect.Value{ptr})
		return out[0], nil
	}
	if !a.hasField {
		return reflect.Value{}, ErrNoAccessor
	}
	return ptr.Elem().FieldByIndex(a.field), nil
}

func (a fallbackAccessor) set(ptr reflect.Value, value reflect.Value) error {
	if a.setter != nil {
		a.setter.Func.Call([]reflect.Value{ptr, value})
		return nil
	}
	if !a.hasField {
		return ErrNoAccessor
	}
	ptr.Elem().FieldByIndex(a.field).Set(value)
	return nil
}

// bindAccessor picks the accessor variant for the handles the access
// strategy left in the signal.
func bindAccessor(sig Signal) (accessor, error) {
	switch {
	case sig.Getter == nil && sig.Setter == nil && sig.Field == nil:
		return nil, ErrNoAccessor
	case sig.Getter != nil && sig.Setter != nil:
		// full accessor pair wins even when a backing field exists
		return getterSetterAccessor{getter: sig.Getter, setter: sig.Setter}, nil
	case sig.Getter == nil && sig.Setter == nil:
		return fieldAccessor{index: sig.Field.Index}, nil
	default:
		a := fallbackAccessor{getter: sig.Getter, setter: sig.Setter}
		if sig.Field != nil {
			a.field = sig.Field.Index
			a.hasField = true
		}
		return a, nil
	}
}
