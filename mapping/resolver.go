package mapping

import (
	"reflect"
	"strings"

	"github.com/shrek82/rowmap/codec"
)

// Signal is the raw per-candidate record produced by property discovery.
// Handles may be nil; the resolver binds whatever the access strategy left
// in place. Resolution is a pure function of the signal and configuration,
// so a racing duplicate resolution is harmless.
type Signal struct {
	Name        string
	Field       *reflect.StructField
	Getter      *reflect.Method
	Setter      *reflect.Method
	Annotations AnnotationSet
}

// ResolveProperty merges one candidate's declared annotations, the naming
// convention and the access-strategy selection into a single immutable
// Property descriptor, or fails with a *ConfigError.
func ResolveProperty(owner reflect.Type, sig Signal, cfg Config) (*Property, error) {
	cfg = cfg.withDefaults()

	fail := func(err error) (*Property, error) {
		return nil, &ConfigError{Entity: owner.String(), Property: sig.Name, Err: err}
	}

	if sig.Name == "" {
		return fail(ErrEmptyMappedName)
	}
	if sig.Annotations == nil {
		sig.Annotations = AnnotationSet{}
	}

	isPK := sig.Annotations.Has(KindPartitionKey)
	isCC := sig.Annotations.Has(KindClusteringColumn)
	if isPK && isCC {
		return fail(ErrConflictingKeyRoles)
	}

	mappedName, caseSensitive, err := inferMappedName(sig)
	if err != nil {
		return fail(err)
	}

	typ, err := inferType(sig)
	if err != nil {
		return fail(err)
	}

	cdc, err := inferCodec(sig.Annotations, cfg.Codecs)
	if err != nil {
		return fail(err)
	}

	acc, err := bindAccessor(sig)
	if err != nil {
		return fail(err)
	}

	return &Property{
		name:             sig.Name,
		mappedName:       mappedName,
		typ:              typ,
		owner:            owner,
		partitionKey:     isPK,
		clusteringColumn: isCC,
		computed:         sig.Annotations.Has(KindComputed),
		caseSensitive:    caseSensitive,
		position:         inferPosition(sig.Annotations),
		codec:            cdc,
		acc:              acc,
	}, nil
}

// inferMappedName applies the mapped-name precedence rules: computed
// expression, then column annotation, then nested-field annotation, then
// the property name itself. Case-insensitive names are lowercased for
// external comparison; case-sensitive names are preserved verbatim.
func inferMappedName(sig Signal) (string, bool, error) {
	if a, ok := sig.Annotations[KindComputed]; ok {
		expr := a.(Computed).Expression
		if expr == "" {
			return "", false, ErrEmptyComputedExpression
		}
		return expr, false, nil
	}
	name := sig.Name
	caseSensitive := false
	if a, ok := sig.Annotations[KindColumn]; ok {
		col := a.(Column)
		caseSensitive = col.CaseSensitive
		if col.Name != "" {
			name = col.Name
		}
	} else if a, ok := sig.Annotations[KindField]; ok {
		f := a.(NestedField)
		caseSensitive = f.CaseSensitive
		if f.Name != "" {
			name = f.Name
		}
	}
	if name == "" {
		return "", false, ErrEmptyMappedName
	}
	if caseSensitive {
		return name, true, nil
	}
	return strings.ToLower(name), false, nil
}

// inferType returns the getter's declared return type when a getter
// exists, else the field's declared type. reflect.Type carries the full
// parameterization, which downstream codec selection depends on.
func inferType(sig Signal) (reflect.Type, error) {
	if sig.Getter != nil {
		return sig.Getter.Type.Out(0), nil
	}
	if sig.Field != nil {
		return sig.Field.Type, nil
	}
	if sig.Setter != nil {
		return sig.Setter.Type.In(1), nil
	}
	return nil, ErrNoAccessor
}

// inferPosition returns the declared key ordinal, or -1 for non-key
// properties.
func inferPosition(set AnnotationSet) int {
	if a, ok := set[KindPartitionKey]; ok {
		return a.(PartitionKey).Position
	}
	if a, ok := set[KindClusteringColumn]; ok {
		return a.(ClusteringColumn).Position
	}
	return -1
}

// inferCodec looks up a codec override on the column annotation first,
// then the nested-field annotation. A column annotation shadows the
// nested-field one even when it declares no codec. Construction happens
// here so a broken codec fails schema resolution, not the first use.
func inferCodec(set AnnotationSet, reg *codec.Registry) (codec.Codec, error) {
	var id string
	if a, ok := set[KindColumn]; ok {
		id = a.(Column).Codec
	} else if a, ok := set[KindField]; ok {
		id = a.(NestedField).Codec
	}
	if id == "" {
		return nil, nil
	}
	return reg.New(id)
}
