package mapping

import (
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shrek82/rowmap/codec"
)

// Tagger supplies tag strings for properties whose annotations cannot live
// on a struct field, keyed by logical property name. Accessor-only
// properties (getter/setter pairs without an exported backing field) carry
// their annotations this way.
type Tagger interface {
	MappingTags() map[string]string
}

// TableNamer overrides the default snake_case table name.
type TableNamer interface {
	TableName() string
}

var schemaCache sync.Map // cacheKey -> *Schema

type cacheKey struct {
	typ      reflect.Type
	strategy AccessStrategy
}

// GetSchema resolves the mapping schema for entity's type under the given
// configuration. Results are cached per (type, strategy); resolution is a
// pure function of its inputs, so a racing duplicate build publishes an
// equivalent schema. Resolution failures are never cached and no partial
// schema is published.
//
// Schemas resolved with a custom codec registry bypass the cache, since
// the cache key does not carry the registry identity.
func GetSchema(entity any, cfg Config) (*Schema, error) {
	cfg = cfg.withDefaults()

	typ := reflect.TypeOf(entity)
	if typ == nil {
		return nil, ErrNotAStruct
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, ErrNotAStruct
	}

	cacheable := cfg.Codecs == codec.Default()
	key := cacheKey{typ: typ, strategy: cfg.Strategy}
	if cacheable {
		if cached, ok := schemaCache.Load(key); ok {
			return cached.(*Schema), nil
		}
	}

	s, err := resolveSchema(typ, cfg)
	if err != nil {
		return nil, err
	}
	if cacheable {
		schemaCache.Store(key, s)
	}
	return s, nil
}

func resolveSchema(typ reflect.Type, cfg Config) (*Schema, error) {
	start := time.Now()

	s := &Schema{
		EntityName: typ.Name(),
		TableName:  tableName(typ),
		Type:       typ,
		byMapped:   make(map[string]*Property),
		byName:     make(map[string]*Property),
	}

	for _, sig := range collectSignals(typ, cfg) {
		p, err := ResolveProperty(typ, sig, cfg)
		if err != nil {
			return nil, err
		}
		if _, dup := s.byMapped[lookupKey(p)]; dup {
			return nil, &ConfigError{Entity: typ.String(), Property: p.name, Err: ErrDuplicateMappedName}
		}
		s.Properties = append(s.Properties, p)
		s.byMapped[lookupKey(p)] = p
		s.byName[p.name] = p
		if p.partitionKey {
			s.PartitionKey = append(s.PartitionKey, p)
		}
		if p.clusteringColumn {
			s.ClusteringColumns = append(s.ClusteringColumns, p)
		}
	}

	sort.SliceStable(s.PartitionKey, func(i, j int) bool {
		return s.PartitionKey[i].position < s.PartitionKey[j].position
	})
	sort.SliceStable(s.ClusteringColumns, func(i, j int) bool {
		return s.ClusteringColumns[i].position < s.ClusteringColumns[j].position
	})

	cfg.Logger.Schema(typ.String(), time.Since(start), len(s.Properties))
	if len(s.Properties) > 0 {
		cols := make([]string, len(s.Properties))
		for i, p := range s.Properties {
			cols[i] = p.name + " -> " + p.ColumnName()
		}
		cfg.Logger.Dump("schema "+typ.Name(), cols)
	}
	return s, nil
}

// collectSignals enumerates candidate properties: every exported struct
// field plus every Get*/Is* + Set* accessor pair on the pointer type.
// Candidates sharing a logical name merge into one signal, then the access
// strategy decides which handles survive and whether the candidate is
// mapped at all.
func collectSignals(typ reflect.Type, cfg Config) []Signal {
	byName := make(map[string]*Signal)
	var order []string

	ensure := func(name string) *Signal {
		if sig, ok := byName[name]; ok {
			return sig
		}
		sig := &Signal{Name: name, Annotations: AnnotationSet{}}
		byName[name] = sig
		order = append(order, name)
		return sig
	}

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		sig := ensure(decapitalize(f.Name))
		ff := f
		sig.Field = &ff
		sig.Annotations.Merge(ParseTag(f.Tag.Get(TagKey)))
	}

	ptr := reflect.PointerTo(typ)
	for i := 0; i < ptr.NumMethod(); i++ {
		m := ptr.Method(i)
		if name, ok := getterName(m); ok {
			sig := ensure(name)
			mm := m
			sig.Getter = &mm
		} else if name, ok := setterName(m); ok {
			sig := ensure(name)
			mm := m
			sig.Setter = &mm
		}
	}

	// Tag strings supplied by the entity itself, for accessor-only
	// properties. Applied last so they override field tags per kind.
	if tg, ok := reflect.New(typ).Interface().(Tagger); ok {
		for name, tagStr := range tg.MappingTags() {
			if sig, ok := byName[name]; ok {
				sig.Annotations.Merge(ParseTag(tagStr))
			}
		}
	}

	var out []Signal
	for _, name := range order {
		sig := byName[name]
		if sig.Annotations.Has(KindTransient) {
			continue
		}
		switch cfg.Strategy {
		case AccessFields:
			if sig.Field == nil {
				continue
			}
			sig.Getter, sig.Setter = nil, nil
		case AccessGettersAndSetters:
			if sig.Getter == nil {
				continue
			}
		}
		out = append(out, *sig)
	}
	return out
}

// getterName reports whether m is a property getter (GetX or IsX, no
// arguments, one return value) and returns the derived property name.
func getterName(m reflect.Method) (string, bool) {
	if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return "", false
	}
	var rest string
	switch {
	case strings.HasPrefix(m.Name, "Get"):
		rest = m.Name[len("Get"):]
	case strings.HasPrefix(m.Name, "Is"):
		rest = m.Name[len("Is"):]
	default:
		return "", false
	}
	if rest == "" {
		return "", false
	}
	return decapitalize(rest), true
}

// setterName reports whether m is a property setter (SetX, one argument,
// no return values) and returns the derived property name.
func setterName(m reflect.Method) (string, bool) {
	if m.Type.NumIn() != 2 || m.Type.NumOut() != 0 {
		return "", false
	}
	rest := strings.TrimPrefix(m.Name, "Set")
	if rest == m.Name || rest == "" {
		return "", false
	}
	return decapitalize(rest), true
}

func tableName(typ reflect.Type) string {
	if tn, ok := reflect.New(typ).Interface().(TableNamer); ok {
		return tn.TableName()
	}
	return CamelToSnake(typ.Name())
}
