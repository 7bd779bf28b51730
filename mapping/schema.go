package mapping

import (
	"reflect"
	"strings"
)

// Schema is the resolved mapping of one entity type: an ordered, read-only
// collection of property descriptors shared by all later consumers.
type Schema struct {
	EntityName string
	TableName  string
	Type       reflect.Type
	Properties []*Property
	// PartitionKey and ClusteringColumns are ordered by position.
	PartitionKey      []*Property
	ClusteringColumns []*Property

	byMapped map[string]*Property
	byName   map[string]*Property
}

// Property looks up a descriptor by mapped (column) name. Case-sensitive
// properties match verbatim only; others match case-insensitively.
func (s *Schema) Property(mappedName string) (*Property, bool) {
	if p, ok := s.byMapped[mappedName]; ok {
		return p, true
	}
	if p, ok := s.byMapped[strings.ToLower(mappedName)]; ok && !p.caseSensitive {
		return p, true
	}
	return nil, false
}

// PropertyByName looks up a descriptor by its logical property name.
func (s *Schema) PropertyByName(name string) (*Property, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// lookupKey is the byMapped index key: verbatim for case-sensitive names,
// lowercase otherwise (inferMappedName already lowercased those).
func lookupKey(p *Property) string {
	return p.mappedName
}
