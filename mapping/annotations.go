package mapping

// AnnotationKind identifies one kind of mapping annotation.
type AnnotationKind int

const (
	KindColumn AnnotationKind = iota
	KindField
	KindPartitionKey
	KindClusteringColumn
	KindComputed
	KindTransient
)

func (k AnnotationKind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindField:
		return "field"
	case KindPartitionKey:
		return "partition_key"
	case KindClusteringColumn:
		return "clustering_column"
	case KindComputed:
		return "computed"
	case KindTransient:
		return "transient"
	}
	return "unknown"
}

// Annotation is one piece of declared mapping metadata. Annotations are
// plain values; the resolver evaluates them through an ordered rule table,
// never reflectively.
type Annotation interface {
	Kind() AnnotationKind
}

// Column declares the external column backing a property.
type Column struct {
	Name          string
	CaseSensitive bool
	Codec         string
}

func (Column) Kind() AnnotationKind { return KindColumn }

// NestedField mirrors Column for members of nested (UDT-style) types.
type NestedField struct {
	Name          string
	CaseSensitive bool
	Codec         string
}

func (NestedField) Kind() AnnotationKind { return KindField }

// PartitionKey marks a property as a partition-key column at the given ordinal.
type PartitionKey struct {
	Position int
}

func (PartitionKey) Kind() AnnotationKind { return KindPartitionKey }

// ClusteringColumn marks a property as a clustering column at the given ordinal.
type ClusteringColumn struct {
	Position int
}

func (ClusteringColumn) Kind() AnnotationKind { return KindClusteringColumn }

// Computed marks a property whose mapped name is a server-side expression.
type Computed struct {
	Expression string
}

func (Computed) Kind() AnnotationKind { return KindComputed }

// Transient excludes a candidate from the mapped schema.
type Transient struct{}

func (Transient) Kind() AnnotationKind { return KindTransient }

// AnnotationSet holds at most one annotation per kind for one property.
type AnnotationSet map[AnnotationKind]Annotation

// Add stores a, replacing any previous annotation of the same kind.
func (s AnnotationSet) Add(a Annotation) {
	s[a.Kind()] = a
}

// Has reports whether an annotation of kind k is present.
func (s AnnotationSet) Has(k AnnotationKind) bool {
	_, ok := s[k]
	return ok
}

// Merge copies every annotation from other into s, overwriting per kind.
func (s AnnotationSet) Merge(other AnnotationSet) {
	for _, a := range other {
		s.Add(a)
	}
}
