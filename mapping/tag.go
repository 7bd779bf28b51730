package mapping

import (
	"fmt"
	"strings"
)

// TagKey is the struct tag key carrying mapping metadata.
const TagKey = "rowmap"

// ParseTag parses a rowmap tag string into an annotation set.
//
// Items are separated by spaces, semicolons or commas, except that commas
// inside parentheses are preserved so computed expressions like
// "computed:ttl(a,b)" survive whole. Recognized items:
//
//	pk[:N]  clustering:N  ck:N  column:name  field:name
//	case_sensitive  cs  codec:id  computed:expr  transient  -
func ParseTag(tagStr string) AnnotationSet {
	set := AnnotationSet{}
	if tagStr == "" {
		return set
	}

	// Support space, semicolon, comma as separators (but keep comma in parens)
	var sb strings.Builder
	inParen := false
	for _, r := range tagStr {
		switch r {
		case '(':
			inParen = true
			sb.WriteRune(r)
		case ')':
			inParen = false
			sb.WriteRune(r)
		case ';', ',':
			if inParen {
				sb.WriteRune(r)
			} else {
				sb.WriteRune(' ')
			}
		default:
			sb.WriteRune(r)
		}
	}

	var (
		colName, fieldName  string
		hasColumn, hasField bool
		caseSensitive       bool
		codecID             string
	)

	for _, part := range strings.Fields(sb.String()) {
		kv := strings.SplitN(part, ":", 2)
		key := strings.ToLower(kv[0])
		var val string
		if len(kv) > 1 {
			val = kv[1]
		}

		switch key {
		case "-", "transient":
			set.Add(Transient{})
		case "pk", "partition_key":
			pos := 0
			if val != "" {
				fmt.Sscanf(val, "%d", &pos)
			}
			set.Add(PartitionKey{Position: pos})
		case "ck", "clustering":
			pos := 0
			if val != "" {
				fmt.Sscanf(val, "%d", &pos)
			}
			set.Add(ClusteringColumn{Position: pos})
		case "computed":
			set.Add(Computed{Expression: val})
		case "column":
			hasColumn = true
			colName = val
		case "field":
			hasField = true
			fieldName = val
		case "cs", "case_sensitive":
			caseSensitive = true
		case "codec":
			codecID = val
		}
	}

	// case_sensitive and codec are attributes of the column (or nested
	// field) annotation; a bare attribute implies a column annotation
	// with the default name.
	if hasField {
		set.Add(NestedField{Name: fieldName, CaseSensitive: caseSensitive, Codec: codecID})
	} else if hasColumn || caseSensitive || codecID != "" {
		set.Add(Column{Name: colName, CaseSensitive: caseSensitive, Codec: codecID})
	}

	return set
}
