package mapping

// AccessStrategy selects how ambiguity between a backing field and a
// getter/setter pair is resolved for mapped properties.
type AccessStrategy int

const (
	// AccessBoth uses the getter/setter when present and falls back to the
	// field otherwise. This is the default, and also the implicit behavior
	// of the low-level GetValue/SetValue operations regardless of policy.
	AccessBoth AccessStrategy = iota
	// AccessFields always uses direct field access; accessor methods are
	// ignored even when present. Candidates without a backing field are
	// not mapped.
	AccessFields
	// AccessGettersAndSetters maps only properties exposing a getter.
	// A backing field is retained solely as the low-level write fallback
	// when no setter exists.
	AccessGettersAndSetters
)

func (s AccessStrategy) String() string {
	switch s {
	case AccessFields:
		return "FIELDS"
	case AccessGettersAndSetters:
		return "GETTERS_AND_SETTERS"
	case AccessBoth:
		return "BOTH"
	}
	return "unknown"
}
