package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Foo1 maps its single column only through accessors; the field is
// unexported and the partition-key annotation arrives via MappingTags.
type Foo1 struct {
	k          int
	NotAColumn int
}

func (f *Foo1) GetK() int  { return f.k }
func (f *Foo1) SetK(v int) { f.k = v }

func (f *Foo1) MappingTags() map[string]string {
	return map[string]string{"k": "pk"}
}

// Foo2 maps its single column through the field; the accessor methods do
// not correspond to any column.
type Foo2 struct {
	K int `rowmap:"pk"`
}

func (f *Foo2) GetNotAColumn() int  { return 1 }
func (f *Foo2) IsNotAColumn2() bool { return true }

// Foo3 mixes field access (k) with a getter/setter pair (v) backed by a
// transient field.
type Foo3 struct {
	K                       int `rowmap:"pk"`
	StoreVValueButNotMapped int `rowmap:"-"`
}

func (f *Foo3) GetK() int  { return f.K }
func (f *Foo3) SetK(v int) { f.K = v }
func (f *Foo3) GetV() int  { return f.StoreVValueButNotMapped }
func (f *Foo3) SetV(v int) { f.StoreVValueButNotMapped = v }

func TestStrategyGettersAndSettersIgnoresFields(t *testing.T) {
	s, err := GetSchema(&Foo1{}, Config{Strategy: AccessGettersAndSetters})
	require.NoError(t, err)

	require.Len(t, s.Properties, 1)
	p := s.Properties[0]
	assert.Equal(t, "k", p.Name())
	assert.True(t, p.IsPartitionKey())

	// the field-only candidate has no getter and must not be mapped
	_, ok := s.PropertyByName("notAColumn")
	assert.False(t, ok)
}

func TestStrategyFieldsIgnoresGetters(t *testing.T) {
	s, err := GetSchema(&Foo2{}, Config{Strategy: AccessFields})
	require.NoError(t, err)

	require.Len(t, s.Properties, 1)
	assert.Equal(t, "k", s.Properties[0].Name())
	assert.True(t, s.Properties[0].IsPartitionKey())

	for _, name := range []string{"notAColumn", "notAColumn2"} {
		_, ok := s.PropertyByName(name)
		assert.False(t, ok, "accessor-only candidate %s must be excluded", name)
	}
}

func TestStrategyFieldsExcludesAccessorOnlyCandidates(t *testing.T) {
	s, err := GetSchema(&Foo3{}, Config{Strategy: AccessFields})
	require.NoError(t, err)

	require.Len(t, s.Properties, 1)
	assert.Equal(t, "k", s.Properties[0].Name())
	_, ok := s.PropertyByName("v")
	assert.False(t, ok, "getter/setter-only candidate must be excluded under FIELDS")
}

func TestStrategyBothMapsFieldsAndAccessors(t *testing.T) {
	s, err := GetSchema(&Foo3{}, Config{Strategy: AccessBoth})
	require.NoError(t, err)

	require.Len(t, s.Properties, 2)

	k, ok := s.PropertyByName("k")
	require.True(t, ok)
	assert.True(t, k.IsPartitionKey())
	assert.Equal(t, 0, k.Position())

	v, ok := s.PropertyByName("v")
	require.True(t, ok)
	assert.False(t, v.IsPartitionKey())

	// transient backing field is not a property of its own
	_, ok = s.PropertyByName("storeVValueButNotMapped")
	assert.False(t, ok)

	var foo Foo3
	require.NoError(t, v.SetValue(&foo, 1))
	assert.Equal(t, 1, foo.StoreVValueButNotMapped, "v writes through its setter")

	got, err := v.GetValue(&foo)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

// both holds a getter/setter pair whose behavior is observably different
// from raw field access, to pin down which path each operation takes.
type both struct {
	V int
}

func (b *both) GetV() int  { return b.V * 2 }
func (b *both) SetV(v int) { b.V = v * 10 }

func TestStrategyBothPrefersAccessorPair(t *testing.T) {
	s, err := GetSchema(&both{}, Config{Strategy: AccessBoth})
	require.NoError(t, err)

	v, ok := s.PropertyByName("v")
	require.True(t, ok)

	e := &both{}
	require.NoError(t, v.SetValue(e, 3))
	assert.Equal(t, 30, e.V, "write must invoke the setter, not the field")

	got, err := v.GetValue(e)
	require.NoError(t, err)
	assert.Equal(t, 60, got, "read must invoke the getter, not the field")
}
