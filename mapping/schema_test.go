package mapping

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	Region  string `rowmap:"pk:0"`
	Bucket  string `rowmap:"pk:1"`
	At      int64  `rowmap:"ck:0"`
	Seq     int64  `rowmap:"clustering:1"`
	Payload string
}

func TestSchemaKeyOrdering(t *testing.T) {
	s, err := GetSchema(&event{}, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, s.PartitionKey, 2)
	assert.Equal(t, "region", s.PartitionKey[0].Name())
	assert.Equal(t, "bucket", s.PartitionKey[1].Name())

	require.Len(t, s.ClusteringColumns, 2)
	assert.Equal(t, "at", s.ClusteringColumns[0].Name())
	assert.Equal(t, "seq", s.ClusteringColumns[1].Name())

	p, ok := s.PropertyByName("payload")
	require.True(t, ok)
	assert.Equal(t, -1, p.Position())
}

func TestSchemaTableName(t *testing.T) {
	s, err := GetSchema(&event{}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "event", s.TableName)

	s, err = GetSchema(&namedEntity{}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "custom_table", s.TableName)
}

type namedEntity struct {
	ID int64 `rowmap:"pk"`
}

func (namedEntity) TableName() string { return "custom_table" }

func TestSchemaLookupByMappedName(t *testing.T) {
	s, err := GetSchema(&mixedCase{}, DefaultConfig())
	require.NoError(t, err)

	// case-sensitive names match verbatim only
	p, ok := s.Property("Foo")
	require.True(t, ok)
	assert.Equal(t, "Foo", p.MappedName())
	_, ok = s.Property("FOO")
	assert.False(t, ok)

	// case-insensitive names fold
	p, ok = s.Property("BAR")
	require.True(t, ok)
	assert.Equal(t, "bar", p.MappedName())
}

type mixedCase struct {
	Foo string `rowmap:"column:Foo cs"`
	Bar string
}

func TestSchemaDuplicateMappedName(t *testing.T) {
	_, err := GetSchema(&duplicated{}, DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateMappedName)

	// failures are never cached; a retry fails the same way
	_, err = GetSchema(&duplicated{}, DefaultConfig())
	assert.ErrorIs(t, err, ErrDuplicateMappedName)
}

type duplicated struct {
	A string `rowmap:"column:same"`
	B string `rowmap:"column:same"`
}

func TestSchemaEmptyComputedExpression(t *testing.T) {
	_, err := GetSchema(&badComputed{}, DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyComputedExpression)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "age", cerr.Property)
}

type badComputed struct {
	ID  int64 `rowmap:"pk"`
	Age int   `rowmap:"computed:"`
}

func TestSchemaCaching(t *testing.T) {
	first, err := GetSchema(&event{}, DefaultConfig())
	require.NoError(t, err)
	second, err := GetSchema(&event{}, DefaultConfig())
	require.NoError(t, err)
	assert.Same(t, first, second)

	// a different strategy resolves a different schema
	fields, err := GetSchema(&event{}, Config{Strategy: AccessFields})
	require.NoError(t, err)
	assert.NotSame(t, first, fields)
}

func TestSchemaExcludesUnexportedAndTransient(t *testing.T) {
	s, err := GetSchema(&withHidden{}, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, s.Properties, 1)
	assert.Equal(t, "visible", s.Properties[0].Name())
}

type withHidden struct {
	Visible string
	Skipped string `rowmap:"-"`
	hidden  string
}

func TestSchemaConcurrentResolution(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*Schema, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := GetSchema(&concurrent{}, DefaultConfig())
			if err != nil {
				t.Errorf("GetSchema: %v", err)
				return
			}
			results[i] = s
		}(i)
	}
	wg.Wait()

	for _, s := range results {
		require.NotNil(t, s)
		assert.Equal(t, "concurrent", s.TableName)
		assert.Len(t, s.Properties, 2)
	}
}

type concurrent struct {
	K int `rowmap:"pk"`
	V int
}
