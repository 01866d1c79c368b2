package chainmap

import (
	"testing"

	"github.com/danagershon/chainmap/keyfilter"
	"github.com/stretchr/testify/require"
)

func newFilteredMap(t *testing.T) *Map[int64, string] {
	t.Helper()
	f, err := keyfilter.New(256, 0.01, keyfilter.Int64)
	require.NoError(t, err)
	m, err := NewWithFilter(Plain[int64, string](), f)
	require.NoError(t, err)
	return m
}

func TestNewWithFilterRejectsNilFilter(t *testing.T) {
	_, err := NewWithFilter[int, string](Plain[int, string](), nil)
	require.ErrorIs(t, err, ErrNullArgument)
}

func TestFilteredMapBehavesLikePlainMap(t *testing.T) {
	m := newFilteredMap(t)

	require.NoError(t, m.Put(3, "c"))
	require.NoError(t, m.Put(1, "a"))
	require.NoError(t, m.Put(2, "b"))

	require.Equal(t, 3, m.Len())
	require.True(t, m.Contains(2))
	require.False(t, m.Contains(9))

	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "a", v)
	_, ok = m.Get(9)
	require.False(t, ok)

	require.ErrorIs(t, m.Remove(9), ErrItemNotFound)
	require.NoError(t, m.Remove(2))
	require.Equal(t, 2, m.Len())
}

// A removed key stays in the filter, which may only cost a redundant scan;
// lookups must still answer absent.
func TestFilteredMapRemoveStaysCorrect(t *testing.T) {
	m := newFilteredMap(t)

	require.NoError(t, m.Put(7, "x"))
	require.NoError(t, m.Remove(7))

	require.False(t, m.Contains(7))
	_, ok := m.Get(7)
	require.False(t, ok)
	require.ErrorIs(t, m.Remove(7), ErrItemNotFound)

	// Re-inserting after removal works.
	require.NoError(t, m.Put(7, "y"))
	v, ok := m.Get(7)
	require.True(t, ok)
	require.Equal(t, "y", v)
}

func TestFilteredMapClearResetsFilter(t *testing.T) {
	m := newFilteredMap(t)

	for i := int64(0); i < 50; i++ {
		require.NoError(t, m.Put(i, "v"))
	}
	require.NoError(t, m.Clear())

	require.Equal(t, 0, m.Len())
	for i := int64(0); i < 50; i++ {
		require.False(t, m.Contains(i))
	}

	require.NoError(t, m.Put(3, "again"))
	require.True(t, m.Contains(3))
}

func TestCopyOfFilteredMapHasNoFilter(t *testing.T) {
	m := newFilteredMap(t)
	require.NoError(t, m.Put(1, "a"))

	cp, err := m.Copy()
	require.NoError(t, err)
	require.Nil(t, cp.filter)

	// Keys never seen by the source's filter are visible in the copy.
	require.NoError(t, cp.Put(2, "b"))
	require.True(t, cp.Contains(2))
}
