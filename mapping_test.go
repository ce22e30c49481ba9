package reaktor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMappingBasicOps(t *testing.T) {
	m := NewMapping(map[string]int{"a": 1}, StringKeyOf)
	rk := New()
	_, err := rk.Activate(m)
	require.NoError(t, err)

	var changes []Change
	require.NoError(t, rk.On(m, func(c Change) { changes = append(changes, c) }))

	m.Set("a", 2)
	m.Set("b", 3)
	m.Delete("a")

	require.Len(t, changes, 3)
	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, 3, v)
	_, ok = m.Get("a")
	require.False(t, ok)
}

func TestMappingUpdateAndClear(t *testing.T) {
	m := NewMapping(map[string]int{"a": 1, "b": 2}, StringKeyOf)
	rk := New()
	_, _ = rk.Activate(m)

	var n int
	require.NoError(t, rk.On(m, func(Change) { n++ }))

	m.Update(map[string]int{"b": 20, "c": 3})
	require.Equal(t, 2, m.Len())
	_, hasA := m.Get("a")
	require.False(t, hasA)

	m.Clear()
	require.Equal(t, 0, m.Len())
	require.Greater(t, n, 0)
}

func TestMappingValues(t *testing.T) {
	m := NewMapping(map[string]int{"a": 1, "b": 2}, StringKeyOf)
	var sum int
	for v := range m.Values() {
		sum += v
	}
	require.Equal(t, 3, sum)
}
