package translit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBidirectional(t *testing.T) {
	m := NewMap()
	m.Add("ঢাকা", "Dhaka", "Dacca")

	t.Run("canonical resolves to variants", func(t *testing.T) {
		canonical, variants, ok := m.Lookup("ঢাকা")
		require.True(t, ok)
		assert.Equal(t, "ঢাকা", canonical)
		assert.ElementsMatch(t, []string{"dhaka", "dacca"}, variants)
	})

	t.Run("variant resolves back to canonical", func(t *testing.T) {
		canonical, _, ok := m.Lookup("dacca")
		require.True(t, ok)
		assert.Equal(t, "ঢাকা", canonical)
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		canonical, _, ok := m.Lookup("DHAKA")
		require.True(t, ok)
		assert.Equal(t, "ঢাকা", canonical)
	})

	t.Run("unknown token misses", func(t *testing.T) {
		_, _, ok := m.Lookup("chattogram")
		assert.False(t, ok)
	})
}

func TestExpand(t *testing.T) {
	m := NewMap()
	m.Add("ঢাকা", "Dhaka", "Dacca")

	t.Run("variant expands to canonical and siblings", func(t *testing.T) {
		expansion := m.Expand("Dhaka")
		assert.ElementsMatch(t, []string{"dhaka", "ঢাকা", "dacca"}, expansion)
	})

	t.Run("canonical expands to variants", func(t *testing.T) {
		expansion := m.Expand("ঢাকা")
		assert.ElementsMatch(t, []string{"ঢাকা", "dhaka", "dacca"}, expansion)
	})

	t.Run("unknown token expands to itself", func(t *testing.T) {
		assert.Equal(t, []string{"weather"}, m.Expand("weather"))
	})
}

func TestAddAppendsWithoutDuplicates(t *testing.T) {
	m := NewMap()
	m.Add("ঢাকা", "Dhaka")
	m.Add("ঢাকা", "Dhaka", "Dacca")

	_, variants, ok := m.Lookup("ঢাকা")
	require.True(t, ok)
	assert.Equal(t, []string{"dhaka", "dacca"}, variants)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translit.json")
	content := `{"চট্টগ্রাম": ["Chattogram", "Chittagong"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m := NewMap()
	require.NoError(t, m.LoadJSON(path))

	canonical, _, ok := m.Lookup("chittagong")
	require.True(t, ok)
	assert.Equal(t, "চট্টগ্রাম", canonical)

	t.Run("missing file errors", func(t *testing.T) {
		assert.Error(t, m.LoadJSON(filepath.Join(t.TempDir(), "missing.json")))
	})
}

func TestDefaultMapSeeded(t *testing.T) {
	m := NewDefaultMap()
	assert.Greater(t, m.Len(), 0)

	canonical, _, ok := m.Lookup("dhaka")
	require.True(t, ok)
	assert.Equal(t, "ঢাকা", canonical)
}
