package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalScopeIsUntracked(t *testing.T) {
	tab := New()
	require.True(t, tab.IsGlobal())
	assert.True(t, tab.Declare("a"))
	assert.True(t, tab.Declare("a"), "globals may be redeclared")
	tab.Define("a")

	_, ok := tab.Lookup("a")
	assert.False(t, ok)
	assert.False(t, tab.InInitializer("a"))
}

func TestLookupHops(t *testing.T) {
	tab := New()
	tab.Begin()
	tab.Declare("outer")
	tab.Define("outer")
	tab.Begin()
	tab.Begin()
	tab.Declare("inner")
	tab.Define("inner")

	hops, ok := tab.Lookup("inner")
	require.True(t, ok)
	assert.Equal(t, 0, hops)

	hops, ok = tab.Lookup("outer")
	require.True(t, ok)
	assert.Equal(t, 2, hops)

	_, ok = tab.Lookup("missing")
	assert.False(t, ok)

	tab.End()
	tab.End()
	hops, ok = tab.Lookup("outer")
	require.True(t, ok)
	assert.Equal(t, 0, hops)
	assert.False(t, tab.IsGlobal())
}

func TestShadowingFindsInnermost(t *testing.T) {
	tab := New()
	tab.Begin()
	tab.Declare("a")
	tab.Define("a")
	tab.Begin()
	tab.Declare("a")
	tab.Define("a")

	hops, ok := tab.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 0, hops)
}

func TestDeclareTwiceInSameScope(t *testing.T) {
	tab := New()
	tab.Begin()
	assert.True(t, tab.Declare("a"))
	assert.False(t, tab.Declare("a"))

	tab.Begin()
	assert.True(t, tab.Declare("a"), "shadowing in a nested scope is allowed")
}

func TestInInitializer(t *testing.T) {
	tab := New()
	tab.Begin()
	tab.Declare("a")
	assert.True(t, tab.InInitializer("a"))
	tab.Define("a")
	assert.False(t, tab.InInitializer("a"))
	assert.False(t, tab.InInitializer("b"))
}
