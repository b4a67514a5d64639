package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDir_PreservesChildOrder(t *testing.T) {
	d := NewDir("root",
		NewFile("b", "2"),
		NewFile("a", "1"),
		NewDir("c"),
	)

	names := make([]string, 0, len(d.Children))
	for _, child := range d.Children {
		names = append(names, child.EntryName())
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestEntryName(t *testing.T) {
	assert.Equal(t, "foo", NewFile("foo", "bar").EntryName())
	assert.Equal(t, "dir", NewDir("dir").EntryName())
}

func TestIndependentConstructionYieldsDistinctIdentity(t *testing.T) {
	a := NewDir("same", NewFile("f", "1"))
	b := NewDir("same", NewFile("f", "1"))

	assert.Equal(t, a, b, "structurally equal")
	assert.NotSame(t, a, b, "distinct references")
}
