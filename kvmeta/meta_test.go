package kvmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetString(t *testing.T) {
	var tbl Table
	tbl.SetString(Owner, "alice")
	v, ok := tbl.GetString(Owner)
	require.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestClearEmpties(t *testing.T) {
	var tbl Table
	tbl.SetString(Comment, "hi")
	tbl.Clear()
	assert.Equal(t, 0, tbl.Len())
	_, ok := tbl.GetString(Comment)
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	var tbl Table
	tbl.SetString(Owner, "alice")
	clone := tbl.Clone()
	tbl.SetString(Owner, "bob")
	v, _ := clone.GetString(Owner)
	assert.Equal(t, "alice", v)
}

func TestNamesSorted(t *testing.T) {
	var tbl Table
	tbl.SetString("zebra", "1")
	tbl.SetString("alpha", "2")
	assert.Equal(t, []string{"alpha", "zebra"}, tbl.Names())
}

func TestEqual(t *testing.T) {
	var a, b Table
	a.SetString(Owner, "alice")
	b.SetString(Owner, "alice")
	assert.True(t, Equal(a, b))
	b.SetString(Owner, "bob")
	assert.False(t, Equal(a, b))
}
