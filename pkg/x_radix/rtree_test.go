// file:radix/pkg/x_radix/rtree_test.go
package x_radix_test

import (
	"testing"

	"github.com/rskv-p/radix/pkg/x_radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// romanTree builds the classic radix fixture.
func romanTree(t *testing.T) *x_radix.RadixTree[int] {
	t.Helper()
	tree := x_radix.New[int]()
	keys := []string{"romane", "romanus", "romulus", "rubens", "ruber", "rubicon", "rubicundus"}
	for i, k := range keys {
		require.NoError(t, tree.Insert(k, i+1))
	}
	return tree
}

func TestInsertFind(t *testing.T) {
	tree := x_radix.New[string]()
	require.NoError(t, tree.Insert("alpha", "a"))

	v, ok := tree.Find("alpha")
	require.True(t, ok)
	assert.Equal(t, "a", *v)
	assert.True(t, tree.Contains("alpha"))
	assert.Equal(t, 1, tree.Size())
}

func TestInsertDuplicate(t *testing.T) {
	tree := x_radix.New[int]()
	require.NoError(t, tree.Insert("alpha", 1))

	err := tree.Insert("alpha", 2)
	assert.ErrorIs(t, err, x_radix.ErrDuplicateKey)

	// Tree unchanged after the rejected insert.
	v, ok := tree.Find("alpha")
	require.True(t, ok)
	assert.Equal(t, 1, *v)
	assert.Equal(t, 1, tree.Size())
}

func TestInsertEmptyKey(t *testing.T) {
	tree := x_radix.New[int]()
	assert.ErrorIs(t, tree.Insert("", 1), x_radix.ErrEmptyKey)
	assert.Equal(t, 0, tree.Size())
}

func TestInsertForkReusesNewNode(t *testing.T) {
	// The new key is a prefix of an existing one, so it becomes the
	// branch holding the old node instead of a third node.
	tree := x_radix.New[int]()
	require.NoError(t, tree.Insert("abc", 1))
	require.NoError(t, tree.Insert("ab", 2))

	assert.True(t, tree.Contains("abc"))
	assert.True(t, tree.Contains("ab"))
	assert.Equal(t, 2, tree.Size())
	assert.ElementsMatch(t, []int{1, 2}, tree.Search("ab"))
}

func TestFindMissing(t *testing.T) {
	tree := x_radix.New[int]()
	require.NoError(t, tree.Insert("alpha", 1))

	v, ok := tree.Find("beta")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, tree.Contains("alp"))
}

func TestDeleteLeaf(t *testing.T) {
	tree := x_radix.New[int]()
	require.NoError(t, tree.Insert("alpha", 1))

	assert.True(t, tree.Delete("alpha"))
	assert.False(t, tree.Contains("alpha"))
	assert.Equal(t, 0, tree.Size())

	// Second delete reports nothing removed.
	assert.False(t, tree.Delete("alpha"))
}

func TestDeleteTombstone(t *testing.T) {
	tree := x_radix.New[int]()
	require.NoError(t, tree.Insert("a", 1))
	require.NoError(t, tree.Insert("ab", 2))

	// "a" has a descendant, so it is tombstoned in place.
	assert.True(t, tree.Delete("a"))
	assert.False(t, tree.Contains("a"))
	assert.True(t, tree.Contains("ab"))
	assert.Equal(t, 1, tree.Size())
	assert.ElementsMatch(t, []int{2}, tree.Search("a"))
}

func TestDeleteBranchNode(t *testing.T) {
	tree := romanTree(t)

	// "roman" exists only as a synthetic branch, never a live entry.
	assert.False(t, tree.Delete("roman"))
	assert.Equal(t, 7, tree.Size())
}

func TestResurrection(t *testing.T) {
	tree := x_radix.New[int]()
	require.NoError(t, tree.Insert("a", 1))
	require.NoError(t, tree.Insert("ab", 2))
	require.True(t, tree.Delete("a"))

	// Re-inserting a tombstoned key reuses the node.
	require.NoError(t, tree.Insert("a", 3))
	v, ok := tree.Find("a")
	require.True(t, ok)
	assert.Equal(t, 3, *v)
	assert.Equal(t, 2, tree.Size())
}

func TestSearchEmptyPrefix(t *testing.T) {
	tree := romanTree(t)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.Search(""))
}

func TestSearchNoMatch(t *testing.T) {
	tree := romanTree(t)
	assert.Empty(t, tree.Search("x"))
	assert.Empty(t, tree.Search("romanesque"))
}

func TestRomanFixture(t *testing.T) {
	tree := romanTree(t)

	assert.Equal(t, 7, tree.Size())
	assert.ElementsMatch(t, []int{1, 2, 3}, tree.Search("rom"))
	assert.ElementsMatch(t, []int{4, 5, 6, 7}, tree.Search("rub"))

	v, ok := tree.Find("rubicon")
	require.True(t, ok)
	assert.Equal(t, 6, *v)

	require.True(t, tree.Delete("ruber"))
	assert.False(t, tree.Contains("ruber"))
	assert.True(t, tree.Contains("rubicon"))
	assert.ElementsMatch(t, []int{4, 6, 7}, tree.Search("rub"))
	assert.Equal(t, 6, tree.Size())
}

func TestWalk(t *testing.T) {
	tree := romanTree(t)

	seen := map[string]int{}
	tree.Walk(func(key string, val *int) bool {
		seen[key] = *val
		return true
	})
	assert.Equal(t, map[string]int{
		"romane": 1, "romanus": 2, "romulus": 3,
		"rubens": 4, "ruber": 5, "rubicon": 6, "rubicundus": 7,
	}, seen)
}

func TestWalkEarlyStop(t *testing.T) {
	tree := romanTree(t)

	var visited int
	tree.Walk(func(key string, val *int) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestWalkSkipsTombstones(t *testing.T) {
	tree := x_radix.New[int]()
	require.NoError(t, tree.Insert("a", 1))
	require.NoError(t, tree.Insert("ab", 2))
	require.True(t, tree.Delete("a"))

	var keys []string
	tree.Walk(func(key string, val *int) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"ab"}, keys)
}

func TestEmpty(t *testing.T) {
	tree := romanTree(t)
	tree.Empty()

	assert.Equal(t, 0, tree.Size())
	assert.False(t, tree.Contains("romane"))
	require.NoError(t, tree.Insert("romane", 1))
	assert.Equal(t, 1, tree.Size())
}

func TestNilTree(t *testing.T) {
	var tree *x_radix.RadixTree[int]

	assert.Equal(t, 0, tree.Size())
	assert.NoError(t, tree.Insert("a", 1))
	assert.False(t, tree.Contains("a"))
	assert.False(t, tree.Delete("a"))
	assert.Empty(t, tree.Search("a"))
	assert.NotNil(t, tree.Empty())
}
