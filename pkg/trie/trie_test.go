package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(words ...string) *Tree {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func walk(t *Tree, path string) *Node {
	n := t.Root()
	for _, r := range path {
		if n = n.Child(r); n == nil {
			return nil
		}
	}
	return n
}

func TestInsertCollect(t *testing.T) {
	tr := build("hello", "halo", "hallelujah", "world")

	assert.ElementsMatch(t, []string{"hello", "halo", "hallelujah", "world"}, tr.Root().CollectWords())
	assert.ElementsMatch(t, []string{"halo", "hallelujah"}, walk(tr, "ha").CollectWords())
	assert.ElementsMatch(t, []string{"hello"}, walk(tr, "hel").CollectWords())
	assert.Nil(t, walk(tr, "hx"))
	assert.Equal(t, 4, tr.Len())
}

func TestCollectStopsAtFirstTerminal(t *testing.T) {
	tr := build("to", "too", "tooth", "two")

	// "too" and "tooth" sit below "to" and are not reached from "t"
	assert.ElementsMatch(t, []string{"to", "two"}, walk(tr, "t").CollectWords())
	assert.ElementsMatch(t, []string{"too"}, walk(tr, "too").CollectWords())
	assert.ElementsMatch(t, []string{"tooth"}, walk(tr, "toot").CollectWords())
}

func TestInsertIdempotent(t *testing.T) {
	once := build("cat", "car", "cart")
	twice := build("cat", "car", "cart", "cat", "car", "cart")

	assert.ElementsMatch(t, once.Root().CollectWords(), twice.Root().CollectWords())
	assert.Equal(t, once.Len(), twice.Len())
	assert.Equal(t, once.Nodes(), twice.Nodes())
}

func TestEmptyWord(t *testing.T) {
	tr := build("", "a", "ab")

	word, ok := tr.Root().Word()
	require.True(t, ok)
	assert.Equal(t, "", word)
	assert.True(t, tr.Root().Terminal())

	// the root's empty word does not hide the rest of the dictionary
	assert.ElementsMatch(t, []string{"", "a"}, tr.Root().CollectWords())
	assert.Equal(t, 3, tr.Len())
}

func TestEmptyTree(t *testing.T) {
	tr := New()

	assert.Empty(t, tr.Root().CollectWords())
	assert.False(t, tr.Root().Terminal())
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 1, tr.Nodes())
}

func TestRank(t *testing.T) {
	tr := New()
	tr.Insert("plain")
	tr.InsertRanked("ranked", 7)

	assert.Equal(t, DefaultRank, walk(tr, "plain").Rank())
	assert.Equal(t, 7, walk(tr, "ranked").Rank())
	assert.Equal(t, DefaultRank, walk(tr, "rank").Rank())

	tr.InsertRanked("ranked", 2)
	assert.Equal(t, 2, walk(tr, "ranked").Rank())
	assert.Equal(t, 2, tr.Len())
}

func TestTerminals(t *testing.T) {
	tr := New()
	tr.InsertRanked("ab", 1)
	tr.InsertRanked("ac", 2)

	got := map[string]int{}
	for _, n := range walk(tr, "a").Terminals() {
		w, _ := n.Word()
		got[w] = n.Rank()
	}
	assert.Equal(t, map[string]int{"ab": 1, "ac": 2}, got)
}

func TestMultibyte(t *testing.T) {
	tr := build("åäö", "åa")

	n := tr.Root().Child('å')
	require.NotNil(t, n)
	assert.Equal(t, 2, n.Len())
	assert.ElementsMatch(t, []string{"åäö", "åa"}, n.CollectWords())
}

func TestEach(t *testing.T) {
	tr := build("ab", "ac", "ad")

	seen := map[rune]bool{}
	walk(tr, "a").Each(func(r rune, child *Node) {
		require.NotNil(t, child)
		seen[r] = true
	})
	assert.Equal(t, map[rune]bool{'b': true, 'c': true, 'd': true}, seen)
}
