/*
Package trie is the prefix tree holding the dictionary.

Every edge is a single rune, so a node's depth equals the length of the path from the root.
The suggest package walks these nodes one level per input symbol.

	t := trie.New()
	t.Insert("hello")
	t.InsertRanked("halo", 3)
	words := t.Root().CollectWords()

Nodes are created lazily during insertion and never removed.
*/
package trie

import "math"

// DefaultRank is the rank of every node that was never given one through InsertRanked.
const DefaultRank = math.MaxInt

// Node is a single trie node. A node owns its children exclusively.
type Node struct {
	children map[rune]*Node
	word     string
	terminal bool
	rank     int
}

func newNode() *Node {
	return &Node{
		children: make(map[rune]*Node),
		rank:     DefaultRank,
	}
}

// Word returns the complete word ending at n, if any.
// The empty word is reported as ("", true) on the root.
func (n *Node) Word() (string, bool) {
	return n.word, n.terminal
}

// Terminal reports whether an inserted word ends at n.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Rank returns the rank used for tie-breaking.
func (n *Node) Rank() int {
	return n.rank
}

// Child returns the child reached through r, or nil.
func (n *Node) Child(r rune) *Node {
	return n.children[r]
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// Each calls fn for every child in no particular order.
func (n *Node) Each(fn func(r rune, child *Node)) {
	for r, child := range n.children {
		fn(r, child)
	}
}

// CollectWords returns every complete word at or beneath n.
// The walk stops descending a branch at the first terminal node it meets,
// except at the root whose empty word would otherwise hide the whole dictionary.
func (n *Node) CollectWords() []string {
	var words []string
	n.visit(true, func(t *Node) {
		words = append(words, t.word)
	})
	return words
}

// Terminals is CollectWords returning the terminal nodes instead of their words.
func (n *Node) Terminals() []*Node {
	var nodes []*Node
	n.visit(true, func(t *Node) {
		nodes = append(nodes, t)
	})
	return nodes
}

func (n *Node) visit(top bool, fn func(*Node)) {
	if n.terminal {
		fn(n)
		// only the empty word sits on the root
		if !top || n.word != "" {
			return
		}
	}
	for _, child := range n.children {
		child.visit(false, fn)
	}
}

// Tree is the dictionary prefix tree.
type Tree struct {
	root  *Node
	words int
	nodes int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{
		root:  newNode(),
		nodes: 1,
	}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Insert adds word to the tree. Inserting the same word again is a no-op.
// The empty word marks the root itself.
func (t *Tree) Insert(word string) {
	t.insert(word)
}

// InsertRanked adds word and sets the rank of its terminal node.
// Re-inserting a word overwrites its rank.
func (t *Tree) InsertRanked(word string, rank int) {
	t.insert(word).rank = rank
}

func (t *Tree) insert(word string) *Node {
	node := t.root
	for _, r := range word {
		child, ok := node.children[r]
		if !ok {
			child = newNode()
			node.children[r] = child
			t.nodes++
		}
		node = child
	}
	if !node.terminal {
		t.words++
	}
	node.word = word
	node.terminal = true
	return node
}

// Len returns the number of distinct words.
func (t *Tree) Len() int {
	return t.words
}

// Nodes returns the number of nodes including the root.
func (t *Tree) Nodes() int {
	return t.nodes
}
