package suggest

import (
	"fmt"

	"github.com/bastiangx/levtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

// Search returns every word of t within maxCost edits of word, sorted by key.
//
// Unlike Step it compares whole words rather than prefixes and keeps no state between calls.
// A branch is abandoned once every entry of its row exceeds maxCost, since no word below it
// can get closer.
func Search(t *trie.Tree, word string, maxCost int, key SortKey) ([]Match, error) {
	if t == nil {
		return nil, ErrNoTree
	}
	if maxCost < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCost, maxCost)
	}
	if !key.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSortKey, int(key))
	}

	target := []rune(word)
	row := make([]int, len(target)+1)
	for i := range row {
		row[i] = i
	}

	var matches []Match
	root := t.Root()
	if root.Terminal() && len(target) <= maxCost {
		matches = append(matches, Match{Word: "", Cost: len(target), Rank: root.Rank()})
	}
	root.Each(func(r rune, child *trie.Node) {
		matches = searchNode(child, r, target, row, maxCost, matches)
	})
	sortMatches(matches, key)

	log.Debug("search", "word", word, "matches", len(matches))
	return matches, nil
}

func searchNode(node *trie.Node, symbol rune, target []rune, prev []int, maxCost int, matches []Match) []Match {
	n := len(target)
	row := make([]int, n+1)
	row[0] = prev[0] + 1
	lowest := row[0]
	for i := 1; i <= n; i++ {
		sub := prev[i-1]
		if target[i-1] != symbol {
			sub++
		}
		row[i] = min(row[i-1]+1, prev[i]+1, sub)
		lowest = min(lowest, row[i])
	}

	if word, ok := node.Word(); ok && row[n] <= maxCost {
		matches = append(matches, Match{Word: word, Cost: row[n], Rank: node.Rank()})
	}
	if lowest > maxCost {
		return matches
	}
	node.Each(func(r rune, child *trie.Node) {
		matches = searchNode(child, r, target, row, maxCost, matches)
	})
	return matches
}

// Search runs a whole-word search over the matcher's tree.
// The session input and frontier are left untouched.
func (m *Matcher) Search(word string, maxCost int, key SortKey) ([]Match, error) {
	return Search(m.tree, word, maxCost, key)
}
