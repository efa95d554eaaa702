package suggest

import (
	"fmt"

	"github.com/bastiangx/levtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

// state is one frontier entry.
//
// row holds the edit distances between the node's path and every prefix of the input,
// so len(row) is always len(input)+1 and cost is row[len(row)-1].
// col holds the distances between every prefix of the path and the whole input.
// It lets the row be extended by one entry when the next symbol arrives.
type state struct {
	node *trie.Node
	path []rune
	row  []int
	col  []int
	cost int
}

// Matcher keeps the frontier of trie nodes within the cost bound across symbol arrivals.
// It is not safe for concurrent use; create one per session.
type Matcher struct {
	tree     *trie.Tree
	input    []rune
	frontier []state
}

// NewMatcher returns a matcher reset at the root of t.
func NewMatcher(t *trie.Tree) *Matcher {
	m := &Matcher{tree: t}
	m.Reset()
	return m
}

// Reset clears the input and puts a single state back at the root.
func (m *Matcher) Reset() {
	m.input = m.input[:0]
	m.frontier = []state{{
		row: []int{0},
		col: []int{0},
	}}
	if m.tree != nil {
		m.frontier[0].node = m.tree.Root()
	}
}

// Input returns the symbols received since the last reset.
func (m *Matcher) Input() string {
	return string(m.input)
}

// FrontierSize returns the number of live search states.
func (m *Matcher) FrontierSize() int {
	return len(m.frontier)
}

// Step appends symbol to the input, advances every frontier state one level down the trie
// and returns the words below the surviving states sorted by key.
// States whose cost exceeds maxCost are dropped for the rest of the session.
func (m *Matcher) Step(symbol rune, maxCost int, key SortKey) ([]Match, error) {
	if m.tree == nil {
		return nil, ErrNoTree
	}
	if maxCost < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCost, maxCost)
	}
	if !key.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSortKey, int(key))
	}
	m.input = append(m.input, symbol)
	previous := m.frontier
	next := make([]state, 0, len(previous))
	for i := range previous {
		next = m.expand(&previous[i], maxCost, next)
	}
	m.frontier = next

	matches := m.collect(maxCost)
	sortMatches(matches, key)

	log.Debug("step", "input", string(m.input), "frontier", len(next), "matches", len(matches))
	return matches, nil
}

// Type resets the matcher and steps through every symbol of input.
// It returns the matches of the last step, or nil for empty input.
func (m *Matcher) Type(input string, maxCost int, key SortKey) ([]Match, error) {
	m.Reset()
	var matches []Match
	var err error
	for _, r := range input {
		if matches, err = m.Step(r, maxCost, key); err != nil {
			return nil, err
		}
	}
	return matches, nil
}

// expand appends to next the children of s that stay within maxCost.
func (m *Matcher) expand(s *state, maxCost int, next []state) []state {
	if s.node.Len() == 0 {
		return next
	}
	n := len(m.input)
	symbol := m.input[n-1]

	// column for the new input length along the parent's path
	col := make([]int, len(s.col))
	col[0] = n
	for i := 1; i < len(col); i++ {
		sub := s.col[i-1]
		if s.path[i-1] != symbol {
			sub++
		}
		col[i] = min(col[i-1]+1, s.col[i]+1, sub)
	}

	prev := make([]int, n+1)
	copy(prev, s.row)
	prev[n] = col[len(col)-1]

	s.node.Each(func(r rune, child *trie.Node) {
		row := make([]int, n+1)
		row[0] = prev[0] + 1
		for i := 1; i <= n; i++ {
			sub := prev[i-1]
			if m.input[i-1] != r {
				sub++
			}
			row[i] = min(row[i-1]+1, prev[i]+1, sub)
		}
		cost := row[n]
		if cost > maxCost {
			return
		}

		path := make([]rune, len(s.path)+1)
		copy(path, s.path)
		path[len(s.path)] = r

		childCol := make([]int, len(col)+1)
		copy(childCol, col)
		childCol[len(col)] = cost

		next = append(next, state{
			node: child,
			path: path,
			row:  row,
			col:  childCol,
			cost: cost,
		})
	})
	return next
}

func (m *Matcher) collect(maxCost int) []Match {
	var matches []Match

	root := m.tree.Root()
	if root.Terminal() && len(m.input) <= maxCost {
		matches = append(matches, Match{Word: "", Cost: len(m.input), Rank: root.Rank()})
	}

	for _, s := range m.frontier {
		for _, t := range s.node.Terminals() {
			word, _ := t.Word()
			matches = append(matches, Match{Word: word, Cost: s.cost, Rank: t.Rank()})
		}
	}
	return matches
}

// Stats returns dictionary and session counters.
func (m *Matcher) Stats() map[string]int {
	stats := map[string]int{
		"frontier": len(m.frontier),
		"input":    len(m.input),
	}
	if m.tree != nil {
		stats["words"] = m.tree.Len()
		stats["nodes"] = m.tree.Nodes()
	}
	return stats
}

var _ ISession = (*Matcher)(nil)
