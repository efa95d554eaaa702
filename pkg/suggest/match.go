package suggest

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the ordering of a step's matches.
type SortKey int

const (
	// SortPriority orders by rank descending, then cost descending.
	SortPriority SortKey = iota
	// SortDistance orders by cost descending, then rank descending.
	SortDistance
)

func (k SortKey) String() string {
	switch k {
	case SortPriority:
		return "priority"
	case SortDistance:
		return "distance"
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// ParseSortKey accepts "priority" or "distance", case-insensitively.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "priority":
		return SortPriority, nil
	case "distance":
		return SortDistance, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

func (k SortKey) valid() bool {
	return k == SortPriority || k == SortDistance
}

// Match is a single completion: the word, the edit cost of the prefix it was found under
// and the rank of its terminal node.
type Match struct {
	Word string
	Cost int
	Rank int
}

// sortMatches orders ms descending on the key's primary field.
// Closest-first callers have to reverse or re-sort themselves.
func sortMatches(ms []Match, key SortKey) {
	sort.SliceStable(ms, func(i, j int) bool {
		a, b := ms[i], ms[j]
		if key == SortPriority {
			if a.Rank != b.Rank {
				return a.Rank > b.Rank
			}
			return a.Cost > b.Cost
		}
		if a.Cost != b.Cost {
			return a.Cost > b.Cost
		}
		return a.Rank > b.Rank
	})
}

// Limit truncates ms to n entries when n > 0.
func Limit(ms []Match, n int) []Match {
	if n > 0 && len(ms) > n {
		return ms[:n]
	}
	return ms
}
