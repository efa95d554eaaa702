package suggest

import "errors"

var (
	// ErrNegativeCost is returned when a step is given a negative edit-distance bound.
	ErrNegativeCost = errors.New("max cost must be non-negative")

	// ErrUnknownSortKey is returned for a sort key other than SortPriority or SortDistance.
	ErrUnknownSortKey = errors.New("unknown sort key")

	// ErrNoTree is returned by a Matcher that was not built with NewMatcher.
	ErrNoTree = errors.New("matcher has no tree")
)
