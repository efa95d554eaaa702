// Package suggest is the core, feeding input one symbol at a time through the trie and returning
// every dictionary word whose prefix stays within an edit-distance bound of what was typed so far.
package suggest

// ISession defines the interface for an incremental completion session
type ISession interface {
	// Reset starts a new query at the trie root
	Reset()

	// Step feeds one symbol and returns the ranked matches
	Step(symbol rune, maxCost int, key SortKey) ([]Match, error)

	// Type resets and feeds every symbol of input, returning the last step's matches
	Type(input string, maxCost int, key SortKey) ([]Match, error)

	// Search returns the dictionary words within maxCost edits of word without touching the session
	Search(word string, maxCost int, key SortKey) ([]Match, error)

	// Input returns the symbols received since the last reset
	Input() string

	// Stats returns statistics about the dictionary and the current frontier
	Stats() map[string]int
}
