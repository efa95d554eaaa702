/*
Package dictionary reads word lists and builds the prefix tree the matcher runs on.

A word list has one entry per line. An entry is a bare word or a word followed by an integer
rank, separated by a tab or spaces. Blank lines and lines starting with # are skipped, and a
line holding only "" adds the empty word:

	# greetings
	hello	12
	halo
	""

Words are staged in a patricia trie so that duplicates collapse before they are inserted into
the trie package's tree. A later ranked entry overrides an earlier rank; a bare entry never
clears one.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/levtrie/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

var (
	// ErrFormat is returned for files or lines that are not a word list.
	ErrFormat = errors.New("invalid word list")

	// ErrBadRank is returned when the rank column is not an integer.
	ErrBadRank = errors.New("invalid rank")
)

// entry is the patricia item for a staged word.
type entry struct {
	rank   int
	ranked bool
}

// Words is a deduplicated set of dictionary words.
type Words struct {
	staged *patricia.Trie
	count  int
	empty  *entry
}

// NewWords returns an empty set.
func NewWords() *Words {
	return &Words{staged: patricia.NewTrie()}
}

// Add stages word without a rank.
func (w *Words) Add(word string) {
	w.put(word, entry{})
}

// AddRanked stages word with rank.
func (w *Words) AddRanked(word string, rank int) {
	w.put(word, entry{rank: rank, ranked: true})
}

func (w *Words) put(word string, e entry) {
	// a later ranked entry overrides, a bare one never clears a rank
	if word == "" {
		if w.empty == nil {
			w.count++
		} else if !e.ranked {
			return
		}
		w.empty = &e
		return
	}
	key := patricia.Prefix(word)
	if prev := w.staged.Get(key); prev == nil {
		w.count++
	} else if !e.ranked {
		return
	}
	w.staged.Set(key, e)
}

// Has reports whether word was staged.
func (w *Words) Has(word string) bool {
	if word == "" {
		return w.empty != nil
	}
	return w.staged.Get(patricia.Prefix(word)) != nil
}

// Rank returns the rank of word and whether one was given.
func (w *Words) Rank(word string) (int, bool) {
	if word == "" {
		if w.empty == nil {
			return 0, false
		}
		return w.empty.rank, w.empty.ranked
	}
	item := w.staged.Get(patricia.Prefix(word))
	if item == nil {
		return 0, false
	}
	e := item.(entry)
	return e.rank, e.ranked
}

// Len returns the number of distinct words.
func (w *Words) Len() int {
	return w.count
}

// Each calls fn for every staged word. Returning an error stops the walk.
func (w *Words) Each(fn func(word string, rank int, ranked bool) error) error {
	if w.empty != nil {
		if err := fn("", w.empty.rank, w.empty.ranked); err != nil {
			return err
		}
	}
	return w.staged.Visit(func(p patricia.Prefix, item patricia.Item) error {
		e := item.(entry)
		return fn(string(p), e.rank, e.ranked)
	})
}

// Into inserts every word into t and returns how many were inserted.
func (w *Words) Into(t *trie.Tree) (int, error) {
	n := 0
	err := w.Each(func(word string, rank int, ranked bool) error {
		if ranked {
			t.InsertRanked(word, rank)
		} else {
			t.Insert(word)
		}
		n++
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("inserting staged words: %w", err)
	}
	return n, nil
}

// Build returns a new tree holding every word.
func (w *Words) Build() (*trie.Tree, error) {
	t := trie.New()
	n, err := w.Into(t)
	if err != nil {
		return nil, err
	}
	log.Debugf("Built trie: words=[%d], nodes=[%d]", n, t.Nodes())
	return t, nil
}

// Load parses a word list.
func Load(r io.Reader) (*Words, error) {
	words := NewWords()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parseLine(words, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	log.Debugf("Loaded %d words from %d lines", words.Len(), lineNo)
	return words, nil
}

func parseLine(words *Words, line string) error {
	var fields []string
	if strings.Contains(line, "\t") {
		fields = strings.Split(line, "\t")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
	} else {
		fields = strings.Fields(line)
	}

	word := fields[0]
	if word == `""` {
		word = ""
	}

	switch len(fields) {
	case 1:
		words.Add(word)
	case 2:
		rank, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("%w %q for %q", ErrBadRank, fields[1], word)
		}
		words.AddRanked(word, rank)
	default:
		return fmt.Errorf("%w: expected word and optional rank, got %d fields", ErrFormat, len(fields))
	}
	return nil
}

// LoadFile detects the format of filename from its extension and loads it.
func LoadFile(filename string) (*Words, error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", filename, err)
	}
	defer file.Close()

	log.Debugf("Reading %s as %s", filename, format)
	words, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return words, nil
}
