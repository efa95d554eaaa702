// Package cli handles cmd line input for DBG and watching the matcher work symbol by symbol
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/levtrie/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler reads lines and feeds each one through a fresh session, one symbol per step,
// printing the matches after every step.
type InputHandler struct {
	session  suggest.ISession
	maxCost  int
	sortKey  suggest.SortKey
	limit    int
	maxInput int
	search   bool
	out      *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(session suggest.ISession, maxCost int, key suggest.SortKey, limit, maxInput int, out *log.Logger) *InputHandler {
	return &InputHandler{
		session:  session,
		maxCost:  maxCost,
		sortKey:  key,
		limit:    limit,
		maxInput: maxInput,
		out:      out,
	}
}

// SearchMode makes every line a single whole-word search instead of a run of steps.
func (h *InputHandler) SearchMode(on bool) {
	h.search = on
}

// Start begins the interface loop and returns nil once r is exhausted.
func (h *InputHandler) Start(r io.Reader) error {
	h.out.Print("levtrie CLI")
	h.out.Printf("type something and press Enter (max cost %d, sort %s, Ctrl+C to exit):", h.maxCost, h.sortKey)

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			if herr := h.handleInput(line); herr != nil {
				return herr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handleInput resets the session and prints every epoch of line.
func (h *InputHandler) handleInput(line string) error {
	if len([]rune(line)) > h.maxInput {
		h.out.Errorf("Input too long: %s", line)
		return nil
	}

	if h.search {
		return h.handleSearch(line)
	}

	h.session.Reset()
	epoch := 0
	for _, r := range line {
		start := time.Now()
		matches, err := h.session.Step(r, h.maxCost, h.sortKey)
		if err != nil {
			return fmt.Errorf("step %q: %w", r, err)
		}
		log.Debugf("Took [ %v ] for '%s'", time.Since(start), h.session.Input())

		h.out.Printf("epoch %d: %c: %d", epoch, r, len(matches))
		h.printMatches(matches)
		epoch++
	}
	return nil
}

func (h *InputHandler) handleSearch(line string) error {
	start := time.Now()
	matches, err := h.session.Search(line, h.maxCost, h.sortKey)
	if err != nil {
		return fmt.Errorf("search %q: %w", line, err)
	}
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), line)

	h.out.Printf("search %s: %d", line, len(matches))
	h.printMatches(matches)
	return nil
}

func (h *InputHandler) printMatches(matches []suggest.Match) {
	for _, m := range suggest.Limit(matches, h.limit) {
		h.out.Printf("    %-24s %d", displayWord(m.Word), m.Cost)
	}
}

func displayWord(w string) string {
	if w == "" {
		return `""`
	}
	return w
}
