package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/levtrie/pkg/config"
	"github.com/bastiangx/levtrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	codeBadRequest = 400
	codeInternal   = 500
)

// Server handles the IPC for one completion session
type Server struct {
	session suggest.ISession
	config  *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(session suggest.ISession, cfg *config.Config) *Server {
	return NewServerIO(session, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a server on the given streams
func NewServerIO(session suggest.ISession, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		session: session,
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start processes requests until the input stream ends.
func (s *Server) Start() error {
	log.Debug("Starting server")

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Client disconnected (EOF)")
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.send(ErrorResponse{Error: "invalid msgpack request", Code: codeBadRequest})
			return err
		}
		s.send(s.Handle(req))
	}
}

// Handle runs a single request and returns its response.
func (s *Server) Handle(req Request) any {
	switch req.Action {
	case "reset":
		s.session.Reset()
		return StatusResponse{ID: req.ID, Status: "ok"}
	case "step":
		return s.handleStep(req)
	case "type":
		return s.handleType(req)
	case "search":
		return s.handleSearch(req)
	case "stats":
		return StatusResponse{ID: req.ID, Status: "ok", Stats: s.session.Stats()}
	default:
		return s.fail(req.ID, fmt.Errorf("unknown action: %q", req.Action), codeBadRequest)
	}
}

func (s *Server) handleStep(req Request) any {
	if utf8.RuneCountInString(req.Char) != 1 {
		return s.fail(req.ID, fmt.Errorf("step needs exactly one symbol, got %q", req.Char), codeBadRequest)
	}
	if utf8.RuneCountInString(s.session.Input()) >= s.config.Server.MaxInput {
		return s.fail(req.ID, fmt.Errorf("input longer than %d symbols", s.config.Server.MaxInput), codeBadRequest)
	}
	maxCost, key, limit, err := s.params(req)
	if err != nil {
		return s.fail(req.ID, err, codeBadRequest)
	}

	symbol, _ := utf8.DecodeRuneInString(req.Char)
	start := time.Now()
	matches, err := s.session.Step(symbol, maxCost, key)
	if err != nil {
		return s.fail(req.ID, err, codeFor(err))
	}
	return s.respond(req.ID, matches, limit, s.session.Input(), start)
}

func (s *Server) handleType(req Request) any {
	if utf8.RuneCountInString(req.Input) > s.config.Server.MaxInput {
		return s.fail(req.ID, fmt.Errorf("input longer than %d symbols", s.config.Server.MaxInput), codeBadRequest)
	}
	maxCost, key, limit, err := s.params(req)
	if err != nil {
		return s.fail(req.ID, err, codeBadRequest)
	}

	start := time.Now()
	matches, err := s.session.Type(req.Input, maxCost, key)
	if err != nil {
		return s.fail(req.ID, err, codeFor(err))
	}
	return s.respond(req.ID, matches, limit, s.session.Input(), start)
}

// handleSearch answers a whole-word query; the session keeps its input.
func (s *Server) handleSearch(req Request) any {
	if utf8.RuneCountInString(req.Input) > s.config.Server.MaxInput {
		return s.fail(req.ID, fmt.Errorf("input longer than %d symbols", s.config.Server.MaxInput), codeBadRequest)
	}
	maxCost, key, limit, err := s.params(req)
	if err != nil {
		return s.fail(req.ID, err, codeBadRequest)
	}

	start := time.Now()
	matches, err := s.session.Search(req.Input, maxCost, key)
	if err != nil {
		return s.fail(req.ID, err, codeFor(err))
	}
	return s.respond(req.ID, matches, limit, req.Input, start)
}

// params fills in defaults from the matcher config.
func (s *Server) params(req Request) (int, suggest.SortKey, int, error) {
	maxCost := s.config.Matcher.MaxCost
	if req.MaxCost != nil {
		maxCost = *req.MaxCost
	}
	limit := s.config.Matcher.Limit
	if req.Limit != nil {
		limit = *req.Limit
	}
	sortName := s.config.Matcher.Sort
	if req.Sort != "" {
		sortName = req.Sort
	}
	key, err := suggest.ParseSortKey(sortName)
	if err != nil {
		return 0, 0, 0, err
	}
	return maxCost, key, limit, nil
}

func (s *Server) respond(id string, matches []suggest.Match, limit int, input string, start time.Time) StepResponse {
	matches = suggest.Limit(matches, limit)
	suggestions := make([]Suggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = Suggestion{Word: m.Word, Cost: m.Cost, Rank: m.Rank}
	}
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for input '%s'", elapsed, input)
	return StepResponse{
		ID:          id,
		Suggestions: suggestions,
		Count:       len(suggestions),
		Input:       input,
		TimeTaken:   elapsed.Microseconds(),
	}
}

func (s *Server) fail(id string, err error, code int) ErrorResponse {
	log.Warnf("Request %s failed: %v", id, err)
	return ErrorResponse{ID: id, Error: err.Error(), Code: code}
}

func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func codeFor(err error) int {
	if errors.Is(err, suggest.ErrNegativeCost) || errors.Is(err, suggest.ErrUnknownSortKey) {
		return codeBadRequest
	}
	return codeInternal
}
