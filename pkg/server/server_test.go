package server

import (
	"bytes"
	"io"
	"testing"

	"github.com/bastiangx/levtrie/pkg/config"
	"github.com/bastiangx/levtrie/pkg/suggest"
	"github.com/bastiangx/levtrie/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func newSession() *suggest.Matcher {
	t := trie.New()
	for _, w := range []string{"hello", "halo", "hallelujah"} {
		t.Insert(w)
	}
	return suggest.NewMatcher(t)
}

func intp(v int) *int { return &v }

func TestStartRoundTrip(t *testing.T) {
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	require.NoError(t, enc.Encode(Request{ID: "1", Action: "step", Char: "h", MaxCost: intp(1)}))
	require.NoError(t, enc.Encode(Request{ID: "2", Action: "step", Char: "e", MaxCost: intp(0)}))
	require.NoError(t, enc.Encode(Request{ID: "3", Action: "reset"}))
	require.NoError(t, enc.Encode(Request{ID: "4", Action: "stats"}))

	srv := NewServerIO(newSession(), config.DefaultConfig(), &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)

	var first StepResponse
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, 3, first.Count)
	assert.Equal(t, "h", first.Input)

	var second StepResponse
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "he", second.Input)
	assert.Equal(t, []Suggestion{{Word: "hello", Cost: 0, Rank: trie.DefaultRank}}, second.Suggestions)

	var reset StatusResponse
	require.NoError(t, dec.Decode(&reset))
	assert.Equal(t, StatusResponse{ID: "3", Status: "ok"}, reset)

	var stats StatusResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, 0, stats.Stats["input"])
	assert.Equal(t, 3, stats.Stats["words"])
}

func TestHandleType(t *testing.T) {
	srv := NewServerIO(newSession(), nil, bytes.NewReader(nil), io.Discard)

	resp := srv.Handle(Request{ID: "t", Action: "type", Input: "helo", MaxCost: intp(1), Limit: intp(1)})
	step, ok := resp.(StepResponse)
	require.True(t, ok, "%#v", resp)
	assert.Equal(t, "helo", step.Input)
	assert.Equal(t, 1, step.Count)
	// "hell" and "halo" are both one edit from "helo"
	assert.Contains(t, []string{"hello", "halo"}, step.Suggestions[0].Word)
	assert.Equal(t, 1, step.Suggestions[0].Cost)
}

func TestHandleSearch(t *testing.T) {
	session := newSession()
	srv := NewServerIO(session, nil, bytes.NewReader(nil), io.Discard)

	_, ok := srv.Handle(Request{Action: "step", Char: "h", MaxCost: intp(0)}).(StepResponse)
	require.True(t, ok)

	resp := srv.Handle(Request{ID: "s", Action: "search", Input: "hellus", MaxCost: intp(2)})
	found, ok := resp.(StepResponse)
	require.True(t, ok, "%#v", resp)
	assert.Equal(t, "s", found.ID)
	assert.Equal(t, "hellus", found.Input)
	assert.Equal(t, []Suggestion{{Word: "hello", Cost: 2, Rank: trie.DefaultRank}}, found.Suggestions)
	assert.Equal(t, "h", session.Input())

	resp = srv.Handle(Request{ID: "p", Action: "search", Input: "hal", MaxCost: intp(0)})
	found, ok = resp.(StepResponse)
	require.True(t, ok, "%#v", resp)
	assert.Empty(t, found.Suggestions)
}

func TestHandleErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxInput = 3
	srv := NewServerIO(newSession(), cfg, bytes.NewReader(nil), io.Discard)

	testCases := []struct {
		name string
		req  Request
	}{
		{"unknown action", Request{Action: "fly"}},
		{"two symbols", Request{Action: "step", Char: "he"}},
		{"no symbol", Request{Action: "step"}},
		{"negative cost", Request{Action: "step", Char: "h", MaxCost: intp(-1)}},
		{"bad sort", Request{Action: "step", Char: "h", Sort: "alpha"}},
		{"input too long", Request{Action: "type", Input: "hello"}},
		{"search too long", Request{Action: "search", Input: "hello"}},
		{"search negative cost", Request{Action: "search", Input: "h", MaxCost: intp(-1)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.ID = tc.name
			resp, ok := srv.Handle(tc.req).(ErrorResponse)
			require.True(t, ok)
			assert.Equal(t, tc.name, resp.ID)
			assert.Equal(t, codeBadRequest, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestStepInputLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxInput = 2
	srv := NewServerIO(newSession(), cfg, bytes.NewReader(nil), io.Discard)

	for _, ch := range []string{"h", "a"} {
		_, ok := srv.Handle(Request{Action: "step", Char: ch}).(StepResponse)
		require.True(t, ok)
	}
	resp, ok := srv.Handle(Request{Action: "step", Char: "l"}).(ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, codeBadRequest, resp.Code)
}

func TestStartBadStream(t *testing.T) {
	var out bytes.Buffer
	srv := NewServerIO(newSession(), nil, bytes.NewReader([]byte{0xc1}), &out)

	assert.Error(t, srv.Start())

	var resp ErrorResponse
	require.NoError(t, msgpack.NewDecoder(&out).Decode(&resp))
	assert.Equal(t, codeBadRequest, resp.Code)
}
