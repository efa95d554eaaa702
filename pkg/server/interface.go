/*
Package server implements msgpack IPC for one incremental completion session.

Requests and responses are msgpack maps streamed over stdin/stdout, one after the other.
Every request carries an ID that is echoed back.

Feed one symbol:

	{"id": "1", "action": "step", "ch": "h", "k": 1, "sort": "distance"}

and receive every word within the bound, sorted descending on the sort key:

	{"id": "1", "s": [{"w": "hallelujah", "c": 0, "r": 9223372036854775807}], "n": 1, "in": "h", "t": 21}

Other actions:

	{"id": "2", "action": "reset"}
	{"id": "3", "action": "type", "in": "helo", "k": 1}
	{"id": "4", "action": "stats"}
	{"id": "5", "action": "search", "in": "hellus", "k": 2}

"search" matches whole words instead of prefixes and leaves the session's input alone.

"k", "sort" and "l" (result limit) fall back to the [matcher] section of the config.
Failures come back as {"id": "6", "e": "max cost must be non-negative: got -1", "c": 400}.
*/
package server

// Request is any client message; Action selects the operation.
type Request struct {
	ID      string `msgpack:"id"`
	Action  string `msgpack:"action"`
	Char    string `msgpack:"ch,omitempty"`
	Input   string `msgpack:"in,omitempty"`
	MaxCost *int   `msgpack:"k,omitempty"`
	Sort    string `msgpack:"sort,omitempty"`
	Limit   *int   `msgpack:"l,omitempty"`
}

// Suggestion - one match
type Suggestion struct {
	Word string `msgpack:"w"`
	Cost int    `msgpack:"c"`
	Rank int    `msgpack:"r"`
}

// StepResponse answers step, type and search requests
type StepResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"n"`
	Input       string       `msgpack:"in"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatusResponse answers reset and stats requests
type StatusResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ErrorResponse holds basic error information
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
