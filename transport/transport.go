package transport

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/zayadnimrod/fairychess/board"
	"github.com/zayadnimrod/fairychess/moveexpr"
	"github.com/zayadnimrod/fairychess/parser"
	"github.com/zayadnimrod/fairychess/piececache"
	"github.com/zayadnimrod/fairychess/reachability"
)

// CheckRequest is the wire shape of one CheckMove request.
type CheckRequest struct {
	Notation string `json:"notation"`
	// Scenario is YAML board.ScenarioConfig data (see board.LoadScenario).
	Scenario []byte `json:"scenario"`
	Start    [2]int `json:"start"`
	Target   [2]int `json:"target"`
	InvertX  bool   `json:"invert_x"`
	InvertY  bool   `json:"invert_y"`
}

// CheckResponse is the wire shape of a CheckMove reply. Error is set
// instead of Reachable/Path when the request itself was malformed
// (bad notation, bad scenario) — the reachability engine itself never
// fails once given a well-formed graph and board.
type CheckResponse struct {
	Reachable bool     `json:"reachable"`
	Path      [][2]int `json:"path,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Server answers CheckRequest messages received on a NATS subject.
type Server struct {
	conn  *nats.Conn
	sub   *nats.Subscription
	cache *piececache.Cache
}

// Serve connects to the NATS server at url and subscribes subject,
// answering every CheckRequest it receives until Close is called.
func Serve(url, subject string) (*Server, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("transport: connecting to %q: %w", url, err)
	}

	s := &Server{conn: conn, cache: piececache.New()}
	sub, err := conn.Subscribe(subject, s.handle)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("transport: subscribing to %q: %w", subject, err)
	}
	s.sub = sub
	return s, nil
}

// Close unsubscribes and closes the underlying NATS connection.
func (s *Server) Close() error {
	if s.sub != nil {
		_ = s.sub.Unsubscribe()
	}
	s.conn.Close()
	return nil
}

func (s *Server) handle(msg *nats.Msg) {
	var req CheckRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		s.reply(msg, CheckResponse{Error: fmt.Sprintf("transport: decoding request: %v", err)})
		return
	}
	s.reply(msg, Evaluate(s.cache, req))
}

// Evaluate runs one CheckRequest against cache, compiling (or
// reusing a cached compile of) its notation and loading its board
// scenario. It is the handler's pure core, exported so callers can
// exercise it without a live NATS connection.
func Evaluate(cache *piececache.Cache, req CheckRequest) CheckResponse {
	raw, err := parser.Parse(req.Notation)
	if err != nil {
		return CheckResponse{Error: err.Error()}
	}

	graph, err := cache.Compile(moveexpr.Lower(raw))
	if err != nil {
		return CheckResponse{Error: err.Error()}
	}

	b, err := board.LoadScenario(req.Scenario)
	if err != nil {
		return CheckResponse{Error: err.Error()}
	}

	trace, ok := reachability.CheckMove(graph, b, req.Start, req.Target,
		reachability.WithInvertX(req.InvertX), reachability.WithInvertY(req.InvertY))
	if !ok {
		return CheckResponse{Reachable: false}
	}
	return CheckResponse{Reachable: true, Path: trace}
}

func (s *Server) reply(msg *nats.Msg, resp CheckResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = msg.Respond(data)
}

// Request sends req on subject over conn and waits up to timeout for
// a CheckResponse — the client half of the protocol Server answers.
func Request(conn *nats.Conn, subject string, req CheckRequest, timeout time.Duration) (CheckResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return CheckResponse{}, fmt.Errorf("transport: encoding request: %w", err)
	}

	msg, err := conn.Request(subject, data, timeout)
	if err != nil {
		return CheckResponse{}, fmt.Errorf("transport: request to %q: %w", subject, err)
	}

	var resp CheckResponse
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return CheckResponse{}, fmt.Errorf("transport: decoding response: %w", err)
	}
	return resp, nil
}
