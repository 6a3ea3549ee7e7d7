package mockserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
)

// Request is the validated view of an inbound call handed to a Responder.
type Request struct {
	Alias  string
	Path   map[string]string
	Query  url.Values
	Body   any
	Header http.Header
}

// Reply is a stubbed response. A zero Status means 200, or 204 when Body is nil.
type Reply struct {
	Status int `json:"status"`
	Body   any `json:"body"`
}

func (r Reply) status() int {
	switch {
	case r.Status != 0:
		return r.Status
	case r.Body == nil:
		return http.StatusNoContent
	default:
		return http.StatusOK
	}
}

// Responder produces the reply for one request.
type Responder func(req *Request) Reply

// Static always answers with the same status and body.
func Static(status int, body any) Responder {
	return func(*Request) Reply {
		return Reply{Status: status, Body: body}
	}
}

// ParseFixtures decodes a fixture document mapping aliases to replies.
func ParseFixtures(b []byte) (map[string]Reply, error) {
	var fixtures map[string]Reply
	if err := json.Unmarshal(b, &fixtures); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return fixtures, nil
}

// LoadFixtures reads a fixture file from disk.
func LoadFixtures(path string) (map[string]Reply, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(b)
}
