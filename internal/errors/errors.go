package errors

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrInvalidDefinition is wrapped by every error raised while declaring a
// schema or an endpoint. Definitions fail at registration time only.
var ErrInvalidDefinition = stdErrors.New("invalid contract definition")

// ErrUnknownEndpoint is returned when a call names an alias that is not registered.
var ErrUnknownEndpoint = stdErrors.New("unknown endpoint alias")

// Validation targets.
const (
	TargetPath     = "path"
	TargetQuery    = "query"
	TargetBody     = "body"
	TargetResponse = "response"
)

// Issue is a single failed constraint.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports values that failed schema checks. Outgoing
// parameters fail with it before any request is sent; a success response
// that does not match its declared schema fails with Target "response".
type ValidationError struct {
	Target string  `json:"target"`
	Alias  string  `json:"alias,omitempty"`
	Issues []Issue `json:"issues"`
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("invalid ")
	b.WriteString(e.Target)
	if e.Alias != "" {
		b.WriteString(" for ")
		b.WriteString(e.Alias)
	}
	for i, issue := range e.Issues {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		if issue.Field != "" {
			b.WriteString(issue.Field)
			b.WriteString(": ")
		}
		b.WriteString(issue.Message)
	}
	return b.String()
}

// Fields groups issue messages by field, the same shape the server uses for
// its 422 responses.
func (e *ValidationError) Fields() map[string][]string {
	out := make(map[string][]string, len(e.Issues))
	for _, issue := range e.Issues {
		out[issue.Field] = append(out[issue.Field], issue.Message)
	}
	return out
}

// NewValidationError creates a ValidationError for a single issue.
func NewValidationError(target, field, message string) *ValidationError {
	return &ValidationError{Target: target, Issues: []Issue{{Field: field, Message: message}}}
}

// HTTPError is returned for any non-2xx response. Body holds the decoded
// JSON payload when the response was JSON, otherwise the raw text.
// Declared is true when a schema is registered for Status and Body matched it.
type HTTPError struct {
	Status   int    `json:"status"`
	Alias    string `json:"alias,omitempty"`
	Body     any    `json:"body"`
	Raw      []byte `json:"-"`
	Declared bool   `json:"declared"`
}

// Error implements the error interface for HTTPError.
func (e *HTTPError) Error() string {
	msg := e.Message()
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Alias != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Alias, e.Status, msg)
	}
	return fmt.Sprintf("status %d: %s", e.Status, msg)
}

func (e *HTTPError) object() map[string]any {
	m, _ := e.Body.(map[string]any)
	return m
}

// Message returns the "message" field shared by every error body shape.
func (e *HTTPError) Message() string {
	if m := e.object(); m != nil {
		if s, ok := m["message"].(string); ok {
			return s
		}
	}
	if s, ok := e.Body.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// Key returns the machine readable key of a 400 API exception body.
func (e *HTTPError) Key() string {
	if m := e.object(); m != nil {
		if s, ok := m["key"].(string); ok {
			return s
		}
	}
	return ""
}

// IsAPIException reports whether the body is a {error, key, message} API exception.
func (e *HTTPError) IsAPIException() bool {
	m := e.object()
	if m == nil {
		return false
	}
	_, hasErr := m["error"].(bool)
	_, hasKey := m["key"].(string)
	return hasErr && hasKey
}

// FieldErrors returns the per-field messages of a 422 validation response.
func (e *HTTPError) FieldErrors() map[string][]string {
	m := e.object()
	if m == nil {
		return nil
	}
	raw, ok := m["errors"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string][]string, len(raw))
	for field, v := range raw {
		list, _ := v.([]any)
		for _, item := range list {
			if s, ok := item.(string); ok {
				out[field] = append(out[field], s)
			}
		}
	}
	return out
}

// Decode unmarshals the raw error body into v.
func (e *HTTPError) Decode(v any) error {
	return json.Unmarshal(e.Raw, v)
}

// TransportError wraps failures below HTTP: DNS, refused connections,
// timeouts and context cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface for TransportError.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap exposes the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Definitionf formats a definition error wrapping ErrInvalidDefinition.
func Definitionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return stdErrors.As(err, &v)
}

// IsHTTPStatus reports whether err is an HTTPError with the given status.
func IsHTTPStatus(err error, status int) bool {
	var h *HTTPError
	return stdErrors.As(err, &h) && h.Status == status
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var t *TransportError
	return stdErrors.As(err, &t)
}

// SortIssues orders issues by field then message for stable output.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Field != issues[j].Field {
			return issues[i].Field < issues[j].Field
		}
		return issues[i].Message < issues[j].Message
	})
}
