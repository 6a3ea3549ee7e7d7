package contract

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"sort"
	"strings"

	appErrors "github.com/yonasBSD/solidtime/internal/errors"
	"github.com/yonasBSD/solidtime/internal/schema"
)

// ParamType says where a parameter travels.
type ParamType string

const (
	ParamPath  ParamType = "Path"
	ParamQuery ParamType = "Query"
	ParamBody  ParamType = "Body"
)

// Parameter is a declared endpoint input.
type Parameter struct {
	Name     string
	Type     ParamType
	Shape    schema.Shape
	Required bool
}

// Path declares a required path segment.
func Path(name string) Parameter {
	return Parameter{Name: name, Type: ParamPath, Shape: schema.String(), Required: true}
}

// Query declares an optional query parameter.
func Query(name string, shape schema.Shape) Parameter {
	return Parameter{Name: name, Type: ParamQuery, Shape: shape}
}

// RequiredQuery declares a query parameter that must be present.
func RequiredQuery(name string, shape schema.Shape) Parameter {
	return Parameter{Name: name, Type: ParamQuery, Shape: shape, Required: true}
}

// Body declares the JSON request body.
func Body(shape schema.Shape) Parameter {
	return Parameter{Name: "body", Type: ParamBody, Shape: shape, Required: true}
}

// ErrorSpec maps a status code to the shape of its error body.
type ErrorSpec struct {
	Status      int
	Description string
	Shape       schema.Shape
}

// Spec is everything an endpoint declares besides method and path.
type Spec struct {
	Alias       string
	Description string
	Parameters  []Parameter
	Response    schema.Shape
	Errors      []ErrorSpec
}

type segment struct {
	literal string
	param   string
}

// Endpoint is a compiled (method, path) pair. It is immutable and safe for
// concurrent use.
type Endpoint struct {
	Method      string
	Path        string
	Alias       string
	Description string

	parameters []Parameter
	segments   []segment
	pathParams map[string]*schema.Schema
	query      map[string]Parameter
	queryOrder []string
	queryCheck *schema.Schema
	body       *schema.Schema
	response   *schema.Schema
	errors     map[int]*schema.Schema
	errorSpecs []ErrorSpec
}

var methods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodHead:    {},
	http.MethodOptions: {},
}

// DefineEndpoint validates and compiles an endpoint declaration.
func DefineEndpoint(method, path string, spec Spec) (*Endpoint, error) {
	method = strings.ToUpper(method)
	if _, ok := methods[method]; !ok {
		return nil, appErrors.Definitionf("%s: unsupported method %q", spec.Alias, method)
	}
	if spec.Alias == "" {
		return nil, appErrors.Definitionf("%s %s: alias is empty", method, path)
	}
	if !strings.HasPrefix(path, "/") {
		return nil, appErrors.Definitionf("%s: path %q must start with /", spec.Alias, path)
	}
	if spec.Response == nil {
		return nil, appErrors.Definitionf("%s: response shape is missing", spec.Alias)
	}

	e := &Endpoint{
		Method:      method,
		Path:        path,
		Alias:       spec.Alias,
		Description: spec.Description,
		parameters:  append([]Parameter(nil), spec.Parameters...),
		pathParams:  make(map[string]*schema.Schema),
		query:       make(map[string]Parameter),
		errors:      make(map[int]*schema.Schema),
		errorSpecs:  append([]ErrorSpec(nil), spec.Errors...),
	}

	templateParams := make(map[string]bool)
	for _, part := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if strings.HasPrefix(part, ":") {
			name := part[1:]
			if name == "" {
				return nil, appErrors.Definitionf("%s: empty path parameter in %q", spec.Alias, path)
			}
			if _, dup := templateParams[name]; dup {
				return nil, appErrors.Definitionf("%s: path parameter %q repeated", spec.Alias, name)
			}
			templateParams[name] = false
			e.segments = append(e.segments, segment{param: name})
			continue
		}
		e.segments = append(e.segments, segment{literal: part})
	}

	seen := make(map[string]bool)
	var queryProps []schema.Prop
	for _, p := range spec.Parameters {
		if p.Name == "" {
			return nil, appErrors.Definitionf("%s: parameter without a name", spec.Alias)
		}
		key := string(p.Type) + ":" + p.Name
		if seen[key] {
			return nil, appErrors.Definitionf("%s: parameter %q declared twice", spec.Alias, p.Name)
		}
		seen[key] = true
		if p.Shape == nil {
			return nil, appErrors.Definitionf("%s: parameter %q has no shape", spec.Alias, p.Name)
		}

		switch p.Type {
		case ParamPath:
			if _, ok := templateParams[p.Name]; !ok {
				return nil, appErrors.Definitionf("%s: path parameter %q not in %q", spec.Alias, p.Name, path)
			}
			templateParams[p.Name] = true
			s, err := schema.Compile(p.Shape)
			if err != nil {
				return nil, appErrors.Definitionf("%s: path parameter %q: %v", spec.Alias, p.Name, err)
			}
			e.pathParams[p.Name] = s
		case ParamQuery:
			e.query[p.Name] = p
			e.queryOrder = append(e.queryOrder, p.Name)
			if p.Required {
				queryProps = append(queryProps, schema.Field(p.Name, p.Shape))
			} else {
				queryProps = append(queryProps, schema.Optional(p.Name, p.Shape))
			}
		case ParamBody:
			if e.body != nil {
				return nil, appErrors.Definitionf("%s: more than one body parameter", spec.Alias)
			}
			s, err := schema.Compile(p.Shape)
			if err != nil {
				return nil, appErrors.Definitionf("%s: body: %v", spec.Alias, err)
			}
			e.body = s
		default:
			return nil, appErrors.Definitionf("%s: parameter %q has unknown type %q", spec.Alias, p.Name, p.Type)
		}
	}
	for name, declared := range templateParams {
		if !declared {
			return nil, appErrors.Definitionf("%s: path segment :%s has no parameter", spec.Alias, name)
		}
	}

	if len(queryProps) > 0 {
		s, err := schema.Compile(schema.Object(queryProps...))
		if err != nil {
			return nil, appErrors.Definitionf("%s: query: %v", spec.Alias, err)
		}
		e.queryCheck = s
	}

	response, err := schema.Compile(spec.Response)
	if err != nil {
		return nil, appErrors.Definitionf("%s: response: %v", spec.Alias, err)
	}
	e.response = response

	for _, es := range spec.Errors {
		if es.Status < 400 || es.Status > 599 {
			return nil, appErrors.Definitionf("%s: error status %d out of range", spec.Alias, es.Status)
		}
		if _, dup := e.errors[es.Status]; dup {
			return nil, appErrors.Definitionf("%s: error status %d declared twice", spec.Alias, es.Status)
		}
		if es.Shape == nil {
			return nil, appErrors.Definitionf("%s: error status %d has no shape", spec.Alias, es.Status)
		}
		s, err := schema.Compile(es.Shape)
		if err != nil {
			return nil, appErrors.Definitionf("%s: error %d: %v", spec.Alias, es.Status, err)
		}
		e.errors[es.Status] = s
	}
	return e, nil
}

// MustDefineEndpoint is like DefineEndpoint but panics on error.
func MustDefineEndpoint(method, path string, spec Spec) *Endpoint {
	e, err := DefineEndpoint(method, path, spec)
	if err != nil {
		panic(err)
	}
	return e
}

// Parameters returns the declared parameters.
func (e *Endpoint) Parameters() []Parameter {
	return append([]Parameter(nil), e.parameters...)
}

// PathParams lists the template segment names in order.
func (e *Endpoint) PathParams() []string {
	var names []string
	for _, seg := range e.segments {
		if seg.param != "" {
			names = append(names, seg.param)
		}
	}
	return names
}

// QueryParams lists declared query parameter names in order.
func (e *Endpoint) QueryParams() []string {
	return append([]string(nil), e.queryOrder...)
}

// HasBody reports whether the endpoint declares a request body.
func (e *Endpoint) HasBody() bool { return e.body != nil }

// Response returns the success response schema.
func (e *Endpoint) Response() *schema.Schema { return e.response }

// ErrorSchema returns the schema declared for status.
func (e *Endpoint) ErrorSchema(status int) (*schema.Schema, bool) {
	s, ok := e.errors[status]
	return s, ok
}

// ErrorStatuses lists the declared error statuses in ascending order.
func (e *Endpoint) ErrorStatuses() []int {
	statuses := make([]int, 0, len(e.errors))
	for status := range e.errors {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)
	return statuses
}

// ValidateBody encodes v and checks it against the body schema, returning
// the bytes to send. Fields the schema does not declare are sent as given.
func (e *Endpoint) ValidateBody(v any) ([]byte, error) {
	if e.body == nil {
		if v != nil {
			return nil, e.invalid(appErrors.TargetBody, "", "endpoint takes no request body")
		}
		return nil, nil
	}
	if v == nil {
		return nil, e.invalid(appErrors.TargetBody, "", "request body is required")
	}

	var b []byte
	switch raw := v.(type) {
	case json.RawMessage:
		b = raw
	case []byte:
		b = raw
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, e.invalid(appErrors.TargetBody, "", "cannot encode body: "+err.Error())
		}
		b = encoded
	}
	if _, err := e.body.ValidateJSON(b); err != nil {
		return nil, e.tag(err, appErrors.TargetBody)
	}
	return b, nil
}

// ValidateResponse decodes a success payload and checks it against the
// response schema. The decoded value keeps undeclared fields.
func (e *Endpoint) ValidateResponse(b []byte) (any, error) {
	decoded, err := e.response.ValidateJSON(b)
	if err != nil {
		return decoded, e.tag(err, appErrors.TargetResponse)
	}
	return decoded, nil
}

// ParseError decodes an error payload. declared is true when a schema is
// registered for status and the payload matches it. Payloads that are not
// JSON are returned as text.
func (e *Endpoint) ParseError(status int, b []byte) (body any, declared bool) {
	trimmed := bytes.TrimSpace(b)
	if s, ok := e.errors[status]; ok {
		decoded, err := s.ValidateJSON(trimmed)
		if err == nil {
			return decoded, true
		}
		if decoded != nil {
			return decoded, false
		}
		return string(b), false
	}
	if len(trimmed) == 0 {
		return "", false
	}
	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return string(b), false
	}
	return decoded, false
}

func (e *Endpoint) invalid(target, field, message string) error {
	err := appErrors.NewValidationError(target, field, message)
	err.Alias = e.Alias
	return err
}

func (e *Endpoint) tag(err error, target string) error {
	var v *appErrors.ValidationError
	if stdErrors.As(err, &v) {
		v.Target = target
		v.Alias = e.Alias
		return v
	}
	return err
}
