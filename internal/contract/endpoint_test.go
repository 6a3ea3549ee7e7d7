package contract

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appErrors "github.com/yonasBSD/solidtime/internal/errors"
	"github.com/yonasBSD/solidtime/internal/schema"
)

var (
	tagResource = schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("name", schema.String()),
	)
	tagStore      = schema.Object(schema.Field("name", schema.String().Min(1).Max(255)))
	messageError  = schema.Object(schema.Field("message", schema.String()))
	apiException  = schema.Object(schema.Field("error", schema.Bool()), schema.Field("key", schema.String()), schema.Field("message", schema.String()))
	validationErr = schema.Object(schema.Field("message", schema.String()), schema.Field("errors", schema.Record(schema.Array(schema.String()))))
)

func envelope(shape schema.Shape) schema.Shape {
	return schema.Object(schema.Field("data", shape))
}

func createTag(t *testing.T) *Endpoint {
	t.Helper()
	e, err := DefineEndpoint(http.MethodPost, "/v1/organizations/:organization/tags", Spec{
		Alias:      "createTag",
		Parameters: []Parameter{Body(tagStore), Path("organization")},
		Response:   envelope(tagResource),
		Errors: []ErrorSpec{
			{Status: 400, Shape: apiException},
			{Status: 422, Shape: validationErr},
			{Status: 401, Shape: messageError},
		},
	})
	require.NoError(t, err)
	return e
}

func listEntries(t *testing.T) *Endpoint {
	t.Helper()
	e, err := DefineEndpoint("get", "/v1/organizations/:organization/time-entries", Spec{
		Alias: "getTimeEntries",
		Parameters: []Parameter{
			Path("organization"),
			Query("limit", schema.Integer().Gte(1).Lte(500)),
			Query("active", schema.Enum("true", "false")),
			Query("billable", schema.Bool()),
			Query("project_ids", schema.Array(schema.UUID()).Min(1)),
			Query("start", schema.Nullable(schema.String())),
		},
		Response: envelope(schema.Array(schema.Object())),
	})
	require.NoError(t, err)
	return e
}

func TestDefineEndpoint(t *testing.T) {
	e := createTag(t)
	assert.Equal(t, http.MethodPost, e.Method)
	assert.Equal(t, "createTag", e.Alias)
	assert.Equal(t, []string{"organization"}, e.PathParams())
	assert.True(t, e.HasBody())
	assert.Equal(t, []int{400, 401, 422}, e.ErrorStatuses())
	assert.Len(t, e.Parameters(), 2)

	_, ok := e.ErrorSchema(422)
	assert.True(t, ok)
	_, ok = e.ErrorSchema(500)
	assert.False(t, ok)

	list := listEntries(t)
	assert.Equal(t, http.MethodGet, list.Method, "methods are normalized")
	assert.False(t, list.HasBody())
	assert.Equal(t, []string{"limit", "active", "billable", "project_ids", "start"}, list.QueryParams())
}

func TestDefineEndpointRejectsMalformedDeclarations(t *testing.T) {
	ok := Spec{Alias: "a", Response: schema.Null()}
	with := func(mut func(*Spec)) Spec {
		s := ok
		mut(&s)
		return s
	}

	tests := []struct {
		name   string
		method string
		path   string
		spec   Spec
	}{
		{"unknown method", "FETCH", "/x", ok},
		{"empty alias", http.MethodGet, "/x", with(func(s *Spec) { s.Alias = "" })},
		{"relative path", http.MethodGet, "x", ok},
		{"missing response", http.MethodGet, "/x", with(func(s *Spec) { s.Response = nil })},
		{"undeclared path segment", http.MethodGet, "/x/:id", ok},
		{"path param not in template", http.MethodGet, "/x", with(func(s *Spec) { s.Parameters = []Parameter{Path("id")} })},
		{"empty path segment name", http.MethodGet, "/x/:", ok},
		{"repeated path segment", http.MethodGet, "/x/:id/:id", with(func(s *Spec) { s.Parameters = []Parameter{Path("id")} })},
		{"repeated path segment apart", http.MethodGet, "/a/:x/b/:x", with(func(s *Spec) { s.Parameters = []Parameter{Path("x")} })},
		{"duplicate parameter", http.MethodGet, "/x", with(func(s *Spec) {
			s.Parameters = []Parameter{Query("q", schema.String()), Query("q", schema.String())}
		})},
		{"parameter without name", http.MethodGet, "/x", with(func(s *Spec) {
			s.Parameters = []Parameter{{Type: ParamQuery, Shape: schema.String()}}
		})},
		{"parameter without shape", http.MethodGet, "/x", with(func(s *Spec) {
			s.Parameters = []Parameter{{Name: "q", Type: ParamQuery}}
		})},
		{"unknown parameter type", http.MethodGet, "/x", with(func(s *Spec) {
			s.Parameters = []Parameter{{Name: "q", Type: "Header", Shape: schema.String()}}
		})},
		{"two bodies", http.MethodPost, "/x", with(func(s *Spec) {
			s.Parameters = []Parameter{Body(tagStore), {Name: "other", Type: ParamBody, Shape: tagStore}}
		})},
		{"malformed body", http.MethodPost, "/x", with(func(s *Spec) { s.Parameters = []Parameter{Body(schema.Enum())} })},
		{"malformed response", http.MethodGet, "/x", with(func(s *Spec) { s.Response = schema.String().Min(3).Max(1) })},
		{"error status below 400", http.MethodGet, "/x", with(func(s *Spec) { s.Errors = []ErrorSpec{{Status: 302, Shape: messageError}} })},
		{"error status above 599", http.MethodGet, "/x", with(func(s *Spec) { s.Errors = []ErrorSpec{{Status: 600, Shape: messageError}} })},
		{"duplicate error status", http.MethodGet, "/x", with(func(s *Spec) {
			s.Errors = []ErrorSpec{{Status: 404, Shape: messageError}, {Status: 404, Shape: messageError}}
		})},
		{"error without shape", http.MethodGet, "/x", with(func(s *Spec) { s.Errors = []ErrorSpec{{Status: 404}} })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefineEndpoint(tt.method, tt.path, tt.spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, appErrors.ErrInvalidDefinition)
		})
	}
	assert.Panics(t, func() { MustDefineEndpoint("FETCH", "/x", ok) })
}

func TestValidateBody(t *testing.T) {
	e := createTag(t)

	b, err := e.ValidateBody(map[string]any{"name": "Urgent", "color": "red"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Urgent","color":"red"}`, string(b), "undeclared fields are sent as given")

	raw := json.RawMessage(`{"name":"Urgent"}`)
	b, err = e.ValidateBody(raw)
	require.NoError(t, err)
	assert.Equal(t, []byte(raw), b)

	_, err = e.ValidateBody(map[string]any{"name": ""})
	var v *appErrors.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, appErrors.TargetBody, v.Target)
	assert.Equal(t, "createTag", v.Alias)
	assert.Contains(t, v.Fields(), "name")

	_, err = e.ValidateBody(nil)
	assert.True(t, appErrors.IsValidation(err))

	_, err = e.ValidateBody([]byte(`{"name":`))
	assert.True(t, appErrors.IsValidation(err))

	_, err = e.ValidateBody(func() {})
	assert.True(t, appErrors.IsValidation(err), "unencodable bodies fail validation")

	list := listEntries(t)
	b, err = list.ValidateBody(nil)
	assert.NoError(t, err)
	assert.Nil(t, b)
	_, err = list.ValidateBody(map[string]any{})
	assert.True(t, appErrors.IsValidation(err))
}

func TestValidateResponse(t *testing.T) {
	e := createTag(t)

	decoded, err := e.ValidateResponse([]byte(`{"data":{"id":"t1","name":"Urgent","extra":true},"meta":1}`))
	require.NoError(t, err)
	body := decoded.(map[string]any)
	assert.Equal(t, 1.0, body["meta"])
	assert.Equal(t, true, body["data"].(map[string]any)["extra"])

	_, err = e.ValidateResponse([]byte(`{"data":{"id":"t1"}}`))
	var v *appErrors.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, appErrors.TargetResponse, v.Target)
	assert.Contains(t, v.Fields(), "data.name")
}

func TestParseError(t *testing.T) {
	e := createTag(t)

	body, declared := e.ParseError(422, []byte(`{"message":"The name field is required.","errors":{"name":["The name field is required."]}}`))
	assert.True(t, declared)
	assert.Equal(t, "The name field is required.", body.(map[string]any)["message"])

	body, declared = e.ParseError(400, []byte(`{"message":"nope"}`))
	assert.False(t, declared, "body does not match the declared exception shape")
	assert.Equal(t, "nope", body.(map[string]any)["message"])

	body, declared = e.ParseError(503, []byte(`{"message":"Service Unavailable"}`))
	assert.False(t, declared)
	assert.Equal(t, "Service Unavailable", body.(map[string]any)["message"])

	body, declared = e.ParseError(502, []byte("<html>Bad Gateway</html>"))
	assert.False(t, declared)
	assert.Equal(t, "<html>Bad Gateway</html>", body)

	body, _ = e.ParseError(401, []byte("oops"))
	assert.Equal(t, "oops", body)

	body, _ = e.ParseError(500, nil)
	assert.Equal(t, "", body)
}
