package schema

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	appErrors "github.com/yonasBSD/solidtime/internal/errors"
)

const rootContext = "(root)"

// Schema is a compiled shape. It is safe for concurrent use.
type Schema struct {
	name     string
	shape    Shape
	document map[string]any
	compiled *gojsonschema.Schema
}

// Compile turns a shape into a Schema without registering it.
func Compile(shape Shape) (*Schema, error) {
	return compile("", shape)
}

// MustCompile is like Compile but panics on malformed shapes.
func MustCompile(shape Shape) *Schema {
	s, err := Compile(shape)
	if err != nil {
		panic(err)
	}
	return s
}

func compile(name string, shape Shape) (*Schema, error) {
	if shape == nil {
		return nil, appErrors.Definitionf("schema %q has no shape", name)
	}
	doc, err := shape.document()
	if err != nil {
		if name != "" {
			return nil, appErrors.Definitionf("schema %q: %v", name, err)
		}
		return nil, err
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, appErrors.Definitionf("schema %q does not compile: %v", name, err)
	}
	return &Schema{name: name, shape: shape, document: doc, compiled: compiled}, nil
}

// Name returns the registered name, empty for anonymous schemas.
func (s *Schema) Name() string { return s.name }

// Shape returns the declaration the schema was compiled from.
func (s *Schema) Shape() Shape { return s.shape }

// Document returns the JSON Schema document, indented.
func (s *Schema) Document() ([]byte, error) {
	return json.MarshalIndent(s.document, "", "  ")
}

// Properties lists the declared property names of an object schema.
func (s *Schema) Properties() []string {
	obj, ok := s.shape.(ObjectShape)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(obj.props))
	for _, p := range obj.props {
		names = append(names, p.Name)
	}
	return names
}

// Validate checks a Go value. It returns nil or a *errors.ValidationError.
func (s *Schema) Validate(v any) error {
	return s.validate(gojsonschema.NewGoLoader(v))
}

// ValidateJSON decodes and checks a JSON document. Unknown object members
// are kept in the decoded value.
func (s *Schema) ValidateJSON(b []byte) (any, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		b = []byte("null")
	}
	var decoded any
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil, appErrors.NewValidationError("", "", "invalid JSON: "+err.Error())
	}
	if err := s.validate(gojsonschema.NewBytesLoader(b)); err != nil {
		return decoded, err
	}
	return decoded, nil
}

func (s *Schema) validate(loader gojsonschema.JSONLoader) error {
	result, err := s.compiled.Validate(loader)
	if err != nil {
		return appErrors.NewValidationError("", "", err.Error())
	}
	if result.Valid() {
		return nil
	}
	issues := make([]appErrors.Issue, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, appErrors.Issue{Field: fieldOf(desc), Message: desc.Description()})
	}
	return &appErrors.ValidationError{Issues: issues}
}

func fieldOf(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if field == rootContext {
		field = ""
	}
	if desc.Type() == "required" {
		if prop, ok := desc.Details()["property"].(string); ok {
			if field == "" {
				return prop
			}
			return field + "." + prop
		}
	}
	return strings.TrimPrefix(field, rootContext+".")
}
