package schema

import (
	appErrors "github.com/yonasBSD/solidtime/internal/errors"
)

// Kind is the JSON type a shape describes.
type Kind string

const (
	KindString  Kind = "string"
	KindEnum    Kind = "enum"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindNull    Kind = "null"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindRecord  Kind = "record"
)

// Shape is a declarative validation shape. Shapes are immutable values:
// every builder method returns a modified copy.
type Shape interface {
	Kind() Kind
	document() (map[string]any, error)
}

// StringShape constrains a JSON string.
type StringShape struct {
	min    *int
	max    *int
	format string
}

// String declares a string.
func String() StringShape { return StringShape{} }

// UUID declares an RFC-4122 textual uuid.
func UUID() StringShape { return StringShape{format: "uuid"} }

// Email declares an email address.
func Email() StringShape { return StringShape{format: "email"} }

// Min sets the inclusive minimum length.
func (s StringShape) Min(n int) StringShape { s.min = &n; return s }

// Max sets the inclusive maximum length.
func (s StringShape) Max(n int) StringShape { s.max = &n; return s }

func (s StringShape) Kind() Kind { return KindString }

func (s StringShape) document() (map[string]any, error) {
	doc := map[string]any{"type": "string"}
	if s.min != nil {
		if *s.min < 0 {
			return nil, appErrors.Definitionf("string min length %d is negative", *s.min)
		}
		doc["minLength"] = *s.min
	}
	if s.max != nil {
		if *s.max < 0 {
			return nil, appErrors.Definitionf("string max length %d is negative", *s.max)
		}
		if s.min != nil && *s.min > *s.max {
			return nil, appErrors.Definitionf("string min length %d exceeds max length %d", *s.min, *s.max)
		}
		doc["maxLength"] = *s.max
	}
	if s.format != "" {
		doc["format"] = s.format
	}
	return doc, nil
}

// EnumShape is a closed set of strings.
type EnumShape struct {
	values []string
}

// Enum declares a closed set of string values.
func Enum(values ...string) EnumShape {
	return EnumShape{values: append([]string(nil), values...)}
}

// Values returns the members of the set in declaration order.
func (e EnumShape) Values() []string { return append([]string(nil), e.values...) }

// Contains reports whether v is a member of the set.
func (e EnumShape) Contains(v string) bool {
	for _, value := range e.values {
		if value == v {
			return true
		}
	}
	return false
}

func (e EnumShape) Kind() Kind { return KindEnum }

func (e EnumShape) document() (map[string]any, error) {
	if len(e.values) == 0 {
		return nil, appErrors.Definitionf("enum declares no values")
	}
	seen := make(map[string]struct{}, len(e.values))
	values := make([]any, 0, len(e.values))
	for _, v := range e.values {
		if _, dup := seen[v]; dup {
			return nil, appErrors.Definitionf("enum value %q declared twice", v)
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return map[string]any{"type": "string", "enum": values}, nil
}

// NumberShape constrains a JSON number.
type NumberShape struct {
	integer bool
	min     *float64
	max     *float64
}

// Number declares any JSON number.
func Number() NumberShape { return NumberShape{} }

// Integer declares a whole number.
func Integer() NumberShape { return NumberShape{integer: true} }

// Gte sets the inclusive lower bound.
func (n NumberShape) Gte(v float64) NumberShape { n.min = &v; return n }

// Lte sets the inclusive upper bound.
func (n NumberShape) Lte(v float64) NumberShape { n.max = &v; return n }

func (n NumberShape) Kind() Kind {
	if n.integer {
		return KindInteger
	}
	return KindNumber
}

func (n NumberShape) document() (map[string]any, error) {
	doc := map[string]any{"type": "number"}
	if n.integer {
		doc["type"] = "integer"
	}
	if n.min != nil {
		doc["minimum"] = *n.min
	}
	if n.max != nil {
		if n.min != nil && *n.min > *n.max {
			return nil, appErrors.Definitionf("lower bound %v exceeds upper bound %v", *n.min, *n.max)
		}
		doc["maximum"] = *n.max
	}
	return doc, nil
}

// BoolShape is a JSON boolean.
type BoolShape struct{}

// Bool declares a boolean.
func Bool() BoolShape { return BoolShape{} }

func (BoolShape) Kind() Kind { return KindBoolean }

func (BoolShape) document() (map[string]any, error) {
	return map[string]any{"type": "boolean"}, nil
}

// NullShape accepts only null. Used for endpoints answering without a body.
type NullShape struct{}

// Null declares the null literal.
func Null() NullShape { return NullShape{} }

func (NullShape) Kind() Kind { return KindNull }

func (NullShape) document() (map[string]any, error) {
	return map[string]any{"type": "null"}, nil
}

// NullableShape accepts exactly null or the wrapped shape.
type NullableShape struct {
	inner Shape
}

// Nullable allows null in addition to the inner shape.
func Nullable(inner Shape) NullableShape { return NullableShape{inner: inner} }

// Inner returns the wrapped shape.
func (n NullableShape) Inner() Shape { return n.inner }

func (n NullableShape) Kind() Kind {
	if n.inner == nil {
		return KindNull
	}
	return n.inner.Kind()
}

func (n NullableShape) document() (map[string]any, error) {
	if n.inner == nil {
		return nil, appErrors.Definitionf("nullable wraps no shape")
	}
	inner, err := n.inner.document()
	if err != nil {
		return nil, err
	}
	return map[string]any{"anyOf": []any{inner, map[string]any{"type": "null"}}}, nil
}

// ArrayShape constrains a JSON array.
type ArrayShape struct {
	item Shape
	min  *int
}

// Array declares an array whose items match item.
func Array(item Shape) ArrayShape { return ArrayShape{item: item} }

// Min sets the inclusive minimum number of items.
func (a ArrayShape) Min(n int) ArrayShape { a.min = &n; return a }

// Item returns the item shape.
func (a ArrayShape) Item() Shape { return a.item }

func (a ArrayShape) Kind() Kind { return KindArray }

func (a ArrayShape) document() (map[string]any, error) {
	if a.item == nil {
		return nil, appErrors.Definitionf("array declares no item shape")
	}
	item, err := a.item.document()
	if err != nil {
		return nil, err
	}
	doc := map[string]any{"type": "array", "items": item}
	if a.min != nil {
		if *a.min < 0 {
			return nil, appErrors.Definitionf("array min items %d is negative", *a.min)
		}
		doc["minItems"] = *a.min
	}
	return doc, nil
}

// Prop is a named object property.
type Prop struct {
	Name     string
	Shape    Shape
	Optional bool
}

// Field declares a required property.
func Field(name string, shape Shape) Prop { return Prop{Name: name, Shape: shape} }

// Optional declares a property that may be absent.
func Optional(name string, shape Shape) Prop { return Prop{Name: name, Shape: shape, Optional: true} }

// ObjectShape constrains a JSON object. Properties that are not declared
// are accepted and kept: objects are never closed.
type ObjectShape struct {
	props []Prop
}

// Object declares an object with the given properties.
func Object(props ...Prop) ObjectShape {
	return ObjectShape{props: append([]Prop(nil), props...)}
}

// Partial returns a copy where every property is optional.
func (o ObjectShape) Partial() ObjectShape {
	props := make([]Prop, len(o.props))
	for i, p := range o.props {
		p.Optional = true
		props[i] = p
	}
	return ObjectShape{props: props}
}

// Props returns the declared properties in declaration order.
func (o ObjectShape) Props() []Prop { return append([]Prop(nil), o.props...) }

func (o ObjectShape) Kind() Kind { return KindObject }

func (o ObjectShape) document() (map[string]any, error) {
	properties := make(map[string]any, len(o.props))
	var required []any
	for _, p := range o.props {
		if p.Name == "" {
			return nil, appErrors.Definitionf("object property without a name")
		}
		if _, dup := properties[p.Name]; dup {
			return nil, appErrors.Definitionf("object property %q declared twice", p.Name)
		}
		if p.Shape == nil {
			return nil, appErrors.Definitionf("object property %q has no shape", p.Name)
		}
		doc, err := p.Shape.document()
		if err != nil {
			return nil, err
		}
		properties[p.Name] = doc
		if !p.Optional {
			required = append(required, p.Name)
		}
	}
	doc := map[string]any{"type": "object", "properties": properties}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc, nil
}

// RecordShape is an object with arbitrary keys whose values share one shape.
type RecordShape struct {
	value Shape
}

// Record declares a string-keyed map.
func Record(value Shape) RecordShape { return RecordShape{value: value} }

func (r RecordShape) Kind() Kind { return KindRecord }

func (r RecordShape) document() (map[string]any, error) {
	if r.value == nil {
		return nil, appErrors.Definitionf("record declares no value shape")
	}
	value, err := r.value.document()
	if err != nil {
		return nil, err
	}
	return map[string]any{"type": "object", "additionalProperties": value}, nil
}
