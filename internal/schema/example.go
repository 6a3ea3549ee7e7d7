package schema

import (
	"math"
	"strings"
)

// ExampleUUID is the uuid Example uses for uuid-formatted strings.
const ExampleUUID = "9b6f3c1e-2d4a-4f8b-9c7e-5a1d0e3f6b2c"

// ExampleEmail is the address Example uses for email-formatted strings.
const ExampleEmail = "jane@example.com"

// Example builds the smallest value that satisfies shape: required object
// properties only, arrays at their minimum length, numbers at their lower
// bound. The result encodes to JSON that validates against Compile(shape).
func Example(shape Shape) any {
	switch s := shape.(type) {
	case StringShape:
		switch s.format {
		case "uuid":
			return ExampleUUID
		case "email":
			return ExampleEmail
		}
		n := 1
		if s.min != nil && *s.min > n {
			n = *s.min
		}
		if s.max != nil && *s.max < n {
			n = *s.max
		}
		return strings.Repeat("x", n)
	case EnumShape:
		if len(s.values) == 0 {
			return ""
		}
		return s.values[0]
	case NumberShape:
		v := 0.0
		if s.max != nil && *s.max < v {
			v = *s.max
		}
		if s.min != nil {
			v = *s.min
		}
		if s.integer {
			v = math.Ceil(v)
		}
		return v
	case BoolShape:
		return false
	case NullShape:
		return nil
	case NullableShape:
		if s.inner == nil {
			return nil
		}
		return Example(s.inner)
	case ArrayShape:
		items := []any{}
		if s.min != nil && s.item != nil {
			for i := 0; i < *s.min; i++ {
				items = append(items, Example(s.item))
			}
		}
		return items
	case ObjectShape:
		obj := make(map[string]any, len(s.props))
		for _, p := range s.props {
			if !p.Optional && p.Shape != nil {
				obj[p.Name] = Example(p.Shape)
			}
		}
		return obj
	case RecordShape:
		return map[string]any{}
	}
	return nil
}
