package schema

import (
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

// uuidFormat accepts the 8-4-4-4-12 textual form in either case. The
// gojsonschema default only accepts lowercase hex.
type uuidFormat struct{}

func (uuidFormat) IsFormat(input any) bool {
	s, ok := input.(string)
	if !ok {
		return true
	}
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func init() {
	gojsonschema.FormatCheckers.Add("uuid", uuidFormat{})
}
