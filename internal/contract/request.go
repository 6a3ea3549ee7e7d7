package contract

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	appErrors "github.com/yonasBSD/solidtime/internal/errors"
	"github.com/yonasBSD/solidtime/internal/schema"
)

// BuildPath interpolates the path template. Every segment must be given,
// unknown names are rejected, values are path-escaped.
func (e *Endpoint) BuildPath(values map[string]string) (string, error) {
	var issues []appErrors.Issue
	for name := range values {
		if _, ok := e.pathParams[name]; !ok {
			issues = append(issues, appErrors.Issue{Field: name, Message: "unknown path parameter"})
		}
	}

	var b strings.Builder
	for _, seg := range e.segments {
		b.WriteByte('/')
		if seg.param == "" {
			b.WriteString(seg.literal)
			continue
		}
		v, ok := values[seg.param]
		if !ok || v == "" {
			issues = append(issues, appErrors.Issue{Field: seg.param, Message: seg.param + " is required"})
			continue
		}
		if v == "." || v == ".." {
			issues = append(issues, appErrors.Issue{Field: seg.param, Message: seg.param + " must not be a dot segment"})
			continue
		}
		if err := e.pathParams[seg.param].Validate(v); err != nil {
			issues = append(issues, appErrors.Issue{Field: seg.param, Message: err.Error()})
			continue
		}
		b.WriteString(url.PathEscape(v))
	}
	if len(issues) > 0 {
		appErrors.SortIssues(issues)
		return "", &appErrors.ValidationError{Target: appErrors.TargetPath, Alias: e.Alias, Issues: issues}
	}
	return b.String(), nil
}

// ValidateQuery coerces raw query strings to their declared kinds, checks
// them and returns normalized values. Array parameters are accepted as
// name[] or repeated name and always emitted as name[].
func (e *Endpoint) ValidateQuery(in url.Values) (url.Values, error) {
	grouped := make(map[string][]string)
	var issues []appErrors.Issue
	for key, vals := range in {
		name := strings.TrimSuffix(key, "[]")
		if _, ok := e.query[name]; !ok {
			issues = append(issues, appErrors.Issue{Field: name, Message: "unknown query parameter"})
			continue
		}
		grouped[name] = append(grouped[name], vals...)
	}

	doc := make(map[string]any, len(grouped))
	for name, vals := range grouped {
		p := e.query[name]
		value, issue := coerce(p.Shape, name, vals)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		doc[name] = value
	}
	if len(issues) > 0 {
		appErrors.SortIssues(issues)
		return nil, &appErrors.ValidationError{Target: appErrors.TargetQuery, Alias: e.Alias, Issues: issues}
	}

	if e.queryCheck != nil {
		if err := e.queryCheck.Validate(doc); err != nil {
			return nil, e.tag(err, appErrors.TargetQuery)
		}
	}

	out := make(url.Values, len(grouped))
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if e.query[name].Shape.Kind() == schema.KindArray {
			out[name+"[]"] = grouped[name]
			continue
		}
		out.Set(name, grouped[name][0])
	}
	return out, nil
}

func coerce(shape schema.Shape, name string, vals []string) (any, *appErrors.Issue) {
	if shape.Kind() == schema.KindArray {
		item := itemShape(shape)
		items := make([]any, 0, len(vals))
		for _, v := range vals {
			coerced, issue := scalar(item, name, v)
			if issue != nil {
				return nil, issue
			}
			items = append(items, coerced)
		}
		return items, nil
	}
	if len(vals) != 1 {
		return nil, &appErrors.Issue{Field: name, Message: "expects a single value"}
	}
	return scalar(shape, name, vals[0])
}

func itemShape(shape schema.Shape) schema.Shape {
	switch s := shape.(type) {
	case schema.ArrayShape:
		return s.Item()
	case schema.NullableShape:
		return itemShape(s.Inner())
	}
	return schema.String()
}

func scalar(shape schema.Shape, name, v string) (any, *appErrors.Issue) {
	switch shape.Kind() {
	case schema.KindInteger, schema.KindNumber:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, &appErrors.Issue{Field: name, Message: "must be a number"}
		}
		return f, nil
	case schema.KindBoolean:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &appErrors.Issue{Field: name, Message: "must be a boolean"}
		}
		return b, nil
	}
	return v, nil
}
