package underboss

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// MissingPathParameterError reports a path template placeholder with no
// matching payload field.
type MissingPathParameterError struct {
	Template  string
	Parameter string
}

func (e *MissingPathParameterError) Error() string {
	return fmt.Sprintf("missing path parameter %q for template %q", e.Parameter, e.Template)
}

var pathParamPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// expandPath substitutes {param} placeholders in a template with payload
// fields of the same name. Consumed fields are removed from the returned
// field set; the caller decides whether the remainder goes into the query
// string or the request body. Pure function, no side effects on the input.
func expandPath(template string, fields Fields) (string, Fields, error) {
	remaining := make(Fields, len(fields))
	for k, v := range fields {
		remaining[k] = v
	}
	path := template
	for _, match := range pathParamPattern.FindAllStringSubmatch(template, -1) {
		name := match[1]
		value, ok := remaining[name]
		if !ok {
			return "", nil, &MissingPathParameterError{Template: template, Parameter: name}
		}
		path = strings.ReplaceAll(path, match[0], url.PathEscape(fieldString(value)))
		delete(remaining, name)
	}
	return path, remaining, nil
}

// fieldString renders a payload field for use in a path segment or query
// parameter.
func fieldString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = fieldString(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// encodeQuery renders leftover payload fields as a URL query string for
// GET/DELETE dispatches.
func encodeQuery(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range fields {
		if v == nil {
			continue
		}
		values.Set(k, fieldString(v))
	}
	return values.Encode()
}
