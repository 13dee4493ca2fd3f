// Package mapper renders mapping templates against JSON payloads.
//
// A template is free text with {{ expr }} placeholders. Each expr is a
// JSONPath evaluated against the payload:
//
//	render := mapper.New()
//	body, err := render(`{"user": {{ $.user.name }}}`, []byte(`{"user":{"name":"ada"}}`))
//	// body == `{"user": ada}`
//
// Strings render verbatim, other scalars in their JSON form and objects or
// arrays as compact JSON. Every failure is classified fault.MappingFormat.
package mapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/junioryono/beca/fault"
)

// Func renders template against payload.
type Func func(template string, payload []byte) (string, error)

// New returns the mapper. It holds no state.
func New() Func {
	return Render
}

// Render replaces every placeholder in template with the value it selects
// from payload.
func Render(template string, payload []byte) (string, error) {
	if template == "" {
		return "", nil
	}
	if !strings.Contains(template, "{{") {
		return template, nil
	}

	doc, err := parseJSON(payload)
	if err != nil {
		return "", fault.Tag(fault.MappingFormat, fmt.Errorf("payload is not valid JSON: %w", err))
	}

	var out strings.Builder
	rest := template
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", fault.New(fault.MappingFormat, "unclosed template expression")
		}

		expr := strings.TrimSpace(rest[:end])
		if expr == "" {
			return "", fault.New(fault.MappingFormat, "empty template expression")
		}

		value, err := jsonpath.Get(expr, doc)
		if err != nil {
			return "", fault.Tag(fault.MappingFormat, fmt.Errorf("expression %q: %w", expr, err))
		}
		if value == nil {
			return "", fault.Newf(fault.MappingFormat, "expression %q: no value found", expr)
		}

		s, err := toString(value)
		if err != nil {
			return "", fault.Tag(fault.MappingFormat, fmt.Errorf("expression %q: %w", expr, err))
		}

		out.WriteString(s)
		rest = rest[end+2:]
	}
}

func parseJSON(payload []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func toString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
