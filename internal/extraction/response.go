package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"docscan/internal/docclass"
	"docscan/internal/domain"
)

// ParseResult is the outcome of reading a completion: Parsed or Unparsable.
type ParseResult interface {
	parseResult()
}

// Parsed holds the declared fields found in a completion.
type Parsed struct {
	Fields     map[string]string
	Confidence int
}

// Unparsable explains why a completion could not be used.
type Unparsable struct {
	Reason string
}

func (Parsed) parseResult()     {}
func (Unparsable) parseResult() {}

// ResponseParser locates and validates the JSON object in a completion.
type ResponseParser struct {
	schemas map[domain.DocumentClass]*jsonschema.Schema
}

// NewResponseParser compiles the response schema of every document class.
func NewResponseParser() (*ResponseParser, error) {
	p := &ResponseParser{schemas: make(map[domain.DocumentClass]*jsonschema.Schema)}
	for _, d := range docclass.All() {
		s, err := compileSchema(d)
		if err != nil {
			return nil, fmt.Errorf("compiling %s response schema: %w", d.Class, err)
		}
		p.schemas[d.Class] = s
	}
	return p, nil
}

func compileSchema(d *docclass.Descriptor) (*jsonschema.Schema, error) {
	scalar := map[string]any{"type": []string{"string", "number", "boolean", "null"}}
	props := make(map[string]any, len(d.Fields)+1)
	for _, f := range d.Fields {
		props[f.Name] = scalar
	}
	props[domain.ConfidenceScoreField] = map[string]any{}

	b, err := json.Marshal(map[string]any{
		"type":       "object",
		"properties": props,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	url := string(d.Class) + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile(url)
}

// Parse reads the first complete JSON object out of completion and keeps the
// fields declared by d. It never panics and never returns an error; failures
// come back as Unparsable.
func (p *ResponseParser) Parse(d *docclass.Descriptor, completion string) ParseResult {
	raw, ok := FindJSONObject(completion)
	if !ok {
		return Unparsable{Reason: "no JSON object in completion"}
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Unparsable{Reason: "invalid JSON: " + err.Error()}
	}

	if schema, ok := p.schemas[d.Class]; ok {
		if err := schema.Validate(doc); err != nil {
			return Unparsable{Reason: "schema mismatch: " + err.Error()}
		}
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return Unparsable{Reason: "completion JSON is not an object"}
	}

	fields := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		fields[f.Name] = stringify(obj[f.Name])
	}
	return Parsed{Fields: fields, Confidence: confidence(obj[domain.ConfidenceScoreField])}
}

// FindJSONObject returns the outermost balanced {...} span starting at the
// first opening brace. Braces inside JSON strings are ignored.
func FindJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func confidence(v any) int {
	var f float64
	switch t := v.(type) {
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return DefaultConfidence
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(t), "%"), 64)
		if err != nil {
			return DefaultConfidence
		}
		f = n
	default:
		return DefaultConfidence
	}

	switch {
	case math.IsNaN(f):
		return DefaultConfidence
	case f < 0:
		return 0
	case f > 100:
		return 100
	}
	return int(math.Round(f))
}
