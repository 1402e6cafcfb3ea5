package fieldset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// Parse decodes a configuration payload. Strict JSON is attempted first; when
// that fails the payload is read as a YAML flow mapping. Both failures are
// reported as a single ParseError wrapping ErrConfigParse.
func Parse(raw string) (FieldSet, error) {
	if strings.TrimSpace(raw) == "" {
		return FieldSet{}, parseErrorf("", "payload is empty")
	}

	set, jsonErr := ParseJSON(raw)
	if jsonErr == nil {
		return set, nil
	}

	set, yamlErr := ParseYAML(raw)
	if yamlErr == nil {
		return set, nil
	}

	return FieldSet{}, &ParseError{
		Reason: "not a JSON object or YAML flow mapping",
		Err:    errors.Join(jsonErr, yamlErr),
	}
}

// ParseJSON decodes a JSON object, keeping key order. Strings become Text and
// numbers become Number; any other JSON value is kept as Text holding its
// compact JSON form.
func ParseJSON(raw string) (FieldSet, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return FieldSet{}, &ParseError{Format: formatJSON, Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return FieldSet{}, parseErrorf(formatJSON, "root is not an object")
	}

	var set FieldSet
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return FieldSet{}, &ParseError{Format: formatJSON, Err: err}
		}
		key, ok := tok.(string)
		if !ok {
			return FieldSet{}, parseErrorf(formatJSON, "unexpected token %v", tok)
		}

		var payload json.RawMessage
		if err := dec.Decode(&payload); err != nil {
			return FieldSet{}, &ParseError{Format: formatJSON, Reason: fmt.Sprintf("value for %q", key), Err: err}
		}
		value, err := jsonValue(payload)
		if err != nil {
			return FieldSet{}, &ParseError{Format: formatJSON, Reason: fmt.Sprintf("value for %q", key), Err: err}
		}
		set.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return FieldSet{}, &ParseError{Format: formatJSON, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return FieldSet{}, parseErrorf(formatJSON, "trailing data after object")
	}
	return set, nil
}

func jsonValue(payload json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return Text(""), nil
	}
	switch c := trimmed[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Value{}, err
		}
		return Text(s), nil
	case c == '-' || (c >= '0' && c <= '9'):
		return NumberLiteral(string(trimmed))
	case c == 'n':
		return Text(""), nil
	default:
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			return Value{}, err
		}
		return Text(compact.String()), nil
	}
}

// ParseYAML decodes a YAML mapping (block or flow style), keeping key order.
// Int and float scalars become Number; other scalars become Text. Nested
// sequences and mappings are kept as Text holding their JSON form.
func ParseYAML(raw string) (FieldSet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return FieldSet{}, &ParseError{Format: formatYAML, Err: err}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return FieldSet{}, parseErrorf(formatYAML, "document is empty")
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return FieldSet{}, parseErrorf(formatYAML, "root is not a mapping")
	}

	var set FieldSet
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return FieldSet{}, parseErrorf(formatYAML, "line %d: key is not a scalar", keyNode.Line)
		}
		value, err := yamlValue(valueNode)
		if err != nil {
			return FieldSet{}, &ParseError{Format: formatYAML, Reason: fmt.Sprintf("value for %q", keyNode.Value), Err: err}
		}
		set.Set(keyNode.Value, value)
	}
	return set, nil
}

func yamlValue(node *yaml.Node) (Value, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode {
		switch node.ShortTag() {
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return Value{}, err
			}
			if math.IsInf(f, 0) || math.IsNaN(f) {
				return Text(node.Value), nil
			}
			if lit, err := NumberLiteral(node.Value); err == nil && lit.Float() == f {
				return lit, nil
			}
			return Number(f), nil
		case "!!null":
			return Text(""), nil
		default:
			return Text(node.Value), nil
		}
	}

	var decoded any
	if err := node.Decode(&decoded); err != nil {
		return Value{}, err
	}
	encoded, err := json.Marshal(decoded)
	if err != nil {
		return Value{}, err
	}
	return Text(string(encoded)), nil
}
