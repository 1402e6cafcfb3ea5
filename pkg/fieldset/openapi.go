package fieldset

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI seeds a FieldSet from the properties of a component schema.
// number and integer properties become Number values (their default or 0);
// everything else becomes Text (its default or ""). Properties are emitted in
// sorted name order.
func FromOpenAPI(ctx context.Context, raw []byte, schemaName string) (FieldSet, error) {
	if len(raw) == 0 {
		return FieldSet{}, errors.New("fieldset: openapi document is empty")
	}
	name := strings.TrimSpace(schemaName)
	if name == "" {
		return FieldSet{}, errors.New("fieldset: schema name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return FieldSet{}, fmt.Errorf("fieldset: load openapi document: %w", err)
	}
	if spec.Components == nil {
		return FieldSet{}, fmt.Errorf("fieldset: schema %q not found", name)
	}
	ref, ok := spec.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return FieldSet{}, fmt.Errorf("fieldset: schema %q not found", name)
	}

	props := ref.Value.Properties
	names := make([]string, 0, len(props))
	for prop := range props {
		names = append(names, prop)
	}
	slices.Sort(names)

	var set FieldSet
	for _, prop := range names {
		propRef := props[prop]
		if propRef == nil || propRef.Value == nil {
			set.Set(prop, Text(""))
			continue
		}
		set.Set(prop, valueFromSchema(propRef.Value))
	}
	return set, nil
}

func valueFromSchema(schema *openapi3.Schema) Value {
	numeric := false
	if schema.Type != nil {
		for _, typ := range schema.Type.Slice() {
			if typ == openapi3.TypeNumber || typ == openapi3.TypeInteger {
				numeric = true
				break
			}
		}
	}

	if numeric {
		switch def := schema.Default.(type) {
		case float64:
			return Number(def)
		case int:
			return Number(float64(def))
		case int64:
			return Number(float64(def))
		}
		return Number(0)
	}

	switch def := schema.Default.(type) {
	case nil:
		return Text("")
	case string:
		return Text(def)
	default:
		return Text(fmt.Sprint(def))
	}
}
