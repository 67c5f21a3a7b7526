/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package schema derives JSON schemas from Go types for tool metadata.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Generator wraps jsonschema.Reflector with the settings tool schemas need:
// inline definitions, required fields driven by struct tags.
type Generator struct {
	reflector jsonschema.Reflector
}

// NewGenerator constructs a generator with project defaults.
func NewGenerator() *Generator {
	return &Generator{
		reflector: jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			ExpandedStruct:             true,
			AllowAdditionalProperties:  true,
			DoNotReference:             true,
		},
	}
}

// Reflect returns the JSON schema for the provided value.
func (g *Generator) Reflect(v any) *jsonschema.Schema {
	return g.reflector.Reflect(v)
}

// Reflect derives the schema for a value using a default generator.
func Reflect(v any) *jsonschema.Schema {
	return NewGenerator().Reflect(v)
}

// ReflectType allocates a zero value of T and reflects it to a schema.
func ReflectType[T any]() *jsonschema.Schema {
	var zero T
	return Reflect(&zero)
}

// ToMap converts a schema to a plain map, the form provider-independent tool
// definitions carry.
func ToMap(s *jsonschema.Schema) (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}
	return out, nil
}

// MapForType reflects T and returns its schema as a map, panicking on
// marshal failure. Intended for package-level tool definitions where the
// type is fixed at compile time.
func MapForType[T any]() map[string]any {
	m, err := ToMap(ReflectType[T]())
	if err != nil {
		panic(fmt.Sprintf("schema for %T: %v", *new(T), err))
	}
	return m
}
