// Package jsonschema derives MCP input schemas from Go parameter structs.
package jsonschema

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// GenerateSchemaForType uses reflection to create a JSON schema for a given
// Go struct type. Fields tagged with ",omitempty" are treated as optional
// parameters; all other tagged fields are required.
func GenerateSchemaForType(t reflect.Type) (json.RawMessage, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	// Tools without parameters still need a well-formed object schema.
	if t.Kind() != reflect.Struct || t.NumField() == 0 {
		return json.RawMessage(`{"type":"object","properties":{}}`), nil
	}

	// Generate the base schema without references so it is fully inlined,
	// which is what MCP clients expect.
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(reflect.New(t).Interface())
	schema.Version = ""
	schema.Required = nil

	if schema.Properties != nil {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			name, optional, ok := parseJSONTag(field)
			if !ok {
				continue
			}

			// The jsonschema library does not handle 'description' tags,
			// so carry them over here.
			if prop, found := schema.Properties.Get(name); found {
				if desc := field.Tag.Get("description"); desc != "" {
					prop.Description = desc
				}
			}

			if !optional {
				schema.Required = append(schema.Required, name)
			}
		}
	}

	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(schemaBytes), nil
}

// parseJSONTag returns the wire name of a struct field, whether it is
// optional, and whether it participates in the schema at all.
func parseJSONTag(field reflect.StructField) (name string, optional bool, ok bool) {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return "", false, false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		return "", false, false
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			optional = true
		}
	}
	return name, optional, true
}
