// Package openapi exports bounded string types as OpenAPI 3 component
// schemas, so request and response bodies built from them carry their byte
// bound in published API documents.
package openapi

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/rawbytedev/microstring"
)

// GoTypeExtension is the schema extension carrying the Go type of a schema.
const GoTypeExtension = "x-go-type"

// ErrSchemaClash is returned when two different types claim one component
// name.
var ErrSchemaClash = errors.New("schema name already in use")

// Schema returns the OpenAPI schema of s: a string with maxLength set to the
// capacity of the type.
func Schema(s microstring.Schemer) *openapi3.Schema {
	js := s.JSONSchema()
	schema := openapi3.NewStringSchema().WithMaxLength(int64(js.MaxLength))
	schema.Title = s.SchemaName()
	schema.Description = fmt.Sprintf("UTF-8 text of at most %d bytes.", js.MaxLength)
	schema.Extensions = map[string]any{GoTypeExtension: s.SchemaID()}
	return schema
}

// Ref returns a reference to the component schema registered for s by
// Components. The reference is resolved, so documents using it validate
// without a loader.
func Ref(s microstring.Schemer) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+s.SchemaName(), Schema(s))
}

// Components builds the component schemas for types, keyed by SchemaName.
// Two different types sharing a name is an error.
func Components(types ...microstring.Schemer) (openapi3.Schemas, error) {
	schemas := make(openapi3.Schemas, len(types))
	ids := make(map[string]string, len(types))
	for _, s := range types {
		name := s.SchemaName()
		if id, ok := ids[name]; ok {
			if id == s.SchemaID() {
				continue
			}
			return nil, fmt.Errorf("schema name %q used by %s and %s: %w", name, id, s.SchemaID(), ErrSchemaClash)
		}
		ids[name] = s.SchemaID()
		schemas[name] = openapi3.NewSchemaRef("", Schema(s))
	}
	return schemas, nil
}

// Register adds the component schemas for types to doc, creating the
// components section if needed. A name already taken by a schema of another
// Go type is an error and leaves doc unchanged.
func Register(doc *openapi3.T, types ...microstring.Schemer) error {
	schemas, err := Components(types...)
	if err != nil {
		return err
	}
	if doc.Components != nil {
		for name, ref := range schemas {
			old, ok := doc.Components.Schemas[name]
			if !ok {
				continue
			}
			want, _ := ref.Value.Extensions[GoTypeExtension].(string)
			if id := goType(old); id != want {
				return fmt.Errorf("schema name %q used by %s and %s: %w", name, id, want, ErrSchemaClash)
			}
		}
	}
	if doc.Components == nil {
		c := openapi3.NewComponents()
		doc.Components = &c
	}
	if doc.Components.Schemas == nil {
		doc.Components.Schemas = make(openapi3.Schemas, len(schemas))
	}
	for name, ref := range schemas {
		doc.Components.Schemas[name] = ref
	}
	return nil
}

// goType returns the Go type recorded on an inline schema, or a placeholder
// for references and foreign schemas.
func goType(ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Ref != "" || ref.Value == nil {
		return "a reference"
	}
	if id, ok := ref.Value.Extensions[GoTypeExtension].(string); ok {
		return id
	}
	return "a foreign schema"
}
