package microstring

// Schema is the JSON Schema description of a bounded string type:
// {"type": "string", "maxLength": N}.
//
// JSON Schema counts maxLength in characters while the bound here is in
// bytes. For ASCII text the two agree; for other text the byte bound is the
// stricter of the two.
type Schema struct {
	Type      string `json:"type" yaml:"type"`
	MaxLength int    `json:"maxLength" yaml:"maxLength"`
}

// Schemer is implemented by every bounded string type and is consumed by
// schema generators such as the openapi package.
type Schemer interface {
	SchemaName() string
	SchemaID() string
	JSONSchema() Schema
}
