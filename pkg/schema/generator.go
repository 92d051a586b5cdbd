package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// JSONSchema represents a JSON Schema document
type JSONSchema struct {
	Schema               string                 `json:"$schema,omitempty"`
	ID                   string                 `json:"$id,omitempty"`
	Title                string                 `json:"title,omitempty"`
	Description          string                 `json:"description,omitempty"`
	Type                 string                 `json:"type"`
	Required             []string               `json:"required,omitempty"`
	Properties           map[string]*JSONSchema `json:"properties,omitempty"`
	AdditionalProperties *JSONSchema            `json:"additionalProperties,omitempty"`
	Items                *JSONSchema            `json:"items,omitempty"`
	Enum                 []interface{}          `json:"enum,omitempty"`
	Default              interface{}            `json:"default,omitempty"`
	Pattern              string                 `json:"pattern,omitempty"`
	MinLength            *int                   `json:"minLength,omitempty"`
	MaxLength            *int                   `json:"maxLength,omitempty"`
	MinItems             *int                   `json:"minItems,omitempty"`
	MaxItems             *int                   `json:"maxItems,omitempty"`
}

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

// Generator generates JSON schemas from Go structs.
// Field names come from the configured struct tag; constraints from the
// `schema` tag (required, enum=a|b, default=, pattern=, minLength=, ...)
// and descriptions from the `description` tag.
type Generator struct {
	tagKey string
	idBase string
}

type Option func(*Generator)

// WithTagKey names fields after another struct tag, e.g. "yaml".
func WithTagKey(key string) Option {
	return func(g *Generator) {
		g.tagKey = key
	}
}

// WithIDBase sets the URL prefix of the root $id.
func WithIDBase(base string) Option {
	return func(g *Generator) {
		g.idBase = strings.TrimSuffix(base, "/")
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{tagKey: "json"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateSchema generates a JSON schema from a Go type
func (g *Generator) GenerateSchema(t reflect.Type) (*JSONSchema, error) {
	s, err := g.generateSchemaForType(t)
	if err != nil {
		return nil, err
	}

	s.Schema = schemaRef
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.Title = t.Name()
	if g.idBase != "" && t.Name() != "" {
		s.ID = fmt.Sprintf("%s/%s", g.idBase, strings.ToLower(t.Name()))
	}
	return s, nil
}

func (g *Generator) generateSchemaForType(t reflect.Type) (*JSONSchema, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.generateStructSchema(t)
	case reflect.Slice, reflect.Array:
		return g.generateSliceSchema(t)
	case reflect.Map:
		return g.generateMapSchema(t)
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &JSONSchema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func (g *Generator) generateStructSchema(t reflect.Type) (*JSONSchema, error) {
	schema := &JSONSchema{
		Type:       "object",
		Properties: make(map[string]*JSONSchema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldName := g.getFieldName(field)
		if fieldName == "" {
			continue
		}

		fieldSchema, err := g.generateFieldSchema(field)
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for field %s: %w", field.Name, err)
		}
		schema.Properties[fieldName] = fieldSchema

		if isFieldRequired(field) {
			schema.Required = append(schema.Required, fieldName)
		}
	}

	return schema, nil
}

func (g *Generator) generateSliceSchema(t reflect.Type) (*JSONSchema, error) {
	itemSchema, err := g.generateSchemaForType(t.Elem())
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema for array items: %w", err)
	}
	return &JSONSchema{Type: "array", Items: itemSchema}, nil
}

// Map keys are not constrained: JSON and YAML object keys are strings.
func (g *Generator) generateMapSchema(t reflect.Type) (*JSONSchema, error) {
	valueSchema, err := g.generateSchemaForType(t.Elem())
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema for map values: %w", err)
	}
	return &JSONSchema{Type: "object", AdditionalProperties: valueSchema}, nil
}

func (g *Generator) generateFieldSchema(field reflect.StructField) (*JSONSchema, error) {
	fieldSchema, err := g.generateSchemaForType(field.Type)
	if err != nil {
		return nil, err
	}

	if desc := field.Tag.Get("description"); desc != "" {
		fieldSchema.Description = desc
	}
	if schemaTag := field.Tag.Get("schema"); schemaTag != "" {
		parseSchemaTag(schemaTag, fieldSchema)
	}

	return fieldSchema, nil
}

func parseSchemaTag(tag string, schema *JSONSchema) {
	for _, part := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")

		switch key {
		case "enum":
			enums := strings.Split(value, "|")
			schema.Enum = make([]interface{}, len(enums))
			for i, e := range enums {
				schema.Enum[i] = e
			}
		case "default":
			schema.Default = typedDefault(schema.Type, value)
		case "pattern":
			schema.Pattern = value
		case "minLength":
			schema.MinLength = atoiPtr(value)
		case "maxLength":
			schema.MaxLength = atoiPtr(value)
		case "minItems":
			schema.MinItems = atoiPtr(value)
		case "maxItems":
			schema.MaxItems = atoiPtr(value)
		}
	}
}

func typedDefault(typ, value string) interface{} {
	switch typ {
	case "integer":
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	case "number":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	case "boolean":
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return value
}

func atoiPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func (g *Generator) getFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get(g.tagKey), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return strings.ToLower(field.Name[:1]) + field.Name[1:]
	}
	return name
}

func isFieldRequired(field reflect.StructField) bool {
	for _, part := range strings.Split(field.Tag.Get("schema"), ",") {
		if strings.TrimSpace(part) == "required" {
			return true
		}
	}
	return false
}

// GenerateJSONSchema generates a JSON schema as an indented JSON string
func (g *Generator) GenerateJSONSchema(v interface{}) (string, error) {
	schema, err := g.GenerateSchema(reflect.TypeOf(v))
	if err != nil {
		return "", err
	}

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}

	return string(jsonBytes), nil
}
