package schema

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level string

type sample struct {
	Name     string         `yaml:"name" schema:"required,minLength=1"`
	Level    level          `yaml:"level" schema:"enum=low|high,default=low"`
	Workers  int            `yaml:"workers" schema:"default=4"`
	Ratio    *float64       `yaml:"ratio,omitempty" description:"Optional ratio"`
	Tags     []string       `yaml:"tags" schema:"minItems=1"`
	Labels   map[int]string `yaml:"labels"`
	Children []child        `yaml:"children"`
	Skipped  string         `yaml:"-"`
	internal string
	Extra    map[string]string `yaml:"extra,omitempty"`
}

type child struct {
	ID string
}

func TestGenerator_GenerateSchema(t *testing.T) {
	g := NewGenerator(WithTagKey("yaml"), WithIDBase("https://schemas.example.test/"))
	s, err := g.GenerateSchema(reflect.TypeOf(&sample{}))
	require.NoError(t, err)

	assert.Equal(t, schemaRef, s.Schema)
	assert.Equal(t, "sample", s.Title)
	assert.Equal(t, "https://schemas.example.test/sample", s.ID)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"name"}, s.Required)

	assert.NotContains(t, s.Properties, "Skipped")
	assert.NotContains(t, s.Properties, "-")
	assert.NotContains(t, s.Properties, "internal")

	name := s.Properties["name"]
	require.NotNil(t, name.MinLength)
	assert.Equal(t, 1, *name.MinLength)

	lvl := s.Properties["level"]
	assert.Equal(t, "string", lvl.Type)
	assert.Equal(t, []interface{}{"low", "high"}, lvl.Enum)
	assert.Equal(t, "low", lvl.Default)

	assert.Equal(t, 4, s.Properties["workers"].Default)

	ratio := s.Properties["ratio"]
	assert.Equal(t, "number", ratio.Type)
	assert.Equal(t, "Optional ratio", ratio.Description)

	labels := s.Properties["labels"]
	assert.Equal(t, "object", labels.Type)
	assert.Equal(t, "string", labels.AdditionalProperties.Type)

	children := s.Properties["children"]
	assert.Equal(t, "array", children.Type)
	assert.Contains(t, children.Items.Properties, "iD")
}

func TestGenerator_GenerateJSONSchema(t *testing.T) {
	out, err := NewGenerator().GenerateJSONSchema(child{})
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "child", parsed["title"])
	assert.NotContains(t, parsed, "$id")
}

func TestGenerator_Unsupported(t *testing.T) {
	_, err := NewGenerator().GenerateSchema(reflect.TypeOf(struct{ C chan int }{}))
	assert.Error(t, err)
}
