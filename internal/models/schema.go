package models

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ValueKind is the JSON Schema type tag of a routine parameter.
type ValueKind string

const (
	KindNumber  ValueKind = "number"
	KindBoolean ValueKind = "boolean"
)

// ParameterField describes one input field for a parameter-entry form.
type ParameterField struct {
	Name    string
	Kind    ValueKind
	Title   string
	Default any
}

// ParameterSchema is the ordered descriptor of a routine's required inputs.
// It is encoded as a JSON Schema object whose properties keep field order.
type ParameterSchema struct {
	Fields   []ParameterField
	Required []string
}

// Field returns the descriptor for name.
func (s ParameterSchema) Field(name string) (ParameterField, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return ParameterField{}, false
}

// JSONSchema renders the descriptor as a JSON Schema object.
func (s ParameterSchema) JSONSchema() *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	for _, f := range s.Fields {
		props.Set(f.Name, &jsonschema.Schema{
			Type:    string(f.Kind),
			Title:   f.Title,
			Default: f.Default,
		})
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   s.Required,
	}
}

// MarshalJSON implements json.Marshaler.
func (s ParameterSchema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.JSONSchema())
}

// UnmarshalJSON implements json.Unmarshaler. Property order is preserved.
func (s *ParameterSchema) UnmarshalJSON(data []byte) error {
	var js jsonschema.Schema
	if err := json.Unmarshal(data, &js); err != nil {
		return fmt.Errorf("decoding parameter schema: %w", err)
	}
	if js.Type != "" && js.Type != "object" {
		return fmt.Errorf("parameter schema: type %q, want object", js.Type)
	}

	out := ParameterSchema{Required: js.Required}
	if js.Properties != nil {
		for pair := js.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out.Fields = append(out.Fields, ParameterField{
				Name:    pair.Key,
				Kind:    ValueKind(pair.Value.Type),
				Title:   pair.Value.Title,
				Default: pair.Value.Default,
			})
		}
	}
	*s = out
	return nil
}

type yamlProperty struct {
	Type    string `yaml:"type"`
	Title   string `yaml:"title"`
	Default any    `yaml:"default"`
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (s ParameterSchema) MarshalYAML() (any, error) {
	props := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range s.Fields {
		var prop yaml.Node
		if err := prop.Encode(yamlProperty{Type: string(f.Kind), Title: f.Title, Default: f.Default}); err != nil {
			return nil, fmt.Errorf("encoding property %s: %w", f.Name, err)
		}
		props.Content = append(props.Content, strNode(f.Name), &prop)
	}

	var required yaml.Node
	if err := required.Encode(s.Required); err != nil {
		return nil, fmt.Errorf("encoding required fields: %w", err)
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			strNode("type"), strNode("object"),
			strNode("properties"), props,
			strNode("required"), &required,
		},
	}, nil
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
