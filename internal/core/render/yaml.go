package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/artpar/cmdeploy/internal/core/document"
)

// =============================================================================
// YAML
// =============================================================================

const strTag = "!!str"

func renderYAML(v document.Value) ([]byte, error) {
	root := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{yamlNode(v)},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("render yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// yamlNode converts a value to a yaml.v3 node tree. String scalars carry an
// explicit !!str tag so the encoder quotes text that would otherwise resolve
// to a number, boolean or null.
func yamlNode(v document.Value) *yaml.Node {
	switch v := v.(type) {
	case *document.Object:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for key, val := range v.All() {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: key},
				yamlNode(val),
			)
		}
		return node

	case document.Array:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, el := range v {
			node.Content = append(node.Content, yamlNode(el))
		}
		return node

	case document.Scalar:
		if v.Kind() == document.KindString {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: v.Text()}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.Text()}

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: "null"}
	}
}
