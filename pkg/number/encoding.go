package number

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	textInfinity    = "Infinity"
	textNegInfinity = "-Infinity"
	textNaN         = "NaN"
)

func (n Number) specialText() (string, bool) {
	switch {
	case n.IsNaN():
		return textNaN, true
	case n.IsInf(1):
		return textInfinity, true
	case n.IsInf(-1):
		return textNegInfinity, true
	}
	return "", false
}

// MarshalJSON encodes finite values as JSON numbers and the special values as
// the strings "Infinity", "-Infinity" and "NaN".
func (n Number) MarshalJSON() ([]byte, error) {
	if s, ok := n.specialText(); ok {
		return json.Marshal(s)
	}
	return n.d.MarshalJSON()
}

// UnmarshalJSON accepts a JSON number or a string holding a decimal literal.
func (n *Number) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("number: %w", err)
		}
		text = s
	}
	v, err := Parse(text)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Number) MarshalText() ([]byte, error) {
	if s, ok := n.specialText(); ok {
		return []byte(s), nil
	}
	return []byte(n.String()), nil
}

func (n *Number) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalYAML encodes n as a plain scalar so that YAML documents keep the
// exact decimal digits.
func (n Number) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: n.String()}
	switch {
	case n.IsNaN():
		node.Value = ".nan"
	case n.IsInf(1):
		node.Value = ".inf"
	case n.IsInf(-1):
		node.Value = "-.inf"
	}
	return node, nil
}

func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("number: line %d: expected a scalar, got %s", value.Line, kindName(value.Kind))
	}
	text := value.Value
	switch strings.ToLower(text) {
	case ".nan":
		*n = NaN
		return nil
	case ".inf", "+.inf":
		*n = Infinity
		return nil
	case "-.inf":
		*n = NegInfinity
		return nil
	}
	v, err := Parse(text)
	if err != nil {
		return fmt.Errorf("number: line %d: %w", value.Line, err)
	}
	*n = v
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	}
	return "scalar"
}
