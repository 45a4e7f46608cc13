package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrUnknownType is returned when a tagged value carries an unrecognized
// "type" discriminant.
var ErrUnknownType = errors.New("unknown type")

const typeField = "type"

// DecodeShape builds a Shape from its generic map form, as produced by
// decoding JSON or YAML into interface{} values.
func DecodeShape(raw map[string]interface{}) (Shape, error) {
	kind, fields, err := splitType(raw)
	if err != nil {
		return nil, fmt.Errorf("render: decode shape: %w", err)
	}
	switch kind {
	case TypeCuboid:
		var c Cuboid
		err = decodeFields(fields, &c)
		return c, wrapDecode("shape", kind, err)
	case TypeCircle:
		var c Circle
		err = decodeFields(fields, &c)
		return c, wrapDecode("shape", kind, err)
	}
	return nil, fmt.Errorf("render: decode shape %q: %w", kind, ErrUnknownType)
}

// DecodeColor builds a Color from its generic map form.
func DecodeColor(raw map[string]interface{}) (Color, error) {
	kind, fields, err := splitType(raw)
	if err != nil {
		return nil, fmt.Errorf("render: decode color: %w", err)
	}
	switch kind {
	case TypeSrgba:
		var c Srgba
		err = decodeFields(fields, &c)
		return c, wrapDecode("color", kind, err)
	case TypeHsla:
		var c Hsla
		err = decodeFields(fields, &c)
		return c, wrapDecode("color", kind, err)
	}
	return nil, fmt.Errorf("render: decode color %q: %w", kind, ErrUnknownType)
}

// DecodeMaterial builds a Material from its generic map form. Omitted
// fields take their DefaultMaterial values.
func DecodeMaterial(raw map[string]interface{}) (Material, error) {
	m := DefaultMaterial()
	fields := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		fields[k] = v
	}
	if c, ok := fields["base_color"]; ok {
		delete(fields, "base_color")
		if c != nil {
			cm, ok := c.(map[string]interface{})
			if !ok {
				return Material{}, fmt.Errorf("render: decode material: base_color must be a mapping, got %T", c)
			}
			color, err := DecodeColor(cm)
			if err != nil {
				return Material{}, err
			}
			m.BaseColor = color
		}
	}
	if err := decodeFields(fields, &m); err != nil {
		return Material{}, fmt.Errorf("render: decode material: %w", err)
	}
	return m, nil
}

func splitType(raw map[string]interface{}) (string, map[string]interface{}, error) {
	kind, ok := raw[typeField].(string)
	if !ok {
		return "", nil, fmt.Errorf("missing %q field", typeField)
	}
	fields := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		if k != typeField {
			fields[k] = v
		}
	}
	return kind, fields, nil
}

func wrapDecode(what, kind string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("render: decode %s %q: %w", what, kind, err)
}

func decodeFields(fields map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  jsonValueHook,
		ErrorUnused: true,
		TagName:     "json",
		Result:      out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(fields)
}

var jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// jsonValueHook decodes generic values into types that know how to read
// their own JSON form: numbers, quantities ("40 mm") and transforms.
func jsonValueHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from == to || !reflect.PointerTo(to).Implements(jsonUnmarshalerType) {
		return data, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	out := reflect.New(to)
	if err := out.Interface().(json.Unmarshaler).UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return out.Elem().Interface(), nil
}

// renderableDoc is the wire form of a Renderable before the tagged unions
// are resolved.
type renderableDoc[V any] struct {
	Shapes    map[ShapeKey]V    `json:"shapes" yaml:"shapes"`
	Materials map[MaterialKey]V `json:"materials" yaml:"materials"`
	Instances []Instance        `json:"instances" yaml:"instances"`
}

func (d renderableDoc[V]) resolve(toMap func(V) (map[string]interface{}, error)) (Renderable, error) {
	r := New()
	r.Instances = d.Instances
	for key, v := range d.Shapes {
		raw, err := toMap(v)
		if err != nil {
			return Renderable{}, fmt.Errorf("render: shape %q: %w", key, err)
		}
		s, err := DecodeShape(raw)
		if err != nil {
			return Renderable{}, fmt.Errorf("shape %q: %w", key, err)
		}
		r.Shapes[key] = s
	}
	for key, v := range d.Materials {
		raw, err := toMap(v)
		if err != nil {
			return Renderable{}, fmt.Errorf("render: material %q: %w", key, err)
		}
		m, err := DecodeMaterial(raw)
		if err != nil {
			return Renderable{}, fmt.Errorf("material %q: %w", key, err)
		}
		r.Materials[key] = m
	}
	return r, nil
}

// UnmarshalJSON decodes a Renderable. Numbers keep their exact decimal
// digits.
func (r *Renderable) UnmarshalJSON(data []byte) error {
	var doc renderableDoc[json.RawMessage]
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("render: decode renderable: %w", err)
	}
	out, err := doc.resolve(func(msg json.RawMessage) (map[string]interface{}, error) {
		dec := json.NewDecoder(bytes.NewReader(msg))
		dec.UseNumber()
		var raw map[string]interface{}
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		return raw, nil
	})
	if err != nil {
		return err
	}
	*r = out
	return nil
}

func (r *Renderable) UnmarshalYAML(value *yaml.Node) error {
	var doc renderableDoc[yaml.Node]
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("render: decode renderable: %w", err)
	}
	out, err := doc.resolve(func(node yaml.Node) (map[string]interface{}, error) {
		v, err := yamlValue(&node)
		if err != nil {
			return nil, err
		}
		raw, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
		}
		return raw, nil
	})
	if err != nil {
		return err
	}
	*r = out
	return nil
}

// yamlValue converts a node into generic values. Scalars stay strings so
// that decimal digits survive; the decode hook parses them.
func yamlValue(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlValue(node.Content[0])
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.MappingNode:
		m := make(map[string]interface{}, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := yamlValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[node.Content[i].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]interface{}, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!float":
			switch node.Value {
			case ".inf", ".Inf", ".INF", "+.inf":
				return "Infinity", nil
			case "-.inf", "-.Inf", "-.INF":
				return "-Infinity", nil
			case ".nan", ".NaN", ".NAN":
				return "NaN", nil
			}
		}
		return node.Value, nil
	}
	return nil, fmt.Errorf("line %d: unsupported node", node.Line)
}
