package geom

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/unit"
)

// trs is the serialized form of a Transform. Shear cannot be expressed and
// is lost on encoding.
type trs struct {
	Translation Vector3[unit.Length]   `json:"translation" yaml:"translation"`
	Rotation    Quaternion             `json:"rotation" yaml:"rotation"`
	Scale       Vector3[number.Number] `json:"scale" yaml:"scale"`
}

func newTRS(t Transform) trs {
	tr, r, s := t.TranslationRotationScale()
	return trs{Translation: tr, Rotation: r, Scale: s}
}

// defaultTRS fills the fields a document may omit.
func defaultTRS() trs {
	return trs{Rotation: IdentityQuaternion(), Scale: Ones}
}

func (d trs) transform() Transform {
	return FromTranslationRotationScale(d.Translation, d.Rotation.Normalize(), d.Scale)
}

// MarshalJSON encodes t as {translation, rotation, scale}.
func (t Transform) MarshalJSON() ([]byte, error) {
	return json.Marshal(newTRS(t))
}

func (t *Transform) UnmarshalJSON(data []byte) error {
	d := defaultTRS()
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("geom: decode transform: %w", err)
	}
	*t = d.transform()
	return nil
}

func (t Transform) MarshalYAML() (interface{}, error) {
	return newTRS(t), nil
}

func (t *Transform) UnmarshalYAML(value *yaml.Node) error {
	d := defaultTRS()
	if err := value.Decode(&d); err != nil {
		return fmt.Errorf("geom: decode transform: %w", err)
	}
	*t = d.transform()
	return nil
}
