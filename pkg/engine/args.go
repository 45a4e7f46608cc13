package engine

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/mitchellh/mapstructure"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/product"
	"github.com/chazu/stockyard/pkg/render"
	"github.com/chazu/stockyard/pkg/unit"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpLength wraps a unit.Length.
type sexpLength struct {
	l unit.Length
}

func (s *sexpLength) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(length %s)", s.l)
}
func (s *sexpLength) Type() *zygo.RegisteredType { return nil }

// sexpAngle wraps a unit.Angle.
type sexpAngle struct {
	a unit.Angle
}

func (s *sexpAngle) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(angle %s)", s.a)
}
func (s *sexpAngle) Type() *zygo.RegisteredType { return nil }

// sexpVec3 holds three components that are converted to a direction or a
// position by the builtin consuming it.
type sexpVec3 struct {
	x, y, z zygo.Sexp
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %s %s %s)", v.x.SexpString(ps), v.y.SexpString(ps), v.z.SexpString(ps))
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpShape wraps a render.Shape.
type sexpShape struct {
	shape render.Shape
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(shape %+v)", s.shape)
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpColor wraps a render.Color.
type sexpColor struct {
	color render.Color
}

func (c *sexpColor) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(color %+v)", c.color)
}
func (c *sexpColor) Type() *zygo.RegisteredType { return nil }

// sexpMaterial wraps a render.Material so it can be passed between builtins.
type sexpMaterial struct {
	m render.Material
}

func (m *sexpMaterial) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(material :color %+v)", m.m.BaseColor)
}
func (m *sexpMaterial) Type() *zygo.RegisteredType { return nil }

// sexpProduct wraps a product.Product.
type sexpProduct struct {
	p product.Product
}

func (p *sexpProduct) SexpString(ps *zygo.PrintState) string {
	return "(" + p.p.String() + ")"
}
func (p *sexpProduct) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value; treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// decode fills the fields of out from the keyword arguments. Field names
// come from `kw` tags; unknown keywords are an error.
func (a kwArgs) decode(out interface{}) error {
	in := make(map[string]interface{}, len(a.kw))
	for k, v := range a.kw {
		in[k] = v
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "kw",
		ErrorUnused: true,
		DecodeHook:  sexpHook,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

var (
	lengthType    = reflect.TypeOf(unit.Length{})
	angleType     = reflect.TypeOf(unit.Angle{})
	numberType    = reflect.TypeOf(number.Number{})
	directionType = reflect.TypeOf(geom.Vector3[number.Number]{})
	positionType  = reflect.TypeOf(geom.Vector3[unit.Length]{})
	shapeType     = reflect.TypeOf((*render.Shape)(nil)).Elem()
	colorType     = reflect.TypeOf((*render.Color)(nil)).Elem()
	materialType  = reflect.TypeOf(render.Material{})
	productType   = reflect.TypeOf(product.Product{})
	stringType    = reflect.TypeOf("")
	sexpType      = reflect.TypeOf((*zygo.Sexp)(nil)).Elem()
)

// sexpHook converts zygomys values to the Go types of the argument structs.
func sexpHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	s, ok := data.(zygo.Sexp)
	if !ok {
		return data, nil
	}
	switch to {
	case lengthType:
		return toLength(s)
	case angleType:
		return toAngle(s)
	case numberType:
		return toNumber(s)
	case directionType:
		return toDirection(s)
	case positionType:
		return toPosition(s)
	case shapeType:
		return toShape(s)
	case colorType:
		return toColor(s)
	case materialType:
		return toMaterial(s)
	case productType:
		return toProduct(s)
	case stringType:
		return toKeywordString(s)
	case sexpType:
		return data, nil
	}
	return data, nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toNumber extracts an exact Number from an integer, a float or a decimal
// string. Floats are converted through their shortest decimal form, so 0.7
// stays 0.7.
func toNumber(s zygo.Sexp) (number.Number, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return number.FromInt(v.Val), nil
	case *zygo.SexpFloat:
		return number.Parse(strconv.FormatFloat(v.Val, 'g', -1, 64))
	case *zygo.SexpStr:
		if _, kw := isKW(v); !kw {
			return number.Parse(v.S)
		}
	}
	return number.Number{}, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toLength accepts a length value, a plain number of millimeters or a
// string such as "40 mm".
func toLength(s zygo.Sexp) (unit.Length, error) {
	switch v := s.(type) {
	case *sexpLength:
		return v.l, nil
	case *zygo.SexpStr:
		if _, kw := isKW(v); !kw {
			return unit.ParseLength(v.S)
		}
	}
	n, err := toNumber(s)
	if err != nil {
		return unit.Length{}, fmt.Errorf("expected length, got %T (%s)", s, s.SexpString(nil))
	}
	return unit.NewLength[unit.Millimeters](n), nil
}

// toAngle accepts an angle value, a plain number of degrees or a string
// such as "0.5 rad".
func toAngle(s zygo.Sexp) (unit.Angle, error) {
	switch v := s.(type) {
	case *sexpAngle:
		return v.a, nil
	case *zygo.SexpStr:
		if _, kw := isKW(v); !kw {
			return unit.ParseAngle(v.S)
		}
	}
	n, err := toNumber(s)
	if err != nil {
		return unit.Angle{}, fmt.Errorf("expected angle, got %T (%s)", s, s.SexpString(nil))
	}
	return unit.NewAngle[unit.Degrees](n), nil
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_z) and plain strings ("z").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toDirection converts a vec3 of numbers or an axis keyword (:x, :y, :z)
// to a unitless direction.
func toDirection(s zygo.Sexp) (geom.Vector3[number.Number], error) {
	if v, ok := s.(*sexpVec3); ok {
		x, err := toNumber(v.x)
		if err != nil {
			return geom.Vector3[number.Number]{}, fmt.Errorf("x: %w", err)
		}
		y, err := toNumber(v.y)
		if err != nil {
			return geom.Vector3[number.Number]{}, fmt.Errorf("y: %w", err)
		}
		z, err := toNumber(v.z)
		if err != nil {
			return geom.Vector3[number.Number]{}, fmt.Errorf("z: %w", err)
		}
		return geom.Vec3(x, y, z), nil
	}
	name, err := toKeywordString(s)
	if err != nil {
		return geom.Vector3[number.Number]{}, fmt.Errorf("expected axis (:x, :y, :z or vec3): %w", err)
	}
	switch name {
	case "x":
		return geom.XAxis, nil
	case "y":
		return geom.YAxis, nil
	case "z":
		return geom.ZAxis, nil
	}
	return geom.Vector3[number.Number]{}, fmt.Errorf("invalid axis %q, expected x, y, or z", name)
}

// toPosition converts a vec3 of lengths to a position.
func toPosition(s zygo.Sexp) (geom.Vector3[unit.Length], error) {
	v, ok := s.(*sexpVec3)
	if !ok {
		return geom.Vector3[unit.Length]{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
	}
	x, err := toLength(v.x)
	if err != nil {
		return geom.Vector3[unit.Length]{}, fmt.Errorf("x: %w", err)
	}
	y, err := toLength(v.y)
	if err != nil {
		return geom.Vector3[unit.Length]{}, fmt.Errorf("y: %w", err)
	}
	z, err := toLength(v.z)
	if err != nil {
		return geom.Vector3[unit.Length]{}, fmt.Errorf("z: %w", err)
	}
	return geom.Vec3(x, y, z), nil
}

func toShape(s zygo.Sexp) (render.Shape, error) {
	if v, ok := s.(*sexpShape); ok {
		return v.shape, nil
	}
	return nil, fmt.Errorf("expected shape, got %T (%s)", s, s.SexpString(nil))
}

func toColor(s zygo.Sexp) (render.Color, error) {
	if v, ok := s.(*sexpColor); ok {
		return v.color, nil
	}
	return nil, fmt.Errorf("expected color, got %T (%s)", s, s.SexpString(nil))
}

// toMaterial extracts a Material from a sexpMaterial or a bare color.
func toMaterial(s zygo.Sexp) (render.Material, error) {
	switch v := s.(type) {
	case *sexpMaterial:
		return v.m, nil
	case *sexpColor:
		return render.WithColor(v.color), nil
	}
	return render.Material{}, fmt.Errorf("expected material, got %T (%s)", s, s.SexpString(nil))
}

func toProduct(s zygo.Sexp) (product.Product, error) {
	if v, ok := s.(*sexpProduct); ok {
		return v.p, nil
	}
	return product.Product{}, fmt.Errorf("expected product, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}
