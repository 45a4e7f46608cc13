package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/gridbeam"
	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/product"
	"github.com/chazu/stockyard/pkg/render"
	"github.com/chazu/stockyard/pkg/unit"
)

// rootSet collects the products declared with (product ...).
type rootSet struct {
	products []product.Product
}

// builtin is the signature zygomys expects for Go functions.
type builtin = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// lengthUnits are the unit shorthand builtins.
var lengthUnits = map[string]func(number.Number) unit.Length{
	"mm":   unit.NewLength[unit.Millimeters],
	"cm":   unit.NewLength[unit.Centimeters],
	"m":    unit.NewLength[unit.Meters],
	"inch": unit.NewLength[unit.Inches],
	"ft":   unit.NewLength[unit.Feet],
}

func requireKW(fn string, pa kwArgs, names ...string) error {
	for _, n := range names {
		if _, ok := pa.kw[n]; !ok {
			return fmt.Errorf("%s requires :%s", fn, n)
		}
	}
	return nil
}

func productArg(fn string, args []zygo.Sexp) (product.Product, error) {
	if len(args) < 1 {
		return product.Product{}, fmt.Errorf("%s requires a product as first argument", fn)
	}
	p, err := toProduct(args[0])
	if err != nil {
		return product.Product{}, fmt.Errorf("%s: %w", fn, err)
	}
	return p, nil
}

// collectProducts flattens products and lists of products.
func collectProducts(fn string, args []zygo.Sexp) ([]product.Product, error) {
	var out []product.Product
	for i, a := range args {
		if _, ok := a.(*sexpProduct); !ok {
			if items, err := sexpListToSlice(a); err == nil {
				nested, err := collectProducts(fn, items)
				if err != nil {
					return nil, err
				}
				out = append(out, nested...)
				continue
			}
		}
		p, err := toProduct(a)
		if err != nil {
			return nil, fmt.Errorf("%s: member %d: %w", fn, i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func componentsArg(fn string, args []zygo.Sexp, opt int) ([]number.Number, error) {
	if len(args) < 3 || len(args) > 3+opt {
		return nil, fmt.Errorf("%s requires %d to %d arguments, got %d", fn, 3, 3+opt, len(args))
	}
	out := make([]number.Number, len(args))
	for i, a := range args {
		n, err := toNumber(a)
		if err != nil {
			return nil, fmt.Errorf("%s: component %d: %w", fn, i, err)
		}
		out[i] = n
	}
	return out, nil
}

// registerBuiltins installs all stockyard DSL builtins into a zygomys
// environment. Products declared with (product ...) are appended to roots.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, roots *rootSet) {

	// -----------------------------------------------------------------------
	// (length 40 "mm"), (mm 40), (inch 1.5)
	// -----------------------------------------------------------------------
	env.AddFunction("length", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("length requires a magnitude and a unit")
		}
		n, err := toNumber(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("length: %w", err)
		}
		sym, err := toKeywordString(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("length: unit: %w", err)
		}
		l, err := unit.ParseLength(n.String() + " " + sym)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("length: %w", err)
		}
		return &sexpLength{l: l}, nil
	})
	for fn, mk := range lengthUnits {
		env.AddFunction(fn, lengthShorthand(fn, mk))
	}

	// -----------------------------------------------------------------------
	// (angle 90 "deg"), (deg 90), (rad 0.5)
	// -----------------------------------------------------------------------
	env.AddFunction("angle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("angle requires a magnitude and a unit")
		}
		n, err := toNumber(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("angle: %w", err)
		}
		sym, err := toKeywordString(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("angle: unit: %w", err)
		}
		a, err := unit.ParseAngle(n.String() + " " + sym)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("angle: %w", err)
		}
		return &sexpAngle{a: a}, nil
	})
	env.AddFunction("deg", angleShorthand("deg", func(n number.Number) unit.Angle { return unit.NewAngle[unit.Degrees](n) }))
	env.AddFunction("rad", angleShorthand("rad", func(n number.Number) unit.Angle { return unit.NewAngle[unit.Radians](n) }))

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		return &sexpVec3{x: args[0], y: args[1], z: args[2]}, nil
	})

	// -----------------------------------------------------------------------
	// (cuboid :x 400 :y 40 :z (cm 4))
	// -----------------------------------------------------------------------
	env.AddFunction("cuboid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := requireKW("cuboid", pa, "x", "y", "z"); err != nil {
			return zygo.SexpNull, err
		}
		var a struct {
			X unit.Length `kw:"x"`
			Y unit.Length `kw:"y"`
			Z unit.Length `kw:"z"`
		}
		if err := pa.decode(&a); err != nil {
			return zygo.SexpNull, fmt.Errorf("cuboid: %w", err)
		}
		return &sexpShape{shape: render.Cuboid{XLength: a.X, YLength: a.Y, ZLength: a.Z}}, nil
	})

	// -----------------------------------------------------------------------
	// (circle :radius 100)
	// -----------------------------------------------------------------------
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := requireKW("circle", pa, "radius"); err != nil {
			return zygo.SexpNull, err
		}
		var a struct {
			Radius unit.Length `kw:"radius"`
		}
		if err := pa.decode(&a); err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}
		return &sexpShape{shape: render.Circle{Radius: a.Radius}}, nil
	})

	// -----------------------------------------------------------------------
	// (srgba 1 0.5 0 [1]), (hsla 120 1 0.5 [1])
	// -----------------------------------------------------------------------
	env.AddFunction("srgba", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		c, err := componentsArg("srgba", args, 1)
		if err != nil {
			return zygo.SexpNull, err
		}
		col := render.Srgba{Red: c[0], Green: c[1], Blue: c[2], Alpha: number.One}
		if len(c) == 4 {
			col.Alpha = c[3]
		}
		return &sexpColor{color: col}, nil
	})
	env.AddFunction("hsla", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		c, err := componentsArg("hsla", args, 1)
		if err != nil {
			return zygo.SexpNull, err
		}
		col := render.Hsla{Hue: c[0], Saturation: c[1], Lightness: c[2], Alpha: number.One}
		if len(c) == 4 {
			col.Alpha = c[3]
		}
		return &sexpColor{color: col}, nil
	})

	// -----------------------------------------------------------------------
	// (material :color (srgba ...) :metallic 0 :roughness 0.7
	//           :texture "wood.jpg" :normal-map "wood-n.jpg" :uv-scale 0.4
	//           :alpha-mode :mask :alpha-cutoff 0.5)
	// -----------------------------------------------------------------------
	env.AddFunction("material", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		def := render.DefaultMaterial()
		a := struct {
			Color       render.Color  `kw:"color"`
			Metallic    number.Number `kw:"metallic"`
			Roughness   number.Number `kw:"roughness"`
			Texture     string        `kw:"texture"`
			NormalMap   string        `kw:"normal-map"`
			UVScale     number.Number `kw:"uv-scale"`
			AlphaMode   string        `kw:"alpha-mode"`
			AlphaCutoff number.Number `kw:"alpha-cutoff"`
		}{
			Metallic:    def.Metallic,
			Roughness:   def.PerceptualRoughness,
			UVScale:     number.One,
			AlphaMode:   string(render.AlphaOpaque),
			AlphaCutoff: number.Half,
		}
		if err := pa.decode(&a); err != nil {
			return zygo.SexpNull, fmt.Errorf("material: %w", err)
		}

		m := def
		if a.Color != nil {
			m.BaseColor = a.Color
		}
		m.Metallic = a.Metallic
		m.PerceptualRoughness = a.Roughness
		m.BaseColorTexture = render.ImageID(a.Texture)
		m.NormalMapTexture = render.ImageID(a.NormalMap)
		m.AlphaMode = render.AlphaMode{Mode: render.AlphaModeKind(a.AlphaMode)}
		if m.AlphaMode.Mode == render.AlphaMask {
			m.AlphaMode.Cutoff = a.AlphaCutoff
		}
		if !m.AlphaMode.Valid() {
			return zygo.SexpNull, fmt.Errorf("material: unknown alpha mode %q", a.AlphaMode)
		}
		if !a.UVScale.Equal(number.One) {
			m.UVTransform = geom.Affine2FromScale(geom.Vec2(a.UVScale, a.UVScale))
		}
		return &sexpMaterial{m: m}, nil
	})

	// -----------------------------------------------------------------------
	// (stock :shape (cuboid ...) :material oak :name "leg")
	// -----------------------------------------------------------------------
	env.AddFunction("stock", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := requireKW("stock", pa, "shape"); err != nil {
			return zygo.SexpNull, err
		}
		a := struct {
			Shape    render.Shape    `kw:"shape"`
			Material render.Material `kw:"material"`
			Name     string          `kw:"name"`
		}{Material: render.DefaultMaterial()}
		if err := pa.decode(&a); err != nil {
			return zygo.SexpNull, fmt.Errorf("stock: %w", err)
		}
		piece := product.Piece{Name: a.Name, Shape: a.Shape, Material: a.Material}
		return &sexpProduct{p: product.Place(piece)}, nil
	})

	// -----------------------------------------------------------------------
	// (grid-beam :x 0 :y 0 :z [0 10])
	//
	// Registered as "grid_beam"; the preprocessor converts grid-beam.
	// Exactly one coordinate is a two-element span in grid units.
	// -----------------------------------------------------------------------
	env.AddFunction("grid_beam", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := requireKW("grid-beam", pa, "x", "y", "z"); err != nil {
			return zygo.SexpNull, err
		}
		var a struct {
			X zygo.Sexp `kw:"x"`
			Y zygo.Sexp `kw:"y"`
			Z zygo.Sexp `kw:"z"`
		}
		if err := pa.decode(&a); err != nil {
			return zygo.SexpNull, fmt.Errorf("grid-beam: %w", err)
		}
		p, err := gridBeam(a.X, a.Y, a.Z)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("grid-beam: %w", err)
		}
		return &sexpProduct{p: p}, nil
	})

	// -----------------------------------------------------------------------
	// (group p1 p2 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("group", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		members, err := collectProducts("group", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpProduct{p: product.GroupOf(members...)}, nil
	})

	// -----------------------------------------------------------------------
	// (translate p x y z), (translate p (vec3 x y z))
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, err := productArg("translate", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		var offset geom.Vector3[unit.Length]
		switch len(args) {
		case 2:
			offset, err = toPosition(args[1])
		case 4:
			offset, err = toPosition(&sexpVec3{x: args[1], y: args[2], z: args[3]})
		default:
			return zygo.SexpNull, fmt.Errorf("translate requires a product and an offset")
		}
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		return &sexpProduct{p: p.TranslateBy(offset)}, nil
	})

	// -----------------------------------------------------------------------
	// (rotate p :axis :z :angle 90 :origin (vec3 0 0 0))
	// -----------------------------------------------------------------------
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		p, err := productArg("rotate", pa.positional)
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := requireKW("rotate", pa, "axis", "angle"); err != nil {
			return zygo.SexpNull, err
		}
		var a struct {
			Axis   geom.Vector3[number.Number] `kw:"axis"`
			Angle  unit.Angle                  `kw:"angle"`
			Origin geom.Vector3[unit.Length]   `kw:"origin"`
		}
		if err := pa.decode(&a); err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
		}
		return &sexpProduct{p: p.Rotate(a.Axis, a.Angle, a.Origin)}, nil
	})

	// -----------------------------------------------------------------------
	// (scale p 2), (scale p 1 2 1)
	// -----------------------------------------------------------------------
	env.AddFunction("scale", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, err := productArg("scale", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		var s geom.Vector3[number.Number]
		switch len(args) {
		case 2:
			var n number.Number
			n, err = toNumber(args[1])
			s = geom.Splat(n)
		case 4:
			s, err = toDirection(&sexpVec3{x: args[1], y: args[2], z: args[3]})
		default:
			return zygo.SexpNull, fmt.Errorf("scale requires a product and a factor")
		}
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scale: %w", err)
		}
		return &sexpProduct{p: p.Scale(s)}, nil
	})

	// -----------------------------------------------------------------------
	// (mirror p :axis :x)
	// -----------------------------------------------------------------------
	env.AddFunction("mirror", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		p, err := productArg("mirror", pa.positional)
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := requireKW("mirror", pa, "axis"); err != nil {
			return zygo.SexpNull, err
		}
		var a struct {
			Axis geom.Vector3[number.Number] `kw:"axis"`
		}
		if err := pa.decode(&a); err != nil {
			return zygo.SexpNull, fmt.Errorf("mirror: %w", err)
		}
		return &sexpProduct{p: p.Mirror(a.Axis)}, nil
	})

	// -----------------------------------------------------------------------
	// (product p1 p2 ...) declares root products.
	// -----------------------------------------------------------------------
	env.AddFunction("product", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		ps, err := collectProducts("product", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		roots.products = append(roots.products, ps...)
		return zygo.SexpNull, nil
	})
}

func lengthShorthand(fn string, mk func(number.Number) unit.Length) builtin {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument, got %d", fn, len(args))
		}
		n, err := toNumber(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		return &sexpLength{l: mk(n)}, nil
	}
}

func angleShorthand(fn string, mk func(number.Number) unit.Angle) builtin {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument, got %d", fn, len(args))
		}
		n, err := toNumber(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		return &sexpAngle{a: mk(n)}, nil
	}
}

// gridBeam places a grid beam along the one coordinate given as a span.
func gridBeam(x, y, z zygo.Sexp) (product.Product, error) {
	var (
		coords [3]number.Number
		span   gridbeam.Span
		along  = -1
	)
	for i, s := range [3]zygo.Sexp{x, y, z} {
		items, err := sexpListToSlice(s)
		if err != nil {
			n, err := toNumber(s)
			if err != nil {
				return product.Product{}, fmt.Errorf("%c: %w", 'x'+i, err)
			}
			coords[i] = n
			continue
		}
		if along >= 0 {
			return product.Product{}, fmt.Errorf("only one coordinate may be a span")
		}
		if len(items) != 2 {
			return product.Product{}, fmt.Errorf("%c: span needs 2 elements, got %d", 'x'+i, len(items))
		}
		from, err := toNumber(items[0])
		if err != nil {
			return product.Product{}, fmt.Errorf("%c: %w", 'x'+i, err)
		}
		to, err := toNumber(items[1])
		if err != nil {
			return product.Product{}, fmt.Errorf("%c: %w", 'x'+i, err)
		}
		span, along = gridbeam.Span{From: from, To: to}, i
	}
	switch along {
	case 0:
		return gridbeam.X(span, coords[1], coords[2]), nil
	case 1:
		return gridbeam.Y(coords[0], span, coords[2]), nil
	case 2:
		return gridbeam.Z(coords[0], coords[1], span), nil
	}
	return product.Product{}, fmt.Errorf("one of :x, :y or :z must be a span")
}
