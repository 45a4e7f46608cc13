// Command dimgen renders the per-dimension boilerplate of package unit from
// a YAML dimension table.
//
// Usage:
//
//	dimgen -in dimensions.yaml -out .
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Table is the root of dimensions.yaml.
type Table struct {
	Package    string      `yaml:"package"`
	Dimensions []Dimension `yaml:"dimensions"`
}

// Dimension is a quantity type with its units and cross-dimension relations.
type Dimension struct {
	Name      string     `yaml:"name"`
	Doc       string     `yaml:"doc"`
	Canonical string     `yaml:"canonical"`
	Units     []UnitDef  `yaml:"units"`
	Relations []Relation `yaml:"relations"`

	// Source is the table file name, filled in by the generator.
	Source  string `yaml:"-"`
	Package string `yaml:"-"`
}

// UnitDef is one unit of a dimension. Exactly one of Coefficient and
// CoefficientGo is set.
type UnitDef struct {
	Name          string `yaml:"name"`
	Symbol        string `yaml:"symbol"`
	Coefficient   string `yaml:"coefficient"`
	CoefficientGo string `yaml:"coefficient_go"`
	Constant      string `yaml:"constant"`
}

// Relation is a method combining two dimensions into a third.
type Relation struct {
	Method string `yaml:"method"`
	Op     string `yaml:"op"`
	RHS    string `yaml:"rhs"`
	Result string `yaml:"result"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("dimgen: ")

	in := flag.String("in", "dimensions.yaml", "dimension table")
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	table, err := load(*in)
	if err != nil {
		log.Fatal(err)
	}
	for _, d := range table.Dimensions {
		d.Source = filepath.Base(*in)
		d.Package = table.Package
		src, err := render(d)
		if err != nil {
			log.Fatalf("%s: %v", d.Name, err)
		}
		name := filepath.Join(*out, "zz_generated."+strings.ToLower(d.Name)+".go")
		if err := os.WriteFile(name, src, 0o644); err != nil {
			log.Fatal(err)
		}
	}
}

func load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &t, nil
}

func (t *Table) validate() error {
	if t.Package == "" {
		return fmt.Errorf("package is required")
	}
	symbols := map[string]string{}
	for _, d := range t.Dimensions {
		canonical := false
		for _, u := range d.Units {
			if (u.Coefficient == "") == (u.CoefficientGo == "") {
				return fmt.Errorf("%s.%s: exactly one of coefficient and coefficient_go is required", d.Name, u.Name)
			}
			if prev, ok := symbols[u.Symbol]; ok {
				return fmt.Errorf("symbol %q used by both %s and %s", u.Symbol, prev, u.Name)
			}
			symbols[u.Symbol] = u.Name
			canonical = canonical || u.Name == d.Canonical
		}
		if !canonical {
			return fmt.Errorf("%s: canonical unit %s is not in the unit list", d.Name, d.Canonical)
		}
		for _, r := range d.Relations {
			if r.Op != "Mul" && r.Op != "Quo" {
				return fmt.Errorf("%s.%s: op must be Mul or Quo, got %q", d.Name, r.Method, r.Op)
			}
		}
	}
	return nil
}

func render(d Dimension) ([]byte, error) {
	var buf bytes.Buffer
	if err := dimensionTmpl.Execute(&buf, d); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// coefficient returns the Go expression initializing a unit's coefficient.
func coefficient(u UnitDef) string {
	if u.CoefficientGo != "" {
		return u.CoefficientGo
	}
	if u.Coefficient == "1" {
		return "number.One"
	}
	return fmt.Sprintf("number.MustParse(%q)", u.Coefficient)
}

func constant(u UnitDef) string {
	if u.Constant == "" || u.Constant == "0" {
		return "number.Zero"
	}
	return fmt.Sprintf("number.MustParse(%q)", u.Constant)
}

var funcs = template.FuncMap{
	"lower":       lowerFirst,
	"coefficient": coefficient,
	"constant":    constant,
}

var dimensionTmpl = template.Must(template.New("dimension").Funcs(funcs).Parse(`// Code generated by dimgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/chazu/stockyard/pkg/number"
	"gopkg.in/yaml.v3"
)

// {{.Doc}}
type {{.Name}} struct {
	v number.Number
}

// {{.Name}}Unit is implemented by the units of {{.Name}}.
type {{.Name}}Unit interface {
	Unit
	{{lower .Name}}Unit()
}

// New{{.Name}} returns the {{.Name}} of n in unit U.
func New{{.Name}}[U {{.Name}}Unit](n number.Number) {{.Name}} {
	var u U
	return {{.Name}}{v: toCanonical(u, n)}
}

// {{.Name}}In returns q expressed in unit U.
func {{.Name}}In[U {{.Name}}Unit](q {{.Name}}) number.Number {
	var u U
	return fromCanonical(u, q.v)
}

// Zero{{.Name}} returns the zero {{.Name}}.
func Zero{{.Name}}() {{.Name}} { return {{.Name}}{} }

// Parse{{.Name}} parses a quantity literal such as "1.5 {{(index .Units 0).Symbol}}".
func Parse{{.Name}}(s string) ({{.Name}}, error) {
	v, err := parseQuantity(s, "{{.Name}}", {{lower .Name}}Units)
	if err != nil {
		return {{.Name}}{}, err
	}
	return {{.Name}}{v: v}, nil
}

// Canonical returns q in {{.Canonical}}.
func (q {{.Name}}) Canonical() number.Number { return q.v }

func (q {{.Name}}) Add(o {{.Name}}) {{.Name}} { return {{.Name}}{v: q.v.Add(o.v)} }
func (q {{.Name}}) Sub(o {{.Name}}) {{.Name}} { return {{.Name}}{v: q.v.Sub(o.v)} }
func (q {{.Name}}) Neg() {{.Name}} { return {{.Name}}{v: q.v.Neg()} }
func (q {{.Name}}) Abs() {{.Name}} { return {{.Name}}{v: q.v.Abs()} }

// Mul scales q by n.
func (q {{.Name}}) Mul(n number.Number) {{.Name}} { return {{.Name}}{v: q.v.Mul(n)} }

// Quo divides q by n.
func (q {{.Name}}) Quo(n number.Number) {{.Name}} { return {{.Name}}{v: q.v.Quo(n)} }

// Ratio returns q / o as a dimensionless number.
func (q {{.Name}}) Ratio(o {{.Name}}) number.Number { return q.v.Quo(o.v) }

func (q {{.Name}}) Cmp(o {{.Name}}) int { return q.v.Cmp(o.v) }
func (q {{.Name}}) Equal(o {{.Name}}) bool { return q.v == o.v }
func (q {{.Name}}) ApproxEqual(o {{.Name}}) bool { return q.v.ApproxEqual(o.v) }
func (q {{.Name}}) Min(o {{.Name}}) {{.Name}} { return {{.Name}}{v: q.v.Min(o.v)} }
func (q {{.Name}}) Max(o {{.Name}}) {{.Name}} { return {{.Name}}{v: q.v.Max(o.v)} }
func (q {{.Name}}) IsZero() bool { return q.v.IsZero() }

func (q {{.Name}}) String() string { return formatQuantity(q.v, {{.Canonical}}{}) }

// MarshalJSON encodes q as its canonical number.
func (q {{.Name}}) MarshalJSON() ([]byte, error) { return q.v.MarshalJSON() }

// UnmarshalJSON accepts a canonical number or a quantity string.
func (q *{{.Name}}) UnmarshalJSON(data []byte) error {
	v, ok, err := unmarshalQuantityJSON(data, "{{.Name}}", {{lower .Name}}Units)
	if err != nil {
		return err
	}
	if ok {
		q.v = v
	}
	return nil
}

func (q {{.Name}}) MarshalYAML() (interface{}, error) { return q.v.MarshalYAML() }

func (q *{{.Name}}) UnmarshalYAML(value *yaml.Node) error {
	v, err := unmarshalQuantityYAML(value, "{{.Name}}", {{lower .Name}}Units)
	if err != nil {
		return err
	}
	q.v = v
	return nil
}
{{$dim := .Name}}{{range .Relations}}
// {{.Method}} returns q {{if eq .Op "Mul"}}*{{else}}/{{end}} o.
func (q {{$dim}}) {{.Method}}(o {{.RHS}}) {{.Result}} { return {{.Result}}{v: q.v.{{.Op}}(o.v)} }
{{end}}{{range .Units}}
// {{.Name}} is the {{$dim}} unit "{{.Symbol}}".
type {{.Name}} struct{}

func ({{.Name}}) Symbol() string { return "{{.Symbol}}" }
func ({{.Name}}) Coefficient() number.Number { return {{lower .Name}}Coefficient }
func ({{.Name}}) Constant() number.Number { return {{constant .}} }
func ({{.Name}}) {{lower $dim}}Unit() {}
{{end}}
var ({{range .Units}}
	{{lower .Name}}Coefficient = {{coefficient .}}{{end}}
)

var {{lower .Name}}Units = map[string]Unit{ {{range .Units}}
	"{{.Symbol}}": {{.Name}}{},{{end}}
}
`))
