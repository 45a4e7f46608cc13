// Package unit provides dimensioned quantities over number.Number.
//
// Each dimension is its own type, so a Length cannot be added to an Area.
// A quantity is stored in the canonical unit of its dimension and can only
// be created or read back by naming a unit:
//
//	l := unit.NewLength[unit.Millimeters](number.FromInt(40))
//	in := unit.LengthIn[unit.Inches](l)
//
// The per-dimension types and units live in the zz_generated files, which
// are rendered from dimensions.yaml.
package unit

//go:generate go run ../../internal/dimgen -in dimensions.yaml -out .
