package render

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ValidationError represents a validation failure.
type ValidationError struct {
	Code    string
	Message string
	Path    string
}

func (e ValidationError) Error() string {
	context := ""
	if e.Path != "" {
		context = fmt.Sprintf(" (at %s)", e.Path)
	}
	return fmt.Sprintf("%s: %s%s", e.Code, e.Message, context)
}

// Validation codes.
const (
	CodeMissingShape       = "MISSING_SHAPE"
	CodeMissingMaterial    = "MISSING_MATERIAL"
	CodeIncompleteInstance = "INCOMPLETE_INSTANCE"
	CodeNilShape           = "NIL_SHAPE"
	CodeInvalidMaterial    = "INVALID_MATERIAL"
)

// Validate checks that every key referenced by an instance resolves and that
// the stored shapes and materials are well formed. All failures are
// reported together; the result is nil for a valid Renderable.
func (r Renderable) Validate() error {
	var errs []error
	for _, ve := range r.Problems() {
		errs = append(errs, ve)
	}
	return errors.Join(errs...)
}

// Problems returns every validation failure of r: stored shapes and
// materials in key order, then instances in tree order.
func (r Renderable) Problems() []ValidationError {
	var problems []ValidationError

	for _, key := range slices.Sorted(maps.Keys(r.Shapes)) {
		if r.Shapes[key] == nil {
			problems = append(problems, ValidationError{
				Code:    CodeNilShape,
				Message: fmt.Sprintf("Shape %q has no value", key),
			})
		}
	}
	for _, key := range slices.Sorted(maps.Keys(r.Materials)) {
		m := r.Materials[key]
		if m.BaseColor == nil {
			problems = append(problems, ValidationError{
				Code:    CodeInvalidMaterial,
				Message: fmt.Sprintf("Material %q has no base color", key),
			})
		}
		if !m.AlphaMode.Valid() {
			problems = append(problems, ValidationError{
				Code:    CodeInvalidMaterial,
				Message: fmt.Sprintf("Material %q has unknown alpha mode %q", key, m.AlphaMode.Mode),
			})
		}
	}

	for i, inst := range r.Instances {
		problems = append(problems, r.validateInstance(inst, fmt.Sprintf("instances[%d]", i))...)
	}
	return problems
}

func (r Renderable) validateInstance(inst Instance, path string) []ValidationError {
	var problems []ValidationError

	switch {
	case inst.IsGroup():
	case inst.Shape == "" || inst.Material == "":
		problems = append(problems, ValidationError{
			Code:    CodeIncompleteInstance,
			Message: "Instance needs both a shape and a material",
			Path:    path,
		})
	default:
		if _, ok := r.Shapes[inst.Shape]; !ok {
			problems = append(problems, ValidationError{
				Code:    CodeMissingShape,
				Message: fmt.Sprintf("Instance references non-existent shape: %s", inst.Shape),
				Path:    path,
			})
		}
		if _, ok := r.Materials[inst.Material]; !ok {
			problems = append(problems, ValidationError{
				Code:    CodeMissingMaterial,
				Message: fmt.Sprintf("Instance references non-existent material: %s", inst.Material),
				Path:    path,
			})
		}
	}

	for i, c := range inst.Children {
		problems = append(problems, r.validateInstance(c, fmt.Sprintf("%s.children[%d]", path, i))...)
	}
	return problems
}
