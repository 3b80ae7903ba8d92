// SPDX-License-Identifier: MIT
// Package: paramspace/decl
//
// declaration.go: the format-neutral declaration model and Build.
//
// Flow: ParseYAML / ParseHCL → *Declaration → Validate → Build → *paramset.ParamSet.
// Build is atomic: any failing parameter, dependency or script aborts with no
// partially built set returned.

package decl

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/paramspace/param"
	"github.com/katalvlaran/paramspace/paramset"
)

var validate = validator.New()

// Declaration describes a parameter set in files.
type Declaration struct {
	Params  []ParamDecl  `yaml:"params" validate:"required,min=1,dive"`
	Depends []DependDecl `yaml:"depends" validate:"dive"`
	Trafo   string       `yaml:"trafo,omitempty"`
}

// ParamDecl declares one parameter. Missing numeric bounds mean unbounded.
type ParamDecl struct {
	ID      string   `yaml:"id" validate:"required"`
	Type    string   `yaml:"type" validate:"required,oneof=int real categorical bool opaque"`
	Lower   *float64 `yaml:"lower,omitempty"`
	Upper   *float64 `yaml:"upper,omitempty"`
	Default any      `yaml:"default,omitempty"`
	Levels  []string `yaml:"levels,omitempty" validate:"required_if=Type categorical"`
	Special []any    `yaml:"special,omitempty"`
	Tags    []string `yaml:"tags,omitempty"`
}

// DependDecl gates Param on On's value. Exactly one of Equals or AnyOf is set.
type DependDecl struct {
	Param  string `yaml:"param" validate:"required"`
	On     string `yaml:"on" validate:"required"`
	Equals any    `yaml:"equals,omitempty"`
	AnyOf  []any  `yaml:"any_of,omitempty"`
}

// Validate checks the declaration's structure without building it.
func (d *Declaration) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
	}
	for i, dep := range d.Depends {
		if (dep.Equals == nil) == (len(dep.AnyOf) == 0) {
			return fmt.Errorf("%w: depends[%d] (%s on %s): exactly one of equals or any_of is required",
				ErrInvalidDeclaration, i, dep.Param, dep.On)
		}
	}

	return nil
}

// Build validates d and constructs the ParamSet it describes.
// Errors: ErrInvalidDeclaration, ErrScript, and any param/paramset
// construction error (wrapped).
func Build(d *Declaration) (*paramset.ParamSet, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidDeclaration)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	ps, _ := paramset.New()
	for _, pd := range d.Params {
		p, err := pd.build()
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if err := ps.Add(p); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	for _, dep := range d.Depends {
		dependee, ok := ps.Get(dep.On)
		if !ok {
			return nil, fmt.Errorf("Build: depends on %s: %w", dep.On, paramset.ErrParameterNotFound)
		}
		var cond param.Condition
		if dep.Equals != nil {
			cond = param.Equals(normalize(dependee.Kind(), dep.Equals))
		} else {
			cond = param.AnyOf(normalizeAll(dependee.Kind(), dep.AnyOf)...)
		}
		if err := ps.AddDependency(dep.Param, dep.On, cond); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	if d.Trafo != "" {
		fn, err := ScriptTrafo(d.Trafo)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		ps.SetTrafo(fn)
	}

	return ps, nil
}

// build turns one ParamDecl into a Parameter.
func (pd ParamDecl) build() (*param.Parameter, error) {
	kind, err := param.ParseKind(pd.Type)
	if err != nil {
		return nil, err
	}

	var opts []param.Option
	if pd.Default != nil {
		opts = append(opts, param.WithDefault(normalize(kind, pd.Default)))
	}
	if len(pd.Special) > 0 {
		opts = append(opts, param.WithSpecialValues(normalizeAll(kind, pd.Special)...))
	}
	if len(pd.Tags) > 0 {
		opts = append(opts, param.WithTags(pd.Tags...))
	}

	lower, upper := math.Inf(-1), math.Inf(1)
	if pd.Lower != nil {
		lower = *pd.Lower
	}
	if pd.Upper != nil {
		upper = *pd.Upper
	}

	switch kind {
	case param.Integer:
		return param.NewInt(pd.ID, lower, upper, opts...)
	case param.Real:
		return param.NewReal(pd.ID, lower, upper, opts...)
	case param.Categorical:
		return param.NewCategorical(pd.ID, pd.Levels, opts...)
	case param.Boolean:
		return param.NewBool(pd.ID, opts...)
	default:
		return param.NewOpaque(pd.ID, nil, opts...)
	}
}

// normalize maps decoded file values onto the engine's value model:
// integral numbers become int for Integer parameters, every other number float64.
func normalize(kind param.Kind, v any) any {
	f, ok := param.AsFloat(v)
	if !ok {
		return v
	}
	switch kind {
	case param.Integer:
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int(f)
		}
		return f
	case param.Real:
		return f
	default:
		return v
	}
}

func normalizeAll(kind param.Kind, vs []any) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = normalize(kind, v)
	}

	return out
}
