// SPDX-License-Identifier: MIT
// Package: paramspace/decl
//
// hcl.go: HCL declarations.
//
//	param "lr" {
//	  type    = "real"
//	  lower   = 0.0001
//	  upper   = 1
//	  default = 0.01
//	}
//	depends {
//	  param = "gamma"
//	  on    = "booster"
//	  equals = "gbtree"
//	}
//
// Dynamic attributes (default, special, equals, any_of) are decoded as
// cty values and converted to Go values afterwards.

package decl

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/paramspace/paramset"
)

// hclFile is the top-level structure of a declaration file for decoding.
type hclFile struct {
	Params  []*hclParam  `hcl:"param,block"`
	Depends []*hclDepend `hcl:"depends,block"`
	Trafo   *string      `hcl:"trafo,optional"`
}

type hclParam struct {
	ID      string    `hcl:"id,label"`
	Type    string    `hcl:"type"`
	Lower   *float64  `hcl:"lower,optional"`
	Upper   *float64  `hcl:"upper,optional"`
	Default cty.Value `hcl:"default,optional"`
	Levels  []string  `hcl:"levels,optional"`
	Special cty.Value `hcl:"special,optional"`
	Tags    []string  `hcl:"tags,optional"`
}

type hclDepend struct {
	Param  string    `hcl:"param"`
	On     string    `hcl:"on"`
	Equals cty.Value `hcl:"equals,optional"`
	AnyOf  cty.Value `hcl:"any_of,optional"`
}

// ParseHCL decodes an HCL declaration; filename is used in diagnostics only.
func ParseHCL(data []byte, filename string) (*Declaration, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrInvalidDeclaration, filename, diags)
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", ErrInvalidDeclaration, filename, diags)
	}

	return raw.declaration()
}

// LoadHCL reads, decodes and builds the HCL declaration at path.
func LoadHCL(path string) (*paramset.ParamSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadHCL: %w", err)
	}
	d, err := ParseHCL(data, path)
	if err != nil {
		return nil, fmt.Errorf("LoadHCL: %w", err)
	}

	return Build(d)
}

// declaration converts the decoded blocks into the format-neutral model.
func (f *hclFile) declaration() (*Declaration, error) {
	d := &Declaration{}
	if f.Trafo != nil {
		d.Trafo = *f.Trafo
	}
	for _, p := range f.Params {
		def, err := ctyToNative(p.Default)
		if err != nil {
			return nil, fmt.Errorf("%w: param %s: default: %w", ErrInvalidDeclaration, p.ID, err)
		}
		special, err := ctyToSlice(p.Special)
		if err != nil {
			return nil, fmt.Errorf("%w: param %s: special: %w", ErrInvalidDeclaration, p.ID, err)
		}
		d.Params = append(d.Params, ParamDecl{
			ID:      p.ID,
			Type:    p.Type,
			Lower:   p.Lower,
			Upper:   p.Upper,
			Default: def,
			Levels:  p.Levels,
			Special: special,
			Tags:    p.Tags,
		})
	}
	for _, dep := range f.Depends {
		eq, err := ctyToNative(dep.Equals)
		if err != nil {
			return nil, fmt.Errorf("%w: depends %s: equals: %w", ErrInvalidDeclaration, dep.Param, err)
		}
		anyOf, err := ctyToSlice(dep.AnyOf)
		if err != nil {
			return nil, fmt.Errorf("%w: depends %s: any_of: %w", ErrInvalidDeclaration, dep.Param, err)
		}
		d.Depends = append(d.Depends, DependDecl{Param: dep.Param, On: dep.On, Equals: eq, AnyOf: anyOf})
	}

	return d, nil
}

// ctyToNative converts a primitive or collection cty.Value into a Go value.
// Numbers become float64; null and unknown values become nil.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert number to float64: %w", err)
		}
		return f, nil
	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return nil, err
		}
		return b, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		return ctyToSlice(v)
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

// ctyToSlice converts a list, tuple or set into []any; null yields nil.
func ctyToSlice(v cty.Value) ([]any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, fmt.Errorf("expected a list, got %s", ty.FriendlyName())
	}

	out := make([]any, 0, v.LengthInt())
	it := v.ElementIterator()
	for it.Next() {
		_, el := it.Element()
		nv, err := ctyToNative(el)
		if err != nil {
			return nil, err
		}
		out = append(out, nv)
	}

	return out, nil
}
