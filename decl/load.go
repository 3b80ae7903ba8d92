// SPDX-License-Identifier: MIT
// Package: paramspace/decl

package decl

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/paramspace/param"
	"github.com/katalvlaran/paramspace/paramset"
)

// Load builds the declaration at path, dispatching on its extension:
// .yaml/.yml or .hcl.
// Errors: ErrUnsupportedFormat plus those of LoadYAML/LoadHCL.
func Load(path string) (*paramset.ParamSet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".hcl":
		return LoadHCL(path)
	default:
		return nil, fmt.Errorf("Load(%s): %w", path, ErrUnsupportedFormat)
	}
}

// Describe exports ps as a Declaration. Custom checks of Opaque parameters
// and the trafo have no file representation and are omitted.
func Describe(ps *paramset.ParamSet) *Declaration {
	d := &Declaration{}
	for _, r := range ps.ParamRecords() {
		pd := ParamDecl{
			ID:      r.ID,
			Type:    r.Kind.String(),
			Levels:  r.Levels,
			Special: r.Special,
			Tags:    r.Tags,
		}
		if r.Numeric {
			pd.Lower, pd.Upper = finite(r.Lower), finite(r.Upper)
		}
		if r.HasDefault {
			pd.Default = r.Default
		}
		d.Params = append(d.Params, pd)
	}
	for _, r := range ps.DepRecords() {
		dd := DependDecl{Param: r.Depender, On: r.Dependee}
		if r.CondKind == param.CondEquals {
			dd.Equals = r.Operands[0]
		} else {
			dd.AnyOf = r.Operands
		}
		d.Depends = append(d.Depends, dd)
	}

	return d
}

// finite returns a pointer to f, or nil for an infinite bound.
func finite(f float64) *float64 {
	if math.IsInf(f, 0) {
		return nil
	}
	return &f
}
