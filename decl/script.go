// SPDX-License-Identifier: MIT
// Package: paramspace/decl
//
// script.go: JavaScript trafo functions.
//
// The source must evaluate to a function taking (x, ids): x is the assignment
// as an object, ids the owning set's parameter ids. The function returns the
// transformed assignment object:
//
//	function (x) { x.lr = Math.pow(10, x.lr); return x; }
//
// Numbers set by the script come back as int64 or float64.

package decl

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/katalvlaran/paramspace/paramset"
)

// Script is a compiled trafo. A Script is safe for concurrent use: every
// Apply runs in its own runtime.
type Script struct {
	prog *goja.Program
}

// CompileScript compiles src and checks that it evaluates to a function.
// Errors: ErrScript.
func CompileScript(src string) (*Script, error) {
	src = strings.TrimSuffix(strings.TrimSpace(src), ";")
	prog, err := goja.Compile("trafo", "("+src+")", true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	s := &Script{prog: prog}
	if _, _, err := s.function(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Script) function() (*goja.Runtime, goja.Callable, error) {
	vm := goja.New()
	v, err := vm.RunProgram(s.prog)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, nil, fmt.Errorf("%w: source does not evaluate to a function", ErrScript)
	}

	return vm, fn, nil
}

// Apply runs the script on a copy of a; ids is passed as the second argument.
// Errors: ErrScript, ErrScriptResult.
func (s *Script) Apply(a paramset.Assignment, ids []string) (paramset.Assignment, error) {
	vm, fn, err := s.function()
	if err != nil {
		return nil, err
	}
	in := map[string]any(a.Clone())
	if in == nil {
		in = map[string]any{}
	}
	res, err := fn(goja.Undefined(), vm.ToValue(in), vm.ToValue(ids))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	out, ok := res.Export().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrScriptResult, res.String())
	}

	return paramset.Assignment(out), nil
}

// Trafo adapts the script to paramset.Trafo. A trafo cannot report errors,
// so a failing script panics with the wrapped error; use Apply where
// failures must be handled.
func (s *Script) Trafo() paramset.Trafo {
	return func(a paramset.Assignment, owner *paramset.ParamSet) paramset.Assignment {
		var ids []string
		if owner != nil {
			ids = owner.IDs()
		}
		out, err := s.Apply(a, ids)
		if err != nil {
			panic(err)
		}
		return out
	}
}

// ScriptTrafo compiles src into a paramset.Trafo.
func ScriptTrafo(src string) (paramset.Trafo, error) {
	s, err := CompileScript(src)
	if err != nil {
		return nil, err
	}

	return s.Trafo(), nil
}
