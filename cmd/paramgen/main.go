// SPDX-License-Identifier: MIT

// Command paramgen loads a parameter-space declaration and prints a grid or
// random design as a list of assignments.
//
//	paramgen -mode random -n 20 -seed 7 space.yaml
//	paramgen -mode grid -resolution 5 -format yaml space.hcl
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/paramspace/decl"
	"github.com/katalvlaran/paramspace/design"
	"github.com/katalvlaran/paramspace/paramset"
	"github.com/katalvlaran/paramspace/sampler"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic; main only maps errors to exit codes.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)

	ps, err := decl.Load(cfg.DeclPath)
	if err != nil {
		return err
	}
	logger.Debug("declaration loaded", "path", cfg.DeclPath, "params", ps.Len(), "dependencies", len(ps.Deps()))

	d, err := generate(cfg, ps, logger)
	if err != nil {
		return err
	}

	if cfg.Strict {
		d, err = dropViolations(d, logger)
		if err != nil {
			return err
		}
	}

	rows, err := transpose(d, cfg.Trafo)
	if err != nil {
		return err
	}
	logger.Info("design generated", "design", d.ID().String(), "mode", cfg.Mode, "rows", len(rows))

	return writeAssignments(outW, cfg.Format, rows)
}

// generate builds the design requested by cfg.
func generate(cfg *Config, ps *paramset.ParamSet, logger *slog.Logger) (*design.Design, error) {
	if cfg.Mode == modeGrid {
		return design.Grid(ps, cfg.Resolution, design.WithGridLogger(logger))
	}
	opts := []sampler.Option{sampler.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, sampler.WithSeed(cfg.Seed))
	}

	return sampler.RandomDesign(ps, cfg.N, opts...)
}

// dropViolations keeps only rows that pass Check, for grids over sets with dependencies.
func dropViolations(d *design.Design, logger *slog.Logger) (*design.Design, error) {
	var kept [][]any
	for i, v := range d.Violations() {
		if v == nil {
			kept = append(kept, d.Row(i))
		}
	}
	if dropped := d.Len() - len(kept); dropped > 0 {
		logger.Info("dropped rows violating dependencies", "dropped", dropped, "kept", len(kept))
	}

	return design.New(d.ParamSet(), kept)
}

// transpose converts the design, turning a panicking script trafo into an error.
func transpose(d *design.Design, applyTrafo bool) (rows []paramset.Assignment, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, decl.ErrScript) {
				err = e
				return
			}
			err = fmt.Errorf("trafo: %v", r)
		}
	}()

	return d.Transpose(applyTrafo), nil
}
