// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

// Parse processes command-line arguments and resolves the configuration
// (defaults < -config file < PARAMGEN_* env < explicit flags). It returns
// shouldExit for -h and for a missing declaration path.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet("paramgen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
paramgen - generate experiment designs from a parameter-space declaration.

Usage:
  paramgen [options] DECL_FILE

Arguments:
  DECL_FILE
    A .yaml, .yml or .hcl declaration.

Options:
`)
		fs.PrintDefaults()
	}

	fs.String("mode", defaultMode, "Design kind: 'grid' or 'random'.")
	fs.Int("n", defaultN, "Number of rows for random designs.")
	fs.Int("resolution", defaultResolution, "Points per numeric parameter for grid designs.")
	fs.Int64("seed", 0, "RNG seed for random designs; 0 draws a fresh seed.")
	fs.String("format", defaultFormat, "Output format: 'json' or 'yaml'.")
	fs.Bool("trafo", false, "Apply the declaration's trafo script to every row.")
	fs.Bool("strict", false, "Drop grid rows that violate dependencies.")
	fs.String("log-level", defaultLogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	fs.String("log-format", defaultLogFormat, "Log output format: 'text' or 'json'.")
	configFlag := fs.String("config", "", "Optional config file (yaml, json or toml).")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, true, nil
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			return
		}
		explicit[strings.ReplaceAll(f.Name, "-", "_")] = f.Value.String()
	})

	cfg, err := loadConfig(*configFlag, explicit)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	cfg.DeclPath = fs.Arg(0)

	return cfg, false, nil
}
