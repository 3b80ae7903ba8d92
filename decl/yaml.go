// SPDX-License-Identifier: MIT
// Package: paramspace/decl

package decl

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paramspace/paramset"
)

// ParseYAML decodes a YAML declaration. Unknown keys are rejected.
func ParseYAML(data []byte) (*Declaration, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Declaration
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidDeclaration, err)
	}

	return &d, nil
}

// LoadYAML reads, decodes and builds the YAML declaration at path.
func LoadYAML(path string) (*paramset.ParamSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadYAML: %w", err)
	}
	d, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("LoadYAML %s: %w", path, err)
	}

	return Build(d)
}

// MarshalYAML renders a declaration back to YAML.
func MarshalYAML(d *Declaration) ([]byte, error) {
	return yaml.Marshal(d)
}
