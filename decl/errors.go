// SPDX-License-Identifier: MIT
// Package: paramspace/decl

package decl

import "errors"

var (
	// ErrInvalidDeclaration indicates a declaration that fails structural validation.
	ErrInvalidDeclaration = errors.New("decl: invalid declaration")

	// ErrUnsupportedFormat indicates a file extension Load cannot dispatch.
	ErrUnsupportedFormat = errors.New("decl: unsupported file format")

	// ErrScript indicates a trafo script that does not compile, does not
	// evaluate to a function, or throws.
	ErrScript = errors.New("decl: trafo script failed")

	// ErrScriptResult indicates a trafo script that returned a non-object.
	ErrScriptResult = errors.New("decl: trafo script must return an object")
)
