// SPDX-License-Identifier: MIT
// Package: paramspace/param
//
// errors.go: sentinel errors and the Violation value for the param package.
//
// Error policy:
//   • Structural problems (bad bounds, empty levels, invalid default) are returned
//     immediately from constructors as sentinel errors wrapped with context.
//   • Value problems are data: CheckValue returns a *Violation, which also
//     implements error and unwraps to the sentinel of its Kind.
//   • Callers MUST branch with errors.Is(err, ErrX); never compare strings.

package param

import (
	"errors"
	"fmt"
)

// Structural sentinels returned by constructors and option resolution.
var (
	// ErrEmptyID indicates a parameter was declared with an empty id.
	ErrEmptyID = errors.New("param: empty parameter id")

	// ErrInvalidBounds indicates lower > upper, a NaN bound, or non-integral or
	// out-of-range (beyond ±MaxIntBound) bounds on an Integer parameter.
	ErrInvalidBounds = errors.New("param: invalid bounds")

	// ErrInvalidLevels indicates an empty or duplicated level set.
	ErrInvalidLevels = errors.New("param: invalid levels")

	// ErrInvalidDefault indicates the declared default does not satisfy the parameter's own check.
	ErrInvalidDefault = errors.New("param: default violates parameter declaration")

	// ErrConditionType indicates a Condition operand that the dependee parameter cannot take.
	ErrConditionType = errors.New("param: condition operand incompatible with dependee")

	// ErrEmptyCondition is the panic value of AnyOf called without operands.
	ErrEmptyCondition = errors.New("param: condition has no operands")
)

// Value-validation sentinels; a *Violation unwraps to exactly one of these.
var (
	ErrTypeViolation      = errors.New("param: type violation")
	ErrBoundsViolation    = errors.New("param: bounds violation")
	ErrLevelViolation     = errors.New("param: level violation")
	ErrCustomCheckFailure = errors.New("param: custom check failure")
	ErrDependencyUnmet    = errors.New("param: dependency unmet")
	ErrUnknownParameterID = errors.New("param: unknown parameter id")
)

// ViolationKind classifies why a value (or an assignment) was rejected.
type ViolationKind int

const (
	TypeViolation ViolationKind = iota + 1
	BoundsViolation
	LevelViolation
	CustomCheckFailure
	DependencyUnmet
	UnknownParameterID
)

// String returns the canonical name of the kind.
func (k ViolationKind) String() string {
	switch k {
	case TypeViolation:
		return "TypeViolation"
	case BoundsViolation:
		return "BoundsViolation"
	case LevelViolation:
		return "LevelViolation"
	case CustomCheckFailure:
		return "CustomCheckFailure"
	case DependencyUnmet:
		return "DependencyUnmet"
	case UnknownParameterID:
		return "UnknownParameterID"
	default:
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
}

// sentinel maps a kind onto its errors.Is target.
func (k ViolationKind) sentinel() error {
	switch k {
	case TypeViolation:
		return ErrTypeViolation
	case BoundsViolation:
		return ErrBoundsViolation
	case LevelViolation:
		return ErrLevelViolation
	case CustomCheckFailure:
		return ErrCustomCheckFailure
	case DependencyUnmet:
		return ErrDependencyUnmet
	case UnknownParameterID:
		return ErrUnknownParameterID
	default:
		return nil
	}
}

// Violation describes the first failing condition of a value or assignment check.
//
// ID is the parameter the failure is attributed to. For DependencyUnmet this is
// always the depender, never the dependee.
type Violation struct {
	Kind ViolationKind
	ID   string
	Msg  string
}

// NewViolation builds a Violation; format/args render Msg.
func NewViolation(kind ViolationKind, id, format string, args ...interface{}) *Violation {
	return &Violation{Kind: kind, ID: id, Msg: fmt.Sprintf(format, args...)}
}

// Error renders "<id>: <msg>", or just the message when the id is unknown.
func (v *Violation) Error() string {
	if v.ID == "" {
		return v.Msg
	}

	return fmt.Sprintf("%s: %s", v.ID, v.Msg)
}

// Unwrap exposes the sentinel that matches v.Kind.
func (v *Violation) Unwrap() error { return v.Kind.sentinel() }

// Err converts a possibly-nil *Violation into an error without the typed-nil trap.
func (v *Violation) Err() error {
	if v == nil {
		return nil
	}

	return v
}
