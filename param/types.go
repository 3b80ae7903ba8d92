// SPDX-License-Identifier: MIT
// Package: paramspace/param
//
// types.go: Kind, Parameter, functional options and constructors.
//
// Design:
//   • A Parameter is an immutable value object: every field is unexported and
//     reachable only through getters; "mutation" means building a new one.
//   • Constructors validate structure eagerly (bounds, levels, default) and
//     return sentinel errors; option constructors panic on nil functions.
//   • Unbounded numeric sides are expressed with math.Inf(-1) / math.Inf(1).

package param

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the value type a Parameter accepts.
type Kind int

const (
	Integer Kind = iota + 1
	Real
	Categorical
	Boolean
	Opaque
)

// String returns the short declaration name of the kind ("int", "real", ...).
func (k Kind) String() string {
	switch k {
	case Integer:
		return "int"
	case Real:
		return "real"
	case Categorical:
		return "categorical"
	case Boolean:
		return "bool"
	case Opaque:
		return "opaque"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String; matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer":
		return Integer, nil
	case "real", "double", "float":
		return Real, nil
	case "categorical", "fct", "factor":
		return Categorical, nil
	case "bool", "boolean", "lgl":
		return Boolean, nil
	case "opaque", "untyped", "any":
		return Opaque, nil
	}

	return 0, fmt.Errorf("param: unknown kind %q", s)
}

// CheckFunc is a custom predicate. A nil return means the value passes;
// the error text becomes the CustomCheckFailure message.
type CheckFunc func(v any) error

// Parameter is a single typed value descriptor.
type Parameter struct {
	id      string
	kind    Kind
	lower   float64 // numeric kinds only
	upper   float64 // numeric kinds only
	levels  []string
	def     any
	hasDef  bool
	special []any
	tags    []string
	check   CheckFunc
}

// options collects Option values before the Parameter is frozen.
type options struct {
	def     any
	hasDef  bool
	special []any
	tags    []string
	check   CheckFunc
}

// Option customizes a Parameter at construction time.
type Option func(*options)

// WithDefault declares a default value; it must pass the parameter's own check.
func WithDefault(v any) Option {
	return func(o *options) {
		o.def = v
		o.hasDef = true
	}
}

// WithSpecialValues declares values accepted unconditionally.
func WithSpecialValues(vs ...any) Option {
	return func(o *options) {
		o.special = append(o.special, vs...)
	}
}

// WithTags attaches grouping labels. Duplicates are collapsed.
func WithTags(tags ...string) Option {
	return func(o *options) {
		o.tags = append(o.tags, tags...)
	}
}

// WithCustomCheck adds a predicate evaluated after the type/bounds/levels checks.
// Panics on nil.
func WithCustomCheck(fn CheckFunc) Option {
	if fn == nil {
		panic("param: WithCustomCheck(nil)")
	}
	return func(o *options) {
		o.check = fn
	}
}

// MaxIntBound is the largest magnitude a finite Integer bound may take: every
// integer up to it is exactly representable as a float64.
const MaxIntBound = 1 << 53

// NewInt declares an Integer parameter on [lower, upper]. Finite bounds must be
// integral and within ±MaxIntBound; infinite bounds leave that side open.
func NewInt(id string, lower, upper float64, opts ...Option) (*Parameter, error) {
	if err := validateBounds(id, lower, upper); err != nil {
		return nil, err
	}
	for _, b := range []float64{lower, upper} {
		if math.IsInf(b, 0) {
			continue
		}
		if b != math.Trunc(b) {
			return nil, fmt.Errorf("NewInt(%s): bound %g is not integral: %w", id, b, ErrInvalidBounds)
		}
		if math.Abs(b) > MaxIntBound {
			return nil, fmt.Errorf("NewInt(%s): bound %g exceeds ±2^53: %w", id, b, ErrInvalidBounds)
		}
	}

	return build(id, Integer, lower, upper, nil, nil, opts)
}

// NewReal declares a Real parameter on [lower, upper].
func NewReal(id string, lower, upper float64, opts ...Option) (*Parameter, error) {
	if err := validateBounds(id, lower, upper); err != nil {
		return nil, err
	}

	return build(id, Real, lower, upper, nil, nil, opts)
}

// NewCategorical declares a Categorical parameter over a non-empty set of distinct levels.
// Level order is preserved.
func NewCategorical(id string, levels []string, opts ...Option) (*Parameter, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("NewCategorical(%s): no levels: %w", id, ErrInvalidLevels)
	}
	seen := make(map[string]struct{}, len(levels))
	for _, l := range levels {
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("NewCategorical(%s): duplicate level %q: %w", id, l, ErrInvalidLevels)
		}
		seen[l] = struct{}{}
	}

	return build(id, Categorical, math.NaN(), math.NaN(), append([]string(nil), levels...), nil, opts)
}

// NewBool declares a Boolean parameter.
func NewBool(id string, opts ...Option) (*Parameter, error) {
	return build(id, Boolean, math.NaN(), math.NaN(), nil, nil, opts)
}

// NewOpaque declares an untyped parameter validated only by check.
// A nil check accepts every value.
func NewOpaque(id string, check CheckFunc, opts ...Option) (*Parameter, error) {
	return build(id, Opaque, math.NaN(), math.NaN(), nil, check, opts)
}

// validateBounds rejects NaN bounds and lower > upper.
func validateBounds(id string, lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return fmt.Errorf("param %s: NaN bound: %w", id, ErrInvalidBounds)
	}
	if lower > upper {
		return fmt.Errorf("param %s: lower %g > upper %g: %w", id, lower, upper, ErrInvalidBounds)
	}

	return nil
}

// build applies options, freezes the Parameter and validates its default.
func build(id string, kind Kind, lower, upper float64, levels []string, check CheckFunc, opts []Option) (*Parameter, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}

	var o options
	o.check = check
	for _, opt := range opts {
		opt(&o)
	}

	p := &Parameter{
		id:      id,
		kind:    kind,
		lower:   lower,
		upper:   upper,
		levels:  levels,
		def:     o.def,
		hasDef:  o.hasDef,
		special: append([]any(nil), o.special...),
		tags:    dedupe(o.tags),
		check:   o.check,
	}

	if p.hasDef {
		if v := p.CheckValue(p.def); v != nil {
			return nil, fmt.Errorf("param %s: default %v: %v: %w", id, p.def, v.Msg, ErrInvalidDefault)
		}
	}

	return p, nil
}

// dedupe keeps the first occurrence of every tag, preserving order.
func dedupe(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}

// WithID returns a copy of p under a new id with extra tags appended.
// The receiver is left untouched.
func (p *Parameter) WithID(id string, extraTags ...string) *Parameter {
	cp := *p
	cp.id = id
	cp.levels = append([]string(nil), p.levels...)
	cp.special = append([]any(nil), p.special...)
	cp.tags = dedupe(append(append([]string(nil), p.tags...), extraTags...))

	return &cp
}

// ID returns the parameter id.
func (p *Parameter) ID() string { return p.id }

// Kind returns the parameter kind.
func (p *Parameter) Kind() Kind { return p.kind }

// Lower returns the lower bound (NaN for non-numeric kinds).
func (p *Parameter) Lower() float64 { return p.lower }

// Upper returns the upper bound (NaN for non-numeric kinds).
func (p *Parameter) Upper() float64 { return p.upper }

// Levels returns a copy of the categorical levels (nil for other kinds).
func (p *Parameter) Levels() []string { return append([]string(nil), p.levels...) }

// Default returns the declared default and whether one exists.
func (p *Parameter) Default() (any, bool) { return p.def, p.hasDef }

// HasDefault reports whether a default was declared.
func (p *Parameter) HasDefault() bool { return p.hasDef }

// SpecialValues returns a copy of the special values.
func (p *Parameter) SpecialValues() []any { return append([]any(nil), p.special...) }

// Tags returns a copy of the tags.
func (p *Parameter) Tags() []string { return append([]string(nil), p.tags...) }

// HasTag reports tag membership.
func (p *Parameter) HasTag(tag string) bool {
	for _, t := range p.tags {
		if t == tag {
			return true
		}
	}

	return false
}

// HasCustomCheck reports whether a custom predicate is attached.
func (p *Parameter) HasCustomCheck() bool { return p.check != nil }

// IsNumeric reports Integer or Real.
func (p *Parameter) IsNumeric() bool { return p.kind == Integer || p.kind == Real }

// IsCategorical reports Categorical or Boolean.
func (p *Parameter) IsCategorical() bool { return p.kind == Categorical || p.kind == Boolean }

// IsBounded reports whether the domain is finite-bounded: both numeric bounds
// finite, or a categorical/boolean kind. Opaque parameters are never bounded.
func (p *Parameter) IsBounded() bool {
	switch p.kind {
	case Integer, Real:
		return !math.IsInf(p.lower, 0) && !math.IsInf(p.upper, 0)
	case Categorical, Boolean:
		return true
	default:
		return false
	}
}

// Cardinality returns the number of distinct legal values for finite domains.
// ok is false for Real, Opaque and unbounded Integer parameters.
func (p *Parameter) Cardinality() (n int, ok bool) {
	switch p.kind {
	case Categorical:
		return len(p.levels), true
	case Boolean:
		return 2, true
	case Integer:
		if !p.IsBounded() {
			return 0, false
		}
		return int(p.upper-p.lower) + 1, true
	default:
		return 0, false
	}
}

// DomainValues enumerates the finite categorical domain: levels for Categorical,
// {true, false} for Boolean, nil otherwise.
func (p *Parameter) DomainValues() []any {
	switch p.kind {
	case Categorical:
		out := make([]any, len(p.levels))
		for i, l := range p.levels {
			out[i] = l
		}
		return out
	case Boolean:
		return []any{true, false}
	default:
		return nil
	}
}

// String renders a compact description, e.g. "lr:real[0.0001,1]".
func (p *Parameter) String() string {
	switch p.kind {
	case Integer, Real:
		return fmt.Sprintf("%s:%s[%g,%g]", p.id, p.kind, p.lower, p.upper)
	case Categorical:
		return fmt.Sprintf("%s:%s{%s}", p.id, p.kind, strings.Join(p.levels, ","))
	default:
		return fmt.Sprintf("%s:%s", p.id, p.kind)
	}
}
