// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
//
// Numeric policy is explicit:
//   - validateNaNInf controls whether Set()/Fill() reject NaN/Inf at all.
//   - allowInfDistances is a narrow exception for +Inf as "no edge" in cost
//     and distance matrices. Under validation, NaN and -Inf remain rejected
//     even when allowInfDistances=true.
//   - nonNegative additionally rejects finite values below zero; relaxation
//     algorithms built on top of cost matrices rely on it.
package matrix

// Numeric policy defaults (single source of truth).
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and Fill.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances permits +Inf values to represent "no edge".
	DefaultAllowInfDistances = false

	// DefaultNonNegative rejects negative entries when true.
	DefaultNonNegative = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options is the resolved numeric policy of a Dense matrix.
// Fields are unexported; callers compose policies through Option values.
type Options struct {
	validateNaNInf    bool
	allowInfDistances bool
	nonNegative       bool
}

// WithAllowInfDistances admits +Inf (and only +Inf) under validation.
// Cost matrices use it to encode a missing edge.
func WithAllowInfDistances() Option {
	return func(o *Options) {
		o.allowInfDistances = true
	}
}

// WithNoValidateNaNInf disables NaN/Inf validation entirely.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// WithNonNegative rejects finite negative entries with ErrNegativeEntry.
func WithNonNegative() Option {
	return func(o *Options) {
		o.nonNegative = true
	}
}

// defaultOptions returns the documented zero-config policy.
func defaultOptions() Options {
	return Options{
		validateNaNInf:    DefaultValidateNaNInf,
		allowInfDistances: DefaultAllowInfDistances,
		nonNegative:       DefaultNonNegative,
	}
}

// gatherOptions applies opts in order (last wins) over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
