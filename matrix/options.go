// SPDX-License-Identifier: MIT

package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on Set and
// on ingestion through NewDenseFrom.
const DefaultValidateNaNInf = true

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration. Fields are unexported; public
// constructors accept ...Option.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf rejects NaN and ±Inf in Set (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts any float64 in Set.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range user {
		opt(&o)
	}

	return o
}
