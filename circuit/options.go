// Package circuit: functional configuration for circuits. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package circuit

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

// DefaultTolerance is the absolute tolerance used by Validate when checking
// that a compiled circuit is unitary.
const DefaultTolerance = 1e-9

const panicToleranceInvalid = "circuit: tolerance must be finite and > 0"

// Options holds the effective configuration of a Circuit.
// Fields are unexported; use the WithX setters.
type Options struct {
	log zerolog.Logger
	tol float64
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes compile tracing to l. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.log = l }
}

// WithTolerance sets the unitarity tolerance used by Validate.
// Panics when eps is NaN, ±Inf or not positive.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

func defaultOptions() Options {
	return Options{
		log: zerolog.Nop(),
		tol: DefaultTolerance,
	}
}

// gatherOptions applies setters on top of the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
