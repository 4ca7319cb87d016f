// SPDX-License-Identifier: MIT

// Package lossy: functional configuration for Solve.

package lossy

import "log"

// DefaultLogger is the trace destination when no option is given (none).
var DefaultLogger *log.Logger

// Option mutates solver options.
type Option func(*Options)

// Options stores the effective solver configuration.
type Options struct {
	logger *log.Logger // DefaultLogger
}

// Logger reports the resolved trace logger (nil disables tracing).
func (o Options) Logger() *log.Logger { return o.logger }

// WithLogger traces the iterates, the differential sum and the fixpoint to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// NewSolveOptions resolves option setters against the defaults.
func NewSolveOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{logger: DefaultLogger}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func (o Options) tracef(format string, args ...any) {
	if o.logger != nil {
		o.logger.Printf(format, args...)
	}
}

// lazy defers rendering a trace argument until the logger formats it.
type lazy func() string

func (l lazy) String() string { return l() }
