// SPDX-License-Identifier: MIT

// Package free: functional configuration for a Factory.
//
// Design goals:
//   - Documented defaults as constants.
//   - Each flag changes observable behavior and is covered by tests.

package free

// DefaultCapacity is the initial node capacity of a factory.
const DefaultCapacity = 64

// DefaultSimplify enables the identity rewrites 0+x=x, 0·x=0, 1·x=x and star(0)=1.
const DefaultSimplify = true

// Option mutates factory options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	capacity int  // DefaultCapacity
	simplify bool // DefaultSimplify
}

// Capacity reports the resolved initial capacity.
func (o Options) Capacity() int { return o.capacity }

// Simplify reports whether identity rewrites are enabled.
func (o Options) Simplify() bool { return o.simplify }

// WithCapacity pre-sizes the arena. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithoutSimplification keeps every constructed node literally, so
// Add(Empty, x) allocates an addition node instead of returning x.
func WithoutSimplification() Option {
	return func(o *Options) { o.simplify = false }
}

// NewFactoryOptions resolves option setters against documented defaults.
func NewFactoryOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{capacity: DefaultCapacity, simplify: DefaultSimplify}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
