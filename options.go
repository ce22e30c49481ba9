// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package reaktor

import "log/slog"

// Option configures a [Reaktor] engine at construction time.
type Option interface {
	apply(*Reaktor)
}

type optionFunc func(*Reaktor)

func (o optionFunc) apply(rk *Reaktor) {
	o(rk)
}

const defaultDispatchDepth = 256

// WithDispatchDepth overrides how many bubble hops a single Change may
// travel before dispatch aborts that chain with [ErrDispatchDepthExceeded].
// The default is 256. Only a cyclic or pathologically deep object graph
// should ever approach this limit.
func WithDispatchDepth(depth int) Option {
	return optionFunc(func(rk *Reaktor) {
		if depth > 0 {
			rk.dispatchDepth = depth
		}
	})
}

// WithLogger attaches a *slog.Logger the engine uses for activation,
// dispatch and callback-recovery diagnostics. The default logs nothing:
// with no logger set, each diagnostic goes to a handler that discards it.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(rk *Reaktor) {
		rk.logger = logger
	})
}

// WithTransparentField declares that, when activating a value of the
// named type, the named field should be treated as if its own fields were
// the type's fields directly: activation recurses into it but no
// additional path segment or BackRef hop is introduced for it. This
// mirrors a pattern some record libraries use for an internal storage
// field that isn't meant to be part of the public path grammar (see
// DESIGN.md).
func WithTransparentField(typeName, fieldName string) Option {
	return optionFunc(func(rk *Reaktor) {
		if rk.transparent == nil {
			rk.transparent = make(map[string]string)
		}
		rk.transparent[typeName] = fieldName
	})
}

// FilterOption narrows which Changes a subscription registered with [On]
// or [Receiver] receives.
type FilterOption interface {
	applyFilter(*subscription)
}

type filterOptionFunc func(*subscription)

func (o filterOptionFunc) applyFilter(s *subscription) {
	o(s)
}

// WithPattern restricts delivery to Changes whose composed path matches
// pattern ("*" wildcards, "?" single character, everything else
// literal, brackets included).
func WithPattern(pattern string) FilterOption {
	return filterOptionFunc(func(s *subscription) {
		s.filters = append(s.filters, globFilter(pattern))
	})
}

// WithRegexp restricts delivery to Changes whose composed path matches
// re, anchored at the start of the path.
func WithRegexp(re string) FilterOption {
	return filterOptionFunc(func(s *subscription) {
		if f, err := regexpFilter(re); err == nil {
			s.filters = append(s.filters, f)
		}
	})
}

// WithFilter restricts delivery to Changes accepted by f, for callers who
// built a composite [Filter] with [AllOf] or [AnyOf].
func WithFilter(f Filter) FilterOption {
	return filterOptionFunc(func(s *subscription) {
		s.filters = append(s.filters, f)
	})
}
