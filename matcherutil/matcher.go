// Package matcherutil walks a [reaktor.Filter] tree looking for an operand
// of a specific concrete type, the way a filter built from [reaktor.AllOf],
// [reaktor.AnyOf] and [reaktor.Not] composes several simpler filters.
package matcherutil

import "github.com/go-reaktor/reaktor"

// As finds the first operand of filter assignable to *target, descending
// through any Unwrap() reaktor.Filter or Unwrap() []reaktor.Filter
// composite along the way. It reports whether one was found.
func As[T reaktor.Filter](filter reaktor.Filter, target *T) bool {
	if filter == nil {
		return false
	}
	if target == nil {
		panic("matcherutil: target cannot be nil")
	}
	return as(filter, target)
}

func as[T reaktor.Filter](filter reaktor.Filter, target *T) bool {
	for {
		if x, ok := filter.(T); ok {
			*target = x
			return true
		}
		switch x := filter.(type) {
		case interface{ Unwrap() reaktor.Filter }:
			filter = x.Unwrap()
			if filter == nil {
				return false
			}
		case interface{ Unwrap() []reaktor.Filter }:
			for _, sub := range x.Unwrap() {
				if sub == nil {
					continue
				}
				if as(sub, target) {
					return true
				}
			}
			return false
		default:
			return false
		}
	}
}
