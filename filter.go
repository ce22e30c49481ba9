package reaktor

import "regexp"

// Filter decides whether a Change's composed path should be delivered to
// a subscriber. Composite filters ([AllOf], [AnyOf], [Not]) expose their
// operands through Unwrap so generic helpers (see matcherutil) can inspect
// a filter tree without the reaktor package depending on them.
type Filter interface {
	Match(path string) bool
}

// globPattern matches a path against a pattern using only "*" (any run of
// characters, including none) and "?" (exactly one character) as
// metacharacters. Every other rune, including "[" and "]", is literal.
//
// This deliberately departs from stdlib path.Match and shell fnmatch
// semantics, both of which treat "[...]" as a character class: composed
// paths use literal brackets for item access, so a pattern like
// "items[0]" must match that literal text, not a one-character class.
// See DESIGN.md for the worked-example justification.
type globPattern string

func globFilter(pattern string) Filter {
	return globPattern(pattern)
}

func (p globPattern) Match(path string) bool {
	return globMatch(string(p), path)
}

func globMatch(pattern, s string) bool {
	return globMatchRunes([]rune(pattern), []rune(s))
}

func globMatchRunes(pat, s []rune) bool {
	var pi, si int
	var star = -1
	var match int
	for si < len(s) {
		switch {
		case pi < len(pat) && (pat[pi] == '?' || pat[pi] == s[si]):
			pi++
			si++
		case pi < len(pat) && pat[pi] == '*':
			star = pi
			match = si
			pi++
		case star != -1:
			pi = star + 1
			match++
			si = match
		default:
			return false
		}
	}
	for pi < len(pat) && pat[pi] == '*' {
		pi++
	}
	return pi == len(pat)
}

type regexpFilterT struct{ re *regexp.Regexp }

func regexpFilter(pattern string) (Filter, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	return regexpFilterT{re: re}, nil
}

func (f regexpFilterT) Match(path string) bool {
	return f.re.MatchString(path)
}

// allOfFilter requires every operand to match.
type allOfFilter struct{ filters []Filter }

// AllOf builds a Filter that matches only when every one of filters
// matches.
func AllOf(filters ...Filter) Filter {
	return allOfFilter{filters: filters}
}

func (f allOfFilter) Match(path string) bool {
	for _, sub := range f.filters {
		if !sub.Match(path) {
			return false
		}
	}
	return true
}

// Unwrap exposes the operands for generic filter-tree inspection.
func (f allOfFilter) Unwrap() []Filter { return f.filters }

// anyOfFilter requires at least one operand to match.
type anyOfFilter struct{ filters []Filter }

// AnyOf builds a Filter that matches when any one of filters matches.
func AnyOf(filters ...Filter) Filter {
	return anyOfFilter{filters: filters}
}

func (f anyOfFilter) Match(path string) bool {
	for _, sub := range f.filters {
		if sub.Match(path) {
			return true
		}
	}
	return false
}

// Unwrap exposes the operands for generic filter-tree inspection.
func (f anyOfFilter) Unwrap() []Filter { return f.filters }

// notFilter inverts a single operand.
type notFilter struct{ filter Filter }

// Not builds a Filter that matches exactly when f does not.
func Not(f Filter) Filter {
	return notFilter{filter: f}
}

func (f notFilter) Match(path string) bool {
	return !f.filter.Match(path)
}

// Unwrap exposes the operand for generic filter-tree inspection.
func (f notFilter) Unwrap() Filter { return f.filter }
