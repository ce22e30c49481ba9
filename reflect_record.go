package reaktor

import "github.com/go-reaktor/reaktor/internal/reflectutil"

// reflectRecordOf adapts a plain struct pointer to Record via reflection,
// for callers who don't want to implement Fields/Get/Set/Del themselves.
func reflectRecordOf(v any) (Record, bool) {
	a, ok := reflectutil.Of(v)
	if !ok {
		return nil, false
	}
	return a, true
}
