package reaktor

import "reflect"

// Kind identifies the structural category a value was activated as.
type Kind int

const (
	KindLeaf Kind = iota
	KindSequence
	KindSet
	KindMapping
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindSet:
		return "set"
	case KindMapping:
		return "mapping"
	case KindRecord:
		return "record"
	default:
		return "leaf"
	}
}

// anySequence is implemented by every instantiation of Sequence[T] through
// non-generic, type-erased accessors, so the activation engine can recurse
// into a sequence's elements without knowing T.
type anySequence interface {
	bind(rk *Reaktor)
	seqLen() int
	seqAt(i int) any
}

// anyMapping is implemented by every instantiation of Mapping[K, V].
type anyMapping interface {
	bind(rk *Reaktor)
	mapKeys() []Key
	mapAt(k Key) any
}

// anySet is implemented by every instantiation of Set[T].
type anySet interface {
	bind(rk *Reaktor)
	setElems() []any
}

// classify decides the structural Kind of v, testing in priority order:
// sequence, then set, then mapping, then record, then
// leaf. With this package's own generic wrapper types, a value can only
// ever satisfy one of the container capabilities, but record adapters
// (reflection-based or user-supplied) are checked last regardless, so a
// type that accidentally implements more than one capability is resolved
// deterministically.
func classify(v any) Kind {
	if v == nil {
		return KindLeaf
	}
	switch v.(type) {
	case anySequence:
		return KindSequence
	}
	switch v.(type) {
	case anySet:
		return KindSet
	}
	switch v.(type) {
	case anyMapping:
		return KindMapping
	}
	if _, ok := recordOf(v); ok {
		return KindRecord
	}
	return KindLeaf
}

// isScalarLeaf reports whether v is an ordinary scalar (string, number,
// bool, nil) that should activate silently as a leaf, as opposed to a
// complex type (struct, map, chan, func...) that has no container
// capability and is worth an UnsupportedType log line. A nil pointer or
// nil interface — e.g. an unset *Child field — is also a leaf: there's
// nothing underneath it to walk, and treating it as "unsupported" would
// warn on every ordinary zero-valued pointer field.
func isScalarLeaf(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// typeName returns the unqualified type name of obj's pointed-to value,
// used to default a root object's activation name and to key
// WithTransparentField registrations.
func typeName(obj any) (string, bool) {
	t := reflect.TypeOf(obj)
	if t == nil {
		return "", false
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "", false
	}
	return t.Name(), true
}
