package reaktor

import "strconv"

// Key is the name under which a value is reachable from its parent: either
// a sequence index (int) or a mapping key / record field name (string).
// Key is comparable so it can appear in a [BackRef], which itself must be
// comparable for identity-based deduplication.
type Key struct {
	str   string
	i     int
	isInt bool
}

// StringKey builds a Key from a mapping key or record field name.
func StringKey(s string) Key {
	return Key{str: s}
}

// IntKey builds a Key from a sequence index.
func IntKey(i int) Key {
	return Key{i: i, isInt: true}
}

// IsInt reports whether the key holds a sequence index rather than a name.
func (k Key) IsInt() bool {
	return k.isInt
}

// Int returns the underlying index. It panics if IsInt is false.
func (k Key) Int() int {
	if !k.isInt {
		panic("reaktor: Key.Int called on a string key")
	}
	return k.i
}

// Str returns the underlying name. It panics if IsInt is true.
func (k Key) Str() string {
	if k.isInt {
		panic("reaktor: Key.Str called on an int key")
	}
	return k.str
}

// Render returns the bare textual form of the key: the index in decimal,
// or the string as-is (unquoted). This is what path composition inserts as
// a path prefix — only the innermost segment of an item access is quoted
// (see reprKey).
func (k Key) Render() string {
	if k.isInt {
		return strconv.Itoa(k.i)
	}
	return k.str
}

// reprKey renders a key the way it appears inside an item accessor:
// integers bare, strings quoted.
func reprKey(k Key) string {
	if k.isInt {
		return strconv.Itoa(k.i)
	}
	return strconv.Quote(k.str)
}
