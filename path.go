package reaktor

import "strconv"

// compose builds the Key delivered to an ancestor when a Change bubbles
// through a single BackRef. prefix is the BackRef's own Name (how the
// ancestor-above-that refers to the object the Change is bubbling from);
// seg is the Key already carried by the Change (itself possibly an
// already-composed path string from an earlier bubble hop); source is the
// Change's own Source. The result becomes the new Change's Key, and its
// Source becomes the bubbling BackRef's Source for the next hop.
//
// Composition is driven by the *source of the change being bubbled*, not
// by the relationship between the two ancestors, so a chain that mixes
// attr and item hops can legitimately produce a quoted segment nested
// inside a further bracketed segment: an attr change "F" on the element at
// index 0 of the sequence held in field "A" arrives as `A["0.F"]`.
func compose(prefix Key, seg Key, source Source) Key {
	switch source {
	case SourceItem:
		return StringKey(prefix.Render() + "[" + reprKey(seg) + "]")
	case SourceSet:
		return StringKey(prefix.Render() + "{}")
	default: // SourceAttr
		return StringKey(prefix.Render() + "." + seg.Render())
	}
}

// rootName derives the default name used when activating a root object
// that wasn't given an explicit name: the object's type name.
func rootName(obj any) Key {
	if n, ok := typeName(obj); ok {
		return StringKey(n)
	}
	return StringKey("root")
}

// quoteInt is a small helper used by the debug graph dump, which wants the item-accessor rendering of a plain integer without
// constructing a full Key.
func quoteInt(i int) string {
	return strconv.Itoa(i)
}
