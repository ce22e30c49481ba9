package reaktor

// activateRoot activates obj as a graph root under the given name: no
// BackRef is created (Parent is nil), since nothing references a root.
func (rk *Reaktor) activateRoot(obj any, name Key) error {
	return rk.activate(nil, name, SourceAttr, obj)
}

// activate wires child into the graph under a single BackRef (parent,
// name, source) — or, for a root, no BackRef at all when parent is nil —
// then recurses into child's own fields/elements the first time child is
// seen. An object already reachable through another path only gains the
// additional BackRef; its own contents are not re-walked, since they were
// already wired the first time.
func (rk *Reaktor) activate(parent any, name Key, source Source, child any) error {
	if isScalarLeaf(child) {
		return nil
	}
	if parent != nil {
		rk.addBackRef(child, BackRef{Parent: parent, Child: child, Name: name, Source: source})
	}
	if rk.isActivated(child) {
		return nil
	}
	rk.markActivated(child)

	switch v := child.(type) {
	case anySequence:
		v.bind(rk)
		for i := 0; i < v.seqLen(); i++ {
			if err := rk.activate(child, IntKey(i), SourceItem, v.seqAt(i)); err != nil {
				return err
			}
		}
		return nil
	case anySet:
		v.bind(rk)
		for _, elem := range v.setElems() {
			if err := rk.activate(child, StringKey(""), SourceSet, elem); err != nil {
				return err
			}
		}
		return nil
	case anyMapping:
		v.bind(rk)
		for _, k := range v.mapKeys() {
			if err := rk.activate(child, k, SourceItem, v.mapAt(k)); err != nil {
				return err
			}
		}
		return nil
	}

	if rec, ok := recordOf(child); ok {
		tname, _ := typeName(child)
		transparent := rk.transparent[tname]
		for field, val := range rec.Fields() {
			if field == transparent {
				// Recurse through the transparent field's own contents as
				// if they belonged to child directly: no extra BackRef
				// hop, no extra path segment (see WithTransparentField).
				if err := rk.activateTransparent(child, val); err != nil {
					return err
				}
				continue
			}
			if err := rk.activate(child, StringKey(field), SourceAttr, val); err != nil {
				return err
			}
		}
		return nil
	}

	rk.log().Info("activation: unsupported type, treated as leaf", "error", &UnsupportedTypeError{Value: child})
	return nil
}

// deactivateChild removes the single BackRef (parent, child, name,
// source) an earlier activate installed, without recursing into child's
// own fields/elements: another parent may still reference them. It
// is the mirror activate's callers reach for on every reassignment or
// removal — field overwrite, sequence/mapping slot overwrite or delete,
// set discard — so a stale BackRef never outlives the reference that
// created it.
func (rk *Reaktor) deactivateChild(parent any, name Key, source Source, child any) {
	if child == nil || isScalarLeaf(child) {
		return
	}
	rk.delBackRef(child, parent, name, source)
}

// rekeyChild replaces a BackRef's Name in place, used when a sequence
// insertion or deletion shifts an unrelated element to a new index: the
// element itself never left parent, so the BackRef survives, but its Name
// must track the element's current position for future bubble paths to
// compose correctly.
func (rk *Reaktor) rekeyChild(parent any, oldName, newName Key, source Source, child any) {
	if child == nil || isScalarLeaf(child) {
		return
	}
	rk.delBackRef(child, parent, oldName, source)
	rk.addBackRef(child, BackRef{Parent: parent, Child: child, Name: newName, Source: source})
}

// activateTransparent recurses into a transparent field's fields, each
// gaining a BackRef straight to the outer record rather than to the field
// value itself.
func (rk *Reaktor) activateTransparent(outer, inner any) error {
	if isScalarLeaf(inner) {
		return nil
	}
	rec, ok := recordOf(inner)
	if !ok {
		return rk.activate(outer, StringKey(""), SourceAttr, inner)
	}
	for field, val := range rec.Fields() {
		if err := rk.activate(outer, StringKey(field), SourceAttr, val); err != nil {
			return err
		}
	}
	return nil
}

// detachGraph removes obj and recursively its children's backrefs and
// subscriptions, guarding against cycles with seen.
func (rk *Reaktor) detachGraph(obj any, seen map[any]struct{}) {
	if obj == nil || isScalarLeaf(obj) {
		return
	}
	if _, ok := seen[obj]; ok {
		return
	}
	seen[obj] = struct{}{}

	switch v := obj.(type) {
	case anySequence:
		for i := 0; i < v.seqLen(); i++ {
			rk.detachGraph(v.seqAt(i), seen)
		}
	case anySet:
		for _, elem := range v.setElems() {
			rk.detachGraph(elem, seen)
		}
	case anyMapping:
		for _, k := range v.mapKeys() {
			rk.detachGraph(v.mapAt(k), seen)
		}
	default:
		if rec, ok := recordOf(obj); ok {
			for _, val := range rec.Fields() {
				rk.detachGraph(val, seen)
			}
		}
	}

	rk.detach(obj)
}
