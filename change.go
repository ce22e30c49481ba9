// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package reaktor

import "fmt"

// Source identifies how a parent references the object that raised a [Change].
type Source int

const (
	// SourceAttr means the mutation happened on a named record field.
	SourceAttr Source = iota
	// SourceItem means the mutation happened on a sequence index or mapping key.
	SourceItem
	// SourceSet means the mutation happened on an unordered set element.
	SourceSet
)

func (s Source) String() string {
	switch s {
	case SourceAttr:
		return "attr"
	case SourceItem:
		return "item"
	case SourceSet:
		return "set"
	default:
		return "unknown"
	}
}

// Change is an immutable record describing a single mutation observed on a
// reactive object graph. Target is the object that was directly mutated;
// when a Change bubbles to an ancestor, Target becomes that ancestor, Key
// is rewritten to the composed path from that ancestor down to the mutated
// node, and Source becomes the way the ancestor references the object the
// Change bubbled from (see Reaktor's dispatch engine). Old and New are
// carried unchanged.
type Change struct {
	Target any
	Key    Key
	Old    any
	New    any
	Source Source
}

// String renders the change as "⚡ key: old → new", mirroring the textual
// form subscribers have historically relied on for logging.
func (c Change) String() string {
	return fmt.Sprintf("⚡ %s: %v → %v", c.Key.Render(), c.Old, c.New)
}
