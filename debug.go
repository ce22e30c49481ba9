package reaktor

import (
	"fmt"
	"strings"
)

// BackRefs returns a copy of every BackRef currently attached to obj, in
// no particular order. It's exposed chiefly for introspection tooling
// such as reaktordebug.
func (rk *Reaktor) BackRefs(obj any) []BackRef {
	return rk.backRefsOf(obj)
}

// SubscriberCount reports how many callbacks are registered directly on
// obj (not counting subscriptions on its ancestors that would also
// receive bubbled changes from it).
func (rk *Reaktor) SubscriberCount(obj any) int {
	return len(rk.subsOf(obj))
}

// DumpGraph renders a human-readable, indented tree of obj's reactive
// structure: its Kind, how many local subscribers it has, and each
// backref pointing at it. It's meant for debugging, not machine parsing.
func (rk *Reaktor) DumpGraph(obj any) string {
	var sb strings.Builder
	rk.dumpNode(&sb, obj, 0, make(map[any]struct{}))
	return sb.String()
}

func (rk *Reaktor) dumpNode(sb *strings.Builder, obj any, depth int, seen map[any]struct{}) {
	indent := strings.Repeat("  ", depth)
	if obj == nil {
		fmt.Fprintf(sb, "%s<nil>\n", indent)
		return
	}
	if _, ok := seen[obj]; ok {
		fmt.Fprintf(sb, "%s%T (already shown)\n", indent, obj)
		return
	}
	seen[obj] = struct{}{}

	kind := classify(obj)
	fmt.Fprintf(sb, "%s%T [%s] subscribers=%d\n", indent, obj, kind, rk.SubscriberCount(obj))
	for _, br := range rk.BackRefs(obj) {
		fmt.Fprintf(sb, "%s  <- %T via %s (%s)\n", indent, br.Parent, br.Name.Render(), br.Source)
	}

	switch v := obj.(type) {
	case anySequence:
		for i := 0; i < v.seqLen(); i++ {
			fmt.Fprintf(sb, "%s  [%s]:\n", indent, quoteInt(i))
			rk.dumpNode(sb, v.seqAt(i), depth+2, seen)
		}
	case anyMapping:
		for _, k := range v.mapKeys() {
			fmt.Fprintf(sb, "%s  [%s]:\n", indent, reprKey(k))
			rk.dumpNode(sb, v.mapAt(k), depth+2, seen)
		}
	case anySet:
		for _, elem := range v.setElems() {
			rk.dumpNode(sb, elem, depth+1, seen)
		}
	default:
		if rec, ok := recordOf(obj); ok {
			for field, val := range rec.Fields() {
				if !isScalarLeaf(val) {
					fmt.Fprintf(sb, "%s  .%s:\n", indent, field)
					rk.dumpNode(sb, val, depth+2, seen)
				}
			}
		}
	}
}
