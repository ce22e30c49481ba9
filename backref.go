package reaktor

// BackRef is a directed link from a child object to one of its parents,
// carrying the name and source under which the parent references the
// child. BackRef is compared and stored by identity of Parent/Child (Go
// pointer equality through the any interface), never by value — two
// distinct containers that compare equal by contents must stay
// independently addressable.
type BackRef struct {
	// Parent is the identity of the ancestor object. A root has no
	// BackRef at all.
	Parent any
	// Child is the identity of the object this BackRef is attached to.
	Child any
	// Name is the key under which Parent references Child.
	Name Key
	// Source is how Parent references Child.
	Source Source
}
