package reaktor

import (
	"reflect"
	"sync"
)

// Callback is invoked with each Change a subscription is interested in.
type Callback func(Change)

type subscription struct {
	cb      Callback
	filters []Filter
}

func (s *subscription) accepts(path string) bool {
	for _, f := range s.filters {
		if !f.Match(path) {
			return false
		}
	}
	return true
}

// registry is the process-wide bookkeeping a [Reaktor] keeps for every
// activated object, keyed by identity (the object itself, stored as `any`,
// compares by pointer for anything activation ever hands out — see
// DESIGN.md). The mutex guards only the maps themselves; it is never
// held while a Callback runs; see dispatch.go.
type registry struct {
	mu        sync.Mutex
	backrefs  map[any][]BackRef
	subs      map[any][]*subscription
	activated map[any]struct{}
}

func newRegistry() *registry {
	return &registry{
		backrefs:  make(map[any][]BackRef),
		subs:      make(map[any][]*subscription),
		activated: make(map[any]struct{}),
	}
}

func (r *registry) isActivated(obj any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.activated[obj]
	return ok
}

func (r *registry) markActivated(obj any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activated[obj] = struct{}{}
}

func (r *registry) addBackRef(child any, br BackRef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.backrefs[child] {
		if existing == br {
			return
		}
	}
	r.backrefs[child] = append(r.backrefs[child], br)
}

// delBackRef removes the single BackRef (parent, child, name, source):
// a deactivation removes exactly the BackRef it installed, and no
// other BackRef pointing at child (from a different parent, or from the
// same parent under a different name) is disturbed.
func (r *registry) delBackRef(child, parent any, name Key, source Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	refs := r.backrefs[child]
	out := refs[:0]
	for _, br := range refs {
		if br.Parent == parent && br.Name == name && br.Source == source {
			continue
		}
		out = append(out, br)
	}
	if len(out) == 0 {
		delete(r.backrefs, child)
	} else {
		r.backrefs[child] = out
	}
}

func (r *registry) backRefsOf(child any) []BackRef {
	r.mu.Lock()
	defer r.mu.Unlock()
	refs := r.backrefs[child]
	out := make([]BackRef, len(refs))
	copy(out, refs)
	return out
}

func (r *registry) addSub(obj any, s *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[obj] = append(r.subs[obj], s)
}

// delSub removes the first subscription on obj whose Callback is cb,
// compared by function identity. Closures created from the same function
// literal share an identity, so of several such registrations the oldest
// one goes.
func (r *registry) delSub(obj any, cb Callback) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ptr := reflect.ValueOf(cb).Pointer()
	subs := r.subs[obj]
	for i, s := range subs {
		if reflect.ValueOf(s.cb).Pointer() != ptr {
			continue
		}
		r.subs[obj] = append(subs[:i], subs[i+1:]...)
		if len(r.subs[obj]) == 0 {
			delete(r.subs, obj)
		}
		return true
	}
	return false
}

func (r *registry) subsOf(obj any) []*subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs := r.subs[obj]
	out := make([]*subscription, len(subs))
	copy(out, subs)
	return out
}

// detach removes every backref and subscription rooted at obj. It does not
// cascade into obj's children: callers that want a full subgraph teardown
// walk the graph themselves (see Detach in reaktor.go).
func (r *registry) detach(obj any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backrefs, obj)
	delete(r.subs, obj)
	delete(r.activated, obj)
}
