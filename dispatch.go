package reaktor

import "fmt"

// notify delivers ch to target's ancestors (bubbling all the way to the
// root first) and only then to target's own local subscriptions —
// bubbles before local callbacks: an ancestor's handler
// sees a Change before the object it actually happened on does. notify
// never holds the registry mutex while a Callback runs: it snapshots
// subscriptions and backrefs first, then releases the lock.
func (rk *Reaktor) notify(target any, ch Change) {
	rk.dispatch(target, ch, 0)
}

func (rk *Reaktor) dispatch(target any, ch Change, depth int) {
	if depth > rk.dispatchDepth {
		err := &DispatchDepthExceededError{Change: ch, Depth: depth}
		rk.log().Error("dispatch aborted", "error", err)
		return
	}

	for _, br := range rk.backRefsOf(target) {
		if br.Parent == nil {
			continue
		}
		rk.bubbleTo(br, ch, depth)
	}

	path := ch.Key.Render()
	for _, sub := range rk.subsOf(target) {
		if !sub.accepts(path) {
			continue
		}
		rk.invoke(sub, ch)
	}
}

// bubbleTo composes ch one hop up through br and dispatches it at
// br.Parent, recovering any panic from a misbehaving Key/compose
// implementation into a logged [BubbleError] so one bad backref can't
// stop delivery to the object's other ancestors.
func (rk *Reaktor) bubbleTo(br BackRef, ch Change, depth int) {
	defer func() {
		if r := recover(); r != nil {
			err := &BubbleError{Parent: br.Parent, Err: fmt.Errorf("panic: %v", r)}
			rk.log().Error("bubble aborted", "error", err)
		}
	}()
	bubbled := Change{
		Target: br.Parent,
		Key:    compose(br.Name, ch.Key, ch.Source),
		Old:    ch.Old,
		New:    ch.New,
		Source: br.Source,
	}
	rk.dispatch(br.Parent, bubbled, depth+1)
}

// invoke runs sub's Callback, recovering any panic into a logged
// [CallbackError] so a misbehaving subscriber can't break delivery to its
// siblings or interrupt bubbling to ancestors.
func (rk *Reaktor) invoke(sub *subscription, ch Change) {
	defer func() {
		if r := recover(); r != nil {
			err := &CallbackError{Change: ch, Recover: r}
			rk.log().Error("callback panicked", "error", err)
		}
	}()
	sub.cb(ch)
}
