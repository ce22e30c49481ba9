// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

// Package reaktor turns a plain Go object graph into a reactive one:
// mutations made through Sequence, Mapping, Set or a Record are observed
// by subscribers attached anywhere in the graph, including ancestors of
// the object that actually changed.
package reaktor

import (
	"io"
	"log/slog"
)

// Reaktor is an activation/dispatch engine. The zero value is not usable;
// build one with New. Most callers don't need more than one and can use
// the package-level facade functions (Activate, Detach, On, Receiver),
// which operate against a shared default instance.
type Reaktor struct {
	*registry
	dispatchDepth int
	logger        *slog.Logger
	transparent   map[string]string
}

// New builds a Reaktor engine with the given options applied.
func New(opts ...Option) *Reaktor {
	rk := &Reaktor{
		registry:      newRegistry(),
		dispatchDepth: defaultDispatchDepth,
	}
	for _, opt := range opts {
		opt.apply(rk)
	}
	return rk
}

func (rk *Reaktor) log() *slog.Logger {
	if rk.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}
	return rk.logger
}

var defaultEngine = New()

// Activate walks obj's reachable graph, wiring up BackRefs so future
// mutations made through its Sequence/Mapping/Set/Record members are
// observed, and returns obj back for convenient chaining. It is a no-op,
// returning obj unchanged, if obj is already activated.
//
// obj must be a pointer to a Record-capable struct, or a container type
// from this package (*Sequence, *Mapping, *Set). Any other value is treated
// as a leaf: nothing is wired for it and no error is returned; a
// non-scalar one is logged at Info as an [UnsupportedTypeError].
func Activate(obj any) (any, error) {
	return defaultEngine.Activate(obj)
}

// Detach removes obj and its entire reachable subgraph from the default
// engine's bookkeeping: no further Changes will be observed or bubbled
// through it.
func Detach(obj any) {
	defaultEngine.Detach(obj)
}

// On subscribes cb to Changes raised at or beneath obj, narrowed by any
// FilterOption given. It returns [ErrNotTracked] if obj was never
// activated.
func On(obj any, cb Callback, opts ...FilterOption) error {
	return defaultEngine.On(obj, cb, opts...)
}

// Off removes cb's subscription on obj from the default engine, compared
// by function identity. It reports whether a subscription was removed.
func Off(obj any, cb Callback) bool {
	return defaultEngine.Off(obj, cb)
}

// Receiver adapts a subscription into decorator form: the returned
// function wraps a Callback, registering it against obj and returning it
// unchanged, so call sites can write `h := reaktor.Receiver(obj)(handler)`.
func Receiver(obj any, opts ...FilterOption) func(Callback) Callback {
	return defaultEngine.Receiver(obj, opts...)
}

// Activate is the [*Reaktor] method backing the package-level Activate
// facade; use it directly when you built your own engine with [New].
func (rk *Reaktor) Activate(obj any) (any, error) {
	if err := rk.activateRoot(obj, rootName(obj)); err != nil {
		return nil, err
	}
	return obj, nil
}

// Detach is the [*Reaktor] method backing the package-level Detach facade.
func (rk *Reaktor) Detach(obj any) {
	rk.detachGraph(obj, make(map[any]struct{}))
}

// On is the [*Reaktor] method backing the package-level On facade.
func (rk *Reaktor) On(obj any, cb Callback, opts ...FilterOption) error {
	if !rk.isActivated(obj) {
		return newNotTrackedError(obj)
	}
	s := &subscription{cb: cb}
	for _, opt := range opts {
		opt.applyFilter(s)
	}
	rk.addSub(obj, s)
	return nil
}

// Off is the [*Reaktor] method backing the package-level Off facade.
func (rk *Reaktor) Off(obj any, cb Callback) bool {
	return rk.delSub(obj, cb)
}

// Receiver is the [*Reaktor] method backing the package-level Receiver
// facade.
func (rk *Reaktor) Receiver(obj any, opts ...FilterOption) func(Callback) Callback {
	return func(cb Callback) Callback {
		_ = rk.On(obj, cb, opts...)
		return cb
	}
}

// Reactive is an embeddable mix-in for types that would rather call
// Activate themselves from a constructor than have callers remember to.
// Embed it, then call PostActivate(self) once the value is fully built:
//
//	type Document struct {
//		reaktor.Reactive
//		Title string
//	}
//
//	func NewDocument(title string) *Document {
//		d := &Document{Title: title}
//		d.PostActivate(d)
//		return d
//	}
type Reactive struct {
	engine *Reaktor
}

// PostActivate activates self against the receiver's engine (the default
// engine, unless BindEngine was called first).
func (r *Reactive) PostActivate(self any) (any, error) {
	rk := r.engine
	if rk == nil {
		rk = defaultEngine
	}
	return rk.Activate(self)
}

// BindEngine associates the mix-in with a specific [Reaktor] instance
// instead of the package default. Call it before PostActivate.
func (r *Reactive) BindEngine(rk *Reaktor) {
	r.engine = rk
}
