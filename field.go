package reaktor

// SetField assigns value to the named field of a Record-capable obj
// through the default engine, emitting a Change with Source == SourceAttr
// to every matching subscriber. It returns [ErrNotTracked] if obj was
// never activated.
func SetField(obj any, name string, value any) (any, error) {
	return defaultEngine.SetField(obj, name, value)
}

// DelField resets the named field of obj back to its zero value through
// the default engine, emitting a Change whose New is nil.
func DelField(obj any, name string) (any, error) {
	return defaultEngine.DelField(obj, name)
}

// SetField is the [*Reaktor] method backing the package-level SetField
// facade.
func (rk *Reaktor) SetField(obj any, name string, value any) (any, error) {
	if !rk.isActivated(obj) {
		return nil, newNotTrackedError(obj)
	}
	rec, ok := recordOf(obj)
	if !ok {
		return nil, newNotTrackedError(obj)
	}
	old, _ := rec.Get(name)
	if err := rec.Set(name, value); err != nil {
		return nil, err
	}
	rk.deactivateChild(obj, StringKey(name), SourceAttr, old)
	_ = rk.activate(obj, StringKey(name), SourceAttr, value)
	rk.notify(obj, Change{Target: obj, Key: StringKey(name), Old: old, New: value, Source: SourceAttr})
	return old, nil
}

// DelField is the [*Reaktor] method backing the package-level DelField
// facade.
func (rk *Reaktor) DelField(obj any, name string) (any, error) {
	if !rk.isActivated(obj) {
		return nil, newNotTrackedError(obj)
	}
	rec, ok := recordOf(obj)
	if !ok {
		return nil, newNotTrackedError(obj)
	}
	old, _ := rec.Get(name)
	if err := rec.Del(name); err != nil {
		return nil, err
	}
	rk.deactivateChild(obj, StringKey(name), SourceAttr, old)
	rk.notify(obj, Change{Target: obj, Key: StringKey(name), Old: old, New: nil, Source: SourceAttr})
	return old, nil
}
