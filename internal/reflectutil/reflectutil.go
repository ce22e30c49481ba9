// Package reflectutil adapts an ordinary struct pointer to the host
// package's Record capability (Fields/Get/Set/Del) when the struct doesn't
// implement that capability itself. Only exported fields participate;
// unexported fields are invisible to reflection from outside the struct's
// own package and are silently skipped. A field tagged `reaktor:"-"` is
// skipped the same way, extending the private-field convention to fields
// a type wants exported for other reasons but excluded from observation.
package reflectutil

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/go-reaktor/reaktor/internal/iterutil"
)

// Adapter wraps a pointer to a struct value and exposes its exported
// fields under the Fields/Get/Set/Del method shapes expected by the host
// package's Record interface. Go interfaces are satisfied structurally,
// so Adapter meets Record without this package importing the host
// package.
type Adapter struct {
	rv reflect.Value
	rt reflect.Type
}

// Of builds an Adapter over obj, which must be a non-nil pointer to a
// struct. It returns false if obj doesn't have that shape.
func Of(obj any) (Adapter, bool) {
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return Adapter{}, false
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return Adapter{}, false
	}
	return Adapter{rv: elem, rt: elem.Type()}, true
}

func (a Adapter) visible(f reflect.StructField) bool {
	if !f.IsExported() {
		return false
	}
	return f.Tag.Get("reaktor") != "-"
}

// Fields iterates the struct's visible fields as (name, current value)
// pairs, in declaration order.
func (a Adapter) Fields() iter.Seq2[string, any] {
	names := make([]string, 0, a.rt.NumField())
	for i := 0; i < a.rt.NumField(); i++ {
		if f := a.rt.Field(i); a.visible(f) {
			names = append(names, f.Name)
		}
	}
	return func(yield func(string, any) bool) {
		for name := range iterutil.SeqOf(names...) {
			v, _ := a.Get(name)
			if !yield(name, v) {
				return
			}
		}
	}
}

// Get returns the current value of the named exported field.
func (a Adapter) Get(name string) (any, bool) {
	f := a.rv.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return nil, false
	}
	return f.Interface(), true
}

// Set assigns value to the named exported field. It errors if the field
// doesn't exist, isn't visible (unexported or tagged `reaktor:"-"`), or the
// value isn't assignable.
func (a Adapter) Set(name string, value any) error {
	sf, ok := a.rt.FieldByName(name)
	if !ok || !a.visible(sf) {
		return fmt.Errorf("reflectutil: no settable field %q on %s", name, a.rt)
	}
	f := a.rv.FieldByName(name)
	if !f.IsValid() || !f.CanSet() {
		return fmt.Errorf("reflectutil: no settable field %q on %s", name, a.rt)
	}
	nv := reflect.ValueOf(value)
	if !nv.IsValid() {
		nv = reflect.Zero(f.Type())
	} else if !nv.Type().AssignableTo(f.Type()) {
		return fmt.Errorf("reflectutil: cannot assign %T to field %q (%s)", value, name, f.Type())
	}
	f.Set(nv)
	return nil
}

// Del resets the named exported field to its zero value. It errors if the
// field doesn't exist or isn't visible (unexported or tagged `reaktor:"-"`).
func (a Adapter) Del(name string) error {
	sf, ok := a.rt.FieldByName(name)
	if !ok || !a.visible(sf) {
		return fmt.Errorf("reflectutil: no settable field %q on %s", name, a.rt)
	}
	f := a.rv.FieldByName(name)
	if !f.IsValid() || !f.CanSet() {
		return fmt.Errorf("reflectutil: no settable field %q on %s", name, a.rt)
	}
	f.Set(reflect.Zero(f.Type()))
	return nil
}
