package sift

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// resolve walks a field's accessor path against obj, using the result of
// each segment as the receiver for the next. The second return is false when
// a segment is missing and the field is optional; the caller omits the field
// from output. A missing segment on a required field yields a
// ResolutionError naming the field, the failing segment and the receiver.
func (s *Spec) resolve(obj any, f *field) (any, bool, error) {
	current := obj
	for _, segment := range f.path {
		value, ok := lookupAttr(current, segment)
		if !ok {
			if f.optional {
				return nil, false, nil
			}
			return nil, false, &ResolutionError{
				Spec:    s.name,
				Field:   f.name,
				Segment: segment,
				Type:    typeName(current),
			}
		}
		current = value
	}
	return current, true, nil
}

// lookupAttr resolves a single named attribute on obj. Resolution order:
// map key, struct field (exact name, then exported form, then
// case-insensitive), then method lookup yielding the bound method value.
// Pointers and interfaces are dereferenced before field access; method
// lookup runs against the original value so pointer receivers stay
// reachable.
func lookupAttr(obj any, name string) (any, bool) {
	if obj == nil {
		return nil, false
	}

	rv := reflect.ValueOf(obj)
	v := rv
	derefed := false
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
		derefed = true
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			mv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
			if mv.IsValid() {
				return mv.Interface(), true
			}
		}
	case reflect.Struct:
		if fv, ok := structField(v, name); ok {
			return fv, true
		}
	}

	if mv, ok := methodValue(rv, name); ok {
		return mv, true
	}
	if derefed {
		return methodValue(v, name)
	}
	return nil, false
}

// structField finds an exported field by declared name, exported-folded
// name, or case-insensitive match, in that order.
func structField(v reflect.Value, name string) (any, bool) {
	t := v.Type()
	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		return fieldByIndex(v, sf.Index)
	}
	if folded := exportedForm(name); folded != name {
		if sf, ok := t.FieldByName(folded); ok && sf.IsExported() {
			return fieldByIndex(v, sf.Index)
		}
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.IsExported() && strings.EqualFold(sf.Name, name) {
			return fieldByIndex(v, sf.Index)
		}
	}
	return nil, false
}

// fieldByIndex reads a field by its index path. A promoted field reached
// through a nil embedded pointer is reported as missing, never a panic.
func fieldByIndex(v reflect.Value, index []int) (any, bool) {
	fv, err := v.FieldByIndexErr(index)
	if err != nil {
		return nil, false
	}
	return fv.Interface(), true
}

// methodValue finds a method by declared or exported-folded name and returns
// it as a bound function value.
func methodValue(v reflect.Value, name string) (any, bool) {
	if !v.IsValid() {
		return nil, false
	}
	if m := v.MethodByName(name); m.IsValid() {
		return m.Interface(), true
	}
	if folded := exportedForm(name); folded != name {
		if m := v.MethodByName(folded); m.IsValid() {
			return m.Interface(), true
		}
	}
	return nil, false
}

// exportedForm upper-cases the first rune so declared names like "name"
// reach the exported field "Name".
func exportedForm(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// typeName names a receiver for error messages.
func typeName(obj any) string {
	if obj == nil {
		return "<nil>"
	}
	return reflect.TypeOf(obj).String()
}
