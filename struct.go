package sift

import (
	"reflect"
	"strings"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the sift tag with sentinel
	sentinel.Tag("sift")
}

// FromStruct derives a spec from T's exported fields and `sift` struct
// tags. The tag syntax is:
//
//	sift:"alias"           - output key
//	sift:",optional"       - missing attribute omits the field
//	sift:"-"               - field excluded
//
// Struct-typed fields (and pointers to structs) become Nested sub-specs;
// slices of structs become NestedMany. Everything else gets Identity.
// time.Time stays a scalar.
func FromStruct[T any]() (*Spec, error) {
	meta := sentinel.Scan[T]()

	aliases := make(map[string]string)
	var optional []string
	var defs []FieldDef

	for _, fm := range meta.Fields {
		tag := fm.Tags["sift"]
		if tag == "-" {
			continue
		}
		alias, tagOptional := parseStructTag(tag)

		transform, err := structTransform(fm.ReflectType)
		if err != nil {
			return nil, err
		}

		defs = append(defs, FieldDef{Name: fm.Name, Transform: transform})
		if alias != "" {
			aliases[fm.Name] = alias
		}
		if tagOptional {
			optional = append(optional, fm.Name)
		}
	}

	return Make(meta.TypeName,
		WithFields(defs...),
		WithAliases(aliases),
		WithOptional(optional...),
	)
}

// structTransform picks the transform for a struct field's type.
func structTransform(rt reflect.Type) (Transform, error) {
	elem := rt
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	switch {
	case elem == reflect.TypeOf(time.Time{}):
		return Identity(), nil
	case elem.Kind() == reflect.Struct:
		nested, err := fromType(elem)
		if err != nil {
			return Transform{}, err
		}
		return Nested(nested), nil
	case elem.Kind() == reflect.Slice || elem.Kind() == reflect.Array:
		inner := elem.Elem()
		if inner.Kind() == reflect.Pointer {
			inner = inner.Elem()
		}
		if inner.Kind() == reflect.Struct && inner != reflect.TypeOf(time.Time{}) {
			nested, err := fromType(inner)
			if err != nil {
				return Transform{}, err
			}
			return NestedMany(nested), nil
		}
	}
	return Identity(), nil
}

// fromType builds a sub-spec for a nested struct type, reading tags
// directly since sentinel metadata is only scanned for the root type.
func fromType(rt reflect.Type) (*Spec, error) {
	aliases := make(map[string]string)
	var optional []string
	var defs []FieldDef

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("sift")
		if tag == "-" {
			continue
		}
		alias, tagOptional := parseStructTag(tag)

		transform, err := structTransform(sf.Type)
		if err != nil {
			return nil, err
		}

		defs = append(defs, FieldDef{Name: sf.Name, Transform: transform})
		if alias != "" {
			aliases[sf.Name] = alias
		}
		if tagOptional {
			optional = append(optional, sf.Name)
		}
	}

	return Make(rt.Name(),
		WithFields(defs...),
		WithAliases(aliases),
		WithOptional(optional...),
	)
}

// parseStructTag splits a sift tag into its alias and flags.
func parseStructTag(tag string) (alias string, optional bool) {
	parts := strings.Split(tag, ",")
	alias = parts[0]
	for _, flag := range parts[1:] {
		if flag == "optional" {
			optional = true
		}
	}
	return alias, optional
}
