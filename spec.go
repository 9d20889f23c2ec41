package sift

import (
	"go/token"
	"strings"
)

// reservedNames cannot be used as field names. "Settings" is the embedded
// settings slot in the declarative form and stays reserved so declarations
// remain portable between construction paths.
var reservedNames = map[string]struct{}{
	"Settings": {},
}

// Spec is the full declarative unit: an ordered field sequence, its
// settings, and the methods getter transforms resolve against. A Spec is
// built once, is immutable afterwards, and is safe to share across
// concurrent invocations.
type Spec struct {
	name     string
	fields   []field
	index    map[string]int // declared name -> position in fields
	settings settings
	methods  map[string]GetterFunc
}

// Name returns the spec's name.
func (s *Spec) Name() string {
	return s.name
}

// Fields returns the declared field names in declaration order.
func (s *Spec) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Select returns a spec narrowed to the named fields, preserving declaration
// order. Unknown names fail with a SpecError before any object is touched.
func (s *Spec) Select(names ...string) (*Spec, error) {
	fields, err := s.subset(names)
	if err != nil {
		return nil, err
	}
	narrowed := &Spec{
		name:     s.name,
		fields:   fields,
		index:    make(map[string]int, len(fields)),
		settings: s.settings,
		methods:  s.methods,
	}
	for i, f := range fields {
		narrowed.index[f.name] = i
	}
	return narrowed, nil
}

// subset validates names against the declared fields and returns the
// matching descriptors in declaration order.
func (s *Spec) subset(names []string) ([]field, error) {
	requested := make(map[string]struct{}, len(names))
	var unknown []string
	for _, name := range names {
		if _, ok := s.index[name]; !ok {
			unknown = append(unknown, name)
			continue
		}
		requested[name] = struct{}{}
	}
	if len(unknown) > 0 {
		return nil, newSpecError(ErrUnknownField, s.name, "", strings.Join(unknown, ", "))
	}
	fields := make([]field, 0, len(requested))
	for _, f := range s.fields {
		if _, ok := requested[f.name]; ok {
			fields = append(fields, f)
		}
	}
	return fields, nil
}

// Builder declares a spec field by field. The zero Builder is not usable;
// start with NewSpec.
type Builder struct {
	name    string
	defs    []FieldDef
	aliases map[string]string
	methods map[string]GetterFunc
	st      settings
}

// NewSpec starts a spec declaration.
func NewSpec(name string) *Builder {
	return &Builder{
		name:    name,
		aliases: make(map[string]string),
		methods: make(map[string]GetterFunc),
		st:      newSettings(),
	}
}

// Field declares a field. Redeclaring a name keeps its original position in
// the output order but replaces its transform.
func (b *Builder) Field(name string, t Transform) *Builder {
	b.defs = append(b.defs, FieldDef{Name: name, Transform: t})
	return b
}

// Alias binds an output key for a declared field name. Without an alias the
// field name is the output key.
func (b *Builder) Alias(name, alias string) *Builder {
	b.aliases[name] = alias
	return b
}

// Method defines a named method on the spec for Getter transforms to
// resolve against.
func (b *Builder) Method(name string, fn GetterFunc) *Builder {
	b.methods[name] = fn
	return b
}

// Optional marks field names whose missing attributes are omitted from
// output instead of failing resolution.
func (b *Builder) Optional(names ...string) *Builder {
	for _, name := range names {
		b.st.optional[name] = struct{}{}
	}
	return b
}

// DisableAccessor suppresses path splitting for the named fields; the whole
// name is used as a single attribute lookup even when separators are
// present.
func (b *Builder) DisableAccessor(names ...string) *Builder {
	for _, name := range names {
		b.st.disableAccessor[name] = struct{}{}
	}
	return b
}

// Build validates the declaration and constructs the immutable Spec.
func (b *Builder) Build() (*Spec, error) {
	return buildSpec(b.name, b.defs, b.aliases, b.methods, b.st)
}

// MustBuild is like Build but panics on declaration errors. Intended for
// package-level spec declarations where a malformed spec is a programming
// error.
func (b *Builder) MustBuild() *Spec {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// buildSpec normalizes declared fields into descriptors. All classification
// and getter resolution happens here, once; invocations never inspect
// declared values again.
func buildSpec(name string, defs []FieldDef, aliases map[string]string, methods map[string]GetterFunc, st settings) (*Spec, error) {
	for aliased := range aliases {
		if err := checkFieldName(name, aliased); err != nil {
			return nil, err
		}
	}
	for method := range methods {
		if err := checkFieldName(name, method); err != nil {
			return nil, err
		}
	}

	// Copy the mutable inputs so the built spec cannot be changed through
	// the builder afterwards.
	s := &Spec{
		name:     name,
		index:    make(map[string]int),
		settings: st.merge(newSettings()),
		methods:  make(map[string]GetterFunc, len(methods)),
	}
	for method, fn := range methods {
		s.methods[method] = fn
	}

	for _, def := range defs {
		if err := checkFieldName(name, def.Name); err != nil {
			return nil, err
		}

		f := field{
			name:      def.Name,
			alias:     def.Name,
			transform: def.Transform,
			optional:  st.isOptional(def.Name),
		}
		if alias, ok := aliases[def.Name]; ok {
			f.alias = alias
		}
		if st.isAccessorDisabled(def.Name) {
			f.path = []string{def.Name}
		} else {
			f.path = splitAccessor(def.Name)
		}
		if f.transform.kind == kindGetter {
			fn, ok := methods[f.transform.getterName]
			if !ok {
				return nil, newSpecError(ErrMissingMethod, name, def.Name, f.transform.getterName)
			}
			f.transform.getterFn = fn
		}

		// Last declaration wins for the descriptor, first-seen position
		// wins for output order.
		if i, ok := s.index[def.Name]; ok {
			s.fields[i] = f
			continue
		}
		s.index[def.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	emitSpecBuilt(s.name, len(s.fields))
	return s, nil
}

// checkFieldName enforces the identifier and reserved-name rules shared by
// both construction paths.
func checkFieldName(spec, name string) error {
	if !token.IsIdentifier(name) {
		return newSpecError(ErrInvalidIdentifier, spec, name, "")
	}
	if _, ok := reservedNames[name]; ok {
		return newSpecError(ErrReservedName, spec, name, "")
	}
	return nil
}
