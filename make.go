package sift

// MakeOption configures dynamic spec synthesis.
type MakeOption func(*makeConfig)

type makeConfig struct {
	bases   []*Spec
	defs    []FieldDef
	aliases map[string]string
	methods map[string]GetterFunc
	st      settings
}

// WithBases merges the field order, aliases, methods and settings of the
// given specs, in order. On a name collision a later base's declaration
// wins while the field keeps its first-seen position in the output order.
// Alias bindings merge independently of declarations: an earlier base's
// alias survives a later base's bare redeclaration and is only replaced by
// a later alias binding (from a base or WithAliases).
func WithBases(specs ...*Spec) MakeOption {
	return func(cfg *makeConfig) {
		cfg.bases = append(cfg.bases, specs...)
	}
}

// WithFields declares fields, merged after all bases so an explicit
// declaration overrides an inherited one.
func WithFields(defs ...FieldDef) MakeOption {
	return func(cfg *makeConfig) {
		cfg.defs = append(cfg.defs, defs...)
	}
}

// WithAliases binds output keys to field names, overriding aliases
// inherited from bases.
func WithAliases(aliases map[string]string) MakeOption {
	return func(cfg *makeConfig) {
		for name, alias := range aliases {
			cfg.aliases[name] = alias
		}
	}
}

// WithMethods defines named methods for Getter transforms, overriding
// methods inherited from bases.
func WithMethods(methods map[string]GetterFunc) MakeOption {
	return func(cfg *makeConfig) {
		for name, fn := range methods {
			cfg.methods[name] = fn
		}
	}
}

// WithOptional marks field names as exempt from missing-attribute failures,
// in addition to any inherited optional declarations.
func WithOptional(names ...string) MakeOption {
	return func(cfg *makeConfig) {
		for _, name := range names {
			cfg.st.optional[name] = struct{}{}
		}
	}
}

// WithDisableAccessor suppresses path splitting for the named fields, in
// addition to any inherited declarations.
func WithDisableAccessor(names ...string) MakeOption {
	return func(cfg *makeConfig) {
		for _, name := range names {
			cfg.st.disableAccessor[name] = struct{}{}
		}
	}
}

// Make builds a spec from data instead of a declaration: base specs are
// merged in order, then explicit fields, aliases, methods and settings
// overrides are applied on top. The result is a plain immutable Spec with
// no capability gap against one built through NewSpec.
func Make(name string, opts ...MakeOption) (*Spec, error) {
	cfg := &makeConfig{
		aliases: make(map[string]string),
		methods: make(map[string]GetterFunc),
		st:      newSettings(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Replay bases in order, then apply the explicit declarations on top.
	var defs []FieldDef
	aliases := make(map[string]string)
	methods := make(map[string]GetterFunc)
	st := newSettings()

	for _, base := range cfg.bases {
		for _, f := range base.fields {
			t := f.transform
			t.getterFn = nil // re-resolved against the merged methods
			defs = append(defs, FieldDef{Name: f.name, Transform: t})
			if f.alias != f.name {
				aliases[f.name] = f.alias
			}
		}
		for method, fn := range base.methods {
			methods[method] = fn
		}
		st = st.merge(base.settings)
	}

	defs = append(defs, cfg.defs...)
	for fieldName, alias := range cfg.aliases {
		aliases[fieldName] = alias
	}
	for method, fn := range cfg.methods {
		methods[method] = fn
	}
	st = st.merge(cfg.st)

	return buildSpec(name, defs, aliases, methods, st)
}
