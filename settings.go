package sift

// settings is the per-spec configuration consumed by accessor resolution.
// Both sets reference declared field names, never aliases. Immutable once
// the owning spec is built.
type settings struct {
	optional        map[string]struct{} // missing attribute omits the field
	disableAccessor map[string]struct{} // name used verbatim, no path split
}

func newSettings() settings {
	return settings{
		optional:        make(map[string]struct{}),
		disableAccessor: make(map[string]struct{}),
	}
}

func (s settings) isOptional(name string) bool {
	_, ok := s.optional[name]
	return ok
}

func (s settings) isAccessorDisabled(name string) bool {
	_, ok := s.disableAccessor[name]
	return ok
}

// merge unions other into a copy of s. Override sources are merged after
// embedded declarations, so later sources take precedence by construction.
func (s settings) merge(other settings) settings {
	out := newSettings()
	for name := range s.optional {
		out.optional[name] = struct{}{}
	}
	for name := range s.disableAccessor {
		out.disableAccessor[name] = struct{}{}
	}
	for name := range other.optional {
		out.optional[name] = struct{}{}
	}
	for name := range other.disableAccessor {
		out.disableAccessor[name] = struct{}{}
	}
	return out
}
