package sift

import "strings"

// pathSeparator marks nested attribute traversal inside a field name.
const pathSeparator = "__"

// FieldDef is one declared field: a name, possibly containing path
// separators, and the transform applied to its resolved value.
type FieldDef struct {
	Name      string
	Transform Transform
}

// field is the normalized descriptor the engine iterates over. Built once at
// spec construction and immutable afterwards.
type field struct {
	name      string   // declared name, unique within the spec
	path      []string // accessor path segments, length 1 when not nested
	alias     string   // output key, defaults to name
	transform Transform
	optional  bool // absent attribute omits the field instead of failing
}

// splitAccessor splits a declared field name into accessor path segments.
// A separator only splits when both sides around it carry a segment that is
// not made up entirely of underscores, so leading, trailing and doubled-up
// underscores stay part of the adjacent segment:
//
//	"a__b"     -> ["a", "b"]
//	"a__b__c"  -> ["a", "b", "c"]
//	"_a___c"   -> ["_a", "_c"]
//	"a__"      -> ["a__"]
//	"__a"      -> ["__a"]
func splitAccessor(name string) []string {
	segments := []string{}
	current := ""
	rest := name
	for {
		before, after, found := strings.Cut(rest, pathSeparator)
		if !found {
			segments = append(segments, current+rest)
			return segments
		}
		if validSegment(current+before) && validSegment(after) {
			segments = append(segments, current+before)
			current = ""
			rest = after
			continue
		}
		// Separator does not split here; keep it attached and move on.
		current += before + pathSeparator
		rest = after
	}
}

// validSegment reports whether s is usable as a standalone path segment.
// Empty strings and underscore-only runs are not.
func validSegment(s string) bool {
	return s != "" && strings.Trim(s, "_") != ""
}
