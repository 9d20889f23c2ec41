package sift

import (
	"reflect"
	"testing"
)

func TestSplitAccessor(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"a", []string{"a"}},
		{"a__b", []string{"a", "b"}},
		{"a__b__c", []string{"a", "b", "c"}},
		{"_a___c", []string{"_a", "_c"}},
		{"a__", []string{"a__"}},
		{"__a", []string{"__a"}},
		{"____a", []string{"____a"}},
		{"a____b", []string{"a", "__b"}},
		{"x____a__b", []string{"x", "__a", "b"}},
		{"a__b___c", []string{"a", "b", "_c"}},
		{"full_name", []string{"full_name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAccessor(tt.name)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAccessor(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSplitAccessor_DisabledPathUsedVerbatim(t *testing.T) {
	spec, err := NewSpec("Disabled").
		Field("e__nested", Identity()).
		DisableAccessor("e__nested").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	f := spec.fields[0]
	if !reflect.DeepEqual(f.path, []string{"e__nested"}) {
		t.Errorf("disabled accessor path = %v, want the raw name", f.path)
	}
}
