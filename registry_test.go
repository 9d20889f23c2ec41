package sift_test

import (
	"testing"

	"github.com/zoobzio/sift"
)

func buildAccount() (*sift.Spec, error) {
	return sift.NewSpec("Account").
		Field("name", sift.Identity()).
		Build()
}

func TestUse_Caching(t *testing.T) {
	sift.Reset() // Clear cache

	s1, err := sift.Use("Account", buildAccount)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	s2, err := sift.Use("Account", buildAccount)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if s1 != s2 {
		t.Error("Use() should return cached spec")
	}
}

func TestUse_BuildFailure(t *testing.T) {
	sift.Reset()

	_, err := sift.Use("Broken", func() (*sift.Spec, error) {
		return sift.NewSpec("Broken").Field("Settings", sift.Identity()).Build()
	})
	if err == nil {
		t.Fatal("Use() should surface build errors")
	}

	if _, ok := sift.Lookup("Broken"); ok {
		t.Error("failed builds must not be cached")
	}
}

func TestRegisterLookup(t *testing.T) {
	sift.Reset()

	spec, _ := buildAccount()
	sift.Register(spec)

	found, ok := sift.Lookup("Account")
	if !ok || found != spec {
		t.Error("Lookup() should return the registered spec")
	}
}

func TestReset(t *testing.T) {
	s1, _ := sift.Use("Account", buildAccount)

	sift.Reset()

	s2, _ := sift.Use("Account", buildAccount)

	if s1 == s2 {
		t.Error("Reset() should clear cache, new spec expected")
	}
}
