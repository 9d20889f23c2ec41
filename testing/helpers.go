// Package testing provides test utilities for sift.
package testing

import (
	"github.com/zoobzio/sift"
)

// Address is a nested fixture type.
type Address struct {
	City   string
	Street string
}

// Account is a fixture type exercising nested traversal, casts and methods.
type Account struct {
	Name    string
	Age     string
	Address Address
}

// Label is a method fixture reachable through bound-method resolution.
func (a Account) Label() string {
	return a.Name + " <" + a.Address.City + ">"
}

// SampleAccount returns a populated fixture.
func SampleAccount() Account {
	return Account{
		Name: "ada",
		Age:  "36",
		Address: Address{
			City:   "London",
			Street: "Baker St",
		},
	}
}

// SampleAccounts returns fixtures for many-mode tests, in a fixed order.
func SampleAccounts() []Account {
	return []Account{
		SampleAccount(),
		{Name: "grace", Age: "47", Address: Address{City: "Arlington", Street: "Main St"}},
	}
}

// AddressSpec returns the canonical nested spec.
func AddressSpec() *sift.Spec {
	return sift.NewSpec("Address").
		Field("city", sift.Identity()).
		Field("street", sift.Identity()).
		MustBuild()
}

// AccountSpec returns the canonical fixture spec: an alias, a cast, and a
// nested sub-spec.
func AccountSpec() *sift.Spec {
	return sift.NewSpec("Account").
		Field("name", sift.Identity()).
		Field("age", sift.Cast(sift.Int)).
		Field("address", sift.Nested(AddressSpec())).
		Alias("name", "username").
		MustBuild()
}
