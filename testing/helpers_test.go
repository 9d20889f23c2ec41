package testing_test

import (
	"context"
	"testing"

	sifttest "github.com/zoobzio/sift/testing"
)

func TestAccountSpec_Fixture(t *testing.T) {
	spec := sifttest.AccountSpec()

	record, err := spec.Serialize(context.Background(), sifttest.SampleAccount())
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	if got, _ := record.Get("username"); got != "ada" {
		t.Errorf("record[username] = %v, want %q", got, "ada")
	}
	if got, _ := record.Get("age"); got != 36 {
		t.Errorf("record[age] = %v, want 36", got)
	}
}

func TestSampleAccounts_StableOrder(t *testing.T) {
	accounts := sifttest.SampleAccounts()
	if len(accounts) != 2 {
		t.Fatalf("len(accounts) = %d, want 2", len(accounts))
	}
	if accounts[0].Name != "ada" || accounts[1].Name != "grace" {
		t.Errorf("fixture order = [%s %s], want [ada grace]", accounts[0].Name, accounts[1].Name)
	}
}
