package store

import (
	"testing"

	"financery/internal/core"
)

func tx(id int64, name string) core.Transaction {
	return core.Transaction{ID: id, Name: name, Amount: 1, Date: "01.01.2024"}
}

func TestSetReplacesWhole(t *testing.T) {
	s := New()
	s.Apply(SetTransactions{Transactions: []core.Transaction{tx(1, "a"), tx(2, "b")}})
	s.Apply(SetTransactions{Transactions: []core.Transaction{tx(3, "c")}})

	got := s.Snapshot().Transactions
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected full replacement, got %v", got)
	}
}

func TestAddUpdateDelete(t *testing.T) {
	s := New()
	s.Apply(AddTransaction{Transaction: tx(1, "a")})
	s.Apply(AddTransaction{Transaction: tx(2, "b")})

	s.Apply(UpdateTransaction{Transaction: tx(2, "b2")})
	if got := s.Snapshot().Transactions; got[1].Name != "b2" {
		t.Fatalf("expected update by id, got %v", got)
	}

	s.Apply(DeleteTransaction{ID: 1})
	got := s.Snapshot().Transactions
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected delete by id, got %v", got)
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := New()
	s.Apply(AddTransaction{Transaction: tx(1, "a")})
	s.Apply(UpdateTransaction{Transaction: tx(99, "ghost")})

	got := s.Snapshot().Transactions
	if len(got) != 1 || got[0].Name != "a" {
		t.Fatalf("update of unknown id must not change state, got %v", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	s.Apply(SetBills{Bills: []core.Bill{{ID: 1, Name: "main"}}})

	snap := s.Snapshot()
	snap.Bills[0].Name = "mutated"

	if got := s.Snapshot().Bills[0].Name; got != "main" {
		t.Fatalf("snapshot mutation leaked into store: %q", got)
	}
}

func TestSetCurrentUser(t *testing.T) {
	s := New()
	u := core.User{ID: 3, Name: "alice"}
	s.Apply(SetCurrentUser{User: &u})

	u.Name = "mutated"
	if got := s.Snapshot().CurrentUser; got == nil || got.Name != "alice" {
		t.Fatalf("current user must be copied, got %v", got)
	}

	s.Apply(SetCurrentUser{User: nil})
	if s.Snapshot().CurrentUser != nil {
		t.Fatalf("expected current user cleared")
	}
}

func TestBillActions(t *testing.T) {
	s := New()
	s.Apply(AddBill{Bill: core.Bill{ID: 1, Name: "main"}})
	s.Apply(AddBill{Bill: core.Bill{ID: 2, Name: "savings"}})
	s.Apply(DeleteBill{ID: 1})

	got := s.Snapshot().Bills
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only bill 2, got %v", got)
	}
}
