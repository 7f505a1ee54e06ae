// Package store holds the canonical application snapshot consumed by
// the presentation layer.
//
// The snapshot is only ever changed through Apply with a tagged action.
// Every transition produces fresh slices; nothing is mutated in place.
// No validation happens here: the store trusts its inputs, which come
// either from the backend or from the workflow after validation.
package store

import (
	"sync"

	"financery/internal/core"
)

// State is the full snapshot used for rendering.
type State struct {
	CurrentUser  *core.User
	Users        []core.User
	Bills        []core.Bill
	Transactions []core.Transaction
	Tags         []core.Tag
}

// Store is the single source of truth for rendering. Reads return
// copies, so callers can never alias the internal slices.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New() *Store {
	return &Store{}
}

// Action is one named state transition.
type Action interface {
	apply(*State)
}

// Apply runs a single action against the snapshot.
func (s *Store) Apply(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	action.apply(&s.state)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := State{
		Users:        copySlice(s.state.Users),
		Bills:        copySlice(s.state.Bills),
		Transactions: copySlice(s.state.Transactions),
		Tags:         copySlice(s.state.Tags),
	}
	if s.state.CurrentUser != nil {
		u := *s.state.CurrentUser
		st.CurrentUser = &u
	}
	return st
}

type (
	SetCurrentUser struct{ User *core.User }
	SetUsers       struct{ Users []core.User }
	SetBills       struct{ Bills []core.Bill }
	SetTransactions struct {
		Transactions []core.Transaction
	}
	SetTags struct{ Tags []core.Tag }

	AddBill    struct{ Bill core.Bill }
	DeleteBill struct{ ID int64 }

	AddTransaction    struct{ Transaction core.Transaction }
	UpdateTransaction struct{ Transaction core.Transaction }
	DeleteTransaction struct{ ID int64 }
)

func (a SetCurrentUser) apply(st *State) {
	if a.User == nil {
		st.CurrentUser = nil
		return
	}
	u := *a.User
	st.CurrentUser = &u
}

func (a SetUsers) apply(st *State) { st.Users = copySlice(a.Users) }

func (a SetBills) apply(st *State) { st.Bills = copySlice(a.Bills) }

func (a SetTransactions) apply(st *State) { st.Transactions = copySlice(a.Transactions) }

func (a SetTags) apply(st *State) { st.Tags = copySlice(a.Tags) }

func (a AddBill) apply(st *State) {
	st.Bills = append(copySlice(st.Bills), a.Bill)
}

func (a DeleteBill) apply(st *State) {
	st.Bills = deleteByID(st.Bills, a.ID, func(b core.Bill) int64 { return b.ID })
}

func (a AddTransaction) apply(st *State) {
	st.Transactions = append(copySlice(st.Transactions), a.Transaction)
}

func (a UpdateTransaction) apply(st *State) {
	next := copySlice(st.Transactions)
	for i := range next {
		if next[i].ID == a.Transaction.ID {
			next[i] = a.Transaction
		}
	}
	st.Transactions = next
}

func (a DeleteTransaction) apply(st *State) {
	st.Transactions = deleteByID(st.Transactions, a.ID, func(t core.Transaction) int64 { return t.ID })
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append([]T(nil), in...)
}

func deleteByID[T any](in []T, id int64, idOf func(T) int64) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if idOf(v) != id {
			out = append(out, v)
		}
	}
	return out
}
