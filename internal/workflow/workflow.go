// Package workflow implements the transaction form workflow: the one
// place where transactions are created, edited and deleted.
//
// The form is an explicit state machine (closed, open-create,
// open-edit, submitting, deleting) decoupled from any rendering
// technology. It owns the transient field values, runs validation
// before any network call, converts between the input and wire date
// formats, and after every successful mutation re-reads the user's
// bills and transactions from the backend so the store always reflects
// server truth.
package workflow

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"financery/internal/api"
	"financery/internal/core"
	"financery/internal/log"
	"financery/internal/store"
)

type (
	Phase     string
	Direction string
)

const (
	PhaseClosed     Phase = "closed"
	PhaseOpenCreate Phase = "open-create"
	PhaseOpenEdit   Phase = "open-edit"
	PhaseSubmitting Phase = "submitting"
	PhaseDeleting   Phase = "deleting"
)

const (
	Income  Direction = "income"
	Expense Direction = "expense"
)

var (
	ErrNoBillSelected = errors.New("select a bill first")
	ErrNoCurrentUser  = errors.New("select a user first")
	ErrBusy           = errors.New("a request is already in flight")
	ErrNotOpen        = errors.New("the form is not open")
)

// Backend is the slice of the wire client the workflow needs.
type Backend interface {
	CreateTransaction(ctx context.Context, req api.TransactionRequest) (core.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, req api.TransactionRequest) (core.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	GetUserBills(ctx context.Context, userID int64) ([]core.Bill, error)
	GetUserTransactions(ctx context.Context, userID int64) ([]core.Transaction, error)
}

// Form is the transaction form workflow. Field values survive a failed
// submit; they are reset only when the form is opened again.
type Form struct {
	backend Backend
	store   *store.Store
	logger  *log.Logger
	notify  func(error)
	confirm func() bool

	mu      sync.Mutex
	phase   Phase
	resume  Phase // phase to fall back to when a request fails
	busy    bool

	direction Direction
	bill      core.Bill        // create target
	editing   core.Transaction // edit subject
	draft     core.Draft
	tagIDs    map[int64]struct{}
}

// Option configures a Form.
type Option func(*Form)

// WithNotify sets the user-visible alert sink. Every terminal failure
// of a submit or delete goes through it exactly once.
func WithNotify(fn func(error)) Option {
	return func(f *Form) { f.notify = fn }
}

// WithConfirm sets the delete confirmation prompt. Without one, deletes
// proceed unconfirmed.
func WithConfirm(fn func() bool) Option {
	return func(f *Form) { f.confirm = fn }
}

func New(backend Backend, st *store.Store, logger *log.Logger, opts ...Option) *Form {
	f := &Form{
		backend: backend,
		store:   st,
		logger:  logger.WithComponent(log.ComponentWorkflow),
		notify:  func(error) {},
		confirm: func() bool { return true },
		phase:   PhaseClosed,
		tagIDs:  map[int64]struct{}{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Phase returns the current workflow phase.
func (f *Form) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// IsOpen reports whether the form is visible in any phase.
func (f *Form) IsOpen() bool {
	return f.Phase() != PhaseClosed
}

// Draft returns the current field values.
func (f *Form) Draft() core.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft replaces the field values. The presentation layer calls this
// to push edited input back into the workflow before a submit.
func (f *Form) SetDraft(d core.Draft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// Direction returns income or expense for the open form. In edit mode
// this reflects the transaction being edited, never the open-mode
// argument.
func (f *Form) Direction() Direction {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase == PhaseOpenEdit || (f.busy && f.resume == PhaseOpenEdit) {
		if f.editing.Type {
			return Income
		}
		return Expense
	}
	return f.direction
}

// Editing returns the transaction being edited, if any.
func (f *Form) Editing() (core.Transaction, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	editing := f.phase == PhaseOpenEdit || (f.busy && f.resume == PhaseOpenEdit)
	return f.editing, editing
}

// OpenCreate opens the form in create mode for the given bill. Without
// a resolved bill the form refuses to open and never touches the
// network.
func (f *Form) OpenCreate(direction Direction, bill *core.Bill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return ErrBusy
	}
	if bill == nil {
		f.notify(ErrNoBillSelected)
		return ErrNoBillSelected
	}
	f.phase = PhaseOpenCreate
	f.direction = direction
	f.bill = *bill
	f.editing = core.Transaction{}
	f.draft = core.Draft{Date: core.Today()}
	f.tagIDs = map[int64]struct{}{}
	return nil
}

// OpenEdit opens the form seeded from an existing transaction: amount
// de-signed, date converted to input format, tags normalized to ids.
func (f *Form) OpenEdit(tx core.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return ErrBusy
	}
	f.phase = PhaseOpenEdit
	f.editing = tx
	f.draft = core.Draft{
		Name:        tx.Name,
		Amount:      core.FormatAmount(core.Magnitude(tx.Amount)),
		Description: tx.Description,
		Date:        core.WireDateToInput(tx.Date),
	}
	f.tagIDs = map[int64]struct{}{}
	for _, id := range tx.TagIDs() {
		f.tagIDs[id] = struct{}{}
	}
	return nil
}

// Close dismisses the form, discarding the draft. Ignored while a
// request is in flight.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return
	}
	f.phase = PhaseClosed
}

// ToggleTag adds the tag id to the selection if absent, removes it if
// present.
func (f *Form) ToggleTag(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tagIDs[id]; ok {
		delete(f.tagIDs, id)
	} else {
		f.tagIDs[id] = struct{}{}
	}
}

// HasTag reports whether the tag id is selected.
func (f *Form) HasTag(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.tagIDs[id]
	return ok
}

// SelectedTagIDs returns the selected tag ids in ascending order.
func (f *Form) SelectedTagIDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selectedTagIDs()
}

func (f *Form) selectedTagIDs() []int64 {
	ids := make([]int64, 0, len(f.tagIDs))
	for id := range f.tagIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Submit validates the draft and sends the mutation. On success the
// store receives the server-returned entity, then full replacements of
// the user's bills and transactions, and the form closes. On any
// failure the form stays open with its values intact and the failure is
// surfaced through the notifier.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrBusy
	}
	if f.phase != PhaseOpenCreate && f.phase != PhaseOpenEdit {
		f.mu.Unlock()
		return ErrNotOpen
	}

	if err := f.draft.Validate(); err != nil {
		f.mu.Unlock()
		f.notify(err)
		return err
	}

	user := f.store.Snapshot().CurrentUser
	if user == nil {
		f.mu.Unlock()
		f.notify(ErrNoCurrentUser)
		return ErrNoCurrentUser
	}

	req := f.buildRequest(user.ID)
	editing := f.phase == PhaseOpenEdit
	editID := f.editing.ID
	f.resume = f.phase
	f.phase = PhaseSubmitting
	f.busy = true
	f.mu.Unlock()

	var (
		saved core.Transaction
		err   error
	)
	if editing {
		saved, err = f.backend.UpdateTransaction(ctx, editID, req)
	} else {
		saved, err = f.backend.CreateTransaction(ctx, req)
	}
	if err != nil {
		f.fail("save transaction", err)
		return err
	}

	if editing {
		f.store.Apply(store.UpdateTransaction{Transaction: saved})
	} else {
		f.store.Apply(store.AddTransaction{Transaction: saved})
	}

	if err := f.reconcile(ctx, user.ID); err != nil {
		f.fail("reconcile after save", err)
		return err
	}

	f.logger.Info("transaction saved",
		log.FieldOperation, saveOp(editing),
		log.FieldTxID, saved.ID,
		log.FieldUserID, user.ID)
	f.finish()
	return nil
}

// Delete removes the edited transaction after confirmation, then runs
// the same reconciliation as a submit. A declined confirmation is not
// an error; nothing happens.
func (f *Form) Delete(ctx context.Context) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrBusy
	}
	if f.phase != PhaseOpenEdit {
		f.mu.Unlock()
		return ErrNotOpen
	}

	user := f.store.Snapshot().CurrentUser
	if user == nil {
		f.mu.Unlock()
		f.notify(ErrNoCurrentUser)
		return ErrNoCurrentUser
	}

	id := f.editing.ID
	f.mu.Unlock()

	if !f.confirm() {
		return nil
	}

	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrBusy
	}
	f.resume = f.phase
	f.phase = PhaseDeleting
	f.busy = true
	f.mu.Unlock()

	if err := f.backend.DeleteTransaction(ctx, id); err != nil {
		f.fail("delete transaction", err)
		return err
	}

	f.store.Apply(store.DeleteTransaction{ID: id})

	if err := f.reconcile(ctx, user.ID); err != nil {
		f.fail("reconcile after delete", err)
		return err
	}

	f.logger.Info("transaction deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldTxID, id,
		log.FieldUserID, user.ID)
	f.finish()
	return nil
}

// buildRequest shapes the wire payload from the draft. Caller holds the
// mutex. Validation has already passed, so ParseAmount cannot fail.
func (f *Form) buildRequest(userID int64) api.TransactionRequest {
	amount, _ := core.ParseAmount(f.draft.Amount)

	req := api.TransactionRequest{
		Name:        trimmed(f.draft.Name),
		Amount:      core.Magnitude(amount),
		Description: trimmed(f.draft.Description),
		Date:        core.InputDateToWire(f.draft.Date),
		UserID:      userID,
		TagIDs:      f.selectedTagIDs(),
	}
	if f.phase == PhaseOpenEdit {
		// Editing never flips the income/expense direction.
		req.Type = f.editing.Type
		req.BillID = f.editing.BillID
	} else {
		req.Type = f.direction == Income
		req.BillID = f.bill.ID
	}
	return req
}

// reconcile re-reads the user's bills and transactions and publishes
// both as full replacements. The two reads are sequential and are not
// atomic: a concurrent mutation elsewhere can land between them. That
// window is an accepted trade-off of refetch-after-mutation.
func (f *Form) reconcile(ctx context.Context, userID int64) error {
	bills, err := f.backend.GetUserBills(ctx, userID)
	if err != nil {
		return err
	}
	txs, err := f.backend.GetUserTransactions(ctx, userID)
	if err != nil {
		return err
	}
	f.store.Apply(store.SetBills{Bills: bills})
	f.store.Apply(store.SetTransactions{Transactions: txs})
	return nil
}

func (f *Form) fail(op string, err error) {
	f.mu.Lock()
	f.phase = f.resume
	f.busy = false
	f.mu.Unlock()
	f.logger.Warn(op+" failed", log.FieldError, err.Error())
	f.notify(err)
}

func (f *Form) finish() {
	f.mu.Lock()
	f.phase = PhaseClosed
	f.busy = false
	f.mu.Unlock()
}

func saveOp(editing bool) string {
	if editing {
		return log.OpUpdate
	}
	return log.OpCreate
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
