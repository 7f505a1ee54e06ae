// Package ui is the terminal presentation shell. It renders the store
// snapshot and the transaction form workflow; it contains no business
// logic of its own. Every mutation goes through the workflow, every
// load lands in the store.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"financery/internal/api"
	"financery/internal/core"
	"financery/internal/log"
	"financery/internal/store"
	"financery/internal/workflow"
)

type screen int

const (
	screenUsers screen = iota
	screenMain
)

// Field order inside the transaction modal.
const (
	fieldName = iota
	fieldAmount
	fieldDescription
	fieldDate
	fieldTags
	fieldCount
)

type Model struct {
	client *api.Client
	store  *store.Store
	form   *workflow.Form
	logger *log.Logger

	screen  screen
	width   int
	height  int
	loading bool
	status  string
	spin    spinner.Model

	userCursor int
	billIndex  int
	txCursor   int
	balance    float64

	inputs        []textinput.Model
	focus         int
	tagCursor     int
	pendingDelete bool
}

type (
	usersLoadedMsg struct {
		users []core.User
		err   error
	}

	userDataMsg struct {
		bills []core.Bill
		txs   []core.Transaction
		tags  []core.Tag
		err   error
	}

	balanceMsg struct {
		billID  int64
		balance float64
		err     error
	}

	submitDoneMsg struct{ err error }
	deleteDoneMsg struct{ err error }
)

func New(client *api.Client, st *store.Store, form *workflow.Form, logger *log.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
	}
	inputs[fieldName].Placeholder = "Name"
	inputs[fieldName].CharLimit = 50
	inputs[fieldAmount].Placeholder = "0.00"
	inputs[fieldDescription].Placeholder = "Description"
	inputs[fieldDate].Placeholder = "YYYY-MM-DD"

	return Model{
		client:  client,
		store:   st,
		form:    form,
		logger:  logger.WithComponent(log.ComponentUI),
		screen:  screenUsers,
		loading: true,
		spin:    sp,
		inputs:  inputs,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadUsers())
}

func (m Model) loadUsers() tea.Cmd {
	return func() tea.Msg {
		users, err := m.client.GetAllUsers(context.Background())
		return usersLoadedMsg{users: users, err: err}
	}
}

// loadUserData fetches bills, transactions and tags for the selected
// user. The three reads are independent, so they run concurrently.
func (m Model) loadUserData(userID int64) tea.Cmd {
	return func() tea.Msg {
		var msg userDataMsg
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			var err error
			msg.bills, err = m.client.GetUserBills(ctx, userID)
			return err
		})
		g.Go(func() error {
			var err error
			msg.txs, err = m.client.GetUserTransactions(ctx, userID)
			return err
		})
		g.Go(func() error {
			var err error
			msg.tags, err = m.client.GetUserTags(ctx, userID)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (m Model) loadBalance(billID int64) tea.Cmd {
	return func() tea.Msg {
		balance, err := m.client.GetBillBalance(context.Background(), billID)
		return balanceMsg{billID: billID, balance: balance, err: err}
	}
}

func (m Model) submit() tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg{err: m.form.Submit(context.Background())}
	}
}

func (m Model) deleteTransaction() tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: m.form.Delete(context.Background())}
	}
}

// currentBill resolves the bill the card is showing.
func (m Model) currentBill() *core.Bill {
	bills := m.store.Snapshot().Bills
	if len(bills) == 0 || m.billIndex < 0 || m.billIndex >= len(bills) {
		return nil
	}
	b := bills[m.billIndex]
	return &b
}

// billTransactions returns the transactions belonging to the active
// bill, most recent first as the backend returns them.
func (m Model) billTransactions() []core.Transaction {
	bill := m.currentBill()
	if bill == nil {
		return nil
	}
	var out []core.Transaction
	for _, tx := range m.store.Snapshot().Transactions {
		if tx.BillID == bill.ID {
			out = append(out, tx)
		}
	}
	return out
}

// billTotals sums income and expense magnitudes for the active bill.
func (m Model) billTotals() (income, expense float64) {
	for _, tx := range m.billTransactions() {
		if tx.Type {
			income += tx.Amount
		} else {
			expense += tx.Amount
		}
	}
	return income, expense
}
