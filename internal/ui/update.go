package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"financery/internal/core"
	"financery/internal/log"
	"financery/internal/store"
	"financery/internal/workflow"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "failed to load users: " + msg.err.Error()
			return m, nil
		}
		m.store.Apply(store.SetUsers{Users: msg.users})
		m.status = ""
		return m, nil

	case userDataMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "failed to load user data: " + msg.err.Error()
			return m, nil
		}
		m.store.Apply(store.SetBills{Bills: msg.bills})
		m.store.Apply(store.SetTransactions{Transactions: msg.txs})
		m.store.Apply(store.SetTags{Tags: msg.tags})
		m.screen = screenMain
		m.billIndex = 0
		m.txCursor = 0
		m.status = ""
		if bill := m.currentBill(); bill != nil {
			return m, m.loadBalance(bill.ID)
		}
		return m, nil

	case balanceMsg:
		if msg.err != nil {
			m.status = "failed to load balance: " + msg.err.Error()
			return m, nil
		}
		if bill := m.currentBill(); bill != nil && bill.ID == msg.billID {
			m.balance = msg.balance
		}
		return m, nil

	case submitDoneMsg:
		if msg.err != nil {
			// The form stays open with its values; surface the detail.
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.pendingDelete = false
		if bill := m.currentBill(); bill != nil {
			return m, m.loadBalance(bill.ID)
		}
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.pendingDelete = false
		if bill := m.currentBill(); bill != nil {
			return m, m.loadBalance(bill.ID)
		}
		return m, nil

	case tea.KeyMsg:
		if m.form.IsOpen() {
			return m.updateModal(msg)
		}
		switch m.screen {
		case screenUsers:
			return m.updateUsers(msg)
		case screenMain:
			return m.updateMain(msg)
		}
	}
	return m, nil
}

func (m Model) updateUsers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	users := m.store.Snapshot().Users
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.userCursor > 0 {
			m.userCursor--
		}
	case "down", "j":
		if m.userCursor < len(users)-1 {
			m.userCursor++
		}
	case "r":
		m.loading = true
		return m, m.loadUsers()
	case "enter":
		if m.userCursor >= 0 && m.userCursor < len(users) {
			user := users[m.userCursor]
			m.store.Apply(store.SetCurrentUser{User: &user})
			m.loading = true
			m.logger.Info("user selected", log.FieldUserID, user.ID)
			return m, m.loadUserData(user.ID)
		}
	}
	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bills := m.store.Snapshot().Bills
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "u":
		m.screen = screenUsers
		m.store.Apply(store.SetCurrentUser{User: nil})
		return m, nil
	case "left", "h":
		if m.billIndex > 0 {
			m.billIndex--
			m.txCursor = 0
			if bill := m.currentBill(); bill != nil {
				return m, m.loadBalance(bill.ID)
			}
		}
	case "right", "l":
		// Forward navigation wraps around to the first bill.
		if m.billIndex < len(bills)-1 {
			m.billIndex++
		} else {
			m.billIndex = 0
		}
		m.txCursor = 0
		if bill := m.currentBill(); bill != nil {
			return m, m.loadBalance(bill.ID)
		}
	case "up", "k":
		if m.txCursor > 0 {
			m.txCursor--
		}
	case "down", "j":
		if m.txCursor < len(m.billTransactions())-1 {
			m.txCursor++
		}
	case "r":
		if user := m.store.Snapshot().CurrentUser; user != nil {
			m.loading = true
			return m, m.loadUserData(user.ID)
		}
	case "a":
		return m.openCreate(workflow.Income)
	case "e":
		return m.openCreate(workflow.Expense)
	case "enter":
		txs := m.billTransactions()
		if m.txCursor >= 0 && m.txCursor < len(txs) {
			if err := m.form.OpenEdit(txs[m.txCursor]); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.seedInputs()
			m.status = ""
		}
	}
	return m, nil
}

func (m Model) openCreate(direction workflow.Direction) (tea.Model, tea.Cmd) {
	if err := m.form.OpenCreate(direction, m.currentBill()); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.seedInputs()
	m.status = ""
	return m, nil
}

// seedInputs copies the workflow draft into the text inputs and focuses
// the first field.
func (m *Model) seedInputs() {
	d := m.form.Draft()
	m.inputs[fieldName].SetValue(d.Name)
	m.inputs[fieldAmount].SetValue(d.Amount)
	m.inputs[fieldDescription].SetValue(d.Description)
	m.inputs[fieldDate].SetValue(d.Date)
	m.focus = fieldName
	m.tagCursor = 0
	m.pendingDelete = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[fieldName].Focus()
}

// pushDraft copies the text inputs back into the workflow before a
// submit.
func (m Model) pushDraft() {
	m.form.SetDraft(core.Draft{
		Name:        m.inputs[fieldName].Value(),
		Amount:      m.inputs[fieldAmount].Value(),
		Description: m.inputs[fieldDescription].Value(),
		Date:        m.inputs[fieldDate].Value(),
	})
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	busy := m.form.Phase() == workflow.PhaseSubmitting || m.form.Phase() == workflow.PhaseDeleting
	tags := m.store.Snapshot().Tags

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if !busy {
			m.form.Close()
			m.status = ""
			m.pendingDelete = false
		}
		return m, nil
	case "tab", "shift+tab", "up", "down":
		if msg.String() == "tab" || msg.String() == "down" {
			m.focus = (m.focus + 1) % fieldCount
		} else {
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		}
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		if m.focus < len(m.inputs) {
			m.inputs[m.focus].Focus()
		}
		return m, nil
	case "enter":
		if busy {
			return m, nil
		}
		m.pushDraft()
		return m, m.submit()
	case "ctrl+d":
		if busy {
			return m, nil
		}
		if _, editing := m.form.Editing(); !editing {
			return m, nil
		}
		// First press arms the confirmation, second press deletes.
		if !m.pendingDelete {
			m.pendingDelete = true
			m.status = "press ctrl+d again to delete"
			return m, nil
		}
		m.pendingDelete = false
		m.status = ""
		return m, m.deleteTransaction()
	}

	if m.focus == fieldTags {
		switch msg.String() {
		case "left":
			if m.tagCursor > 0 {
				m.tagCursor--
			}
		case "right":
			if m.tagCursor < len(tags)-1 {
				m.tagCursor++
			}
		case " ":
			if m.tagCursor >= 0 && m.tagCursor < len(tags) {
				m.form.ToggleTag(tags[m.tagCursor].ID)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}
