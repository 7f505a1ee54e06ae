package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"financery/internal/workflow"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Financery"))
	b.WriteString("\n\n")

	switch {
	case m.form.IsOpen():
		b.WriteString(m.viewModal())
	case m.loading:
		b.WriteString(m.spin.View() + " loading...")
	case m.screen == screenUsers:
		b.WriteString(m.viewUsers())
	default:
		b.WriteString(m.viewMain())
	}

	if m.status != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.status))
	}
	return b.String()
}

func (m Model) viewUsers() string {
	users := m.store.Snapshot().Users
	if len(users) == 0 {
		return dimStyle.Render("no users — press r to reload, q to quit")
	}

	var b strings.Builder
	b.WriteString("Select a user:\n\n")
	for i, user := range users {
		line := fmt.Sprintf("%s <%s>", user.Name, user.Email)
		if i == m.userCursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("enter select · r reload · q quit"))
	return b.String()
}

func (m Model) viewMain() string {
	snap := m.store.Snapshot()
	bill := m.currentBill()
	if bill == nil {
		return dimStyle.Render("no bills for this user — u switch user, q quit")
	}

	income, expense := m.billTotals()
	card := lipgloss.JoinVertical(lipgloss.Center,
		bill.Name,
		balanceStyle.Render(fmt.Sprintf("%.2f BYN", m.balance)),
		incomeStyle.Render(fmt.Sprintf("income %.2f", income))+"  "+
			expenseStyle.Render(fmt.Sprintf("expense %.2f", expense)),
		dimStyle.Render(fmt.Sprintf("bill %d/%d", m.billIndex+1, len(snap.Bills))),
	)

	var b strings.Builder
	b.WriteString(cardStyle.Render(card))
	b.WriteString("\n\n")

	txs := m.billTransactions()
	if len(txs) == 0 {
		b.WriteString(dimStyle.Render("no transactions yet"))
	} else {
		for i, tx := range txs {
			amount := fmt.Sprintf("%.2f", tx.Amount)
			if tx.Type {
				amount = incomeStyle.Render("+" + amount)
			} else {
				amount = expenseStyle.Render("-" + amount)
			}
			line := fmt.Sprintf("%-10s %-24s %s", tx.Date, tx.Name, amount)
			if i == m.txCursor {
				line = cursorStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + dimStyle.Render(
		"←/→ bills · ↑/↓ select · enter edit · a income · e expense · r refresh · u user · q quit"))
	return b.String()
}

func (m Model) viewModal() string {
	snap := m.store.Snapshot()
	busy := m.form.Phase() == workflow.PhaseSubmitting || m.form.Phase() == workflow.PhaseDeleting

	title := "Add income"
	if _, editing := m.form.Editing(); editing {
		title = "Edit transaction"
	} else if m.form.Direction() == workflow.Expense {
		title = "Add expense"
	}

	labels := []string{"Name", "Amount", "Description", "Date"}
	var b strings.Builder
	b.WriteString(title + "\n\n")
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]) + "\n")
		b.WriteString(input.View() + "\n")
	}

	b.WriteString(labelStyle.Render("Tags") + "\n")
	if len(snap.Tags) == 0 {
		b.WriteString(dimStyle.Render("no tags") + "\n")
	} else {
		var chips []string
		for i, tag := range snap.Tags {
			style := tagStyle
			if m.form.HasTag(tag.ID) {
				style = tagSelectedStyle
			}
			chip := style.Render(tag.Title)
			if m.focus == fieldTags && i == m.tagCursor {
				chip = tagCursorStyle.Render(style.Render(tag.Title))
			}
			chips = append(chips, chip)
		}
		b.WriteString(strings.Join(chips, " ") + "\n")
	}

	b.WriteString("\n")
	switch {
	case busy:
		b.WriteString(m.spin.View() + " saving...")
	default:
		help := "enter save · tab next field · esc cancel"
		if _, editing := m.form.Editing(); editing {
			help += " · ctrl+d delete"
		}
		b.WriteString(dimStyle.Render(help))
	}

	return modalStyle.Render(b.String())
}
