package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dfarias/cacauledger/internal/client"
	"github.com/dfarias/cacauledger/internal/ledger"
)

type statementLoadedMsg struct {
	statement *ledger.Statement
	err       error
}

type statementModel struct {
	statement *ledger.Statement
	loading   bool
	err       error
	width     int
	height    int
}

func (m *statementModel) init(c *client.Client, clientID string) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		st, err := c.GetStatement(context.Background(), clientID, 0)
		return statementLoadedMsg{statement: st, err: err}
	}
}

func (m statementModel) update(msg tea.Msg) (statementModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statementLoadedMsg:
		m.loading = false
		m.statement = msg.statement
		m.err = msg.err
	}
	return m, nil
}

func (m *statementModel) view() string {
	if m.loading {
		return "Carregando conta corrente..."
	}
	if m.err != nil {
		return errorStyle.Render("Erro: " + m.err.Error())
	}
	if m.statement == nil {
		return ""
	}

	st := m.statement
	var b strings.Builder

	b.WriteString(titleStyle.Render("Conta Corrente: " + st.Client.FullName))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("CPF:"), ledger.FormatCPF(st.Client.CPF)))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Telefone:"), ledger.FormatPhone(st.Client.Phone)))

	if st.Balance == nil {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Saldo:"), dimStyle.Render("sem transações")))
	} else {
		saldo := ledger.FormatBalance(st.Balance.AmountCents, st.Balance.Side) + " (" + st.Balance.Side.Label() + ")"
		if st.Balance.Side == ledger.SideDebtor {
			b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Saldo:"), debtorStyle.Render(saldo)))
		} else {
			b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Saldo:"), creditorStyle.Render(saldo)))
		}
	}
	b.WriteString("\n")

	if len(st.Lines) == 0 {
		b.WriteString(dimStyle.Render("  Nenhuma transação."))
	} else {
		header := fmt.Sprintf("  %-12s %-24s %10s %14s %16s", "DATA", "TIPO", "QTD (KG)", "VALOR", "SALDO")
		b.WriteString(headerStyle.Render(header))
		b.WriteString("\n")

		maxRows := m.height - 10
		if maxRows < 1 {
			maxRows = 10
		}
		for i, l := range st.Lines {
			if i >= maxRows {
				b.WriteString(dimStyle.Render(fmt.Sprintf("  ... mais %d transações", len(st.Lines)-i)))
				b.WriteString("\n")
				break
			}
			qty := "-"
			if l.QuantityKg > 0 {
				qty = ledger.FormatKg(l.QuantityKg)
			}
			running := l.RunningCents
			if running < 0 {
				running = -running
			}
			line := fmt.Sprintf("  %-12s %-24s %10s %14s %16s",
				l.Date.BR(), l.Kind.Label(), qty,
				ledger.FormatSignedBRL(l.AmountCents),
				ledger.FormatBalance(running, l.RunningSide))
			if l.AmountCents < 0 {
				b.WriteString(debtorStyle.Render(line))
			} else {
				b.WriteString(creditorStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + dimStyle.Render("  ESC para voltar"))
	return b.String()
}
