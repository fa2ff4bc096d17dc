package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dfarias/cacauledger/internal/client"
	"github.com/dfarias/cacauledger/internal/ledger"
)

type dashboardLoadedMsg struct {
	dashboard *ledger.Dashboard
	err       error
}

type dashboardModel struct {
	dashboard *ledger.Dashboard
	loading   bool
	err       error
	width     int
	height    int
}

func (m *dashboardModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		d, err := c.GetDashboard(context.Background())
		return dashboardLoadedMsg{dashboard: d, err: err}
	}
}

func (m dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.dashboard = msg.dashboard
		m.err = msg.err
	}
	return m, nil
}

func (m *dashboardModel) view() string {
	if m.loading {
		return "Carregando dashboard..."
	}
	if m.err != nil {
		return errorStyle.Render("Erro: " + m.err.Error())
	}
	if m.dashboard == nil {
		return dimStyle.Render("Sem dados.")
	}

	d := m.dashboard
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %d\n", labelStyle.Render("Clientes:"), d.TotalClients))
	b.WriteString(fmt.Sprintf("%s %s kg\n", labelStyle.Render("Estoque:"), ledger.FormatKg(d.TotalIntakeKg)))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Devedores:"),
		debtorStyle.Render(ledger.FormatBRL(d.TotalDebtorCents))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Credores:"),
		creditorStyle.Render(ledger.FormatBRL(d.TotalCreditorCents))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Líquido:"), ledger.FormatBalance(d.NetCents, d.NetSide)))
	b.WriteString("\n")

	if len(d.TopSuppliers) > 0 {
		b.WriteString(headerStyle.Render("  Top Fornecedores de Cacau"))
		b.WriteString("\n")
		for i, s := range d.TopSuppliers {
			name := s.Client.FullName
			if len(name) > 30 {
				name = name[:28] + ".."
			}
			b.WriteString(fmt.Sprintf("  %d. %-32s %12s kg\n", i+1, name, ledger.FormatKg(s.IntakeKg)))
		}
		b.WriteString("\n")
	}

	writePositions := func(title string, positions []ledger.ClientBalance, style func(...string) string) {
		if len(positions) == 0 {
			return
		}
		b.WriteString(headerStyle.Render("  " + title))
		b.WriteString("\n")
		for _, p := range positions {
			name := p.Client.FullName
			if len(name) > 30 {
				name = name[:28] + ".."
			}
			b.WriteString(fmt.Sprintf("  %-34s %s\n", name, style(ledger.FormatBalance(p.AmountCents, p.Side))))
		}
		b.WriteString("\n")
	}

	writePositions("Clientes Devedores", d.Debtors, debtorStyle.Render)
	writePositions("Clientes Credores", d.Creditors, creditorStyle.Render)

	return b.String()
}
