package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dfarias/cacauledger/internal/client"
	"github.com/dfarias/cacauledger/internal/ledger"
)

type clientsLoadedMsg struct {
	clients []ledger.Client
	err     error
}

// clientDeleteConfirmedMsg is sent when the user confirms deletion.
type clientDeleteConfirmedMsg struct {
	id string
}

// clientDeletedMsg is sent after the server processes the delete.
type clientDeletedMsg struct {
	id  string
	err error
}

type clientListModel struct {
	clients        []ledger.Client
	cursor         int
	loading        bool
	err            error
	width          int
	height         int
	confirmDelete  bool
	deleteTargetID string
}

func (m *clientListModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		clients, err := c.ListClients(context.Background(), "")
		return clientsLoadedMsg{clients: clients, err: err}
	}
}

func (m clientListModel) update(msg tea.Msg) (clientListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case clientsLoadedMsg:
		m.loading = false
		m.clients = msg.clients
		m.err = msg.err
		if m.cursor >= len(m.clients) {
			m.cursor = len(m.clients) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

	case clientDeletedMsg:
		m.confirmDelete = false
		m.deleteTargetID = ""
		if msg.err != nil {
			m.err = msg.err
		}

	case tea.KeyMsg:
		if m.confirmDelete {
			switch msg.String() {
			case "y", "Y":
				id := m.deleteTargetID
				m.confirmDelete = false
				return m, func() tea.Msg {
					return clientDeleteConfirmedMsg{id: id}
				}
			default:
				m.confirmDelete = false
				m.deleteTargetID = ""
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.clients)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Delete):
			if id := m.selectedID(); id != "" {
				m.confirmDelete = true
				m.deleteTargetID = id
				m.err = nil
			}
		}
	}
	return m, nil
}

func (m *clientListModel) selectedID() string {
	if m.cursor >= 0 && m.cursor < len(m.clients) {
		return m.clients[m.cursor].ID
	}
	return ""
}

func (m *clientListModel) selectedName() string {
	if m.cursor >= 0 && m.cursor < len(m.clients) {
		return m.clients[m.cursor].FullName
	}
	return ""
}

func (m *clientListModel) view() string {
	if m.loading {
		return "Carregando clientes..."
	}
	if m.err != nil {
		return errorStyle.Render("Erro: " + m.err.Error())
	}
	if len(m.clients) == 0 {
		return dimStyle.Render("Nenhum cliente cadastrado.")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Clientes"))
	b.WriteString("\n")

	header := fmt.Sprintf("  %-30s %-16s %-16s %s", "NOME", "CPF", "TELEFONE", "CADASTRO")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	maxRows := m.height - 4
	if maxRows < 1 {
		maxRows = 10
	}

	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}

	for i := start; i < len(m.clients) && i < start+maxRows; i++ {
		c := m.clients[i]
		name := c.FullName
		if len(name) > 28 {
			name = name[:28] + ".."
		}

		line := fmt.Sprintf("  %-30s %-16s %-16s %s",
			name, ledger.FormatCPF(c.CPF), ledger.FormatPhone(c.Phone), c.RegisteredAt.BR())
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line[2:]))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if m.confirmDelete {
		b.WriteString("\n" + errorStyle.Render(
			fmt.Sprintf("  Excluir cliente %q e todas as suas transações? (y/n)", m.selectedName())))
	} else {
		b.WriteString(fmt.Sprintf("\n  %d clientes", len(m.clients)))
	}

	return b.String()
}
