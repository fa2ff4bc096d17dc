// Package tui is the interactive terminal front end: a client list, the
// per-client running account, and the management dashboard, all served over
// the same HTTP API the CLI uses.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dfarias/cacauledger/internal/client"
)

type mode int

const (
	modeClientList mode = iota
	modeStatement
	modeDashboard
)

var tabModes = []mode{modeClientList, modeDashboard}

func tabLabel(m mode) string {
	switch m {
	case modeClientList:
		return "Clientes"
	case modeDashboard:
		return "Dashboard"
	default:
		return ""
	}
}

type App struct {
	client        *client.Client
	mode          mode
	tabIndex      int
	width, height int
	statusMsg     string

	clientList clientListModel
	statement  statementModel
	dashboard  dashboardModel
}

func NewApp(c *client.Client) *App {
	return &App{
		client:   c,
		mode:     modeClientList,
		tabIndex: 0,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.clientList.init(a.client),
		a.dashboard.init(a.client),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.clientList.width = msg.Width
		a.clientList.height = msg.Height - 6
		a.statement.width = msg.Width
		a.statement.height = msg.Height - 6
		a.dashboard.width = msg.Width
		a.dashboard.height = msg.Height - 6
		return a, nil
	}

	// Route data-loaded messages to the owning sub-model regardless of the
	// active mode: Init() fires the loads concurrently.
	switch typedMsg := msg.(type) {
	case clientsLoadedMsg:
		var cmd tea.Cmd
		a.clientList, cmd = a.clientList.update(msg)
		return a, cmd
	case statementLoadedMsg:
		var cmd tea.Cmd
		a.statement, cmd = a.statement.update(msg)
		return a, cmd
	case dashboardLoadedMsg:
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.update(msg)
		return a, cmd
	case clientDeleteConfirmedMsg:
		id := typedMsg.id
		return a, func() tea.Msg {
			err := a.client.DeleteClient(context.Background(), id)
			return clientDeletedMsg{id: id, err: err}
		}
	case clientDeletedMsg:
		if typedMsg.err != nil {
			a.clientList, _ = a.clientList.update(msg)
			return a, nil
		}
		a.statusMsg = "Cliente excluído com todas as transações"
		return a, tea.Batch(
			a.clientList.init(a.client),
			a.dashboard.init(a.client),
		)
	}

	// While the delete prompt is open, all keys go straight to the list.
	if a.mode == modeClientList && a.clientList.confirmDelete {
		var cmd tea.Cmd
		a.clientList, cmd = a.clientList.update(msg)
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, keys.Tab):
			a.tabIndex = (a.tabIndex + 1) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = ""
			return a, a.refreshTab()

		case key.Matches(msg, keys.ShiftTab):
			a.tabIndex = (a.tabIndex - 1 + len(tabModes)) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = ""
			return a, a.refreshTab()

		case key.Matches(msg, keys.Escape):
			if a.mode == modeStatement {
				a.mode = modeClientList
			}
			return a, nil

		case key.Matches(msg, keys.Refresh):
			return a, a.refreshTab()

		case key.Matches(msg, keys.Enter):
			if a.mode == modeClientList {
				if id := a.clientList.selectedID(); id != "" {
					a.mode = modeStatement
					return a, a.statement.init(a.client, id)
				}
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.mode {
	case modeClientList:
		a.clientList, cmd = a.clientList.update(msg)
	case modeStatement:
		a.statement, cmd = a.statement.update(msg)
	case modeDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	}
	return a, cmd
}

func (a *App) refreshTab() tea.Cmd {
	switch a.mode {
	case modeClientList:
		return a.clientList.init(a.client)
	case modeDashboard:
		return a.dashboard.init(a.client)
	}
	return nil
}

func (a *App) View() string {
	tabs := ""
	for i, m := range tabModes {
		label := tabLabel(m)
		if i == a.tabIndex && a.mode != modeStatement {
			tabs += activeTabStyle.Render(label)
		} else {
			tabs += inactiveTabStyle.Render(label)
		}
		if i < len(tabModes)-1 {
			tabs += " "
		}
	}

	var content string
	switch a.mode {
	case modeClientList:
		content = a.clientList.view()
	case modeStatement:
		content = a.statement.view()
	case modeDashboard:
		content = a.dashboard.view()
	}

	status := ""
	if a.statusMsg != "" {
		status = successStyle.Render(a.statusMsg)
	}

	helpText := dimStyle.Render("tab:alternar  enter:conta corrente  esc:voltar  d:excluir  r:atualizar  q:sair")

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		"",
		content,
		"",
		status,
		helpText,
	)
}
