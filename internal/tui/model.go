// Package tui implements the interactive calendar dashboard.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ykohira/worktime/internal/calendar"
	"github.com/ykohira/worktime/internal/domain"
	"github.com/ykohira/worktime/internal/service"
)

// Services bundles everything the dashboard needs from the application.
type Services struct {
	Accounts service.AccountService
	Logs     service.LogService
	Settings service.SettingsService
	Exports  service.ExportService
}

// ── messages ─────────────────────────────────────────────────────────────────

// dataLoadedMsg carries a full refresh of the dashboard state.
type dataLoadedMsg struct {
	account  domain.Account
	settings domain.Settings
	book     domain.LogBook
	summary  domain.MonthlySummary
	err      error
}

// mutationDoneMsg signals that a save, delete, or account change finished
// and the dashboard should reload.
type mutationDoneMsg struct {
	status string
	err    error
}

// exportDoneMsg reports the outcome of writing an export file.
type exportDoneMsg struct {
	filename string
	err      error
}

// ── model ────────────────────────────────────────────────────────────────────

// entryInput holds the form field values for one day. It is shared by
// pointer so bubbletea's model copies all see the same huh bindings.
type entryInput struct {
	start    string
	end      string
	breakMin string
	office   bool
}

// accountInput holds the account form field values.
type accountInput struct {
	selected string
	name     string
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	svc     Services
	holiday calendar.HolidayFunc

	cursor   time.Time
	viewMode calendar.Mode

	account  domain.Account
	settings domain.Settings
	book     domain.LogBook
	summary  domain.MonthlySummary

	form       *huh.Form
	formDate   string
	formVals   *entryInput
	acctForm   *huh.Form
	acctVals   *accountInput
	acctCreate bool

	keys   keyMap
	help   help.Model
	styles styles

	width, height int
	loading       bool
	status        string
	err           error
}

// NewModel builds the dashboard model anchored on today.
func NewModel(svc Services, holiday calendar.HolidayFunc) Model {
	if holiday == nil {
		holiday = calendar.NoHolidays
	}
	return Model{
		svc:      svc,
		holiday:  holiday,
		cursor:   today(),
		viewMode: calendar.Month,
		keys:     newKeyMap(),
		help:     help.New(),
		styles:   newStyles(domain.DefaultSettings().ThemeColor),
		loading:  true,
	}
}

// Run starts the dashboard program on the terminal.
func Run(svc Services, holiday calendar.HolidayFunc) error {
	_, err := tea.NewProgram(NewModel(svc, holiday), tea.WithAltScreen()).Run()
	return err
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (m Model) Init() tea.Cmd {
	return m.loadData()
}

// loadData refreshes account, settings, book, and the summary for the
// month under the cursor.
func (m Model) loadData() tea.Cmd {
	svc := m.svc
	cursor := m.cursor
	return func() tea.Msg {
		ctx := context.Background()

		account, err := svc.Accounts.Current(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		settings, err := svc.Settings.Get(ctx, account.ID)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		book, err := svc.Logs.Book(ctx, account.ID)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		summary, err := svc.Logs.MonthlyAggregate(ctx, account.ID, cursor)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{account: *account, settings: settings, book: book, summary: summary}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.account = msg.account
		m.settings = msg.settings
		m.book = msg.book
		m.summary = msg.summary
		m.styles = newStyles(msg.settings.ThemeColor)
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = msg.status
		return m, m.loadData()

	case exportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Wrote " + msg.filename
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateEntryForm(msg)
		}
		if m.acctForm != nil {
			return m.updateAccountForm(msg)
		}
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateEntryForm(msg)
	}
	if m.acctForm != nil {
		return m.updateAccountForm(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, k.Left):
		return m.moveCursor(-1)
	case key.Matches(msg, k.Right):
		return m.moveCursor(1)
	case key.Matches(msg, k.Up):
		return m.moveCursor(-7)
	case key.Matches(msg, k.Down):
		return m.moveCursor(7)

	case key.Matches(msg, k.PrevPage):
		m.cursor = calendar.Previous(m.cursor, m.viewMode)
		m.status = ""
		return m, m.loadData()
	case key.Matches(msg, k.NextPage):
		m.cursor = calendar.Next(m.cursor, m.viewMode)
		m.status = ""
		return m, m.loadData()

	case key.Matches(msg, k.Today):
		m.cursor = today()
		return m, m.loadData()

	case key.Matches(msg, k.Toggle):
		if m.viewMode == calendar.Month {
			m.viewMode = calendar.Week
		} else {
			m.viewMode = calendar.Month
		}
		return m, nil

	case key.Matches(msg, k.Edit):
		return m.openEntryForm()

	case key.Matches(msg, k.Delete):
		return m.deleteEntry()

	case key.Matches(msg, k.Accounts):
		return m.openAccountSelect()

	case key.Matches(msg, k.NewAcct):
		return m.openAccountCreate()

	case key.Matches(msg, k.Export):
		return m.export(false)
	case key.Matches(msg, k.Backup):
		return m.export(true)
	}
	return m, nil
}

// moveCursor shifts the selected day, reloading the summary when the
// cursor crosses into another month.
func (m Model) moveCursor(days int) (tea.Model, tea.Cmd) {
	prev := m.cursor
	m.cursor = m.cursor.AddDate(0, 0, days)
	m.status = ""
	if !calendar.SameMonth(prev, m.cursor) {
		return m, m.loadData()
	}
	return m, nil
}

// deleteEntry clears the log entry under the cursor, if any.
func (m Model) deleteEntry() (tea.Model, tea.Cmd) {
	dateKey := domain.DateKey(m.cursor)
	if _, ok := m.book[dateKey]; !ok {
		return m, nil
	}
	svc := m.svc
	accountID := m.account.ID
	return m, func() tea.Msg {
		if err := svc.Logs.Remove(context.Background(), accountID, dateKey); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: "Cleared " + dateKey}
	}
}

// export writes the CSV month sheet or the JSON backup to the working
// directory under its download name.
func (m Model) export(asJSON bool) (tea.Model, tea.Cmd) {
	svc := m.svc
	accountID := m.account.ID
	month := m.cursor
	return m, func() tea.Msg {
		ctx := context.Background()
		var (
			data     []byte
			filename string
			err      error
		)
		if asJSON {
			data, filename, err = svc.Exports.JSON(ctx, accountID)
		} else {
			data, filename, err = svc.Exports.CSV(ctx, accountID, month)
		}
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if err := os.WriteFile(filename, data, 0o600); err != nil {
			return exportDoneMsg{err: fmt.Errorf("writing export: %w", err)}
		}
		return exportDoneMsg{filename: filename}
	}
}
