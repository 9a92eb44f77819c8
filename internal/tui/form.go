package tui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ykohira/worktime/internal/domain"
)

// huhTheme adapts the base form theme to the account's accent color.
func huhTheme(themeColor string) *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.Color(themeColor)
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(accent)
	return t
}

// validClock accepts HH:MM input; empty is allowed and means "no time".
func validClock(s string) error {
	if s == "" {
		return nil
	}
	if !domain.ValidClock(s) {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

func validBreak(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("expected a non-negative number of minutes")
	}
	return nil
}

// openEntryForm opens the log form for the day under the cursor,
// pre-filled from the existing entry or the account defaults.
func (m Model) openEntryForm() (tea.Model, tea.Cmd) {
	dateKey := domain.DateKey(m.cursor)

	vals := &entryInput{
		start:    m.settings.DefaultStart,
		end:      m.settings.DefaultEnd,
		breakMin: strconv.Itoa(m.settings.DefaultBreak),
	}
	if entry, ok := m.book[dateKey]; ok {
		vals.start = entry.Start
		vals.end = entry.End
		vals.breakMin = strconv.Itoa(entry.BreakMinutes)
		vals.office = entry.IsOffice
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start (HH:MM)").
				Value(&vals.start).
				Validate(validClock),
			huh.NewInput().
				Title("End (HH:MM)").
				Value(&vals.end).
				Validate(validClock),
			huh.NewInput().
				Title("Break (minutes)").
				Value(&vals.breakMin).
				Validate(validBreak),
			huh.NewConfirm().
				Title("Office attendance").
				Value(&vals.office),
		),
	).WithTheme(huhTheme(m.settings.ThemeColor)).WithShowHelp(false)

	m.form = form
	m.formDate = dateKey
	m.formVals = vals
	m.status = ""
	return m, form.Init()
}

// updateEntryForm forwards messages to the open log form and persists the
// entry when the form completes. Esc cancels without saving.
func (m Model) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.formVals = nil
		return m, nil
	}

	f, cmd := m.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateCompleted:
		svc := m.svc
		accountID := m.account.ID
		dateKey := m.formDate
		vals := m.formVals
		m.form = nil
		m.formVals = nil
		return m, func() tea.Msg {
			breakMin, _ := strconv.Atoi(vals.breakMin)
			entry, err := svc.Logs.Upsert(context.Background(), accountID, dateKey,
				vals.start, vals.end, breakMin, vals.office)
			if err != nil {
				return mutationDoneMsg{err: err}
			}
			return mutationDoneMsg{status: fmt.Sprintf("Logged %s (%.2fh)", dateKey, entry.Duration)}
		}
	case huh.StateAborted:
		m.form = nil
		m.formVals = nil
		return m, nil
	}
	return m, cmd
}

// openAccountSelect opens the account switcher.
func (m Model) openAccountSelect() (tea.Model, tea.Cmd) {
	accounts, err := m.svc.Accounts.List(context.Background())
	if err != nil {
		m.err = err
		return m, nil
	}

	options := make([]huh.Option[string], 0, len(accounts))
	for _, a := range accounts {
		options = append(options, huh.NewOption(a.DisplayName(), a.ID))
	}

	vals := &accountInput{selected: m.account.ID}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Switch account").
				Options(options...).
				Value(&vals.selected),
		),
	).WithTheme(huhTheme(m.settings.ThemeColor)).WithShowHelp(false)

	m.acctForm = form
	m.acctVals = vals
	m.acctCreate = false
	m.status = ""
	return m, form.Init()
}

// openAccountCreate opens the new-account form.
func (m Model) openAccountCreate() (tea.Model, tea.Cmd) {
	vals := &accountInput{}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New account name").
				Value(&vals.name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name must not be empty")
					}
					return nil
				}),
		),
	).WithTheme(huhTheme(m.settings.ThemeColor)).WithShowHelp(false)

	m.acctForm = form
	m.acctVals = vals
	m.acctCreate = true
	m.status = ""
	return m, form.Init()
}

// updateAccountForm drives the switcher or create form to completion.
func (m Model) updateAccountForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.acctForm = nil
		m.acctVals = nil
		return m, nil
	}

	f, cmd := m.acctForm.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.acctForm = form
	}

	switch m.acctForm.State {
	case huh.StateCompleted:
		svc := m.svc
		vals := m.acctVals
		create := m.acctCreate
		m.acctForm = nil
		m.acctVals = nil
		return m, func() tea.Msg {
			ctx := context.Background()
			if create {
				account, err := svc.Accounts.Create(ctx, vals.name)
				if err != nil {
					return mutationDoneMsg{err: err}
				}
				return mutationDoneMsg{status: "Created " + account.DisplayName()}
			}
			account, err := svc.Accounts.Switch(ctx, vals.selected)
			if err != nil {
				return mutationDoneMsg{err: err}
			}
			return mutationDoneMsg{status: "Switched to " + account.DisplayName()}
		}
	case huh.StateAborted:
		m.acctForm = nil
		m.acctVals = nil
		return m, nil
	}
	return m, cmd
}
