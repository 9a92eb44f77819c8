package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ykohira/worktime/internal/calendar"
	"github.com/ykohira/worktime/internal/domain"
)

var weekdayHeadings = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (m Model) View() string {
	if m.loading {
		return "Loading..."
	}
	if m.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Header.Render(m.formDate),
			m.form.View(),
		)
	}
	if m.acctForm != nil {
		return m.acctForm.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderCalendar(), " ", m.renderSidebar())

	lines := []string{
		m.renderTitle(),
		"",
		body,
	}
	if m.err != nil {
		lines = append(lines, m.styles.ErrText.Render("error: "+m.err.Error()))
	} else if m.status != "" {
		lines = append(lines, m.styles.Status.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderTitle() string {
	title := fmt.Sprintf("%s  %s", m.cursor.Format("January 2006"), m.account.DisplayName())
	if m.viewMode == calendar.Week {
		title += "  (week)"
	}
	return m.styles.Header.Render(title)
}

// renderCalendar draws the day grid for the current window, one row per
// week, with hours and markers inside each cell.
func (m Model) renderCalendar() string {
	days := calendar.Window(m.cursor, m.viewMode)
	now := today()

	var header strings.Builder
	for i, name := range weekdayHeadings {
		style := m.styles.Weekday
		switch i {
		case 0:
			style = style.Inherit(m.styles.Sunday)
		case 6:
			style = style.Inherit(m.styles.Saturday)
		}
		header.WriteString(style.Render(name))
	}

	rows := []string{header.String()}
	for week := 0; week < len(days)/7; week++ {
		cells := make([]string, 7)
		for i := 0; i < 7; i++ {
			cells[i] = m.renderDay(days[week*7+i], now)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDay draws a single two-line calendar cell: the day number with
// markers on top, hours underneath.
func (m Model) renderDay(day, now time.Time) string {
	label := fmt.Sprintf("%2d", day.Day())
	if _, isHoliday := m.holiday(day); isHoliday {
		label = m.styles.Holiday.Render(label)
	} else if day.Weekday() == time.Sunday {
		label = m.styles.Sunday.Render(label)
	} else if day.Weekday() == time.Saturday {
		label = m.styles.Saturday.Render(label)
	}

	detail := ""
	if entry, ok := m.book[domain.DateKey(day)]; ok {
		detail = fmt.Sprintf("%.1f", entry.Duration)
		if entry.IsOffice {
			detail += "*"
		}
	}

	content := label + "\n" + detail

	style := m.styles.Day
	if m.viewMode == calendar.Month && !calendar.SameMonth(day, m.cursor) {
		style = m.styles.DimDay
	}
	if calendar.SameDay(day, now) {
		style = m.styles.Today
	}
	if calendar.SameDay(day, m.cursor) {
		style = m.styles.Selected
	}
	return style.Render(content)
}

// renderSidebar draws the monthly stats and the selected day's detail.
func (m Model) renderSidebar() string {
	s := m.summary
	fraction := domain.ProgressFraction(s.TotalHours, m.settings.MaxHours)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.styles.Label.Render(m.cursor.Format("2006-01")))
	fmt.Fprintf(&b, "Total    %.2fh\n", s.TotalHours)
	fmt.Fprintf(&b, "Target   %.0f-%.0fh\n", m.settings.MinHours, m.settings.MaxHours)
	fmt.Fprintf(&b, "%s %3.0f%%\n", progressBar(fraction, 20), fraction*100)
	fmt.Fprintf(&b, "Days     %d active, %d office\n", s.ActiveDays, s.OfficeDays)

	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render(domain.DateKey(m.cursor)))
	b.WriteString("\n")
	if name, ok := m.holiday(m.cursor); ok {
		b.WriteString(m.styles.Holiday.Render(name))
		b.WriteString("\n")
	}
	if entry, ok := m.book[domain.DateKey(m.cursor)]; ok {
		fmt.Fprintf(&b, "%s-%s, break %dmin\n", entry.Start, entry.End, entry.BreakMinutes)
		fmt.Fprintf(&b, "Worked   %.2fh", entry.Duration)
		if entry.IsOffice {
			b.WriteString("  (office)")
		}
	} else {
		b.WriteString(m.styles.Label.Render("no entry"))
	}

	return m.styles.Sidebar.Render(b.String())
}
