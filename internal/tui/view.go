package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"persondesk/internal/records/service"
	"persondesk/internal/records/state"
)

// View renders the screen.
func (m Model) View() string {
	st := m.store.State()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("persondesk"))
	sb.WriteString("  ")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	switch m.tab {
	case tabPersonal:
		sb.WriteString(m.renderPersonal(st))
	case tabOfficials:
		sb.WriteString(m.renderOfficials(st))
	case tabBank:
		sb.WriteString(m.renderBank(st))
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus(st))
	sb.WriteString("\n")

	switch {
	case m.confirming:
		sb.WriteString(m.styles.Prompt.Render(service.DeletePrompt + " [y/n]"))
	case st.Person.Message.Visible:
		sb.WriteString(m.styles.Toast(st.Person.Message.Kind).Render(st.Person.Message.Text))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := tabPersonal; t < tabCount; t++ {
		style := m.styles.Tab
		if t == m.tab {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(tabTitles[t]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) panel(focused bool) lipgloss.Style {
	if focused {
		return m.styles.Focused
	}
	return m.styles.Panel
}

func (m Model) renderPersonal(st state.State) string {
	selectedID, _ := st.Selected()

	var list strings.Builder
	list.WriteString(m.inputs[tabPersonal][inSearch].View())
	list.WriteString("\n\n")
	switch {
	case st.Person.LoadingUsers:
		list.WriteString(m.styles.Muted.Render("loading..."))
	case st.Person.UsersErr != "":
		list.WriteString(m.styles.Prompt.Render(st.Person.UsersErr))
	case len(st.Person.Filtered) == 0:
		list.WriteString(m.styles.Muted.Render("no records"))
	}
	for i, u := range st.Person.Filtered {
		line := fmt.Sprintf("%4s  %s", u.ID, u.FullName())
		if u.ID == selectedID {
			line += " *"
		}
		list.WriteString(m.cursorLine(tabPersonal, i, line))
		list.WriteString("\n")
	}

	var form strings.Builder
	title := "New person"
	if !selectedID.IsZero() {
		title = "Editing #" + selectedID.String()
	}
	form.WriteString(m.styles.Title.Render(title))
	form.WriteString("\n\n")
	form.WriteString(m.field("First name", tabPersonal, inFirstName))
	form.WriteString(m.field("Last name", tabPersonal, inLastName))
	if !st.Person.User.Complete() {
		form.WriteString(m.styles.Muted.Render("both names are required"))
	}

	left := m.panel(m.focus[tabPersonal] == focusList || m.focus[tabPersonal] == inSearch+1).Render(list.String())
	right := m.panel(m.focus[tabPersonal] > inSearch+1).Render(form.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m Model) renderOfficials(st state.State) string {
	var rows strings.Builder
	if len(st.Person.Officials) == 0 {
		rows.WriteString(m.styles.Muted.Render("no related officials, ctrl+a to add"))
	}
	for i, o := range st.Person.Officials {
		line := fmt.Sprintf("%-6s %-24s %s%s", rowID(o.ID.Valid, o.ID.Int64), o.Name, o.IDNumber, pending(o.Temporary, o.ID.Valid))
		rows.WriteString(m.cursorLine(tabOfficials, i, line))
		rows.WriteString("\n")
	}

	var form strings.Builder
	form.WriteString(m.field("Name", tabOfficials, inOfficialName))
	form.WriteString(m.field("NIC number", tabOfficials, inOfficialNIC))

	return m.childLayout(tabOfficials, rows.String(), form.String())
}

func (m Model) renderBank(st state.State) string {
	var rows strings.Builder
	switch {
	case st.Bank.Loading:
		rows.WriteString(m.styles.Muted.Render("loading..."))
	case st.Bank.Err != "":
		rows.WriteString(m.styles.Prompt.Render(st.Bank.Err))
	case len(st.Bank.Details) == 0:
		rows.WriteString(m.styles.Muted.Render("no bank details, ctrl+a to add"))
	}
	for i, b := range st.Bank.Details {
		line := fmt.Sprintf("%-6s %-20s %10s %10s%s", rowID(b.ID.Valid, b.ID.Int64), b.AccountDetails,
			orDash(b.Loans), orDash(b.LeasingFacilities), pending(b.Temporary, b.ID.Valid))
		rows.WriteString(m.cursorLine(tabBank, i, line))
		rows.WriteString("\n")
	}

	var form strings.Builder
	form.WriteString(m.field("Account", tabBank, inAccount))
	form.WriteString(m.field("Loans", tabBank, inLoans))
	form.WriteString(m.field("Leasing", tabBank, inLeasing))
	if c := m.cursor[tabBank]; c < len(st.Bank.Details) {
		if _, err := st.Bank.Details[c].Input(); err != nil {
			form.WriteString(m.styles.Prompt.Render(err.Error()))
		}
	}

	return m.childLayout(tabBank, rows.String(), form.String())
}

func (m Model) childLayout(t tab, rows, form string) string {
	left := m.panel(m.focus[t] == focusList).Render(rows)
	right := m.panel(m.focus[t] != focusList).Render(form)
	return lipgloss.JoinVertical(lipgloss.Left, left, right)
}

func (m Model) field(label string, t tab, i int) string {
	return m.styles.Label.Render(label) + m.inputs[t][i].View() + "\n"
}

func (m Model) cursorLine(t tab, i int, line string) string {
	if i == m.cursor[t] && m.focus[t] == focusList && t == m.tab {
		return m.styles.Cursor.Render("> " + line)
	}
	return "  " + line
}

func (m Model) renderStatus(st state.State) string {
	var parts []string
	if m.svc.Busy() || st.Person.Loading {
		parts = append(parts, "working...")
	}
	if st.HasUnsavedChanges() {
		parts = append(parts, m.styles.Pending.Render("unsaved changes"))
	}
	if st.Person.Err != "" {
		parts = append(parts, m.styles.Prompt.Render(st.Person.Err))
	}
	if len(parts) == 0 {
		return m.styles.Status.Render("up to date")
	}
	return strings.Join(parts, "  ")
}

func rowID(valid bool, v int64) string {
	if !valid {
		return "new"
	}
	return fmt.Sprintf("#%d", v)
}

func pending(temporary, persisted bool) string {
	switch {
	case temporary && persisted:
		return "  (edited)"
	case temporary:
		return "  (unsaved)"
	}
	return ""
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
