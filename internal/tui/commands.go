package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"persondesk/internal/records/service"
	id "persondesk/pkg/domain"
)

// saveCmd creates a new person from the draft, or updates the selected one.
func (m Model) saveCmd() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	if _, ok := m.store.State().Selected(); ok {
		return func() tea.Msg {
			_, err := svc.Update(ctx)
			return workflowDoneMsg{name: "update", err: err}
		}
	}
	return func() tea.Msg {
		_, err := svc.Save(ctx)
		return workflowDoneMsg{name: "save", err: err}
	}
}

// deleteCmd runs the delete workflow; the user already confirmed on screen.
func (m Model) deleteCmd() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		_, err := svc.Delete(ctx, func(string) bool { return true })
		return workflowDoneMsg{name: "delete", err: err}
	}
}

// refreshCmd reloads the master list and, when a person is selected, its
// combined record.
func (m Model) refreshCmd() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	personID, selected := m.store.State().Selected()
	return func() tea.Msg {
		err := svc.LoadUsers(ctx)
		if selected {
			_, selErr := svc.Select(ctx, personID)
			err = errors.Join(err, selErr)
		}
		return workflowDoneMsg{name: "refresh", err: err}
	}
}

func (m Model) selectCmd(personID id.PersonID) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		_, err := svc.Select(ctx, personID)
		return workflowDoneMsg{name: "select", err: err}
	}
}

// removeCmd removes the child row under the cursor of the active tab.
func (m Model) removeCmd() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	st := m.store.State()
	m.clampCursors(st)
	switch m.tab {
	case tabOfficials:
		if len(st.Person.Officials) == 0 {
			return nil
		}
		key := st.Person.Officials[m.cursor[tabOfficials]].Key
		return func() tea.Msg {
			return workflowDoneMsg{name: "remove official", err: svc.RemoveOfficial(ctx, key)}
		}
	case tabBank:
		if len(st.Bank.Details) == 0 {
			return nil
		}
		key := st.Bank.Details[m.cursor[tabBank]].Key
		return func() tea.Msg {
			return workflowDoneMsg{name: "remove bank detail", err: svc.RemoveBankDetail(ctx, key)}
		}
	}
	return nil
}

// busy reports whether err only says another workflow was running.
func busy(err error) bool {
	return errors.Is(err, service.ErrBusy)
}
