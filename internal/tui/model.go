// Package tui is the interactive persondesk screen: a master list with
// search, the person form and inline editors for related officials and bank
// details.
package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"persondesk/internal/records/models"
	"persondesk/internal/records/service"
	"persondesk/internal/records/state"
	id "persondesk/pkg/domain"
)

// Workflows is the subset of the records service the screen drives.
type Workflows interface {
	LoadUsers(ctx context.Context) error
	Select(ctx context.Context, personID id.PersonID) (*models.Combined, error)
	Save(ctx context.Context) (*service.SaveReport, error)
	Update(ctx context.Context) (*service.UpdateReport, error)
	Delete(ctx context.Context, confirm service.ConfirmFunc) (*service.DeleteReport, error)
	RemoveOfficial(ctx context.Context, key int) error
	RemoveBankDetail(ctx context.Context, key int) error
	Busy() bool
}

// Store is the state container the screen renders from.
type Store interface {
	State() state.State
	Dispatch(a state.Action) state.State
	Subscribe(fn func(state.State)) (cancel func())
}

type tab int

const (
	tabPersonal tab = iota
	tabOfficials
	tabBank
	tabCount
)

var tabTitles = [tabCount]string{"Personal Details", "Related Officials", "Bank Details"}

// Input positions per tab. Focus 0 is the list of the tab; focus i is
// inputs[tab][i-1].
const (
	inSearch = iota
	inFirstName
	inLastName
)

const (
	inOfficialName = iota
	inOfficialNIC
)

const (
	inAccount = iota
	inLoans
	inLeasing
)

const focusList = 0

type Option func(*Model)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithMessageTTL sets how long a toast stays on screen.
func WithMessageTTL(ttl time.Duration) Option {
	return func(m *Model) {
		m.ttl = ttl
	}
}

func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// Model is the bubbletea model of the screen.
type Model struct {
	ctx    context.Context
	svc    Workflows
	store  Store
	logger *slog.Logger
	ttl    time.Duration
	styles Styles
	keys   keyMap
	help   help.Model

	changes   chan struct{}
	cancelSub func()

	width  int
	height int
	tab    tab
	focus  [tabCount]int
	cursor [tabCount]int
	inputs [tabCount][]textinput.Model

	confirming bool
	toastSeq   int
}

// New builds the screen over svc and store. Close releases the store
// subscription.
func New(svc Workflows, store Store, opts ...Option) Model {
	m := Model{
		ctx:     context.Background(),
		svc:     svc,
		store:   store,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		ttl:     3 * time.Second,
		styles:  DefaultStyles(),
		keys:    defaultKeys(),
		help:    help.New(),
		changes: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.inputs[tabPersonal] = []textinput.Model{
		newInput("search by name"),
		newInput("first name"),
		newInput("last name"),
	}
	m.inputs[tabOfficials] = []textinput.Model{
		newInput("official name"),
		newInput("NIC number"),
	}
	m.inputs[tabBank] = []textinput.Model{
		newInput("account details"),
		newInput("loans"),
		newInput("leasing facilities"),
	}

	changes := m.changes
	m.cancelSub = store.Subscribe(func(state.State) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	m.syncInputs()
	return m
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.Width = 32
	// Blink ticks are never routed back to the inputs.
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

// Close stops listening for store changes.
func (m Model) Close() {
	if m.cancelSub != nil {
		m.cancelSub()
	}
}

type (
	// stateChangedMsg reports that the store moved while a workflow ran.
	stateChangedMsg struct{}
	workflowDoneMsg struct {
		name string
		err  error
	}
	clearToastMsg struct {
		seq int
	}
)

// Init loads the master list and starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForChange(), m.refreshCmd())
}

func (m Model) waitForChange() tea.Cmd {
	changes := m.changes
	return func() tea.Msg {
		<-changes
		return stateChangedMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case stateChangedMsg:
		m.syncInputs()
		return m, m.waitForChange()

	case workflowDoneMsg:
		return m.handleDone(msg)

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.store.Dispatch(state.ClearMessage{})
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleDone(msg workflowDoneMsg) (tea.Model, tea.Cmd) {
	if busy(msg.err) {
		return m, nil
	}
	if msg.err != nil {
		m.logger.Debug("workflow finished with error", "workflow", msg.name, "error", msg.err)
	}
	if msg.name == "delete" && msg.err == nil {
		m.tab = tabPersonal
		m.focus[tabPersonal] = focusList
	}
	m.syncInputs()
	m.applyFocus()
	if !m.store.State().Person.Message.Visible {
		return m, nil
	}
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(m.ttl, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Workflows dispatch from their own goroutines, so the lists may have
	// shrunk since the last stateChangedMsg.
	m.syncInputs()
	if m.confirming {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirming = false
			return m, m.deleteCmd()
		case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
			m.confirming = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		return m, m.saveCmd()
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.store.State().Selected(); ok && !m.svc.Busy() {
			m.confirming = true
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()
	case key.Matches(msg, m.keys.Revert):
		m.store.Dispatch(state.RevertChanges{})
		m.syncInputs()
		return m, nil
	case key.Matches(msg, m.keys.Personal):
		return m.switchTab(tabPersonal), nil
	case key.Matches(msg, m.keys.Officials):
		return m.switchTab(tabOfficials), nil
	case key.Matches(msg, m.keys.Bank):
		return m.switchTab(tabBank), nil
	case key.Matches(msg, m.keys.NextFocus):
		m.focus[m.tab] = (m.focus[m.tab] + 1) % (len(m.inputs[m.tab]) + 1)
		m.applyFocus()
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		n := len(m.inputs[m.tab]) + 1
		m.focus[m.tab] = (m.focus[m.tab] + n - 1) % n
		m.applyFocus()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		return m.addRow(), nil
	case key.Matches(msg, m.keys.Remove):
		return m, m.removeCmd()
	}

	if m.focus[m.tab] == focusList {
		return m.handleListKey(msg)
	}
	return m.handleInputKey(msg)
}

func (m Model) switchTab(t tab) Model {
	m.tab = t
	m.syncInputs()
	m.applyFocus()
	return m
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.store.State()
	m.clampCursors(st)
	n := rowCount(st, m.tab)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.tab] < n-1 {
			m.cursor[m.tab]++
		}
	case key.Matches(msg, m.keys.Select):
		if m.tab == tabPersonal && n > 0 {
			personID := st.Person.Filtered[m.cursor[tabPersonal]].ID
			return m, m.selectCmd(personID)
		}
		if n > 0 {
			m.focus[m.tab] = 1
			m.applyFocus()
		}
		return m, nil
	default:
		return m, nil
	}
	m.syncInputs()
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	i := m.focus[m.tab] - 1
	before := m.inputs[m.tab][i].Value()
	var cmd tea.Cmd
	m.inputs[m.tab][i], cmd = m.inputs[m.tab][i].Update(msg)
	if m.inputs[m.tab][i].Value() != before {
		m.commitInput(i)
	}
	return m, cmd
}

// commitInput dispatches the edit made in input i of the active tab.
func (m *Model) commitInput(i int) {
	st := m.store.State()
	m.clampCursors(st)
	in := m.inputs[m.tab]
	switch m.tab {
	case tabPersonal:
		if i == inSearch {
			m.store.Dispatch(state.SetSearchQuery{Query: in[inSearch].Value()})
			m.cursor[tabPersonal] = 0
			return
		}
		m.store.Dispatch(state.SetUser{User: models.Person{
			FirstName: in[inFirstName].Value(),
			LastName:  in[inLastName].Value(),
		}})

	case tabOfficials:
		row := models.RelatedOfficial{Name: in[inOfficialName].Value(), IDNumber: in[inOfficialNIC].Value()}
		if len(st.Person.Officials) == 0 {
			m.store.Dispatch(state.AddOfficial{Official: row})
			m.cursor[tabOfficials] = 0
			return
		}
		cur := st.Person.Officials[m.cursor[tabOfficials]]
		m.store.Dispatch(state.EditOfficial{Key: cur.Key, Official: row})

	case tabBank:
		row := models.BankDetail{
			AccountDetails:    in[inAccount].Value(),
			Loans:             in[inLoans].Value(),
			LeasingFacilities: in[inLeasing].Value(),
		}
		if len(st.Bank.Details) == 0 {
			m.store.Dispatch(state.AddBankDetail{BankDetail: row})
			m.cursor[tabBank] = 0
			return
		}
		cur := st.Bank.Details[m.cursor[tabBank]]
		m.store.Dispatch(state.EditBankDetail{Key: cur.Key, BankDetail: row})
	}
}

// addRow appends an empty draft row on a child tab and focuses its editor.
func (m Model) addRow() Model {
	var st state.State
	switch m.tab {
	case tabOfficials:
		st = m.store.Dispatch(state.AddOfficial{})
		m.cursor[tabOfficials] = len(st.Person.Officials) - 1
	case tabBank:
		st = m.store.Dispatch(state.AddBankDetail{})
		m.cursor[tabBank] = len(st.Bank.Details) - 1
	default:
		return m
	}
	m.focus[m.tab] = 1
	m.syncInputs()
	m.applyFocus()
	return m
}

func rowCount(st state.State, t tab) int {
	switch t {
	case tabPersonal:
		return len(st.Person.Filtered)
	case tabOfficials:
		return len(st.Person.Officials)
	case tabBank:
		return len(st.Bank.Details)
	}
	return 0
}

// clampCursors keeps every cursor inside the lists of st.
func (m *Model) clampCursors(st state.State) {
	for t := tabPersonal; t < tabCount; t++ {
		n := rowCount(st, t)
		if m.cursor[t] >= n {
			m.cursor[t] = n - 1
		}
		if m.cursor[t] < 0 {
			m.cursor[t] = 0
		}
	}
}

// syncInputs copies the draft into the inputs. Inputs already holding the
// draft value are left alone so the cursor of the focused one stays put.
func (m *Model) syncInputs() {
	st := m.store.State()
	m.clampCursors(st)

	set := func(t tab, i int, v string) {
		if m.inputs[t][i].Value() != v {
			m.inputs[t][i].SetValue(v)
		}
	}

	set(tabPersonal, inSearch, st.Person.Query)
	set(tabPersonal, inFirstName, st.Person.User.FirstName)
	set(tabPersonal, inLastName, st.Person.User.LastName)

	var o models.RelatedOfficial
	if len(st.Person.Officials) > 0 {
		o = st.Person.Officials[m.cursor[tabOfficials]]
	}
	set(tabOfficials, inOfficialName, o.Name)
	set(tabOfficials, inOfficialNIC, o.IDNumber)

	var b models.BankDetail
	if len(st.Bank.Details) > 0 {
		b = st.Bank.Details[m.cursor[tabBank]]
	}
	set(tabBank, inAccount, b.AccountDetails)
	set(tabBank, inLoans, b.Loans)
	set(tabBank, inLeasing, b.LeasingFacilities)
}

func (m *Model) applyFocus() {
	for t := tabPersonal; t < tabCount; t++ {
		for i := range m.inputs[t] {
			if t == m.tab && m.focus[t] == i+1 {
				m.inputs[t][i].Focus()
			} else {
				m.inputs[t][i].Blur()
			}
		}
	}
}
