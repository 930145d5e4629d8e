// Package tui is the interactive terminal front end: a table of to-do items
// with add, edit, detail and delete dialogs, a date-range filter bar and a
// small router for the login and register placeholder pages.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/todo-client/internal/platform/config"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

// Route is a navigation target.
type Route string

const (
	RouteTodos    Route = "/"
	RouteLogin    Route = "/login"
	RouteRegister Route = "/register"
)

const (
	minTableHeight = 3
	chromeHeight   = 12
)

// Options configures a Model.
type Options struct {
	Keys      config.KeyConfig
	Location  *time.Location
	NoticeTTL time.Duration
	Logger    *slog.Logger
	// Now is used to expire notices; defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model. Board state lives in the board; the model
// keeps the last snapshot plus the input widgets.
type Model struct {
	ctx    context.Context
	board  ports.TodoBoard
	keys   KeyMap
	logger *slog.Logger
	loc    *time.Location
	ttl    time.Duration
	now    func() time.Time

	route Route
	state ports.BoardState
	table table.Model
	help  help.Model
	spin  spinner.Model
	busy  int

	form     addForm
	editPick *bool
	filter   filterForm
	confirm  *todo.Item

	width int
}

// New creates the model. The first refresh is issued by Init.
func New(ctx context.Context, board ports.TodoBoard, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	keys := NewKeyMap(opts.Keys)
	m := Model{
		ctx:    ctx,
		board:  board,
		keys:   keys,
		logger: opts.Logger,
		loc:    opts.Location,
		ttl:    opts.NoticeTTL,
		now:    opts.Now,
		route:  RouteTodos,
		help:   help.New(),
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(focusStyle)),
		busy:   1,
		form:   newAddForm(),
	}
	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithKeyMap(keys.tableKeys()),
		table.WithStyles(tableStyles()),
	)
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refreshCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetHeight(max(minTableHeight, msg.Height-chromeHeight))
		return m, nil

	case spinner.TickMsg:
		if m.busy == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshedMsg:
		return m.finish(msg.err, false)

	case addedMsg:
		if msg.err == nil {
			m.form = newAddForm()
		}
		return m.finish(msg.err, true)

	case editedMsg:
		if msg.err == nil {
			m.editPick = nil
		}
		return m.finish(msg.err, true)

	case detailMsg:
		return m.finish(msg.err, false)

	case deletedMsg:
		return m.finish(msg.err, true)

	case noticeExpiredMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// Route returns the current navigation target.
func (m Model) Route() Route {
	return m.route
}

// Busy reports whether any request is in flight.
func (m Model) Busy() bool {
	return m.busy > 0
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.GoHome):
		return m.navigate(RouteTodos)
	case key.Matches(msg, m.keys.GoLogin):
		return m.navigate(RouteLogin)
	case key.Matches(msg, m.keys.GoReg):
		return m.navigate(RouteRegister)
	}

	if m.route != RouteTodos {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m.navigate(RouteTodos)
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case m.confirm != nil:
		return m.handleConfirm(msg)
	case m.filter.active:
		return m.handleFilter(msg)
	}

	switch m.state.Dialog {
	case ports.DialogAdd:
		return m.handleAdd(msg)
	case ports.DialogEdit:
		return m.handleEdit(msg)
	case ports.DialogDetail:
		if key.Matches(msg, m.keys.Cancel, m.keys.Submit) {
			m.board.Close()
			m.sync()
		}
		return m, nil
	default:
		return m.handleList(msg)
	}
}

func (m Model) navigate(to Route) (tea.Model, tea.Cmd) {
	if m.route == to {
		return m, nil
	}
	m.logger.Debug("navigating", slog.String("from", string(m.route)), slog.String("to", string(to)))
	m.route = to
	return m, nil
}

func (m Model) handleList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.board.OpenAdd()
		m.form = newAddForm()
		m.sync()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if row, ok := m.selected(); ok {
			m.board.OpenEdit(row)
			m.editPick = nil
			m.sync()
		}
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.board.OpenDetail(row)
		m.sync()
		return m.run(m.loadDetailCmd())

	case key.Matches(msg, m.keys.Delete):
		if row, ok := m.selected(); ok {
			m.confirm = &row
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filter = newFilterForm(m.state.Filter)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ClearFilter):
		if m.state.Filter == nil {
			return m, nil
		}
		return m.run(m.setFilterCmd(nil))

	case key.Matches(msg, m.keys.Refresh):
		return m.run(m.refreshCmd())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.board.Close()
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		form := m.form.value()
		if !form.Ready() || m.busy > 0 {
			return m, nil
		}
		return m.run(m.submitAddCmd(form))

	case key.Matches(msg, m.keys.Focus):
		m.form.toggleFocus()
		return m, nil
	}

	if m.form.focus == focusStatus {
		if choice, ok := m.statusChoice(msg); ok {
			m.form.complete = pick(m.form.complete, choice)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form.name, cmd = m.form.name.Update(msg)
	return m, cmd
}

func (m Model) handleEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.board.Close()
		m.editPick = nil
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.editPick == nil || m.busy > 0 {
			return m, nil
		}
		return m.run(m.submitEditCmd(*m.editPick))
	}

	if choice, ok := m.statusChoice(msg); ok {
		m.editPick = pick(m.editPick, choice)
	}
	return m, nil
}

// statusChoice maps a key onto a status pick. A nil choice means toggle.
func (m Model) statusChoice(msg tea.KeyMsg) (*bool, bool) {
	switch {
	case key.Matches(msg, m.keys.Left):
		v := true
		return &v, true
	case key.Matches(msg, m.keys.Right):
		v := false
		return &v, true
	case key.Matches(msg, m.keys.Pick):
		return nil, true
	}
	return nil, false
}

func (m Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		id := m.confirm.ID
		m.confirm = nil
		return m.run(m.deleteCmd(id))
	case key.Matches(msg, m.keys.No):
		m.confirm = nil
	}
	return m, nil
}

func (m Model) handleFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.filter.active = false
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.filter.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		r, err := m.filter.rangeValue()
		if err != nil {
			m.filter.err = err.Error()
			return m, nil
		}
		m.filter.active = false
		if todo.Equal(r, m.state.Filter) {
			return m, nil
		}
		m.logger.Debug("applying filter", slog.Bool("cleared", r == nil))
		return m.run(m.setFilterCmd(r))
	}

	var cmd tea.Cmd
	if m.filter.focus == 0 {
		m.filter.from, cmd = m.filter.from.Update(msg)
	} else {
		m.filter.to, cmd = m.filter.to.Update(msg)
	}
	m.filter.err = ""
	return m, cmd
}

// run marks a request in flight and starts the spinner if it was idle.
func (m Model) run(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy++
	if m.busy == 1 {
		return m, tea.Batch(m.spin.Tick, cmd)
	}
	return m, cmd
}

// finish applies a completed request. Failures leave the UI as the board
// left it, so an open dialog stays open.
func (m Model) finish(err error, notify bool) (tea.Model, tea.Cmd) {
	if m.busy > 0 {
		m.busy--
	}
	m.sync()
	if err != nil || !notify || m.ttl <= 0 {
		return m, nil
	}
	return m, noticeExpiry(m.ttl)
}

func (m Model) selected() (todo.Item, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.state.Items) {
		return todo.Item{}, false
	}
	return m.state.Items[c], true
}

// sync re-reads the board and rebuilds the table rows.
func (m *Model) sync() {
	m.state = m.board.Snapshot()

	rows := make([]table.Row, len(m.state.Items))
	for i, it := range m.state.Items {
		rows[i] = table.Row{
			it.Name,
			todo.FormatDate(it.CreatedAt, m.loc),
			it.Status().String(),
			m.actionHint(),
		}
	}
	m.table.SetRows(rows)
	switch c := m.table.Cursor(); {
	case c < 0:
		m.table.SetCursor(0)
	case c >= len(rows) && len(rows) > 0:
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m Model) columns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 32},
		{Title: "Created", Width: 10},
		{Title: "Status", Width: 10},
		{Title: "Action", Width: 24},
	}
}

func (m Model) actionHint() string {
	return m.keys.Detail.Help().Key + " detail · " +
		m.keys.Edit.Help().Key + " edit · " +
		m.keys.Delete.Help().Key + " delete"
}
