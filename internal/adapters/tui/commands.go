package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

// Completion messages for the board calls issued as commands. The board has
// already logged any error; the model only re-reads its state.
type (
	refreshedMsg     struct{ err error }
	addedMsg         struct{ err error }
	editedMsg        struct{ err error }
	detailMsg        struct{ err error }
	deletedMsg       struct{ err error }
	noticeExpiredMsg struct{}
)

func (m Model) refreshCmd() tea.Cmd {
	ctx, board := m.ctx, m.board
	return func() tea.Msg {
		return refreshedMsg{err: board.Refresh(ctx)}
	}
}

func (m Model) setFilterCmd(r *todo.DateRange) tea.Cmd {
	ctx, board := m.ctx, m.board
	return func() tea.Msg {
		return refreshedMsg{err: board.SetFilter(ctx, r)}
	}
}

func (m Model) submitAddCmd(form ports.AddForm) tea.Cmd {
	ctx, board := m.ctx, m.board
	return func() tea.Msg {
		_, err := board.SubmitAdd(ctx, form)
		return addedMsg{err: err}
	}
}

func (m Model) submitEditCmd(complete bool) tea.Cmd {
	ctx, board := m.ctx, m.board
	return func() tea.Msg {
		_, err := board.SubmitEdit(ctx, &complete)
		return editedMsg{err: err}
	}
}

func (m Model) loadDetailCmd() tea.Cmd {
	ctx, board := m.ctx, m.board
	return func() tea.Msg {
		_, err := board.LoadDetail(ctx)
		return detailMsg{err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	ctx, board := m.ctx, m.board
	return func() tea.Msg {
		return deletedMsg{err: board.Delete(ctx, id, true)}
	}
}

func noticeExpiry(ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}
